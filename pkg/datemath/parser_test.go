package datemath_test

import (
	"testing"
	"time"

	"meeting-conflict-resolver/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expr    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "RFC3339 passthrough",
			expr: "2024-06-10T09:00:00Z",
			want: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "Now",
			expr: "now",
			want: baseTime,
		},
		{
			name: "Today",
			expr: "today",
			want: startOfBase,
		},
		{
			name: "Tomorrow",
			expr: "tomorrow",
			want: startOfBase.AddDate(0, 0, 1),
		},
		{
			name: "Yesterday",
			expr: "yesterday",
			want: startOfBase.AddDate(0, 0, -1),
		},
		{
			name: "In 3 days",
			expr: "in 3 days",
			want: startOfBase.AddDate(0, 0, 3),
		},
		{
			name: "In 2 weeks",
			expr: "in 2 weeks",
			want: startOfBase.AddDate(0, 0, 14),
		},
		{
			name: "In 1 month",
			expr: "in 1 month",
			want: startOfBase.AddDate(0, 1, 0),
		},
		{
			name:    "Invalid duration pattern",
			expr:    "in a few days",
			want:    baseTime,
			wantErr: true,
		},
		{
			name: "Next Monday (from Wed)",
			expr: "next monday",
			want: startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name: "Next Wednesday (from Wed)",
			expr: "next wednesday",
			want: startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:    "Unrecognized expression",
			expr:    "some random day",
			want:    baseTime, // Error returns baseTime
			wantErr: true,
		},
		{
			name:    "Invalid Next Weekday",
			expr:    "next funday",
			want:    baseTime, // Error returns baseTime
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.expr, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseWindow(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	t.Run("defaults to now plus window days", func(t *testing.T) {
		start, end, err := parser.ParseWindow("", "", 7, baseTime)
		if err != nil {
			t.Fatalf("ParseWindow() error = %v", err)
		}
		if !start.Equal(baseTime) {
			t.Errorf("start = %v, want %v", start, baseTime)
		}
		if !end.Equal(baseTime.AddDate(0, 0, 7)) {
			t.Errorf("end = %v, want %v", end, baseTime.AddDate(0, 0, 7))
		}
	})

	t.Run("resolves relative bounds", func(t *testing.T) {
		start, end, err := parser.ParseWindow("tomorrow", "in 2 weeks", 7, baseTime)
		if err != nil {
			t.Fatalf("ParseWindow() error = %v", err)
		}
		if !start.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start: %v", start)
		}
		if !end.Equal(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected end: %v", end)
		}
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		_, _, err := parser.ParseWindow("in 2 weeks", "tomorrow", 7, baseTime)
		if err == nil {
			t.Fatal("expected error for end before start")
		}
	})
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}
