package engine

import (
	"testing"
	"time"

	"meeting-conflict-resolver/internal/model"
)

func TestValidDuration(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name          string
		original      int
		candidateMins int
		want          bool
	}{
		{"exact duration", 30, 30, true},
		{"within tolerance shorter", 30, 20, true},
		{"within tolerance longer", 30, 45, true},
		{"at tolerance boundary", 60, 45, true},
		{"beyond tolerance", 30, 50, false},
		{"twenty minutes off", 30, 50, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := slot(base, tc.candidateMins, 0)
			if got := ValidDuration(tc.original, s); got != tc.want {
				t.Errorf("ValidDuration(%d, %dmin) = %v, want %v",
					tc.original, tc.candidateMins, got, tc.want)
			}
		})
	}
}

func TestSlotConflictsBusy(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	busy := map[string][]model.Interval{
		"alice@corp.io": {{Start: base.Add(time.Hour), End: base.Add(2 * time.Hour)}},
	}

	t.Run("busy attendee blocks slot", func(t *testing.T) {
		s := slot(base.Add(90*time.Minute), 30, 0)
		if !SlotConflictsBusy(s, []string{"alice@corp.io"}, busy) {
			t.Errorf("expected conflict with busy interval")
		}
	})

	t.Run("touching busy interval is fine", func(t *testing.T) {
		s := slot(base.Add(2*time.Hour), 30, 0)
		if SlotConflictsBusy(s, []string{"alice@corp.io"}, busy) {
			t.Errorf("half-open rule violated at the boundary")
		}
	})

	t.Run("unknown attendee treated as free", func(t *testing.T) {
		s := slot(base.Add(time.Hour), 30, 0)
		if SlotConflictsBusy(s, []string{"bob@corp.io"}, busy) {
			t.Errorf("attendee with no busy data reported busy")
		}
	})
}
