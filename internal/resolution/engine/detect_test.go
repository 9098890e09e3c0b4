package engine

import (
	"testing"
	"time"

	"meeting-conflict-resolver/internal/model"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	hour := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"partial overlap", hour(0), hour(2), hour(1), hour(3), true},
		{"containment", hour(0), hour(4), hour(1), hour(2), true},
		{"identical", hour(0), hour(1), hour(0), hour(1), true},
		{"touching endpoints do not conflict", hour(0), hour(1), hour(1), hour(2), false},
		{"disjoint", hour(0), hour(1), hour(2), hour(3), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.s1, tc.e1, tc.s2, tc.e2); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDetectConflicts(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("finds overlapping pairs with overlap window", func(t *testing.T) {
		events := []model.Event{
			mkEvent("a", "x@corp.io", nil, base, 60),
			mkEvent("b", "x@corp.io", nil, base.Add(30*time.Minute), 60),
			mkEvent("c", "x@corp.io", nil, base.Add(3*time.Hour), 30),
		}

		pairs := DetectConflicts(events)
		if len(pairs) != 1 {
			t.Fatalf("expected 1 pair, got %d", len(pairs))
		}
		p := pairs[0]
		if p.A.ID != "a" || p.B.ID != "b" {
			t.Errorf("pair = (%s, %s)", p.A.ID, p.B.ID)
		}
		if !p.OverlapStart.Equal(base.Add(30 * time.Minute)) {
			t.Errorf("overlap start = %v", p.OverlapStart)
		}
		if !p.OverlapEnd.Equal(base.Add(60 * time.Minute)) {
			t.Errorf("overlap end = %v", p.OverlapEnd)
		}
	})

	t.Run("input order does not matter", func(t *testing.T) {
		events := []model.Event{
			mkEvent("b", "x@corp.io", nil, base.Add(30*time.Minute), 60),
			mkEvent("c", "x@corp.io", nil, base.Add(3*time.Hour), 30),
			mkEvent("a", "x@corp.io", nil, base, 60),
		}
		pairs := DetectConflicts(events)
		if len(pairs) != 1 || pairs[0].A.ID != "a" || pairs[0].B.ID != "b" {
			t.Fatalf("unexpected pairs: %+v", pairs)
		}
	})

	t.Run("back to back events do not conflict", func(t *testing.T) {
		events := []model.Event{
			mkEvent("a", "x@corp.io", nil, base, 60),
			mkEvent("b", "x@corp.io", nil, base.Add(time.Hour), 60),
		}
		if pairs := DetectConflicts(events); len(pairs) != 0 {
			t.Errorf("expected no pairs, got %d", len(pairs))
		}
	})

	t.Run("dense overlap produces all pairs", func(t *testing.T) {
		// Three meetings all inside the same hour: 3 pairs.
		events := []model.Event{
			mkEvent("a", "x@corp.io", nil, base, 60),
			mkEvent("b", "x@corp.io", nil, base.Add(10*time.Minute), 40),
			mkEvent("c", "x@corp.io", nil, base.Add(20*time.Minute), 20),
		}
		if pairs := DetectConflicts(events); len(pairs) != 3 {
			t.Errorf("expected 3 pairs, got %d", len(pairs))
		}
	})

	t.Run("idempotent detection", func(t *testing.T) {
		events := []model.Event{
			mkEvent("a", "x@corp.io", nil, base, 60),
			mkEvent("b", "x@corp.io", nil, base.Add(30*time.Minute), 60),
			mkEvent("c", "x@corp.io", nil, base.Add(45*time.Minute), 60),
		}
		first := DetectConflicts(events)
		second := DetectConflicts(events)
		if len(first) != len(second) {
			t.Fatalf("runs differ: %d vs %d pairs", len(first), len(second))
		}
		for i := range first {
			if first[i].A.ID != second[i].A.ID || first[i].B.ID != second[i].B.ID {
				t.Errorf("pair %d differs: (%s,%s) vs (%s,%s)",
					i, first[i].A.ID, first[i].B.ID, second[i].A.ID, second[i].B.ID)
			}
		}
	})
}
