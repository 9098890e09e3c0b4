package engine

import (
	"sort"
	"time"

	"meeting-conflict-resolver/internal/model"
)

// Overlaps reports whether the half-open intervals [s1, e1) and
// [s2, e2) intersect. Touching endpoints do not conflict.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// DetectConflicts finds all pairs of events overlapping in time. Events
// are sorted ascending by start; the inner sweep breaks as soon as the
// next event starts at or after the current event's end, which keeps
// the common sparse-calendar case near-linear. The dense worst case
// stays O(n^2) and correct.
func DetectConflicts(events []model.Event) []ConflictPair {
	sorted := make([]model.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var pairs []ConflictPair
	for i := 0; i < len(sorted); i++ {
		current := sorted[i]
		for j := i + 1; j < len(sorted); j++ {
			other := sorted[j]
			if !other.Start.Before(current.End) {
				break
			}
			if !Overlaps(current.Start, current.End, other.Start, other.End) {
				continue
			}
			pairs = append(pairs, ConflictPair{
				A:            Normalize(current),
				B:            Normalize(other),
				OverlapStart: laterOf(current.Start, other.Start),
				OverlapEnd:   earlierOf(current.End, other.End),
			})
		}
	}
	return pairs
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
