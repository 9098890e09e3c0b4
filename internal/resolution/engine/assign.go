package engine

import (
	"sort"

	"meeting-conflict-resolver/internal/model"
)

// AssignmentInput is one meeting awaiting a slot, carrying its already
// validated candidate slots. Inputs arrive in priority order (index 0 =
// highest priority).
type AssignmentInput struct {
	Meeting    model.ConflictingMeeting
	Candidates []model.ProposedTimeSlot
}

// Assignment is the outcome for one meeting.
type Assignment struct {
	Meeting       model.ConflictingMeeting
	Status        model.ResolutionStatus
	RescheduledTo *model.ProposedTimeSlot
}

// Assign walks meetings in priority order and greedily commits each to
// its best-scoring candidate that does not collide with the registry.
// The registry is the single piece of mutable state: append-only,
// consulted but never rewritten, so an assigned higher-priority meeting
// can never be displaced by a later one. Strictly sequential; the
// mutation order of the registry encodes the priority guarantee.
func Assign(ordered []AssignmentInput, registry *Registry) []Assignment {
	assignments := make([]Assignment, 0, len(ordered))

	for _, input := range ordered {
		// Stable sort keeps the original candidate order on score ties,
		// making the whole assignment deterministic.
		candidates := make([]model.ProposedTimeSlot, len(input.Candidates))
		copy(candidates, input.Candidates)
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score > candidates[j].Score
		})

		assigned := false
		for _, c := range candidates {
			if registry.Conflicts(c.Start, c.End) {
				continue
			}
			registry.Book(c.Start, c.End, input.Meeting.ID)
			slot := c
			assignments = append(assignments, Assignment{
				Meeting:       input.Meeting,
				Status:        model.StatusScheduled,
				RescheduledTo: &slot,
			})
			assigned = true
			break
		}

		if !assigned {
			assignments = append(assignments, Assignment{
				Meeting: input.Meeting,
				Status:  model.StatusUnresolved,
			})
		}
	}
	return assignments
}
