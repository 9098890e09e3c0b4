package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"meeting-conflict-resolver/internal/model"
	"meeting-conflict-resolver/internal/resolution"
	"meeting-conflict-resolver/internal/resolution/engine"
)

// ResolveDirect runs the resolution pipeline on caller-supplied
// meetings and pre-scored candidate slots. No calendar reads happen;
// candidate validity is judged purely by duration tolerance.
func (uc *implUseCase) ResolveDirect(ctx context.Context, sc model.Scope, input resolution.ResolveDirectInput) (resolution.ResolveOutput, error) {
	if len(input.Meetings) == 0 {
		return resolution.ResolveOutput{}, resolution.ErrNoMeetings
	}

	runID := uuid.NewString()
	uc.l.Infof(ctx, "ResolveDirect: run=%s user=%s meetings=%d mode=%s",
		runID, sc.UserID, len(input.Meetings), input.Mode)

	sets := contestedSets(engine.GroupMeetings(input.Meetings))

	output := resolution.ResolveOutput{RunID: runID}
	for _, set := range sets {
		output.IdentifiedConflicts = append(output.IdentifiedConflicts, set.Meetings...)
	}

	byID := make(map[string]model.ConflictingMeeting, len(output.IdentifiedConflicts))
	for _, m := range output.IdentifiedConflicts {
		byID[m.ID] = m
	}

	// Candidates keyed to a meeting outside every conflict set are
	// rejected up front; candidates breaching the duration tolerance are
	// rejected per slot. Survivors feed the assignment phase.
	var invalid []model.ResolutionReport
	valid := make(map[string][]model.ProposedTimeSlot, len(input.Candidates))
	for meetingID, slots := range input.Candidates {
		meeting, ok := byID[meetingID]
		if !ok {
			invalid = append(invalid, engine.InvalidProposalReport(
				model.ConflictingMeeting{ID: meetingID}, engine.ReasonMeetingNotFound, ""))
			continue
		}
		for _, slot := range slots {
			if !engine.ValidDuration(meeting.DurationMinutes, slot) {
				invalid = append(invalid, engine.InvalidProposalReport(
					meeting, engine.ReasonDurationChange, ""))
				continue
			}
			valid[meetingID] = append(valid[meetingID], slot)
		}
	}
	output.Reports = append(output.Reports, invalid...)

	if len(sets) == 0 {
		output.Summary = engine.Summarize(0, output.Reports)
		return output, nil
	}

	prioritized := make([]prioritizedSet, len(sets))
	var wg sync.WaitGroup
	for i, set := range sets {
		wg.Add(1)
		go func(i int, set engine.ConflictSet) {
			defer wg.Done()
			prioritized[i] = uc.prioritizeSet(ctx, set, input.Prioritization)
		}(i, set)
	}
	wg.Wait()

	reports, resolved, errs := uc.assignSets(ctx, prioritized, input.Mode,
		func(m model.ConflictingMeeting) []model.ProposedTimeSlot {
			return valid[m.ID]
		})
	output.Reports = append(output.Reports, reports...)
	output.Resolved = resolved
	output.Errors = errs
	output.Summary = engine.Summarize(len(output.IdentifiedConflicts), output.Reports)

	uc.l.Infof(ctx, "ResolveDirect: run=%s done reports=%d valid=%d invalid=%d",
		runID, len(output.Reports), output.Summary.ValidProposals, output.Summary.InvalidProposals)
	return output, nil
}
