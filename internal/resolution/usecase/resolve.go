package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"meeting-conflict-resolver/internal/model"
	"meeting-conflict-resolver/internal/resolution"
	"meeting-conflict-resolver/internal/resolution/engine"
	"meeting-conflict-resolver/pkg/gcalendar"
)

// Resolve reads calendars, detects conflicting meetings, and proposes or
// books replacement slots.
func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, input resolution.ResolveInput) (resolution.ResolveOutput, error) {
	if len(input.Users) == 0 {
		return resolution.ResolveOutput{}, resolution.ErrNoUsers
	}
	if !input.WindowEnd.After(input.WindowStart) {
		return resolution.ResolveOutput{}, resolution.ErrInvalidWindow
	}

	runID := uuid.NewString()
	uc.l.Infof(ctx, "Resolve: run=%s user=%s calendars=%d window=[%s, %s) mode=%s",
		runID, sc.UserID, len(input.Users),
		input.WindowStart.Format(time.RFC3339), input.WindowEnd.Format(time.RFC3339), input.Mode)

	events, err := uc.readCalendars(ctx, input)
	if err != nil {
		return resolution.ResolveOutput{}, err
	}

	if len(input.RequiredAttendees) > 0 {
		events = engine.FilterByRequiredAttendees(events, input.RequiredAttendees)
	}

	pairs := engine.DetectConflicts(events)
	sets := contestedSets(engine.GroupPairs(pairs))

	output := resolution.ResolveOutput{RunID: runID}
	for _, set := range sets {
		output.IdentifiedConflicts = append(output.IdentifiedConflicts, set.Meetings...)
	}

	if len(sets) == 0 {
		uc.l.Infof(ctx, "Resolve: run=%s no conflicts detected across %d events", runID, len(events))
		output.Summary = engine.Summarize(0, nil)
		return output, nil
	}

	uc.l.Infof(ctx, "Resolve: run=%s conflict_sets=%d conflicting_meetings=%d",
		runID, len(sets), len(output.IdentifiedConflicts))

	// Rank every conflict set concurrently; each set degrades
	// independently when the oracle misbehaves.
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

	busy, err := uc.queryFreeBusy(ctx, sets, input.WindowStart, input.WindowEnd)
	if err != nil {
		return resolution.ResolveOutput{}, err
	}

	// Free/busy is the second validation gate on oracle proposals: a
	// proposal landing on any attendee's busy time is rejected before
	// assignment, leaving the meeting's other candidates in play.
	rejectBusyProposals(prioritized, busy)

	extraCandidates := func(m model.ConflictingMeeting) []model.ProposedTimeSlot {
		if uc.finder == nil {
			return nil
		}
		return uc.finder.Find(m, input.WindowStart, input.WindowEnd, busy)
	}

	reports, resolved, errs := uc.assignSets(ctx, prioritized, input.Mode, extraCandidates)
	output.Reports = reports
	output.Resolved = resolved
	output.Errors = errs
	output.Summary = engine.Summarize(len(output.IdentifiedConflicts), reports)

	uc.l.Infof(ctx, "Resolve: run=%s done reports=%d valid=%d invalid=%d",
		runID, len(reports), output.Summary.ValidProposals, output.Summary.InvalidProposals)
	return output, nil
}

// readCalendars lists events for every requested user and merges them,
// deduplicating meetings that appear on several calendars.
func (uc *implUseCase) readCalendars(ctx context.Context, input resolution.ResolveInput) ([]model.Event, error) {
	var events []model.Event
	seen := make(map[string]bool)

	for _, user := range input.Users {
		listed, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
			CalendarID: user,
			TimeMin:    input.WindowStart,
			TimeMax:    input.WindowEnd,
			MaxResults: defaultMaxListResults,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read calendar for %s: %w", user, err)
		}

		for _, ev := range listed {
			if seen[ev.ID] {
				continue
			}
			seen[ev.ID] = true
			events = append(events, toModelEvent(ev, user))
		}
	}
	return events, nil
}

// toModelEvent converts a calendar event to the resolver's event model.
// The calendar owner stands in as organizer when the event carries none.
func toModelEvent(ev gcalendar.Event, owner string) model.Event {
	organizer := ev.Organizer
	if organizer == "" {
		organizer = owner
	}
	return model.Event{
		ID:              ev.ID,
		Subject:         ev.Summary,
		Description:     ev.Description,
		Start:           ev.StartTime,
		End:             ev.EndTime,
		DurationMinutes: int(ev.EndTime.Sub(ev.StartTime).Minutes()),
		Participants:    ev.Attendees,
		Owner:           organizer,
	}
}

// rejectBusyProposals drops oracle proposals overlapping any attendee's
// busy time, recording each rejection. Original slots are exempt: the
// attendees' busy data includes the meeting itself.
func rejectBusyProposals(prioritized []prioritizedSet, busy map[string][]model.Interval) {
	for i := range prioritized {
		ps := &prioritized[i]
		for _, m := range ps.ordered {
			slot, ok := ps.proposals[m.ID]
			if !ok {
				continue
			}
			if engine.SlotConflictsBusy(slot, m.AttendeeEmails(), busy) {
				delete(ps.proposals, m.ID)
				ps.invalid = append(ps.invalid, engine.InvalidProposalReport(
					m, engine.ReasonSlotBusy, rawProposal(m.ID, slot)))
			}
		}
	}
}

// contestedSets drops singleton sets: a meeting with no linked peer
// needs no resolution work.
func contestedSets(sets []engine.ConflictSet) []engine.ConflictSet {
	contested := make([]engine.ConflictSet, 0, len(sets))
	for _, s := range sets {
		if len(s.Meetings) >= 2 {
			contested = append(contested, s)
		}
	}
	return contested
}

// assignSets walks the prioritized sets strictly sequentially and
// commits each meeting to a slot via the shared append-only registry.
// The registry spans all sets, so meetings from different sets can never
// be double-booked into the same interval either. extraCandidates
// supplies per-meeting replacement slots beyond any oracle proposal.
func (uc *implUseCase) assignSets(ctx context.Context, prioritized []prioritizedSet, mode resolution.Mode, extraCandidates func(model.ConflictingMeeting) []model.ProposedTimeSlot) ([]model.ResolutionReport, []model.ResolvedMeeting, []string) {
	registry := engine.NewRegistry()
	proposeOnly := mode != resolution.ModeApply

	var reports []model.ResolutionReport
	var resolved []model.ResolvedMeeting
	var errs []string

	for _, ps := range prioritized {
		reports = append(reports, ps.invalid...)
		errs = append(errs, ps.errs...)

		inputs := make([]engine.AssignmentInput, 0, len(ps.ordered))
		for _, m := range ps.ordered {
			// The meeting's own slot is always the preferred candidate:
			// under greedy priority order this lets the winner of a
			// contested interval stay put while the rest move.
			candidates := []model.ProposedTimeSlot{originalSlot(m)}
			if slot, ok := ps.proposals[m.ID]; ok {
				candidates = append(candidates, slot)
			}
			if extraCandidates != nil {
				candidates = append(candidates, extraCandidates(m)...)
			}
			inputs = append(inputs, engine.AssignmentInput{Meeting: m, Candidates: candidates})
		}

		for _, a := range engine.Assign(inputs, registry) {
			reports = append(reports, uc.reportAssignment(ctx, a, proposeOnly, &errs))
			if !proposeOnly {
				resolved = append(resolved, resolvedMeeting(a))
			}
		}
	}
	return reports, resolved, errs
}

// reportAssignment converts one assignment into its report, booking the
// new slot first in apply mode.
func (uc *implUseCase) reportAssignment(ctx context.Context, a engine.Assignment, proposeOnly bool, errs *[]string) model.ResolutionReport {
	if keptOriginal(a.Meeting, a.RescheduledTo) {
		return model.ResolutionReport{
			MeetingID:         a.Meeting.ID,
			OriginalStartTime: a.Meeting.StartTime,
			OriginalEndTime:   a.Meeting.EndTime,
			Status:            model.StatusNoActionTaken,
		}
	}

	if !proposeOnly && a.Status == model.StatusScheduled {
		if err := uc.applyAssignment(ctx, a); err != nil {
			uc.l.Warnf(ctx, "reportAssignment: booking failed for %s (non-fatal): %v", a.Meeting.ID, err)
			*errs = append(*errs, fmt.Sprintf("booking failed for %s: %v", a.Meeting.ID, err))
		}
	}
	return engine.AssignmentReport(a, proposeOnly)
}

func resolvedMeeting(a engine.Assignment) model.ResolvedMeeting {
	status := a.Status
	if keptOriginal(a.Meeting, a.RescheduledTo) {
		return model.ResolvedMeeting{Meeting: a.Meeting, Status: model.StatusNoActionTaken}
	}
	return model.ResolvedMeeting{Meeting: a.Meeting, Status: status, RescheduledTo: a.RescheduledTo}
}
