package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"meeting-conflict-resolver/internal/model"
	"meeting-conflict-resolver/internal/resolution"
	"meeting-conflict-resolver/pkg/gcalendar"
)

// Monday 2024-06-10 is the anchor day for all tests.
func at(hour, min int) time.Time {
	return time.Date(2024, 6, 10, hour, min, 0, 0, time.UTC)
}

func mkGEvent(id string, start, end time.Time, organizer string, attendees ...string) gcalendar.Event {
	return gcalendar.Event{
		ID:        id,
		Summary:   "Meeting " + id,
		StartTime: start,
		EndTime:   end,
		Organizer: organizer,
		Attendees: attendees,
	}
}

func defaultInput() resolution.ResolveInput {
	return resolution.ResolveInput{
		Users:          []string{"alice@example.com"},
		WindowStart:    at(9, 0),
		WindowEnd:      at(17, 0),
		Mode:           resolution.ModePropose,
		Prioritization: resolution.PrioritizationOracle,
	}
}

func reportFor(t *testing.T, reports []model.ResolutionReport, meetingID string) model.ResolutionReport {
	t.Helper()
	for _, r := range reports {
		if r.MeetingID == meetingID {
			return r
		}
	}
	t.Fatalf("no report for meeting %s in %+v", meetingID, reports)
	return model.ResolutionReport{}
}

func reportsFor(reports []model.ResolutionReport, meetingID string) []model.ResolutionReport {
	var matched []model.ResolutionReport
	for _, r := range reports {
		if r.MeetingID == meetingID {
			matched = append(matched, r)
		}
	}
	return matched
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "alice@example.com"}

	overlapping := []gcalendar.Event{
		mkGEvent("m1", at(10, 0), at(11, 0), "alice@example.com", "alice@example.com", "bob@example.com"),
		mkGEvent("m2", at(10, 30), at(11, 30), "alice@example.com", "alice@example.com", "carol@example.com"),
	}

	t.Run("propose mode keeps the winner and proposes a new slot for the loser", func(t *testing.T) {
		calendar := &mockCalendar{events: map[string][]gcalendar.Event{"alice@example.com": overlapping}}
		oracle := &mockOracle{response: `[
			{"meeting_id": "m1"},
			{"meeting_id": "m2", "new_start_time": "2024-06-10T13:00:00Z", "new_end_time": "2024-06-10T14:00:00Z"}
		]`}

		uc := New(&mockLogger{}, calendar, &mockRuleStore{}, oracle, &mockFinder{}, "UTC")

		out, err := uc.Resolve(ctx, sc, defaultInput())
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}

		if out.RunID == "" {
			t.Error("expected a run id")
		}
		if len(out.IdentifiedConflicts) != 2 {
			t.Fatalf("expected 2 identified conflicts, got %d", len(out.IdentifiedConflicts))
		}

		r1 := reportFor(t, out.Reports, "m1")
		if r1.Status != model.StatusNoActionTaken {
			t.Errorf("m1 status = %s, want %s", r1.Status, model.StatusNoActionTaken)
		}
		if r1.ProposedNewStartTime != nil {
			t.Error("m1 kept its slot, expected no proposed times")
		}

		r2 := reportFor(t, out.Reports, "m2")
		if r2.Status != model.StatusNoActionTaken {
			t.Errorf("m2 status = %s, want %s (propose mode)", r2.Status, model.StatusNoActionTaken)
		}
		if r2.ProposedNewStartTime == nil || !r2.ProposedNewStartTime.Equal(at(13, 0)) {
			t.Errorf("m2 proposed start = %v, want %v", r2.ProposedNewStartTime, at(13, 0))
		}

		if out.Summary.TotalConflicts != 2 {
			t.Errorf("TotalConflicts = %d, want 2", out.Summary.TotalConflicts)
		}
		if out.Summary.ValidProposals != 1 {
			t.Errorf("ValidProposals = %d, want 1", out.Summary.ValidProposals)
		}
		if len(calendar.created) != 0 {
			t.Error("propose mode must not book events")
		}
		if calendar.freeBusyHits != 1 {
			t.Errorf("expected exactly one batched free/busy query, got %d", calendar.freeBusyHits)
		}
		if len(out.Errors) != 0 {
			t.Errorf("expected no run errors, got %v", out.Errors)
		}
	})

	t.Run("apply mode books the rescheduled slot", func(t *testing.T) {
		calendar := &mockCalendar{events: map[string][]gcalendar.Event{"alice@example.com": overlapping}}
		oracle := &mockOracle{response: `[
			{"meeting_id": "m1"},
			{"meeting_id": "m2", "new_start_time": "2024-06-10T13:00:00Z", "new_end_time": "2024-06-10T14:00:00Z"}
		]`}

		uc := New(&mockLogger{}, calendar, &mockRuleStore{}, oracle, &mockFinder{}, "UTC")

		input := defaultInput()
		input.Mode = resolution.ModeApply
		out, err := uc.Resolve(ctx, sc, input)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}

		r2 := reportFor(t, out.Reports, "m2")
		if r2.Status != model.StatusScheduled {
			t.Errorf("m2 status = %s, want %s", r2.Status, model.StatusScheduled)
		}
		if len(calendar.created) != 1 {
			t.Fatalf("expected 1 booked event, got %d", len(calendar.created))
		}
		if !calendar.created[0].StartTime.Equal(at(13, 0)) {
			t.Errorf("booked start = %v, want %v", calendar.created[0].StartTime, at(13, 0))
		}
		if len(out.Resolved) != 2 {
			t.Errorf("expected 2 resolved meetings, got %d", len(out.Resolved))
		}
	})

	t.Run("oracle failure degrades to given order with finder candidates", func(t *testing.T) {
		calendar := &mockCalendar{events: map[string][]gcalendar.Event{"alice@example.com": overlapping}}
		oracle := &mockOracle{err: errors.New("all providers down")}
		finder := &mockFinder{slots: map[string][]model.ProposedTimeSlot{
			"m2": {{Start: at(14, 0), End: at(15, 0), Score: 0.3}},
		}}

		uc := New(&mockLogger{}, calendar, &mockRuleStore{}, oracle, finder, "UTC")

		out, err := uc.Resolve(ctx, sc, defaultInput())
		if err != nil {
			t.Fatalf("Resolve must not fail when the oracle does: %v", err)
		}

		if len(out.Errors) == 0 {
			t.Error("expected the oracle failure to be surfaced in Errors")
		}

		r1 := reportFor(t, out.Reports, "m1")
		if r1.Status != model.StatusNoActionTaken {
			t.Errorf("m1 status = %s, want %s", r1.Status, model.StatusNoActionTaken)
		}
		r2 := reportFor(t, out.Reports, "m2")
		if r2.ProposedNewStartTime == nil || !r2.ProposedNewStartTime.Equal(at(14, 0)) {
			t.Errorf("m2 should have been moved to the finder slot, got %+v", r2)
		}
	})

	t.Run("unparseable oracle output degrades the same way", func(t *testing.T) {
		calendar := &mockCalendar{events: map[string][]gcalendar.Event{"alice@example.com": overlapping}}
		oracle := &mockOracle{response: "I think meeting one is more important than meeting two."}

		uc := New(&mockLogger{}, calendar, &mockRuleStore{}, oracle, &mockFinder{}, "UTC")

		out, err := uc.Resolve(ctx, sc, defaultInput())
		if err != nil {
			t.Fatalf("Resolve must not fail on prose output: %v", err)
		}
		if len(out.Errors) == 0 {
			t.Error("expected the parse failure to be surfaced in Errors")
		}
		r2 := reportFor(t, out.Reports, "m2")
		if r2.Status != model.StatusUnresolved {
			t.Errorf("m2 with no candidates should be unresolved, got %s", r2.Status)
		}
	})

	t.Run("oracle proposal breaching duration tolerance is reported invalid", func(t *testing.T) {
		calendar := &mockCalendar{events: map[string][]gcalendar.Event{"alice@example.com": overlapping}}
		oracle := &mockOracle{response: `[
			{"meeting_id": "m1"},
			{"meeting_id": "m2", "new_start_time": "2024-06-10T13:00:00Z", "new_end_time": "2024-06-10T14:30:00Z"}
		]`}
		finder := &mockFinder{slots: map[string][]model.ProposedTimeSlot{
			"m2": {{Start: at(14, 0), End: at(15, 0), Score: 0.3}},
		}}

		uc := New(&mockLogger{}, calendar, &mockRuleStore{}, oracle, finder, "UTC")

		out, err := uc.Resolve(ctx, sc, defaultInput())
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}

		r2 := reportFor(t, out.Reports, "m2")
		if r2.Status != model.StatusInvalidProposal {
			t.Errorf("m2 status = %s, want %s", r2.Status, model.StatusInvalidProposal)
		}
		if r2.Reason != "Duration change too large" {
			t.Errorf("m2 reason = %q, want %q", r2.Reason, "Duration change too large")
		}
		if out.Summary.InvalidProposals != 1 {
			t.Errorf("InvalidProposals = %d, want 1", out.Summary.InvalidProposals)
		}

		// Only the oracle's candidate is rejected: the meeting itself
		// still gets assigned from its remaining candidates.
		var assigned bool
		for _, r := range reportsFor(out.Reports, "m2") {
			if r.ProposedNewStartTime != nil && r.ProposedNewStartTime.Equal(at(14, 0)) {
				assigned = true
			}
		}
		if !assigned {
			t.Errorf("m2 should have moved to the finder slot despite the invalid proposal, reports: %+v",
				reportsFor(out.Reports, "m2"))
		}
	})

	t.Run("oracle proposal on an attendee's busy time is rejected", func(t *testing.T) {
		calendar := &mockCalendar{
			events: map[string][]gcalendar.Event{"alice@example.com": overlapping},
			busy: map[string][]gcalendar.BusyInterval{
				"carol@example.com": {{Start: at(13, 0), End: at(14, 0)}},
			},
		}
		oracle := &mockOracle{response: `[
			{"meeting_id": "m1"},
			{"meeting_id": "m2", "new_start_time": "2024-06-10T13:00:00Z", "new_end_time": "2024-06-10T14:00:00Z"}
		]`}
		finder := &mockFinder{slots: map[string][]model.ProposedTimeSlot{
			"m2": {{Start: at(14, 0), End: at(15, 0), Score: 0.3}},
		}}

		uc := New(&mockLogger{}, calendar, &mockRuleStore{}, oracle, finder, "UTC")

		out, err := uc.Resolve(ctx, sc, defaultInput())
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}

		r2 := reportFor(t, out.Reports, "m2")
		if r2.Status != model.StatusInvalidProposal {
			t.Errorf("m2 status = %s, want %s", r2.Status, model.StatusInvalidProposal)
		}
		if r2.Reason != "Proposed slot conflicts with attendee busy time" {
			t.Errorf("m2 reason = %q, want %q", r2.Reason, "Proposed slot conflicts with attendee busy time")
		}

		// The busy 13:00 slot must never surface as an outcome; the free
		// finder slot at 14:00 takes its place.
		for _, r := range reportsFor(out.Reports, "m2") {
			if r.ProposedNewStartTime != nil && r.ProposedNewStartTime.Equal(at(13, 0)) {
				t.Errorf("m2 was moved onto carol's busy time: %+v", r)
			}
		}
		var assigned bool
		for _, r := range reportsFor(out.Reports, "m2") {
			if r.ProposedNewStartTime != nil && r.ProposedNewStartTime.Equal(at(14, 0)) {
				assigned = true
			}
		}
		if !assigned {
			t.Errorf("m2 should have moved to the finder slot, reports: %+v", reportsFor(out.Reports, "m2"))
		}
	})

	t.Run("unknown meeting id in oracle output is reported invalid", func(t *testing.T) {
		calendar := &mockCalendar{events: map[string][]gcalendar.Event{"alice@example.com": overlapping}}
		oracle := &mockOracle{response: `[
			{"meeting_id": "m1"},
			{"meeting_id": "ghost", "new_start_time": "2024-06-10T13:00:00Z", "new_end_time": "2024-06-10T14:00:00Z"},
			{"meeting_id": "m2", "new_start_time": "2024-06-10T13:00:00Z", "new_end_time": "2024-06-10T14:00:00Z"}
		]`}

		uc := New(&mockLogger{}, calendar, &mockRuleStore{}, oracle, &mockFinder{}, "UTC")

		out, err := uc.Resolve(ctx, sc, defaultInput())
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}

		ghost := reportFor(t, out.Reports, "ghost")
		if ghost.Status != model.StatusInvalidProposal {
			t.Errorf("ghost status = %s, want %s", ghost.Status, model.StatusInvalidProposal)
		}
		if ghost.Reason != "Meeting id not found in conflict set" {
			t.Errorf("ghost reason = %q, want %q", ghost.Reason, "Meeting id not found in conflict set")
		}

		// The legitimate meetings still resolve.
		r2 := reportFor(t, out.Reports, "m2")
		if r2.ProposedNewStartTime == nil {
			t.Error("m2 should still carry the valid proposal")
		}
	})

	t.Run("free busy failure aborts the run with no partial report", func(t *testing.T) {
		calendar := &mockCalendar{
			events:      map[string][]gcalendar.Event{"alice@example.com": overlapping},
			freeBusyErr: errors.New("quota exceeded"),
		}
		oracle := &mockOracle{response: `[{"meeting_id": "m1"}, {"meeting_id": "m2"}]`}

		uc := New(&mockLogger{}, calendar, &mockRuleStore{}, oracle, &mockFinder{}, "UTC")

		out, err := uc.Resolve(ctx, sc, defaultInput())
		if !errors.Is(err, resolution.ErrFreeBusyQuery) {
			t.Fatalf("expected ErrFreeBusyQuery, got %v", err)
		}
		if len(out.Reports) != 0 || len(out.IdentifiedConflicts) != 0 {
			t.Error("expected no partial output on fatal failure")
		}
	})

	t.Run("given-order prioritization never calls the oracle", func(t *testing.T) {
		calendar := &mockCalendar{events: map[string][]gcalendar.Event{"alice@example.com": overlapping}}
		oracle := &mockOracle{response: `[]`}
		finder := &mockFinder{slots: map[string][]model.ProposedTimeSlot{
			"m2": {{Start: at(14, 0), End: at(15, 0), Score: 0.3}},
		}}

		uc := New(&mockLogger{}, calendar, &mockRuleStore{}, oracle, finder, "UTC")

		input := defaultInput()
		input.Prioritization = resolution.PrioritizationGivenOrder
		out, err := uc.Resolve(ctx, sc, input)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}

		if oracle.calls != 0 {
			t.Errorf("oracle called %d times, want 0", oracle.calls)
		}
		r1 := reportFor(t, out.Reports, "m1")
		if r1.Status != model.StatusNoActionTaken {
			t.Errorf("first-in-order meeting should keep its slot, got %s", r1.Status)
		}
	})

	t.Run("non overlapping meetings produce no conflicts", func(t *testing.T) {
		calendar := &mockCalendar{events: map[string][]gcalendar.Event{"alice@example.com": {
			mkGEvent("m1", at(10, 0), at(11, 0), "alice@example.com", "alice@example.com"),
			mkGEvent("m2", at(11, 0), at(12, 0), "alice@example.com", "alice@example.com"),
		}}}
		oracle := &mockOracle{response: `[]`}

		uc := New(&mockLogger{}, calendar, &mockRuleStore{}, oracle, &mockFinder{}, "UTC")

		out, err := uc.Resolve(ctx, sc, defaultInput())
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if len(out.IdentifiedConflicts) != 0 || len(out.Reports) != 0 {
			t.Errorf("expected empty run, got %+v", out)
		}
		if oracle.calls != 0 {
			t.Error("no conflict sets, oracle must not be consulted")
		}
	})

	t.Run("required attendees filter drops meetings missing one", func(t *testing.T) {
		calendar := &mockCalendar{events: map[string][]gcalendar.Event{"alice@example.com": overlapping}}
		oracle := &mockOracle{response: `[]`}

		uc := New(&mockLogger{}, calendar, &mockRuleStore{}, oracle, &mockFinder{}, "UTC")

		input := defaultInput()
		input.RequiredAttendees = []string{"bob@example.com"}
		out, err := uc.Resolve(ctx, sc, input)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		// Only m1 has bob, so no conflicting pair survives.
		if len(out.IdentifiedConflicts) != 0 {
			t.Errorf("expected no conflicts after filtering, got %d", len(out.IdentifiedConflicts))
		}
	})

	t.Run("rule store failure is absorbed", func(t *testing.T) {
		calendar := &mockCalendar{events: map[string][]gcalendar.Event{"alice@example.com": overlapping}}
		oracle := &mockOracle{response: `[
			{"meeting_id": "m1"},
			{"meeting_id": "m2", "new_start_time": "2024-06-10T13:00:00Z", "new_end_time": "2024-06-10T14:00:00Z"}
		]`}
		rules := &mockRuleStore{err: errors.New("rule store down")}

		uc := New(&mockLogger{}, calendar, rules, oracle, &mockFinder{}, "UTC")

		out, err := uc.Resolve(ctx, sc, defaultInput())
		if err != nil {
			t.Fatalf("Resolve must absorb rule store failures: %v", err)
		}
		if out.Summary.ValidProposals != 1 {
			t.Errorf("ValidProposals = %d, want 1", out.Summary.ValidProposals)
		}
	})

	t.Run("input validation", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockCalendar{}, &mockRuleStore{}, &mockOracle{}, &mockFinder{}, "UTC")

		input := defaultInput()
		input.Users = nil
		if _, err := uc.Resolve(ctx, sc, input); !errors.Is(err, resolution.ErrNoUsers) {
			t.Errorf("expected ErrNoUsers, got %v", err)
		}

		input = defaultInput()
		input.WindowEnd = input.WindowStart
		if _, err := uc.Resolve(ctx, sc, input); !errors.Is(err, resolution.ErrInvalidWindow) {
			t.Errorf("expected ErrInvalidWindow, got %v", err)
		}
	})

	t.Run("calendar read failure is fatal", func(t *testing.T) {
		calendar := &mockCalendar{listErr: errors.New("calendar unavailable")}
		uc := New(&mockLogger{}, calendar, &mockRuleStore{}, &mockOracle{}, &mockFinder{}, "UTC")

		if _, err := uc.Resolve(ctx, sc, defaultInput()); err == nil {
			t.Fatal("expected error when the calendar read fails")
		}
	})
}
