package engine

import (
	"testing"
	"time"

	"meeting-conflict-resolver/internal/model"
)

func TestAssignmentReport(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	m := mkMeeting("m", []string{"alice@corp.io"}, base, 30)
	s := slot(base.Add(time.Hour), 30, 80)

	t.Run("apply mode keeps scheduled status", func(t *testing.T) {
		r := AssignmentReport(Assignment{Meeting: m, Status: model.StatusScheduled, RescheduledTo: &s}, false)
		if r.Status != model.StatusScheduled {
			t.Errorf("status = %s", r.Status)
		}
		if r.ProposedNewStartTime == nil || !r.ProposedNewStartTime.Equal(s.Start) {
			t.Errorf("proposed start missing")
		}
	})

	t.Run("propose mode reports no_action_taken", func(t *testing.T) {
		r := AssignmentReport(Assignment{Meeting: m, Status: model.StatusScheduled, RescheduledTo: &s}, true)
		if r.Status != model.StatusNoActionTaken {
			t.Errorf("status = %s", r.Status)
		}
	})

	t.Run("unresolved has no proposed times", func(t *testing.T) {
		r := AssignmentReport(Assignment{Meeting: m, Status: model.StatusUnresolved}, true)
		if r.Status != model.StatusUnresolved || r.ProposedNewStartTime != nil {
			t.Errorf("unexpected report %+v", r)
		}
	})
}

func TestSummarize(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	m1 := mkMeeting("m1", []string{"a@corp.io"}, base, 30)
	m2 := mkMeeting("m2", []string{"a@corp.io"}, base, 30)
	m3 := mkMeeting("m3", []string{"a@corp.io"}, base, 30)
	s := slot(base.Add(time.Hour), 30, 80)

	reports := []model.ResolutionReport{
		AssignmentReport(Assignment{Meeting: m1, Status: model.StatusScheduled, RescheduledTo: &s}, true),
		AssignmentReport(Assignment{Meeting: m2, Status: model.StatusUnresolved}, true),
		InvalidProposalReport(m3, ReasonDurationChange, `{"meetingId":"m3"}`),
	}

	sum := Summarize(3, reports)

	if sum.TotalConflicts != 3 {
		t.Errorf("TotalConflicts = %d", sum.TotalConflicts)
	}
	if sum.ProposalsGenerated != 2 {
		t.Errorf("ProposalsGenerated = %d", sum.ProposalsGenerated)
	}
	if sum.ValidProposals != 1 {
		t.Errorf("ValidProposals = %d", sum.ValidProposals)
	}
	if sum.InvalidProposals != 1 {
		t.Errorf("InvalidProposals = %d", sum.InvalidProposals)
	}
}
