package engine

import "meeting-conflict-resolver/internal/model"

// AssignmentReport converts an assignment outcome into a resolution
// report. In propose-only mode a scheduled meeting is reported as
// no_action_taken: the slot is proposed, nothing was booked.
func AssignmentReport(a Assignment, proposeOnly bool) model.ResolutionReport {
	report := model.ResolutionReport{
		MeetingID:         a.Meeting.ID,
		OriginalStartTime: a.Meeting.StartTime,
		OriginalEndTime:   a.Meeting.EndTime,
		Status:            a.Status,
	}
	if a.RescheduledTo != nil {
		start, end := a.RescheduledTo.Start, a.RescheduledTo.End
		report.ProposedNewStartTime = &start
		report.ProposedNewEndTime = &end
		if proposeOnly && a.Status == model.StatusScheduled {
			report.Status = model.StatusNoActionTaken
		}
	}
	return report
}

// InvalidProposalReport records a candidate rejected during validation.
func InvalidProposalReport(m model.ConflictingMeeting, reason, rawProposal string) model.ResolutionReport {
	return model.ResolutionReport{
		MeetingID:         m.ID,
		OriginalStartTime: m.StartTime,
		OriginalEndTime:   m.EndTime,
		Status:            model.StatusInvalidProposal,
		Reason:            reason,
		LLMProposal:       rawProposal,
	}
}

// Summarize derives the run summary from the per-meeting reports.
// Pure aggregation; never fails.
func Summarize(totalConflicts int, reports []model.ResolutionReport) model.RunSummary {
	summary := model.RunSummary{TotalConflicts: totalConflicts}
	for _, r := range reports {
		switch r.Status {
		case model.StatusScheduled, model.StatusNoActionTaken:
			if r.ProposedNewStartTime != nil {
				summary.ProposalsGenerated++
				summary.ValidProposals++
			}
		case model.StatusInvalidProposal:
			summary.ProposalsGenerated++
			summary.InvalidProposals++
		}
	}
	return summary
}
