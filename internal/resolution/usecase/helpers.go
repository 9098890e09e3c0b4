package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"meeting-conflict-resolver/internal/model"
)

// oracleDecision is one element of the oracle's ranked JSON output.
type oracleDecision struct {
	MeetingID    string `json:"meeting_id"`
	NewStartTime string `json:"new_start_time,omitempty"`
	NewEndTime   string `json:"new_end_time,omitempty"`
}

// proposedSlot returns the decision's proposed slot, if any.
func (d oracleDecision) proposedSlot() (model.ProposedTimeSlot, bool, error) {
	if d.NewStartTime == "" || d.NewEndTime == "" {
		return model.ProposedTimeSlot{}, false, nil
	}
	start, err := time.Parse(time.RFC3339, d.NewStartTime)
	if err != nil {
		return model.ProposedTimeSlot{}, false, fmt.Errorf("invalid new_start_time %q: %w", d.NewStartTime, err)
	}
	end, err := time.Parse(time.RFC3339, d.NewEndTime)
	if err != nil {
		return model.ProposedTimeSlot{}, false, fmt.Errorf("invalid new_end_time %q: %w", d.NewEndTime, err)
	}
	if !end.After(start) {
		return model.ProposedTimeSlot{}, false, fmt.Errorf("proposed end %q not after start %q", d.NewEndTime, d.NewStartTime)
	}
	return model.ProposedTimeSlot{Start: start, End: end, Score: oracleProposalScore}, true, nil
}

// buildRankingPrompt renders a conflict set and the attendees' priority
// rules as the oracle user prompt.
func buildRankingPrompt(meetings []model.ConflictingMeeting, rulesByEmail map[string][]string) (string, error) {
	payload := struct {
		Meetings []model.ConflictingMeeting `json:"meetings"`
		Rules    map[string][]string        `json:"priority_rules"`
	}{
		Meetings: meetings,
		Rules:    rulesByEmail,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal ranking prompt: %w", err)
	}
	return string(data), nil
}

// parseOracleDecisions extracts the ranked decision array from the raw
// oracle response text.
func parseOracleDecisions(text string) ([]oracleDecision, error) {
	cleaned := sanitizeJSONResponse(text)

	var decisions []oracleDecision
	if err := json.Unmarshal([]byte(cleaned), &decisions); err != nil {
		return nil, fmt.Errorf("failed to parse oracle JSON response: %w", err)
	}
	if len(decisions) == 0 {
		return nil, fmt.Errorf("oracle returned an empty decision list")
	}
	return decisions, nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	// Remove ```json ... ``` or ``` ... ``` blocks
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// rawProposal renders a proposal back into the oracle's wire shape for
// rejection reports.
func rawProposal(meetingID string, slot model.ProposedTimeSlot) string {
	return rawDecision(oracleDecision{
		MeetingID:    meetingID,
		NewStartTime: slot.Start.Format(time.RFC3339),
		NewEndTime:   slot.End.Format(time.RFC3339),
	})
}

// originalSlot is a meeting's current interval as a candidate, scored so
// keeping the slot always beats moving.
func originalSlot(m model.ConflictingMeeting) model.ProposedTimeSlot {
	return model.ProposedTimeSlot{Start: m.StartTime, End: m.EndTime, Score: keepSlotScore}
}

// keptOriginal reports whether the assigned slot is the meeting's
// original interval.
func keptOriginal(m model.ConflictingMeeting, slot *model.ProposedTimeSlot) bool {
	return slot != nil && slot.Start.Equal(m.StartTime) && slot.End.Equal(m.EndTime)
}
