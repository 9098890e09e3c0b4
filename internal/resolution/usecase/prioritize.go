package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"meeting-conflict-resolver/internal/model"
	"meeting-conflict-resolver/internal/resolution"
	"meeting-conflict-resolver/internal/resolution/engine"
	"meeting-conflict-resolver/pkg/llmprovider"
)

// prioritizedSet is the outcome of ranking one conflict set.
type prioritizedSet struct {
	ordered   []model.ConflictingMeeting        // priority order, index 0 keeps its slot
	proposals map[string]model.ProposedTimeSlot // valid oracle proposals by meeting id
	invalid   []model.ResolutionReport          // rejected oracle proposals
	errs      []string                          // recoverable oracle failures
}

// prioritizeSet orders the meetings of one conflict set. Oracle failures
// are recoverable: the set falls back to its given order and the error
// is surfaced in the run output, never aborting the run.
func (uc *implUseCase) prioritizeSet(ctx context.Context, set engine.ConflictSet, prioritization resolution.Prioritization) prioritizedSet {
	if prioritization != resolution.PrioritizationOracle || uc.oracle == nil {
		return prioritizedSet{ordered: set.Meetings}
	}

	rulesByEmail := uc.gatherRules(ctx, set)

	prompt, err := buildRankingPrompt(set.Meetings, rulesByEmail)
	if err != nil {
		return prioritizedSet{
			ordered: set.Meetings,
			errs:    []string{fmt.Sprintf("oracle prompt build failed: %v", err)},
		}
	}

	resp, err := uc.oracle.GenerateContent(ctx, &llmprovider.Request{
		SystemPrompt: rankingSystemPrompt,
		Prompt:       prompt,
		Temperature:  rankingTemperature,
		MaxTokens:    rankingMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "prioritizeSet: oracle call failed, falling back to given order: %v", err)
		return prioritizedSet{
			ordered: set.Meetings,
			errs:    []string{fmt.Sprintf("oracle unavailable, used given order: %v", err)},
		}
	}

	decisions, err := parseOracleDecisions(resp.Text)
	if err != nil {
		uc.l.Warnf(ctx, "prioritizeSet: unparseable oracle response, falling back to given order: %v", err)
		return prioritizedSet{
			ordered: set.Meetings,
			errs:    []string{fmt.Sprintf("oracle response unusable, used given order: %v", err)},
		}
	}

	return uc.applyDecisions(ctx, set, decisions)
}

// gatherRules fetches priority rules for every attendee of the set.
// Lookup failures degrade to an empty rule set for that attendee.
func (uc *implUseCase) gatherRules(ctx context.Context, set engine.ConflictSet) map[string][]string {
	rulesByEmail := make(map[string][]string)
	if uc.rules == nil {
		return rulesByEmail
	}

	for _, m := range set.Meetings {
		for _, a := range m.Attendees {
			if _, seen := rulesByEmail[a.Email]; seen {
				continue
			}
			rules, err := uc.rules.RulesFor(ctx, a.Email)
			if err != nil {
				uc.l.Warnf(ctx, "gatherRules: rule lookup failed for %s (non-fatal): %v", a.Email, err)
				rules = nil
			}
			rulesByEmail[a.Email] = rules
		}
	}
	return rulesByEmail
}

// applyDecisions validates the oracle's ranked decisions against the
// conflict set and derives the assignment order.
func (uc *implUseCase) applyDecisions(ctx context.Context, set engine.ConflictSet, decisions []oracleDecision) prioritizedSet {
	byID := make(map[string]model.ConflictingMeeting, len(set.Meetings))
	for _, m := range set.Meetings {
		byID[m.ID] = m
	}

	result := prioritizedSet{
		proposals: make(map[string]model.ProposedTimeSlot),
	}
	ranked := make(map[string]bool, len(set.Meetings))

	for _, d := range decisions {
		raw := rawDecision(d)

		meeting, ok := byID[d.MeetingID]
		if !ok {
			result.invalid = append(result.invalid, engine.InvalidProposalReport(
				model.ConflictingMeeting{ID: d.MeetingID}, engine.ReasonMeetingNotFound, raw))
			continue
		}
		if ranked[d.MeetingID] {
			continue
		}
		ranked[d.MeetingID] = true
		result.ordered = append(result.ordered, meeting)

		slot, has, err := d.proposedSlot()
		if err != nil {
			uc.l.Warnf(ctx, "applyDecisions: unusable proposal for %s: %v", d.MeetingID, err)
			result.errs = append(result.errs, fmt.Sprintf("proposal for %s unusable: %v", d.MeetingID, err))
			continue
		}
		if !has {
			continue
		}
		// Rejecting a proposal rejects only that candidate: the meeting
		// still enters assignment with its remaining candidates.
		if !engine.ValidDuration(meeting.DurationMinutes, slot) {
			result.invalid = append(result.invalid, engine.InvalidProposalReport(
				meeting, engine.ReasonDurationChange, raw))
			continue
		}
		result.proposals[meeting.ID] = slot
	}

	// Meetings the oracle skipped keep their given relative order at the
	// back of the priority list.
	for _, m := range set.Meetings {
		if !ranked[m.ID] {
			result.ordered = append(result.ordered, m)
		}
	}
	return result
}

func rawDecision(d oracleDecision) string {
	data, err := json.Marshal(d)
	if err != nil {
		return d.MeetingID
	}
	return string(data)
}
