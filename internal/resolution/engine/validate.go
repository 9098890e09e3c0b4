package engine

import "meeting-conflict-resolver/internal/model"

// DurationToleranceMinutes bounds how far a proposed slot's duration
// may drift from the original meeting duration.
const DurationToleranceMinutes = 15

// Rejection reasons surfaced verbatim in resolution reports.
const (
	ReasonDurationChange  = "Duration change too large"
	ReasonMeetingNotFound = "Meeting id not found in conflict set"
	ReasonSlotBusy        = "Proposed slot conflicts with attendee busy time"
)

// ValidDuration reports whether the candidate slot keeps the meeting
// duration within tolerance.
func ValidDuration(originalMinutes int, slot model.ProposedTimeSlot) bool {
	candidateMinutes := int(slot.End.Sub(slot.Start).Minutes())
	diff := originalMinutes - candidateMinutes
	if diff < 0 {
		diff = -diff
	}
	return diff <= DurationToleranceMinutes
}

// SlotConflictsBusy reports whether any of the given attendees has a
// busy interval overlapping the candidate slot. Attendees missing from
// the busy map are treated as free.
func SlotConflictsBusy(slot model.ProposedTimeSlot, attendees []string, busy map[string][]model.Interval) bool {
	for _, email := range attendees {
		for _, iv := range busy[email] {
			if Overlaps(slot.Start, slot.End, iv.Start, iv.End) {
				return true
			}
		}
	}
	return false
}
