package engine

import "meeting-conflict-resolver/internal/model"

// FilterByRequiredAttendees keeps events where every required attendee
// is either a participant or the calendar owner. An empty required set
// yields no events; upstream treats that as "nothing to resolve", not
// an error.
func FilterByRequiredAttendees(events []model.Event, required []string) []model.Event {
	if len(required) == 0 {
		return nil
	}

	filtered := make([]model.Event, 0, len(events))
	for _, ev := range events {
		present := make(map[string]bool, len(ev.Participants)+1)
		for _, p := range ev.Participants {
			present[p] = true
		}
		present[ev.Owner] = true

		all := true
		for _, r := range required {
			if !present[r] {
				all = false
				break
			}
		}
		if all {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}

// Normalize derives the resolution view of a raw event. The owner is
// recorded as organizer; duplicate participant entries collapse.
func Normalize(ev model.Event) model.ConflictingMeeting {
	attendees := make([]model.Attendee, 0, len(ev.Participants)+1)
	seen := make(map[string]bool, len(ev.Participants)+1)

	if ev.Owner != "" {
		attendees = append(attendees, model.Attendee{Email: ev.Owner, Role: model.RoleOrganizer})
		seen[ev.Owner] = true
	}
	for _, p := range ev.Participants {
		if seen[p] {
			continue
		}
		attendees = append(attendees, model.Attendee{Email: p, Role: model.RoleAttendee})
		seen[p] = true
	}

	duration := ev.DurationMinutes
	if duration <= 0 {
		duration = int(ev.End.Sub(ev.Start).Minutes())
	}

	return model.ConflictingMeeting{
		ID:              ev.ID,
		Title:           ev.Subject,
		Organizer:       ev.Owner,
		Attendees:       attendees,
		StartTime:       ev.Start,
		EndTime:         ev.End,
		DurationMinutes: duration,
	}
}
