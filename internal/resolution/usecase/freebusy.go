package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"meeting-conflict-resolver/internal/model"
	"meeting-conflict-resolver/internal/resolution"
	"meeting-conflict-resolver/internal/resolution/engine"
	"meeting-conflict-resolver/pkg/gcalendar"
)

// queryFreeBusy issues one batched free/busy query for every attendee of
// every conflict set. This is the single synchronization barrier of the
// pipeline: it runs once, and its failure is fatal for the whole run
// because every downstream validation depends on the busy map.
func (uc *implUseCase) queryFreeBusy(ctx context.Context, sets []engine.ConflictSet, windowStart, windowEnd time.Time) (map[string][]model.Interval, error) {
	emails := collectAttendeeEmails(sets)
	if len(emails) == 0 {
		return map[string][]model.Interval{}, nil
	}

	busy, err := uc.calendar.QueryFreeBusy(ctx, gcalendar.FreeBusyRequest{
		Emails:  emails,
		TimeMin: windowStart,
		TimeMax: windowEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", resolution.ErrFreeBusyQuery, err)
	}

	intervals := make(map[string][]model.Interval, len(busy))
	for email, windows := range busy {
		converted := make([]model.Interval, 0, len(windows))
		for _, w := range windows {
			converted = append(converted, model.Interval{Start: w.Start, End: w.End})
		}
		intervals[email] = converted
	}
	return intervals, nil
}

// collectAttendeeEmails returns the distinct attendee emails across all
// sets, sorted for a deterministic batch query.
func collectAttendeeEmails(sets []engine.ConflictSet) []string {
	seen := make(map[string]bool)
	for _, set := range sets {
		for _, m := range set.Meetings {
			for _, a := range m.Attendees {
				seen[a.Email] = true
			}
		}
	}

	emails := make([]string, 0, len(seen))
	for email := range seen {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails
}
