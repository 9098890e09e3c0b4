package usecase

import (
	"context"
	"fmt"

	"meeting-conflict-resolver/internal/resolution/engine"
	"meeting-conflict-resolver/pkg/gcalendar"
)

// applyAssignment books the rescheduled slot on the organizer's
// calendar. The original event stays untouched; operators review and
// retire it once attendees accept the replacement.
func (uc *implUseCase) applyAssignment(ctx context.Context, a engine.Assignment) error {
	if uc.calendar == nil {
		return fmt.Errorf("no calendar client configured")
	}
	if a.RescheduledTo == nil {
		return fmt.Errorf("assignment for %s has no slot", a.Meeting.ID)
	}

	created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  a.Meeting.Organizer,
		Summary:     a.Meeting.Title,
		Description: fmt.Sprintf("Rescheduled from %s.", a.Meeting.StartTime.Format("Mon Jan 2 15:04")),
		StartTime:   a.RescheduledTo.Start,
		EndTime:     a.RescheduledTo.End,
		Timezone:    uc.timezone,
		Attendees:   a.Meeting.AttendeeEmails(),
	})
	if err != nil {
		return err
	}

	uc.l.Infof(ctx, "applyAssignment: booked %s as %s at %s", a.Meeting.ID, created.ID,
		a.RescheduledTo.Start.Format("2006-01-02 15:04"))
	return nil
}
