package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Organizer   string   // organizer email
	Attendees   []string // attendee emails
}

// ListEventsRequest is the input for listing calendar events.
type ListEventsRequest struct {
	CalendarID string // defaults to "primary"
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// CreateEventRequest is the input for booking a calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Berlin"
	Attendees   []string
}

// FreeBusyRequest is the input for a batched free/busy query.
type FreeBusyRequest struct {
	Emails  []string
	TimeMin time.Time
	TimeMax time.Time
}

// BusyInterval is a half-open [Start, End) busy window.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}
