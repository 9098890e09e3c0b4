package model

import "time"

// Event is a raw calendar event as returned by the calendar reader.
// Upstream guarantees End > Start; this is not re-validated here.
type Event struct {
	ID              string
	Subject         string
	Description     string
	Start           time.Time
	End             time.Time
	DurationMinutes int
	Participants    []string // attendee emails
	Owner           string   // calendar owner email
}

// AttendeeRole distinguishes the organizer from regular attendees.
type AttendeeRole string

const (
	RoleOrganizer AttendeeRole = "organizer"
	RoleAttendee  AttendeeRole = "attendee"
)

// Attendee is a meeting participant.
type Attendee struct {
	Email string       `json:"email"`
	Role  AttendeeRole `json:"role"`
}

// ConflictingMeeting is the normalized view of an Event used during
// conflict resolution. Derived once per event, never mutated.
type ConflictingMeeting struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Organizer       string     `json:"organizer"`
	Attendees       []Attendee `json:"attendees"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         time.Time  `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
	Location        string     `json:"location,omitempty"`
}

// AttendeeEmails returns the attendee emails of the meeting.
func (m ConflictingMeeting) AttendeeEmails() []string {
	emails := make([]string, 0, len(m.Attendees))
	for _, a := range m.Attendees {
		emails = append(emails, a.Email)
	}
	return emails
}

// ProposedTimeSlot is a scored candidate replacement slot for a meeting.
// Score is a desirability measure (higher = better); zero when unscored.
type ProposedTimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Score float64   `json:"score,omitempty"`
}

// Interval is a half-open [Start, End) busy interval.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ResolutionStatus is the per-meeting outcome of a resolution run.
type ResolutionStatus string

const (
	StatusScheduled       ResolutionStatus = "scheduled"
	StatusNoActionTaken   ResolutionStatus = "no_action_taken"
	StatusUnresolved      ResolutionStatus = "unresolved"
	StatusInvalidProposal ResolutionStatus = "invalid_proposal"
)

// ResolutionReport is the outcome for one meeting with a contested or
// proposed slot.
type ResolutionReport struct {
	MeetingID            string           `json:"meeting_id"`
	OriginalStartTime    time.Time        `json:"original_start_time"`
	OriginalEndTime      time.Time        `json:"original_end_time"`
	ProposedNewStartTime *time.Time       `json:"proposed_new_start_time,omitempty"`
	ProposedNewEndTime   *time.Time       `json:"proposed_new_end_time,omitempty"`
	Status               ResolutionStatus `json:"status"`
	Reason               string           `json:"reason,omitempty"`
	LLMProposal          string           `json:"llm_proposal,omitempty"`
}

// RunSummary aggregates a resolution run. Derived, never independently
// mutated.
type RunSummary struct {
	TotalConflicts     int `json:"total_conflicts"`
	ProposalsGenerated int `json:"proposals_generated"`
	ValidProposals     int `json:"valid_proposals"`
	InvalidProposals   int `json:"invalid_proposals"`
}

// ResolvedMeeting is the apply-mode view of a meeting after assignment.
type ResolvedMeeting struct {
	Meeting       ConflictingMeeting `json:"meeting"`
	Status        ResolutionStatus   `json:"status"`
	RescheduledTo *ProposedTimeSlot  `json:"rescheduled_to,omitempty"`
}
