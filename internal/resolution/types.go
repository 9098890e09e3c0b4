package resolution

import (
	"time"

	"meeting-conflict-resolver/internal/model"
)

// Mode selects whether resolved slots are only proposed or actually
// booked through the calendar service.
type Mode string

const (
	ModePropose Mode = "propose"
	ModeApply   Mode = "apply"
)

// Prioritization selects how meetings inside a conflict set are
// ordered: by the ranking oracle, or by their given input order.
type Prioritization string

const (
	PrioritizationGivenOrder Prioritization = "given-order"
	PrioritizationOracle     Prioritization = "oracle"
)

// ResolveInput is the input for a calendar-backed resolution run.
type ResolveInput struct {
	Users             []string // calendar owners to read
	WindowStart       time.Time
	WindowEnd         time.Time
	RequiredAttendees []string // meetings missing any of these are ignored
	Mode              Mode
	Prioritization    Prioritization
}

// ResolveDirectInput is the input for the pre-identified mode: the
// caller supplies conflicting meetings and scored candidates directly.
type ResolveDirectInput struct {
	Meetings       []model.ConflictingMeeting
	Candidates     map[string][]model.ProposedTimeSlot // keyed by meeting id
	Mode           Mode
	Prioritization Prioritization
}

// ResolveOutput is the result of a resolution run. Errors carries
// non-fatal failures (oracle degradation); a fatal failure is returned
// as an error instead, with no partial output.
type ResolveOutput struct {
	RunID               string
	IdentifiedConflicts []model.ConflictingMeeting
	Reports             []model.ResolutionReport
	Summary             model.RunSummary
	Resolved            []model.ResolvedMeeting // populated in apply mode
	Errors              []string
}
