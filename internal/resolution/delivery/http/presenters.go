package http

import (
	"time"

	"meeting-conflict-resolver/internal/model"
	"meeting-conflict-resolver/internal/resolution"
)

// --- Request DTOs ---

type resolveReq struct {
	Users             []string `json:"users"              binding:"required,min=1"`
	WindowStart       string   `json:"window_start"`      // RFC3339 or relative ("tomorrow", "in 3 days")
	WindowEnd         string   `json:"window_end"`        // RFC3339 or relative; defaults to start + window days
	RequiredAttendees []string `json:"required_attendees"`
	Mode              string   `json:"mode"               binding:"omitempty,oneof=propose apply"`
	Prioritization    string   `json:"prioritization"     binding:"omitempty,oneof=oracle given-order"`
}

func (r resolveReq) toInput(windowStart, windowEnd time.Time, defaults Defaults) resolution.ResolveInput {
	return resolution.ResolveInput{
		Users:             r.Users,
		WindowStart:       windowStart,
		WindowEnd:         windowEnd,
		RequiredAttendees: r.RequiredAttendees,
		Mode:              modeOrDefault(r.Mode, defaults.Mode),
		Prioritization:    prioritizationOrDefault(r.Prioritization, defaults.Prioritization),
	}
}

type meetingReq struct {
	ID              string        `json:"id"         binding:"required"`
	Title           string        `json:"title"`
	Organizer       string        `json:"organizer"`
	Attendees       []attendeeReq `json:"attendees"`
	StartTime       time.Time     `json:"start_time" binding:"required"`
	EndTime         time.Time     `json:"end_time"   binding:"required"`
	DurationMinutes int           `json:"duration_minutes"`
}

type attendeeReq struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"  binding:"omitempty,oneof=organizer attendee"`
}

func (r meetingReq) toModel() model.ConflictingMeeting {
	attendees := make([]model.Attendee, 0, len(r.Attendees))
	for _, a := range r.Attendees {
		role := model.AttendeeRole(a.Role)
		if role == "" {
			role = model.RoleAttendee
		}
		attendees = append(attendees, model.Attendee{Email: a.Email, Role: role})
	}

	duration := r.DurationMinutes
	if duration <= 0 {
		duration = int(r.EndTime.Sub(r.StartTime).Minutes())
	}

	return model.ConflictingMeeting{
		ID:              r.ID,
		Title:           r.Title,
		Organizer:       r.Organizer,
		Attendees:       attendees,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: duration,
	}
}

type slotReq struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end"   binding:"required"`
	Score float64   `json:"score"`
}

type resolveDirectReq struct {
	Meetings       []meetingReq         `json:"meetings"   binding:"required,min=1,dive"`
	Candidates     map[string][]slotReq `json:"candidates"`
	Mode           string               `json:"mode"           binding:"omitempty,oneof=propose apply"`
	Prioritization string               `json:"prioritization" binding:"omitempty,oneof=oracle given-order"`
}

func (r resolveDirectReq) toInput(defaults Defaults) resolution.ResolveDirectInput {
	meetings := make([]model.ConflictingMeeting, 0, len(r.Meetings))
	for _, m := range r.Meetings {
		meetings = append(meetings, m.toModel())
	}

	candidates := make(map[string][]model.ProposedTimeSlot, len(r.Candidates))
	for id, slots := range r.Candidates {
		converted := make([]model.ProposedTimeSlot, 0, len(slots))
		for _, s := range slots {
			converted = append(converted, model.ProposedTimeSlot{Start: s.Start, End: s.End, Score: s.Score})
		}
		candidates[id] = converted
	}

	return resolution.ResolveDirectInput{
		Meetings:       meetings,
		Candidates:     candidates,
		Mode:           modeOrDefault(r.Mode, defaults.Mode),
		Prioritization: prioritizationOrDefault(r.Prioritization, defaults.Prioritization),
	}
}

func modeOrDefault(raw string, fallback resolution.Mode) resolution.Mode {
	if raw == "" {
		return fallback
	}
	return resolution.Mode(raw)
}

func prioritizationOrDefault(raw string, fallback resolution.Prioritization) resolution.Prioritization {
	if raw == "" {
		return fallback
	}
	return resolution.Prioritization(raw)
}

// --- Response DTOs ---

type resolveResp struct {
	RunID               string                     `json:"run_id"`
	IdentifiedConflicts []model.ConflictingMeeting `json:"identified_conflicts"`
	Reports             []model.ResolutionReport   `json:"reports"`
	Summary             model.RunSummary           `json:"summary"`
	Resolved            []model.ResolvedMeeting    `json:"resolved,omitempty"`
	Errors              []string                   `json:"errors,omitempty"`
}

func (h *handler) newResolveResp(out resolution.ResolveOutput) resolveResp {
	return resolveResp{
		RunID:               out.RunID,
		IdentifiedConflicts: out.IdentifiedConflicts,
		Reports:             out.Reports,
		Summary:             out.Summary,
		Resolved:            out.Resolved,
		Errors:              out.Errors,
	}
}
