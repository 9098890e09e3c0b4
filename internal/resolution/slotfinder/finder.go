package slotfinder

import (
	"time"

	"meeting-conflict-resolver/internal/model"
	"meeting-conflict-resolver/internal/resolution/engine"
)

const (
	defaultGranularity   = 30 * time.Minute
	defaultMaxCandidates = 5

	// Candidate slots are confined to working hours, local to the
	// finder's location.
	workdayStartHour = 9
	workdayEndHour   = 17
)

// Finder scans a scheduling window for candidate replacement slots that
// are free for every attendee of a meeting.
type Finder struct {
	granularity   time.Duration
	maxCandidates int
	location      *time.Location
}

// Option configures a Finder.
type Option func(*Finder)

// WithGranularity sets the scan step between candidate start times.
func WithGranularity(d time.Duration) Option {
	return func(f *Finder) {
		if d > 0 {
			f.granularity = d
		}
	}
}

// WithMaxCandidates caps how many candidates are returned per meeting.
func WithMaxCandidates(n int) Option {
	return func(f *Finder) {
		if n > 0 {
			f.maxCandidates = n
		}
	}
}

// WithLocation sets the timezone used for working-hours boundaries.
func WithLocation(loc *time.Location) Option {
	return func(f *Finder) {
		if loc != nil {
			f.location = loc
		}
	}
}

// New creates a Finder with the given options.
func New(opts ...Option) *Finder {
	f := &Finder{
		granularity:   defaultGranularity,
		maxCandidates: defaultMaxCandidates,
		location:      time.UTC,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Find returns scored candidate slots for the meeting inside the given
// window. A candidate keeps the original duration, falls inside working
// hours on a weekday, and overlaps no busy interval of any attendee.
// Candidates are returned in scan order; scores encode preference.
func (f *Finder) Find(meeting model.ConflictingMeeting, windowStart, windowEnd time.Time, busy map[string][]model.Interval) []model.ProposedTimeSlot {
	duration := time.Duration(meeting.DurationMinutes) * time.Minute
	if duration <= 0 {
		duration = meeting.EndTime.Sub(meeting.StartTime)
	}
	if duration <= 0 {
		return nil
	}

	attendees := meeting.AttendeeEmails()

	var candidates []model.ProposedTimeSlot
	for start := f.alignUp(windowStart); !start.Add(duration).After(windowEnd); start = start.Add(f.granularity) {
		end := start.Add(duration)

		if !f.withinWorkingHours(start, end) {
			continue
		}
		// The meeting's current slot is not a candidate for itself.
		if start.Equal(meeting.StartTime) && end.Equal(meeting.EndTime) {
			continue
		}

		slot := model.ProposedTimeSlot{Start: start, End: end}
		if engine.SlotConflictsBusy(slot, attendees, busy) {
			continue
		}

		slot.Score = scoreProximity(meeting.StartTime, start)
		candidates = append(candidates, slot)
		if len(candidates) >= f.maxCandidates {
			break
		}
	}
	return candidates
}

// alignUp rounds t up to the next granularity boundary.
func (f *Finder) alignUp(t time.Time) time.Time {
	aligned := t.Truncate(f.granularity)
	if aligned.Before(t) {
		aligned = aligned.Add(f.granularity)
	}
	return aligned
}

// withinWorkingHours reports whether [start, end) fits a single weekday
// working window in the finder's location.
func (f *Finder) withinWorkingHours(start, end time.Time) bool {
	ls, le := start.In(f.location), end.In(f.location)

	if ls.Weekday() == time.Saturday || ls.Weekday() == time.Sunday {
		return false
	}

	dayStart := time.Date(ls.Year(), ls.Month(), ls.Day(), workdayStartHour, 0, 0, 0, f.location)
	dayEnd := time.Date(ls.Year(), ls.Month(), ls.Day(), workdayEndHour, 0, 0, 0, f.location)

	return !ls.Before(dayStart) && !le.After(dayEnd)
}

// scoreProximity favors slots close to the meeting's original start.
// Score decays with distance; 1.0 means same start time.
func scoreProximity(original, candidate time.Time) float64 {
	distance := candidate.Sub(original)
	if distance < 0 {
		distance = -distance
	}
	return 1.0 / (1.0 + distance.Hours())
}
