package engine

import (
	"time"

	"meeting-conflict-resolver/internal/model"
)

// ConflictPair is a pair of meetings overlapping in time, with the
// computed overlap window.
type ConflictPair struct {
	A            model.ConflictingMeeting
	B            model.ConflictingMeeting
	OverlapStart time.Time
	OverlapEnd   time.Time
}

// ConflictSet is a non-empty group of meetings transitively linked by
// time overlap plus at least one shared attendee. A meeting belongs to
// exactly one set per run.
type ConflictSet struct {
	Meetings []model.ConflictingMeeting
}

// Contains reports whether the set has a meeting with the given id.
func (s ConflictSet) Contains(meetingID string) bool {
	for _, m := range s.Meetings {
		if m.ID == meetingID {
			return true
		}
	}
	return false
}

// BookedSlot is an interval committed during greedy assignment.
type BookedSlot struct {
	Start     time.Time
	End       time.Time
	MeetingID string
}

// Registry is the run-scoped, append-only record of booked intervals.
// Invariant: no two slots in the registry overlap.
type Registry struct {
	slots []BookedSlot
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Book appends an interval. Callers must check Conflicts first; the
// registry is never rewritten.
func (r *Registry) Book(start, end time.Time, meetingID string) {
	r.slots = append(r.slots, BookedSlot{Start: start, End: end, MeetingID: meetingID})
}

// Conflicts reports whether [start, end) overlaps any booked interval.
func (r *Registry) Conflicts(start, end time.Time) bool {
	for _, s := range r.slots {
		if Overlaps(start, end, s.Start, s.End) {
			return true
		}
	}
	return false
}

// Slots returns the booked intervals in booking order.
func (r *Registry) Slots() []BookedSlot {
	return r.slots
}
