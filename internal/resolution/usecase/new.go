package usecase

import (
	"context"
	"time"

	"meeting-conflict-resolver/internal/model"
	"meeting-conflict-resolver/pkg/gcalendar"
	"meeting-conflict-resolver/pkg/llmprovider"
	pkgLog "meeting-conflict-resolver/pkg/log"
)

// CalendarClient is the calendar surface the resolver depends on.
type CalendarClient interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	QueryFreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) (map[string][]gcalendar.BusyInterval, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// RuleStore fetches per-user scheduling priority rules.
type RuleStore interface {
	RulesFor(ctx context.Context, email string) ([]string, error)
}

// Oracle ranks conflicting meetings and proposes replacement slots.
type Oracle interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// SlotFinder produces scored candidate slots for a meeting.
type SlotFinder interface {
	Find(meeting model.ConflictingMeeting, windowStart, windowEnd time.Time, busy map[string][]model.Interval) []model.ProposedTimeSlot
}

type implUseCase struct {
	l        pkgLog.Logger
	calendar CalendarClient
	rules    RuleStore
	oracle   Oracle
	finder   SlotFinder
	timezone string
}

// New creates a new resolution UseCase instance.
func New(
	l pkgLog.Logger,
	calendar CalendarClient,
	rules RuleStore,
	oracle Oracle,
	finder SlotFinder,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:        l,
		calendar: calendar,
		rules:    rules,
		oracle:   oracle,
		finder:   finder,
		timezone: timezone,
	}
}
