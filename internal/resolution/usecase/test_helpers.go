package usecase

import (
	"context"
	"time"

	"meeting-conflict-resolver/internal/model"
	"meeting-conflict-resolver/pkg/gcalendar"
	"meeting-conflict-resolver/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock calendar client for testing
type mockCalendar struct {
	events       map[string][]gcalendar.Event // keyed by calendar id
	listErr      error
	busy         map[string][]gcalendar.BusyInterval
	freeBusyErr  error
	created      []gcalendar.CreateEventRequest
	createErr    error
	freeBusyHits int
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events[req.CalendarID], nil
}

func (m *mockCalendar) QueryFreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) (map[string][]gcalendar.BusyInterval, error) {
	m.freeBusyHits++
	if m.freeBusyErr != nil {
		return nil, m.freeBusyErr
	}
	if m.busy == nil {
		return map[string][]gcalendar.BusyInterval{}, nil
	}
	return m.busy, nil
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "created-" + req.Summary, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

// Mock rule store for testing
type mockRuleStore struct {
	rules map[string][]string
	err   error
}

func (m *mockRuleStore) RulesFor(ctx context.Context, email string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rules[email], nil
}

// Mock oracle for testing
type mockOracle struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (m *mockOracle) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.prompts = append(m.prompts, req.Prompt)
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.response, ProviderName: "mock", ModelName: "mock-model"}, nil
}

// Mock slot finder for testing
type mockFinder struct {
	slots map[string][]model.ProposedTimeSlot // keyed by meeting id
}

func (m *mockFinder) Find(meeting model.ConflictingMeeting, windowStart, windowEnd time.Time, busy map[string][]model.Interval) []model.ProposedTimeSlot {
	return m.slots[meeting.ID]
}
