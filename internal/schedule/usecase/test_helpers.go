package usecase

import (
	"context"
	"errors"

	"quicksched/internal/schedule"
	"quicksched/internal/schedule/repository"
	"quicksched/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// Mock repository backed by a map
type mockRepo struct {
	fail      bool
	schedules map[string]schedule.Schedule
	created   []repository.CreateScheduleOptions
}

func newMockRepo() *mockRepo {
	return &mockRepo{schedules: make(map[string]schedule.Schedule)}
}

func (m *mockRepo) CreateSchedule(ctx context.Context, opt repository.CreateScheduleOptions) (schedule.Schedule, error) {
	if m.fail {
		return schedule.Schedule{}, errors.New("db error")
	}
	m.created = append(m.created, opt)
	sched := schedule.Schedule{
		ID:              opt.ID,
		Title:           opt.Title,
		SourceText:      opt.SourceText,
		StartAt:         opt.StartAt,
		EndAt:           opt.EndAt,
		DurationMinutes: opt.DurationMinutes,
		CalendarEventID: opt.CalendarEventID,
		HTMLLink:        opt.HTMLLink,
	}
	m.schedules[sched.ID] = sched
	return sched, nil
}

func (m *mockRepo) GetOneSchedule(ctx context.Context, opt repository.GetOneScheduleOptions) (schedule.Schedule, error) {
	if m.fail {
		return schedule.Schedule{}, errors.New("db error")
	}
	return m.schedules[opt.ID], nil
}

func (m *mockRepo) ListSchedules(ctx context.Context, opt repository.ListSchedulesOptions) ([]schedule.Schedule, int, error) {
	if m.fail {
		return nil, 0, errors.New("db error")
	}
	var scheds []schedule.Schedule
	for _, s := range m.schedules {
		scheds = append(scheds, s)
	}
	return scheds, len(scheds), nil
}

func (m *mockRepo) DeleteSchedule(ctx context.Context, id string) error {
	if m.fail {
		return errors.New("db error")
	}
	delete(m.schedules, id)
	return nil
}

// Mock calendar provider
type mockCalendar struct {
	fail       bool
	failDelete bool
	created    []gcalendar.CreateEventRequest
	deleted    []string
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("provider error")
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{
		ID:        "event-1",
		Summary:   req.Summary,
		HtmlLink:  "https://calendar.google.com/event-1",
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return nil, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if m.failDelete {
		return errors.New("provider error")
	}
	m.deleted = append(m.deleted, eventID)
	return nil
}
