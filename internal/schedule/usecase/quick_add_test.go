package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quicksched/internal/schedule"
	"quicksched/pkg/quickparse"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestUseCase(t *testing.T, repo *mockRepo, cal *mockCalendar) *implUseCase {
	t.Helper()

	parser, err := quickparse.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected parser error: %v", err)
	}

	now := time.Date(2026, 1, 1, 8, 30, 0, 0, time.UTC)
	if cal == nil {
		// Pass an untyped nil so the usecase sees no provider at all.
		return New(&mockLogger{}, repo, parser, nil, "primary", fixedClock(now))
	}
	return New(&mockLogger{}, repo, parser, cal, "primary", fixedClock(now))
}

func TestQuickAdd(t *testing.T) {
	repo := newMockRepo()
	cal := &mockCalendar{}
	uc := newTestUseCase(t, repo, cal)

	out, err := uc.QuickAdd(context.Background(), schedule.QuickAddInput{
		Text:           "arzt 24.01 09:15 30min",
		DefaultMinutes: 60,
	})
	if err != nil {
		t.Fatalf("QuickAdd: %v", err)
	}

	sched := out.Schedule
	if sched.Title != "arzt" {
		t.Errorf("Title = %q, want arzt", sched.Title)
	}
	wantStart := time.Date(2026, 1, 24, 9, 15, 0, 0, time.UTC)
	if !sched.StartAt.Equal(wantStart) {
		t.Errorf("StartAt = %v, want %v", sched.StartAt, wantStart)
	}
	if sched.DurationMinutes != 30 {
		t.Errorf("DurationMinutes = %d, want 30", sched.DurationMinutes)
	}
	if sched.CalendarEventID != "event-1" {
		t.Errorf("CalendarEventID = %q, want event-1", sched.CalendarEventID)
	}
	if sched.SourceText != "arzt 24.01 09:15 30min" {
		t.Errorf("SourceText lost: %q", sched.SourceText)
	}

	if len(cal.created) != 1 {
		t.Fatalf("expected 1 provider event, got %d", len(cal.created))
	}
	if cal.created[0].Timezone != "UTC" {
		t.Errorf("event timezone = %q, want UTC", cal.created[0].Timezone)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected exactly 1 persisted record, got %d", len(repo.created))
	}
}

func TestQuickAddEmptyInput(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(t, repo, &mockCalendar{})

	_, err := uc.QuickAdd(context.Background(), schedule.QuickAddInput{Text: "   "})
	if !errors.Is(err, schedule.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("nothing must be persisted on empty input")
	}
}

func TestQuickAddWithoutCalendar(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(t, repo, nil)

	out, err := uc.QuickAdd(context.Background(), schedule.QuickAddInput{
		Text:           "coiffeur morgen 13 60min",
		DefaultMinutes: 60,
	})
	if err != nil {
		t.Fatalf("QuickAdd: %v", err)
	}
	if out.Schedule.CalendarEventID != "" {
		t.Errorf("expected no calendar event, got %q", out.Schedule.CalendarEventID)
	}
	wantStart := time.Date(2026, 1, 2, 13, 0, 0, 0, time.UTC)
	if !out.Schedule.StartAt.Equal(wantStart) {
		t.Errorf("StartAt = %v, want %v", out.Schedule.StartAt, wantStart)
	}
}

func TestQuickAddProviderFailure(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(t, repo, &mockCalendar{fail: true})

	if _, err := uc.QuickAdd(context.Background(), schedule.QuickAddInput{Text: "arzt morgen"}); err == nil {
		t.Fatalf("expected provider error")
	}
	if len(repo.created) != 0 {
		t.Errorf("record must not be persisted when the provider fails")
	}
}

func TestQuickAddReproducible(t *testing.T) {
	input := schedule.QuickAddInput{Text: "physio übermorgen 8.15 30min", DefaultMinutes: 60}

	first, err := newTestUseCase(t, newMockRepo(), &mockCalendar{}).QuickAdd(context.Background(), input)
	if err != nil {
		t.Fatalf("QuickAdd: %v", err)
	}
	second, err := newTestUseCase(t, newMockRepo(), &mockCalendar{}).QuickAdd(context.Background(), input)
	if err != nil {
		t.Fatalf("QuickAdd: %v", err)
	}

	// IDs differ; the parsed proposal must not.
	if !first.Schedule.StartAt.Equal(second.Schedule.StartAt) ||
		!first.Schedule.EndAt.Equal(second.Schedule.EndAt) ||
		first.Schedule.Title != second.Schedule.Title ||
		first.Schedule.DurationMinutes != second.Schedule.DurationMinutes {
		t.Errorf("quick-add not reproducible with a fixed clock: %+v vs %+v", first.Schedule, second.Schedule)
	}
}
