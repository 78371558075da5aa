package usecase

import (
	"context"
	"errors"
	"testing"

	"quicksched/internal/schedule"
)

func TestDetail(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(t, repo, &mockCalendar{})

	created, err := uc.QuickAdd(context.Background(), schedule.QuickAddInput{Text: "arzt morgen 10:00"})
	if err != nil {
		t.Fatalf("QuickAdd: %v", err)
	}

	out, err := uc.Detail(context.Background(), created.Schedule.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if out.Schedule.ID != created.Schedule.ID {
		t.Errorf("Detail returned wrong schedule: %+v", out.Schedule)
	}

	if _, err := uc.Detail(context.Background(), "missing"); !errors.Is(err, schedule.ErrScheduleNotFound) {
		t.Errorf("expected ErrScheduleNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newMockRepo()
	cal := &mockCalendar{}
	uc := newTestUseCase(t, repo, cal)

	created, err := uc.QuickAdd(context.Background(), schedule.QuickAddInput{Text: "arzt morgen 10:00"})
	if err != nil {
		t.Fatalf("QuickAdd: %v", err)
	}

	if err := uc.Delete(context.Background(), created.Schedule.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(cal.deleted) != 1 || cal.deleted[0] != "event-1" {
		t.Errorf("provider event not deleted: %v", cal.deleted)
	}
	if len(repo.schedules) != 0 {
		t.Errorf("record not removed: %v", repo.schedules)
	}

	if err := uc.Delete(context.Background(), created.Schedule.ID); !errors.Is(err, schedule.ErrScheduleNotFound) {
		t.Errorf("expected ErrScheduleNotFound on second delete, got %v", err)
	}
}

func TestDeleteProviderFailureStillRemovesRecord(t *testing.T) {
	repo := newMockRepo()
	cal := &mockCalendar{failDelete: true}
	uc := newTestUseCase(t, repo, cal)

	created, err := uc.QuickAdd(context.Background(), schedule.QuickAddInput{Text: "arzt morgen 10:00"})
	if err != nil {
		t.Fatalf("QuickAdd: %v", err)
	}

	if err := uc.Delete(context.Background(), created.Schedule.ID); err != nil {
		t.Fatalf("Delete must tolerate provider failure: %v", err)
	}
	if len(repo.schedules) != 0 {
		t.Errorf("record not removed: %v", repo.schedules)
	}
}
