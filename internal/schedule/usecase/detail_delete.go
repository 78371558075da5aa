package usecase

import (
	"context"

	"quicksched/internal/schedule"
	repo "quicksched/internal/schedule/repository"
)

// Detail returns a single Schedule by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (schedule.DetailScheduleOutput, error) {
	sched, err := uc.repo.GetOneSchedule(ctx, repo.GetOneScheduleOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneSchedule: %v", err)
		return schedule.DetailScheduleOutput{}, err
	}
	if sched.ID == "" {
		return schedule.DetailScheduleOutput{}, schedule.ErrScheduleNotFound
	}
	return schedule.DetailScheduleOutput{Schedule: sched}, nil
}

// Delete removes a Schedule record and best-effort deletes its linked
// provider event. A failing provider delete does not block removal of the
// record.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	sched, err := uc.repo.GetOneSchedule(ctx, repo.GetOneScheduleOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneSchedule: %v", err)
		return err
	}
	if sched.ID == "" {
		return schedule.ErrScheduleNotFound
	}

	if uc.calendar != nil && sched.CalendarEventID != "" {
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, sched.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "uc.Delete DeleteEvent: %v", err)
		}
	}

	if err := uc.repo.DeleteSchedule(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteSchedule: %v", err)
		return err
	}
	return nil
}
