package usecase

import (
	"context"

	"quicksched/internal/schedule"
	repo "quicksched/internal/schedule/repository"
)

// List returns a paginated list of Schedules, optionally windowed by start
// time.
func (uc *implUseCase) List(ctx context.Context, input schedule.ListSchedulesInput) (schedule.ListSchedulesOutput, error) {
	scheds, total, err := uc.repo.ListSchedules(ctx, repo.ListSchedulesOptions{
		From:   input.From,
		To:     input.To,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListSchedules: %v", err)
		return schedule.ListSchedulesOutput{}, err
	}

	return schedule.ListSchedulesOutput{
		Schedules: scheds,
		Total:     total,
		Limit:     input.Limit,
		Offset:    input.Offset,
	}, nil
}
