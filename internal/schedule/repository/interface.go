package repository

import (
	"context"

	"quicksched/internal/schedule"
)

// Repository is the composed interface for the schedule record store.
type Repository interface {
	ScheduleRepository
}

// ScheduleRepository defines all data access methods for Schedule records.
type ScheduleRepository interface {
	CreateSchedule(ctx context.Context, opt CreateScheduleOptions) (schedule.Schedule, error)
	GetOneSchedule(ctx context.Context, opt GetOneScheduleOptions) (schedule.Schedule, error)
	ListSchedules(ctx context.Context, opt ListSchedulesOptions) ([]schedule.Schedule, int, error)
	DeleteSchedule(ctx context.Context, id string) error
}
