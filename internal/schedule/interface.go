package schedule

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// QuickAdd parses a free-text phrase into an appointment, creates the
	// calendar event and persists the record.
	QuickAdd(ctx context.Context, input QuickAddInput) (QuickAddOutput, error)

	// Schedule record CRUD
	List(ctx context.Context, input ListSchedulesInput) (ListSchedulesOutput, error)
	Detail(ctx context.Context, id string) (DetailScheduleOutput, error)
	Delete(ctx context.Context, id string) error
}
