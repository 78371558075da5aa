package repository

import "time"

// CreateScheduleOptions holds parameters for inserting a new Schedule.
type CreateScheduleOptions struct {
	ID              string
	Title           string
	SourceText      string
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
	CalendarEventID string
	HTMLLink        string
}

// GetOneScheduleOptions holds filter parameters for fetching a single
// Schedule. All non-empty fields are applied as AND conditions.
type GetOneScheduleOptions struct {
	ID string
}

// ListSchedulesOptions holds filter and pagination parameters for listing
// Schedules. Zero From/To disable the window filter.
type ListSchedulesOptions struct {
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}
