package schedule

import "time"

// --- Schedule Domain Model ---

// Schedule is a persisted appointment created from a free-text phrase.
// StartAt and EndAt are local timestamps in the service's configured zone.
type Schedule struct {
	ID              string
	Title           string
	SourceText      string
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
	CalendarEventID string
	HTMLLink        string
	CreatedAt       time.Time
}

// --- UseCase Inputs ---

// QuickAddInput carries the raw phrase and an optional default duration.
type QuickAddInput struct {
	Text           string
	DefaultMinutes int
}

type ListSchedulesInput struct {
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type QuickAddOutput struct {
	Schedule Schedule
}

type ListSchedulesOutput struct {
	Schedules []Schedule
	Total     int
	Limit     int
	Offset    int
}

type DetailScheduleOutput struct {
	Schedule Schedule
}
