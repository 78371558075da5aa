package schedule

import "errors"

var (
	ErrEmptyInput       = errors.New("schedule text is empty")
	ErrScheduleNotFound = errors.New("schedule not found")
)
