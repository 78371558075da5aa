package gcalendar

import "context"

// ICalendar is the calendar-provider surface the schedule domain depends
// on. The concrete Client talks to Google Calendar; tests substitute mocks.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}
