package gcalendar

import "time"

// LocalDateTimeFormat is the zone-naive layout sent to the provider; the
// event's TimeZone field carries the IANA zone separately.
const LocalDateTimeFormat = "2006-01-02T15:04:05"

// CreateEventRequest is the input for creating a calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Zurich"
}

// Event is a simplified representation of a provider event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest is the input for listing calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
