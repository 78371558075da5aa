package quickparse

import "time"

// Defaults and limits applied when the input carries no usable token.
const (
	// DefaultTitle is used when stripping every matched token leaves
	// nothing behind.
	DefaultTitle = "Termin"

	// DefaultHour is the start hour assumed when no time token is present.
	DefaultHour = 9

	// DefaultDurationMinutes is used when the caller supplies a
	// non-positive default.
	DefaultDurationMinutes = 60

	// MinDurationMinutes and MaxDurationMinutes bound every extracted
	// duration (5 minutes to 12 hours).
	MinDurationMinutes = 5
	MaxDurationMinutes = 720
)

// Result is the structured schedule proposal extracted from a phrase.
// Start and End carry the parser's configured location; rendering them
// zone-naive is the caller's concern.
type Result struct {
	Title           string
	Start           time.Time
	End             time.Time
	DurationMinutes int
}
