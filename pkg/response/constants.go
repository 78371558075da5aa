package response

// Messages and codes shared by every JSON response.
const (
	MessageSuccess      = "success"
	DefaultErrorMessage = "something went wrong"

	InternalServerErrorCode = 500
)

// Formats used by the Date and DateTime marshalers. DateTimeFormat is
// zone-naive on purpose: timestamps are interpreted against the service's
// configured zone.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04:05"
)
