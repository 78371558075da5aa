package errors

import "fmt"

// HTTPError is a domain error translated for the HTTP delivery layer: it
// carries the status code the response should use.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}
