// ABOUTME: Structured error type for backend request failures
// ABOUTME: One shape for both non-2xx responses and transport failures

package api

import "fmt"

// fallbackMessage is used when a failed response carries no usable message.
const fallbackMessage = "request failed"

// Error is the failure value for every backend call. For non-2xx responses
// Status holds the HTTP status and Details the parsed response body. For
// transport failures Status is 0 and the underlying error is reachable
// through Unwrap.
type Error struct {
	Message string
	Status  int
	Details any

	cause error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
	}
	return "backend: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// transportError wraps a failure from the HTTP transport itself.
func transportError(err error) *Error {
	return &Error{
		Message: err.Error(),
		cause:   err,
	}
}
