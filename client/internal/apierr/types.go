// Package apierr provides error classification for the SDK.
// The backend reports business errors as HTTP 4xx/5xx with a JSON
// {"message": "..."} body; transport failures carry no status at all.
// Classification drives the retry policy of the async executor.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Category determines how errors should be handled by retry logic.
type Category int

const (
	// Recoverable errors should be retried with exponential backoff.
	// Examples: 500 Internal Server Error, network timeouts, connection failures.
	Recoverable Category = iota

	// Irrecoverable errors should fail immediately without retry.
	// Examples: 401 Unauthorized, 403 Forbidden, 400 Bad Request.
	// 408 Request Timeout and 429 Too Many Requests are the 4xx
	// exceptions: both are classified Recoverable.
	Irrecoverable
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ErrNotFound is returned when the backend reports 404 for a resource.
var ErrNotFound = errors.New("resource not found")

// ErrUnauthorized is returned when the backend reports 401. The client
// treats it as a signal to invalidate the session.
var ErrUnauthorized = errors.New("unauthorized")

// Error wraps a failed API call with categorization metadata.
// Message holds the backend-supplied message field when one was present.
type Error struct {
	Category   Category
	StatusCode int    // HTTP status code (0 for transport-level errors)
	Message    string // backend "message" field, if any
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.StatusCode > 0 && e.Message != "":
		return fmt.Sprintf("[%s] HTTP %d: %s", e.Category, e.StatusCode, e.Message)
	case e.StatusCode > 0:
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	default:
		return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Underlying }

// Is maps well-known statuses onto the package sentinels so callers can
// use errors.Is without inspecting status codes.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsIrrecoverable reports whether err should not be retried.
func IsIrrecoverable(err error) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Category == Irrecoverable
	}
	return false
}
