package apierr

import (
	"encoding/json"
	"fmt"
)

// FromResponse builds a classified error from a non-2xx backend response.
// The body is parsed for the conventional {"message": "..."} shape; an
// unparseable body is kept verbatim as the message.
func FromResponse(operation string, statusCode int, body []byte) *Error {
	msg := extractMessage(body)
	return &Error{
		Category:   categoryFor(statusCode),
		StatusCode: statusCode,
		Message:    msg,
		Underlying: fmt.Errorf("%s: status %d", operation, statusCode),
	}
}

// NewNetworkError creates a classified error for transport-level failures.
// Network errors are always recoverable as they may be transient.
func NewNetworkError(operation string, err error) *Error {
	return &Error{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s: %w", operation, err),
	}
}

// categoryFor maps HTTP status codes to retry categories:
// 4xx client errors (except 408/429) are irrecoverable, 5xx and anything
// unexpected are recoverable.
func categoryFor(statusCode int) Category {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		return Recoverable
	}
}

func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return string(body)
}
