package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Failure reasons for augmenter errors.
const (
	ReasonDisabled  = "disabled"
	ReasonTimeout   = "timeout"
	ReasonAuth      = "auth"
	ReasonTransport = "transport"
)

// ProviderError is a typed augmenter failure. The reason drives logging and
// the degraded-mode note in rendered output.
type ProviderError struct {
	Reason  string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("search: %s: %s: %v", e.Reason, e.Message, e.Err)
	}
	return fmt.Sprintf("search: %s: %s", e.Reason, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewProviderError creates a typed augmenter error.
func NewProviderError(reason, message string, err error) *ProviderError {
	return &ProviderError{Reason: reason, Message: message, Err: err}
}

// Reason extracts the failure reason from err, defaulting to transport.
func Reason(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Reason
	}
	return ReasonTransport
}

// statusError represents an HTTP error response from the search API.
type statusError struct {
	StatusCode int
	Message    string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("search api: %d %s", e.StatusCode, e.Message)
}

// mapError translates API and network errors into typed ProviderError values.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewProviderError(ReasonTimeout, "request timed out or cancelled", err)
	}

	var se *statusError
	if errors.As(err, &se) {
		switch {
		case se.StatusCode == 401 || se.StatusCode == 403:
			return NewProviderError(ReasonAuth, se.Message, err)
		default:
			return NewProviderError(ReasonTransport, se.Message, err)
		}
	}

	msg := err.Error()
	if strings.Contains(msg, "deadline exceeded") || strings.Contains(msg, "Client.Timeout") {
		return NewProviderError(ReasonTimeout, "request timed out", err)
	}

	return NewProviderError(ReasonTransport, "search api unreachable", err)
}
