package core

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrStreamClosed   = errors.New("stream closed")
	ErrNoResponseBody = errors.New("response has no body")
	ErrMissingToken   = errors.New("API token is missing")
)

// ConfigError represents configuration-related errors
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// APIError represents a non-success response from the halap API.
// Message carries the server-provided error message when the response body was
// parseable, otherwise a generic "{operation}: HTTP {status}" description.
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.Operation, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: HTTP %d", e.Operation, e.StatusCode)
}

// ValidationError represents input validation failures detected before any
// request is sent.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in field %s: %s (value: %v)", e.Field, e.Message, e.Value)
}
