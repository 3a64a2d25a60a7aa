// Package errors defines error types shared across the gostream library.
package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration indicates invalid configuration or arguments
// supplied to a library constructor.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ValidationError describes a rejected configuration value. It wraps
// ErrInvalidConfiguration so callers can match with errors.Is.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a remediation hint and returns the error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s %s (got %v)", e.Module, e.Field, e.Reason, e.Value)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrInvalidConfiguration) matching.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}
