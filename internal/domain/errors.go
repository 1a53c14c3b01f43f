package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrMissingScope = errors.New("no brand selected")
	ErrTimezone     = errors.New("timezone conversion error")
	ErrNetwork      = errors.New("network error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NetworkError is returned when a remote call fails or the server responds
// with a non-success status. Message carries the server-provided text.
type NetworkError struct {
	Status  int
	Message string
}

func (e *NetworkError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("network: status %d", e.Status)
	}
	return fmt.Sprintf("network: status %d: %s", e.Status, e.Message)
}

func (e *NetworkError) Unwrap() error { return ErrNetwork }

// NewNetworkError creates a NetworkError from a status code and server message.
func NewNetworkError(status int, message string) *NetworkError {
	return &NetworkError{Status: status, Message: message}
}
