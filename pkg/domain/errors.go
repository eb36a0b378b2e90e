package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrConfiguration is returned when persisted state is not provisioned the way
	// the application expects, e.g. an individual missing one of its accounts.
	ErrConfiguration = errors.New("configuration error")
	// ErrUnauthorized is returned when credentials do not match
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError describes a single field that failed validation.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError returns a *ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ConfigurationError reports the account kinds an owner is missing or holds
// more than once.
type ConfigurationError struct {
	Owner     string
	Missing   []string
	Duplicate []string
}

func (e *ConfigurationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing account(s): "+strings.Join(e.Missing, ", "))
	}
	if len(e.Duplicate) > 0 {
		parts = append(parts, "duplicate account(s): "+strings.Join(e.Duplicate, ", "))
	}
	return fmt.Sprintf("%s: individual %s has %s", ErrConfiguration, e.Owner, strings.Join(parts, "; "))
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }
