package domain

import (
	"errors"
	"strings"
)

// Registration errors
var (
	ErrDuplicateRegistration = errors.New("registration already exists within the dedup window")
	ErrRegistrationNotFound  = errors.New("registration not found")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized access")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// ValidationError carries the accumulated field error messages of a
// rejected submission. All rules are checked; nothing short-circuits.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, ", ")
}

// NewValidationError wraps a non-empty list of field messages
func NewValidationError(fields []string) *ValidationError {
	return &ValidationError{Fields: fields}
}
