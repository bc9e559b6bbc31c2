package domain

import (
	"errors"
	"strings"
)

// Error kinds. Match with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Error is a domain error with a client-facing message
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NotFound returns an ErrNotFound error with message
func NotFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// Conflict returns an ErrConflict error with message
func Conflict(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

// ValidationError carries one message per rejected field or rule
type ValidationError struct {
	Errors []string
}

// NewValidationError builds a ValidationError from messages
func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Errors: msgs}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}
