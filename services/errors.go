package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateEmail is returned when creating a record whose email is
	// already taken within its collection
	ErrDuplicateEmail = errors.New("a record with this email already exists")

	// ErrDuplicateEnquiry is returned when an enquiry shares both email and
	// mobile with an existing one
	ErrDuplicateEnquiry = errors.New("an enquiry with this email and mobile already exists")

	// ErrEnquiryNotFound is returned by the enquiry store for unknown ids
	ErrEnquiryNotFound = errors.New("enquiry not found")

	// ErrInvalidTransition is returned when a status update violates the
	// enquiry transition table
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError carries field-level validation messages for bad input.
// No record is persisted when validation fails.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// newValidationError builds a ValidationError, returning nil when there are
// no field messages
func newValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
