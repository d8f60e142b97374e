package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every *ValidationError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError reports a rejected input value and the field it belongs to.
type ValidationError struct {
	// Field is the JSON name of the offending field (e.g. "distanceRatePerKm", "weather").
	Field string `json:"field"`
	// Reason is a human readable explanation.
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is lets callers test for ErrInvalidInput without knowing the field.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
