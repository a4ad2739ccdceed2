package domain

import "fmt"

// ValidationError reports a rejected caller input. Transport layers map it to a client error.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

// NewValidationError creates a validation error for the given field and offending value
func NewValidationError(field, value, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
