package models

import (
	"errors"
	"fmt"
)

// ErrUnknownStudent is returned for names that are not on the roster
var ErrUnknownStudent = errors.New("unknown student")

// ValidationError represents a rejected field value
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", ve.Field, fmt.Sprint(ve.Value), ve.Message)
}
