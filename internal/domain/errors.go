package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by services and mapped to HTTP status codes at the
// handler boundary.
var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("not authorized")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrInvalidState    = errors.New("invalid state")
)

// Validation error types, kept compatible with the ValidationErrors slice so
// handlers can render field-level details.
const (
	ErrRequired     = "required"
	ErrInvalidField = "invalid"
	ErrMaxLength    = "max_length"
	ErrMinLength    = "min_length"
)

type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Type    string      `json:"type"`
	Value   interface{} `json:"-"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message, errType string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Type: errType}
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// IsValidation reports whether err is a field validation failure of either shape.
func IsValidation(err error) bool {
	var single *ValidationError
	var multi ValidationErrors
	return errors.As(err, &single) || errors.As(err, &multi)
}
