package domain

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// getValidator lazily initializes and returns the shared validator instance.
func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New()
	})
	return validatorInst
}

// ValidateStruct validates a struct using go-playground/validator and maps
// errors into the project's ValidationErrors format for consistent handling.
func ValidateStruct(model interface{}) error {
	if err := getValidator().Struct(model); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			mapped := make(ValidationErrors, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				mapped = append(mapped, ValidationError{
					Field:   fieldErr.Field(),
					Message: formatValidationMessage(fieldErr),
					Type:    ErrInvalidField,
					Value:   fieldErr.Value(),
				})
			}
			return mapped
		}
		return err
	}
	return nil
}

func formatValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must not exceed %s", err.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "url":
		return "must be a valid URL"
	default:
		return err.Error()
	}
}

// Sanitizer strips HTML from free-text user content before persistence.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *Sanitizer) Clean(input string) string {
	return strings.TrimSpace(s.policy.Sanitize(input))
}

func (s *Sanitizer) CleanAll(inputs []string) []string {
	result := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if cleaned := s.Clean(input); cleaned != "" {
			result = append(result, cleaned)
		}
	}
	return result
}
