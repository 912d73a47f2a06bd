package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrGeneration    = errors.New("generation failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
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

// GenerationError is the only error shape returned by the generation client.
// Message is safe to show to the end user; Cause is for logs.
type GenerationError struct {
	ContentType ContentType
	Message     string
	Cause       error
}

func (e *GenerationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("generate %s: %s", e.ContentType, e.Message)
	}
	return fmt.Sprintf("generate %s: %s: %v", e.ContentType, e.Message, e.Cause)
}

// Unwrap exposes both the generation sentinel and the underlying cause.
func (e *GenerationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrGeneration}
	}
	return []error{ErrGeneration, e.Cause}
}

// NewGenerationError wraps cause with the user-facing failure message of ct.
func NewGenerationError(ct ContentType, cause error) *GenerationError {
	return &GenerationError{
		ContentType: ct,
		Message:     ct.FailureMessage(),
		Cause:       cause,
	}
}
