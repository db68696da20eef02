package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStoreUnavailable = errors.New("document store unavailable")
	ErrLocationRequired = errors.New("location is required")
	ErrInvalidOTP       = errors.New("invalid otp")
)

// FieldError names a single offending input field and what is wrong with it.
type FieldError struct {
	Field   string `json:"field"`
	Problem string `json:"problem"`
}

type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(field, problem string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Problem: problem}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Problem))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
