// Package errors provides sentinel errors for the daprgen CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrMissingProjectName indicates that neither an override nor an answer
	// supplied a project name.
	ErrMissingProjectName = errors.New("missing project name")

	// ErrInvalidProjectName indicates a project name that cannot be used as a
	// directory and resource name.
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrUnknownTemplateKey indicates a language or component with no registry entry.
	ErrUnknownTemplateKey = errors.New("unknown template key")

	// ErrDuplicateDestination indicates two planned operations writing the same path.
	ErrDuplicateDestination = errors.New("duplicate destination")

	// ErrGenerationFailed indicates a file operation failed while executing a plan.
	ErrGenerationFailed = errors.New("generation failed")
)

// IsConfiguration reports whether err is a configuration error, i.e. one
// detected before any filesystem mutation.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrMissingProjectName) ||
		errors.Is(err, ErrInvalidProjectName) ||
		errors.Is(err, ErrUnknownTemplateKey) ||
		errors.Is(err, ErrDuplicateDestination)
}

// DetailError captures structured error information for terminal output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Field is the selection or config field name (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
