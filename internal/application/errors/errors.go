// Package apperrors defines application-level error types.
package apperrors

import "fmt"

// ValidationError indicates a request failed input validation.
type ValidationError struct {
	Field   string   // Field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s (%d issues)", e.Field, e.Message, len(e.Details))
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// TransitionError indicates a lifecycle rule rejected a status change.
// It wraps the domain guard's rejection so callers can surface the reason
// as a rejected request rather than a server fault.
type TransitionError struct {
	Cause error
	Kind  string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition rejected for %s: %v", e.Kind, e.Cause)
}

func (e *TransitionError) Unwrap() error {
	return e.Cause
}

// NewTransitionError creates a new transition error.
func NewTransitionError(kind string, cause error) *TransitionError {
	return &TransitionError{Kind: kind, Cause: cause}
}

// StorageError indicates a repository operation failed.
type StorageError struct {
	Cause     error
	Operation string
	Message   string
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage error (%s): %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("storage error (%s): %s", e.Operation, e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new storage error.
func NewStorageError(operation, message string, cause error) *StorageError {
	return &StorageError{
		Operation: operation,
		Message:   message,
		Cause:     cause,
	}
}

// ImportError indicates a catalog import failed (not validation of a single
// field, but the import as a whole).
type ImportError struct {
	Cause  error
	Source string
}

func (e *ImportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog import failed (%s): %v", e.Source, e.Cause)
	}
	return fmt.Sprintf("catalog import failed (%s)", e.Source)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}

// NewImportError creates a new import error.
func NewImportError(source string, cause error) *ImportError {
	return &ImportError{Source: source, Cause: cause}
}
