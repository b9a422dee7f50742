package entities

import (
	"fmt"

	"github.com/complyops/complyops/internal/domain/values"
)

// NotFoundError indicates a referenced record does not exist.
type NotFoundError struct {
	Kind string
	ID   values.RecordID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID.String())
}

// NewNotFoundError creates a not-found error for a record kind.
func NewNotFoundError(kind string, id values.RecordID) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// DuplicateError indicates a record with the same natural key already exists.
type DuplicateError struct {
	Kind string
	Key  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Kind, e.Key)
}

// NewDuplicateError creates a duplicate-key error for a record kind.
func NewDuplicateError(kind, key string) *DuplicateError {
	return &DuplicateError{Kind: kind, Key: key}
}
