// Package entities contains domain entities for the GRC domain model.
// These are pure domain types with NO infrastructure dependencies.
package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/complyops/complyops/internal/domain/values"
)

// Framework represents a compliance standard (SOC 2, ISO 27001, ...).
// This is an aggregate root; Controls belong to exactly one Framework
// and reference it by ID.
//
// Invariants Enforced:
// - Name is required and at most 200 characters
// - Version, when set, is a short free-form label (e.g. "2017", "rev5")
type Framework struct {
	ID          values.RecordID `json:"id"`
	Name        string          `json:"name"`
	Version     string          `json:"version,omitempty"`
	Description string          `json:"description,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewFramework creates a framework with a fresh ID, validating required fields.
func NewFramework(name, version, description string) (*Framework, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("framework name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("framework name exceeds 200 characters: %d", len(name))
	}
	if len(version) > 50 {
		return nil, fmt.Errorf("framework version exceeds 50 characters: %d", len(version))
	}

	now := time.Now().UTC()
	return &Framework{
		ID:          values.NewRecordID(),
		Name:        name,
		Version:     version,
		Description: description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Deactivate marks the framework as inactive. Inactive frameworks keep their
// controls but are excluded from compliance reporting.
func (f *Framework) Deactivate() {
	f.Active = false
	f.UpdatedAt = time.Now().UTC()
}

// Activate marks the framework as active again.
func (f *Framework) Activate() {
	f.Active = true
	f.UpdatedAt = time.Now().UTC()
}
