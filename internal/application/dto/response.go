package dto

import (
	"time"

	"github.com/complyops/complyops/internal/domain/values"
)

// ComplianceReport is the reporting surface for one or more frameworks.
type ComplianceReport struct {
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	Frameworks  []FrameworkReport `json:"frameworks" yaml:"frameworks"`
}

// FrameworkReport carries one framework's score and optional control rows.
type FrameworkReport struct {
	FrameworkID string                      `json:"framework_id" yaml:"framework_id"`
	Name        string                      `json:"name" yaml:"name"`
	Version     string                      `json:"version,omitempty" yaml:"version,omitempty"`
	Snapshot    values.ControlCountSnapshot `json:"snapshot" yaml:"snapshot"`

	// Rate is rounded to one decimal in list context; DetailRate carries
	// the unrounded value when a single framework was requested.
	Rate       float64       `json:"rate" yaml:"rate"`
	DetailRate *float64      `json:"detail_rate,omitempty" yaml:"detail_rate,omitempty"`
	Controls   []ControlRow  `json:"controls,omitempty" yaml:"controls,omitempty"`
}

// ControlRow is a single control line in a report drill-down.
type ControlRow struct {
	Code   string   `json:"code" yaml:"code"`
	Title  string   `json:"title" yaml:"title"`
	Status string   `json:"status" yaml:"status"`
	Owner  string   `json:"owner,omitempty" yaml:"owner,omitempty"`
	Tags   []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// TransitionResponse reports the outcome of an accepted status change.
type TransitionResponse struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	AppliedAt  time.Time `json:"applied_at"`
}

// PolicyRevisionResponse reports a new draft revision.
type PolicyRevisionResponse struct {
	PolicyID    string `json:"policy_id"`
	FromVersion string `json:"from_version"`
	ToVersion   string `json:"to_version"`
}

// CatalogImportResponse reports what an import created.
type CatalogImportResponse struct {
	FrameworkID   string `json:"framework_id"`
	FrameworkName string `json:"framework_name"`
	ControlCount  int    `json:"control_count"`
}
