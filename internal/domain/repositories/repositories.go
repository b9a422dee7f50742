// Package repositories defines interfaces for domain persistence.
// Concrete backends live in infrastructure; the domain and application
// layers depend only on these contracts.
package repositories

import (
	"context"

	"github.com/complyops/complyops/internal/domain/entities"
	"github.com/complyops/complyops/internal/domain/values"
)

// FrameworkRepository persists compliance frameworks.
type FrameworkRepository interface {
	// Save persists a framework (insert or update by ID).
	Save(ctx context.Context, framework *entities.Framework) error

	// FindByID retrieves a framework by its unique ID.
	FindByID(ctx context.Context, id values.RecordID) (*entities.Framework, error)

	// FindAll retrieves all frameworks, optionally restricted to active ones.
	FindAll(ctx context.Context, activeOnly bool) ([]*entities.Framework, error)

	// Delete removes a framework by ID.
	Delete(ctx context.Context, id values.RecordID) error
}

// ControlRepository persists controls and answers the count queries the
// compliance scorer needs.
type ControlRepository interface {
	// Save persists a control (insert or update by ID).
	Save(ctx context.Context, control *entities.Control) error

	// FindByID retrieves a control by its unique ID.
	FindByID(ctx context.Context, id values.RecordID) (*entities.Control, error)

	// FindByFramework retrieves all active controls under a framework.
	FindByFramework(ctx context.Context, frameworkID values.RecordID) ([]*entities.Control, error)

	// CountByStatus returns per-status counts of active controls under a
	// framework, from one consistent read.
	CountByStatus(ctx context.Context, frameworkID values.RecordID) (values.ControlCountSnapshot, error)

	// Delete removes a control by ID.
	Delete(ctx context.Context, id values.RecordID) error
}

// PolicyRepository persists governance policies.
type PolicyRepository interface {
	// Save persists a policy (insert or update by ID).
	Save(ctx context.Context, policy *entities.Policy) error

	// FindByID retrieves a policy by its unique ID.
	FindByID(ctx context.Context, id values.RecordID) (*entities.Policy, error)

	// FindByStatus retrieves all policies in the given status.
	FindByStatus(ctx context.Context, status values.PolicyStatus) ([]*entities.Policy, error)

	// Delete removes a policy by ID.
	Delete(ctx context.Context, id values.RecordID) error
}

// EvidenceRepository persists evidence records.
type EvidenceRepository interface {
	// Save persists an evidence record (insert or update by ID).
	Save(ctx context.Context, evidence *entities.Evidence) error

	// FindByID retrieves an evidence record by its unique ID.
	FindByID(ctx context.Context, id values.RecordID) (*entities.Evidence, error)

	// FindByControl retrieves all evidence recorded against a control.
	FindByControl(ctx context.Context, controlID values.RecordID) ([]*entities.Evidence, error)

	// Delete removes an evidence record by ID.
	Delete(ctx context.Context, id values.RecordID) error
}

// RiskRepository persists risk register entries.
type RiskRepository interface {
	// Save persists a risk (insert or update by ID).
	Save(ctx context.Context, risk *entities.Risk) error

	// FindByID retrieves a risk by its unique ID.
	FindByID(ctx context.Context, id values.RecordID) (*entities.Risk, error)

	// FindByMinimumLevel retrieves risks at or above the given level.
	FindByMinimumLevel(ctx context.Context, level values.RiskLevel) ([]*entities.Risk, error)

	// Delete removes a risk by ID.
	Delete(ctx context.Context, id values.RecordID) error
}

// AuditRepository persists audits and their findings.
type AuditRepository interface {
	// SaveAudit persists an audit (insert or update by ID).
	SaveAudit(ctx context.Context, audit *entities.Audit) error

	// FindAuditByID retrieves an audit by its unique ID.
	FindAuditByID(ctx context.Context, id values.RecordID) (*entities.Audit, error)

	// SaveFinding persists a finding (insert or update by ID).
	SaveFinding(ctx context.Context, finding *entities.Finding) error

	// FindFindingByID retrieves a finding by its unique ID.
	FindFindingByID(ctx context.Context, id values.RecordID) (*entities.Finding, error)

	// FindFindingsByAudit retrieves all findings raised under an audit.
	FindFindingsByAudit(ctx context.Context, auditID values.RecordID) ([]*entities.Finding, error)
}

// AssetRepository persists the asset inventory.
type AssetRepository interface {
	// Save persists an asset (insert or update by ID).
	Save(ctx context.Context, asset *entities.Asset) error

	// FindByID retrieves an asset by its unique ID.
	FindByID(ctx context.Context, id values.RecordID) (*entities.Asset, error)

	// FindAll retrieves all inventoried assets.
	FindAll(ctx context.Context) ([]*entities.Asset, error)

	// Delete removes an asset by ID.
	Delete(ctx context.Context, id values.RecordID) error
}
