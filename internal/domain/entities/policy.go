package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/complyops/complyops/internal/domain/values"
)

// Policy represents a versioned governance document with a lifecycle
// (draft -> review -> approved -> published -> archived).
//
// Aggregate Boundary:
// - Policy is the root
// - Approvers are value data within the aggregate
// - Linked controls are referenced by ID only; referential integrity is an
//   application concern
type Policy struct {
	ID         values.RecordID        `json:"id"`
	Title      string                 `json:"title"`
	Body       string                 `json:"body,omitempty"`
	Status     values.PolicyStatus    `json:"status"`
	Version    values.SemanticVersion `json:"version"`
	Approvers  []string               `json:"approvers,omitempty"`
	ControlIDs []values.RecordID      `json:"control_ids,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// NewPolicy creates a draft policy at version 1.0.0.
func NewPolicy(title, body string) (*Policy, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("policy title is required")
	}
	if len(title) > 300 {
		return nil, fmt.Errorf("policy title exceeds 300 characters: %d", len(title))
	}

	now := time.Now().UTC()
	return &Policy{
		ID:        values.NewRecordID(),
		Title:     title,
		Body:      body,
		Status:    values.PolicyDraft,
		Version:   values.InitialVersion(),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ApproverCount returns the number of recorded approvers
func (p *Policy) ApproverCount() int {
	return len(p.Approvers)
}

// AddApprover records an approver if not already present.
func (p *Policy) AddApprover(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("approver name is required")
	}
	for _, a := range p.Approvers {
		if a == name {
			return nil
		}
	}
	p.Approvers = append(p.Approvers, name)
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// LinkControl references a control from this policy if not already linked.
func (p *Policy) LinkControl(controlID values.RecordID) error {
	if controlID.IsZero() {
		return fmt.Errorf("control ID is required")
	}
	for _, id := range p.ControlIDs {
		if id.Equals(controlID) {
			return nil
		}
	}
	p.ControlIDs = append(p.ControlIDs, controlID)
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// SetStatus applies an already-validated status change. Callers run the
// transition guard first; this method only records the outcome.
func (p *Policy) SetStatus(status values.PolicyStatus) {
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
}

// RevisionBump selects how far a new policy revision moves the version.
type RevisionBump string

const (
	BumpMinor RevisionBump = "minor"
	BumpMajor RevisionBump = "major"
)

// NewRevision returns the policy to draft at the next minor or major version.
// Approvers are cleared: a new revision must be re-approved.
func (p *Policy) NewRevision(bump RevisionBump) error {
	switch bump {
	case BumpMinor:
		p.Version = p.Version.NextMinor()
	case BumpMajor:
		p.Version = p.Version.NextMajor()
	default:
		return fmt.Errorf("invalid revision bump: %s", bump)
	}

	p.Status = values.PolicyDraft
	p.Approvers = nil
	p.UpdatedAt = time.Now().UTC()
	return nil
}
