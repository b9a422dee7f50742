package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/complyops/complyops/internal/domain/values"
)

// Audit represents an audit engagement against a framework over a period.
type Audit struct {
	ID          values.RecordID    `json:"id"`
	FrameworkID values.RecordID    `json:"framework_id"`
	Name        string             `json:"name"`
	Auditor     string             `json:"auditor,omitempty"`
	Status      values.AuditStatus `json:"status"`
	PeriodStart time.Time          `json:"period_start"`
	PeriodEnd   time.Time          `json:"period_end"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// NewAudit creates a planned audit for a framework.
func NewAudit(frameworkID values.RecordID, name string, periodStart, periodEnd time.Time) (*Audit, error) {
	if frameworkID.IsZero() {
		return nil, fmt.Errorf("audit framework ID is required")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("audit name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("audit name exceeds 200 characters: %d", len(name))
	}
	if periodEnd.Before(periodStart) {
		return nil, fmt.Errorf("audit period end precedes start")
	}

	now := time.Now().UTC()
	return &Audit{
		ID:          values.NewRecordID(),
		FrameworkID: frameworkID,
		Name:        name,
		Status:      values.AuditPlanned,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetStatus applies an already-validated status change. Callers run the
// transition guard first.
func (a *Audit) SetStatus(status values.AuditStatus) {
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
}

// Finding represents an issue raised during an audit, with its own
// remediation lifecycle.
type Finding struct {
	ID          values.RecordID      `json:"id"`
	AuditID     values.RecordID      `json:"audit_id"`
	ControlID   values.RecordID      `json:"control_id,omitempty"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Severity    values.RiskLevel     `json:"severity"`
	Status      values.FindingStatus `json:"status"`
	DueDate     time.Time            `json:"due_date,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// NewFinding creates an open finding under an audit.
func NewFinding(auditID values.RecordID, title string, severity values.RiskLevel) (*Finding, error) {
	if auditID.IsZero() {
		return nil, fmt.Errorf("finding audit ID is required")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("finding title is required")
	}
	if len(title) > 300 {
		return nil, fmt.Errorf("finding title exceeds 300 characters: %d", len(title))
	}

	now := time.Now().UTC()
	return &Finding{
		ID:        values.NewRecordID(),
		AuditID:   auditID,
		Title:     title,
		Severity:  severity,
		Status:    values.FindingOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetStatus applies an already-validated status change. Callers run the
// transition guard first.
func (f *Finding) SetStatus(status values.FindingStatus) {
	f.Status = status
	f.UpdatedAt = time.Now().UTC()
}

// IsOverdue returns true if the finding has a due date in the past and is
// still unresolved.
func (f *Finding) IsOverdue(now time.Time) bool {
	if f.DueDate.IsZero() || f.Status.IsResolved() {
		return false
	}
	return now.After(f.DueDate)
}
