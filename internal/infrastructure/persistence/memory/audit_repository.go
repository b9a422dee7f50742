package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/complyops/complyops/internal/domain/entities"
	"github.com/complyops/complyops/internal/domain/repositories"
	"github.com/complyops/complyops/internal/domain/values"
)

// Ensure interface compliance
var _ repositories.AuditRepository = (*AuditRepository)(nil)

// AuditRepository is an in-memory implementation of AuditRepository.
// Audits and findings share one repository because findings live inside the
// audit aggregate boundary.
type AuditRepository struct {
	audits   map[uuid.UUID]*entities.Audit
	findings map[uuid.UUID]*entities.Finding
	mu       sync.RWMutex
}

// NewAuditRepository creates a new in-memory repository.
func NewAuditRepository() *AuditRepository {
	return &AuditRepository{
		audits:   make(map[uuid.UUID]*entities.Audit),
		findings: make(map[uuid.UUID]*entities.Finding),
	}
}

// SaveAudit persists an audit.
func (r *AuditRepository) SaveAudit(_ context.Context, audit *entities.Audit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.audits[audit.ID.UUID()] = audit
	return nil
}

// FindAuditByID retrieves an audit by its unique ID.
func (r *AuditRepository) FindAuditByID(_ context.Context, id values.RecordID) (*entities.Audit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	audit, ok := r.audits[id.UUID()]
	if !ok {
		return nil, entities.NewNotFoundError("audit", id)
	}
	return audit, nil
}

// SaveFinding persists a finding.
func (r *AuditRepository) SaveFinding(_ context.Context, finding *entities.Finding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.findings[finding.ID.UUID()] = finding
	return nil
}

// FindFindingByID retrieves a finding by its unique ID.
func (r *AuditRepository) FindFindingByID(_ context.Context, id values.RecordID) (*entities.Finding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	finding, ok := r.findings[id.UUID()]
	if !ok {
		return nil, entities.NewNotFoundError("finding", id)
	}
	return finding, nil
}

// FindFindingsByAudit retrieves all findings raised under an audit.
func (r *AuditRepository) FindFindingsByAudit(_ context.Context, auditID values.RecordID) ([]*entities.Finding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*entities.Finding
	for _, f := range r.findings {
		if f.AuditID.Equals(auditID) {
			matches = append(matches, f)
		}
	}

	// Sort by severity descending, then title
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Severity.Rank() != matches[j].Severity.Rank() {
			return matches[i].Severity.Rank() > matches[j].Severity.Rank()
		}
		return matches[i].Title < matches[j].Title
	})

	return matches, nil
}
