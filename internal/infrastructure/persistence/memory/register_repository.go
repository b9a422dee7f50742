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
var (
	_ repositories.EvidenceRepository = (*EvidenceRepository)(nil)
	_ repositories.RiskRepository     = (*RiskRepository)(nil)
	_ repositories.AssetRepository    = (*AssetRepository)(nil)
)

// EvidenceRepository is an in-memory implementation of EvidenceRepository.
type EvidenceRepository struct {
	evidence map[uuid.UUID]*entities.Evidence
	mu       sync.RWMutex
}

// NewEvidenceRepository creates a new in-memory repository.
func NewEvidenceRepository() *EvidenceRepository {
	return &EvidenceRepository{
		evidence: make(map[uuid.UUID]*entities.Evidence),
	}
}

// Save persists an evidence record.
func (r *EvidenceRepository) Save(_ context.Context, evidence *entities.Evidence) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evidence[evidence.ID.UUID()] = evidence
	return nil
}

// FindByID retrieves an evidence record by its unique ID.
func (r *EvidenceRepository) FindByID(_ context.Context, id values.RecordID) (*entities.Evidence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ev, ok := r.evidence[id.UUID()]
	if !ok {
		return nil, entities.NewNotFoundError("evidence", id)
	}
	return ev, nil
}

// FindByControl retrieves all evidence recorded against a control.
func (r *EvidenceRepository) FindByControl(_ context.Context, controlID values.RecordID) ([]*entities.Evidence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*entities.Evidence
	for _, ev := range r.evidence {
		if ev.ControlID.Equals(controlID) {
			matches = append(matches, ev)
		}
	}

	// Sort by collection time descending (newest first)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CollectedAt.After(matches[j].CollectedAt)
	})

	return matches, nil
}

// Delete removes an evidence record by ID.
func (r *EvidenceRepository) Delete(_ context.Context, id values.RecordID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.evidence[id.UUID()]; !ok {
		return entities.NewNotFoundError("evidence", id)
	}
	delete(r.evidence, id.UUID())
	return nil
}

// RiskRepository is an in-memory implementation of RiskRepository.
type RiskRepository struct {
	risks map[uuid.UUID]*entities.Risk
	mu    sync.RWMutex
}

// NewRiskRepository creates a new in-memory repository.
func NewRiskRepository() *RiskRepository {
	return &RiskRepository{
		risks: make(map[uuid.UUID]*entities.Risk),
	}
}

// Save persists a risk.
func (r *RiskRepository) Save(_ context.Context, risk *entities.Risk) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.risks[risk.ID.UUID()] = risk
	return nil
}

// FindByID retrieves a risk by its unique ID.
func (r *RiskRepository) FindByID(_ context.Context, id values.RecordID) (*entities.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risk, ok := r.risks[id.UUID()]
	if !ok {
		return nil, entities.NewNotFoundError("risk", id)
	}
	return risk, nil
}

// FindByMinimumLevel retrieves risks at or above the given level.
func (r *RiskRepository) FindByMinimumLevel(_ context.Context, level values.RiskLevel) ([]*entities.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*entities.Risk
	for _, risk := range r.risks {
		if risk.Level.IsHigherOrEqual(level) {
			matches = append(matches, risk)
		}
	}

	// Sort by level descending, then title
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Level.Rank() != matches[j].Level.Rank() {
			return matches[i].Level.Rank() > matches[j].Level.Rank()
		}
		return matches[i].Title < matches[j].Title
	})

	return matches, nil
}

// Delete removes a risk by ID.
func (r *RiskRepository) Delete(_ context.Context, id values.RecordID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.risks[id.UUID()]; !ok {
		return entities.NewNotFoundError("risk", id)
	}
	delete(r.risks, id.UUID())
	return nil
}

// AssetRepository is an in-memory implementation of AssetRepository.
type AssetRepository struct {
	assets map[uuid.UUID]*entities.Asset
	mu     sync.RWMutex
}

// NewAssetRepository creates a new in-memory repository.
func NewAssetRepository() *AssetRepository {
	return &AssetRepository{
		assets: make(map[uuid.UUID]*entities.Asset),
	}
}

// Save persists an asset.
func (r *AssetRepository) Save(_ context.Context, asset *entities.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assets[asset.ID.UUID()] = asset
	return nil
}

// FindByID retrieves an asset by its unique ID.
func (r *AssetRepository) FindByID(_ context.Context, id values.RecordID) (*entities.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	asset, ok := r.assets[id.UUID()]
	if !ok {
		return nil, entities.NewNotFoundError("asset", id)
	}
	return asset, nil
}

// FindAll retrieves all inventoried assets.
func (r *AssetRepository) FindAll(_ context.Context) ([]*entities.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*entities.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		matches = append(matches, a)
	}

	// Sort by name for stable listing
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Name < matches[j].Name
	})

	return matches, nil
}

// Delete removes an asset by ID.
func (r *AssetRepository) Delete(_ context.Context, id values.RecordID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assets[id.UUID()]; !ok {
		return entities.NewNotFoundError("asset", id)
	}
	delete(r.assets, id.UUID())
	return nil
}
