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
var _ repositories.ControlRepository = (*ControlRepository)(nil)

// ControlRepository is an in-memory implementation of ControlRepository.
type ControlRepository struct {
	controls map[uuid.UUID]*entities.Control
	mu       sync.RWMutex
}

// NewControlRepository creates a new in-memory repository.
func NewControlRepository() *ControlRepository {
	return &ControlRepository{
		controls: make(map[uuid.UUID]*entities.Control),
	}
}

// Save persists a control.
func (r *ControlRepository) Save(_ context.Context, control *entities.Control) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.controls[control.ID.UUID()] = control
	return nil
}

// FindByID retrieves a control by its unique ID.
func (r *ControlRepository) FindByID(_ context.Context, id values.RecordID) (*entities.Control, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	control, ok := r.controls[id.UUID()]
	if !ok {
		return nil, entities.NewNotFoundError("control", id)
	}
	return control, nil
}

// FindByFramework retrieves all active controls under a framework.
func (r *ControlRepository) FindByFramework(_ context.Context, frameworkID values.RecordID) ([]*entities.Control, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*entities.Control
	for _, c := range r.controls {
		if c.Active && c.FrameworkID.Equals(frameworkID) {
			matches = append(matches, c)
		}
	}

	// Sort by code for stable listing
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Code < matches[j].Code
	})

	return matches, nil
}

// CountByStatus returns per-status counts of active controls under a
// framework. Counts come from one pass under the read lock, so the snapshot
// sum invariant holds.
func (r *ControlRepository) CountByStatus(_ context.Context, frameworkID values.RecordID) (values.ControlCountSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var snapshot values.ControlCountSnapshot
	for _, c := range r.controls {
		if c.Active && c.FrameworkID.Equals(frameworkID) {
			snapshot.Add(c.Status)
		}
	}
	return snapshot, nil
}

// Delete removes a control by ID.
func (r *ControlRepository) Delete(_ context.Context, id values.RecordID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.controls[id.UUID()]; !ok {
		return entities.NewNotFoundError("control", id)
	}
	delete(r.controls, id.UUID())
	return nil
}
