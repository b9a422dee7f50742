// Package memory provides in-memory implementations of domain repositories.
// Useful for testing and ephemeral storage.
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
var _ repositories.FrameworkRepository = (*FrameworkRepository)(nil)

// FrameworkRepository is an in-memory implementation of FrameworkRepository.
type FrameworkRepository struct {
	frameworks map[uuid.UUID]*entities.Framework
	mu         sync.RWMutex
}

// NewFrameworkRepository creates a new in-memory repository.
func NewFrameworkRepository() *FrameworkRepository {
	return &FrameworkRepository{
		frameworks: make(map[uuid.UUID]*entities.Framework),
	}
}

// Save persists a framework.
func (r *FrameworkRepository) Save(_ context.Context, framework *entities.Framework) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Callers should not modify the entity after saving if they want consistency.
	r.frameworks[framework.ID.UUID()] = framework
	return nil
}

// FindByID retrieves a framework by its unique ID.
func (r *FrameworkRepository) FindByID(_ context.Context, id values.RecordID) (*entities.Framework, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	framework, ok := r.frameworks[id.UUID()]
	if !ok {
		return nil, entities.NewNotFoundError("framework", id)
	}
	return framework, nil
}

// FindAll retrieves all frameworks, optionally restricted to active ones.
func (r *FrameworkRepository) FindAll(_ context.Context, activeOnly bool) ([]*entities.Framework, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*entities.Framework
	for _, f := range r.frameworks {
		if activeOnly && !f.Active {
			continue
		}
		matches = append(matches, f)
	}

	// Sort by name for stable listing
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Name < matches[j].Name
	})

	return matches, nil
}

// Delete removes a framework by ID.
func (r *FrameworkRepository) Delete(_ context.Context, id values.RecordID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.frameworks[id.UUID()]; !ok {
		return entities.NewNotFoundError("framework", id)
	}
	delete(r.frameworks, id.UUID())
	return nil
}
