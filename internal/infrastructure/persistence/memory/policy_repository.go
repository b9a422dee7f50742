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
var _ repositories.PolicyRepository = (*PolicyRepository)(nil)

// PolicyRepository is an in-memory implementation of PolicyRepository.
type PolicyRepository struct {
	policies map[uuid.UUID]*entities.Policy
	mu       sync.RWMutex
}

// NewPolicyRepository creates a new in-memory repository.
func NewPolicyRepository() *PolicyRepository {
	return &PolicyRepository{
		policies: make(map[uuid.UUID]*entities.Policy),
	}
}

// Save persists a policy.
func (r *PolicyRepository) Save(_ context.Context, policy *entities.Policy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.policies[policy.ID.UUID()] = policy
	return nil
}

// FindByID retrieves a policy by its unique ID.
func (r *PolicyRepository) FindByID(_ context.Context, id values.RecordID) (*entities.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	policy, ok := r.policies[id.UUID()]
	if !ok {
		return nil, entities.NewNotFoundError("policy", id)
	}
	return policy, nil
}

// FindByStatus retrieves all policies in the given status.
func (r *PolicyRepository) FindByStatus(_ context.Context, status values.PolicyStatus) ([]*entities.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*entities.Policy
	for _, p := range r.policies {
		if p.Status == status {
			matches = append(matches, p)
		}
	}

	// Sort by title for stable listing
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Title < matches[j].Title
	})

	return matches, nil
}

// Delete removes a policy by ID.
func (r *PolicyRepository) Delete(_ context.Context, id values.RecordID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.policies[id.UUID()]; !ok {
		return entities.NewNotFoundError("policy", id)
	}
	delete(r.policies, id.UUID())
	return nil
}
