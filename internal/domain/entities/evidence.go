package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/complyops/complyops/internal/domain/values"
)

// Evidence represents a collected artifact demonstrating a control is in
// place (a screenshot, an export, a signed attestation). The artifact itself
// lives outside this system; Location points at it.
type Evidence struct {
	ID          values.RecordID `json:"id"`
	ControlID   values.RecordID `json:"control_id"`
	Title       string          `json:"title"`
	Location    string          `json:"location,omitempty"`
	CollectedAt time.Time       `json:"collected_at"`
	ExpiresAt   time.Time       `json:"expires_at,omitempty"`
	CollectedBy string          `json:"collected_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewEvidence records an evidence artifact against a control.
func NewEvidence(controlID values.RecordID, title string, collectedAt time.Time) (*Evidence, error) {
	if controlID.IsZero() {
		return nil, fmt.Errorf("evidence control ID is required")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("evidence title is required")
	}
	if len(title) > 300 {
		return nil, fmt.Errorf("evidence title exceeds 300 characters: %d", len(title))
	}
	if collectedAt.IsZero() {
		return nil, fmt.Errorf("evidence collection time is required")
	}

	return &Evidence{
		ID:          values.NewRecordID(),
		ControlID:   controlID,
		Title:       title,
		CollectedAt: collectedAt,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// IsExpired returns true if the evidence has an expiry in the past.
// Evidence without an expiry never expires.
func (e *Evidence) IsExpired(now time.Time) bool {
	if e.ExpiresAt.IsZero() {
		return false
	}
	return now.After(e.ExpiresAt)
}
