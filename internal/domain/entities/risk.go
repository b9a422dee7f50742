package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/complyops/complyops/internal/domain/values"
)

// RiskTreatment describes how the organization responds to a risk.
type RiskTreatment string

const (
	TreatmentMitigate RiskTreatment = "mitigate"
	TreatmentAccept   RiskTreatment = "accept"
	TreatmentTransfer RiskTreatment = "transfer"
	TreatmentAvoid    RiskTreatment = "avoid"
)

// Risk represents an identified risk scored on a 5x5 likelihood/impact matrix.
// The level is always derived from the scores, never set directly.
type Risk struct {
	ID         values.RecordID  `json:"id"`
	Title      string           `json:"title"`
	Likelihood int              `json:"likelihood"`
	Impact     int              `json:"impact"`
	Level      values.RiskLevel `json:"level"`
	Treatment  RiskTreatment    `json:"treatment,omitempty"`
	OwnerName  string           `json:"owner,omitempty"`
	ControlIDs []values.RecordID `json:"control_ids,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// NewRisk creates a risk, deriving its level from likelihood and impact.
func NewRisk(title string, likelihood, impact int) (*Risk, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("risk title is required")
	}
	if len(title) > 300 {
		return nil, fmt.Errorf("risk title exceeds 300 characters: %d", len(title))
	}

	level, err := values.DeriveRiskLevel(likelihood, impact)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Risk{
		ID:         values.NewRecordID(),
		Title:      title,
		Likelihood: likelihood,
		Impact:     impact,
		Level:      level,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Rescore updates likelihood and impact and re-derives the level.
func (r *Risk) Rescore(likelihood, impact int) error {
	level, err := values.DeriveRiskLevel(likelihood, impact)
	if err != nil {
		return err
	}
	r.Likelihood = likelihood
	r.Impact = impact
	r.Level = level
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// SetTreatment records the chosen treatment.
func (r *Risk) SetTreatment(t RiskTreatment) error {
	switch t {
	case TreatmentMitigate, TreatmentAccept, TreatmentTransfer, TreatmentAvoid:
		r.Treatment = t
		r.UpdatedAt = time.Now().UTC()
		return nil
	default:
		return fmt.Errorf("invalid risk treatment: %s", t)
	}
}
