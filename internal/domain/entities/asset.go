package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/complyops/complyops/internal/domain/values"
)

// AssetKind classifies an asset in the inventory.
type AssetKind string

const (
	AssetHardware AssetKind = "hardware"
	AssetSoftware AssetKind = "software"
	AssetData     AssetKind = "data"
	AssetService  AssetKind = "service"
	AssetPeople   AssetKind = "people"
)

// Asset represents an inventoried asset subject to governance.
type Asset struct {
	ID          values.RecordID  `json:"id"`
	Name        string           `json:"name"`
	Kind        AssetKind        `json:"kind"`
	OwnerName   string           `json:"owner,omitempty"`
	Criticality values.RiskLevel `json:"criticality"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewAsset creates an inventoried asset.
func NewAsset(name string, kind AssetKind, criticality values.RiskLevel) (*Asset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("asset name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("asset name exceeds 200 characters: %d", len(name))
	}

	switch kind {
	case AssetHardware, AssetSoftware, AssetData, AssetService, AssetPeople:
	default:
		return nil, fmt.Errorf("invalid asset kind: %s", kind)
	}

	now := time.Now().UTC()
	return &Asset{
		ID:          values.NewRecordID(),
		Name:        name,
		Kind:        kind,
		Criticality: criticality,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
