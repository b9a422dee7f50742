package values

import (
	"fmt"
	"strings"
)

// RiskLevel represents the assessed level of a risk.
// Enforces valid level values and provides ordering.
type RiskLevel struct {
	value riskRank
}

// riskRank is the internal representation
type riskRank int

const (
	rankUnknown  riskRank = 0
	rankLow      riskRank = 1
	rankMedium   riskRank = 2
	rankHigh     riskRank = 3
	rankCritical riskRank = 4
)

// Predefined risk level values
var (
	RiskUnknown  = RiskLevel{rankUnknown}
	RiskLow      = RiskLevel{rankLow}
	RiskMedium   = RiskLevel{rankMedium}
	RiskHigh     = RiskLevel{rankHigh}
	RiskCritical = RiskLevel{rankCritical}
)

// NewRiskLevel creates a RiskLevel from string
func NewRiskLevel(s string) (RiskLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "low":
		return RiskLow, nil
	case "medium":
		return RiskMedium, nil
	case "high":
		return RiskHigh, nil
	case "critical":
		return RiskCritical, nil
	case "":
		return RiskUnknown, nil
	default:
		return RiskLevel{}, fmt.Errorf("invalid risk level: %s", s)
	}
}

// MustNewRiskLevel creates a RiskLevel or panics
func MustNewRiskLevel(s string) RiskLevel {
	level, err := NewRiskLevel(s)
	if err != nil {
		panic(err)
	}
	return level
}

// DeriveRiskLevel maps a likelihood x impact product onto a level.
// Likelihood and impact are 1-5 scores; the product is bucketed so that
// a 5x5 matrix yields the conventional four-band heat map.
func DeriveRiskLevel(likelihood, impact int) (RiskLevel, error) {
	if likelihood < 1 || likelihood > 5 {
		return RiskLevel{}, fmt.Errorf("likelihood must be 1-5, got %d", likelihood)
	}
	if impact < 1 || impact > 5 {
		return RiskLevel{}, fmt.Errorf("impact must be 1-5, got %d", impact)
	}

	score := likelihood * impact
	switch {
	case score >= 15:
		return RiskCritical, nil
	case score >= 8:
		return RiskHigh, nil
	case score >= 4:
		return RiskMedium, nil
	default:
		return RiskLow, nil
	}
}

// String returns the string representation
func (r RiskLevel) String() string {
	switch r.value {
	case rankLow:
		return "low"
	case rankMedium:
		return "medium"
	case rankHigh:
		return "high"
	case rankCritical:
		return "critical"
	default:
		return ""
	}
}

// Rank returns the numeric level (for ordering)
func (r RiskLevel) Rank() int {
	return int(r.value)
}

// IsHigherThan returns true if this level is higher than the other
func (r RiskLevel) IsHigherThan(other RiskLevel) bool {
	return r.value > other.value
}

// IsHigherOrEqual returns true if this level is higher or equal to the other
func (r RiskLevel) IsHigherOrEqual(other RiskLevel) bool {
	return r.value >= other.value
}

// Equals checks if two risk levels are equal
func (r RiskLevel) Equals(other RiskLevel) bool {
	return r.value == other.value
}

// MarshalJSON implements json.Marshaler
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) < 2 {
		return fmt.Errorf("invalid risk level JSON")
	}
	str = str[1 : len(str)-1]

	level, err := NewRiskLevel(str)
	if err != nil {
		return err
	}
	*r = level
	return nil
}
