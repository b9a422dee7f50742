// Package services contains domain services that encapsulate business logic
// spanning multiple entities. These services are stateless and can be called
// from use cases, reporting, or future workers.
package services

import (
	"math"

	"github.com/complyops/complyops/internal/domain/values"
)

// ComplianceScorer computes framework implementation rates from control counts.
// It is stateless; every method is a pure function of its inputs.
type ComplianceScorer struct{}

// NewComplianceScorer creates a new compliance scorer service.
func NewComplianceScorer() *ComplianceScorer {
	return &ComplianceScorer{}
}

// ImplementationRate computes the implementation percentage for one framework.
//
// Business Rule: Partial credit for in-progress work
// - Implemented controls count fully, partially implemented count half
// - Not-applicable controls are excluded from the base entirely
// - A framework with no applicable controls scores 0, not an error
//
// The zero-applicable case scoring 0 (rather than 100 or undefined) is a
// deliberate business default: an empty or fully waived framework has not
// demonstrated any compliance yet.
//
// Counts must be non-negative; that is a caller contract, not checked here.
func (s *ComplianceScorer) ImplementationRate(snapshot values.ControlCountSnapshot) float64 {
	applicable := snapshot.Applicable()
	if applicable <= 0 {
		return 0
	}

	weighted := float64(snapshot.Implemented) + 0.5*float64(snapshot.PartiallyImplemented)
	return weighted / float64(applicable) * 100
}

// ImplementationRateRounded computes the implementation percentage rounded to
// one decimal place, round-half-up. Used in list and summary contexts where a
// stable display value matters; detail contexts use the unrounded rate.
func (s *ComplianceScorer) ImplementationRateRounded(snapshot values.ControlCountSnapshot) float64 {
	return math.Floor(s.ImplementationRate(snapshot)*10+0.5) / 10
}

// FrameworkScore pairs a framework identifier with its rounded implementation rate.
type FrameworkScore struct {
	FrameworkID values.RecordID             `json:"framework_id"`
	Snapshot    values.ControlCountSnapshot `json:"snapshot"`
	Rate        float64                     `json:"rate"`
}

// ScoreFrameworks computes one rounded score per framework snapshot.
// Input order is preserved in the output.
func (s *ComplianceScorer) ScoreFrameworks(snapshots map[values.RecordID]values.ControlCountSnapshot, order []values.RecordID) []FrameworkScore {
	scores := make([]FrameworkScore, 0, len(order))
	for _, id := range order {
		snapshot, ok := snapshots[id]
		if !ok {
			continue
		}
		scores = append(scores, FrameworkScore{
			FrameworkID: id,
			Snapshot:    snapshot,
			Rate:        s.ImplementationRateRounded(snapshot),
		})
	}
	return scores
}
