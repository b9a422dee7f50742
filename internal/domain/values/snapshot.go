package values

import "fmt"

// ControlCountSnapshot holds per-status control counts for one framework,
// taken from a consistent read of the control set. It is derived on demand
// and never stored.
type ControlCountSnapshot struct {
	Total                int `json:"total"`
	Implemented          int `json:"implemented"`
	PartiallyImplemented int `json:"partially_implemented"`
	NotImplemented       int `json:"not_implemented"`
	NotApplicable        int `json:"not_applicable"`
}

// Applicable returns the number of controls that count toward scoring.
func (s ControlCountSnapshot) Applicable() int {
	return s.Total - s.NotApplicable
}

// Add counts one control with the given status into the snapshot.
func (s *ControlCountSnapshot) Add(status ImplementationStatus) {
	s.Total++
	switch status {
	case StatusImplemented:
		s.Implemented++
	case StatusPartiallyImplemented:
		s.PartiallyImplemented++
	case StatusNotImplemented:
		s.NotImplemented++
	case StatusNotApplicable:
		s.NotApplicable++
	}
}

// Validate returns an error if any count is negative or the per-status
// counts do not sum to the total.
func (s ControlCountSnapshot) Validate() error {
	counts := map[string]int{
		"total":                 s.Total,
		"implemented":           s.Implemented,
		"partially_implemented": s.PartiallyImplemented,
		"not_implemented":       s.NotImplemented,
		"not_applicable":        s.NotApplicable,
	}
	for name, c := range counts {
		if c < 0 {
			return fmt.Errorf("snapshot count %s is negative: %d", name, c)
		}
	}

	sum := s.Implemented + s.PartiallyImplemented + s.NotImplemented + s.NotApplicable
	if sum != s.Total {
		return fmt.Errorf("snapshot counts sum to %d, expected total %d", sum, s.Total)
	}
	return nil
}
