// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import (
	"database/sql/driver"
	"fmt"
)

// ImplementationStatus represents how far a control has been implemented.
type ImplementationStatus string

const (
	// StatusNotImplemented indicates no implementation work has happened
	StatusNotImplemented ImplementationStatus = "not_implemented"
	// StatusPartiallyImplemented indicates implementation is underway but incomplete
	StatusPartiallyImplemented ImplementationStatus = "partially_implemented"
	// StatusImplemented indicates the control is fully in place
	StatusImplemented ImplementationStatus = "implemented"
	// StatusNotApplicable indicates the control does not apply to this organization
	StatusNotApplicable ImplementationStatus = "not_applicable"
)

// Weight returns the scoring weight of this status.
// Used by the compliance scorer when computing implementation rates.
//
// Weights: Implemented (1.0) > PartiallyImplemented (0.5) > NotImplemented (0).
// NotApplicable carries no weight because it is excluded from the applicable base.
func (s ImplementationStatus) Weight() float64 {
	switch s {
	case StatusImplemented:
		return 1.0
	case StatusPartiallyImplemented:
		return 0.5
	default:
		return 0
	}
}

// IsApplicable returns true if this status counts toward the applicable base
func (s ImplementationStatus) IsApplicable() bool {
	return s != StatusNotApplicable
}

// IsImplemented returns true if the control is fully implemented
func (s ImplementationStatus) IsImplemented() bool {
	return s == StatusImplemented
}

// Validate returns an error if the status value is invalid
func (s ImplementationStatus) Validate() error {
	switch s {
	case StatusNotImplemented, StatusPartiallyImplemented, StatusImplemented, StatusNotApplicable:
		return nil
	default:
		return fmt.Errorf("invalid implementation status: %s", s)
	}
}

// Value implements driver.Valuer for database/sql
func (s ImplementationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Scan implements sql.Scanner for database/sql
func (s *ImplementationStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		status := ImplementationStatus(v)
		if err := status.Validate(); err != nil {
			return err
		}
		*s = status
		return nil
	case []byte:
		status := ImplementationStatus(v)
		if err := status.Validate(); err != nil {
			return err
		}
		*s = status
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ImplementationStatus", value)
	}
}
