// Package dto defines the request and response shapes exchanged between
// the interface layer and the application use cases.
package dto

// ComplianceReportRequest asks for implementation rates.
type ComplianceReportRequest struct {
	// FrameworkID limits the report to one framework. Empty means all
	// active frameworks.
	FrameworkID string

	// FilterExpression optionally narrows the control drill-down,
	// e.g. `status == "not_implemented" && "access" in tags`.
	FilterExpression string

	// IncludeControls requests per-control rows in addition to the
	// framework-level scores.
	IncludeControls bool
}

// PolicyTransitionRequest asks to move a policy to a new lifecycle status.
type PolicyTransitionRequest struct {
	PolicyID        string
	RequestedStatus string
}

// PolicyRevisionRequest asks for a new draft revision of a policy.
type PolicyRevisionRequest struct {
	PolicyID string
	Bump     string // "minor" or "major"
}

// AuditTransitionRequest asks to move an audit to a new status.
type AuditTransitionRequest struct {
	AuditID         string
	RequestedStatus string
}

// FindingTransitionRequest asks to move a finding to a new status.
type FindingTransitionRequest struct {
	FindingID       string
	RequestedStatus string
}

// ControlStatusRequest asks to reassign a control's implementation status.
type ControlStatusRequest struct {
	ControlID string
	Status    string
}

// CatalogImportRequest asks to import a framework catalog from a YAML file.
type CatalogImportRequest struct {
	Path string
}
