package values

import "fmt"

// PolicyStatus represents the lifecycle state of a policy document.
type PolicyStatus string

const (
	PolicyDraft     PolicyStatus = "draft"
	PolicyReview    PolicyStatus = "review"
	PolicyApproved  PolicyStatus = "approved"
	PolicyPublished PolicyStatus = "published"
	PolicyArchived  PolicyStatus = "archived"
)

// IsActive returns true if the policy is visible to the organization
func (s PolicyStatus) IsActive() bool {
	return s == PolicyPublished
}

// IsTerminal returns true if the policy has left normal circulation
func (s PolicyStatus) IsTerminal() bool {
	return s == PolicyArchived
}

// Validate returns an error if the status value is invalid
func (s PolicyStatus) Validate() error {
	switch s {
	case PolicyDraft, PolicyReview, PolicyApproved, PolicyPublished, PolicyArchived:
		return nil
	default:
		return fmt.Errorf("invalid policy status: %s", s)
	}
}

// AuditStatus represents the lifecycle state of an audit engagement.
type AuditStatus string

const (
	AuditPlanned     AuditStatus = "planned"
	AuditInProgress  AuditStatus = "in_progress"
	AuditUnderReview AuditStatus = "under_review"
	AuditCompleted   AuditStatus = "completed"
	AuditCancelled   AuditStatus = "cancelled"
)

// Validate returns an error if the status value is invalid
func (s AuditStatus) Validate() error {
	switch s {
	case AuditPlanned, AuditInProgress, AuditUnderReview, AuditCompleted, AuditCancelled:
		return nil
	default:
		return fmt.Errorf("invalid audit status: %s", s)
	}
}

// FindingStatus represents the remediation state of an audit finding.
type FindingStatus string

const (
	FindingOpen          FindingStatus = "open"
	FindingInRemediation FindingStatus = "in_remediation"
	FindingRemediated    FindingStatus = "remediated"
	FindingClosed        FindingStatus = "closed"
	FindingAccepted      FindingStatus = "accepted"
	FindingVerified      FindingStatus = "verified"
	FindingDeferred      FindingStatus = "deferred"
)

// IsResolved returns true if the finding no longer requires remediation work
func (s FindingStatus) IsResolved() bool {
	return s == FindingClosed || s == FindingAccepted || s == FindingVerified
}

// Validate returns an error if the status value is invalid
func (s FindingStatus) Validate() error {
	switch s {
	case FindingOpen, FindingInRemediation, FindingRemediated, FindingClosed,
		FindingAccepted, FindingVerified, FindingDeferred:
		return nil
	default:
		return fmt.Errorf("invalid finding status: %s", s)
	}
}
