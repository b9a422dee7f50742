package services

import (
	"fmt"

	"github.com/complyops/complyops/internal/domain/values"
)

// InvalidTransitionError indicates a requested status change violates a
// lifecycle rule. It is returned as a value; callers decide whether to
// surface it as a rejected request.
type InvalidTransitionError struct {
	Kind   string
	From   string
	To     string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition %s -> %s: %s", e.Kind, e.From, e.To, e.Reason)
}

// TransitionContext supplies facts a lifecycle rule may need beyond the two
// statuses, such as the approver count recorded on a policy.
type TransitionContext struct {
	ApproverCount int
}

// TransitionGuard validates requested status changes for policies, findings,
// and audits. The tables are open: only prohibitions are encoded, and any
// transition not explicitly forbidden is allowed. Control implementation
// status is deliberately unguarded; owners may reassign it freely.
//
// The guard is stateless and performs no I/O. It never persists anything;
// callers apply the new status only when the check returns nil.
type TransitionGuard struct{}

// NewTransitionGuard creates a new transition guard service.
func NewTransitionGuard() *TransitionGuard {
	return &TransitionGuard{}
}

// CheckPolicy validates a policy status transition.
//
// Prohibitions:
// - draft -> published: a policy must pass through review/approval first
// - archived -> anything but draft: archived policies can only be restored
// - -> approved with zero approvers recorded
func (g *TransitionGuard) CheckPolicy(current, requested values.PolicyStatus, tctx TransitionContext) error {
	if current == values.PolicyDraft && requested == values.PolicyPublished {
		return g.reject("policy", string(current), string(requested),
			"cannot publish directly from draft")
	}

	if current == values.PolicyArchived && requested != values.PolicyDraft {
		return g.reject("policy", string(current), string(requested),
			"archived policy can only be restored to draft")
	}

	if requested == values.PolicyApproved && tctx.ApproverCount <= 0 {
		return g.reject("policy", string(current), string(requested),
			"cannot approve without approvers")
	}

	return nil
}

// CheckFinding validates a finding status transition.
//
// Prohibitions:
// - closed -> anything but open or accepted
func (g *TransitionGuard) CheckFinding(current, requested values.FindingStatus) error {
	if current == values.FindingClosed &&
		requested != values.FindingOpen && requested != values.FindingAccepted {
		return g.reject("finding", string(current), string(requested),
			"closed finding can only be reopened or accepted")
	}

	return nil
}

// CheckAudit validates an audit status transition.
//
// Prohibitions:
// - cancelled -> anything but planned
// - completed -> anything but under_review or cancelled
func (g *TransitionGuard) CheckAudit(current, requested values.AuditStatus) error {
	if current == values.AuditCancelled && requested != values.AuditPlanned {
		return g.reject("audit", string(current), string(requested),
			"cancelled audit can only return to planned")
	}

	if current == values.AuditCompleted &&
		requested != values.AuditUnderReview && requested != values.AuditCancelled {
		return g.reject("audit", string(current), string(requested),
			"completed audit can only move to under_review or cancelled")
	}

	return nil
}

// Check validates a transition for the named entity kind. Statuses are passed
// as strings and validated against the kind's enum before the rules run.
// Kind "control" always passes: implementation status is unconstrained.
func (g *TransitionGuard) Check(kind, current, requested string, tctx TransitionContext) error {
	switch kind {
	case "policy":
		from, to := values.PolicyStatus(current), values.PolicyStatus(requested)
		if err := from.Validate(); err != nil {
			return err
		}
		if err := to.Validate(); err != nil {
			return err
		}
		return g.CheckPolicy(from, to, tctx)

	case "finding":
		from, to := values.FindingStatus(current), values.FindingStatus(requested)
		if err := from.Validate(); err != nil {
			return err
		}
		if err := to.Validate(); err != nil {
			return err
		}
		return g.CheckFinding(from, to)

	case "audit":
		from, to := values.AuditStatus(current), values.AuditStatus(requested)
		if err := from.Validate(); err != nil {
			return err
		}
		if err := to.Validate(); err != nil {
			return err
		}
		return g.CheckAudit(from, to)

	case "control":
		from, to := values.ImplementationStatus(current), values.ImplementationStatus(requested)
		if err := from.Validate(); err != nil {
			return err
		}
		return to.Validate()

	default:
		return fmt.Errorf("unknown entity kind: %s", kind)
	}
}

func (g *TransitionGuard) reject(kind, from, to, reason string) error {
	return &InvalidTransitionError{Kind: kind, From: from, To: to, Reason: reason}
}
