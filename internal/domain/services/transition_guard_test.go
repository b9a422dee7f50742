package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complyops/complyops/internal/domain/values"
)

func Test_TransitionGuard_CheckPolicy(t *testing.T) {
	guard := NewTransitionGuard()
	oneApprover := TransitionContext{ApproverCount: 1}
	noApprovers := TransitionContext{}

	tests := []struct {
		name       string
		current    values.PolicyStatus
		requested  values.PolicyStatus
		tctx       TransitionContext
		wantReason string
	}{
		{"draft to review", values.PolicyDraft, values.PolicyReview, oneApprover, ""},
		{"draft to published forbidden", values.PolicyDraft, values.PolicyPublished, oneApprover,
			"cannot publish directly from draft"},
		{"review to approved with approver", values.PolicyReview, values.PolicyApproved, oneApprover, ""},
		{"review to approved without approver", values.PolicyReview, values.PolicyApproved, noApprovers,
			"cannot approve without approvers"},
		{"approved to published", values.PolicyApproved, values.PolicyPublished, noApprovers, ""},
		{"published to archived", values.PolicyPublished, values.PolicyArchived, noApprovers, ""},
		{"archived to draft", values.PolicyArchived, values.PolicyDraft, noApprovers, ""},
		{"archived to review forbidden", values.PolicyArchived, values.PolicyReview, oneApprover,
			"archived policy can only be restored to draft"},
		{"archived to published forbidden", values.PolicyArchived, values.PolicyPublished, oneApprover,
			"archived policy can only be restored to draft"},
		{"published back to review", values.PolicyPublished, values.PolicyReview, noApprovers, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.CheckPolicy(tt.current, tt.requested, tt.tctx)

			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}

			var transitionErr *InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, tt.wantReason, transitionErr.Reason)
			assert.Equal(t, "policy", transitionErr.Kind)
		})
	}
}

func Test_TransitionGuard_CheckFinding(t *testing.T) {
	guard := NewTransitionGuard()

	tests := []struct {
		name      string
		current   values.FindingStatus
		requested values.FindingStatus
		wantErr   bool
	}{
		{"open to in_remediation", values.FindingOpen, values.FindingInRemediation, false},
		{"closed to in_remediation forbidden", values.FindingClosed, values.FindingInRemediation, true},
		{"closed to remediated forbidden", values.FindingClosed, values.FindingRemediated, true},
		{"closed to verified forbidden", values.FindingClosed, values.FindingVerified, true},
		{"closed to deferred forbidden", values.FindingClosed, values.FindingDeferred, true},
		{"closed reopened", values.FindingClosed, values.FindingOpen, false},
		{"closed accepted", values.FindingClosed, values.FindingAccepted, false},
		{"remediated to verified", values.FindingRemediated, values.FindingVerified, false},
		{"verified to closed", values.FindingVerified, values.FindingClosed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.CheckFinding(tt.current, tt.requested)

			if tt.wantErr {
				var transitionErr *InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, "closed finding can only be reopened or accepted", transitionErr.Reason)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_TransitionGuard_CheckAudit(t *testing.T) {
	guard := NewTransitionGuard()

	tests := []struct {
		name       string
		current    values.AuditStatus
		requested  values.AuditStatus
		wantReason string
	}{
		{"planned to in_progress", values.AuditPlanned, values.AuditInProgress, ""},
		{"in_progress to under_review", values.AuditInProgress, values.AuditUnderReview, ""},
		{"under_review to completed", values.AuditUnderReview, values.AuditCompleted, ""},
		{"cancelled to planned", values.AuditCancelled, values.AuditPlanned, ""},
		{"cancelled to in_progress forbidden", values.AuditCancelled, values.AuditInProgress,
			"cancelled audit can only return to planned"},
		{"cancelled to completed forbidden", values.AuditCancelled, values.AuditCompleted,
			"cancelled audit can only return to planned"},
		{"completed to under_review", values.AuditCompleted, values.AuditUnderReview, ""},
		{"completed to cancelled", values.AuditCompleted, values.AuditCancelled, ""},
		{"completed to planned forbidden", values.AuditCompleted, values.AuditPlanned,
			"completed audit can only move to under_review or cancelled"},
		{"completed to in_progress forbidden", values.AuditCompleted, values.AuditInProgress,
			"completed audit can only move to under_review or cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.CheckAudit(tt.current, tt.requested)

			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}

			var transitionErr *InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, tt.wantReason, transitionErr.Reason)
		})
	}
}

func Test_TransitionGuard_Check(t *testing.T) {
	guard := NewTransitionGuard()

	// Dispatch by kind
	assert.Error(t, guard.Check("policy", "draft", "published", TransitionContext{ApproverCount: 1}))
	assert.NoError(t, guard.Check("policy", "review", "approved", TransitionContext{ApproverCount: 1}))
	assert.Error(t, guard.Check("policy", "review", "approved", TransitionContext{}))
	assert.Error(t, guard.Check("finding", "closed", "in_remediation", TransitionContext{}))
	assert.NoError(t, guard.Check("finding", "closed", "open", TransitionContext{}))
	assert.Error(t, guard.Check("audit", "cancelled", "completed", TransitionContext{}))

	// Control implementation status is unconstrained
	assert.NoError(t, guard.Check("control", "implemented", "not_implemented", TransitionContext{}))
	assert.NoError(t, guard.Check("control", "not_applicable", "implemented", TransitionContext{}))

	// Unknown statuses and kinds are rejected before any rule runs
	assert.Error(t, guard.Check("policy", "bogus", "review", TransitionContext{}))
	assert.Error(t, guard.Check("policy", "draft", "bogus", TransitionContext{}))
	assert.Error(t, guard.Check("widget", "a", "b", TransitionContext{}))
}

func Test_TransitionGuard_Deterministic(t *testing.T) {
	guard := NewTransitionGuard()

	first := guard.CheckFinding(values.FindingClosed, values.FindingRemediated)
	second := guard.CheckFinding(values.FindingClosed, values.FindingRemediated)

	require.Error(t, first)
	require.Error(t, second)

	var a, b *InvalidTransitionError
	require.True(t, errors.As(first, &a))
	require.True(t, errors.As(second, &b))
	assert.Equal(t, a.Reason, b.Reason)
}
