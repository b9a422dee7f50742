package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/complyops/complyops/internal/application/dto"
	apperrors "github.com/complyops/complyops/internal/application/errors"
	"github.com/complyops/complyops/internal/domain/entities"
	"github.com/complyops/complyops/internal/domain/repositories"
	"github.com/complyops/complyops/internal/domain/services"
	"github.com/complyops/complyops/internal/domain/values"
)

// PolicyLifecycleUseCase moves policies through their lifecycle and cuts new
// revisions. Every transition runs through the domain guard; the approver
// count recorded on the policy is the guard's auxiliary context.
type PolicyLifecycleUseCase struct {
	policies repositories.PolicyRepository
	guard    *services.TransitionGuard
	logger   *slog.Logger
}

// NewPolicyLifecycleUseCase creates a new policy lifecycle use case.
func NewPolicyLifecycleUseCase(
	policies repositories.PolicyRepository,
	guard *services.TransitionGuard,
	logger *slog.Logger,
) *PolicyLifecycleUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &PolicyLifecycleUseCase{
		policies: policies,
		guard:    guard,
		logger:   logger,
	}
}

// Transition validates and applies a policy status change.
func (uc *PolicyLifecycleUseCase) Transition(ctx context.Context, req dto.PolicyTransitionRequest) (*dto.TransitionResponse, error) {
	policy, err := uc.loadPolicy(ctx, req.PolicyID)
	if err != nil {
		return nil, err
	}

	requested := values.PolicyStatus(req.RequestedStatus)
	if err := requested.Validate(); err != nil {
		return nil, apperrors.NewValidationError("status", err.Error())
	}

	tctx := services.TransitionContext{ApproverCount: policy.ApproverCount()}
	if err := uc.guard.CheckPolicy(policy.Status, requested, tctx); err != nil {
		return nil, apperrors.NewTransitionError("policy", err)
	}

	from := policy.Status
	policy.SetStatus(requested)
	if err := uc.policies.Save(ctx, policy); err != nil {
		return nil, apperrors.NewStorageError("save policy", req.PolicyID, err)
	}

	uc.logger.Info("policy transitioned",
		"policy", policy.ID.String(),
		"from", string(from),
		"to", string(requested))

	return &dto.TransitionResponse{
		ID:         policy.ID.String(),
		Kind:       "policy",
		FromStatus: string(from),
		ToStatus:   string(requested),
		AppliedAt:  time.Now().UTC(),
	}, nil
}

// AddApprover records an approver on a policy. Approvers gate the
// review -> approved transition.
func (uc *PolicyLifecycleUseCase) AddApprover(ctx context.Context, policyID, approver string) error {
	policy, err := uc.loadPolicy(ctx, policyID)
	if err != nil {
		return err
	}

	if err := policy.AddApprover(approver); err != nil {
		return apperrors.NewValidationError("approver", err.Error())
	}
	if err := uc.policies.Save(ctx, policy); err != nil {
		return apperrors.NewStorageError("save policy", policyID, err)
	}
	return nil
}

// NewRevision cuts a new draft revision at the next minor or major version.
func (uc *PolicyLifecycleUseCase) NewRevision(ctx context.Context, req dto.PolicyRevisionRequest) (*dto.PolicyRevisionResponse, error) {
	policy, err := uc.loadPolicy(ctx, req.PolicyID)
	if err != nil {
		return nil, err
	}

	fromVersion := policy.Version.String()
	if err := policy.NewRevision(entities.RevisionBump(req.Bump)); err != nil {
		return nil, apperrors.NewValidationError("bump", err.Error())
	}
	if err := uc.policies.Save(ctx, policy); err != nil {
		return nil, apperrors.NewStorageError("save policy", req.PolicyID, err)
	}

	uc.logger.Info("policy revision created",
		"policy", policy.ID.String(),
		"from", fromVersion,
		"to", policy.Version.String())

	return &dto.PolicyRevisionResponse{
		PolicyID:    policy.ID.String(),
		FromVersion: fromVersion,
		ToVersion:   policy.Version.String(),
	}, nil
}

func (uc *PolicyLifecycleUseCase) loadPolicy(ctx context.Context, rawID string) (*entities.Policy, error) {
	id, err := values.ParseRecordID(rawID)
	if err != nil {
		return nil, apperrors.NewValidationError("policy_id", err.Error())
	}
	policy, err := uc.policies.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStorageError("find policy", rawID, err)
	}
	return policy, nil
}
