package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/complyops/complyops/internal/application/dto"
	apperrors "github.com/complyops/complyops/internal/application/errors"
	"github.com/complyops/complyops/internal/domain/repositories"
	"github.com/complyops/complyops/internal/domain/services"
	"github.com/complyops/complyops/internal/domain/values"
)

// AuditWorkflowUseCase drives audit engagements and finding remediation.
// All status changes run through the domain guard.
type AuditWorkflowUseCase struct {
	audits repositories.AuditRepository
	guard  *services.TransitionGuard
	logger *slog.Logger
}

// NewAuditWorkflowUseCase creates a new audit workflow use case.
func NewAuditWorkflowUseCase(
	audits repositories.AuditRepository,
	guard *services.TransitionGuard,
	logger *slog.Logger,
) *AuditWorkflowUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditWorkflowUseCase{
		audits: audits,
		guard:  guard,
		logger: logger,
	}
}

// TransitionAudit validates and applies an audit status change.
func (uc *AuditWorkflowUseCase) TransitionAudit(ctx context.Context, req dto.AuditTransitionRequest) (*dto.TransitionResponse, error) {
	id, err := values.ParseRecordID(req.AuditID)
	if err != nil {
		return nil, apperrors.NewValidationError("audit_id", err.Error())
	}
	audit, err := uc.audits.FindAuditByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStorageError("find audit", req.AuditID, err)
	}

	requested := values.AuditStatus(req.RequestedStatus)
	if err := requested.Validate(); err != nil {
		return nil, apperrors.NewValidationError("status", err.Error())
	}

	if err := uc.guard.CheckAudit(audit.Status, requested); err != nil {
		return nil, apperrors.NewTransitionError("audit", err)
	}

	from := audit.Status
	audit.SetStatus(requested)
	if err := uc.audits.SaveAudit(ctx, audit); err != nil {
		return nil, apperrors.NewStorageError("save audit", req.AuditID, err)
	}

	uc.logger.Info("audit transitioned",
		"audit", audit.ID.String(),
		"from", string(from),
		"to", string(requested))

	return &dto.TransitionResponse{
		ID:         audit.ID.String(),
		Kind:       "audit",
		FromStatus: string(from),
		ToStatus:   string(requested),
		AppliedAt:  time.Now().UTC(),
	}, nil
}

// TransitionFinding validates and applies a finding status change.
func (uc *AuditWorkflowUseCase) TransitionFinding(ctx context.Context, req dto.FindingTransitionRequest) (*dto.TransitionResponse, error) {
	id, err := values.ParseRecordID(req.FindingID)
	if err != nil {
		return nil, apperrors.NewValidationError("finding_id", err.Error())
	}
	finding, err := uc.audits.FindFindingByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStorageError("find finding", req.FindingID, err)
	}

	requested := values.FindingStatus(req.RequestedStatus)
	if err := requested.Validate(); err != nil {
		return nil, apperrors.NewValidationError("status", err.Error())
	}

	if err := uc.guard.CheckFinding(finding.Status, requested); err != nil {
		return nil, apperrors.NewTransitionError("finding", err)
	}

	from := finding.Status
	finding.SetStatus(requested)
	if err := uc.audits.SaveFinding(ctx, finding); err != nil {
		return nil, apperrors.NewStorageError("save finding", req.FindingID, err)
	}

	uc.logger.Info("finding transitioned",
		"finding", finding.ID.String(),
		"from", string(from),
		"to", string(requested))

	return &dto.TransitionResponse{
		ID:         finding.ID.String(),
		Kind:       "finding",
		FromStatus: string(from),
		ToStatus:   string(requested),
		AppliedAt:  time.Now().UTC(),
	}, nil
}
