package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/complyops/complyops/internal/application/dto"
	apperrors "github.com/complyops/complyops/internal/application/errors"
	"github.com/complyops/complyops/internal/domain/repositories"
	"github.com/complyops/complyops/internal/domain/values"
)

// ControlStatusUseCase reassigns control implementation statuses. There is
// deliberately no transition guard here: any implementation status may
// replace any other at any time. Scores are derived on demand, so nothing
// else needs recomputing.
type ControlStatusUseCase struct {
	controls repositories.ControlRepository
	logger   *slog.Logger
}

// NewControlStatusUseCase creates a new control status use case.
func NewControlStatusUseCase(controls repositories.ControlRepository, logger *slog.Logger) *ControlStatusUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ControlStatusUseCase{
		controls: controls,
		logger:   logger,
	}
}

// SetStatus applies the requested implementation status to a control.
func (uc *ControlStatusUseCase) SetStatus(ctx context.Context, req dto.ControlStatusRequest) (*dto.TransitionResponse, error) {
	id, err := values.ParseRecordID(req.ControlID)
	if err != nil {
		return nil, apperrors.NewValidationError("control_id", err.Error())
	}
	control, err := uc.controls.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStorageError("find control", req.ControlID, err)
	}

	from := control.Status
	if err := control.SetStatus(values.ImplementationStatus(req.Status)); err != nil {
		return nil, apperrors.NewValidationError("status", err.Error())
	}
	if err := uc.controls.Save(ctx, control); err != nil {
		return nil, apperrors.NewStorageError("save control", req.ControlID, err)
	}

	uc.logger.Info("control status updated",
		"control", control.Code,
		"from", string(from),
		"to", req.Status)

	return &dto.TransitionResponse{
		ID:         control.ID.String(),
		Kind:       "control",
		FromStatus: string(from),
		ToStatus:   req.Status,
		AppliedAt:  time.Now().UTC(),
	}, nil
}
