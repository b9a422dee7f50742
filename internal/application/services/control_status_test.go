package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complyops/complyops/internal/application/dto"
	apperrors "github.com/complyops/complyops/internal/application/errors"
	"github.com/complyops/complyops/internal/domain/entities"
	"github.com/complyops/complyops/internal/domain/values"
	"github.com/complyops/complyops/internal/infrastructure/persistence/memory"
)

func Test_ControlStatusUseCase_SetStatus(t *testing.T) {
	repo := memory.NewControlRepository()
	uc := NewControlStatusUseCase(repo, nil)
	ctx := context.Background()

	ctrl, err := entities.NewControl(values.NewRecordID(), "AC-1", "Account management")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, ctrl))

	resp, err := uc.SetStatus(ctx, dto.ControlStatusRequest{
		ControlID: ctrl.ID.String(),
		Status:    "implemented",
	})
	require.NoError(t, err)
	assert.Equal(t, "not_implemented", resp.FromStatus)
	assert.Equal(t, "implemented", resp.ToStatus)

	// Any status may replace any other, including moving backwards
	_, err = uc.SetStatus(ctx, dto.ControlStatusRequest{
		ControlID: ctrl.ID.String(),
		Status:    "not_applicable",
	})
	require.NoError(t, err)

	_, err = uc.SetStatus(ctx, dto.ControlStatusRequest{
		ControlID: ctrl.ID.String(),
		Status:    "not_implemented",
	})
	require.NoError(t, err)
	assert.Equal(t, values.StatusNotImplemented, ctrl.Status)
}

func Test_ControlStatusUseCase_SetStatus_Invalid(t *testing.T) {
	repo := memory.NewControlRepository()
	uc := NewControlStatusUseCase(repo, nil)
	ctx := context.Background()

	ctrl, err := entities.NewControl(values.NewRecordID(), "AC-1", "Account management")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, ctrl))

	var validationErr *apperrors.ValidationError

	_, err = uc.SetStatus(ctx, dto.ControlStatusRequest{ControlID: "not-a-uuid", Status: "implemented"})
	assert.ErrorAs(t, err, &validationErr)

	_, err = uc.SetStatus(ctx, dto.ControlStatusRequest{ControlID: ctrl.ID.String(), Status: "done"})
	assert.ErrorAs(t, err, &validationErr)

	_, err = uc.SetStatus(ctx, dto.ControlStatusRequest{ControlID: values.NewRecordID().String(), Status: "implemented"})
	var storageErr *apperrors.StorageError
	assert.ErrorAs(t, err, &storageErr)
}
