package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complyops/complyops/internal/domain/entities"
	"github.com/complyops/complyops/internal/domain/values"
)

func seedControl(t *testing.T, repo *ControlRepository, frameworkID values.RecordID, code string, status values.ImplementationStatus) *entities.Control {
	t.Helper()
	ctrl, err := entities.NewControl(frameworkID, code, "Control "+code)
	require.NoError(t, err)
	require.NoError(t, ctrl.SetStatus(status))
	require.NoError(t, repo.Save(context.Background(), ctrl))
	return ctrl
}

func Test_ControlRepository_SaveAndFind(t *testing.T) {
	repo := NewControlRepository()
	ctx := context.Background()
	frameworkID := values.NewRecordID()

	ctrl := seedControl(t, repo, frameworkID, "AC-1", values.StatusImplemented)

	found, err := repo.FindByID(ctx, ctrl.ID)
	require.NoError(t, err)
	assert.Equal(t, "AC-1", found.Code)

	_, err = repo.FindByID(ctx, values.NewRecordID())
	var notFound *entities.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func Test_ControlRepository_FindByFramework(t *testing.T) {
	repo := NewControlRepository()
	ctx := context.Background()
	frameworkID := values.NewRecordID()
	otherID := values.NewRecordID()

	seedControl(t, repo, frameworkID, "CM-2", values.StatusImplemented)
	seedControl(t, repo, frameworkID, "AC-1", values.StatusNotImplemented)
	seedControl(t, repo, otherID, "AC-1", values.StatusImplemented)

	inactive := seedControl(t, repo, frameworkID, "ZZ-9", values.StatusImplemented)
	inactive.Active = false
	require.NoError(t, repo.Save(ctx, inactive))

	controls, err := repo.FindByFramework(ctx, frameworkID)
	require.NoError(t, err)
	require.Len(t, controls, 2)

	// Sorted by code, inactive excluded
	assert.Equal(t, "AC-1", controls[0].Code)
	assert.Equal(t, "CM-2", controls[1].Code)
}

func Test_ControlRepository_CountByStatus(t *testing.T) {
	repo := NewControlRepository()
	ctx := context.Background()
	frameworkID := values.NewRecordID()

	seedControl(t, repo, frameworkID, "AC-1", values.StatusImplemented)
	seedControl(t, repo, frameworkID, "AC-2", values.StatusImplemented)
	seedControl(t, repo, frameworkID, "AC-3", values.StatusPartiallyImplemented)
	seedControl(t, repo, frameworkID, "AC-4", values.StatusNotImplemented)
	seedControl(t, repo, frameworkID, "AC-5", values.StatusNotApplicable)
	seedControl(t, repo, values.NewRecordID(), "XX-1", values.StatusImplemented)

	snapshot, err := repo.CountByStatus(ctx, frameworkID)
	require.NoError(t, err)
	require.NoError(t, snapshot.Validate())

	assert.Equal(t, 5, snapshot.Total)
	assert.Equal(t, 2, snapshot.Implemented)
	assert.Equal(t, 1, snapshot.PartiallyImplemented)
	assert.Equal(t, 1, snapshot.NotImplemented)
	assert.Equal(t, 1, snapshot.NotApplicable)
	assert.Equal(t, 4, snapshot.Applicable())
}

func Test_ControlRepository_CountByStatus_Empty(t *testing.T) {
	repo := NewControlRepository()

	snapshot, err := repo.CountByStatus(context.Background(), values.NewRecordID())
	require.NoError(t, err)
	assert.Zero(t, snapshot.Total)
}

func Test_ControlRepository_Delete(t *testing.T) {
	repo := NewControlRepository()
	ctx := context.Background()

	ctrl := seedControl(t, repo, values.NewRecordID(), "AC-1", values.StatusImplemented)

	require.NoError(t, repo.Delete(ctx, ctrl.ID))
	_, err := repo.FindByID(ctx, ctrl.ID)
	assert.Error(t, err)

	assert.Error(t, repo.Delete(ctx, ctrl.ID))
}
