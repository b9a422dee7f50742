package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complyops/complyops/internal/application/dto"
	apperrors "github.com/complyops/complyops/internal/application/errors"
	"github.com/complyops/complyops/internal/domain/entities"
	"github.com/complyops/complyops/internal/domain/services"
	"github.com/complyops/complyops/internal/domain/values"
	"github.com/complyops/complyops/internal/infrastructure/persistence/memory"
)

type reportFixture struct {
	uc         *ComplianceReportUseCase
	frameworks *memory.FrameworkRepository
	controls   *memory.ControlRepository
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	frameworks := memory.NewFrameworkRepository()
	controls := memory.NewControlRepository()
	return &reportFixture{
		uc:         NewComplianceReportUseCase(frameworks, controls, services.NewComplianceScorer(), nil),
		frameworks: frameworks,
		controls:   controls,
	}
}

func (f *reportFixture) addFramework(t *testing.T, name string) *entities.Framework {
	t.Helper()
	framework, err := entities.NewFramework(name, "", "")
	require.NoError(t, err)
	require.NoError(t, f.frameworks.Save(context.Background(), framework))
	return framework
}

func (f *reportFixture) addControl(t *testing.T, frameworkID values.RecordID, code string, status values.ImplementationStatus, tags ...string) {
	t.Helper()
	ctrl, err := entities.NewControl(frameworkID, code, "Control "+code)
	require.NoError(t, err)
	require.NoError(t, ctrl.SetStatus(status))
	ctrl.Tags = tags
	require.NoError(t, f.controls.Save(context.Background(), ctrl))
}

func Test_ComplianceReportUseCase_SingleFramework(t *testing.T) {
	f := newReportFixture(t)
	framework := f.addFramework(t, "SOC 2")

	// 6 implemented + 2 partial of 10 applicable -> 70%
	for i := 0; i < 6; i++ {
		f.addControl(t, framework.ID, "CC-"+string(rune('a'+i)), values.StatusImplemented)
	}
	f.addControl(t, framework.ID, "CC-p1", values.StatusPartiallyImplemented)
	f.addControl(t, framework.ID, "CC-p2", values.StatusPartiallyImplemented)
	f.addControl(t, framework.ID, "CC-n1", values.StatusNotImplemented)
	f.addControl(t, framework.ID, "CC-n2", values.StatusNotImplemented)

	report, err := f.uc.Execute(context.Background(), dto.ComplianceReportRequest{
		FrameworkID: framework.ID.String(),
	})
	require.NoError(t, err)
	require.Len(t, report.Frameworks, 1)

	fr := report.Frameworks[0]
	assert.Equal(t, "SOC 2", fr.Name)
	assert.Equal(t, 70.0, fr.Rate)
	assert.Equal(t, 10, fr.Snapshot.Total)

	// Detail context carries the unrounded rate
	require.NotNil(t, fr.DetailRate)
	assert.InDelta(t, 70.0, *fr.DetailRate, 1e-9)
}

func Test_ComplianceReportUseCase_AllActiveFrameworks(t *testing.T) {
	f := newReportFixture(t)

	soc2 := f.addFramework(t, "SOC 2")
	f.addControl(t, soc2.ID, "CC-1", values.StatusImplemented)

	iso := f.addFramework(t, "ISO 27001")
	f.addControl(t, iso.ID, "A-1", values.StatusNotImplemented)

	retired := f.addFramework(t, "Retired Framework")
	retired.Deactivate()
	require.NoError(t, f.frameworks.Save(context.Background(), retired))

	report, err := f.uc.Execute(context.Background(), dto.ComplianceReportRequest{})
	require.NoError(t, err)
	require.Len(t, report.Frameworks, 2)

	// Sorted by name; summary context has no unrounded rate
	assert.Equal(t, "ISO 27001", report.Frameworks[0].Name)
	assert.Equal(t, 0.0, report.Frameworks[0].Rate)
	assert.Nil(t, report.Frameworks[0].DetailRate)
	assert.Equal(t, "SOC 2", report.Frameworks[1].Name)
	assert.Equal(t, 100.0, report.Frameworks[1].Rate)
}

func Test_ComplianceReportUseCase_EmptyFramework(t *testing.T) {
	f := newReportFixture(t)
	framework := f.addFramework(t, "New Framework")

	report, err := f.uc.Execute(context.Background(), dto.ComplianceReportRequest{
		FrameworkID: framework.ID.String(),
	})
	require.NoError(t, err)
	require.Len(t, report.Frameworks, 1)
	assert.Equal(t, 0.0, report.Frameworks[0].Rate)
}

func Test_ComplianceReportUseCase_IncludeControls(t *testing.T) {
	f := newReportFixture(t)
	framework := f.addFramework(t, "SOC 2")
	f.addControl(t, framework.ID, "CC-1", values.StatusImplemented, "access")
	f.addControl(t, framework.ID, "CC-2", values.StatusNotImplemented, "access")
	f.addControl(t, framework.ID, "CC-3", values.StatusNotImplemented, "change")

	report, err := f.uc.Execute(context.Background(), dto.ComplianceReportRequest{
		FrameworkID:     framework.ID.String(),
		IncludeControls: true,
	})
	require.NoError(t, err)
	require.Len(t, report.Frameworks[0].Controls, 3)

	// A filter expression narrows the drill-down without changing the score
	report, err = f.uc.Execute(context.Background(), dto.ComplianceReportRequest{
		FrameworkID:      framework.ID.String(),
		FilterExpression: `status == "not_implemented" && "access" in tags`,
	})
	require.NoError(t, err)
	require.Len(t, report.Frameworks[0].Controls, 1)
	assert.Equal(t, "CC-2", report.Frameworks[0].Controls[0].Code)
	assert.InDelta(t, 33.3, report.Frameworks[0].Rate, 1e-9)
}

func Test_ComplianceReportUseCase_InvalidInput(t *testing.T) {
	f := newReportFixture(t)

	var validationErr *apperrors.ValidationError

	_, err := f.uc.Execute(context.Background(), dto.ComplianceReportRequest{
		FrameworkID: "not-a-uuid",
	})
	assert.ErrorAs(t, err, &validationErr)

	_, err = f.uc.Execute(context.Background(), dto.ComplianceReportRequest{
		FilterExpression: "status ==",
	})
	assert.ErrorAs(t, err, &validationErr)

	_, err = f.uc.Execute(context.Background(), dto.ComplianceReportRequest{
		FrameworkID: values.NewRecordID().String(),
	})
	var storageErr *apperrors.StorageError
	assert.ErrorAs(t, err, &storageErr)
}
