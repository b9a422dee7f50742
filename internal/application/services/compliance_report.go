// Package services contains application use cases.
package services

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/complyops/complyops/internal/application/dto"
	apperrors "github.com/complyops/complyops/internal/application/errors"
	"github.com/complyops/complyops/internal/domain/entities"
	"github.com/complyops/complyops/internal/domain/repositories"
	"github.com/complyops/complyops/internal/domain/services"
	"github.com/complyops/complyops/internal/domain/values"
)

// maxConcurrentSnapshots bounds the fan-out when scoring many frameworks.
const maxConcurrentSnapshots = 8

// ComplianceReportUseCase computes implementation-rate reports. It fetches
// count snapshots through the repository and delegates all arithmetic to the
// domain scorer; the use case itself holds no scoring logic.
type ComplianceReportUseCase struct {
	frameworks repositories.FrameworkRepository
	controls   repositories.ControlRepository
	scorer     *services.ComplianceScorer
	logger     *slog.Logger
}

// NewComplianceReportUseCase creates a new compliance report use case.
func NewComplianceReportUseCase(
	frameworks repositories.FrameworkRepository,
	controls repositories.ControlRepository,
	scorer *services.ComplianceScorer,
	logger *slog.Logger,
) *ComplianceReportUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ComplianceReportUseCase{
		frameworks: frameworks,
		controls:   controls,
		scorer:     scorer,
		logger:     logger,
	}
}

// Execute builds the report for one framework (detail context, unrounded rate
// included) or all active frameworks (summary context, rounded rates only).
func (uc *ComplianceReportUseCase) Execute(ctx context.Context, req dto.ComplianceReportRequest) (*dto.ComplianceReport, error) {
	filter, err := uc.buildFilter(req.FilterExpression)
	if err != nil {
		return nil, err
	}

	var targets []*entities.Framework
	if req.FrameworkID != "" {
		id, err := values.ParseRecordID(req.FrameworkID)
		if err != nil {
			return nil, apperrors.NewValidationError("framework_id", err.Error())
		}
		framework, err := uc.frameworks.FindByID(ctx, id)
		if err != nil {
			return nil, apperrors.NewStorageError("find framework", req.FrameworkID, err)
		}
		targets = []*entities.Framework{framework}
	} else {
		all, err := uc.frameworks.FindAll(ctx, true)
		if err != nil {
			return nil, apperrors.NewStorageError("list frameworks", "active frameworks", err)
		}
		targets = all
	}

	uc.logger.Debug("computing compliance report", "frameworks", len(targets))

	reports := make([]dto.FrameworkReport, len(targets))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSnapshots)

	detail := req.FrameworkID != ""
	for i, framework := range targets {
		g.Go(func() error {
			report, err := uc.buildFrameworkReport(gCtx, framework, filter, detail, req.IncludeControls)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	uc.logger.Info("compliance report generated", "frameworks", len(reports))

	return &dto.ComplianceReport{
		GeneratedAt: time.Now().UTC(),
		Frameworks:  reports,
	}, nil
}

func (uc *ComplianceReportUseCase) buildFilter(expression string) (*services.ReportFilter, error) {
	if expression == "" {
		return nil, nil
	}
	filter, err := services.NewReportFilter().WithExpression(expression)
	if err != nil {
		return nil, apperrors.NewValidationError("filter", err.Error())
	}
	return filter, nil
}

func (uc *ComplianceReportUseCase) buildFrameworkReport(
	ctx context.Context,
	framework *entities.Framework,
	filter *services.ReportFilter,
	detail bool,
	includeControls bool,
) (dto.FrameworkReport, error) {
	snapshot, err := uc.controls.CountByStatus(ctx, framework.ID)
	if err != nil {
		return dto.FrameworkReport{}, apperrors.NewStorageError("count controls", framework.Name, err)
	}

	report := dto.FrameworkReport{
		FrameworkID: framework.ID.String(),
		Name:        framework.Name,
		Version:     framework.Version,
		Snapshot:    snapshot,
		Rate:        uc.scorer.ImplementationRateRounded(snapshot),
	}

	// Detail context exposes the unrounded rate alongside the rounded one.
	if detail {
		rate := uc.scorer.ImplementationRate(snapshot)
		report.DetailRate = &rate
	}

	if includeControls || filter != nil {
		rows, err := uc.controlRows(ctx, framework.ID, filter)
		if err != nil {
			return dto.FrameworkReport{}, err
		}
		report.Controls = rows
	}

	return report, nil
}

func (uc *ComplianceReportUseCase) controlRows(
	ctx context.Context,
	frameworkID values.RecordID,
	filter *services.ReportFilter,
) ([]dto.ControlRow, error) {
	controls, err := uc.controls.FindByFramework(ctx, frameworkID)
	if err != nil {
		return nil, apperrors.NewStorageError("list controls", frameworkID.String(), err)
	}

	rows := make([]dto.ControlRow, 0, len(controls))
	for _, ctrl := range controls {
		if filter != nil {
			match, err := filter.Matches(ctrl)
			if err != nil {
				return nil, apperrors.NewValidationError("filter", err.Error())
			}
			if !match {
				continue
			}
		}
		rows = append(rows, dto.ControlRow{
			Code:   ctrl.Code,
			Title:  ctrl.Title,
			Status: string(ctrl.Status),
			Owner:  ctrl.Owner,
			Tags:   ctrl.Tags,
		})
	}
	return rows, nil
}
