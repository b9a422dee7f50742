package services

import (
	"context"
	"log/slog"

	"github.com/complyops/complyops/internal/application/dto"
	apperrors "github.com/complyops/complyops/internal/application/errors"
	"github.com/complyops/complyops/internal/domain/entities"
	"github.com/complyops/complyops/internal/domain/repositories"
	"github.com/complyops/complyops/internal/domain/values"
)

// CatalogLoader loads and validates a framework catalog file.
// The concrete YAML implementation lives in infrastructure.
type CatalogLoader interface {
	Load(path string) (*dto.FrameworkCatalog, error)
}

// CatalogImportUseCase imports a framework catalog into a framework and its
// controls. Import is not transactional: each repository call is an
// independent store operation, mirroring document-store semantics.
type CatalogImportUseCase struct {
	loader     CatalogLoader
	frameworks repositories.FrameworkRepository
	controls   repositories.ControlRepository
	logger     *slog.Logger
}

// NewCatalogImportUseCase creates a new catalog import use case.
func NewCatalogImportUseCase(
	loader CatalogLoader,
	frameworks repositories.FrameworkRepository,
	controls repositories.ControlRepository,
	logger *slog.Logger,
) *CatalogImportUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogImportUseCase{
		loader:     loader,
		frameworks: frameworks,
		controls:   controls,
		logger:     logger,
	}
}

// Execute imports the catalog at the requested path.
func (uc *CatalogImportUseCase) Execute(ctx context.Context, req dto.CatalogImportRequest) (*dto.CatalogImportResponse, error) {
	catalog, err := uc.loader.Load(req.Path)
	if err != nil {
		return nil, apperrors.NewImportError(req.Path, err)
	}

	framework, err := entities.NewFramework(
		catalog.Framework.Name,
		catalog.Framework.Version,
		catalog.Framework.Description,
	)
	if err != nil {
		return nil, apperrors.NewValidationError("framework", err.Error())
	}
	if err := uc.frameworks.Save(ctx, framework); err != nil {
		return nil, apperrors.NewStorageError("save framework", framework.Name, err)
	}

	seen := make(map[string]bool, len(catalog.Controls))
	imported := 0
	for _, def := range catalog.Controls {
		if seen[def.Code] {
			return nil, apperrors.NewValidationError("controls",
				"duplicate control code: "+def.Code)
		}
		seen[def.Code] = true

		control, err := entities.NewControl(framework.ID, def.Code, def.Title)
		if err != nil {
			return nil, apperrors.NewValidationError("controls", err.Error())
		}
		control.Description = def.Description
		control.Owner = def.Owner
		control.Tags = def.Tags

		if def.Status != "" {
			if err := control.SetStatus(values.ImplementationStatus(def.Status)); err != nil {
				return nil, apperrors.NewValidationError("controls", err.Error())
			}
		}

		if err := uc.controls.Save(ctx, control); err != nil {
			return nil, apperrors.NewStorageError("save control", def.Code, err)
		}
		imported++
	}

	uc.logger.Info("catalog imported",
		"framework", framework.Name,
		"controls", imported)

	return &dto.CatalogImportResponse{
		FrameworkID:   framework.ID.String(),
		FrameworkName: framework.Name,
		ControlCount:  imported,
	}, nil
}
