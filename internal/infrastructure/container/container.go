// Package container provides dependency injection for the application.
package container

import (
	"log/slog"

	"github.com/complyops/complyops/internal/application/services"
	domainservices "github.com/complyops/complyops/internal/domain/services"
	"github.com/complyops/complyops/internal/infrastructure/catalog"
	"github.com/complyops/complyops/internal/infrastructure/persistence/memory"
)

// Container holds all application dependencies.
// Repositories are constructed once and shared between use cases; there is
// no process-wide singleton, callers own the container's lifecycle.
type Container struct {
	Frameworks *memory.FrameworkRepository
	Controls   *memory.ControlRepository
	Policies   *memory.PolicyRepository
	Audits     *memory.AuditRepository
	Evidence   *memory.EvidenceRepository
	Risks      *memory.RiskRepository
	Assets     *memory.AssetRepository

	ComplianceReport *services.ComplianceReportUseCase
	PolicyLifecycle  *services.PolicyLifecycleUseCase
	AuditWorkflow    *services.AuditWorkflowUseCase
	ControlStatus    *services.ControlStatusUseCase
	CatalogImport    *services.CatalogImportUseCase

	logger *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	frameworks := memory.NewFrameworkRepository()
	controls := memory.NewControlRepository()
	policies := memory.NewPolicyRepository()
	audits := memory.NewAuditRepository()
	evidence := memory.NewEvidenceRepository()
	risks := memory.NewRiskRepository()
	assets := memory.NewAssetRepository()

	scorer := domainservices.NewComplianceScorer()
	guard := domainservices.NewTransitionGuard()

	loader, err := catalog.NewLoader()
	if err != nil {
		return nil, err
	}

	return &Container{
		Frameworks: frameworks,
		Controls:   controls,
		Policies:   policies,
		Audits:     audits,
		Evidence:   evidence,
		Risks:      risks,
		Assets:     assets,

		ComplianceReport: services.NewComplianceReportUseCase(frameworks, controls, scorer, opts.Logger),
		PolicyLifecycle:  services.NewPolicyLifecycleUseCase(policies, guard, opts.Logger),
		AuditWorkflow:    services.NewAuditWorkflowUseCase(audits, guard, opts.Logger),
		ControlStatus:    services.NewControlStatusUseCase(controls, opts.Logger),
		CatalogImport:    services.NewCatalogImportUseCase(loader, frameworks, controls, opts.Logger),

		logger: opts.Logger,
	}, nil
}

// Logger returns the container's logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
