package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/complyops/complyops/internal/application/dto"
	"github.com/complyops/complyops/internal/infrastructure/container"
	"github.com/complyops/complyops/internal/infrastructure/output"
)

var (
	reportFormat    string
	reportOutFile   string
	reportFilter    string
	includeControls bool
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report <catalog.yaml>",
	Short: "Compute a compliance report from a framework catalog",
	Long: `Load a framework catalog, import it, and report the framework's
implementation rate. Control statuses come from the catalog file.

Filtering:
  --filter 'status == "not_implemented"'       Controls missing implementation
  --filter '"access" in tags && owner == ""'   Unowned access controls`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReportAction(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportFormat, "format", "table", "Output format: table, json, yaml")
	reportCmd.Flags().StringVarP(&reportOutFile, "output", "o", "", "Output file path (default: stdout)")
	reportCmd.Flags().StringVar(&reportFilter, "filter", "", "Control filter expression (e.g. 'status == \"implemented\"')")
	reportCmd.Flags().BoolVar(&includeControls, "controls", false, "Include per-control rows in the report")
}

// runReportAction implements the core logic for the report command
func runReportAction(cmd *cobra.Command, catalogPath string) error {
	ctx := cmd.Context()

	c, err := container.New(container.Options{Logger: slog.Default()})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	imported, err := c.CatalogImport.Execute(ctx, dto.CatalogImportRequest{Path: catalogPath})
	if err != nil {
		return err
	}
	slog.Info("catalog imported", "framework", imported.FrameworkName, "controls", imported.ControlCount)

	report, err := c.ComplianceReport.Execute(ctx, dto.ComplianceReportRequest{
		FrameworkID:      imported.FrameworkID,
		FilterExpression: reportFilter,
		IncludeControls:  includeControls,
	})
	if err != nil {
		return err
	}

	writer, closeFn, err := openOutput(reportOutFile)
	if err != nil {
		return err
	}
	defer closeFn()

	formatter, err := output.NewFormatter(reportFormat, writer)
	if err != nil {
		return err
	}
	return formatter.Format(report)
}

// openOutput returns the report writer: stdout or the requested file.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.Create(path) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}
