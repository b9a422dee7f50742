package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/complyops/complyops/internal/application/dto"
	"github.com/complyops/complyops/internal/infrastructure/container"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <catalog.yaml>",
	Short: "Validate a framework catalog file",
	Long: `Load a framework catalog, validate it against the catalog schema,
and run a trial import. Nothing is persisted; a valid catalog prints a
summary of what an import would create.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidateAction(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidateAction implements the core logic for the validate command
func runValidateAction(cmd *cobra.Command, catalogPath string) error {
	c, err := container.New(container.Options{Logger: slog.Default()})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	resp, err := c.CatalogImport.Execute(cmd.Context(), dto.CatalogImportRequest{Path: catalogPath})
	if err != nil {
		return err
	}

	fmt.Printf("catalog valid: framework %q with %d controls\n", resp.FrameworkName, resp.ControlCount)
	return nil
}
