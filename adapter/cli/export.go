package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskbook/internal/productivity/infrastructure/report"
	"github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/security"
	"github.com/felixgeelhaar/taskbook/pkg/observability"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks and settings",
	Long: `Export all tasks and settings.

The json format writes a bundle that can be read back with "taskbook import".
The csv and pdf formats are reports of the task list.

Examples:
  taskbook export > backup.json
  taskbook export -o backup.json
  taskbook export --format csv -o tasks.csv
  taskbook export --format pdf -o tasks.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := RequireApp()
		if err != nil {
			return err
		}
		if app.Exporter == nil {
			return ErrNotInitialized
		}

		format, err := report.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if exportOutput != "" && exportOutput != "-" {
			f, err := security.SafeCreate(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		err = observability.TimeOperation(cmd.Context(), commandLogger(), "export."+string(format), func() error {
			return app.Exporter.Export(cmd.Context(), format, w)
		})
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		if exportOutput != "" && exportOutput != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s to %s\n", format, exportOutput)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format (json, csv, pdf)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
