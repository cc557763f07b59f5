package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskbook/internal/productivity/infrastructure/persistence"
	"github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/security"
	"github.com/felixgeelhaar/taskbook/pkg/observability"
)

// ErrImportIncomplete is returned when part of a valid bundle could not be
// written to the store.
var ErrImportIncomplete = errors.New("import incomplete: some records could not be written")

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tasks and settings from a JSON export",
	Long: `Replace stored tasks and settings with the contents of a JSON bundle
written by "taskbook export". A bundle without a "tasks" field leaves the
stored tasks untouched, and likewise for "settings".

Examples:
  taskbook import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := RequireApp()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		log := observability.LogOperation(commandLogger(), "import", "file", args[0])
		timer := observability.StartTimer("import").WithLogger(log)

		f, err := security.SafeOpen(args[0])
		if err != nil {
			timer.StopWithError(ctx, err)
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()

		bundle, err := persistence.ParseBundle(f)
		if err != nil {
			timer.StopWithError(ctx, err)
			return err
		}

		ok := app.Store.ImportAll(ctx, bundle)
		app.Registry.Reload(ctx)
		if !ok {
			timer.StopWithError(ctx, ErrImportIncomplete)
			return ErrImportIncomplete
		}
		timer.Stop(ctx)

		out := cmd.OutOrStdout()
		if bundle.Tasks != nil {
			fmt.Fprintf(out, "Imported %d tasks.\n", len(bundle.Tasks))
		}
		if bundle.Settings != nil {
			fmt.Fprintln(out, "Imported settings.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
