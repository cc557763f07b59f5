package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts",
	Long: `Display how many tasks exist and how many are pending or completed.
Counts ignore the current filter and search term.

Examples:
  taskbook stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := RequireApp()
		if err != nil {
			return err
		}

		stats := app.Registry.GetStats()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Task Stats")
		fmt.Fprintln(out, strings.Repeat("=", 30))
		fmt.Fprintf(out, "  Total:     %d\n", stats.Total)
		fmt.Fprintf(out, "  Pending:   %d\n", stats.Pending)
		fmt.Fprintf(out, "  Completed: %d\n", stats.Completed)
		if stats.Total > 0 {
			fmt.Fprintf(out, "  Done:      %.0f%%\n", float64(stats.Completed)/float64(stats.Total)*100)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
