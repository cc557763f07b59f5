package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskbook/adapter/cli"
	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/task"
)

var (
	filter string
	search string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks, newest first, with optional status filter and search.

Without --filter the showCompleted setting decides whether completed
tasks are listed.

Examples:
  taskbook task list
  taskbook task list --filter pending
  taskbook task list --search groceries`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		f, err := task.ParseFilter(filter)
		if err != nil {
			return fmt.Errorf("%w: use all, pending or completed", err)
		}
		if !cmd.Flags().Changed("filter") && !app.Store.LoadSettings(cmd.Context()).ShowsCompleted() {
			f = task.FilterPending
		}

		app.Registry.SetFilter(f)
		app.Registry.SetSearchTerm(search)
		tasks := app.Registry.GetFilteredTasks()

		out := cmd.OutOrStdout()
		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks found.")
			return nil
		}

		fmt.Fprintf(out, "Tasks (%d):\n", len(tasks))
		fmt.Fprintln(out, strings.Repeat("-", 60))
		now := time.Now()
		for _, t := range tasks {
			printSummary(out, t, now)
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&filter, "filter", "all", "status filter (all, pending, completed)")
	listCmd.Flags().StringVarP(&search, "search", "s", "", "only tasks whose title or description contains this text")
}
