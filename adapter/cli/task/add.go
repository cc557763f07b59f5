package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskbook/adapter/cli"
	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/task"
)

var (
	priority    string
	description string
	dueDate     string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new pending task with a title and optional properties.

Examples:
  taskbook task add "Buy groceries"
  taskbook task add "Review PR" -p high
  taskbook task add "Pay rent" --due 2024-06-01 --description "transfer before noon"`,
	Aliases: []string{"create"},
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		in := task.Input{
			Title:       strings.Join(args, " "),
			Description: description,
			Priority:    priority,
		}
		if dueDate != "" {
			in.DueDate = &dueDate
		}

		res, err := app.Registry.CreateTask(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Task created: %s\n", res.Task.ID)
		fmt.Fprintf(out, "  title: %s\n", res.Task.Title)
		fmt.Fprintf(out, "  priority: %s\n", res.Task.Priority)
		if res.Task.DueDate != nil {
			fmt.Fprintf(out, "  due: %s\n", *res.Task.DueDate)
		}
		cli.WarnUnsaved(out, res.Persisted)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&priority, "priority", "p", "", "task priority (low, medium, high)")
	addCmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	addCmd.Flags().StringVar(&dueDate, "due", "", "due date (YYYY-MM-DD)")
}
