package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskbook/adapter/cli"
	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/task"
)

var (
	editTitle       string
	editDescription string
	editPriority    string
	editDue         string
	clearDue        bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Long: `Change one or more fields of a task. Fields without a flag keep
their current value.

Examples:
  taskbook task edit 3f2a... --title "Buy oat milk"
  taskbook task edit 3f2a... -p low --due 2024-07-01
  taskbook task edit 3f2a... --clear-due`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		p := patchFromFlags(cmd)
		if len(p.Fields()) == 0 {
			return errors.New("nothing to change: pass --title, --description, --priority, --due or --clear-due")
		}

		res, err := app.Registry.UpdateTask(cmd.Context(), args[0], p)
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		return reportResult(cmd, args[0], res, "updated")
	},
}

func patchFromFlags(cmd *cobra.Command) task.Patch {
	var p task.Patch
	flags := cmd.Flags()
	if flags.Changed("title") {
		p.Title = &editTitle
	}
	if flags.Changed("description") {
		p.Description = &editDescription
	}
	if flags.Changed("priority") {
		p.Priority = &editPriority
	}
	if flags.Changed("due") {
		p.DueDate = &editDue
	}
	p.ClearDueDate = clearDue
	return p
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "new description")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "new priority (low, medium, high)")
	editCmd.Flags().StringVar(&editDue, "due", "", "new due date (YYYY-MM-DD)")
	editCmd.Flags().BoolVar(&clearDue, "clear-due", false, "remove the due date")
}
