package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskbook/adapter/cli"
)

var doneCmd = &cobra.Command{
	Use:     "done <id>",
	Short:   "Mark a task as completed",
	Aliases: []string{"complete"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		res, err := app.Registry.MarkAsCompleted(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}
		return reportResult(cmd, args[0], res, "completed")
	},
}

var reopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Mark a task as pending again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		res, err := app.Registry.MarkAsPending(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to reopen task: %w", err)
		}
		return reportResult(cmd, args[0], res, "reopened")
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Short:   "Delete a task",
	Aliases: []string{"delete"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		res := app.Registry.DeleteTask(cmd.Context(), args[0])
		return reportResult(cmd, args[0], res, "deleted")
	},
}
