package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskbook/adapter/cli"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		t, ok := app.Registry.GetTaskByID(args[0])
		if !ok {
			return fmt.Errorf("task not found: %s", args[0])
		}
		printDetail(cmd.OutOrStdout(), t)
		return nil
	},
}
