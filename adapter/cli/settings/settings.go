package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskbook/adapter/cli"
	domain "github.com/felixgeelhaar/taskbook/internal/productivity/domain/settings"
)

var settingsJSON bool

var Cmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage user settings",
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		st := app.Store.LoadSettings(cmd.Context()).WithDefaults()
		if settingsJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(st)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "theme:          %s\n", st.Theme)
		fmt.Fprintf(out, "sort-by:        %s\n", st.SortBy)
		fmt.Fprintf(out, "show-completed: %s\n", strconv.FormatBool(st.ShowsCompleted()))
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change one setting. Keys: theme, sort-by, show-completed.

Examples:
  taskbook settings set theme dark
  taskbook settings set show-completed false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		st, err := app.Store.LoadSettings(ctx).Set(args[0], args[1])
		if errors.Is(err, domain.ErrUnknownKey) {
			return fmt.Errorf("%w: %s (use theme, sort-by or show-completed)", err, args[0])
		}
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", args[0], err)
		}

		persisted := app.Store.SaveSettings(ctx, st)
		out := cmd.OutOrStdout()
		if settingsJSON {
			return json.NewEncoder(out).Encode(map[string]any{
				"key":     args[0],
				"value":   args[1],
				"updated": persisted,
			})
		}
		if !persisted {
			return errors.New("failed to save settings")
		}
		fmt.Fprintln(out, "Settings saved.")
		return nil
	},
}

func init() {
	Cmd.PersistentFlags().BoolVar(&settingsJSON, "json", false, "output JSON")
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(setCmd)
}
