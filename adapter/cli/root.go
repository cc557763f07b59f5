package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskbook/pkg/observability"
)

var logger *slog.Logger

type commandContext struct {
	startedAt time.Time
}

type commandContextKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskbook",
	Short: "Taskbook - a personal task tracker",
	Long: `Taskbook keeps a personal list of tasks with priorities, due dates
and completion status.

Data is stored locally in SQLite by default. Set TASKBOOK_STORE_URL to keep
it in PostgreSQL, MySQL or Redis instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = observability.LoggerFromEnv()
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = observability.NewCommandContext(ctx, cmd.CommandPath())
		ctx = context.WithValue(ctx, commandContextKey{}, commandContext{startedAt: time.Now()})
		cmd.SetContext(ctx)
		logger.DebugContext(ctx, "command start", "command", cmd.CommandPath())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
		if !ok {
			return
		}
		observability.LogDuration(cmd.Context(), logger, cmd.CommandPath(), info.startedAt)
	},
}

// Run executes the root command and prints any error to stderr.
func Run(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// Root returns the root command.
func Root() *cobra.Command {
	return rootCmd
}

// AddCommand adds a command to the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// commandLogger returns the CLI logger, falling back to the default one.
func commandLogger() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}
