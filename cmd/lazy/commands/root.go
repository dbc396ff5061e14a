package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "lazy",
		Short: "Lazy sequences and async computations playground",
		Long: `lazy prints lazily generated sequences: the bottle song, Fibonacci numbers,
tree traversals and merged sorted lists. It can also drive an async computation
resolving its values one step at a time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(logLevel)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newBottlesCmd(),
		newFibCmd(),
		newTraverseCmd(),
		newMergeCmd(),
		newAsyncCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return level, nil
}
