package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmksnnk/lazy"
)

func newBottlesCmd() *cobra.Command {
	var from int

	cmd := &cobra.Command{
		Use:   "bottles",
		Short: `Print the "99 Bottles of Beer" song`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			song, err := lazy.NewBottlesFrom(from)
			if err != nil {
				return err
			}

			n, err := printAll(cmd.OutOrStdout(), lazy.Values(song))
			slog.Debug("song finished", "from", from, "lines", n)

			return err
		},
	}

	cmd.Flags().IntVar(&from, "from", 99, "number of bottles to start with")

	return cmd
}
