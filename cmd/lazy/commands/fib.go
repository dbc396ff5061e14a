package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmksnnk/lazy"
)

func newFibCmd() *cobra.Command {
	var (
		count  int
		useBig bool
	)

	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Print the first Fibonacci numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				n   int
				err error
			)
			if useBig {
				n, err = printAll(cmd.OutOrStdout(), lazy.Take(lazy.BigFibonacci(), count))
			} else {
				n, err = printAll(cmd.OutOrStdout(), lazy.Take(lazy.FibonacciSeq(), count))
			}
			slog.Debug("printed fibonacci numbers", "count", n, "big", useBig)

			return err
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "how many numbers to print")
	cmd.Flags().BoolVar(&useBig, "big", false, "use arbitrary precision, uint64 wraps after F(93)")

	return cmd
}
