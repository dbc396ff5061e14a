package commands

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmksnnk/lazy"
)

func newMergeCmd() *cobra.Command {
	var a, b string

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge two sorted comma-separated lists of integers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := parseInts(a)
			if err != nil {
				return err
			}
			second, err := parseInts(b)
			if err != nil {
				return err
			}

			if !slices.IsSorted(first) || !slices.IsSorted(second) {
				slog.Warn("input is not sorted, output order is undefined")
			}

			merged := lazy.MergeSorted(
				func() iter.Seq[int] { return slices.Values(first) },
				func() iter.Seq[int] { return slices.Values(second) },
			)
			n, err := printAll(cmd.OutOrStdout(), merged)
			slog.Debug("merged", "first", len(first), "second", len(second), "total", n)

			return err
		},
	}

	cmd.Flags().StringVar(&a, "a", "", "first sorted list, e.g. 1,3,5")
	cmd.Flags().StringVar(&b, "b", "", "second sorted list, e.g. 2,4,6")

	return cmd
}
