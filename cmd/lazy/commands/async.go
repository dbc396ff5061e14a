package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmksnnk/lazy"
)

var errStepFailed = errors.New("step failed")

func newAsyncCmd() *cobra.Command {
	var (
		values  string
		failAt  int
		delay   time.Duration
		timeout time.Duration
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "async",
		Short: "Sum values resolved asynchronously one step at a time",
		Long: `Sum values resolved asynchronously one step at a time.

Every value is resolved in the background after the delay, the computation is
suspended until it arrives. With --fail-at the value at that index fails and
the computation stops there. With --all every value is resolved concurrently
and awaited at once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseInts(values)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			if all {
				total, err := sumAll(ctx, vals, failAt, delay)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), total)
				return err
			}

			sum := lazy.Func(func(await func(*lazy.Future[int]) int) (int, error) {
				total := 0
				for i, v := range vals {
					total += await(resolveLater(ctx, i, v, i == failAt, delay))
					slog.Debug("step resolved", "index", i, "total", total)
				}
				return total, nil
			})

			total, err := lazy.Async(ctx, sum).Await(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), total)
			return err
		},
	}

	cmd.Flags().StringVar(&values, "values", "5,6", "comma-separated values to await")
	cmd.Flags().IntVar(&failAt, "fail-at", -1, "index of the value which fails, negative for none")
	cmd.Flags().DurationVar(&delay, "delay", 0, "delay before each value is resolved")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "overall timeout, zero for none")
	cmd.Flags().BoolVar(&all, "all", false, "resolve all values concurrently and await them at once")

	return cmd
}

// sumAll starts resolving every value at once and waits for all of them.
// On failure it stops the rest and waits until they are gone.
func sumAll(ctx context.Context, vals []int, failAt int, delay time.Duration) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	futures := make([]*lazy.Future[int], len(vals))
	for i, v := range vals {
		futures[i] = resolveLater(ctx, i, v, i == failAt, delay)
	}

	resolved, err := lazy.AwaitAll(ctx, futures...)
	cancel()
	for _, f := range futures {
		<-f.Done()
	}
	if err != nil {
		return 0, err
	}

	total := 0
	for _, v := range resolved {
		total += v
	}
	slog.Debug("all values resolved", "count", len(resolved), "total", total)

	return total, nil
}

func resolveLater(ctx context.Context, index, v int, fail bool, delay time.Duration) *lazy.Future[int] {
	return lazy.Go(ctx, func(ctx context.Context) (int, error) {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(delay):
		}

		if fail {
			return 0, fmt.Errorf("%w: index %d", errStepFailed, index)
		}

		return v, nil
	})
}
