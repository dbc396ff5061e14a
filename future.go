package lazy

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Future is a deferred value: a one-shot container which eventually holds a value or an error.
// Only the first settlement counts, later ones are ignored.
// Futures must be created with Resolved, Rejected, NewPromise or Go,
// the zero value is not usable.
type Future[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a future already holding v.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.settle(v, nil)

	return f
}

// Rejected returns a future already failed with err.
func Rejected[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.settle(zero, err)

	return f
}

// NewPromise returns an unsettled future and the function settling it.
// Settling with a non-nil error fails the future.
func NewPromise[T any]() (*Future[T], func(T, error)) {
	f := newFuture[T]()

	return f, f.settle
}

// Go runs fn in its own goroutine and returns a future for its result.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		f.settle(fn(ctx))
	}()

	return f
}

// Done returns a channel which is closed when the future is settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await waits for the future to settle and returns its value or error.
// If context is cancelled first, Await returns the context error.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done: // settled futures win over a cancelled context
		return f.value, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (f *Future[T]) settle(v T, err error) {
	f.once.Do(func() {
		f.value, f.err = v, err
		close(f.done)
	})
}

// AwaitAll waits for all futures concurrently and returns their values in the same order.
// The first failure stops waiting for the rest and is returned.
func AwaitAll[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))

	eg, ctx := errgroup.WithContext(ctx)
	for i, f := range futures {
		eg.Go(func() error {
			if f == nil {
				return ErrNilFuture
			}

			v, err := f.Await(ctx)
			if err != nil {
				return err
			}

			results[i] = v
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
