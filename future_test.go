package lazy_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmksnnk/lazy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestFuture(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		got, err := lazy.Resolved(5).Await(context.TODO())
		require.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	t.Run("rejected", func(t *testing.T) {
		_, err := lazy.Rejected[int](errTest).Await(context.TODO())
		assert.ErrorIs(t, err, errTest)
	})

	t.Run("settled once", func(t *testing.T) {
		f, settle := lazy.NewPromise[int]()
		settle(1, nil)
		settle(2, errTest)

		got, err := f.Await(context.TODO())
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("many observers", func(t *testing.T) {
		f, settle := lazy.NewPromise[string]()

		var eg errgroup.Group
		for range 5 {
			eg.Go(func() error {
				v, err := f.Await(context.Background())
				if err != nil {
					return err
				}
				if v != "done" {
					return errors.New("unexpected value " + v)
				}
				return nil
			})
		}

		settle("done", nil)
		require.NoError(t, eg.Wait())
	})

	t.Run("go", func(t *testing.T) {
		f := lazy.Go(context.Background(), func(ctx context.Context) (int, error) {
			time.Sleep(time.Millisecond)
			return 42, nil
		})

		<-f.Done()
		got, err := f.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("cancelled context", func(t *testing.T) {
		f, settle := lazy.NewPromise[int]()
		defer settle(0, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.Await(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("settled wins over cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got, err := lazy.Resolved(7).Await(ctx)
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})
}

func TestAwaitAll(t *testing.T) {
	t.Run("keeps order", func(t *testing.T) {
		slow := lazy.Go(context.Background(), func(context.Context) (int, error) {
			time.Sleep(10 * time.Millisecond)
			return 1, nil
		})

		got, err := lazy.AwaitAll(context.Background(), slow, lazy.Resolved(2), lazy.Resolved(3))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("first failure", func(t *testing.T) {
		pending, settle := lazy.NewPromise[int]()
		defer settle(0, nil)

		_, err := lazy.AwaitAll(context.Background(), pending, lazy.Rejected[int](errTest))
		assert.ErrorIs(t, err, errTest)
	})

	t.Run("nil future", func(t *testing.T) {
		_, err := lazy.AwaitAll(context.Background(), lazy.Resolved(1), nil)
		assert.ErrorIs(t, err, lazy.ErrNilFuture)
	})

	t.Run("empty", func(t *testing.T) {
		got, err := lazy.AwaitAll[int](context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
