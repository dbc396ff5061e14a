package lazy

import (
	"context"
	"errors"
	"runtime"
)

var (
	// ErrNilFuture is returned when a computation suspends on a nil future.
	ErrNilFuture = errors.New("nil future")
	// ErrStopped is returned by a coroutine resumed after Stop.
	ErrStopped = errors.New("coroutine stopped")
)

// Step is what a coroutine reports after being resumed:
// either it is suspended on Await, or it is Done with Result and Err.
type Step[T, R any] struct {
	Await  *Future[T]
	Result R
	Err    error
	Done   bool
}

// Suspend returns a step suspending the coroutine until f is settled.
func Suspend[T, R any](f *Future[T]) Step[T, R] {
	return Step[T, R]{Await: f}
}

// Return returns a step finishing the coroutine.
func Return[T, R any](result R, err error) Step[T, R] {
	return Step[T, R]{Result: result, Err: err, Done: true}
}

// Coroutine is a resumable computation.
// The first Resume starts it with the zero value of T, every next Resume passes
// the value of the future the coroutine was suspended on.
// Stop releases the coroutine. Resume after Stop returns a Done step failing with ErrStopped.
type Coroutine[T, R any] interface {
	Resume(in T) Step[T, R]
	Stop()
}

// Async drives the coroutine made by factory to completion and returns a future for its result.
// The coroutine is created and started before Async returns, so its code up to
// the first suspension has already run. After that, each time the coroutine suspends,
// Async waits for the future in the background and resumes the coroutine with its value.
// The first failed future (or cancelled context) fails the result and the coroutine is not resumed again.
func Async[T, R any](ctx context.Context, factory func() Coroutine[T, R]) *Future[R] {
	co := factory()
	var in T
	first := co.Resume(in)

	return Go(ctx, func(ctx context.Context) (R, error) {
		return drive(ctx, co, first)
	})
}

func drive[T, R any](ctx context.Context, co Coroutine[T, R], step Step[T, R]) (R, error) {
	defer co.Stop()

	var zero R
	for {
		if step.Done {
			return step.Result, step.Err
		}
		if step.Await == nil {
			return zero, ErrNilFuture
		}

		v, err := step.Await.Await(ctx)
		if err != nil {
			return zero, err
		}

		step = co.Resume(v)
	}
}

// Func makes a coroutine factory from a plain function.
// Inside body, await suspends the computation until the future is settled
// and returns its value. Failures never reach body: when the coroutine is stopped
// while suspended, await never returns. Deferred calls of body still run.
//
//	sum := lazy.Func(func(await func(*lazy.Future[int]) int) (int, error) {
//		a := await(lazy.Resolved(5))
//		b := await(lazy.Resolved(6))
//		return a + b, nil
//	})
func Func[T, R any](body func(await func(*Future[T]) T) (R, error)) func() Coroutine[T, R] {
	return func() Coroutine[T, R] {
		return &funcCoroutine[T, R]{
			body:     body,
			resume:   make(chan T),
			suspend:  make(chan *Future[T]),
			quit:     make(chan struct{}),
			finished: make(chan struct{}),
		}
	}
}

// funcCoroutine runs body in its own goroutine, but only one side runs at a time:
// control is handed over on the unbuffered resume and suspend channels.
type funcCoroutine[T, R any] struct {
	body     func(await func(*Future[T]) T) (R, error)
	resume   chan T
	suspend  chan *Future[T]
	quit     chan struct{}
	finished chan struct{}

	started bool
	stopped bool

	// written by body goroutine before finished is closed
	result   R
	err      error
	panicked bool
	panicVal any
}

func (c *funcCoroutine[T, R]) Resume(in T) Step[T, R] {
	if c.stopped {
		var zero R
		return Return[T](zero, ErrStopped)
	}

	select {
	case <-c.finished:
		return c.finish()
	default:
	}

	if !c.started {
		c.started = true
		go c.run()
	} else {
		c.resume <- in
	}

	select {
	case f := <-c.suspend:
		return Suspend[T, R](f)
	case <-c.finished:
		return c.finish()
	}
}

func (c *funcCoroutine[T, R]) Stop() {
	if c.stopped {
		return
	}

	c.stopped = true
	close(c.quit)
	if c.started {
		<-c.finished
	}
}

func (c *funcCoroutine[T, R]) run() {
	defer close(c.finished)
	defer func() {
		if r := recover(); r != nil {
			c.panicked, c.panicVal = true, r
		}
	}()

	c.result, c.err = c.body(c.await)
}

func (c *funcCoroutine[T, R]) await(f *Future[T]) T {
	select {
	case c.suspend <- f:
		select {
		case in := <-c.resume:
			return in
		case <-c.quit:
		}
	case <-c.quit:
	}

	// Goexit unwinds body running its deferred calls, recover in body cannot stop it.
	runtime.Goexit()

	var zero T
	return zero
}

// finish reports the outcome of a returned body, re-raising its panic in the caller.
func (c *funcCoroutine[T, R]) finish() Step[T, R] {
	if c.panicked {
		panic(c.panicVal)
	}

	return Return[T](c.result, c.err)
}
