// Package lazy provides lazy sequence producers and a cooperative driver for
// asynchronous computations.
//
// Every producer is an explicit state machine with a single Next method.
// The iter.Seq constructors build a fresh producer each time they are ranged over.
package lazy

import "iter"

// Producer is a resumable computation yielding values on demand.
// Next returns the next value and true, or the zero value and false once the producer is exhausted.
// An exhausted producer keeps returning false.
type Producer[T any] interface {
	Next() (T, bool)
}

// Values converts a producer into an iterator.
// Ranging stops early if the consumer breaks. The producer is not restarted,
// so ranging the returned iterator twice continues where the first ranging stopped.
// Based on https://go.dev/wiki/RangefuncExperiment.
func Values[T any](p Producer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := p.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Take returns an iterator over at most n first values of seq.
// It is the way to bound an infinite sequence.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}

		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}

			i++
			if i >= n {
				return
			}
		}
	}
}

// ProducerFunc adapts an ordinary function to a Producer.
type ProducerFunc[T any] func() (T, bool)

// Next calls f.
func (f ProducerFunc[T]) Next() (T, bool) {
	return f()
}
