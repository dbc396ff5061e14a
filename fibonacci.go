package lazy

import (
	"iter"
	"math/big"
)

// Fibonacci produces the Fibonacci numbers 0, 1, 1, 2, 3, 5, 8, ...
// It never runs out. Values past F(93) do not fit into uint64 and wrap around,
// use BigFibonacci for exact values.
type Fibonacci struct {
	a, b uint64
}

// NewFibonacci returns a producer starting at F(0).
func NewFibonacci() *Fibonacci {
	return &Fibonacci{a: 0, b: 1}
}

// Next returns the next Fibonacci number. It always returns true.
func (f *Fibonacci) Next() (uint64, bool) {
	v := f.a
	f.a, f.b = f.b, f.a+f.b

	return v, true
}

// FibonacciSeq returns an infinite iterator over the Fibonacci numbers.
// Bound it with Take or by breaking out of the loop.
func FibonacciSeq() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		Values(NewFibonacci())(yield)
	}
}

// BigFibonacci returns an infinite iterator over the exact Fibonacci numbers.
// Each yielded value is a new big.Int owned by the caller.
func BigFibonacci() iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		a, b := big.NewInt(0), big.NewInt(1)
		next := ProducerFunc[*big.Int](func() (*big.Int, bool) {
			v := new(big.Int).Set(a)
			a.Add(a, b)
			a, b = b, a

			return v, true
		})

		Values(next)(yield)
	}
}
