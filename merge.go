package lazy

import (
	"cmp"
	"iter"

	"github.com/achille-roussel/kway-go"
)

// MergeSorted merges two ascending sequences into one ascending sequence.
// Each source is a factory returning a fresh sequence, it is called once per ranging.
// When one source runs out, the rest of the other one is passed through as is.
// The result ends when both sources are exhausted.
// If a source is not sorted, the order of the result is undefined.
func MergeSorted[N cmp.Ordered](source1, source2 func() iter.Seq[N]) iter.Seq[N] {
	return func(yield func(N) bool) {
		for v, err := range kway.Merge(withNilErrors(source1()), withNilErrors(source2())) {
			if err != nil || !yield(v) { // sources never fail
				return
			}
		}
	}
}

func withNilErrors[T any](seq iter.Seq[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v := range seq {
			if !yield(v, nil) {
				return
			}
		}
	}
}
