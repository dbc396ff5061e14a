package lazy

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidCount is returned when a song is started with fewer than one bottle.
var ErrInvalidCount = errors.New("bottle count must be at least 1")

// Bottles produces the lines of the "99 Bottles of Beer" song.
type Bottles struct {
	start   int
	count   int
	pending []string
}

// NewBottles returns a producer of the song starting at 99 bottles.
func NewBottles() *Bottles {
	return &Bottles{start: 99, count: 99}
}

// NewBottlesFrom returns a producer of the song starting at n bottles.
// The last line sends the singer to the store to buy n bottles again.
func NewBottlesFrom(n int) (*Bottles, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}

	return &Bottles{start: n, count: n}, nil
}

// Next returns the next line of the song.
func (b *Bottles) Next() (string, bool) {
	if len(b.pending) == 0 {
		b.pending = b.verse()
	}
	if len(b.pending) == 0 {
		return "", false
	}

	line := b.pending[0]
	b.pending = b.pending[1:]

	return line, true
}

// verse returns the lines for the current count and moves the count down.
// After the last verse it returns nil.
func (b *Bottles) verse() []string {
	n := b.count
	switch {
	case n >= 2:
		b.count--
		return []string{
			fmt.Sprintf("%d bottles of beer on the wall, %d bottles of beer.", n, n),
			fmt.Sprintf("Take one down and pass it around, %s of beer on the wall.", bottles(n-1)),
		}
	case n == 1:
		b.count--
		return []string{
			"1 bottle of beer on the wall, 1 bottle of beer.",
			"Take one down and pass it around, no more bottles of beer on the wall.",
			"No more bottles of beer on the wall, no more bottles of beer.",
			fmt.Sprintf("Go to the store and buy some more, %s of beer on the wall.", bottles(b.start)),
		}
	default:
		return nil
	}
}

func bottles(n int) string {
	if n == 1 {
		return "1 bottle"
	}

	return fmt.Sprintf("%d bottles", n)
}

// BottleSong returns an iterator over the lines of the "99 Bottles of Beer" song.
func BottleSong() iter.Seq[string] {
	return func(yield func(string) bool) {
		Values(NewBottles())(yield)
	}
}
