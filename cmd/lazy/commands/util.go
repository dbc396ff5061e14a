package commands

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// parseInts parses a comma-separated list of integers. Empty input is an empty list.
func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		result = append(result, v)
	}

	return result, nil
}

// printAll writes each value of seq on its own line and returns how many were written.
func printAll[T any](w io.Writer, seq iter.Seq[T]) (int, error) {
	n := 0
	for v := range seq {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}
