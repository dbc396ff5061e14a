// Package main provides the lazy CLI tool.
//
// Usage:
//
//	lazy [flags] <command> [args]
//
// Commands:
//
//	bottles   - print the "99 Bottles of Beer" song
//	fib       - print Fibonacci numbers
//	traverse  - print the nodes of a YAML tree depth-first or breadth-first
//	merge     - merge two sorted lists of integers
//	async     - sum values resolved one by one by an async computation
//	version   - print the version
package main

import (
	"fmt"
	"os"

	"github.com/dmksnnk/lazy/cmd/lazy/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
