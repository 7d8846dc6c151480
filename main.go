// Package main provides the entry point for cusim.
// cusim simulates a processor control unit with a memoizing operation cache.
//
// For the full CLI, use: go run ./cmd/cusim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("cusim - control unit simulator")
	fmt.Println("")
	fmt.Println("Usage: cusim <command> [flags]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  demo      Run a worked load/ADD/MUL/ADD example")
	fmt.Println("  run       Run a control unit script")
	fmt.Println("  config    Print the timing configuration")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/cusim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/cusim' instead.")
	}
}
