// Package main provides the cvqnn-params CLI tool.
//
// Usage:
//
//	cvqnn-params [flags] <command>
//
// Commands:
//
//	generate - sample the eleven CV layer parameter arrays
//	roles    - print the positional role table
//
// Examples:
//
//	cvqnn-params generate --modes 4 --layers 2 --seed 42
//	cvqnn-params generate -f request.yaml --json --summary --omit-values
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/cvqnn/cmd/cvqnn-params/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
