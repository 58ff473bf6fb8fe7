// Package main provides the puzzlelint command.
package main

import (
	"os"

	"github.com/leapstack-labs/puzzlelint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
