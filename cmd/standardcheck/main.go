// Package main provides the standardcheck CLI.
package main

import (
	"os"

	"github.com/example/standardcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
