package main

import (
	"os"

	"github.com/temirov/las/cmd/cli"
)

// main executes the las command-line application. Failures are reported by the application itself.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		os.Exit(1)
	}
}
