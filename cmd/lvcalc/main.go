// Command lvcalc serves the calculators over HTTP and runs them from the shell.
package main

import (
	"os"

	"github.com/katalvlaran/lvcalc/cmd/lvcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
