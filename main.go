// Command phonovar measures phonotactic score variance across seeded
// random samples of the CMU Pronouncing Dictionary.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/phonolab/phonovar/cmd"
)

const version = "0.1.0"

func main() {
	root := cmd.NewRootCmd()

	// fang wraps the cobra root with completions, manpages and --version.
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
