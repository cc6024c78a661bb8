package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/treesift/cmd/treesift"
	"github.com/arthur-debert/treesift/pkg/errors"
	"github.com/arthur-debert/treesift/pkg/output/styles"

	// Adjust GOMAXPROCS to the container CPU quota.
	_ "go.uber.org/automaxprocs"
)

func main() {
	rootCmd := treesift.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Lint problems were already reported in full; only the exit
		// status is left to signal.
		if errors.IsErrorCode(err, errors.ErrCheckFailed) {
			os.Exit(1)
		}

		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Show the full help for the command that failed
		fmt.Fprintln(os.Stderr)
		_ = rootCmd.Help()

		os.Exit(1)
	}
}
