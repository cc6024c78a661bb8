package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/treesift/cmd/treesift"
	"github.com/arthur-debert/treesift/internal/version"
)

func main() {
	rootCmd := treesift.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TREESIFT",
		Section: "1",
		Source:  "treesift " + version.Version,
		Manual:  "treesift manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
