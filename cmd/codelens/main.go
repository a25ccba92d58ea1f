// Package main provides the CLI entry point for the codelens application.
package main

import (
	"fmt"
	"os"

	"github.com/harrison/codelens/internal/cmd"
)

// Version is the current version of the codelens application.
const Version = "1.0.0"

func main() {
	rootCmd := cmd.NewRootCommand(Version)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps an error to the exit codes in the external interface:
// 1 for a missing index or invalid directory, 2 for anything else.
func exitCodeFor(err error) int {
	if cmd.IsUserFacing(err) {
		return 1
	}
	return 2
}
