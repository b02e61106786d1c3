// Package main is the entry point for the sortstack CLI.
//
// The binary reads integers from standard input, prints them sorted largest
// first and saves them to sorted_stack.txt. It delegates all functionality
// to the internal/cli package, which defines the cobra command.
//
// Build-time variables (version, commit, date) are injected via ldflags,
// e.g. -ldflags "-X main.version=1.0.0". During development, they default
// to "dev", "none", and "unknown" respectively.
package main

import (
	"github.com/shinji-kodama/sortstack/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info before the command is built, since
	// NewRootCommand reads it into the cobra Version string.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
