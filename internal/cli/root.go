// Package cli implements the cobra-based command line for sortstack.
//
// sortstack has a single root command and no subcommands. This file defines
// that command, its global flags and the error to exit-code mapping; the
// read, sort, display and save pipeline it runs lives in run.go.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/sortstack/internal/model"
)

// verbose enables diagnostic output on stderr. Standard output is reserved
// for the prompt, warnings, the sorted numbers and the save status line, so
// diagnostics never mix with it.
var verbose bool

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// The command reads integers from its input stream until "done" or end of
// stream, prints them largest first and saves the same sequence to
// sorted_stack.txt in the working directory. Input and output streams come
// from cmd.InOrStdin and cmd.OutOrStdout, so tests can swap them with
// SetIn and SetOut.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sortstack",
		Short: "Sort integers from standard input and save them to a file",
		Long: `sortstack reads whitespace-separated integers from standard input until
it sees "done" (in any case) or the input ends. Tokens that are not integers
are reported and skipped.

The numbers are sorted and printed largest first, then written in the same
order to sorted_stack.txt in the current directory, replacing any previous
contents. A failure to write the file is reported but does not change the
exit status.

Examples:
  echo "5 3 9 done" | sortstack
  sortstack < numbers.txt`,

		// No positional arguments are accepted. A usage mistake is wrapped
		// in a CLIError so Execute can exit with ExitUsageError.
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return model.WrapCLIError(model.ExitUsageError, "invalid command line", err)
			}
			return nil
		},

		Run: func(cmd *cobra.Command, args []string) {
			runSort(cmd.InOrStdin(), cmd.OutOrStdout(), model.OutputFileName)
		},

		// We format errors ourselves in Execute.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostics to stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return model.WrapCLIError(model.ExitUsageError, "invalid command line", err)
	})

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// A completed run returns normally (exit status 0) even when the output
// file could not be written; only command line errors reach this point.
// CLIError values carry their own exit code, anything else exits with 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError writes "Error: <message>" to stderr.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}
