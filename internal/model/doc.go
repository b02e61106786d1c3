// Package model defines the domain types and value objects for the
// sortstack CLI.
//
// This package contains pure data structures with no external dependencies.
// The single domain entity is NumberList, the integers read from standard
// input. It lives only for the duration of one run and is rebuilt from
// scratch on every invocation; the only thing that outlives the process is
// the flat text file written by the output package.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
