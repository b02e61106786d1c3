package model

import (
	"cmp"
	"fmt"
	"slices"
)

// Fixed strings of the console and file interface. None of them can be
// overridden by flags or environment variables.
const (
	// Sentinel is the token that ends input collection. It is matched
	// case-insensitively, so "done", "DONE" and "Done" all terminate input.
	Sentinel = "done"

	// OutputFileName is the file the sorted numbers are written to,
	// relative to the current working directory. It is truncated on
	// every run.
	OutputFileName = "sorted_stack.txt"

	// PromptMessage is printed once before any input is read.
	PromptMessage = "Enter integers (type 'done' to finish):"

	// InvalidTokenMessage is printed once for every token that is neither
	// an integer nor the sentinel.
	InvalidTokenMessage = "Invalid input. Please enter an integer or 'done' to finish."

	// DisplayHeader precedes the sorted numbers on the console.
	DisplayHeader = "Sorted Stack (top to bottom):"

	// SaveSuccessMessage confirms that OutputFileName was written.
	SaveSuccessMessage = "Sorted stack saved to " + OutputFileName

	// SaveFailurePrefix is prepended to the underlying error when the
	// output file cannot be written.
	SaveFailurePrefix = "An error occurred while saving the file: "
)

// NumberList is the ordered sequence of integers collected from input.
//
// Insertion order is preserved until the list is sorted. Duplicates are
// kept. None of the methods below modify the receiver; each returns a
// fresh list so that the display and the file can be produced from the
// same data without one consuming what the other needs.
type NumberList []int

// Len returns the number of integers in the list.
func (l NumberList) Len() int {
	return len(l)
}

// Sorted returns a copy of the list in non-decreasing order.
//
// The sort is stable. Equal ints carry no identity, so ties need no
// further ordering. Sorting a sorted list returns an equal list.
func (l NumberList) Sorted() NumberList {
	out := slices.Clone(l)
	if out == nil {
		out = NumberList{}
	}
	slices.SortStableFunc(out, cmp.Compare[int])
	return out
}

// Descending returns a copy of the list with its order reversed.
//
// Called on an ascending list it yields the "top to bottom" view: the
// largest value first, which is the order in which a stack built from the
// ascending list would be popped.
func (l NumberList) Descending() NumberList {
	out := slices.Clone(l)
	if out == nil {
		out = NumberList{}
	}
	slices.Reverse(out)
	return out
}

// ExitCode defines the process exit codes used by the CLI.
//
// A failed file write is reported but is not a process failure, so the
// only non-zero codes come from the command line itself.
type ExitCode int

const (
	// ExitSuccess indicates the command completed. This includes runs
	// where the output file could not be written.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitUsageError indicates the command line was malformed, for
	// example because positional arguments were given.
	ExitUsageError ExitCode = 2
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate errors into appropriate
// process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
