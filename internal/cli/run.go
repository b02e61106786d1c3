// run.go implements the pipeline behind the root command.
//
// The pipeline is strictly sequential:
//
//	Reader -> Sorter -> Presenter
//	                 -> Persister
//
// Every stage works on values handed to it; the console is only reached
// through the io.Reader and io.Writer passed in, and the filesystem only
// through outputPath.

package cli

import (
	"fmt"
	"io"

	"github.com/shinji-kodama/sortstack/internal/input"
	"github.com/shinji-kodama/sortstack/internal/model"
	"github.com/shinji-kodama/sortstack/internal/output"
)

// runSort reads integers from in, prints them largest first to out, saves
// the same sequence to outputPath and prints the save status to out.
//
// Nothing here fails the command. Invalid tokens are warned about by the
// reader, a broken input stream ends input early, and a failed save is
// reported on out.
func runSort(in io.Reader, out io.Writer, outputPath string) {
	// Step 1: Prompt. Console write errors are ignored throughout, just as
	// they are for any fmt.Println based CLI.
	_, _ = fmt.Fprintln(out, model.PromptMessage)

	// Step 2: Collect numbers. Warnings for invalid tokens go to out.
	reader := input.NewReader(in)
	numbers, err := reader.ReadNumbers(out)
	if err != nil {
		VerboseLog("Input ended early: %v", err)
	}
	for _, tok := range reader.Rejected() {
		VerboseLog("Skipped %s token %q", tok.Kind, tok.Text)
	}
	VerboseLog("Read %d numbers, rejected %d tokens", reader.Accepted(), len(reader.Rejected()))

	// Step 3: Sort ascending. Both sinks below derive their own
	// descending copy from this list.
	sorted := numbers.Sorted()

	// Step 4: Display.
	if err := output.Present(out, sorted); err != nil {
		VerboseLog("Failed to display sorted numbers: %v", err)
	}

	// Step 5: Save and report the outcome on the console.
	VerboseLog("Writing %d numbers to %s", sorted.Len(), outputPath)
	saveErr := output.Persist(outputPath, sorted)
	_, _ = fmt.Fprintln(out, output.SaveReport(saveErr))
}
