package output

import (
	"fmt"
	"io"

	"github.com/shinji-kodama/sortstack/internal/model"
)

// Present writes the display header followed by the numbers of ascending,
// largest first, one per line.
//
// ascending is only read. The first write error from w is returned.
func Present(w io.Writer, ascending model.NumberList) error {
	if _, err := fmt.Fprintln(w, model.DisplayHeader); err != nil {
		return fmt.Errorf("failed to write display header: %w", err)
	}
	return writeLines(w, ascending.Descending())
}

// writeLines writes each number in base 10 on its own line, in the order
// given. It is shared by the console and file sinks so both render numbers
// identically.
func writeLines(w io.Writer, numbers model.NumberList) error {
	for _, n := range numbers {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return fmt.Errorf("failed to write %d: %w", n, err)
		}
	}
	return nil
}
