package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shinji-kodama/sortstack/internal/model"
)

// Persist writes the numbers of ascending to path, largest first, one per
// line with a trailing newline and no header.
//
// An existing file is truncated, so the file only ever holds the result of
// the latest run. An empty list produces a zero-byte file.
//
// The file is closed on every return path, including a failed write. Writes
// are buffered, so errors can surface from the final Flush or Close as well
// as from the writes themselves; all of them are returned wrapped with the
// path.
func Persist(path string, ascending model.NumberList) (err error) {
	// os.Create opens with O_TRUNC and mode 0666 before umask, which is
	// 0644 under the usual umask of 022.
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, cerr))
		}
	}()

	return writeFile(f, path, ascending)
}

// writeFile renders ascending, largest first, through a buffered writer on
// w. path is only used to name the destination in errors.
func writeFile(w io.Writer, path string, ascending model.NumberList) error {
	bw := bufio.NewWriter(w)
	if err := writeLines(bw, ascending.Descending()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// SaveReport converts the outcome of Persist into the single status line
// shown to the user: the confirmation on success, or the failure prefix
// followed by the error.
func SaveReport(err error) string {
	if err != nil {
		return model.SaveFailurePrefix + err.Error()
	}
	return model.SaveSuccessMessage
}
