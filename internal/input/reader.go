package input

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shinji-kodama/sortstack/internal/model"
)

// maxTokenSize is the largest buffer the scanner grows to. bufio.Scanner
// defaults to 64 KiB, and a single pasted line of digits can exceed that.
// Longer words are reported as invalid tokens by wordSplitter.
const maxTokenSize = 1024 * 1024

// Reader collects integers from a whitespace-delimited token stream.
//
// A Reader is single-use: once ReadNumbers returns, the underlying scanner
// has either hit the sentinel, end of stream, or a read error.
type Reader struct {
	// scanner splits the input into words, so spaces, tabs and newlines
	// are all token separators.
	scanner *bufio.Scanner

	// accepted counts tokens that were appended to the list.
	accepted int

	// rejected holds every token that triggered a warning, in input order.
	rejected []Token
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxTokenSize)
	splitter := &wordSplitter{limit: maxTokenSize}
	scanner.Split(splitter.split)

	return &Reader{scanner: scanner}
}

// ReadNumbers consumes tokens until the sentinel or end of stream and
// returns the integers in the order they were read.
//
// For every invalid token, model.InvalidTokenMessage is written to warn as
// its own line and reading continues.
//
// A word too long for the scanner buffer counts as one invalid token.
//
// The returned list is never nil. If the underlying reader fails, the
// numbers collected so far are returned together with the error, so the
// caller can decide to carry on with a partial list.
func (r *Reader) ReadNumbers(warn io.Writer) (model.NumberList, error) {
	numbers := model.NumberList{}

	for r.scanner.Scan() {
		tok := Classify(r.scanner.Text())

		switch tok.Kind {
		case KindNumber:
			numbers = append(numbers, tok.Value)
			r.accepted++
		case KindSentinel:
			return numbers, nil
		default:
			r.rejected = append(r.rejected, tok)
			// A failed warning write must not abort input collection.
			_, _ = fmt.Fprintln(warn, model.InvalidTokenMessage)
		}
	}

	// Scan returns false on both EOF and error; Err is nil for plain EOF.
	if err := r.scanner.Err(); err != nil {
		return numbers, fmt.Errorf("failed to read input after %d numbers: %w", len(numbers), err)
	}

	return numbers, nil
}

// Accepted returns how many tokens were read as numbers.
func (r *Reader) Accepted() int {
	return r.accepted
}

// Rejected returns the tokens that were rejected as invalid.
func (r *Reader) Rejected() []Token {
	return r.rejected
}
