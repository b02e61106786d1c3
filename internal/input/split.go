package input

import (
	"bufio"
	"unicode"
	"unicode/utf8"
)

// oversizedPrefixLen is how many leading bytes of an oversized token are
// kept for diagnostics.
const oversizedPrefixLen = 16

// wordSplitter is a bufio.SplitFunc source that behaves like
// bufio.ScanWords, except that a word which does not fit in the scanner
// buffer is discarded up to its next separator and reported as a single
// token instead of failing the scan with bufio.ErrTooLong.
//
// The reported token is the word's first bytes followed by "...", which
// Classify always treats as invalid.
type wordSplitter struct {
	// limit is the scanner's maximum buffer size.
	limit int

	// skipping is set while the tail of an oversized word is discarded.
	skipping bool

	// prefix holds the start of the word being discarded.
	prefix []byte
}

// split implements bufio.SplitFunc.
func (s *wordSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	if s.skipping {
		return s.skip(data, atEOF)
	}

	advance, token, err := bufio.ScanWords(data, atEOF)
	if err != nil || advance > 0 || token != nil || atEOF {
		return advance, token, err
	}

	// ScanWords wants more data, but the buffer cannot grow any further:
	// data holds nothing but the beginning of one word.
	if len(data) >= s.limit {
		s.skipping = true
		s.prefix = append(s.prefix[:0], data[:oversizedPrefixLen]...)
		return len(data), nil, nil
	}

	return 0, nil, nil
}

// skip discards bytes up to the first separator, then emits the
// placeholder token. The separator itself is left for ScanWords.
func (s *wordSplitter) skip(data []byte, atEOF bool) (int, []byte, error) {
	for i := 0; i < len(data); {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return i, nil, nil
		}
		r, width := utf8.DecodeRune(data[i:])
		if unicode.IsSpace(r) {
			return i, s.placeholder(), nil
		}
		i += width
	}

	if atEOF {
		return len(data), s.placeholder(), nil
	}
	return len(data), nil, nil
}

// placeholder ends skipping mode and returns the token for the discarded
// word.
func (s *wordSplitter) placeholder() []byte {
	s.skipping = false
	return append(s.prefix, "..."...)
}
