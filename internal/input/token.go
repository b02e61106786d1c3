package input

import (
	"strconv"
	"strings"

	"github.com/shinji-kodama/sortstack/internal/model"
)

// TokenKind classifies a single input token.
type TokenKind int

const (
	// KindInvalid is a token that is neither a number nor the sentinel.
	KindInvalid TokenKind = iota

	// KindNumber is a base-10 signed integer that fits in an int.
	KindNumber

	// KindSentinel is the case-insensitive "done" marker.
	KindSentinel
)

// String returns a lowercase name for the kind.
func (k TokenKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindSentinel:
		return "sentinel"
	default:
		return "invalid"
	}
}

// Token is a classified input token.
type Token struct {
	// Kind tells how the token was interpreted.
	Kind TokenKind

	// Text is the raw token as it appeared in the input.
	Text string

	// Value holds the parsed integer. It is only meaningful when Kind is
	// KindNumber.
	Value int
}

// Classify interprets a raw token.
//
// Numbers are checked before the sentinel, though no string can be both.
// Integers outside the range of int make strconv.Atoi fail with ErrRange
// and are therefore classified as invalid rather than clamped.
func Classify(text string) Token {
	if n, err := strconv.Atoi(text); err == nil {
		return Token{Kind: KindNumber, Text: text, Value: n}
	}
	if strings.EqualFold(text, model.Sentinel) {
		return Token{Kind: KindSentinel, Text: text}
	}
	return Token{Kind: KindInvalid, Text: text}
}
