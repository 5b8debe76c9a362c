package domain

import (
	"strings"
	"unicode/utf8"
)

// MinSourceChars is the least amount of source text, after trimming, that
// generation is attempted for.
const MinSourceChars = 50

// SourceLength returns the number of characters in text after trimming
// surrounding whitespace.
func SourceLength(text string) int {
	return utf8.RuneCountInString(strings.TrimSpace(text))
}

// HasEnoughSource reports whether text is long enough to generate from.
func HasEnoughSource(text string) bool {
	return SourceLength(text) >= MinSourceChars
}
