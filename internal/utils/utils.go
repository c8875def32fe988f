package utils

import (
	"strings"
	"unicode"
)

// Identifier maps an arbitrary key to a safe field name. The empty string
// becomes "_", a leading digit is prefixed with "_", and every ASCII
// punctuation, symbol or whitespace character is replaced with "_".
// Everything else, including non-ASCII runes, passes through unchanged.
//
// The function is total: any input produces a usable field name.
func Identifier(name string) string {
	if name == "" {
		return "_"
	}

	var b strings.Builder
	b.Grow(len(name) + 1)

	for i, r := range name {
		if i == 0 && unicode.IsDigit(r) {
			b.WriteByte('_')
		}

		if mangled(r) {
			b.WriteByte('_')
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// mangled reports whether r is replaced with an underscore. Symbols count
// as punctuation here, so the full ASCII punctuation range is covered.
func mangled(r rune) bool {
	if r > unicode.MaxASCII {
		return false
	}

	return unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r)
}
