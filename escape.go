package rolas

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EscapeLiteral prepares v for embedding between single quotes.
//
// Single quotes are doubled. Invalid UTF-8 and control characters (newlines,
// NUL, ...) are rejected with an *InvalidLiteralError.
func EscapeLiteral(v string) (string, error) {
	if !utf8.ValidString(v) {
		return "", &InvalidLiteralError{Value: v, Rune: utf8.RuneError}
	}
	for _, r := range v {
		if unicode.IsControl(r) {
			return "", &InvalidLiteralError{Value: v, Rune: r}
		}
	}
	return strings.ReplaceAll(v, "'", "''"), nil
}
