package scanner

import (
	"strings"

	"github.com/ikramp/langlex/cursor"
)

// tryConsumeSuffix accepts an identifier-or-keyword suffix whose
// lexeme is not exactly "_". A miss leaves the cursor untouched and
// is not itself an error: the suffix is always optional.
func tryConsumeSuffix(c cursor.Cursor) (string, cursor.Cursor, bool) {
	name, rest, ok := scanIdentifierOrKeywordRaw(c)
	if !ok || name == "_" {
		return "", c, false
	}
	return name, rest, true
}

// tryConsumeSuffixNoE is tryConsumeSuffix but additionally rejects a
// lexeme beginning with `e` or `E`, so that e.g. `3.0e5` is free to
// parse as a float exponent rather than `3.0` plus a suffix `e5`.
func tryConsumeSuffixNoE(c cursor.Cursor) (string, cursor.Cursor, bool) {
	name, rest, ok := tryConsumeSuffix(c)
	if !ok {
		return "", c, false
	}
	if strings.HasPrefix(name, "e") || strings.HasPrefix(name, "E") {
		return "", c, false
	}
	return name, rest, true
}
