package scanner

import (
	"strings"

	"github.com/ikramp/langlex/cursor"
)

func hexVal(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

func isBinDigit(r rune) bool { return r == '0' || r == '1' }
func isOctDigit(r rune) bool { return r >= '0' && r <= '7' }
func isDecDigit(r rune) bool { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool { _, ok := hexVal(r); return ok }

// scanDigitsWhere accepts one or more digits matching pred, skipping
// any `_` interleaved in the run. An empty accumulation (no digits at
// all, underscores alone don't count) is a miss.
func scanDigitsWhere(c cursor.Cursor, pred func(rune) bool) (string, cursor.Cursor, bool) {
	var b strings.Builder
	cur := c
	for {
		r, ok := cur.Peek()
		if !ok {
			break
		}
		if r == '_' {
			_, cur, _ = cur.Next()
			continue
		}
		if !pred(r) {
			break
		}
		b.WriteRune(r)
		_, cur, _ = cur.Next()
	}
	if b.Len() == 0 {
		return "", c, false
	}
	return b.String(), cur, true
}

func scanBinDigits(c cursor.Cursor) (string, cursor.Cursor, bool) { return scanDigitsWhere(c, isBinDigit) }
func scanOctDigits(c cursor.Cursor) (string, cursor.Cursor, bool) { return scanDigitsWhere(c, isOctDigit) }
func scanDecDigits(c cursor.Cursor) (string, cursor.Cursor, bool) { return scanDigitsWhere(c, isDecDigit) }
func scanHexDigits(c cursor.Cursor) (string, cursor.Cursor, bool) { return scanDigitsWhere(c, isHexDigit) }

// scanBinIntBody, scanOctIntBody, scanHexIntBody recognize a base
// prefix ("0b"/"0o"/"0x") followed by a non-empty digit run of that
// base.
func scanBinIntBody(c cursor.Cursor) (string, cursor.Cursor, bool) {
	cur, ok := matchLiteral(c, "0b")
	if !ok {
		return "", c, false
	}
	digits, rest, ok := scanBinDigits(cur)
	if !ok {
		return "", c, false
	}
	return digits, rest, true
}

func scanOctIntBody(c cursor.Cursor) (string, cursor.Cursor, bool) {
	cur, ok := matchLiteral(c, "0o")
	if !ok {
		return "", c, false
	}
	digits, rest, ok := scanOctDigits(cur)
	if !ok {
		return "", c, false
	}
	return digits, rest, true
}

func scanHexIntBody(c cursor.Cursor) (string, cursor.Cursor, bool) {
	cur, ok := matchLiteral(c, "0x")
	if !ok {
		return "", c, false
	}
	digits, rest, ok := scanHexDigits(cur)
	if !ok {
		return "", c, false
	}
	return digits, rest, true
}
