package scanner

import (
	"github.com/ikramp/langlex/cursor"
	"github.com/ikramp/langlex/token"
)

// scanCharLiteral recognizes `'…'`: a byte escape under 0x80, a
// Unicode escape decoding to a non-null scalar, or a single
// non-escape ASCII character outside \r \n \t '.
func scanCharLiteral(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	r, cur, ok := c.Next()
	if !ok || r != '\'' {
		return nil, c, false
	}

	var value rune
	if p, has := cur.Peek(); has && p == '\\' {
		if b, rest, ok := scanByteEscape(cur); ok {
			if b >= 0x80 {
				return nil, c, false
			}
			value, cur = rune(b), rest
		} else if cp, rest, ok := scanUnicodeEscape(cur); ok {
			sc, valid := unicodeEscapeToRune(cp)
			if !valid || cp == 0 {
				return nil, c, false
			}
			value, cur = sc, rest
		} else {
			return nil, c, false
		}
	} else {
		r2, next, ok := cur.Next()
		if !ok || r2 > 0x7F || r2 == '\r' || r2 == '\n' || r2 == '\t' || r2 == '\'' {
			return nil, c, false
		}
		value, cur = r2, next
	}

	r3, cur, ok := cur.Next()
	if !ok || r3 != '\'' {
		return nil, c, false
	}

	suffix, cur, hasSuffix := tryConsumeSuffix(cur)
	return token.CharLiteral{Lex: cur.Since(start), Value: value, Suffix: suffix, HasSuffix: hasSuffix}, cur, true
}

// scanByteLiteral recognizes `b'…'`: a byte escape with a non-zero
// value, or a single non-escape ASCII character outside \r \n \t '.
func scanByteLiteral(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	cur, ok := matchLiteral(c, "b'")
	if !ok {
		return nil, c, false
	}

	var value byte
	if p, has := cur.Peek(); has && p == '\\' {
		b, rest, ok := scanByteEscape(cur)
		if !ok || b == 0 {
			return nil, c, false
		}
		value, cur = b, rest
	} else {
		r, next, ok := cur.Next()
		if !ok || r > 0x7F || r == '\r' || r == '\n' || r == '\t' || r == '\'' {
			return nil, c, false
		}
		value, cur = byte(r), next
	}

	r2, cur, ok := cur.Next()
	if !ok || r2 != '\'' {
		return nil, c, false
	}

	suffix, cur, hasSuffix := tryConsumeSuffix(cur)
	return token.ByteLiteral{Lex: cur.Since(start), Value: value, Suffix: suffix, HasSuffix: hasSuffix}, cur, true
}
