package scanner

import (
	"unicode/utf8"

	"github.com/ikramp/langlex/cursor"
	"github.com/ikramp/langlex/token"
)

// skipContinuationWhitespace consumes the run of space/tab/LF/CR
// immediately following a string continuation's line feed.
func skipContinuationWhitespace(c cursor.Cursor) cursor.Cursor {
	cur := c
	for {
		p, has := cur.Peek()
		if !has || !(p == ' ' || p == '\t' || p == '\n' || p == '\r') {
			break
		}
		_, cur, _ = cur.Next()
	}
	return cur
}

// scanStringContinuation recognizes a `\` immediately followed by a
// line feed, and swallows the trailing whitespace run.
func scanStringContinuation(c cursor.Cursor) (cursor.Cursor, bool) {
	r, cur, ok := c.Next()
	if !ok || r != '\\' {
		return c, false
	}
	r2, cur, ok := cur.Next()
	if !ok || r2 != '\n' {
		return c, false
	}
	return skipContinuationWhitespace(cur), true
}

func scanStringLiteral(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	r, cur, ok := c.Next()
	if !ok || r != '"' {
		return nil, c, false
	}
	var content []byte
	for {
		p, has := cur.Peek()
		if !has {
			return nil, c, false
		}
		if p == '\\' {
			if bv, rest, ok := scanByteEscape(cur); ok {
				if bv >= 0x80 {
					return nil, c, false
				}
				content = append(content, bv)
				cur = rest
				continue
			}
			if cp, rest, ok := scanUnicodeEscape(cur); ok {
				sc, valid := unicodeEscapeToRune(cp)
				if !valid {
					return nil, c, false
				}
				content = utf8.AppendRune(content, sc)
				cur = rest
				continue
			}
			if rest, ok := scanStringContinuation(cur); ok {
				cur = rest
				continue
			}
			return nil, c, false
		}
		r2, next, _ := cur.Next()
		if r2 == '\r' || r2 == 0 {
			return nil, c, false
		}
		if r2 == '"' {
			suffix, final, hasSuffix := tryConsumeSuffix(next)
			if !hasSuffix {
				final = next
			}
			return token.StringLiteral{Lex: final.Since(start), Value: string(content), Suffix: suffix, HasSuffix: hasSuffix}, final, true
		}
		content = utf8.AppendRune(content, r2)
		cur = next
	}
}

// scanByteStringLiteral recognizes `b"…"`. A decoded value of 0 is
// permitted here: NUL is a legal byte in a byte string, unlike in the
// char, byte, and C-string forms.
func scanByteStringLiteral(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	cur, ok := matchLiteral(c, `b"`)
	if !ok {
		return nil, c, false
	}
	var content []byte
	for {
		p, has := cur.Peek()
		if !has {
			return nil, c, false
		}
		if p == '\\' {
			if bv, rest, ok := scanByteEscape(cur); ok {
				content = append(content, bv)
				cur = rest
				continue
			}
			if rest, ok := scanStringContinuation(cur); ok {
				cur = rest
				continue
			}
			return nil, c, false
		}
		r2, next, _ := cur.Next()
		if r2 == '\r' {
			return nil, c, false
		}
		if r2 == '"' {
			suffix, final, hasSuffix := tryConsumeSuffix(next)
			if !hasSuffix {
				final = next
			}
			return token.ByteStringLiteral{Lex: final.Since(start), Value: content, Suffix: suffix, HasSuffix: hasSuffix}, final, true
		}
		if r2 > 0x7F {
			return nil, c, false
		}
		content = append(content, byte(r2))
		cur = next
	}
}

// scanCStringLiteral recognizes `c"…"`. Both escape kinds are allowed
// but a decoded 0 (escaped or literal) is always rejected.
func scanCStringLiteral(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	cur, ok := matchLiteral(c, `c"`)
	if !ok {
		return nil, c, false
	}
	var content []byte
	for {
		p, has := cur.Peek()
		if !has {
			return nil, c, false
		}
		if p == '\\' {
			if bv, rest, ok := scanByteEscape(cur); ok {
				if bv == 0 {
					return nil, c, false
				}
				content = append(content, bv)
				cur = rest
				continue
			}
			if cp, rest, ok := scanUnicodeEscape(cur); ok {
				if cp == 0 {
					return nil, c, false
				}
				content = append(content, unicodeEscapeToUTF8(cp)...)
				cur = rest
				continue
			}
			if rest, ok := scanStringContinuation(cur); ok {
				cur = rest
				continue
			}
			return nil, c, false
		}
		r2, next, _ := cur.Next()
		if r2 == '\r' || r2 == 0 {
			return nil, c, false
		}
		if r2 == '"' {
			suffix, final, hasSuffix := tryConsumeSuffix(next)
			if !hasSuffix {
				final = next
			}
			return token.CStringLiteral{Lex: final.Since(start), Value: content, Suffix: suffix, HasSuffix: hasSuffix}, final, true
		}
		content = utf8.AppendRune(content, r2)
		cur = next
	}
}
