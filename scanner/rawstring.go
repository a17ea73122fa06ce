package scanner

import (
	"unicode/utf8"

	"github.com/ikramp/langlex/cursor"
	"github.com/ikramp/langlex/token"
)

// scanHashRun consumes consecutive `#` characters, returning the
// count consumed. A negative limit means unbounded.
func scanHashRun(c cursor.Cursor, limit int) (int, cursor.Cursor) {
	cur := c
	n := 0
	for limit < 0 || n < limit {
		p, has := cur.Peek()
		if !has || p != '#' {
			break
		}
		_, cur, _ = cur.Next()
		n++
	}
	return n, cur
}

// scanRawLiteralBody implements the shared raw-string grammar: prefix,
// then 0-255 `#`, then `"`, then content up to the first `"` followed
// by exactly that many `#`. A `"` not followed by a matching run is
// ordinary content, not a terminator — the scan continues past it.
func scanRawLiteralBody(c cursor.Cursor, prefix string, asciiOnly bool) (content []byte, hashCount int, suffix string, hasSuffix bool, rest cursor.Cursor, ok bool) {
	cur, matched := matchLiteral(c, prefix)
	if !matched {
		return nil, 0, "", false, c, false
	}
	hashes, cur := scanHashRun(cur, 256)
	if hashes >= 256 {
		return nil, 0, "", false, c, false
	}
	r, cur, got := cur.Next()
	if !got || r != '"' {
		return nil, 0, "", false, c, false
	}

	push := func(buf []byte, r rune) ([]byte, bool) {
		if asciiOnly {
			if r > 0x7F {
				return buf, false
			}
			return append(buf, byte(r)), true
		}
		return utf8.AppendRune(buf, r), true
	}

	for {
		r2, next, got := cur.Next()
		if !got {
			return nil, 0, "", false, c, false
		}
		if r2 == '\r' {
			return nil, 0, "", false, c, false
		}
		if r2 == '"' {
			// The whole run after the quote must equal the opening
			// count; a longer run is ordinary content.
			closeHashes, afterHashes := scanHashRun(next, -1)
			if closeHashes == hashes {
				s, final, hasS := tryConsumeSuffix(afterHashes)
				if !hasS {
					s, final = "", afterHashes
				}
				return content, hashes, s, hasS, final, true
			}
			buf, pushOK := push(content, r2)
			if !pushOK {
				return nil, 0, "", false, c, false
			}
			content, cur = buf, next
			continue
		}
		buf, pushOK := push(content, r2)
		if !pushOK {
			return nil, 0, "", false, c, false
		}
		content, cur = buf, next
	}
}

func scanRawStringLiteral(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	content, hashes, suffix, hasSuffix, rest, ok := scanRawLiteralBody(c, "r", false)
	if !ok {
		return nil, c, false
	}
	return token.RawStringLiteral{
		Lex: rest.Since(start), Value: string(content), HashCount: hashes,
		Suffix: suffix, HasSuffix: hasSuffix,
	}, rest, true
}

func scanRawByteStringLiteral(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	content, hashes, suffix, hasSuffix, rest, ok := scanRawLiteralBody(c, "br", true)
	if !ok {
		return nil, c, false
	}
	return token.RawByteStringLiteral{
		Lex: rest.Since(start), Value: content, HashCount: hashes,
		Suffix: suffix, HasSuffix: hasSuffix,
	}, rest, true
}

func scanRawCStringLiteral(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	content, hashes, suffix, hasSuffix, rest, ok := scanRawLiteralBody(c, "cr", false)
	if !ok {
		return nil, c, false
	}
	for _, b := range content {
		if b == 0 {
			return nil, c, false
		}
	}
	return token.RawCStringLiteral{
		Lex: rest.Since(start), Value: content, HashCount: hashes,
		Suffix: suffix, HasSuffix: hasSuffix,
	}, rest, true
}
