package scanner

import "github.com/ikramp/langlex/cursor"

// scanByteEscape recognizes a `\`-led byte escape: n, r, t, \, 0, ',
// ", or xHH. Any other second character is a miss.
func scanByteEscape(c cursor.Cursor) (byte, cursor.Cursor, bool) {
	r, cur, ok := c.Next()
	if !ok || r != '\\' {
		return 0, c, false
	}
	r2, cur, ok := cur.Next()
	if !ok {
		return 0, c, false
	}
	switch r2 {
	case 'n':
		return 0x0A, cur, true
	case 'r':
		return 0x0D, cur, true
	case 't':
		return 0x09, cur, true
	case '\\':
		return 0x5C, cur, true
	case '0':
		return 0x00, cur, true
	case '\'':
		return 0x27, cur, true
	case '"':
		return 0x22, cur, true
	case 'x':
		h1, cur2, ok := scanHexDigit(cur)
		if !ok {
			return 0, c, false
		}
		h2, cur3, ok := scanHexDigit(cur2)
		if !ok {
			return 0, c, false
		}
		return byte(h1*16 + h2), cur3, true
	default:
		return 0, c, false
	}
}

func scanHexDigit(c cursor.Cursor) (int, cursor.Cursor, bool) {
	r, rest, ok := c.Next()
	if !ok {
		return 0, c, false
	}
	v, ok := hexVal(r)
	if !ok {
		return 0, c, false
	}
	return v, rest, true
}

// scanUnicodeEscape recognizes `\u{` then 1 to 6 hex digits (with `_`
// permitted and consumed between digits) then `}`. It rejects code
// points above 0x10FFFF. It does not itself reject surrogates or null
// — callers decide that based on what the escape must decode to (see
// unicodeEscapeToRune and unicodeEscapeToUTF8).
func scanUnicodeEscape(c cursor.Cursor) (uint32, cursor.Cursor, bool) {
	cur, ok := matchLiteral(c, `\u{`)
	if !ok {
		return 0, c, false
	}
	var cp uint32
	digits := 0
	for digits < 6 {
		p, has := cur.Peek()
		if !has {
			return 0, c, false
		}
		v, isHex := hexVal(p)
		if !isHex {
			break
		}
		_, cur, _ = cur.Next()
		cp = cp<<4 | uint32(v)
		digits++
		for {
			p2, has2 := cur.Peek()
			if !has2 || p2 != '_' {
				break
			}
			_, cur, _ = cur.Next()
		}
	}
	if digits == 0 {
		return 0, c, false
	}
	r, next, ok := cur.Next()
	if !ok || r != '}' {
		return 0, c, false
	}
	if cp > 0x10FFFF {
		return 0, c, false
	}
	return cp, next, true
}

// unicodeEscapeToRune converts a decoded code point to a rune,
// rejecting the surrogate range — required when the escape must yield
// a Unicode scalar (char literals, plain strings).
func unicodeEscapeToRune(cp uint32) (rune, bool) {
	if cp >= 0xD800 && cp < 0xE000 {
		return 0, false
	}
	return rune(cp), true
}

// unicodeEscapeToUTF8 encodes a code point as UTF-8 using the
// standard 1/2/3/4-byte scheme, with no surrogate check — used for
// byte-oriented consumers (C strings) that only reject a null value,
// not an invalid scalar.
func unicodeEscapeToUTF8(cp uint32) []byte {
	switch {
	case cp <= 0x7F:
		return []byte{byte(cp)}
	case cp <= 0x7FF:
		return []byte{byte(0xC0 | (cp >> 6)), byte(0x80 | (cp & 0x3F))}
	case cp <= 0xFFFF:
		return []byte{
			byte(0xE0 | (cp >> 12)),
			byte(0x80 | ((cp >> 6) & 0x3F)),
			byte(0x80 | (cp & 0x3F)),
		}
	default:
		return []byte{
			byte(0xF0 | (cp >> 18)),
			byte(0x80 | ((cp >> 12) & 0x3F)),
			byte(0x80 | ((cp >> 6) & 0x3F)),
			byte(0x80 | (cp & 0x3F)),
		}
	}
}
