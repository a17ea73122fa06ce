package scanner

import (
	"github.com/ikramp/langlex/cursor"
	"github.com/ikramp/langlex/token"
)

// scanReserved tries every reserved-form detector in the fixed order
// below and wraps the first hit as a token.Reserved. A reserved form
// matching at all is fatal to tokenization further up the pipeline;
// the scanner's only job is recognizing the shape.
func scanReserved(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	for _, attempt := range reservedOrder {
		if rest, kind, ok := attempt(c); ok {
			return token.Reserved{Lex: rest.Since(start), Form: kind}, rest, true
		}
	}
	return nil, c, false
}

var reservedOrder = []func(cursor.Cursor) (cursor.Cursor, token.ReservedKind, bool){
	scanReservedGuardedString,
	scanReservedNumber,
	scanReservedPounds,
	scanReservedRawIdentifier,
	scanReservedRawLifetime,
	scanReservedDoubleQuote,
	scanReservedLifetime,
	scanReservedPound,
	scanReservedSingleQuote,
}

// scanReservedGuardedString recognizes `#` followed by zero or more
// further `#`, then a plain string literal — a guarded string missing
// its raw-string `r` prefix.
func scanReservedGuardedString(c cursor.Cursor) (cursor.Cursor, token.ReservedKind, bool) {
	r, cur, ok := c.Next()
	if !ok || r != '#' {
		return c, 0, false
	}
	for {
		p, has := cur.Peek()
		if !has || p != '#' {
			break
		}
		_, cur, _ = cur.Next()
	}
	if _, rest, ok := scanStringLiteral(cur); ok {
		return rest, token.ReservedGuardedString, true
	}
	return c, 0, false
}

func isFractionContinuation(r rune) bool {
	return r == '.' || r == '_' || isXIDStart(r)
}

// scanReservedNumber recognizes malformed numeric forms: a non-decimal
// integer literal immediately followed by a digit out of range for its
// base, a bin/oct/hex literal followed by a bare `.` that isn't itself
// the start of a range or method-call, a bin/oct literal immediately
// followed by `e`/`E` (exponents require decimal), a `0b`/`0o`/`0x`
// prefix with no valid digit following it, or a decimal literal with a
// malformed exponent.
func scanReservedNumber(c cursor.Cursor) (cursor.Cursor, token.ReservedKind, bool) {
	if _, after, ok := scanBinIntBody(c); ok {
		if r, _, got := after.Next(); got && r >= '2' && r <= '9' {
			return after, token.ReservedNumber, true
		}
	}
	if _, after, ok := scanOctIntBody(c); ok {
		if r, _, got := after.Next(); got && r >= '8' && r <= '9' {
			return after, token.ReservedNumber, true
		}
	}
	if _, after, ok := scanBinIntBody(c); ok {
		if r, next, got := after.Next(); got && r == '.' {
			p, has := next.Peek()
			if has && !isFractionContinuation(p) {
				return next, token.ReservedNumber, true
			}
		}
	}
	if _, after, ok := scanOctIntBody(c); ok {
		if r, next, got := after.Next(); got && r == '.' {
			p, has := next.Peek()
			if has && !isFractionContinuation(p) {
				return next, token.ReservedNumber, true
			}
		}
	}
	if _, after, ok := scanHexIntBody(c); ok {
		if r, next, got := after.Next(); got && r == '.' {
			p, has := next.Peek()
			if has && !isFractionContinuation(p) {
				return next, token.ReservedNumber, true
			}
		}
	}
	if _, after, ok := scanBinIntBody(c); ok {
		if r, next, got := after.Next(); got && (r == 'e' || r == 'E') {
			return next, token.ReservedNumber, true
		}
	}
	if _, after, ok := scanOctIntBody(c); ok {
		if r, next, got := after.Next(); got && (r == 'e' || r == 'E') {
			return next, token.ReservedNumber, true
		}
	}
	if rest, ok := scanMalformedBasePrefix(c); ok {
		return rest, token.ReservedNumber, true
	}
	if rest, ok := scanMalformedExponent(c); ok {
		return rest, token.ReservedNumber, true
	}
	return c, 0, false
}

func scanMalformedBasePrefix(c cursor.Cursor) (cursor.Cursor, bool) {
	r, cur, ok := c.Next()
	if !ok || r != '0' {
		return c, false
	}
	format, cur, ok := cur.Next()
	if !ok || (format != 'b' && format != 'o' && format != 'x') {
		return c, false
	}
	for {
		p, has := cur.Peek()
		if !has || p != '_' {
			break
		}
		_, cur, _ = cur.Next()
	}
	next, rest, got := cur.Next()
	if !got {
		return cur, true
	}
	switch format {
	case 'b':
		if !isBinDigit(next) {
			return rest, true
		}
	case 'o':
		if !isOctDigit(next) {
			return rest, true
		}
	case 'x':
		if !isHexDigit(next) {
			return rest, true
		}
	}
	return c, false
}

func scanMalformedExponent(c cursor.Cursor) (cursor.Cursor, bool) {
	_, cur, ok := scanDecDigits(c)
	if !ok {
		return c, false
	}
	if p, has := cur.Peek(); has && p == '.' {
		_, next, _ := cur.Next()
		_, afterFrac, ok := scanDecDigits(next)
		if !ok {
			return c, false
		}
		cur = afterFrac
	}
	r, next, got := cur.Next()
	if !got || (r != 'e' && r != 'E') {
		return c, false
	}
	cur = next
	if p, has := cur.Peek(); has && (p == '+' || p == '-') {
		_, cur, _ = cur.Next()
	}
	r2, rest, got := cur.Next()
	if !got {
		return cur, true
	}
	if !isDecDigit(r2) {
		return rest, true
	}
	return c, false
}

// scanReservedPounds recognizes `#` followed by one or more further
// `#`, with no trailing string literal — an over-hashed raw-string
// guard missing its `r`.
func scanReservedPounds(c cursor.Cursor) (cursor.Cursor, token.ReservedKind, bool) {
	r, cur, ok := c.Next()
	if !ok || r != '#' {
		return c, 0, false
	}
	p, has := cur.Peek()
	if !has || p != '#' {
		return c, 0, false
	}
	for {
		p, has := cur.Peek()
		if !has || p != '#' {
			break
		}
		_, cur, _ = cur.Next()
	}
	return cur, token.ReservedPounds, true
}

// reservedRawPrefixMatch consumes the first entry of
// token.ReservedRawNames found as a literal prefix of cur. There is
// no boundary check on what follows: `r#crate` matches inside
// `r#craterize` too.
func reservedRawPrefixMatch(cur cursor.Cursor) (cursor.Cursor, bool) {
	for _, name := range token.ReservedRawNames {
		if rest, ok := matchLiteral(cur, name); ok {
			return rest, true
		}
	}
	return cur, false
}

func scanReservedRawIdentifier(c cursor.Cursor) (cursor.Cursor, token.ReservedKind, bool) {
	cur, ok := matchLiteral(c, "r#")
	if !ok {
		return c, 0, false
	}
	rest, ok := reservedRawPrefixMatch(cur)
	if !ok {
		return c, 0, false
	}
	return rest, token.ReservedRawIdentifier, true
}

func scanReservedRawLifetime(c cursor.Cursor) (cursor.Cursor, token.ReservedKind, bool) {
	cur, ok := matchLiteral(c, "'r#")
	if !ok {
		return c, 0, false
	}
	rest, ok := reservedRawPrefixMatch(cur)
	if !ok {
		return c, 0, false
	}
	return rest, token.ReservedRawLifetime, true
}

// scanReservedDoubleQuote recognizes an identifier-or-keyword (other
// than b/c/r/br/cr, which legitimately prefix a literal) glued
// directly to a `"`.
func scanReservedDoubleQuote(c cursor.Cursor) (cursor.Cursor, token.ReservedKind, bool) {
	name, cur, ok := scanIdentifierOrKeywordRaw(c)
	if !ok || isLiteralPrefixName(name) {
		return c, 0, false
	}
	r, rest, got := cur.Next()
	if !got || r != '"' {
		return c, 0, false
	}
	return rest, token.ReservedDoubleQuote, true
}

// scanReservedLifetime recognizes `'` then an identifier-or-keyword
// other than `r` (the raw-lifetime prefix) glued directly to a `#`.
func scanReservedLifetime(c cursor.Cursor) (cursor.Cursor, token.ReservedKind, bool) {
	cur, ok := matchLiteral(c, "'")
	if !ok {
		return c, 0, false
	}
	name, cur, ok := scanIdentifierOrKeywordRaw(cur)
	if !ok || name == "r" {
		return c, 0, false
	}
	r, rest, got := cur.Next()
	if !got || r != '#' {
		return c, 0, false
	}
	return rest, token.ReservedLifetime, true
}

// scanReservedPound recognizes an identifier-or-keyword other than
// r/br/cr glued directly to a `#`.
func scanReservedPound(c cursor.Cursor) (cursor.Cursor, token.ReservedKind, bool) {
	name, cur, ok := scanIdentifierOrKeywordRaw(c)
	if !ok || isRawLiteralPrefixName(name) {
		return c, 0, false
	}
	r, rest, got := cur.Next()
	if !got || r != '#' {
		return c, 0, false
	}
	return rest, token.ReservedPound, true
}

// scanReservedSingleQuote recognizes an identifier-or-keyword other
// than `b` (the byte-literal prefix) glued directly to a `'`.
func scanReservedSingleQuote(c cursor.Cursor) (cursor.Cursor, token.ReservedKind, bool) {
	name, cur, ok := scanIdentifierOrKeywordRaw(c)
	if !ok || name == "b" {
		return c, 0, false
	}
	r, rest, got := cur.Next()
	if !got || r != '\'' {
		return c, 0, false
	}
	return rest, token.ReservedSingleQuote, true
}

func isLiteralPrefixName(name string) bool {
	switch name {
	case "b", "c", "r", "br", "cr":
		return true
	}
	return false
}

func isRawLiteralPrefixName(name string) bool {
	switch name {
	case "r", "br", "cr":
		return true
	}
	return false
}
