package scanner

import (
	"github.com/ikramp/langlex/cursor"
	"github.com/ikramp/langlex/token"
)

// scanRawLifetime recognizes `'r#` followed by an identifier-or-keyword.
// As with scanRawIdentifier, reserved raw names are intercepted earlier
// in dispatch order, so no filtering happens here.
func scanRawLifetime(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	cur, ok := matchLiteral(c, "'r#")
	if !ok {
		return nil, c, false
	}
	name, rest, ok := scanIdentifierOrKeywordRaw(cur)
	if !ok || followedByQuote(rest) {
		return nil, c, false
	}
	return token.Lifetime{Lex: rest.Since(start), Name: name, Raw: true}, rest, true
}

// scanLifetime recognizes `'` followed by an identifier-or-keyword. The
// raw form is tried first since it is strictly longer. A trailing `'`
// right after the identifier rejects the match: the input is a
// character literal shape, not a lifetime.
func scanLifetime(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	if tok, rest, ok := scanRawLifetime(c); ok {
		return tok, rest, true
	}
	start := c
	cur, ok := matchLiteral(c, "'")
	if !ok {
		return nil, c, false
	}
	name, rest, ok := scanIdentifierOrKeywordRaw(cur)
	if !ok || followedByQuote(rest) {
		return nil, c, false
	}
	return token.Lifetime{Lex: rest.Since(start), Name: name}, rest, true
}

func followedByQuote(c cursor.Cursor) bool {
	r, ok := c.Peek()
	return ok && r == '\''
}

// ScanLifetimeOrLabel is scanLifetime with the regular (non-raw) form
// restricted to non-keyword names, the shape a loop label or generic
// lifetime parameter actually needs.
func ScanLifetimeOrLabel(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	tok, rest, ok := scanLifetime(c)
	if !ok {
		return nil, c, false
	}
	lt := tok.(token.Lifetime)
	if !lt.Raw && token.IsKeyword(lt.Name) {
		return nil, c, false
	}
	return tok, rest, true
}
