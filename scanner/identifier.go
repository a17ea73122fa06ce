package scanner

import (
	"strings"
	"unicode"

	"github.com/ikramp/langlex/cursor"
	"github.com/ikramp/langlex/token"
)

// XID category tables, assembled per UAX #31: ID_Start is L*, Nl plus
// Other_ID_Start; ID_Continue adds Mn, Mc, Nd, Pc and
// Other_ID_Continue.
var xidStartTables = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
	unicode.Other_ID_Start,
}

var xidContinueTables = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
	unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
	unicode.Other_ID_Start, unicode.Other_ID_Continue,
}

func isXIDStart(r rune) bool    { return unicode.IsOneOf(xidStartTables, r) }
func isXIDContinue(r rune) bool { return unicode.IsOneOf(xidContinueTables, r) }

// scanIdentifierOrKeywordRaw accepts `_` or an XID-start character,
// followed by a run of XID-continue characters. It does not classify
// the result as keyword or not — callers that need NonKeywordIdentifier
// semantics check token.IsKeyword themselves.
func scanIdentifierOrKeywordRaw(c cursor.Cursor) (string, cursor.Cursor, bool) {
	r, rest, ok := c.Next()
	if !ok || (r != '_' && !isXIDStart(r)) {
		return "", c, false
	}
	var b strings.Builder
	b.WriteRune(r)
	cur := rest
	for {
		p, has := cur.Peek()
		if !has || !isXIDContinue(p) {
			break
		}
		b.WriteRune(p)
		_, cur, _ = cur.Next()
	}
	return b.String(), cur, true
}

func scanIdentifierOrKeyword(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	name, rest, ok := scanIdentifierOrKeywordRaw(c)
	if !ok {
		return nil, c, false
	}
	return token.Identifier{Lex: rest.Since(start), Name: name}, rest, true
}

// scanRawIdentifier recognizes `r#` followed by an identifier-or-keyword.
// It performs no reserved-name filtering of its own: the reserved-form
// suite runs earlier in dispatch order and intercepts the reserved raw
// names before this scanner is ever reached for them.
func scanRawIdentifier(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	cur, ok := matchLiteral(c, "r#")
	if !ok {
		return nil, c, false
	}
	name, rest, ok := scanIdentifierOrKeywordRaw(cur)
	if !ok {
		return nil, c, false
	}
	return token.RawIdentifier{Lex: rest.Since(start), Name: name}, rest, true
}

// ScanNonKeywordIdentifier is scanIdentifierOrKeywordRaw further
// filtered to reject any lexeme that is a keyword — the identifier
// flavor lifetimes and labels need.
func ScanNonKeywordIdentifier(c cursor.Cursor) (string, cursor.Cursor, bool) {
	name, rest, ok := scanIdentifierOrKeywordRaw(c)
	if !ok || token.IsKeyword(name) {
		return "", c, false
	}
	return name, rest, true
}
