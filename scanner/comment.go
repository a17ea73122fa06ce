package scanner

import (
	"github.com/ikramp/langlex/cursor"
	"github.com/ikramp/langlex/token"
)

// scanLineComment recognizes `//` through end of line (exclusive of
// the terminating newline, if any).
func scanLineComment(c cursor.Cursor) (cursor.Cursor, bool) {
	cur, ok := matchLiteral(c, "//")
	if !ok {
		return c, false
	}
	for {
		p, has := cur.Peek()
		if !has || p == '\n' {
			break
		}
		_, cur, _ = cur.Next()
	}
	return cur, true
}

// scanBlockComment recognizes `/*` ... `*/`, nesting on inner `/*`
// occurrences. An unterminated comment is a miss, leaving the input
// cursor untouched.
func scanBlockComment(c cursor.Cursor) (cursor.Cursor, bool) {
	cur, ok := matchLiteral(c, "/*")
	if !ok {
		return c, false
	}
	depth := 1
	for depth > 0 {
		if next, ok := matchLiteral(cur, "/*"); ok {
			depth++
			cur = next
			continue
		}
		if next, ok := matchLiteral(cur, "*/"); ok {
			depth--
			cur = next
			continue
		}
		_, next, has := cur.Next()
		if !has {
			return c, false
		}
		cur = next
	}
	return cur, true
}

func scanComment(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	if rest, ok := scanBlockComment(c); ok {
		return token.Comment{Lex: rest.Since(start), Block: true}, rest, true
	}
	if rest, ok := scanLineComment(c); ok {
		return token.Comment{Lex: rest.Since(start), Block: false}, rest, true
	}
	return nil, c, false
}
