// Package scanner implements the tokenizer's scanner combinators: one
// function per lexical construct, each following the shared contract
// in Attempt — cursor in, (value, advanced cursor, matched) out — and
// the ordered dispatcher that tries them in the sequence the grammar
// requires.
package scanner

import (
	"github.com/ikramp/langlex/cursor"
	"github.com/ikramp/langlex/token"
)

// Attempt is the contract every scanner in this package satisfies: a
// total function from a cursor to either a recognized value and the
// cursor advanced past it, or a miss that leaves the input cursor
// untouched. Composing Attempts (trying one, then another, on the
// same starting cursor) is how every higher-level construct in this
// package is built.
type Attempt[T any] func(c cursor.Cursor) (T, cursor.Cursor, bool)

// matchLiteral consumes the exact rune sequence s starting at c,
// returning ok=false (and the original cursor) if any rune differs or
// input runs out first.
func matchLiteral(c cursor.Cursor, s string) (cursor.Cursor, bool) {
	cur := c
	for _, want := range s {
		r, next, ok := cur.Next()
		if !ok || r != want {
			return c, false
		}
		cur = next
	}
	return cur, true
}

// DispatchToken tries every token-producing scanner in a fixed order,
// returning the first match. The
// ordering is semantically load-bearing: reserved forms must be tried
// before the shapes they shadow, float before integer, raw forms
// before their plain counterparts.
func DispatchToken(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	for _, attempt := range dispatchOrder {
		if tok, rest, ok := attempt(c); ok {
			return tok, rest, true
		}
	}
	return nil, c, false
}

var dispatchOrder = []func(cursor.Cursor) (token.Token, cursor.Cursor, bool){
	scanComment,
	scanReserved,
	scanRawIdentifier,
	scanCharLiteral,
	scanStringLiteral,
	scanRawStringLiteral,
	scanByteLiteral,
	scanByteStringLiteral,
	scanRawByteStringLiteral,
	scanCStringLiteral,
	scanRawCStringLiteral,
	scanFloatLiteral,
	scanIntegerLiteral,
	scanLifetime,
	scanPunctuation,
	scanIdentifierOrKeyword,
}
