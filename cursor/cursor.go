// Package cursor implements the tokenizer's rewindable source
// position: a cheap-to-clone view over a UTF-8 string that every
// scanner speculates over before committing to an advance.
package cursor

import "unicode/utf8"

// Cursor is a position within a UTF-8 source string. It is a plain
// value (a string header plus a byte offset), so copying one — the
// "clone" scanners speculate with — is O(1) and holds no separate
// allocation. Two copies of a Cursor advance completely independently
// of one another.
type Cursor struct {
	src string
	pos int
}

// New returns a Cursor positioned at the start of src.
func New(src string) Cursor {
	return Cursor{src: src, pos: 0}
}

// Peek returns the rune at the cursor's position without advancing.
// ok is false at end of input.
func (c Cursor) Peek() (r rune, ok bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(c.src[c.pos:])
	return r, true
}

// Next consumes the rune at the cursor's position and returns it
// along with a new Cursor advanced past it. c itself is left
// untouched — a scanner that wants to back out of a speculative
// advance simply stops using the returned Cursor.
func (c Cursor) Next() (r rune, rest Cursor, ok bool) {
	if c.pos >= len(c.src) {
		return 0, c, false
	}
	r, w := utf8.DecodeRuneInString(c.src[c.pos:])
	return r, Cursor{src: c.src, pos: c.pos + w}, true
}

// AtEOF reports whether the cursor has consumed the entire source.
func (c Cursor) AtEOF() bool { return c.pos >= len(c.src) }

// Offset returns the cursor's byte offset into the source.
func (c Cursor) Offset() int { return c.pos }

// Since returns the source text consumed between start and c. start
// and c must share the same underlying source, with start at or
// before c.
func (c Cursor) Since(start Cursor) string { return c.src[start.pos:c.pos] }

// Remainder returns the unconsumed tail of the source from c onward.
func (c Cursor) Remainder() string { return c.src[c.pos:] }
