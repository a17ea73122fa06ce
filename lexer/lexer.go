// Package lexer drives the scanner package's dispatcher across an
// entire source buffer: stripping the BOM and an optional shebang
// line, skipping whitespace between tokens, and turning a reserved
// form or a dispatcher miss into a fatal, diagnosable error.
package lexer

import (
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ikramp/langlex/cursor"
	"github.com/ikramp/langlex/scanner"
	"github.com/ikramp/langlex/token"
)

// maxContext bounds how much trailing source a LexError echoes back
// as diagnostic context.
const maxContext = 1000

// LexError reports a fatal tokenization failure: either a recognized
// reserved form, or a dispatcher miss on non-exhausted input.
// TokenizeFile also returns one, with no Reserved form and a Context
// naming the problem, for a file that is not valid UTF-8.
type LexError struct {
	Origin   string
	Reserved *token.Reserved
	Context  string
}

func (e *LexError) Error() string {
	var b strings.Builder
	b.WriteString(e.Origin)
	b.WriteString(": ")
	if e.Reserved != nil {
		b.WriteString("reserved token ")
		b.WriteString(e.Reserved.Form.String())
		b.WriteString(" (")
		b.WriteString(e.Reserved.Lex)
		b.WriteString(")")
	} else {
		b.WriteString("no token matched")
	}
	if e.Context != "" {
		b.WriteString(" before: ")
		b.WriteString(e.Context)
	}
	return b.String()
}

func newContextError(origin string, reserved *token.Reserved, c cursor.Cursor) *LexError {
	rem := c.Remainder()
	if runes := []rune(rem); len(runes) > maxContext {
		rem = string(runes[:maxContext])
	}
	return &LexError{Origin: origin, Reserved: reserved, Context: rem}
}

// stripBOM removes a single leading UTF-8 byte-order mark.
func stripBOM(src string) string {
	return strings.TrimPrefix(src, "\uFEFF")
}

// stripShebang discards the entire first line when it opens with `#!`
// and, after trimming leading spaces and tabs from the text starting
// right after the `#!`, does not begin with `[` — which would mark an
// inner attribute (`#![...]`) rather than a shebang.
func stripShebang(src string) string {
	if !strings.HasPrefix(src, "#!") {
		return src
	}
	rest := src[2:]
	trimmed := strings.TrimLeft(rest, " \t")
	if strings.HasPrefix(trimmed, "[") {
		return src
	}
	if nl := strings.IndexByte(src, '\n'); nl >= 0 {
		return src[nl+1:]
	}
	return ""
}

func skipWhitespace(c cursor.Cursor) cursor.Cursor {
	cur := c
	for {
		r, has := cur.Peek()
		if !has || !unicode.IsSpace(r) {
			break
		}
		_, cur, _ = cur.Next()
	}
	return cur
}

// Tokenize scans source in full, returning every token produced in
// order. origin identifies the source for error reporting — typically
// a file path, or a synthetic name for in-memory input.
func Tokenize(source, origin string) ([]token.Token, error) {
	src := stripShebang(stripBOM(source))
	c := cursor.New(src)

	var tokens []token.Token
	for {
		c = skipWhitespace(c)
		if c.AtEOF() {
			return tokens, nil
		}
		tok, rest, ok := scanner.DispatchToken(c)
		if !ok {
			return nil, newContextError(origin, nil, c)
		}
		if reserved, isReserved := tok.(token.Reserved); isReserved {
			return nil, newContextError(origin, &reserved, c)
		}
		tokens = append(tokens, tok)
		c = rest
	}
}

// TokenizeFile reads path and tokenizes its contents, using path as
// the error-reporting origin.
func TokenizeFile(path string) ([]token.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, &LexError{Origin: path, Context: "input is not valid UTF-8"}
	}
	return Tokenize(string(data), path)
}
