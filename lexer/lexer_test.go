package lexer

import (
	"testing"

	"github.com/ikramp/langlex/token"
	"github.com/stretchr/testify/require"
)

func TestTokenizeSkipsWhitespace(t *testing.T) {
	toks, err := Tokenize("  fn   foo \n", "test")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	require.Equal(t, "fn", toks[0].(token.Identifier).Name)
	require.Equal(t, "foo", toks[1].(token.Identifier).Name)
}

func TestTokenizeStripsBOM(t *testing.T) {
	toks, err := Tokenize("\uFEFFfn", "test")
	require.NoError(t, err)
	require.Len(t, toks, 1)
}

func TestTokenizeStripsShebang(t *testing.T) {
	toks, err := Tokenize("#!/usr/bin/env langrun\nfn main() {}", "test")
	require.NoError(t, err)
	require.Equal(t, "fn", toks[0].(token.Identifier).Name)
}

func TestTokenizePreservesInnerAttribute(t *testing.T) {
	toks, err := Tokenize("#![allow(dead_code)]", "test")
	require.NoError(t, err)
	require.Equal(t, token.Hash, toks[0].(token.Punctuation).Op)
}

func TestTokenizeReservedFormIsFatal(t *testing.T) {
	_, err := Tokenize("0b2", "test")
	require.Error(t, err)
	lexErr, ok := err.(*LexError)
	require.True(t, ok)
	require.NotNil(t, lexErr.Reserved)
	require.Equal(t, token.ReservedNumber, lexErr.Reserved.Form)
}

func TestTokenizeDispatcherMissIsFatal(t *testing.T) {
	_, err := Tokenize("\x01", "test")
	require.Error(t, err)
	lexErr, ok := err.(*LexError)
	require.True(t, ok)
	require.Nil(t, lexErr.Reserved)
}

func TestTokenizeEmptyInput(t *testing.T) {
	toks, err := Tokenize("", "test")
	require.NoError(t, err)
	require.Empty(t, toks)
}

func TestTokenizeStatementSequence(t *testing.T) {
	toks, err := Tokenize("fn main() { let x: i32 = 0xFF_u8 as i32; }", "test")
	require.NoError(t, err)
	require.Len(t, toks, 15)

	require.Equal(t, "fn", toks[0].(token.Identifier).Name)
	require.Equal(t, "main", toks[1].(token.Identifier).Name)
	require.Equal(t, token.LeftParen, toks[2].(token.Punctuation).Op)
	require.Equal(t, token.RightParen, toks[3].(token.Punctuation).Op)
	require.Equal(t, token.LeftCurly, toks[4].(token.Punctuation).Op)
	require.Equal(t, "let", toks[5].(token.Identifier).Name)
	require.Equal(t, "x", toks[6].(token.Identifier).Name)
	require.Equal(t, token.Colon, toks[7].(token.Punctuation).Op)
	require.Equal(t, "i32", toks[8].(token.Identifier).Name)
	require.Equal(t, token.SingleEqual, toks[9].(token.Punctuation).Op)

	lit := toks[10].(token.IntegerLiteral)
	require.Equal(t, token.Hex, lit.Base)
	require.Equal(t, "FF", lit.Digits)
	require.Equal(t, "u8", lit.Suffix)

	require.Equal(t, "as", toks[11].(token.Identifier).Name)
	require.Equal(t, "i32", toks[12].(token.Identifier).Name)
	require.Equal(t, token.Semicolon, toks[13].(token.Punctuation).Op)
	require.Equal(t, token.RightCurly, toks[14].(token.Punctuation).Op)
}

func TestTokenizeStringContinuation(t *testing.T) {
	toks, err := Tokenize("\"hello\\n\\\n        world\"", "test")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	require.Equal(t, "hello\nworld", toks[0].(token.StringLiteral).Value)
}

func TestTokenizeFloatTrailingDot(t *testing.T) {
	toks, err := Tokenize("3.", "test")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	require.Equal(t, "3", toks[0].(token.FloatLiteral).Whole)
}

func TestTokenizeDotMethodCallOnInteger(t *testing.T) {
	toks, err := Tokenize("3.foo", "test")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	require.Equal(t, "3", toks[0].(token.IntegerLiteral).Digits)
	require.Equal(t, token.SingleDot, toks[1].(token.Punctuation).Op)
	require.Equal(t, "foo", toks[2].(token.Identifier).Name)
}

func TestTokenizeRangeBetweenIntegers(t *testing.T) {
	toks, err := Tokenize("3..5", "test")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	require.Equal(t, token.DoubleDot, toks[1].(token.Punctuation).Op)
}

func TestTokenizeGuardedStringIsFatal(t *testing.T) {
	_, err := Tokenize(`##"x"`, "test")
	require.Error(t, err)
	lexErr := err.(*LexError)
	require.NotNil(t, lexErr.Reserved)
	require.Equal(t, token.ReservedGuardedString, lexErr.Reserved.Form)
}

func TestTokenizeEveryTokenHasLexeme(t *testing.T) {
	src := `fn main() { let x: &'static str = "hi"; }`
	toks, err := Tokenize(src, "test")
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	for _, tok := range toks {
		require.NotEmpty(t, tok.Lexeme())
	}
}
