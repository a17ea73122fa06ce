package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "IntegerLiteral", KindIntegerLiteral.String())
	require.Equal(t, "Kind(?)", Kind(999).String())
}

func TestKindIsLiteral(t *testing.T) {
	require.True(t, KindFloatLiteral.IsLiteral())
	require.True(t, KindRawCStringLiteral.IsLiteral())
	require.False(t, KindPunctuation.IsLiteral())
	require.False(t, KindComment.IsLiteral())
}

func TestIsKeyword(t *testing.T) {
	require.True(t, IsKeyword("fn"))
	require.True(t, IsKeyword("async"))
	require.True(t, IsKeyword("yield")) // reserved, not strict
	require.False(t, IsKeyword("foo"))
}

func TestPunctKindString(t *testing.T) {
	require.Equal(t, "DoubleColon", DoubleColon.String())
	require.Equal(t, "PunctKind(?)", PunctKind(-1).String())
}

func TestReservedKindString(t *testing.T) {
	require.Equal(t, "ReservedGuardedString", ReservedGuardedString.String())
}

func TestTokenInterfaceSatisfied(t *testing.T) {
	var toks = []Token{
		Comment{Lex: "// hi"},
		Reserved{Lex: "##", Form: ReservedPounds},
		RawIdentifier{Lex: "r#fn", Name: "fn"},
		Identifier{Lex: "foo", Name: "foo"},
		CharLiteral{Lex: "'a'", Value: 'a'},
		StringLiteral{Lex: `"hi"`, Value: "hi"},
		IntegerLiteral{Lex: "0xFF", Base: Hex, Digits: "FF"},
		FloatLiteral{Lex: "3.0", Whole: "3", Fraction: "0", HasFraction: true},
		Lifetime{Lex: "'a", Name: "a"},
		Punctuation{Lex: "::", Op: DoubleColon},
	}
	for _, tok := range toks {
		require.NotEmpty(t, tok.Lexeme())
		require.NotEqual(t, "", tok.Kind().String())
	}
}
