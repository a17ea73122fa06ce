package scanner

import (
	"testing"

	"github.com/ikramp/langlex/cursor"
	"github.com/ikramp/langlex/token"
	"github.com/stretchr/testify/require"
)

func TestScanIdentifierOrKeywordRawAcceptsUnderscoreStart(t *testing.T) {
	name, rest, ok := scanIdentifierOrKeywordRaw(cursor.New("_private rest"))
	require.True(t, ok)
	require.Equal(t, "_private", name)
	require.Equal(t, " rest", rest.Remainder())
}

func TestScanIdentifierOrKeywordRawAcceptsUnicodeXID(t *testing.T) {
	name, _, ok := scanIdentifierOrKeywordRaw(cursor.New("café"))
	require.True(t, ok)
	require.Equal(t, "café", name)
}

func TestScanRawIdentifierStripsPrefix(t *testing.T) {
	tok, _, ok := scanRawIdentifier(cursor.New("r#match"))
	require.True(t, ok)
	require.Equal(t, "match", tok.(token.RawIdentifier).Name)
}

func TestScanNonKeywordIdentifierRejectsKeyword(t *testing.T) {
	_, _, ok := ScanNonKeywordIdentifier(cursor.New("fn"))
	require.False(t, ok)
}
