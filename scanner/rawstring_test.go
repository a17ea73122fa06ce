package scanner

import (
	"testing"

	"github.com/ikramp/langlex/cursor"
	"github.com/ikramp/langlex/token"
	"github.com/stretchr/testify/require"
)

func TestScanRawStringLiteralWithHashes(t *testing.T) {
	tok, rest, ok := scanRawStringLiteral(cursor.New(`r##"has "one" quote"## rest`))
	require.True(t, ok)
	s := tok.(token.RawStringLiteral)
	require.Equal(t, `has "one" quote`, s.Value)
	require.Equal(t, 2, s.HashCount)
	require.False(t, s.HasSuffix)
	require.Equal(t, " rest", rest.Remainder())
}

func TestScanRawStringLiteralHashInBodyWithSuffix(t *testing.T) {
	tok, rest, ok := scanRawStringLiteral(cursor.New(`r##"contains "# inside"##suffix`))
	require.True(t, ok)
	s := tok.(token.RawStringLiteral)
	require.Equal(t, `contains "# inside`, s.Value)
	require.Equal(t, "suffix", s.Suffix)
	require.True(t, rest.AtEOF())
}

func TestScanRawStringLiteralStopsAtFirstMatchingClose(t *testing.T) {
	tok, _, ok := scanRawStringLiteral(cursor.New(`r#"a"# b"#`))
	require.True(t, ok)
	require.Equal(t, `a`, tok.(token.RawStringLiteral).Value)
}

func TestScanRawStringLiteralLongerHashRunIsContent(t *testing.T) {
	tok, _, ok := scanRawStringLiteral(cursor.New(`r#"a"## b"#`))
	require.True(t, ok)
	require.Equal(t, `a"## b`, tok.(token.RawStringLiteral).Value)
}

func TestScanRawByteStringRejectsNonASCII(t *testing.T) {
	_, _, ok := scanRawByteStringLiteral(cursor.New(`br"café"`))
	require.False(t, ok)
}

func TestScanRawCStringRejectsEmbeddedNull(t *testing.T) {
	_, _, ok := scanRawCStringLiteral(cursor.New("cr\"\x00\""))
	require.False(t, ok)
}

func TestScanRawStringLiteralWithSuffix(t *testing.T) {
	tok, _, ok := scanRawStringLiteral(cursor.New(`r"abc"suffix`))
	require.True(t, ok)
	s := tok.(token.RawStringLiteral)
	require.Equal(t, "suffix", s.Suffix)
	require.True(t, s.HasSuffix)
}
