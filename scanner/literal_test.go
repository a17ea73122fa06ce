package scanner

import (
	"testing"

	"github.com/ikramp/langlex/cursor"
	"github.com/ikramp/langlex/token"
	"github.com/stretchr/testify/require"
)

func TestScanCharLiteralSimple(t *testing.T) {
	tok, rest, ok := scanCharLiteral(cursor.New("'a' rest"))
	require.True(t, ok)
	c := tok.(token.CharLiteral)
	require.Equal(t, 'a', c.Value)
	require.False(t, c.HasSuffix)
	require.Equal(t, " rest", rest.Remainder())
}

func TestScanCharLiteralConsumesGluedSuffix(t *testing.T) {
	tok, rest, ok := scanCharLiteral(cursor.New("'a'u8"))
	require.True(t, ok)
	c := tok.(token.CharLiteral)
	require.Equal(t, "u8", c.Suffix)
	require.True(t, rest.AtEOF())
}

func TestScanCharLiteralEscape(t *testing.T) {
	tok, _, ok := scanCharLiteral(cursor.New(`'\n'`))
	require.True(t, ok)
	require.Equal(t, '\n', tok.(token.CharLiteral).Value)
}

func TestScanCharLiteralUnicodeEscape(t *testing.T) {
	tok, _, ok := scanCharLiteral(cursor.New(`'\u{1F600}'`))
	require.True(t, ok)
	require.Equal(t, rune(0x1F600), tok.(token.CharLiteral).Value)
}

func TestScanCharLiteralRejectsBareTab(t *testing.T) {
	_, _, ok := scanCharLiteral(cursor.New("'\t'"))
	require.False(t, ok)
}

func TestScanByteLiteral(t *testing.T) {
	tok, rest, ok := scanByteLiteral(cursor.New(`b'\xff';rest`))
	require.True(t, ok)
	require.Equal(t, byte(0xFF), tok.(token.ByteLiteral).Value)
	require.Equal(t, ";rest", rest.Remainder())
}

func TestScanByteLiteralRejectsZeroEscape(t *testing.T) {
	_, _, ok := scanByteLiteral(cursor.New(`b'\0'`))
	require.False(t, ok)
}

func TestScanStringLiteralWithEscapesAndContinuation(t *testing.T) {
	tok, _, ok := scanStringLiteral(cursor.New("\"a\\\n   b\""))
	require.True(t, ok)
	require.Equal(t, "ab", tok.(token.StringLiteral).Value)
}

func TestScanStringLiteralRejectsBareCR(t *testing.T) {
	_, _, ok := scanStringLiteral(cursor.New("\"a\rb\""))
	require.False(t, ok)
}

func TestScanByteStringLiteralPermitsNull(t *testing.T) {
	tok, _, ok := scanByteStringLiteral(cursor.New(`b"\0"`))
	require.True(t, ok)
	require.Equal(t, []byte{0}, tok.(token.ByteStringLiteral).Value)
}

func TestScanCStringLiteralRejectsNull(t *testing.T) {
	_, _, ok := scanCStringLiteral(cursor.New(`c"\0"`))
	require.False(t, ok)
}

func TestScanCStringLiteralAllowsUnicodeEscape(t *testing.T) {
	tok, _, ok := scanCStringLiteral(cursor.New(`c"caf\u{e9}"`))
	require.True(t, ok)
	require.Equal(t, []byte("café"), tok.(token.CStringLiteral).Value)
}
