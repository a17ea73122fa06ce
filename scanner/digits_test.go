package scanner

import (
	"testing"

	"github.com/ikramp/langlex/cursor"
	"github.com/stretchr/testify/require"
)

func TestScanDecDigitsSkipsUnderscores(t *testing.T) {
	digits, rest, ok := scanDecDigits(cursor.New("1_000_000x"))
	require.True(t, ok)
	require.Equal(t, "1000000", digits)
	require.Equal(t, "x", rest.Remainder())
}

func TestScanDecDigitsRejectsBareUnderscores(t *testing.T) {
	_, _, ok := scanDecDigits(cursor.New("___"))
	require.False(t, ok)
}

func TestScanHexIntBody(t *testing.T) {
	digits, rest, ok := scanHexIntBody(cursor.New("0xFF_ee"))
	require.True(t, ok)
	require.Equal(t, "FFee", digits)
	require.True(t, rest.AtEOF())
}

func TestScanBinIntBodyRejectsMissingDigits(t *testing.T) {
	_, _, ok := scanBinIntBody(cursor.New("0b"))
	require.False(t, ok)
}
