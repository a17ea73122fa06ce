package scanner

import (
	"testing"

	"github.com/ikramp/langlex/cursor"
	"github.com/stretchr/testify/require"
)

func TestScanBlockCommentUnterminatedIsMiss(t *testing.T) {
	_, ok := scanBlockComment(cursor.New("/* no close"))
	require.False(t, ok)
}

func TestScanBlockCommentNesting(t *testing.T) {
	rest, ok := scanBlockComment(cursor.New("/* a /* b */ c */tail"))
	require.True(t, ok)
	require.Equal(t, "tail", rest.Remainder())
}

func TestScanLineCommentStopsAtNewline(t *testing.T) {
	rest, ok := scanLineComment(cursor.New("// line\nnext"))
	require.True(t, ok)
	require.Equal(t, "\nnext", rest.Remainder())
}
