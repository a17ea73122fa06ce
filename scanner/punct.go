package scanner

import (
	"github.com/ikramp/langlex/cursor"
	"github.com/ikramp/langlex/token"
)

// punctTable pairs a literal spelling with its PunctKind. Longer
// spellings are listed before any shorter spelling they share a
// prefix with, since scanPunctuation tries them in order.
var punctTable = []struct {
	lex string
	op  token.PunctKind
}{
	{"<<=", token.DoubleLessEqual},
	{">>=", token.DoubleGreaterEqual},
	{"...", token.TripleDot},
	{"..=", token.DoubleDotEqual},
	{"&&", token.DoubleAnd},
	{"||", token.DoubleOr},
	{"==", token.DoubleEqual},
	{"!=", token.NotEqual},
	{"<=", token.LessEqual},
	{">=", token.GreaterEqual},
	{"<<", token.DoubleLess},
	{">>", token.DoubleGreater},
	{"+=", token.PlusEqual},
	{"-=", token.MinusEqual},
	{"*=", token.StarEqual},
	{"/=", token.SlashEqual},
	{"%=", token.PercentEqual},
	{"^=", token.CaretEqual},
	{"&=", token.SingleAndEqual},
	{"|=", token.SingleOrEqual},
	{"..", token.DoubleDot},
	{"::", token.DoubleColon},
	{"->", token.DashGreater},
	{"<-", token.LessDash},
	{"=>", token.EqualGreater},
	{"!", token.Bang},
	{"~", token.Tilde},
	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Star},
	{"/", token.Slash},
	{"%", token.Percent},
	{"^", token.Caret},
	{"&", token.SingleAnd},
	{"|", token.SingleOr},
	{"=", token.SingleEqual},
	{"<", token.Less},
	{">", token.Greater},
	{"@", token.At},
	{".", token.SingleDot},
	{",", token.Comma},
	{";", token.Semicolon},
	{":", token.Colon},
	{"#", token.Hash},
	{"$", token.Dollar},
	{"?", token.Question},
	{"{", token.LeftCurly},
	{"}", token.RightCurly},
	{"[", token.LeftSquare},
	{"]", token.RightSquare},
	{"(", token.LeftParen},
	{")", token.RightParen},
}

// scanPunctuation tries each entry of punctTable in order, so a
// multi-character operator is matched before any of its single-character
// prefixes would otherwise win.
func scanPunctuation(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	for _, entry := range punctTable {
		if rest, ok := matchLiteral(c, entry.lex); ok {
			return token.Punctuation{Lex: rest.Since(start), Op: entry.op}, rest, true
		}
	}
	return nil, c, false
}
