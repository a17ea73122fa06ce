package token

// PunctKind enumerates the fixed operator/delimiter set. Names match
// the stable identifiers downstream parsers key off of.
type PunctKind int

const (
	Bang PunctKind = iota
	Tilde
	Plus
	Minus
	Star
	Slash
	Percent
	Caret
	SingleAnd
	SingleOr
	DoubleAnd
	DoubleOr
	SingleEqual
	DoubleEqual
	NotEqual
	Less
	Greater
	LessEqual
	GreaterEqual
	DoubleLess
	DoubleGreater
	PlusEqual
	MinusEqual
	StarEqual
	SlashEqual
	PercentEqual
	CaretEqual
	SingleAndEqual
	SingleOrEqual
	DoubleLessEqual
	DoubleGreaterEqual
	At
	SingleDot
	DoubleDot
	TripleDot
	DoubleDotEqual
	Comma
	Semicolon
	Colon
	DoubleColon
	DashGreater
	LessDash
	EqualGreater
	Hash
	Dollar
	Question
	LeftCurly
	RightCurly
	LeftSquare
	RightSquare
	LeftParen
	RightParen
)

var punctNames = [...]string{
	Bang: "Bang", Tilde: "Tilde", Plus: "Plus", Minus: "Minus", Star: "Star",
	Slash: "Slash", Percent: "Percent", Caret: "Caret", SingleAnd: "SingleAnd",
	SingleOr: "SingleOr", DoubleAnd: "DoubleAnd", DoubleOr: "DoubleOr",
	SingleEqual: "SingleEqual", DoubleEqual: "DoubleEqual", NotEqual: "NotEqual",
	Less: "Less", Greater: "Greater", LessEqual: "LessEqual", GreaterEqual: "GreaterEqual",
	DoubleLess: "DoubleLess", DoubleGreater: "DoubleGreater", PlusEqual: "PlusEqual",
	MinusEqual: "MinusEqual", StarEqual: "StarEqual", SlashEqual: "SlashEqual",
	PercentEqual: "PercentEqual", CaretEqual: "CaretEqual", SingleAndEqual: "SingleAndEqual",
	SingleOrEqual: "SingleOrEqual", DoubleLessEqual: "DoubleLessEqual",
	DoubleGreaterEqual: "DoubleGreaterEqual", At: "At", SingleDot: "SingleDot",
	DoubleDot: "DoubleDot", TripleDot: "TripleDot", DoubleDotEqual: "DoubleDotEqual",
	Comma: "Comma", Semicolon: "Semicolon", Colon: "Colon", DoubleColon: "DoubleColon",
	DashGreater: "DashGreater", LessDash: "LessDash", EqualGreater: "EqualGreater",
	Hash: "Hash", Dollar: "Dollar", Question: "Question", LeftCurly: "LeftCurly",
	RightCurly: "RightCurly", LeftSquare: "LeftSquare", RightSquare: "RightSquare",
	LeftParen: "LeftParen", RightParen: "RightParen",
}

func (k PunctKind) String() string {
	if int(k) < 0 || int(k) >= len(punctNames) {
		return "PunctKind(?)"
	}
	return punctNames[k]
}

// Punctuation is a single matched operator or delimiter.
type Punctuation struct {
	Lex string
	Op  PunctKind
}

func (Punctuation) Kind() Kind       { return KindPunctuation }
func (t Punctuation) Lexeme() string { return t.Lex }
