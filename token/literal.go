package token

// CharLiteral is a `'…'` character literal. Value is the decoded
// scalar.
type CharLiteral struct {
	Lex       string
	Value     rune
	Suffix    string
	HasSuffix bool
}

func (CharLiteral) Kind() Kind       { return KindCharLiteral }
func (t CharLiteral) Lexeme() string { return t.Lex }

// ByteLiteral is a `b'…'` byte literal.
type ByteLiteral struct {
	Lex       string
	Value     byte
	Suffix    string
	HasSuffix bool
}

func (ByteLiteral) Kind() Kind       { return KindByteLiteral }
func (t ByteLiteral) Lexeme() string { return t.Lex }

// StringLiteral is a `"…"` string literal with a decoded UTF-8 value.
type StringLiteral struct {
	Lex       string
	Value     string
	Suffix    string
	HasSuffix bool
}

func (StringLiteral) Kind() Kind       { return KindStringLiteral }
func (t StringLiteral) Lexeme() string { return t.Lex }

// ByteStringLiteral is a `b"…"` byte-string literal. Its source text
// is ASCII; Value holds the decoded bytes, where a `\xHH` escape may
// yield any byte value.
type ByteStringLiteral struct {
	Lex       string
	Value     []byte
	Suffix    string
	HasSuffix bool
}

func (ByteStringLiteral) Kind() Kind       { return KindByteStringLiteral }
func (t ByteStringLiteral) Lexeme() string { return t.Lex }

// CStringLiteral is a `c"…"` C-string literal; Value is the decoded
// bytes (UTF-8 text, plus the raw byte of any `\xHH` escape) and never
// contains a 0 byte.
type CStringLiteral struct {
	Lex       string
	Value     []byte
	Suffix    string
	HasSuffix bool
}

func (CStringLiteral) Kind() Kind       { return KindCStringLiteral }
func (t CStringLiteral) Lexeme() string { return t.Lex }

// RawStringLiteral is a raw `r#…#"…"#…#` string; no escape processing
// occurs in its body. HashCount is the number of `#` in the matched
// delimiter run.
type RawStringLiteral struct {
	Lex       string
	Value     string
	HashCount int
	Suffix    string
	HasSuffix bool
}

func (RawStringLiteral) Kind() Kind       { return KindRawStringLiteral }
func (t RawStringLiteral) Lexeme() string { return t.Lex }

// RawByteStringLiteral is the `br…` raw byte-string form.
type RawByteStringLiteral struct {
	Lex       string
	Value     []byte
	HashCount int
	Suffix    string
	HasSuffix bool
}

func (RawByteStringLiteral) Kind() Kind       { return KindRawByteStringLiteral }
func (t RawByteStringLiteral) Lexeme() string { return t.Lex }

// RawCStringLiteral is the `cr…` raw C-string form; Value never
// contains a 0 byte.
type RawCStringLiteral struct {
	Lex       string
	Value     []byte
	HashCount int
	Suffix    string
	HasSuffix bool
}

func (RawCStringLiteral) Kind() Kind       { return KindRawCStringLiteral }
func (t RawCStringLiteral) Lexeme() string { return t.Lex }
