package token

// Identifier is the catch-all IdentifierOrKeyword bucket; keyword
// classification is deferred to the parser (see IsKeyword).
type Identifier struct {
	Lex  string
	Name string
}

func (Identifier) Kind() Kind       { return KindIdentifierOrKeyword }
func (t Identifier) Lexeme() string { return t.Lex }

// RawIdentifier is an `r#` raw identifier. Name excludes the `r#`
// prefix.
type RawIdentifier struct {
	Lex  string
	Name string
}

func (RawIdentifier) Kind() Kind       { return KindRawIdentifier }
func (t RawIdentifier) Lexeme() string { return t.Lex }

// Lifetime is a `'ident` or `'r#ident` lifetime/label token.
type Lifetime struct {
	Lex  string
	Name string
	Raw  bool
}

func (Lifetime) Kind() Kind       { return KindLifetimeToken }
func (t Lifetime) Lexeme() string { return t.Lex }

// Comment is either a line comment or a block comment.
type Comment struct {
	Lex   string
	Block bool
}

func (Comment) Kind() Kind       { return KindComment }
func (t Comment) Lexeme() string { return t.Lex }
