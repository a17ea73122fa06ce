package token

// ReservedKind identifies which suspicious form the reserved-form
// scanner recognized.
type ReservedKind int

const (
	ReservedGuardedString ReservedKind = iota
	ReservedNumber
	ReservedPounds
	ReservedRawIdentifier
	ReservedRawLifetime
	ReservedDoubleQuote
	ReservedLifetime
	ReservedPound
	ReservedSingleQuote
)

var reservedNames = [...]string{
	ReservedGuardedString: "ReservedGuardedString",
	ReservedNumber:        "ReservedNumber",
	ReservedPounds:        "ReservedPounds",
	ReservedRawIdentifier: "ReservedRawIdentifier",
	ReservedRawLifetime:   "ReservedRawLifetime",
	ReservedDoubleQuote:   "ReservedDoubleQuote",
	ReservedLifetime:      "ReservedLifetime",
	ReservedPound:         "ReservedPound",
	ReservedSingleQuote:   "ReservedSingleQuote",
}

func (k ReservedKind) String() string {
	if int(k) < 0 || int(k) >= len(reservedNames) {
		return "ReservedKind(?)"
	}
	return reservedNames[k]
}

// Reserved is a recognized but illegal form; seeing one is always
// fatal to tokenization.
type Reserved struct {
	Lex  string
	Form ReservedKind
}

func (Reserved) Kind() Kind       { return KindReservedToken }
func (t Reserved) Lexeme() string { return t.Lex }
