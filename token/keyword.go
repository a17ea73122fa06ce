package token

// StrictKeywords holds the language's strict (always-reserved)
// keywords.
var StrictKeywords = map[string]bool{
	"_": true, "as": true, "async": true, "await": true, "break": true,
	"const": true, "continue": true, "crate": true, "dyn": true,
	"else": true, "enum": true, "extern": true, "false": true, "fn": true,
	"for": true, "if": true, "impl": true, "in": true, "let": true,
	"loop": true, "match": true, "mod": true, "move": true, "mut": true,
	"pub": true, "ref": true, "return": true, "self": true, "Self": true,
	"static": true, "struct": true, "super": true, "trait": true,
	"true": true, "type": true, "unsafe": true, "use": true,
	"where": true, "while": true,
}

// ReservedKeywords holds keywords reserved for future use.
var ReservedKeywords = map[string]bool{
	"abstract": true, "become": true, "box": true, "do": true,
	"final": true, "macro": true, "override": true, "priv": true,
	"typeof": true, "unsized": true, "virtual": true, "yield": true,
	"try": true, "gen": true,
}

// IsKeyword reports whether name is a strict or reserved keyword.
func IsKeyword(name string) bool {
	return StrictKeywords[name] || ReservedKeywords[name]
}

// ReservedRawNames is the set of identifiers that may never appear
// after a raw-identifier or raw-lifetime prefix.
var ReservedRawNames = []string{"_", "crate", "self", "Self", "super"}
