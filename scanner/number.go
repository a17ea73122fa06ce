package scanner

import (
	"github.com/ikramp/langlex/cursor"
	"github.com/ikramp/langlex/token"
)

// scanIntegerLiteral tries binary, octal, hex, then decimal, in that
// order, each followed by an optional SuffixNoE.
func scanIntegerLiteral(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	if digits, rest, ok := scanBinIntBody(c); ok {
		return finishInteger(start, rest, token.Binary, digits)
	}
	if digits, rest, ok := scanOctIntBody(c); ok {
		return finishInteger(start, rest, token.Octal, digits)
	}
	if digits, rest, ok := scanHexIntBody(c); ok {
		return finishInteger(start, rest, token.Hex, digits)
	}
	if digits, rest, ok := scanDecDigits(c); ok {
		return finishInteger(start, rest, token.Decimal, digits)
	}
	return nil, c, false
}

func finishInteger(start, afterDigits cursor.Cursor, base token.IntBase, digits string) (token.Token, cursor.Cursor, bool) {
	suffix, rest, hasSuffix := tryConsumeSuffixNoE(afterDigits)
	if !hasSuffix {
		rest = afterDigits
	}
	tok := token.IntegerLiteral{
		Lex: rest.Since(start), Base: base, Digits: digits,
		Suffix: suffix, HasSuffix: hasSuffix,
	}
	return tok, rest, true
}

// scanFloatLiteral requires a decimal whole part, then tries Form C
// (exponent), Form B (fraction without exponent), Form A (bare
// trailing dot), in that order.
func scanFloatLiteral(c cursor.Cursor) (token.Token, cursor.Cursor, bool) {
	start := c
	whole, afterWhole, ok := scanDecDigits(c)
	if !ok {
		return nil, c, false
	}
	if tok, rest, ok := scanFloatFormC(start, afterWhole, whole); ok {
		return tok, rest, true
	}
	if tok, rest, ok := scanFloatFormB(start, afterWhole, whole); ok {
		return tok, rest, true
	}
	if rest, ok := scanFloatFormA(afterWhole); ok {
		return token.FloatLiteral{Lex: rest.Since(start), Whole: whole}, rest, true
	}
	return nil, c, false
}

func scanFloatFormC(start, afterWhole cursor.Cursor, whole string) (token.Token, cursor.Cursor, bool) {
	cur := afterWhole
	var frac string
	hasFrac := false
	if r, ok := cur.Peek(); ok && r == '.' {
		_, next, _ := cur.Next()
		cur = next
		if f, rest, ok := scanDecDigits(next); ok {
			frac, hasFrac, cur = f, true, rest
		}
	}
	expDigits, expSign, rest, ok := scanExponentPart(cur)
	if !ok {
		return nil, start, false
	}
	cur = rest
	suffix, cur2, hasSuffix := tryConsumeSuffix(cur)
	if !hasSuffix {
		suffix, cur2 = "", cur
	}
	tok := token.FloatLiteral{
		Lex: cur2.Since(start), Whole: whole, Fraction: frac, HasFraction: hasFrac,
		Exponent: expDigits, HasExponent: true, ExpSign: expSign,
		Suffix: suffix, HasSuffix: hasSuffix,
	}
	return tok, cur2, true
}

func scanExponentPart(c cursor.Cursor) (digits string, sign int, rest cursor.Cursor, ok bool) {
	r, next, got := c.Next()
	if !got || (r != 'e' && r != 'E') {
		return "", 0, c, false
	}
	cur := next
	if p, has := cur.Peek(); has && (p == '+' || p == '-') {
		if p == '+' {
			sign = 1
		} else {
			sign = -1
		}
		_, cur, _ = cur.Next()
	}
	for {
		p, has := cur.Peek()
		if !has || p != '_' {
			break
		}
		_, cur, _ = cur.Next()
	}
	digits, cur, ok = scanDecDigits(cur)
	if !ok {
		return "", 0, c, false
	}
	return digits, sign, cur, true
}

func scanFloatFormB(start, afterWhole cursor.Cursor, whole string) (token.Token, cursor.Cursor, bool) {
	r, next, ok := afterWhole.Next()
	if !ok || r != '.' {
		return nil, start, false
	}
	frac, rest, ok := scanDecDigits(next)
	if !ok {
		return nil, start, false
	}
	suffix, rest2, hasSuffix := tryConsumeSuffixNoE(rest)
	if !hasSuffix {
		suffix, rest2 = "", rest
	}
	tok := token.FloatLiteral{
		Lex: rest2.Since(start), Whole: whole, Fraction: frac, HasFraction: true,
		Suffix: suffix, HasSuffix: hasSuffix,
	}
	return tok, rest2, true
}

func scanFloatFormA(afterWhole cursor.Cursor) (cursor.Cursor, bool) {
	r, next, ok := afterWhole.Next()
	if !ok || r != '.' {
		return afterWhole, false
	}
	p, has := next.Peek()
	if !has {
		return next, true
	}
	if p == '.' || p == '_' || isXIDStart(p) {
		return afterWhole, false
	}
	return next, true
}
