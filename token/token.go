package token

import (
	"strconv"
)

// Token is the set of lexical tokens in JavaScript (ECMAScript).
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binary operator precedence of the token, or 0 if
// the token is not a binary operator. The in parameter controls whether
// the `in` operator is legal at the current point of the grammar; when it
// is not, `in` reports no precedence and binary parsing stops before it.
func (t Token) Precedence(in bool) int {
	switch t {
	case LogicalOr:
		return 1
	case LogicalAnd:
		return 2
	case Or:
		return 3
	case ExclusiveOr:
		return 4
	case And:
		return 5
	case Equal,
		NotEqual,
		StrictEqual,
		StrictNotEqual:
		return 6
	case Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf:
		return 7
	case In:
		if in {
			return 7
		}
		return 0
	case ShiftLeft, ShiftRight, UnsignedShiftRight:
		return 8
	case Plus, Minus:
		return 9
	case Multiply, Slash, Remainder:
		return 10
	case Exponent:
		return 11
	}
	return 0
}

// keyword ...
type keyword struct {
	token         Token
	futureKeyword bool
	strict        bool
}

// LiteralKeyword returns the keyword token if literal is a keyword, a Keyword
// token if the literal is a future keyword (enum, export, import, ...), or 0
// if the literal is not a keyword.
func LiteralKeyword(literal string) (Token, bool) {
	if k, exists := keywordTable[literal]; exists {
		if k.futureKeyword {
			return Keyword, k.strict
		}
		return k.token, false
	}
	return 0, false
}

// ID reports whether the token can appear where the grammar wants an
// identifier-like word, such as a property name after `.`.
func ID(token Token) bool {
	return token >= Identifier
}

// UnreservedWord reports whether the token is a word that may still be used
// as a plain identifier (let, await, yield outside their special contexts).
func UnreservedWord(token Token) bool {
	return token >= Let
}
