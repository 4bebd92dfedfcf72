package lexer

import (
	"github.com/t14raptor/go-esparse/token"
)

// Position is a line/column pair within the source text, both 1-based.
type Position struct {
	Line int
	Col  int
}

// Token is one lexical unit of the source text.
//
// Literal holds the parsed lexeme where one exists: the name of an
// identifier or keyword, the decoded value of a string literal, and the
// raw source text of a number or regular expression literal. It is empty
// for punctuators.
type Token struct {
	Kind    token.Token
	Literal string
	Pos     Position
	EndPos  Position

	// OnNewLine reports that a line terminator appeared between this
	// token and the previous one. Automatic semicolon insertion and the
	// restricted productions key off it.
	OnNewLine bool
}

// String renders the token the way error messages and property keys want
// it: the literal text when the token carries one, the canonical token
// text otherwise.
func (t Token) String() string {
	if t.Literal != "" {
		return t.Literal
	}
	return t.Kind.String()
}

// Goal is the lexical goal symbol deciding how a `/` is scanned.
type Goal int

const (
	// GoalDiv scans `/` as the division operator.
	GoalDiv Goal = iota
	// GoalRegExp scans `/` as the start of a regular expression literal.
	GoalRegExp
)
