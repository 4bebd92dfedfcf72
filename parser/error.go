package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/t14raptor/go-esparse/parser/lexer"
	"github.com/t14raptor/go-esparse/token"
)

// ErrAbruptEnd reports that the token source was exhausted where at least
// one more token was grammatically required.
var ErrAbruptEnd = errors.New("unexpected end of input")

// ExpectedError reports that one of a specific set of tokens was required
// and something else was found. Context names the production that was
// being parsed.
type ExpectedError struct {
	Expected []string
	Found    lexer.Token
	Context  string
}

func (e *ExpectedError) Error() string {
	var sb strings.Builder
	if len(e.Expected) == 1 {
		fmt.Fprintf(&sb, "expected token '%s'", e.Expected[0])
	} else {
		sb.WriteString("expected one of ")
		for i, want := range e.Expected {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "'%s'", want)
		}
	}
	fmt.Fprintf(&sb, ", got '%s' in %s at line %d, col %d",
		e.Found, e.Context, e.Found.Pos.Line, e.Found.Pos.Col)
	return sb.String()
}

// UnexpectedError reports a token that is structurally wrong for a
// semantic reason, with a human-readable explanation.
type UnexpectedError struct {
	Found   lexer.Token
	Message string
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected token '%s' at line %d, col %d: %s",
		e.Found, e.Found.Pos.Line, e.Found.Pos.Col, e.Message)
}

// GeneralError is a positioned failure not fitting the other kinds.
type GeneralError struct {
	Message string
	Line    int
	Col     int
}

func (e *GeneralError) Error() string {
	return fmt.Sprintf("%s at line %d, col %d", e.Message, e.Line, e.Col)
}

// lexFailure surfaces the lexer's own error when found is the Illegal
// token it produced, so malformed lexemes are not misreported as
// ordinary mismatches.
func (p *parser) lexFailure(found lexer.Token) error {
	if found.Kind == token.Illegal {
		return p.cur.lexErr
	}
	return nil
}

func (p *parser) abruptEnd(found lexer.Token) error {
	return fmt.Errorf("%w at line %d, col %d", ErrAbruptEnd, found.Pos.Line, found.Pos.Col)
}

func (p *parser) errExpected(expected []string, found lexer.Token, context string) error {
	if err := p.lexFailure(found); err != nil {
		return err
	}
	if found.Kind == token.Eof {
		return p.abruptEnd(found)
	}
	return &ExpectedError{Expected: expected, Found: found, Context: context}
}

func (p *parser) errUnexpected(found lexer.Token, message string) error {
	if err := p.lexFailure(found); err != nil {
		return err
	}
	if found.Kind == token.Eof {
		return p.abruptEnd(found)
	}
	return &UnexpectedError{Found: found, Message: message}
}
