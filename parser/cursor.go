package parser

import (
	"errors"

	"github.com/t14raptor/go-esparse/parser/lexer"
	"github.com/t14raptor/go-esparse/token"
)

// cursor provides buffered lookahead over the lexer. Past the end of the
// source it yields Eof tokens forever; when the lexer fails it yields the
// Illegal token the lexer produced and records the translated error in
// lexErr for the parser to surface.
type cursor struct {
	lex    *lexer.Lexer
	buf    []lexer.Token
	lexErr error
}

func newCursor(src string) *cursor {
	return &cursor{lex: lexer.New(src)}
}

func (c *cursor) fill(n int) {
	for len(c.buf) <= n {
		tok, err := c.lex.Next()
		if err != nil && c.lexErr == nil {
			var lexErr *lexer.Error
			if errors.As(err, &lexErr) {
				c.lexErr = &GeneralError{Message: lexErr.Message, Line: lexErr.Pos.Line, Col: lexErr.Pos.Col}
			} else {
				c.lexErr = err
			}
		}
		c.buf = append(c.buf, tok)
	}
}

// peek returns the nth upcoming token without consuming anything.
func (c *cursor) peek(n int) lexer.Token {
	c.fill(n)
	return c.buf[n]
}

// next consumes and returns the current token. The Eof token is never
// consumed, so calling next at the end of input is harmless.
func (c *cursor) next() lexer.Token {
	c.fill(0)
	tok := c.buf[0]
	if tok.Kind != token.Eof {
		c.buf = c.buf[1:]
	}
	return tok
}

// nextIf consumes the current token only when it has the wanted kind.
func (c *cursor) nextIf(kind token.Token) (lexer.Token, bool) {
	if c.peek(0).Kind == kind {
		return c.next(), true
	}
	return lexer.Token{}, false
}

// setGoal overrides the lexer's goal symbol for the next token it scans.
// Callers must set the goal before peeking past the decision point, as
// buffered tokens are already scanned.
func (c *cursor) setGoal(goal lexer.Goal) {
	c.lex.SetGoal(goal)
}
