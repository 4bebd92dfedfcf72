// Package parser parses JavaScript source into the AST of package ast.
//
// Parse methods receive the grammar context (the In, Yield and Await
// parameters of the ECMAScript productions) as a value, so every call
// site states the context it parses under and callers are never affected
// by what their callees do.
package parser

import (
	"golang.org/x/exp/slog"

	"github.com/t14raptor/go-esparse/ast"
	"github.com/t14raptor/go-esparse/parser/lexer"
	"github.com/t14raptor/go-esparse/token"
)

// flags carries the grammar context of a single parse call. It is copied
// at every call site and never stored on the parser.
type flags struct {
	in    bool
	yield bool
	await bool
}

type parser struct {
	cur *cursor
	log *slog.Logger
}

// Option configures a single parse.
type Option func(*parser)

// WithLogger enables debug tracing of parse boundaries on log.
func WithLogger(log *slog.Logger) Option {
	return func(p *parser) { p.log = log }
}

// ParseFile parses src as a whole program.
func ParseFile(src string, opts ...Option) (*ast.Program, error) {
	p := &parser{cur: newCursor(src)}
	for _, opt := range opts {
		opt(p)
	}
	p.debug("parse start", "bytes", len(src))
	prog, err := p.parseProgram()
	if err != nil {
		p.debug("parse failed", "err", err)
		return nil, err
	}
	p.debug("parse done", "statements", len(prog.Body))
	return prog, nil
}

func (p *parser) parseProgram() (*ast.Program, error) {
	body, err := p.parseStatementList(flags{in: true}, false)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(0); tok.Kind != token.Eof {
		return nil, p.errUnexpected(tok, "statement expected")
	}
	return &ast.Program{Body: body}, nil
}

func (p *parser) debug(msg string, args ...any) {
	if p.log != nil {
		p.log.Debug(msg, args...)
	}
}

func (p *parser) peek(n int) lexer.Token { return p.cur.peek(n) }

func (p *parser) next() lexer.Token { return p.cur.next() }

func (p *parser) nextIf(kind token.Token) (lexer.Token, bool) { return p.cur.nextIf(kind) }

func (p *parser) setGoal(goal lexer.Goal) { p.cur.setGoal(goal) }

// expect consumes the current token and fails unless it has the wanted
// kind. The offending token is consumed either way.
func (p *parser) expect(kind token.Token, context string) (lexer.Token, error) {
	tok := p.next()
	if tok.Kind != kind {
		return tok, p.errExpected([]string{kind.String()}, tok, context)
	}
	return tok, nil
}

// semicolon consumes an explicit `;` or applies automatic semicolon
// insertion: a `}` or the end of input terminates the statement, as does
// a line break before the next token.
func (p *parser) semicolon(context string) error {
	if _, ok := p.nextIf(token.Semicolon); ok {
		return nil
	}
	tok := p.peek(0)
	if tok.Kind == token.RightBrace || tok.Kind == token.Eof || tok.OnNewLine {
		return nil
	}
	return p.errExpected([]string{";"}, p.next(), context)
}
