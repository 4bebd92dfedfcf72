package parser

import (
	"github.com/t14raptor/go-esparse/ast"
	"github.com/t14raptor/go-esparse/parser/lexer"
	"github.com/t14raptor/go-esparse/token"
)

func (p *parser) parseFunctionExpression(f flags) (ast.Expr, error) {
	p.next()
	var name string
	if p.peek(0).Kind != token.LeftParenthesis {
		var err error
		name, err = p.parseBindingIdentifier(flags{})
		if err != nil {
			return nil, err
		}
	}
	parameters, body, err := p.parseFunctionRest()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionExpr{Name: name, Parameters: parameters, Body: body}, nil
}

// parseFunctionRest parses `(parameters) { body }`. Plain functions read
// both their parameter list and body with yield and await usable as
// names.
func (p *parser) parseFunctionRest() ([]ast.FormalParameter, ast.StatementList, error) {
	if _, err := p.expect(token.LeftParenthesis, "function"); err != nil {
		return nil, nil, err
	}
	parameters, err := p.parseFormalParameters(flags{})
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(token.RightParenthesis, "function"); err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(token.LeftBrace, "function body"); err != nil {
		return nil, nil, err
	}
	body, err := p.parseFunctionBody(flags{})
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(token.RightBrace, "function body"); err != nil {
		return nil, nil, err
	}
	return parameters, body, nil
}

// parseFunctionBody parses statements up to the closing brace, which the
// caller consumes.
func (p *parser) parseFunctionBody(f flags) (ast.StatementList, error) {
	if p.peek(0).Kind == token.RightBrace {
		return ast.StatementList{}, nil
	}
	return p.parseStatementList(f, true)
}

// parseFormalParameters parses a comma separated, possibly empty
// parameter list. The caller handles both parentheses; the closing `)`
// is left unconsumed. The lexer goal is forced to the regexp goal, as a
// `/` cannot mean division after `(` or `,`.
func (p *parser) parseFormalParameters(f flags) ([]ast.FormalParameter, error) {
	p.setGoal(lexer.GoalRegExp)
	params := []ast.FormalParameter{}
	if p.peek(0).Kind == token.RightParenthesis {
		return params, nil
	}
	for {
		rest := false
		if _, ok := p.nextIf(token.Ellipsis); ok {
			rest = true
		}
		param, err := p.parseFormalParameter(f, rest)
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if p.peek(0).Kind == token.RightParenthesis {
			return params, nil
		}
		if rest {
			return nil, p.errUnexpected(p.peek(0), "rest parameter must be the last formal parameter")
		}
		if _, err := p.expect(token.Comma, "parameter list"); err != nil {
			return nil, err
		}
	}
}

// parseFormalParameter parses one parameter. Rest parameters take no
// default.
func (p *parser) parseFormalParameter(f flags, rest bool) (ast.FormalParameter, error) {
	name, err := p.parseBindingIdentifier(f)
	if err != nil {
		return ast.FormalParameter{}, err
	}
	if rest {
		return ast.FormalParameter{Name: name, Rest: true}, nil
	}
	var init ast.Expr
	if p.peek(0).Kind == token.Assign {
		init, err = p.parseInitializer(flags{in: true, yield: f.yield, await: f.await})
		if err != nil {
			return ast.FormalParameter{}, err
		}
	}
	return ast.FormalParameter{Name: name, Init: init}, nil
}

// parseBindingIdentifier parses the name of a binding. yield and await
// are legal names only where the matching grammar parameter is off.
func (p *parser) parseBindingIdentifier(f flags) (string, error) {
	tok := p.next()
	switch tok.Kind {
	case token.Identifier:
		return tok.Literal, nil
	case token.Yield:
		if !f.yield {
			return "yield", nil
		}
	case token.Await:
		if !f.await {
			return "await", nil
		}
	default:
		if token.UnreservedWord(tok.Kind) {
			return tok.Literal, nil
		}
	}
	return "", p.errExpected([]string{"identifier"}, tok, "binding identifier")
}
