package parser

import (
	"github.com/t14raptor/go-esparse/ast"
	"github.com/t14raptor/go-esparse/parser/lexer"
	"github.com/t14raptor/go-esparse/token"
)

// parseObjectLiteral parses `{...}` as a sequence of property
// definitions separated by commas.
func (p *parser) parseObjectLiteral(f flags) (ast.Expr, error) {
	if _, err := p.expect(token.LeftBrace, "object literal"); err != nil {
		return nil, err
	}
	properties := []ast.PropertyDefinition{}
	for {
		if _, ok := p.nextIf(token.RightBrace); ok {
			break
		}
		property, err := p.parsePropertyDefinition(f)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
		if _, ok := p.nextIf(token.RightBrace); ok {
			break
		}
		if _, ok := p.nextIf(token.Comma); !ok {
			return nil, p.errExpected([]string{",", "}"}, p.next(), "object literal")
		}
	}
	return &ast.Object{Properties: properties}, nil
}

// parsePropertyDefinition parses one entry of an object literal: a
// spread, a `key: value` pair, a method, or a get/set accessor. A `(`
// directly after the key always starts a method, so get and set stay
// usable as plain method names.
func (p *parser) parsePropertyDefinition(f flags) (ast.PropertyDefinition, error) {
	if _, ok := p.nextIf(token.Ellipsis); ok {
		target, err := p.parseAssignmentExpression(flags{in: true, yield: f.yield, await: f.await})
		if err != nil {
			return nil, err
		}
		return &ast.SpreadObject{Target: target}, nil
	}

	keyTok := p.next()
	if keyTok.Kind == token.Eof {
		return nil, p.abruptEnd(keyTok)
	}
	if err := p.lexFailure(keyTok); err != nil {
		return nil, err
	}
	key := propertyKey(keyTok)

	if _, ok := p.nextIf(token.Colon); ok {
		value, err := p.parseAssignmentExpression(flags{in: true, yield: f.yield, await: f.await})
		if err != nil {
			return nil, err
		}
		return &ast.Property{Key: key, Value: value}, nil
	}

	if _, ok := p.nextIf(token.LeftParenthesis); ok {
		return p.parseOrdinaryMethod(key)
	}
	if key == "get" || key == "set" {
		return p.parseAccessorMethod(key)
	}

	tok := p.peek(0)
	if tok.Kind == token.Eof {
		return nil, p.abruptEnd(tok)
	}
	return nil, &GeneralError{Message: "expected property definition", Line: tok.Pos.Line, Col: tok.Pos.Col}
}

// parseOrdinaryMethod parses a plain method entry; the `(` opening the
// parameter list has already been consumed.
func (p *parser) parseOrdinaryMethod(key string) (ast.PropertyDefinition, error) {
	parameters, err := p.parseFormalParameters(flags{})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParenthesis, "method definition"); err != nil {
		return nil, err
	}
	body, err := p.parseMethodBody()
	if err != nil {
		return nil, err
	}
	return &ast.MethodDefinition{
		Kind:     ast.MethodKindOrdinary,
		Key:      key,
		Function: &ast.FunctionExpr{Parameters: parameters, Body: body},
	}, nil
}

// parseAccessorMethod parses a getter or setter entry. accessor is the
// consumed "get" or "set" word; the property name is the next token.
func (p *parser) parseAccessorMethod(accessor string) (ast.PropertyDefinition, error) {
	nameTok := p.next()
	if nameTok.Kind == token.Eof {
		return nil, p.abruptEnd(nameTok)
	}
	if err := p.lexFailure(nameTok); err != nil {
		return nil, err
	}
	key := propertyKey(nameTok)

	if _, err := p.expect(token.LeftParenthesis, "property method definition"); err != nil {
		return nil, err
	}
	firstParam := p.peek(0)
	parameters, err := p.parseFormalParameters(flags{})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParenthesis, "method definition"); err != nil {
		return nil, err
	}

	kind := ast.MethodKindGet
	switch accessor {
	case "get":
		if len(parameters) != 0 {
			return nil, p.errUnexpected(firstParam, "getter functions must have no arguments")
		}
	case "set":
		kind = ast.MethodKindSet
		if len(parameters) != 1 {
			return nil, p.errUnexpected(firstParam, "setter functions must have one argument")
		}
		if parameters[0].Rest {
			return nil, p.errUnexpected(firstParam, "setter functions must not have a rest parameter")
		}
	}

	body, err := p.parseMethodBody()
	if err != nil {
		return nil, err
	}
	return &ast.MethodDefinition{
		Kind:     kind,
		Key:      key,
		Function: &ast.FunctionExpr{Parameters: parameters, Body: body},
	}, nil
}

func (p *parser) parseMethodBody() (ast.StatementList, error) {
	if _, err := p.expect(token.LeftBrace, "property method definition"); err != nil {
		return nil, err
	}
	body, err := p.parseFunctionBody(flags{})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightBrace, "property method definition"); err != nil {
		return nil, err
	}
	return body, nil
}

// parseInitializer parses `= AssignmentExpression`.
func (p *parser) parseInitializer(f flags) (ast.Expr, error) {
	if _, err := p.expect(token.Assign, "initializer"); err != nil {
		return nil, err
	}
	return p.parseAssignmentExpression(f)
}

// propertyKey renders a key token as the property name it denotes. A
// string key uses the decoded value even when it is empty.
func propertyKey(tok lexer.Token) string {
	if tok.Kind == token.String {
		return tok.Literal
	}
	return tok.String()
}
