package parser

import (
	"github.com/t14raptor/go-esparse/ast"
	"github.com/t14raptor/go-esparse/parser/lexer"
	"github.com/t14raptor/go-esparse/token"
)

// parseStatementList parses statements until `}` or the end of input.
// fn reports whether the list is (directly or not) inside a function
// body, which is what makes return legal.
func (p *parser) parseStatementList(f flags, fn bool) (ast.StatementList, error) {
	list := ast.StatementList{}
	for {
		switch p.peek(0).Kind {
		case token.Eof, token.RightBrace:
			return list, nil
		}
		stmt, err := p.parseStatement(f, fn)
		if err != nil {
			return nil, err
		}
		list = append(list, stmt)
	}
}

func (p *parser) parseStatement(f flags, fn bool) (ast.Stmt, error) {
	switch p.peek(0).Kind {
	case token.LeftBrace:
		return p.parseBlockStatement(f, fn)
	case token.Semicolon:
		p.next()
		return &ast.EmptyStatement{}, nil
	case token.Var, token.Let, token.Const:
		return p.parseVariableStatement(f)
	case token.If:
		return p.parseIfStatement(f, fn)
	case token.While:
		return p.parseWhileStatement(f, fn)
	case token.For:
		return p.parseForStatement(f, fn)
	case token.Return:
		return p.parseReturnStatement(f, fn)
	case token.Function:
		return p.parseFunctionDeclaration(f)
	}
	return p.parseExpressionStatement(f)
}

func (p *parser) parseBlockStatement(f flags, fn bool) (ast.Stmt, error) {
	p.next()
	list, err := p.parseStatementList(f, fn)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightBrace, "block statement"); err != nil {
		return nil, err
	}
	return &ast.BlockStatement{List: list}, nil
}

func (p *parser) parseVariableStatement(f flags) (ast.Stmt, error) {
	decl, err := p.parseVariableDeclaration(f, false)
	if err != nil {
		return nil, err
	}
	if err := p.semicolon("variable statement"); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseVariableDeclaration parses the declaration without a terminating
// semicolon, so for-statement heads can reuse it. In a for head a const
// binding may go without initializer when a for-in `in` follows.
func (p *parser) parseVariableDeclaration(f flags, forHead bool) (*ast.VariableDeclaration, error) {
	kindTok := p.next()
	var list []ast.VariableDeclarator
	for {
		name, err := p.parseBindingIdentifier(f)
		if err != nil {
			return nil, err
		}
		var init ast.Expr
		if p.peek(0).Kind == token.Assign {
			init, err = p.parseInitializer(f)
			if err != nil {
				return nil, err
			}
		} else if kindTok.Kind == token.Const && !(forHead && p.peek(0).Kind == token.In) {
			return nil, p.errUnexpected(p.peek(0), "missing initializer in const declaration")
		}
		list = append(list, ast.VariableDeclarator{Name: name, Init: init})
		if _, ok := p.nextIf(token.Comma); !ok {
			break
		}
	}
	return &ast.VariableDeclaration{Kind: kindTok.Kind, List: list}, nil
}

func (p *parser) parseIfStatement(f flags, fn bool) (ast.Stmt, error) {
	p.next()
	if _, err := p.expect(token.LeftParenthesis, "if statement"); err != nil {
		return nil, err
	}
	test, err := p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParenthesis, "if statement"); err != nil {
		return nil, err
	}
	consequent, err := p.parseStatement(f, fn)
	if err != nil {
		return nil, err
	}
	var alternate ast.Stmt
	if _, ok := p.nextIf(token.Else); ok {
		alternate, err = p.parseStatement(f, fn)
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}, nil
}

func (p *parser) parseWhileStatement(f flags, fn bool) (ast.Stmt, error) {
	p.next()
	if _, err := p.expect(token.LeftParenthesis, "while statement"); err != nil {
		return nil, err
	}
	test, err := p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParenthesis, "while statement"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement(f, fn)
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Test: test, Body: body}, nil
}

// parseForStatement parses both the classic three-clause form and
// for-in. The head before a possible `in` is parsed with the In
// parameter off; which form it is only becomes clear afterwards.
func (p *parser) parseForStatement(f flags, fn bool) (ast.Stmt, error) {
	p.next()
	if _, err := p.expect(token.LeftParenthesis, "for statement"); err != nil {
		return nil, err
	}

	headFlags := flags{yield: f.yield, await: f.await}
	var init ast.Node
	switch p.peek(0).Kind {
	case token.Semicolon:
	case token.Var, token.Let, token.Const:
		decl, err := p.parseVariableDeclaration(headFlags, true)
		if err != nil {
			return nil, err
		}
		init = decl
	default:
		expr, err := p.parseExpression(headFlags)
		if err != nil {
			return nil, err
		}
		init = expr
	}

	if tok, ok := p.nextIf(token.In); ok {
		into, err := p.forInTarget(init, tok)
		if err != nil {
			return nil, err
		}
		object, err := p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightParenthesis, "for-in statement"); err != nil {
			return nil, err
		}
		body, err := p.parseStatement(f, fn)
		if err != nil {
			return nil, err
		}
		return &ast.ForInStatement{Into: into, Object: object, Body: body}, nil
	}

	if _, err := p.expect(token.Semicolon, "for statement"); err != nil {
		return nil, err
	}
	var test ast.Expr
	if p.peek(0).Kind != token.Semicolon {
		var err error
		test, err = p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semicolon, "for statement"); err != nil {
		return nil, err
	}
	var update ast.Expr
	if p.peek(0).Kind != token.RightParenthesis {
		var err error
		update, err = p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RightParenthesis, "for statement"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement(f, fn)
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{Init: init, Test: test, Update: update, Body: body}, nil
}

// forInTarget validates the head of a for-in. A declaration must have
// exactly one declarator; an expression must be assignable.
func (p *parser) forInTarget(init ast.Node, at lexer.Token) (ast.Node, error) {
	switch init := init.(type) {
	case *ast.VariableDeclaration:
		if len(init.List) != 1 {
			return nil, p.errUnexpected(at, "for-in statement may declare only one binding")
		}
		return init, nil
	case ast.Expr:
		if !assignable(init) {
			return nil, p.errUnexpected(at, "invalid left-hand side in for-in statement")
		}
		return init, nil
	}
	return init, nil
}

func (p *parser) parseReturnStatement(f flags, fn bool) (ast.Stmt, error) {
	tok := p.next()
	if !fn {
		return nil, p.errUnexpected(tok, "illegal return statement")
	}
	var argument ast.Expr
	// a line break after return means a bare return
	next := p.peek(0)
	if !next.OnNewLine && next.Kind != token.Semicolon && next.Kind != token.RightBrace && next.Kind != token.Eof {
		var err error
		argument, err = p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
		if err != nil {
			return nil, err
		}
	}
	if err := p.semicolon("return statement"); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Argument: argument}, nil
}

func (p *parser) parseFunctionDeclaration(f flags) (ast.Stmt, error) {
	p.next()
	name, err := p.parseBindingIdentifier(f)
	if err != nil {
		return nil, err
	}
	parameters, body, err := p.parseFunctionRest()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{Name: name, Parameters: parameters, Body: body}, nil
}

func (p *parser) parseExpressionStatement(f flags) (ast.Stmt, error) {
	expr, err := p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
	if err != nil {
		return nil, err
	}
	if err := p.semicolon("expression statement"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expr}, nil
}
