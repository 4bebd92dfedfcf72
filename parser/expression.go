package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/t14raptor/go-esparse/ast"
	"github.com/t14raptor/go-esparse/token"
)

// parseExpression parses a comma separated sequence of assignment
// expressions. A single expression comes back as itself, never wrapped.
func (p *parser) parseExpression(f flags) (ast.Expr, error) {
	expr, err := p.parseAssignmentExpression(f)
	if err != nil {
		return nil, err
	}
	if p.peek(0).Kind != token.Comma {
		return expr, nil
	}
	seq := []ast.Expr{expr}
	for {
		if _, ok := p.nextIf(token.Comma); !ok {
			break
		}
		next, err := p.parseAssignmentExpression(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, next)
	}
	return &ast.Sequence{Expressions: seq}, nil
}

func (p *parser) parseAssignmentExpression(f flags) (ast.Expr, error) {
	left, err := p.parseConditionalExpression(f)
	if err != nil {
		return nil, err
	}
	op := p.peek(0)
	switch op.Kind {
	case token.Assign, token.AddAssign, token.SubtractAssign, token.MultiplyAssign,
		token.ExponentAssign, token.QuotientAssign, token.RemainderAssign,
		token.AndAssign, token.OrAssign, token.ExclusiveOrAssign,
		token.ShiftLeftAssign, token.ShiftRightAssign, token.UnsignedShiftRightAssign:
	default:
		return left, nil
	}
	if !assignable(left) {
		return nil, p.errUnexpected(op, "invalid left-hand side in assignment")
	}
	p.next()
	right, err := p.parseAssignmentExpression(f)
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Operator: op.Kind, Target: left, Value: right}, nil
}

// assignable reports whether expr may be the target of an assignment,
// an update operator or a for-in head.
func assignable(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.GetConstField, *ast.GetField:
		return true
	}
	return false
}

func (p *parser) parseConditionalExpression(f flags) (ast.Expr, error) {
	test, err := p.parseBinaryExpression(f, 0)
	if err != nil {
		return nil, err
	}
	if _, ok := p.nextIf(token.QuestionMark); !ok {
		return test, nil
	}
	// the consequent re-enables `in` even inside a for-statement head
	consequent, err := p.parseAssignmentExpression(flags{in: true, yield: f.yield, await: f.await})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "conditional expression"); err != nil {
		return nil, err
	}
	alternate, err := p.parseAssignmentExpression(f)
	if err != nil {
		return nil, err
	}
	return &ast.Conditional{Test: test, Consequent: consequent, Alternate: alternate}, nil
}

// parseBinaryExpression climbs operator precedence. minPrec is the
// lowest precedence this call may consume; `**` recurses one level
// looser than itself to bind to the right.
func (p *parser) parseBinaryExpression(f flags, minPrec int) (ast.Expr, error) {
	left, err := p.parseUnaryExpression(f)
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek(0)
		prec := op.Kind.Precedence(f.in)
		if prec <= minPrec {
			return left, nil
		}
		p.next()
		rightMin := prec
		if op.Kind == token.Exponent {
			rightMin = prec - 1
		}
		right, err := p.parseBinaryExpression(f, rightMin)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Operator: op.Kind, Left: left, Right: right}
	}
}

func (p *parser) parseUnaryExpression(f flags) (ast.Expr, error) {
	tok := p.peek(0)
	switch tok.Kind {
	case token.Not, token.BitwiseNot, token.Plus, token.Minus,
		token.Typeof, token.Void, token.Delete:
		p.next()
		operand, err := p.parseUnaryExpression(f)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: tok.Kind, Operand: operand}, nil
	}
	return p.parseUpdateExpression(f)
}

func (p *parser) parseUpdateExpression(f flags) (ast.Expr, error) {
	if tok := p.peek(0); tok.Kind == token.Increment || tok.Kind == token.Decrement {
		p.next()
		operand, err := p.parseUnaryExpression(f)
		if err != nil {
			return nil, err
		}
		if !assignable(operand) {
			return nil, p.errUnexpected(tok, "invalid left-hand side in update operation")
		}
		return &ast.Update{Operator: tok.Kind, Operand: operand}, nil
	}
	operand, err := p.parseLeftHandSideExpression(f)
	if err != nil {
		return nil, err
	}
	// a line break before a postfix operator ends the expression instead
	if tok := p.peek(0); (tok.Kind == token.Increment || tok.Kind == token.Decrement) && !tok.OnNewLine {
		if !assignable(operand) {
			return nil, p.errUnexpected(tok, "invalid left-hand side in update operation")
		}
		p.next()
		return &ast.Update{Operator: tok.Kind, Operand: operand, Postfix: true}, nil
	}
	return operand, nil
}

func (p *parser) parseLeftHandSideExpression(f flags) (ast.Expr, error) {
	member, err := p.parseMemberExpression(f)
	if err != nil {
		return nil, err
	}
	if p.peek(0).Kind == token.LeftParenthesis {
		return p.parseCallExpression(member, f)
	}
	return member, nil
}

// parseCallExpression parses the call and member access chain following
// a call target. first is the already parsed target; the first token
// must be the `(` of the initial argument list.
func (p *parser) parseCallExpression(first ast.Expr, f flags) (ast.Expr, error) {
	if tok := p.peek(0); tok.Kind != token.LeftParenthesis {
		return nil, p.errExpected([]string{"("}, p.next(), "call expression")
	}
	args, err := p.parseArguments(f)
	if err != nil {
		return nil, err
	}
	lhs := ast.Expr(&ast.Call{Callee: first, Arguments: args})
	for {
		switch p.peek(0).Kind {
		case token.LeftParenthesis:
			args, err := p.parseArguments(f)
			if err != nil {
				return nil, err
			}
			lhs = &ast.Call{Callee: lhs, Arguments: args}
		case token.Period:
			p.next()
			tok := p.next()
			if !token.ID(tok.Kind) {
				return nil, p.errExpected([]string{"identifier"}, tok, "call expression")
			}
			lhs = &ast.GetConstField{Object: lhs, Field: tok.String()}
		case token.LeftBracket:
			p.next()
			index, err := p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RightBracket, "call expression"); err != nil {
				return nil, err
			}
			lhs = &ast.GetField{Object: lhs, Field: index}
		default:
			return lhs, nil
		}
	}
}

func (p *parser) parseMemberExpression(f flags) (ast.Expr, error) {
	var expr ast.Expr
	var err error
	if p.peek(0).Kind == token.New {
		expr, err = p.parseNewExpression(f)
	} else {
		expr, err = p.parsePrimaryExpression(f)
	}
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek(0).Kind {
		case token.Period:
			p.next()
			tok := p.next()
			if !token.ID(tok.Kind) {
				return nil, p.errExpected([]string{"identifier"}, tok, "member expression")
			}
			expr = &ast.GetConstField{Object: expr, Field: tok.String()}
		case token.LeftBracket:
			p.next()
			index, err := p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RightBracket, "member expression"); err != nil {
				return nil, err
			}
			expr = &ast.GetField{Object: expr, Field: index}
		default:
			return expr, nil
		}
	}
}

// parseNewExpression parses `new` followed by a constructor target and
// an optional argument list. `new X` without arguments keeps a nil
// Arguments slice to stay distinguishable from `new X()`.
func (p *parser) parseNewExpression(f flags) (ast.Expr, error) {
	p.next()
	callee, err := p.parseMemberExpression(f)
	if err != nil {
		return nil, err
	}
	var args []ast.Expr
	if p.peek(0).Kind == token.LeftParenthesis {
		args, err = p.parseArguments(f)
		if err != nil {
			return nil, err
		}
	}
	return &ast.New{Callee: callee, Arguments: args}, nil
}

// parseArguments parses a parenthesized argument list, spread arguments
// and a trailing comma included.
func (p *parser) parseArguments(f flags) ([]ast.Expr, error) {
	if _, err := p.expect(token.LeftParenthesis, "arguments"); err != nil {
		return nil, err
	}
	args := []ast.Expr{}
	for {
		if _, ok := p.nextIf(token.RightParenthesis); ok {
			return args, nil
		}
		if len(args) > 0 {
			if tok := p.next(); tok.Kind != token.Comma {
				return nil, p.errExpected([]string{",", ")"}, tok, "arguments")
			}
			if _, ok := p.nextIf(token.RightParenthesis); ok {
				return args, nil
			}
		}
		af := flags{in: true, yield: f.yield, await: f.await}
		if _, ok := p.nextIf(token.Ellipsis); ok {
			target, err := p.parseAssignmentExpression(af)
			if err != nil {
				return nil, err
			}
			args = append(args, &ast.Spread{Target: target})
			continue
		}
		arg, err := p.parseAssignmentExpression(af)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
}

func (p *parser) parsePrimaryExpression(f flags) (ast.Expr, error) {
	tok := p.peek(0)
	switch tok.Kind {
	case token.Identifier:
		p.next()
		return &ast.Identifier{Name: tok.Literal}, nil
	case token.Yield:
		if f.yield {
			return nil, p.errUnexpected(p.next(), "yield expressions are not supported")
		}
		p.next()
		return &ast.Identifier{Name: "yield"}, nil
	case token.Await:
		if f.await {
			return nil, p.errUnexpected(p.next(), "await expressions are not supported")
		}
		p.next()
		return &ast.Identifier{Name: "await"}, nil
	case token.Let:
		p.next()
		return &ast.Identifier{Name: "let"}, nil
	case token.Number:
		p.next()
		value, err := parseNumberLiteral(tok.Literal)
		if err != nil {
			return nil, &GeneralError{Message: err.Error(), Line: tok.Pos.Line, Col: tok.Pos.Col}
		}
		return &ast.NumberLiteral{Value: value, Raw: tok.Literal}, nil
	case token.String:
		p.next()
		return &ast.StringLiteral{Value: tok.Literal}, nil
	case token.Boolean:
		p.next()
		return &ast.BooleanLiteral{Value: tok.Literal == "true"}, nil
	case token.Null:
		p.next()
		return &ast.NullLiteral{}, nil
	case token.This:
		p.next()
		return &ast.This{}, nil
	case token.RegExp:
		p.next()
		pattern, regexFlags := splitRegExp(tok.Literal)
		return &ast.RegExpLiteral{Pattern: pattern, Flags: regexFlags}, nil
	case token.LeftParenthesis:
		p.next()
		expr, err := p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightParenthesis, "parenthesized expression"); err != nil {
			return nil, err
		}
		return expr, nil
	case token.LeftBracket:
		return p.parseArrayLiteral(f)
	case token.LeftBrace:
		return p.parseObjectLiteral(f)
	case token.Function:
		return p.parseFunctionExpression(f)
	case token.Eof:
		return nil, p.abruptEnd(tok)
	}
	return nil, p.errUnexpected(p.next(), "expression expected")
}

// parseArrayLiteral parses `[...]`. A hole between commas becomes a nil
// element.
func (p *parser) parseArrayLiteral(f flags) (ast.Expr, error) {
	p.next()
	var elements []ast.Expr
	for {
		if _, ok := p.nextIf(token.RightBracket); ok {
			return &ast.ArrayLiteral{Elements: elements}, nil
		}
		if _, ok := p.nextIf(token.Comma); ok {
			elements = append(elements, nil)
			continue
		}
		ef := flags{in: true, yield: f.yield, await: f.await}
		var element ast.Expr
		if _, ok := p.nextIf(token.Ellipsis); ok {
			target, err := p.parseAssignmentExpression(ef)
			if err != nil {
				return nil, err
			}
			element = &ast.Spread{Target: target}
		} else {
			var err error
			element, err = p.parseAssignmentExpression(ef)
			if err != nil {
				return nil, err
			}
		}
		elements = append(elements, element)
		if p.peek(0).Kind != token.RightBracket {
			if tok := p.next(); tok.Kind != token.Comma {
				return nil, p.errExpected([]string{",", "]"}, tok, "array literal")
			}
		}
	}
}

func parseNumberLiteral(literal string) (float64, error) {
	if len(literal) > 2 && literal[0] == '0' {
		var base int
		switch literal[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			value, err := strconv.ParseUint(literal[2:], base, 64)
			if err != nil {
				return 0, fmt.Errorf("malformed numeric literal %q", literal)
			}
			return float64(value), nil
		}
	}
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed numeric literal %q", literal)
	}
	return value, nil
}

// splitRegExp splits the raw /pattern/flags lexeme the lexer produced.
func splitRegExp(literal string) (pattern, flags string) {
	end := strings.LastIndexByte(literal, '/')
	return literal[1:end], literal[end+1:]
}
