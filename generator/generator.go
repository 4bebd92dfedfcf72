// Package generator renders an AST back to JavaScript source. The output
// parses back to the same tree; parentheses are inserted wherever the
// structure would otherwise be misread.
package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/t14raptor/go-esparse/ast"
	"github.com/t14raptor/go-esparse/parser/lexer"
	"github.com/t14raptor/go-esparse/token"
)

func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		if n != nil {
			for _, b := range n.Body {
				gen(s.wrap(b))
				s.line()
			}
		}
	case *ast.Identifier:
		s.out.WriteString(n.Name)
	case *ast.This:
		s.out.WriteString("this")
	case *ast.BooleanLiteral:
		if n.Value {
			s.out.WriteString("true")
		} else {
			s.out.WriteString("false")
		}
	case *ast.NullLiteral:
		s.out.WriteString("null")
	case *ast.NumberLiteral:
		if n.Raw != "" {
			s.out.WriteString(n.Raw)
		} else {
			s.out.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
		}
	case *ast.StringLiteral:
		s.out.WriteString(quote(n.Value))
	case *ast.RegExpLiteral:
		s.out.WriteString("/" + n.Pattern + "/" + n.Flags)
	case *ast.ArrayLiteral:
		s.out.WriteString("[")
		for i, element := range n.Elements {
			gen(s.wrap(element))
			if i < len(n.Elements)-1 {
				s.out.WriteString(", ")
			}
		}
		// a trailing comma keeps a final hole alive on reparse
		if len(n.Elements) > 0 && n.Elements[len(n.Elements)-1] == nil {
			s.out.WriteString(",")
		}
		s.out.WriteString("]")
	case *ast.Spread:
		s.out.WriteString("...")
		gen(s.wrap(n.Target))
	case *ast.Object:
		s.out.WriteString("{")

		s.indent++
		for i, p := range n.Properties {
			s.lineAndPad()
			gen(s.wrap(p))
			if i < len(n.Properties)-1 {
				s.out.WriteString(",")
			}
		}
		s.indent--

		if len(n.Properties) > 0 {
			s.lineAndPad()
		}
		s.out.WriteString("}")
	case *ast.Property:
		writeKey(s, n.Key)
		s.out.WriteString(": ")
		gen(s.wrap(n.Value))
	case *ast.MethodDefinition:
		switch n.Kind {
		case ast.MethodKindGet:
			s.out.WriteString("get ")
		case ast.MethodKindSet:
			s.out.WriteString("set ")
		}
		writeKey(s, n.Key)
		s.out.WriteString("(")
		writeParameters(s, n.Function.Parameters)
		s.out.WriteString(") ")
		writeBody(s, n.Function.Body)
	case *ast.SpreadObject:
		s.out.WriteString("...")
		gen(s.wrap(n.Target))
	case *ast.FunctionExpr:
		s.out.WriteString("function ")
		if n.Name != "" {
			s.out.WriteString(n.Name)
		}
		s.out.WriteString("(")
		writeParameters(s, n.Parameters)
		s.out.WriteString(") ")
		writeBody(s, n.Body)
	case *ast.Call:
		switch callee := n.Callee.(type) {
		case *ast.FunctionExpr, *ast.Object, *ast.Binary, *ast.Conditional,
			*ast.Assign, *ast.Sequence, *ast.Unary, *ast.Update:
			s.out.WriteString("(")
			gen(s.wrap(n.Callee))
			s.out.WriteString(")")
		case *ast.New:
			wrapNewCallee(s, callee)
		default:
			gen(s.wrap(n.Callee))
		}
		s.out.WriteString("(")
		for i, a := range n.Arguments {
			gen(s.wrap(a))
			if i < len(n.Arguments)-1 {
				s.out.WriteString(", ")
			}
		}
		s.out.WriteString(")")
	case *ast.New:
		s.out.WriteString("new ")
		switch n.Callee.(type) {
		case *ast.Call, *ast.Binary, *ast.Conditional, *ast.Assign,
			*ast.Sequence, *ast.Unary, *ast.Update:
			s.out.WriteString("(")
			gen(s.wrap(n.Callee))
			s.out.WriteString(")")
		default:
			gen(s.wrap(n.Callee))
		}
		if n.Arguments != nil {
			s.out.WriteString("(")
			for i, a := range n.Arguments {
				gen(s.wrap(a))
				if i < len(n.Arguments)-1 {
					s.out.WriteString(", ")
				}
			}
			s.out.WriteString(")")
		}
	case *ast.GetConstField:
		writeMemberObject(s, n.Object, true)
		s.out.WriteString(".")
		s.out.WriteString(n.Field)
	case *ast.GetField:
		writeMemberObject(s, n.Object, false)
		s.out.WriteString("[")
		gen(s.wrap(n.Field))
		s.out.WriteString("]")
	case *ast.Unary:
		s.out.WriteString(n.Operator.String())
		if len(n.Operator.String()) > 2 {
			s.out.WriteString(" ")
		}

		wrap := false
		switch n.Operand.(type) {
		case *ast.Binary, *ast.Conditional, *ast.Assign, *ast.Unary,
			*ast.Update, *ast.Sequence:
			wrap = true
		}

		if wrap {
			s.out.WriteString("(")
		}
		gen(s.wrap(n.Operand))
		if wrap {
			s.out.WriteString(")")
		}
	case *ast.Update:
		if n.Postfix {
			gen(s.wrap(n.Operand))
			s.out.WriteString(n.Operator.String())
		} else {
			s.out.WriteString(n.Operator.String())
			gen(s.wrap(n.Operand))
		}
	case *ast.Binary:
		if pn, ok := s.parent.node.(*ast.Binary); ok {
			operatorPrecedence := n.Operator.Precedence(true)
			parentOperatorPrecedence := pn.Operator.Precedence(true)
			wrapSame := pn.Right == ast.Expr(n)
			if pn.Operator == token.Exponent {
				wrapSame = pn.Left == ast.Expr(n)
			}
			if operatorPrecedence < parentOperatorPrecedence || operatorPrecedence == parentOperatorPrecedence && wrapSame {
				s.out.WriteString("(")
				defer s.out.WriteString(")")
			}
		}
		gen(s.wrap(n.Left))
		s.out.WriteString(" " + n.Operator.String() + " ")
		gen(s.wrap(n.Right))
	case *ast.Conditional:
		switch pn := s.parent.node.(type) {
		case *ast.Binary:
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		case *ast.Conditional:
			if pn.Test == ast.Expr(n) {
				s.out.WriteString("(")
				defer s.out.WriteString(")")
			}
		}
		gen(s.wrap(n.Test))
		s.out.WriteString(" ? ")
		gen(s.wrap(n.Consequent))
		s.out.WriteString(" : ")
		gen(s.wrap(n.Alternate))
	case *ast.Assign:
		switch pn := s.parent.node.(type) {
		case *ast.Binary:
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		case *ast.Conditional:
			if pn.Test == ast.Expr(n) {
				s.out.WriteString("(")
				defer s.out.WriteString(")")
			}
		}
		gen(s.wrap(n.Target))
		s.out.WriteString(" " + n.Operator.String() + " ")
		gen(s.wrap(n.Value))
	case *ast.Sequence:
		switch s.parent.node.(type) {
		case *ast.Binary, *ast.Conditional, *ast.Assign, *ast.Call, *ast.New,
			*ast.Spread, *ast.SpreadObject, *ast.ArrayLiteral, *ast.Property,
			*ast.Unary, *ast.VariableDeclaration, *ast.FunctionExpr,
			*ast.FunctionDeclaration, *ast.MethodDefinition:
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		}
		for i, e := range n.Expressions {
			gen(s.wrap(e))
			if i < len(n.Expressions)-1 {
				s.out.WriteString(", ")
			}
		}
	case *ast.ExpressionStatement:
		if startsAmbiguously(n.Expression) {
			s.out.WriteString("(")
			gen(s.wrap(n.Expression))
			s.out.WriteString(")")
		} else {
			gen(s.wrap(n.Expression))
		}
		s.out.WriteString(";")
	case *ast.EmptyStatement:
		s.out.WriteString(";")
	case *ast.BlockStatement:
		s.out.WriteString("{")

		s.indent++
		for _, st := range n.List {
			s.lineAndPad()
			gen(s.wrap(st))
		}
		s.indent--

		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.VariableDeclaration:
		s.out.WriteString(n.Kind.String())
		s.out.WriteString(" ")
		for i, d := range n.List {
			s.out.WriteString(d.Name)
			if d.Init != nil {
				s.out.WriteString(" = ")
				gen(s.wrap(d.Init))
			}
			if i < len(n.List)-1 {
				s.out.WriteString(", ")
			}
		}
		switch s.parent.node.(type) {
		case *ast.ForStatement, *ast.ForInStatement:
		default:
			s.out.WriteString(";")
		}
	case *ast.IfStatement:
		s.out.WriteString("if (")
		gen(s.wrap(n.Test))
		s.out.WriteString(") ")
		writeNestedStatement(s, n.Consequent)
		if n.Alternate != nil {
			s.out.WriteString(" else ")
			if _, ok := n.Alternate.(*ast.IfStatement); ok {
				gen(s.wrap(n.Alternate))
			} else {
				writeNestedStatement(s, n.Alternate)
			}
		}
	case *ast.WhileStatement:
		s.out.WriteString("while (")
		gen(s.wrap(n.Test))
		s.out.WriteString(") ")
		writeNestedStatement(s, n.Body)
	case *ast.ForStatement:
		s.out.WriteString("for (")
		if n.Init != nil {
			gen(s.wrap(n.Init))
		}
		s.out.WriteString("; ")
		if n.Test != nil {
			gen(s.wrap(n.Test))
		}
		s.out.WriteString("; ")
		if n.Update != nil {
			gen(s.wrap(n.Update))
		}
		s.out.WriteString(") ")
		writeNestedStatement(s, n.Body)
	case *ast.ForInStatement:
		s.out.WriteString("for (")
		gen(s.wrap(n.Into))
		s.out.WriteString(" in ")
		gen(s.wrap(n.Object))
		s.out.WriteString(") ")
		writeNestedStatement(s, n.Body)
	case *ast.ReturnStatement:
		s.out.WriteString("return")
		if n.Argument != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Argument))
		}
		s.out.WriteString(";")
	case *ast.FunctionDeclaration:
		s.out.WriteString("function ")
		s.out.WriteString(n.Name)
		s.out.WriteString("(")
		writeParameters(s, n.Parameters)
		s.out.WriteString(") ")
		writeBody(s, n.Body)
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

// writeKey writes a property key, quoting it unless it is a plain
// identifier name.
func writeKey(s *state, key string) {
	if lexer.IsIdentifierName(key) {
		s.out.WriteString(key)
	} else {
		s.out.WriteString(quote(key))
	}
}

func writeParameters(s *state, params []ast.FormalParameter) {
	for i, param := range params {
		if param.Rest {
			s.out.WriteString("...")
		}
		s.out.WriteString(param.Name)
		if param.Init != nil {
			s.out.WriteString(" = ")
			gen(s.wrap(param.Init))
		}
		if i < len(params)-1 {
			s.out.WriteString(", ")
		}
	}
}

func writeBody(s *state, body ast.StatementList) {
	gen(s.wrap(&ast.BlockStatement{List: body}))
}

// writeNestedStatement prints the body of a control statement, braced
// unless it is already a block or empty.
func writeNestedStatement(s *state, stmt ast.Stmt) {
	switch stmt.(type) {
	case *ast.EmptyStatement, *ast.BlockStatement:
		gen(s.wrap(stmt))
	default:
		gen(s.wrap(&ast.BlockStatement{List: ast.StatementList{stmt}}))
	}
}

// writeMemberObject prints the receiver of a member access, wrapping it
// whenever the access would otherwise bind into the receiver. A number
// before `.` needs parentheses so the dot is not read as a decimal
// point.
func writeMemberObject(s *state, object ast.Expr, dot bool) {
	wrap := false
	switch object := object.(type) {
	case *ast.Binary, *ast.Conditional, *ast.Assign, *ast.Sequence,
		*ast.Unary, *ast.Update, *ast.Object, *ast.FunctionExpr:
		wrap = true
	case *ast.New:
		wrap = object.Arguments == nil
	case *ast.NumberLiteral:
		wrap = dot
	}
	if wrap {
		s.out.WriteString("(")
	}
	gen(s.wrap(object))
	if wrap {
		s.out.WriteString(")")
	}
}

// wrapNewCallee prints a `new` expression used as a call target.
// `new X` without arguments must be parenthesized or the call arguments
// would be read as the constructor arguments.
func wrapNewCallee(s *state, n *ast.New) {
	if n.Arguments == nil {
		s.out.WriteString("(")
		gen(s.wrap(n))
		s.out.WriteString(")")
		return
	}
	gen(s.wrap(n))
}

// startsAmbiguously reports whether a statement beginning with expr
// would be misread as a block or a function declaration.
func startsAmbiguously(expr ast.Expr) bool {
	switch n := expr.(type) {
	case *ast.Object, *ast.FunctionExpr:
		return true
	case *ast.Binary:
		return startsAmbiguously(n.Left)
	case *ast.Assign:
		return startsAmbiguously(n.Target)
	case *ast.Conditional:
		return startsAmbiguously(n.Test)
	case *ast.Sequence:
		if len(n.Expressions) > 0 {
			return startsAmbiguously(n.Expressions[0])
		}
	case *ast.Update:
		if n.Postfix {
			return startsAmbiguously(n.Operand)
		}
	}
	return false
}

func quote(value string) string {
	var sb strings.Builder
	sb.WriteString("\"")
	for _, r := range value {
		switch r {
		case '"':
			sb.WriteString("\\\"")
		case '\\':
			sb.WriteString("\\\\")
		case '\n':
			sb.WriteString("\\n")
		case '\r':
			sb.WriteString("\\r")
		case '\t':
			sb.WriteString("\\t")
		case '\b':
			sb.WriteString("\\b")
		case '\f':
			sb.WriteString("\\f")
		case '\v':
			sb.WriteString("\\v")
		case '\u2028':
			sb.WriteString("\\u2028")
		case '\u2029':
			sb.WriteString("\\u2029")
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, "\\x%02x", r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteString("\"")
	return sb.String()
}
