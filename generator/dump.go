package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/t14raptor/go-esparse/ast"
)

// Dump renders node as an indented tree, one node per line. It is meant
// for debugging and golden tests, not for round-tripping.
func Dump(node ast.Node) string {
	d := &dumper{out: &strings.Builder{}}
	d.node(node)
	return d.out.String()
}

type dumper struct {
	out    *strings.Builder
	indent int
}

func (d *dumper) line(format string, args ...any) {
	d.out.WriteString(strings.Repeat("  ", d.indent))
	fmt.Fprintf(d.out, format, args...)
	d.out.WriteString("\n")
}

func (d *dumper) nested(fn func()) {
	d.indent++
	fn()
	d.indent--
}

func (d *dumper) node(node ast.Node) {
	switch n := node.(type) {
	case nil:
		d.line("<nil>")
	case *ast.Program:
		d.line("Program")
		d.nested(func() {
			for _, stmt := range n.Body {
				d.node(stmt)
			}
		})
	case *ast.Identifier:
		d.line("Identifier %s", n.Name)
	case *ast.This:
		d.line("This")
	case *ast.BooleanLiteral:
		d.line("Boolean %v", n.Value)
	case *ast.NullLiteral:
		d.line("Null")
	case *ast.NumberLiteral:
		d.line("Number %s", strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *ast.StringLiteral:
		d.line("String %q", n.Value)
	case *ast.RegExpLiteral:
		d.line("RegExp /%s/%s", n.Pattern, n.Flags)
	case *ast.ArrayLiteral:
		d.line("Array")
		d.nested(func() {
			for _, element := range n.Elements {
				if element == nil {
					d.line("<hole>")
					continue
				}
				d.node(element)
			}
		})
	case *ast.Spread:
		d.line("Spread")
		d.nested(func() { d.node(n.Target) })
	case *ast.Object:
		d.line("Object")
		d.nested(func() {
			for _, p := range n.Properties {
				d.node(p)
			}
		})
	case *ast.Property:
		d.line("Property %s", n.Key)
		d.nested(func() { d.node(n.Value) })
	case *ast.MethodDefinition:
		d.line("Method %s %s", n.Kind, n.Key)
		d.nested(func() { d.function(n.Function.Parameters, n.Function.Body) })
	case *ast.SpreadObject:
		d.line("SpreadObject")
		d.nested(func() { d.node(n.Target) })
	case *ast.FunctionExpr:
		if n.Name != "" {
			d.line("Function %s", n.Name)
		} else {
			d.line("Function")
		}
		d.nested(func() { d.function(n.Parameters, n.Body) })
	case *ast.Call:
		d.line("Call")
		d.nested(func() {
			d.node(n.Callee)
			for _, a := range n.Arguments {
				d.node(a)
			}
		})
	case *ast.New:
		d.line("New")
		d.nested(func() {
			d.node(n.Callee)
			for _, a := range n.Arguments {
				d.node(a)
			}
		})
	case *ast.GetConstField:
		d.line("GetConstField %s", n.Field)
		d.nested(func() { d.node(n.Object) })
	case *ast.GetField:
		d.line("GetField")
		d.nested(func() {
			d.node(n.Object)
			d.node(n.Field)
		})
	case *ast.Unary:
		d.line("Unary %s", n.Operator)
		d.nested(func() { d.node(n.Operand) })
	case *ast.Update:
		if n.Postfix {
			d.line("Update postfix %s", n.Operator)
		} else {
			d.line("Update prefix %s", n.Operator)
		}
		d.nested(func() { d.node(n.Operand) })
	case *ast.Binary:
		d.line("Binary %s", n.Operator)
		d.nested(func() {
			d.node(n.Left)
			d.node(n.Right)
		})
	case *ast.Conditional:
		d.line("Conditional")
		d.nested(func() {
			d.node(n.Test)
			d.node(n.Consequent)
			d.node(n.Alternate)
		})
	case *ast.Assign:
		d.line("Assign %s", n.Operator)
		d.nested(func() {
			d.node(n.Target)
			d.node(n.Value)
		})
	case *ast.Sequence:
		d.line("Sequence")
		d.nested(func() {
			for _, e := range n.Expressions {
				d.node(e)
			}
		})
	case *ast.ExpressionStatement:
		d.line("ExpressionStatement")
		d.nested(func() { d.node(n.Expression) })
	case *ast.EmptyStatement:
		d.line("EmptyStatement")
	case *ast.BlockStatement:
		d.line("Block")
		d.nested(func() {
			for _, stmt := range n.List {
				d.node(stmt)
			}
		})
	case *ast.VariableDeclaration:
		d.line("VariableDeclaration %s", n.Kind)
		d.nested(func() {
			for _, decl := range n.List {
				d.line("Declarator %s", decl.Name)
				if decl.Init != nil {
					d.nested(func() { d.node(decl.Init) })
				}
			}
		})
	case *ast.IfStatement:
		d.line("If")
		d.nested(func() {
			d.node(n.Test)
			d.node(n.Consequent)
			if n.Alternate != nil {
				d.node(n.Alternate)
			}
		})
	case *ast.WhileStatement:
		d.line("While")
		d.nested(func() {
			d.node(n.Test)
			d.node(n.Body)
		})
	case *ast.ForStatement:
		d.line("For")
		d.nested(func() {
			if n.Init != nil {
				d.node(n.Init)
			}
			if n.Test != nil {
				d.node(n.Test)
			}
			if n.Update != nil {
				d.node(n.Update)
			}
			d.node(n.Body)
		})
	case *ast.ForInStatement:
		d.line("ForIn")
		d.nested(func() {
			d.node(n.Into)
			d.node(n.Object)
			d.node(n.Body)
		})
	case *ast.ReturnStatement:
		d.line("Return")
		if n.Argument != nil {
			d.nested(func() { d.node(n.Argument) })
		}
	case *ast.FunctionDeclaration:
		d.line("FunctionDeclaration %s", n.Name)
		d.nested(func() { d.function(n.Parameters, n.Body) })
	default:
		d.line("%T", n)
	}
}

func (d *dumper) function(params []ast.FormalParameter, body ast.StatementList) {
	for _, param := range params {
		switch {
		case param.Rest:
			d.line("Rest %s", param.Name)
		case param.Init != nil:
			d.line("Parameter %s", param.Name)
			d.nested(func() { d.node(param.Init) })
		default:
			d.line("Parameter %s", param.Name)
		}
	}
	for _, stmt := range body {
		d.node(stmt)
	}
}
