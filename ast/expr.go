package ast

import "github.com/t14raptor/go-esparse/token"

type (
	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	Identifier struct {
		Name string
	}

	This struct{}

	// ArrayLiteral holds one entry per element; a nil entry is an
	// elision (`[a, , b]`).
	ArrayLiteral struct {
		Elements []Expr
	}

	// Spread is `...expr` in an array literal or an argument list.
	Spread struct {
		Target Expr
	}

	Call struct {
		Callee    Expr
		Arguments []Expr
	}

	New struct {
		Callee    Expr
		Arguments []Expr
	}

	// GetConstField is static member access, `a.b`.
	GetConstField struct {
		Object Expr
		Field  string
	}

	// GetField is computed member access, `a[b]`.
	GetField struct {
		Object Expr
		Field  Expr
	}

	Unary struct {
		Operator token.Token
		Operand  Expr
	}

	Update struct {
		Operator token.Token
		Operand  Expr
		Postfix  bool
	}

	Binary struct {
		Operator token.Token
		Left     Expr
		Right    Expr
	}

	Conditional struct {
		Test       Expr
		Consequent Expr
		Alternate  Expr
	}

	Assign struct {
		Operator token.Token
		Target   Expr
		Value    Expr
	}

	// Sequence is the comma operator, `a, b`.
	Sequence struct {
		Expressions []Expr
	}
)

func (*Identifier) _node()    {}
func (*This) _node()          {}
func (*ArrayLiteral) _node()  {}
func (*Spread) _node()        {}
func (*Call) _node()          {}
func (*New) _node()           {}
func (*GetConstField) _node() {}
func (*GetField) _node()      {}
func (*Unary) _node()         {}
func (*Update) _node()        {}
func (*Binary) _node()        {}
func (*Conditional) _node()   {}
func (*Assign) _node()        {}
func (*Sequence) _node()      {}

func (*Identifier) _expr()    {}
func (*This) _expr()          {}
func (*ArrayLiteral) _expr()  {}
func (*Spread) _expr()        {}
func (*Call) _expr()          {}
func (*New) _expr()           {}
func (*GetConstField) _expr() {}
func (*GetField) _expr()      {}
func (*Unary) _expr()         {}
func (*Update) _expr()        {}
func (*Binary) _expr()        {}
func (*Conditional) _expr()   {}
func (*Assign) _expr()        {}
func (*Sequence) _expr()      {}
