package ast

import "github.com/t14raptor/go-esparse/token"

type (
	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		_stmt()
	}

	ExpressionStatement struct {
		Expression Expr
	}

	BlockStatement struct {
		List StatementList
	}

	EmptyStatement struct{}

	// VariableDeclaration is a var, let, or const statement; Kind holds
	// the declaring token.
	VariableDeclaration struct {
		Kind token.Token
		List []VariableDeclarator
	}

	VariableDeclarator struct {
		Name string
		Init Expr
	}

	IfStatement struct {
		Test       Expr
		Consequent Stmt
		Alternate  Stmt
	}

	WhileStatement struct {
		Test Expr
		Body Stmt
	}

	// ForStatement is the classic three-clause form. Init is nil, a
	// *VariableDeclaration, or an Expr; Test and Update are nil when
	// their clause is empty.
	ForStatement struct {
		Init   Node
		Test   Expr
		Update Expr
		Body   Stmt
	}

	// ForInStatement enumerates Object's keys into Into, which is a
	// single-declarator *VariableDeclaration or an assignable Expr.
	ForInStatement struct {
		Into   Node
		Object Expr
		Body   Stmt
	}

	ReturnStatement struct {
		Argument Expr
	}

	FunctionDeclaration struct {
		Name       string
		Parameters []FormalParameter
		Body       StatementList
	}
)

func (*ExpressionStatement) _node() {}
func (*BlockStatement) _node()      {}
func (*EmptyStatement) _node()      {}
func (*VariableDeclaration) _node() {}
func (*IfStatement) _node()         {}
func (*WhileStatement) _node()      {}
func (*ForStatement) _node()        {}
func (*ForInStatement) _node()      {}
func (*ReturnStatement) _node()     {}
func (*FunctionDeclaration) _node() {}

func (*ExpressionStatement) _stmt() {}
func (*BlockStatement) _stmt()      {}
func (*EmptyStatement) _stmt()      {}
func (*VariableDeclaration) _stmt() {}
func (*IfStatement) _stmt()         {}
func (*WhileStatement) _stmt()      {}
func (*ForStatement) _stmt()        {}
func (*ForInStatement) _stmt()      {}
func (*ReturnStatement) _stmt()     {}
func (*FunctionDeclaration) _stmt() {}
