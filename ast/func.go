package ast

type (
	// FunctionExpr is a function expression or the function wrapped by a
	// method definition. Name is empty for anonymous functions.
	FunctionExpr struct {
		Name       string
		Parameters []FormalParameter
		Body       StatementList
	}

	// FormalParameter is one entry of a parameter list. Init is the
	// default value expression, nil when absent. At most one parameter
	// of a list has Rest set, and only in the last position.
	FormalParameter struct {
		Name string
		Init Expr
		Rest bool
	}
)

func (*FunctionExpr) _node() {}
func (*FunctionExpr) _expr() {}
