package ast

// MethodKind distinguishes the method forms of an object literal.
type MethodKind string

const (
	MethodKindGet      MethodKind = "get"
	MethodKindSet      MethodKind = "set"
	MethodKindOrdinary MethodKind = "ordinary"
)

type (
	// Object is an object literal. Properties preserves source order,
	// which is semantically meaningful to later consumers.
	Object struct {
		Properties []PropertyDefinition
	}

	// All object literal entries implement the PropertyDefinition
	// interface.
	PropertyDefinition interface {
		Node
		_propertyDefinition()
	}

	// Property is a `key: value` entry.
	Property struct {
		Key   string
		Value Expr
	}

	// MethodDefinition is a `name() {}`, `get name() {}` or
	// `set name(v) {}` entry. Function is always anonymous.
	MethodDefinition struct {
		Kind     MethodKind
		Key      string
		Function *FunctionExpr
	}

	// SpreadObject is a `...expr` entry.
	SpreadObject struct {
		Target Expr
	}
)

func (*Object) _node()           {}
func (*Property) _node()         {}
func (*MethodDefinition) _node() {}
func (*SpreadObject) _node()     {}

func (*Object) _expr() {}

func (*Property) _propertyDefinition()         {}
func (*MethodDefinition) _propertyDefinition() {}
func (*SpreadObject) _propertyDefinition()     {}
