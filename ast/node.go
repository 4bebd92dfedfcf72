package ast

// Node is implemented by every node in the syntax tree. Nodes are built
// bottom-up during parsing and never mutated afterwards; each node is owned
// by exactly one parent and there are no back references.
type Node interface {
	_node()
}

// StatementList is the body of a program, block, or function.
type StatementList []Stmt

type Program struct {
	Body StatementList
}

func (*Program) _node() {}
