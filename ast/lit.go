package ast

type (
	BooleanLiteral struct {
		Value bool
	}

	NullLiteral struct{}

	NumberLiteral struct {
		// Note: NaN should not be stored here, use an identifier instead.
		Value float64

		Raw string
	}

	RegExpLiteral struct {
		Pattern string
		Flags   string
	}

	StringLiteral struct {
		Value string
	}
)

func (*BooleanLiteral) _node() {}
func (*NullLiteral) _node()    {}
func (*NumberLiteral) _node()  {}
func (*RegExpLiteral) _node()  {}
func (*StringLiteral) _node()  {}

func (*BooleanLiteral) _expr() {}
func (*NullLiteral) _expr()    {}
func (*NumberLiteral) _expr()  {}
func (*RegExpLiteral) _expr()  {}
func (*StringLiteral) _expr()  {}
