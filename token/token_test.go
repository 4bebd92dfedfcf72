package token_test

import (
	"testing"

	"github.com/t14raptor/go-esparse/token"
)

func TestTokenStrings(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Plus, "+"},
		{token.Exponent, "**"},
		{token.UnsignedShiftRightAssign, ">>>="},
		{token.StrictNotEqual, "!=="},
		{token.Arrow, "=>"},
		{token.Ellipsis, "..."},
		{token.If, "if"},
		{token.InstanceOf, "instanceof"},
		{token.Let, "let"},
		{token.Identifier, "Identifier"},
		{token.Eof, "Eof"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String of %d = %q; want %q", int(tt.tok), got, tt.want)
		}
	}
}

func TestTokenStringFallbacks(t *testing.T) {
	if got := token.Token(0).String(); got != "UNKNOWN" {
		t.Errorf("String of zero token = %q; want UNKNOWN", got)
	}
	if got := token.Token(9999).String(); got != "token(9999)" {
		t.Errorf("String of out-of-range token = %q; want token(9999)", got)
	}
}

func TestLiteralKeyword(t *testing.T) {
	tests := []struct {
		literal string
		want    token.Token
		strict  bool
	}{
		{"var", token.Var, false},
		{"function", token.Function, false},
		{"instanceof", token.InstanceOf, false},
		{"true", token.Boolean, false},
		{"false", token.Boolean, false},
		{"null", token.Null, false},
		{"let", token.Let, true},
		{"await", token.Await, false},
		{"yield", token.Yield, false},
		{"enum", token.Keyword, false},
		{"export", token.Keyword, false},
		{"import", token.Keyword, false},
		{"notakeyword", 0, false},
		{"Var", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, strict := token.LiteralKeyword(tt.literal)
		if got != tt.want || strict != tt.strict {
			t.Errorf("LiteralKeyword(%q) = %v, %v; want %v, %v", tt.literal, got, strict, tt.want, tt.strict)
		}
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want int
	}{
		{token.LogicalOr, 1},
		{token.LogicalAnd, 2},
		{token.Or, 3},
		{token.ExclusiveOr, 4},
		{token.And, 5},
		{token.Equal, 6},
		{token.StrictNotEqual, 6},
		{token.Less, 7},
		{token.GreaterOrEqual, 7},
		{token.InstanceOf, 7},
		{token.In, 7},
		{token.ShiftLeft, 8},
		{token.UnsignedShiftRight, 8},
		{token.Plus, 9},
		{token.Minus, 9},
		{token.Multiply, 10},
		{token.Slash, 10},
		{token.Remainder, 10},
		{token.Exponent, 11},
		// Not binary operators.
		{token.Assign, 0},
		{token.Not, 0},
		{token.Increment, 0},
		{token.Comma, 0},
		{token.Identifier, 0},
	}
	for _, tt := range tests {
		if got := tt.tok.Precedence(true); got != tt.want {
			t.Errorf("Precedence of %q = %d; want %d", tt.tok, got, tt.want)
		}
	}
}

func TestInOperatorPrecedenceGate(t *testing.T) {
	if got := token.In.Precedence(false); got != 0 {
		t.Errorf("Precedence of in with the operator disabled = %d; want 0", got)
	}
	if got := token.In.Precedence(true); got != 7 {
		t.Errorf("Precedence of in with the operator enabled = %d; want 7", got)
	}
	// Other relational operators ignore the parameter.
	if got := token.InstanceOf.Precedence(false); got != 7 {
		t.Errorf("Precedence of instanceof = %d; want 7", got)
	}
}

func TestID(t *testing.T) {
	for _, tok := range []token.Token{token.Identifier, token.Keyword, token.Boolean, token.Null, token.If, token.Function, token.InstanceOf, token.Yield} {
		if !token.ID(tok) {
			t.Errorf("ID(%q) = false; want true", tok)
		}
	}
	for _, tok := range []token.Token{token.Plus, token.String, token.Number, token.Eof, token.RightBrace, token.Semicolon} {
		if token.ID(tok) {
			t.Errorf("ID(%q) = true; want false", tok)
		}
	}
}

func TestUnreservedWord(t *testing.T) {
	for _, tok := range []token.Token{token.Let, token.Await, token.Yield} {
		if !token.UnreservedWord(tok) {
			t.Errorf("UnreservedWord(%q) = false; want true", tok)
		}
	}
	for _, tok := range []token.Token{token.If, token.Var, token.InstanceOf, token.Identifier, token.Keyword} {
		if token.UnreservedWord(tok) {
			t.Errorf("UnreservedWord(%q) = true; want false", tok)
		}
	}
}
