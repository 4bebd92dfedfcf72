package parser_test

import (
	"testing"

	"github.com/t14raptor/go-esparse/ast"
)

// ===========================================================================
// FUNCTION TESTS
// ===========================================================================

func TestFunctionDeclarationAST(t *testing.T) {
	p := mustParse(t, "function add(a, b) { return a + b; }")
	fn := firstStmt(p, 0).(*ast.FunctionDeclaration)

	if fn.Name != "add" {
		t.Errorf("name = %q; want add", fn.Name)
	}
	if got := len(fn.Parameters); got != 2 {
		t.Fatalf("parameter count = %d; want 2", got)
	}
	if fn.Parameters[0].Name != "a" || fn.Parameters[1].Name != "b" {
		t.Errorf("parameters = %q, %q; want a, b", fn.Parameters[0].Name, fn.Parameters[1].Name)
	}
	if got := len(fn.Body); got != 1 {
		t.Errorf("body statement count = %d; want 1", got)
	}
}

func TestFunctionDeclarationRequiresName(t *testing.T) {
	mustFail(t, "function () {}")
	mustFail(t, "function;")
}

func TestFunctionExpressionAST(t *testing.T) {
	p := mustParse(t, "var f = function(x) { return x; };")
	fn := initializerExpr(firstStmt(p, 0)).(*ast.FunctionExpr)

	if fn.Name != "" {
		t.Errorf("name = %q; want empty", fn.Name)
	}
	if got := len(fn.Parameters); got != 1 {
		t.Errorf("parameter count = %d; want 1", got)
	}
}

func TestNamedFunctionExpressionAST(t *testing.T) {
	p := mustParse(t, "var f = function g() {};")
	fn := initializerExpr(firstStmt(p, 0)).(*ast.FunctionExpr)

	if fn.Name != "g" {
		t.Errorf("name = %q; want g", fn.Name)
	}
}

func TestImmediatelyInvokedFunctionAST(t *testing.T) {
	p := mustParse(t, "(function() { return 1; })();")
	call := exprOf(firstStmt(p, 0)).(*ast.Call)

	if _, ok := call.Callee.(*ast.FunctionExpr); !ok {
		t.Errorf("callee type = %T; want *ast.FunctionExpr", call.Callee)
	}
}

func TestEmptyFunctionBodyAST(t *testing.T) {
	p := mustParse(t, "function f() {}")
	fn := firstStmt(p, 0).(*ast.FunctionDeclaration)

	if fn.Body == nil {
		t.Fatal("body is nil; want empty list")
	}
	if got := len(fn.Body); got != 0 {
		t.Errorf("body statement count = %d; want 0", got)
	}
}

func TestNestedFunctionsAST(t *testing.T) {
	p := mustParse(t, `
		function outer() {
			function inner() { return 1; }
			return inner();
		}
	`)
	outer := firstStmt(p, 0).(*ast.FunctionDeclaration)

	if got := len(outer.Body); got != 2 {
		t.Fatalf("outer body statement count = %d; want 2", got)
	}
	inner := outer.Body[0].(*ast.FunctionDeclaration)
	if inner.Name != "inner" {
		t.Errorf("inner name = %q; want inner", inner.Name)
	}
}

// ---------------------------------------------------------------------------
// Formal parameters
// ---------------------------------------------------------------------------

func TestEmptyParameterListAST(t *testing.T) {
	p := mustParse(t, "function f() {}")
	fn := firstStmt(p, 0).(*ast.FunctionDeclaration)

	if fn.Parameters == nil {
		t.Fatal("parameters is nil; want empty list")
	}
	if got := len(fn.Parameters); got != 0 {
		t.Errorf("parameter count = %d; want 0", got)
	}
}

func TestDefaultParametersAST(t *testing.T) {
	p := mustParse(t, "function f(a, b = 1, c = a + b) {}")
	fn := firstStmt(p, 0).(*ast.FunctionDeclaration)

	if fn.Parameters[0].Init != nil {
		t.Errorf("a default = %T; want nil", fn.Parameters[0].Init)
	}
	if got := numberValue(t, fn.Parameters[1].Init); got != 1 {
		t.Errorf("b default = %v; want 1", got)
	}
	if _, ok := fn.Parameters[2].Init.(*ast.Binary); !ok {
		t.Errorf("c default type = %T; want *ast.Binary", fn.Parameters[2].Init)
	}
}

func TestRestParameterAST(t *testing.T) {
	p := mustParse(t, "function f(a, ...rest) {}")
	fn := firstStmt(p, 0).(*ast.FunctionDeclaration)

	if got := len(fn.Parameters); got != 2 {
		t.Fatalf("parameter count = %d; want 2", got)
	}
	if fn.Parameters[0].Rest {
		t.Error("a marked rest; want plain")
	}
	last := fn.Parameters[1]
	if !last.Rest || last.Name != "rest" {
		t.Errorf("last = %q rest=%v; want rest parameter named rest", last.Name, last.Rest)
	}
}

func TestOnlyRestParameterAST(t *testing.T) {
	p := mustParse(t, "function f(...args) {}")
	fn := firstStmt(p, 0).(*ast.FunctionDeclaration)

	if got := len(fn.Parameters); got != 1 {
		t.Fatalf("parameter count = %d; want 1", got)
	}
	if !fn.Parameters[0].Rest {
		t.Error("parameter not marked rest")
	}
}

func TestComplexDefaultExpressionsAST(t *testing.T) {
	p := mustParse(t, "function f(a = {b: 1}, c = [1, 2], d = g()) {}")
	fn := firstStmt(p, 0).(*ast.FunctionDeclaration)

	if _, ok := fn.Parameters[0].Init.(*ast.Object); !ok {
		t.Errorf("a default type = %T; want *ast.Object", fn.Parameters[0].Init)
	}
	if _, ok := fn.Parameters[1].Init.(*ast.ArrayLiteral); !ok {
		t.Errorf("c default type = %T; want *ast.ArrayLiteral", fn.Parameters[1].Init)
	}
	if _, ok := fn.Parameters[2].Init.(*ast.Call); !ok {
		t.Errorf("d default type = %T; want *ast.Call", fn.Parameters[2].Init)
	}
}

func TestParameterListErrors(t *testing.T) {
	mustFail(t, "function f(...r, b) {}")
	mustFail(t, "function f(...r = 1) {}")
	mustFail(t, "function f(a,) {}")
	mustFail(t, "function f(a b) {}")
	mustFail(t, "function f(1) {}")
	mustFail(t, "function f(a.b) {}")
}

func TestMethodParameterFormsAST(t *testing.T) {
	obj := objectOf(t, "{m(a = 1, ...rest) {}}")
	method := obj.Properties[0].(*ast.MethodDefinition)

	params := method.Function.Parameters
	if got := len(params); got != 2 {
		t.Fatalf("parameter count = %d; want 2", got)
	}
	if params[0].Init == nil {
		t.Error("a default is nil; want 1")
	}
	if !params[1].Rest {
		t.Error("rest not marked")
	}
}
