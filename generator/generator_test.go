package generator

import (
	"strings"
	"testing"

	"github.com/t14raptor/go-esparse/ast"
	"github.com/t14raptor/go-esparse/parser"
	"github.com/t14raptor/go-esparse/token"
)

// generateNoIndent parses src and renders it back on a single line.
func generateNoIndent(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", src, err)
	}
	out := Generate(prog)
	out = strings.ReplaceAll(out, "    ", "")
	out = strings.ReplaceAll(out, "\n", "")
	return out
}

// assertStable regenerates src twice and requires identical output.
func assertStable(t *testing.T, src string) {
	t.Helper()
	first, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", src, err)
	}
	out1 := Generate(first)
	second, err := parser.ParseFile(out1)
	if err != nil {
		t.Fatalf("Failed to reparse generated output:\n%s\nError: %v", out1, err)
	}
	if out2 := Generate(second); out1 != out2 {
		t.Errorf("unstable output for %q:\nfirst:\n%s\nsecond:\n%s", src, out1, out2)
	}
}

func TestGenerateStatements(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"var x = 1;", "var x = 1;"},
		{"var a = 1, b, c = 2;", "var a = 1, b, c = 2;"},
		{"let x = 1;", "let x = 1;"},
		{"const x = 1;", "const x = 1;"},
		{"a = b + c;", "a = b + c;"},
		{"a += 1;", "a += 1;"},
		{"f(a, b);", "f(a, b);"},
		{"a.b.c;", "a.b.c;"},
		{"a[0][1];", "a[0][1];"},
		{"f(a)(b)[c].d;", "f(a)(b)[c].d;"},
		{"new X;", "new X;"},
		{"new X();", "new X();"},
		{"new X(a, b);", "new X(a, b);"},
		{"new X().m();", "new X().m();"},
		{"x = a ? b : c;", "x = a ? b : c;"},
		{"x = a || b && c;", "x = a || b && c;"},
		{"x = [1, 2, 3];", "x = [1, 2, 3];"},
		{"x = [];", "x = [];"},
		{"x = [1, , 3];", "x = [1, , 3];"},
		{"x = [...xs];", "x = [...xs];"},
		{"a, b, c;", "a, b, c;"},
		{";", ";"},
		{"{ a(); }", "{a();}"},
		{"a++;", "a++;"},
		{"--b;", "--b;"},
		{"!a;", "!a;"},
		{"typeof a;", "typeof a;"},
		{"void 0;", "void 0;"},
		{"delete a.b;", "delete a.b;"},
		{"x = -1;", "x = -1;"},
		{"x = 'a';", `x = "a";`},
		{"x = /ab+/g;", "x = /ab+/g;"},
		{"x = 0xFF;", "x = 0xFF;"},
		{"x = 1e3;", "x = 1e3;"},
		{"x = true;", "x = true;"},
		{"x = null;", "x = null;"},
		{"this.x = 1;", "this.x = 1;"},
		{"if (a) b();", "if (a) {b();}"},
		{"if (a) b(); else c();", "if (a) {b();} else {c();}"},
		{"if (a) b(); else if (c) d();", "if (a) {b();} else if (c) {d();}"},
		{"while (a) b();", "while (a) {b();}"},
		{"while (a) ;", "while (a) ;"},
		{"for (var i = 0; i < 10; i++) f(i);", "for (var i = 0; i < 10; i++) {f(i);}"},
		{"for (;;) ;", "for (; ; ) ;"},
		{"for (k in o) f(k);", "for (k in o) {f(k);}"},
		{"for (var k in o) ;", "for (var k in o) ;"},
		{"function f() {}", "function f() {}"},
		{"function f(a, b) { return a + b; }", "function f(a, b) {return a + b;}"},
		{"function f(a = 1, ...rest) {}", "function f(a = 1, ...rest) {}"},
		{"function f() { return; }", "function f() {return;}"},
		{"var f = function() {};", "var f = function () {};"},
		{"var f = function g() {};", "var f = function g() {};"},
	}
	for _, tt := range tests {
		if got := generateNoIndent(t, tt.src); got != tt.want {
			t.Errorf("generate(%q) = %q; want %q", tt.src, got, tt.want)
		}
	}
}

func TestGenerateObjects(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x = {};", "x = {};"},
		{"x = {a: 1};", "x = {a: 1};"},
		{"x = {a: 1, b: 2};", "x = {a: 1,b: 2};"},
		{"x = {m() {}};", "x = {m() {}};"},
		{"x = {m(a, b) { return a; }};", "x = {m(a, b) {return a;}};"},
		{"x = {get p() { return 1; }};", "x = {get p() {return 1;}};"},
		{"x = {set p(v) {}};", "x = {set p(v) {}};"},
		{"x = {get() {}};", "x = {get() {}};"},
		{"x = {...rest};", "x = {...rest};"},
		{"x = {a: {b: 1}};", "x = {a: {b: 1}};"},
		{"x = {if: 1, var: 2};", "x = {if: 1,var: 2};"},
		{"x = {'with space': 1};", `x = {"with space": 1};`},
		{"x = {42: y};", `x = {"42": y};`},
		{"x = {'': 0};", `x = {"": 0};`},
		{"x = {get 'two words'() {}};", `x = {get "two words"() {}};`},
	}
	for _, tt := range tests {
		if got := generateNoIndent(t, tt.src); got != tt.want {
			t.Errorf("generate(%q) = %q; want %q", tt.src, got, tt.want)
		}
	}
}

func TestGenerateParentheses(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		// Precedence demands them.
		{"(a + b) * c;", "(a + b) * c;"},
		{"a * (b + c);", "a * (b + c);"},
		{"(a = b) + c;", "(a = b) + c;"},
		{"(a, b) + c;", "(a, b) + c;"},
		{"-(a + b);", "-(a + b);"},
		{"typeof (a + b) === 'x';", `typeof (a + b) === "x";`},
		// Same precedence, wrong side.
		{"a - (b - c);", "a - (b - c);"},
		{"a - b - c;", "a - b - c;"},
		{"(a ** b) ** c;", "(a ** b) ** c;"},
		{"a ** b ** c;", "a ** b ** c;"},
		// Members and calls of composite receivers.
		{"(a + b).c;", "(a + b).c;"},
		{"(a = b).c;", "(a = b).c;"},
		{"(new X).m();", "(new X).m();"},
		{"new (f());", "new (f());"},
		{"(function() {})();", "(function () {})();"},
		{"(1).toString;", "(1).toString;"},
		// Conditional and sequence nesting.
		{"(a ? b : c) ? d : e;", "(a ? b : c) ? d : e;"},
		{"a ? b : c ? d : e;", "a ? b : c ? d : e;"},
		{"x = (a, b);", "x = (a, b);"},
		{"f((a, b));", "f((a, b));"},
		{"f((a, b), c);", "f((a, b), c);"},
		// Statements must not start with { or function.
		{"({a: 1});", "({a: 1});"},
		{"({}).x;", "({}).x;"},
		{"(function f() {});", "(function f() {});"},
		// Prefix operators must not glue together.
		{"x = - --a;", "x = -(--a);"},
		{"x = -(-a);", "x = -(-a);"},
	}
	for _, tt := range tests {
		if got := generateNoIndent(t, tt.src); got != tt.want {
			t.Errorf("generate(%q) = %q; want %q", tt.src, got, tt.want)
		}
	}
}

func TestGenerateIndentation(t *testing.T) {
	got := Generate(mustParseProgram(t, "function f() { if (a) { return 1; } }"))
	want := "function f() {\n" +
		"    if (a) {\n" +
		"        return 1;\n" +
		"    }\n" +
		"}\n"
	if got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateStringEscapes(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{"a\nb", `"a\nb"`},
		{"tab\there", `"tab\there"`},
		{`back\slash`, `"back\\slash"`},
		{"\x01", `"\x01"`},
		{"\u2028", `"\u2028"`},
		{"\u2029", `"\u2029"`},
	}
	for _, tt := range tests {
		if got := Generate(&ast.StringLiteral{Value: tt.value}); got != tt.want {
			t.Errorf("quote(%q) = %s; want %s", tt.value, got, tt.want)
		}
	}
}

func TestGenerateConstructedMembers(t *testing.T) {
	// Receivers built directly, without parser help, still wrap.
	sum := &ast.Binary{
		Operator: token.Plus,
		Left:     &ast.Identifier{Name: "a"},
		Right:    &ast.Identifier{Name: "b"},
	}
	if got := Generate(&ast.GetConstField{Object: sum, Field: "c"}); got != "(a + b).c" {
		t.Errorf("member of binary = %q; want (a + b).c", got)
	}

	num := &ast.NumberLiteral{Value: 1}
	if got := Generate(&ast.GetConstField{Object: num, Field: "toString"}); got != "(1).toString" {
		t.Errorf("member of number = %q; want (1).toString", got)
	}
	if got := Generate(&ast.GetField{Object: num, Field: &ast.NumberLiteral{Value: 0}}); got != "1[0]" {
		t.Errorf("subscript of number = %q; want 1[0]", got)
	}
}

func TestGenerateRoundTripStability(t *testing.T) {
	sources := []string{
		"f(a)(b)[c].d;",
		"new new X()(a);",
		"x = {a: 1, m() { return this.a; }, get p() {}, set p(v) {}};",
		"x = {get() { return 1; }, 'with space': 2, 42: y};",
		"x = [1, , [2, 3], ...xs,];",
		"var f = function g(a = {b: 1}, ...rest) { return rest; };",
		"for (var i = 0, j = n; i < j; i++, j--) { swap(i, j); }",
		"for (var a = b in c) ;",
		"a\nb\nc",
		"x = 2 ** 3 ** 2;",
		"x = (2 ** 3) ** 2;",
		"if (a) if (b) c(); else d();",
		"x = - - -a;",
		"x = 'quotes \" and \\\\ mix';",
		"({a: 1}).a++;",
		"x = a in b;",
		"while (x--) f(x);",
	}
	for _, src := range sources {
		assertStable(t, src)
	}
}

func TestGenerateDump(t *testing.T) {
	got := Dump(mustParseProgram(t, "x = f(1);"))
	want := "Program\n" +
		"  ExpressionStatement\n" +
		"    Assign =\n" +
		"      Identifier x\n" +
		"      Call\n" +
		"        Identifier f\n" +
		"        Number 1\n"
	if got != want {
		t.Errorf("dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateDumpShapes(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"var x = 1;", []string{"VariableDeclaration var", "Declarator x", "Number 1"}},
		{"x = [1, , 2];", []string{"Array", "<hole>"}},
		{"x = {get p() {}};", []string{"Object", "Method get p"}},
		{"function f(a, ...r) {}", []string{"FunctionDeclaration f", "Parameter a", "Rest r"}},
		{"for (k in o) ;", []string{"ForIn", "Identifier k", "Identifier o", "EmptyStatement"}},
		{"a++;", []string{"Update postfix ++"}},
		{"x = a ? b : c;", []string{"Conditional"}},
		{"x = /ab/g;", []string{"RegExp /ab/g"}},
	}
	for _, tt := range tests {
		got := Dump(mustParseProgram(t, tt.src))
		for _, want := range tt.want {
			if !strings.Contains(got, want) {
				t.Errorf("dump of %q misses %q:\n%s", tt.src, want, got)
			}
		}
	}
}

func mustParseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", src, err)
	}
	return prog
}
