package parser

import (
	"errors"
	"testing"

	"ruspy/interpreter-go/pkg/ast"
)

func parseSingle(t *testing.T, src string) ast.Node {
	t.Helper()
	seq, err := ParseExpression(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	if len(seq.Body) != 1 {
		t.Fatalf("parse %q: expected one statement, got %d", src, len(seq.Body))
	}
	return seq.Body[0]
}

func TestParseExpressionsMatchDSL(t *testing.T) {
	cases := []struct {
		src  string
		want ast.Node
	}{
		{"1 + 2 * 3", ast.Bin("+", ast.Int(1), ast.Bin("*", ast.Int(2), ast.Int(3)))},
		{"(1 + 2) * 3", ast.Bin("*", ast.Bin("+", ast.Int(1), ast.Int(2)), ast.Int(3))},
		{"1 - 2 - 3", ast.Bin("-", ast.Bin("-", ast.Int(1), ast.Int(2)), ast.Int(3))},
		{"2 ** 3 ** 2", ast.Bin("**", ast.Int(2), ast.Bin("**", ast.Int(3), ast.Int(2)))},
		{"-2 ** 2", ast.Un("-", ast.Bin("**", ast.Int(2), ast.Int(2)))},
		{"a or b and c", ast.Or(ast.ID("a"), ast.And(ast.ID("b"), ast.ID("c")))},
		{"not a == b", ast.Un("not", ast.Bin("==", ast.ID("a"), ast.ID("b")))},
		{"1 | 2 ^ 3 & 4 << 1", ast.Bin("|", ast.Int(1), ast.Bin("^", ast.Int(2), ast.Bin("&", ast.Int(3), ast.Bin("<<", ast.Int(4), ast.Int(1)))))},
		{"x = y = 3", ast.Assign("x", ast.Assign("y", ast.Int(3)))},
		{"f(1, \"a\")[0]", ast.Index(ast.Call("f", ast.Int(1), ast.Str("a")), ast.Int(0))},
		{"|a, b| a + b", ast.Lam([]string{"a", "b"}, ast.Bin("+", ast.ID("a"), ast.ID("b")))},
		{"[1, 2.5, \"x\\n\"]", ast.Arr(ast.Int(1), ast.NewFloatLiteral("2.5"), ast.Str("x\n"))},
		{"1_000", ast.IntRaw("1_000")},
	}
	for _, tc := range cases {
		got := parseSingle(t, tc.src)
		if ast.Pretty(got) != ast.Pretty(tc.want) {
			t.Fatalf("parse %q:\n%s\nwant:\n%s", tc.src, ast.Pretty(got), ast.Pretty(tc.want))
		}
	}
}

func TestParseIfElseChain(t *testing.T) {
	got := parseSingle(t, "if a { 1 } else if b { 2 } else { 3 }")
	want := ast.If(ast.ID("a"), ast.Block(ast.Int(1)),
		ast.If(ast.ID("b"), ast.Block(ast.Int(2)), ast.Block(ast.Int(3))))
	if ast.Pretty(got) != ast.Pretty(want) {
		t.Fatalf("unexpected tree:\n%s", ast.Pretty(got))
	}
}

func TestParseStatements(t *testing.T) {
	seq, err := ParseExpression(`
		let x: int = 0;
		while x < 3 { x = x + 1 }
		for i in range(3) { println(i) };
		fn twice(f, v: int) -> int { f(f(v)) }
		x
	`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	kinds := []ast.NodeType{ast.NodeLetStatement, ast.NodeWhileLoop, ast.NodeForLoop, ast.NodeFunctionDefinition, ast.NodeIdentifier}
	if len(seq.Body) != len(kinds) {
		t.Fatalf("expected %d statements, got %d", len(kinds), len(seq.Body))
	}
	for i, kind := range kinds {
		if seq.Body[i].NodeType() != kind {
			t.Fatalf("statement %d: got %s, want %s", i, seq.Body[i].NodeType(), kind)
		}
	}
	fn := seq.Body[3].(*ast.FunctionDefinition)
	if fn.ID.Value != "twice" || len(fn.Params) != 2 || fn.Params[1].Value != "v" {
		t.Fatalf("unexpected function definition %s", ast.Pretty(fn))
	}
}

func TestParseEmptySequence(t *testing.T) {
	seq, err := ParseExpression("  // nothing here\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(seq.Body) != 0 {
		t.Fatalf("expected empty body, got %d statements", len(seq.Body))
	}
}

func TestParseModule(t *testing.T) {
	mod, err := ParseModule("fn incr(n: int) { n + 1 }\nlet limit = 10;\nfn main() { println(incr(limit)) }")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(mod.Body) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(mod.Body))
	}
	if mod.Body[1].NodeType() != ast.NodeLetStatement {
		t.Fatalf("expected let statement, got %s", mod.Body[1].NodeType())
	}
}

func TestParseModuleRejectsBareExpressions(t *testing.T) {
	_, err := ParseModule("1 + 1")
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if syntaxErr.Line != 1 {
		t.Fatalf("expected position on line 1, got %+v", syntaxErr)
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{"1 +", "fn () {}", "(1", "if x 1", "let = 2"} {
		_, err := ParseExpression(src)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("parse %q: expected SyntaxError, got %v", src, err)
		}
	}
}

func TestParseStartSymbol(t *testing.T) {
	node, err := Parse("fn f() { 1 }", StartModule)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := node.(*ast.Module); !ok {
		t.Fatalf("expected module root, got %T", node)
	}
	node, err = Parse("1", StartExpression)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := node.(*ast.Sequence); !ok {
		t.Fatalf("expected sequence root, got %T", node)
	}
}

func TestIsIncomplete(t *testing.T) {
	_, err := ParseExpression("fn f() {\n  let x = 1;")
	if !IsIncomplete(err) {
		t.Fatalf("expected unclosed block to be incomplete, got %v", err)
	}
	_, err = ParseExpression("let = 2")
	if IsIncomplete(err) {
		t.Fatalf("expected malformed let to be a hard error, got %v", err)
	}
	if IsIncomplete(nil) {
		t.Fatalf("nil error reported as incomplete")
	}
}

func TestParseRequiresSeparatorBetweenExpressions(t *testing.T) {
	cases := []struct {
		src  string
		line int
	}{
		{src: "1 2", line: 1},
		{src: "let x = 1\nx", line: 2},
		{src: "f(1)\n\ng(2)", line: 3},
	}
	for _, tc := range cases {
		_, err := ParseExpression(tc.src)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("parse %q: expected SyntaxError, got %v", tc.src, err)
		}
		if syntaxErr.Line != tc.line {
			t.Fatalf("parse %q: expected error on line %d, got %+v", tc.src, tc.line, syntaxErr)
		}
	}
	if _, err := ParseModule("let a = 1\nfn f() { a }"); err == nil {
		t.Fatalf("expected unterminated module let to fail")
	}
	seq, err := ParseExpression("while c { 1 }\nif c { 2 }\n{ 3 }\nx = 1;\nx")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(seq.Body) != 5 {
		t.Fatalf("expected 5 statements, got %d", len(seq.Body))
	}
}

func TestParseMalformedNumbers(t *testing.T) {
	for _, src := range []string{"12e", "3pi", "1true", "7_", "x = 2abc;"} {
		_, err := ParseExpression(src)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("parse %q: expected SyntaxError, got %v", src, err)
		}
	}
}

func TestInvalidStringLiteralHasPosition(t *testing.T) {
	for _, src := range []string{"let s = 1;\n  \"bad \\q\"", "let s = 1;\n  \"line\nbreak\""} {
		_, err := ParseExpression(src)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("parse %q: expected SyntaxError, got %v", src, err)
		}
		if syntaxErr.Line != 2 || syntaxErr.Column != 3 {
			t.Fatalf("parse %q: expected position 2:3, got %+v", src, syntaxErr)
		}
	}
}
