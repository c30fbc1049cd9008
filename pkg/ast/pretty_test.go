package ast

import "testing"

func TestPrettyDumpsNestedNodes(t *testing.T) {
	tree := Mod(Fn("incr", []string{"n"}, Block(Bin("+", ID("n"), Int(1)))))
	want := "Module\n" +
		"  FunctionDefinition\n" +
		"    Name\tincr\n" +
		"    Name\tn\n" +
		"    BlockExpression\n" +
		"      BinaryExpression\t+\n" +
		"        Identifier\tn\n" +
		"        IntegerLiteral\t1\n"
	if got := Pretty(tree); got != want {
		t.Fatalf("unexpected dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestChildrenOrder(t *testing.T) {
	call := Call("f", Int(1), Str("x"))
	children := call.Children()
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	if id, ok := children[0].(*Identifier); !ok || id.Name != "f" {
		t.Fatalf("expected callee first, got %#v", children[0])
	}
	if _, ok := children[2].(*StringLiteral); !ok {
		t.Fatalf("expected string literal last, got %#v", children[2])
	}

	ifExpr := If(ID("c"), Block(), nil)
	if n := len(ifExpr.Children()); n != 2 {
		t.Fatalf("if without else should have 2 children, got %d", n)
	}
}
