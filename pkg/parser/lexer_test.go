package parser

import "testing"

func TestLexIntegerLiterals(t *testing.T) {
	for _, src := range []string{"42", "0_0", "000", "01", "1_000_000", "0__0__0", "123456789"} {
		tokens, err := Lex(src)
		if err != nil {
			t.Fatalf("lex %q: %v", src, err)
		}
		if len(tokens) != 1 {
			t.Fatalf("lex %q: expected a single token, got %v", src, tokens)
		}
		if tokens[0].Kind != "Int" || tokens[0].Text != src {
			t.Fatalf("lex %q: expected Int token, got %+v", src, tokens[0])
		}
	}
}

func TestLexRejectsMalformedIntegers(t *testing.T) {
	cases := []struct {
		src   string
		kinds []string
	}{
		{src: "_1", kinds: []string{"Name"}},
		{src: "__1", kinds: []string{"Name"}},
		{src: "12A", kinds: []string{"InvalidNumber"}},
		{src: "12e", kinds: []string{"InvalidNumber"}},
		{src: "3pi", kinds: []string{"InvalidNumber"}},
		{src: "1true", kinds: []string{"InvalidNumber"}},
		{src: "7_", kinds: []string{"InvalidNumber"}},
		{src: "1_000_ + 1", kinds: []string{"InvalidNumber", "Operator", "Int"}},
		{src: "1e5 1_0", kinds: []string{"Float", "Int"}},
	}
	for _, tc := range cases {
		tokens, err := Lex(tc.src)
		if err != nil {
			t.Fatalf("lex %q: %v", tc.src, err)
		}
		if len(tokens) != len(tc.kinds) {
			t.Fatalf("lex %q: expected %d tokens, got %v", tc.src, len(tc.kinds), tokens)
		}
		for i, kind := range tc.kinds {
			if tokens[i].Kind != kind {
				t.Fatalf("lex %q: token %d kind %s, want %s", tc.src, i, tokens[i].Kind, kind)
			}
		}
	}
}

func TestLexOperatorsAndComments(t *testing.T) {
	tokens, err := Lex("a ** -b // trailing\n<= \"s\\\"q\" 1.5e3")
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	want := []Token{
		{Kind: "Name", Text: "a"},
		{Kind: "Operator", Text: "**"},
		{Kind: "Operator", Text: "-"},
		{Kind: "Name", Text: "b"},
		{Kind: "Operator", Text: "<="},
		{Kind: "String", Text: `"s\"q"`},
		{Kind: "Float", Text: "1.5e3"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), tokens)
	}
	for i := range want {
		if tokens[i].Kind != want[i].Kind || tokens[i].Text != want[i].Text {
			t.Fatalf("token %d: got %+v, want %+v", i, tokens[i], want[i])
		}
	}
	if tokens[4].Pos.Line != 2 {
		t.Fatalf("expected second-line position, got %+v", tokens[4].Pos)
	}
}

func TestLexUnknownCharacter(t *testing.T) {
	tokens, err := Lex("1 @ 2")
	if err == nil {
		t.Fatalf("expected lexing error")
	}
	if len(tokens) != 1 || tokens[0].Text != "1" {
		t.Fatalf("expected tokens read before the failure, got %v", tokens)
	}
}
