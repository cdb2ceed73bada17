package autumn

import "testing"

func TestLetStatementString(t *testing.T) {
	stmt := &LetStatement{
		Token: Token{Type: LET, Literal: "let"},
		Name:  &Identifier{Token: Token{Type: IDENT, Literal: "myVar"}, Value: "myVar"},
		Value: &Identifier{Token: Token{Type: IDENT, Literal: "anotherVar"}, Value: "anotherVar"},
	}
	want := "let myVar = anotherVar;"
	if stmt.String() != want {
		t.Fatalf("String() = %q, want %q", stmt.String(), want)
	}
}

func TestFunctionLiteralSharesBodyWithValue(t *testing.T) {
	params := []*Identifier{{Value: "x"}}
	body := &BlockStatement{Token: Token{Type: LBRACE, Literal: "{"}}
	fl := newFunctionLiteral(Token{Type: FUNCTION, Literal: "fn"}, params, body)

	fn := &Function{Params: fl.Params(), Body: fl.Body(), Env: NewEnvironment()}

	if fn.Body != body {
		t.Error("Function.Body must be the same *BlockStatement the AST node holds, not a copy")
	}
	if fn.Params[0] != params[0] {
		t.Error("Function.Params must share the same *Identifier pointers as the AST node")
	}
}

func TestGoldenStringForms(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1 + 2", "(1 + 2)"},
		{"-1", "(-1)"},
		{"!true", "(!true)"},
		{"if (x) { y } else { z }", "if (x) {y} else {z}"},
		{"a[0]", "(a[0])"},
		{`{"a": 1}`, `{a:1}`},
		{"[1, 2]", "[1, 2]"},
		{"fn(x, y) { x }", "fn(x, y) { x }"},
		{"add(1, 2)", "add(1, 2)"},
	}
	for _, c := range cases {
		prog := mustParse(t, c.in)
		if got := prog.String(); got != c.want {
			t.Errorf("parse(%q).String() = %q, want %q", c.in, got, c.want)
		}
	}
}
