package ast

import (
	"testing"

	"github.com/hackermdch/giscript/internal/token"
	"github.com/hackermdch/giscript/internal/types"
)

func ident(name string) *Identifier {
	return &Identifier{Tok: token.Token{Type: token.IDENT, Literal: name}, Name: name}
}

func TestProgramString(t *testing.T) {
	prog := &Program{
		Decls: []Decl{
			&EventDecl{
				Tok:  token.Token{Type: token.EVENT, Literal: "event"},
				Name: "OnEntityCreated",
				Body: &Block{Tok: token.Token{Type: token.LBRACE, Literal: "{"}},
			},
		},
	}
	want := "event OnEntityCreated() {\n}\n"
	if got := prog.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBinaryExpressionString(t *testing.T) {
	b := &Binary{
		Tok:   token.Token{Type: token.PLUS, Literal: "+"},
		Op:    "+",
		Left:  &IntLiteral{Tok: token.Token{Type: token.INT, Literal: "1"}, Value: 1},
		Right: &IntLiteral{Tok: token.Token{Type: token.INT, Literal: "2"}, Value: 2},
	}
	want := "(1 + 2)"
	if got := b.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestAssignmentString(t *testing.T) {
	a := &Assignment{
		Tok:   token.Token{Type: token.PLUS_ASSIGN, Literal: "+="},
		Left:  ident("x"),
		Op:    "+=",
		Right: &IntLiteral{Value: 1},
	}
	want := "(x += 1)"
	if got := a.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTernaryString(t *testing.T) {
	tn := &Ternary{Cond: ident("c"), Then: ident("a"), Else: ident("b")}
	want := "(c ? a : b)"
	if got := tn.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMemberDotAndIndexString(t *testing.T) {
	dot := &Member{Target: ident("e"), Name: "health", ExplicitType: &TypeExpr{Name: "int"}}
	if got := dot.String(); got != "e.health:int" {
		t.Fatalf("expected e.health:int, got %q", got)
	}

	idx := &Member{Target: ident("xs"), Index: &IntLiteral{Value: 0}}
	if got := idx.String(); got != "xs[0]" {
		t.Fatalf("expected xs[0], got %q", got)
	}
}

func TestIncrementString(t *testing.T) {
	pre := &Increment{Expr: ident("x"), Pre: true}
	if got := pre.String(); got != "++x" {
		t.Fatalf("expected ++x, got %q", got)
	}
	post := &Increment{Expr: ident("x"), Dec: true}
	if got := post.String(); got != "x--" {
		t.Fatalf("expected x--, got %q", got)
	}
}

func TestVarDefString(t *testing.T) {
	v := &VarDef{
		Type: &TypeExpr{Name: "int"},
		Vars: []Variable{{Name: "a", Init: &IntLiteral{Value: 1}}, {Name: "b"}},
	}
	want := "int a = 1, b;"
	if got := v.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestForEachString(t *testing.T) {
	fe := &ForEach{
		ElemType: &TypeExpr{Name: "int"},
		Name:     "v",
		Iterable: ident("xs"),
		Body:     &Block{},
	}
	want := "foreach (int v : xs) {\n}"
	if got := fe.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTypeExprString(t *testing.T) {
	tests := []struct {
		te   *TypeExpr
		want string
	}{
		{&TypeExpr{Name: "int"}, "int"},
		{&TypeExpr{Name: "guid", GuidKind: "faction"}, "guid<faction>"},
		{&TypeExpr{Name: "list", Elem: &TypeExpr{Name: "int"}}, "list<int>"},
		{&TypeExpr{Name: "map", Key: &TypeExpr{Name: "string"}, Value: &TypeExpr{Name: "int"}}, "map<string,int>"},
		{nil, "void"},
	}
	for _, tt := range tests {
		if got := tt.te.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestTypeHolderGetSetType(t *testing.T) {
	lit := &IntLiteral{Value: 1}
	if lit.HasType() {
		t.Fatalf("expected no type initially")
	}
	lit.SetType(types.TInt())
	if !lit.HasType() {
		t.Fatalf("expected a type after SetType")
	}
	if got := lit.GetType(); got == nil || !got.Equals(types.TInt()) {
		t.Fatalf("expected int, got %v", got)
	}
}
