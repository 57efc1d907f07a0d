package lexer

import (
	"testing"

	"github.com/hackermdch/giscript/internal/token"
)

func TestNextTokenBasic(t *testing.T) {
	input := `event OnEnter(entity e) {
		var x = 1 + 2 * (3 - 4) / 5 % 6;
		x += 1; x -= 1; x *= 2; x /= 2;
		if (x == 1 && x != 2 || x < 3) {
			x++;
		} else {
			x--;
		}
		string s = "hi\nthere \"quoted\"";
	}`

	tests := []struct {
		wantType token.Type
		wantLit  string
	}{
		{token.EVENT, "event"},
		{token.IDENT, "OnEnter"},
		{token.LPAREN, "("},
		{token.ENTITY_TYPE, "entity"},
		{token.IDENT, "e"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.VAR, "var"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.INT, "1"},
		{token.PLUS, "+"},
		{token.INT, "2"},
		{token.STAR, "*"},
		{token.LPAREN, "("},
		{token.INT, "3"},
		{token.MINUS, "-"},
		{token.INT, "4"},
		{token.RPAREN, ")"},
		{token.SLASH, "/"},
		{token.INT, "5"},
		{token.PERCENT, "%"},
		{token.INT, "6"},
		{token.SEMI, ";"},
		{token.IDENT, "x"},
		{token.PLUS_ASSIGN, "+="},
		{token.INT, "1"},
		{token.SEMI, ";"},
		{token.IDENT, "x"},
		{token.MINUS_ASSIGN, "-="},
		{token.INT, "1"},
		{token.SEMI, ";"},
		{token.IDENT, "x"},
		{token.STAR_ASSIGN, "*="},
		{token.INT, "2"},
		{token.SEMI, ";"},
		{token.IDENT, "x"},
		{token.SLASH_ASSIGN, "/="},
		{token.INT, "2"},
		{token.SEMI, ";"},
		{token.IF, "if"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.EQ, "=="},
		{token.INT, "1"},
		{token.ANDAND, "&&"},
		{token.IDENT, "x"},
		{token.NEQ, "!="},
		{token.INT, "2"},
		{token.OROR, "||"},
		{token.IDENT, "x"},
		{token.LT, "<"},
		{token.INT, "3"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"},
		{token.INC, "++"},
		{token.SEMI, ";"},
		{token.RBRACE, "}"},
		{token.ELSE, "else"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"},
		{token.DEC, "--"},
		{token.SEMI, ";"},
		{token.RBRACE, "}"},
		{token.STRING_TYPE, "string"},
		{token.IDENT, "s"},
		{token.ASSIGN, "="},
		{token.STRING, "hi\nthere \"quoted\""},
		{token.SEMI, ";"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Fatalf("test[%d]: type wrong. expected=%s, got=%s (%q)", i, tt.wantType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.wantLit {
			t.Fatalf("test[%d]: literal wrong. expected=%q, got=%q", i, tt.wantLit, tok.Literal)
		}
	}
}

func TestNextTokenShiftOperators(t *testing.T) {
	tests := []struct {
		input    string
		wantType token.Type
	}{
		{"<<", token.SHL},
		{">>", token.SHR},
		{">>>", token.USHR},
		{"<=", token.LE},
		{">=", token.GE},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Errorf("input %q: expected %s, got %s", tt.input, tt.wantType, tok.Type)
		}
		if eof := l.NextToken(); eof.Type != token.EOF {
			t.Errorf("input %q: expected single token, trailing %s", tt.input, eof.Type)
		}
	}
}

func TestNextTokenNumbers(t *testing.T) {
	tests := []struct {
		input    string
		wantType token.Type
		wantLit  string
	}{
		{"123", token.INT, "123"},
		{"0", token.INT, "0"},
		{"1.5", token.FLOAT, "1.5"},
		{"1.5e10", token.FLOAT, "1.5e10"},
		{"1.5e+10", token.FLOAT, "1.5e+10"},
		{"1.5e-10", token.FLOAT, "1.5e-10"},
		{"1e5", token.FLOAT, "1e5"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.wantType || tok.Literal != tt.wantLit {
			t.Errorf("input %q: expected (%s, %q), got (%s, %q)", tt.input, tt.wantType, tt.wantLit, tok.Type, tok.Literal)
		}
	}
}

func TestNextTokenNumberDotNotFollowedByDigit(t *testing.T) {
	// A '.' after a number is only consumed as part of the literal when a
	// digit follows; "1.e" is therefore INT "1", DOT, IDENT "e" rather
	// than a malformed float.
	l := New("1.e")
	tok := l.NextToken()
	if tok.Type != token.INT || tok.Literal != "1" {
		t.Fatalf("expected INT '1', got %s %q", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.DOT {
		t.Fatalf("expected DOT, got %s %q", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "e" {
		t.Fatalf("expected IDENT 'e', got %s %q", tok.Type, tok.Literal)
	}
}

func TestNextTokenIntegerFollowedByExponentLetter(t *testing.T) {
	// "5e" with no digits after 'e' and no following '+'/'-' digit is not
	// an exponent; the lexer must rewind to before 'e'.
	l := New("5e")
	tok := l.NextToken()
	if tok.Type != token.INT || tok.Literal != "5" {
		t.Fatalf("expected INT '5', got %s %q", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "e" {
		t.Fatalf("expected IDENT 'e', got %s %q", tok.Type, tok.Literal)
	}
}

func TestNextTokenKeywords(t *testing.T) {
	src := "event function global var if else switch case default while for foreach break return null true false this int float bool string entity vec guid list map"
	wantTypes := []token.Type{
		token.EVENT, token.FUNCTION, token.GLOBAL, token.VAR, token.IF, token.ELSE,
		token.SWITCH, token.CASE, token.DEFAULT, token.WHILE, token.FOR, token.FOREACH,
		token.BREAK, token.RETURN, token.NULL, token.TRUE, token.FALSE, token.THIS,
		token.INT_TYPE, token.FLOAT_TYPE, token.BOOL_TYPE, token.STRING_TYPE,
		token.ENTITY_TYPE, token.VEC_TYPE, token.GUID_TYPE, token.LIST_TYPE, token.MAP_TYPE,
	}
	l := New(src)
	for i, want := range wantTypes {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("keyword[%d]: expected %s, got %s (%q)", i, want, tok.Type, tok.Literal)
		}
	}
}

func TestNextTokenIdentifierNotKeywordPrefix(t *testing.T) {
	l := New("intValue iffy forEach")
	for _, want := range []string{"intValue", "iffy", "forEach"} {
		tok := l.NextToken()
		if tok.Type != token.IDENT || tok.Literal != want {
			t.Fatalf("expected IDENT %q, got %s %q", want, tok.Type, tok.Literal)
		}
	}
}

func TestStringEscapesOnlyQuoteAndNewline(t *testing.T) {
	// Per the language's escape rule, \t is not a recognized escape and
	// passes through as a literal backslash followed by 't'.
	l := New(`"a\tb"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	want := `a\tb`
	if tok.Literal != want {
		t.Fatalf("expected %q, got %q", want, tok.Literal)
	}
}

func TestUnterminatedStringRecordsError(t *testing.T) {
	l := New(`"abc`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING (best-effort), got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lexer error, got %d", len(l.Errors()))
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	l := New("// line comment\nvar /* block\ncomment */ x = 1;")
	want := []token.Type{token.VAR, token.IDENT, token.ASSIGN, token.INT, token.SEMI, token.EOF}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w {
			t.Fatalf("token[%d]: expected %s, got %s", i, w, tok.Type)
		}
	}
}

func TestLineColumnTracking(t *testing.T) {
	l := New("var x\nvar y")
	l.NextToken() // var
	tok := l.NextToken() // x
	if tok.Pos.Line != 1 {
		t.Fatalf("expected line 1, got %d", tok.Pos.Line)
	}
	l.NextToken() // var (line 2)
	tok = l.NextToken() // y
	if tok.Pos.Line != 2 {
		t.Fatalf("expected line 2, got %d", tok.Pos.Line)
	}
}

func TestBOMIsStripped(t *testing.T) {
	l := New("\xEF\xBB\xBFvar x")
	tok := l.NextToken()
	if tok.Type != token.VAR {
		t.Fatalf("expected VAR, got %s", tok.Type)
	}
	if tok.Pos.Offset != 0 {
		t.Fatalf("expected offset 0 after BOM strip, got %d", tok.Pos.Offset)
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL || tok.Literal != "@" {
		t.Fatalf("expected ILLEGAL '@', got %s %q", tok.Type, tok.Literal)
	}
}
