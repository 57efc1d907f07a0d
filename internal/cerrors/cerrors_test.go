package cerrors

import (
	"strings"
	"testing"

	"github.com/hackermdch/giscript/internal/token"
)

func TestFormatIncludesCaretAtColumn(t *testing.T) {
	err := New(SyntaxError, token.Position{Line: 2, Column: 5}, "unexpected token ';'", "var x\nvar ;", "main.gis")
	out := err.Format(false)
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d: %q", len(lines), out)
	}
	caretLine := lines[2]
	if strings.TrimSpace(caretLine) != "^" {
		t.Fatalf("expected caret line, got %q", caretLine)
	}
	// The caret sits under column 5, after the "   2 | " source prefix.
	if idx := strings.Index(caretLine, "^"); idx != len("   2 | ")+5-1 {
		t.Fatalf("expected caret at index %d, got %d in %q", len("   2 | ")+5-1, idx, caretLine)
	}
}

func TestFormatNoSourceOmitsContextLines(t *testing.T) {
	err := New(UndefinedSymbol, token.Position{Line: 1, Column: 1}, "undefined symbol 'x'", "", "")
	out := err.Format(false)
	if strings.Contains(out, "^") {
		t.Fatalf("expected no caret when source is empty, got %q", out)
	}
}

func TestKindStrings(t *testing.T) {
	kinds := []Kind{
		SyntaxError, UnexpectedTokenAfterProgram, UnknownType, UnknownEvent,
		NoMatchingEventOverload, UnknownFunction, NoMatchingFunctionOverload,
		UndefinedSymbol, Redefinition, KeywordMisuse, TypeMismatch, InvalidLValue, IOError,
	}
	for _, k := range kinds {
		if k.String() == "error" {
			t.Errorf("kind %d has no specific string", k)
		}
	}
}
