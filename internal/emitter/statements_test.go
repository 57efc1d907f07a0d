package emitter

import (
	"testing"

	"github.com/hackermdch/giscript/internal/graph"
)

func TestEmitWhileLoop(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		int i = 0;
		while (i < 10) { i += 1; }
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]
	if n := countKind(g, "FiniteLoop"); n != 1 {
		t.Fatalf("expected 1 FiniteLoop backing the while, got %d", n)
	}
	if n := countKind(g, "DoubleBranch"); n != 1 {
		t.Fatalf("expected 1 DoubleBranch guarding the condition, got %d", n)
	}
}

func TestEmitForLoopWithBreak(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		for (int i = 0; i < 10; i += 1) {
			if (i == 5) break;
		}
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]
	if n := countKind(g, "BreakLoop"); n != 1 {
		t.Fatalf("expected 1 BreakLoop node, got %d", n)
	}
}

func TestEmitSwitchStatement(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		int x = 1;
		int y = 0;
		switch (x) {
		case 1:
			y = 10;
		case 2:
			y = 20;
		default:
			y = 0;
		}
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]
	if n := countKind(g, NKMultiBranch); n != 1 {
		t.Fatalf("expected 1 MultiBranch node, got %d", n)
	}
}

func TestEmitSwitchRejectsNonLiteralCase(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		int x = 1;
		int y = 1;
		switch (x) {
		case y:
			x = 0;
		}
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr == nil {
		t.Fatalf("expected an error for a non-literal case label")
	}
}

func TestEmitSwitchAcceptsDuplicateCaseLabels(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		string s = "a";
		switch (s) {
		case "dup":
			s = "1";
		case "dup":
			s = "2";
		}
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]
	if n := countKind(g, NKMultiBranch); n != 1 {
		t.Fatalf("expected 1 MultiBranch node, got %d", n)
	}
}

func TestEmitBreakOutsideLoopFails(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() { break; }`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr == nil {
		t.Fatalf("expected an error for break outside a loop")
	}
}

func TestEmitLocalFunctionCall(t *testing.T) {
	prog := mustParse(t, `
		function int double(int n) { return n + n; }
		event OnEntityCreated() { int z = double(21); }
	`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]
	// a local function's dummy entrypoint is a DoubleBranch(true); the
	// event body adds none of its own here, so exactly one should exist.
	if n := countKind(g, "DoubleBranch"); n != 1 {
		t.Fatalf("expected 1 DoubleBranch (the local function's dummy entrypoint), got %d", n)
	}
}
