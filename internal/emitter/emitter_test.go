package emitter

import (
	"testing"

	"github.com/hackermdch/giscript/internal/ast"
	"github.com/hackermdch/giscript/internal/cerrors"
	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(src, "test.gis")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return prog
}

func countKind(g *graph.MemGraph, kind graph.NodeKind) int {
	n := 0
	for _, node := range g.Nodes() {
		if node.Kind() == kind {
			n++
		}
	}
	return n
}

// S1 — trivial event: one event node, no body nodes.
func TestEmitTrivialEvent(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated(entity sourceEntity) { }`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	gs := proj.Graphs()
	if len(gs) != 1 {
		t.Fatalf("expected 1 graph, got %d", len(gs))
	}
	if len(gs[0].Nodes()) != 1 {
		t.Fatalf("expected exactly the event node, got %d nodes", len(gs[0].Nodes()))
	}
}

// S2 — arithmetic and assignment: one Get Local for a, one for b, two +
// nodes (b's initializer and a += b), and Set Local nodes for b and for
// a += b.
func TestEmitArithmeticAndAssignment(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		int a = 1;
		int b = a + 2;
		a += b;
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]

	if n := countKind(g, "AdditionInt"); n != 2 {
		t.Fatalf("expected 2 AdditionInt nodes (b's initializer, a+=b), got %d", n)
	}
	// a is a literal initializer so its Get node folds the constant inline
	// and emits no Set node (invariant 5); b's initializer is non-literal
	// so it does get a Set node, and so does a += b.
	if n := countKind(g, "SetLocalVariableInt"); n != 2 {
		t.Fatalf("expected 2 SetLocalVariableInt nodes, got %d", n)
	}
	if n := countKind(g, "GetLocalVariableInt"); n != 2 {
		t.Fatalf("expected 2 GetLocalVariableInt nodes (a, b), got %d", n)
	}
}

// S3 — if/else: one DoubleBranch fed by ==, two Set Local branches.
func TestEmitIfElse(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		int x = 0;
		if (x == 0) x = 1; else x = 2;
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]

	if n := countKind(g, "DoubleBranch"); n != 1 {
		t.Fatalf("expected 1 DoubleBranch, got %d", n)
	}
	if n := countKind(g, "EqualInt"); n != 1 {
		t.Fatalf("expected 1 EqualInt, got %d", n)
	}
	if n := countKind(g, "SetLocalVariableInt"); n != 2 {
		t.Fatalf("expected 2 SetLocalVariableInt (then/else branches), got %d", n)
	}
}

// S4 — foreach over list: AssemblyListInt with 3 inline items, one
// ListIterationLoop, no separate Get node for the loop variable.
func TestEmitForEachOverList(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		list<int> xs = {1, 2, 3};
		foreach (int v : xs) { v = v; }
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]

	if n := countKind(g, "AssemblyListInt"); n != 1 {
		t.Fatalf("expected 1 AssemblyListInt, got %d", n)
	}
	if n := countKind(g, "ListIterationLoop"); n != 1 {
		t.Fatalf("expected 1 ListIterationLoop, got %d", n)
	}
}

// S5 — arithmetic right shift by a literal amount synthesizes exactly 5
// additional nodes: the literal `32 - n` folds into an inline constant
// instead of its own Sub node, per §8.11.
func TestEmitArithmeticRightShift(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		int x = -8;
		int y = x >> 2;
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]
	if n := countKind(g, "RightShiftOperation"); n != 2 {
		t.Fatalf("expected 2 RightShiftOperation nodes (logical shift + sign shift), got %d", n)
	}
	if n := countKind(g, "LeftShiftOperation"); n != 1 {
		t.Fatalf("expected 1 LeftShiftOperation node, got %d", n)
	}
	if n := countKind(g, "BitwiseOR"); n != 1 {
		t.Fatalf("expected 1 BitwiseOR node combining the synthesis, got %d", n)
	}
	if n := countKind(g, "SubtractionInt"); n != 1 {
		t.Fatalf("expected 1 SubtractionInt (the sign negation only; 32-n folds away for a literal shift), got %d", n)
	}
	// x's own initializer assigns a literal (folds inline, no Set node);
	// y's initializer is the shift result, which does need a Set node.
	// Total additional nodes for the shift itself: logical, signShift,
	// negated, shiftedSign, or = 5, matching §8.11 exactly.
	want := 5
	got := countKind(g, "RightShiftOperation") + countKind(g, "LeftShiftOperation") + countKind(g, "BitwiseOR") + countKind(g, "SubtractionInt")
	if got != want {
		t.Fatalf("expected %d nodes synthesizing the shift, got %d", want, got)
	}
}

// x >> 0 is a no-op and must not run the sign-extension formula: 32-0 would
// ask the synthesized LeftShiftOperation node to shift by the full width,
// which isn't a shift-right-logical/negate/shift-left node combination this
// compiler can trust to mean "no-op" on every runtime.
func TestEmitArithmeticRightShiftByZero(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		int x = -8;
		int y = x >> 0;
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]
	for _, kind := range []graph.NodeKind{"RightShiftOperation", "LeftShiftOperation", "BitwiseOR", "SubtractionInt"} {
		if n := countKind(g, kind); n != 0 {
			t.Fatalf("expected no %s nodes for x >> 0, got %d", kind, n)
		}
	}
}

// A non-literal shift amount still needs a live Sub node for 32-n, since
// the width isn't known until runtime.
func TestEmitArithmeticRightShiftNonLiteralAmount(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		int x = -8;
		int n = 2;
		int y = x >> n;
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]
	if n := countKind(g, "SubtractionInt"); n != 2 {
		t.Fatalf("expected 2 SubtractionInt (sign negation + live 32-n), got %d", n)
	}
}

// S6 — global function call: a composite graph registered with typed
// pins, called from the event body via the invented CallGlobalFunction
// node kind.
func TestEmitGlobalFunctionCall(t *testing.T) {
	proj := graph.NewMemProject()
	e := New()

	libProg := mustParse(t, `global function int sum(int a, int b) { return a + b; }`)
	var sumFn *ast.FunctionDecl
	for _, d := range libProg.Decls {
		if fn, ok := d.(*ast.FunctionDecl); ok && fn.Global {
			sumFn = fn
		}
	}
	if sumFn == nil {
		t.Fatalf("expected a global function declaration")
	}
	if _, cerr := e.DeclareGlobal(proj, "lib", sumFn, "", "lib.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}

	mainProg := mustParse(t, `event OnEntityCreated() { int z = sum(3, 4); }`)
	if cerr := e.EmitModule(proj, "lib", libProg, "", "lib.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	if cerr := e.EmitModule(proj, "main", mainProg, "", "main.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}

	gs := proj.Graphs()
	var mainGraph, sumGraph *graph.MemGraph
	for _, g := range gs {
		switch g.Name() {
		case "main":
			mainGraph = g
		case "lib.sum":
			sumGraph = g
		}
	}
	if sumGraph == nil {
		t.Fatalf("expected a composite graph named lib.sum")
	}
	if sumGraph.Kind() != graph.Composite {
		t.Fatalf("expected sum's graph to be a Composite graph")
	}
	if len(sumGraph.CompositePins()) != 3 {
		t.Fatalf("expected 3 composite pins (2 inputs, 1 output), got %d", len(sumGraph.CompositePins()))
	}
	if mainGraph == nil {
		t.Fatalf("expected main's entity graph")
	}
	if n := countKind(mainGraph, NKCallGlobalFunction); n != 1 {
		t.Fatalf("expected 1 CallGlobalFunction node, got %d", n)
	}
}

func TestEmitUndefinedSymbolFails(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() { int a = missing; }`)
	proj := graph.NewMemProject()
	e := New()
	cerr := e.EmitModule(proj, "m1", prog, "", "test.gis")
	if cerr == nil {
		t.Fatalf("expected an error")
	}
	if cerr.Kind != cerrors.UndefinedSymbol {
		t.Fatalf("expected UndefinedSymbol, got %v", cerr.Kind)
	}
}
