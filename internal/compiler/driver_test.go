package compiler

import (
	"strings"
	"testing"

	"github.com/hackermdch/giscript/internal/cerrors"
	"github.com/hackermdch/giscript/internal/graph"
)

func TestCompileTrivialEvent(t *testing.T) {
	proj := graph.NewMemProject()
	d := New(proj)
	if err := d.AddModule("m1", `event OnEntityCreated(entity sourceEntity) { }`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Compile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.BuildID.String() == "" {
		t.Fatalf("expected a non-empty build id")
	}
	if len(proj.Graphs()) != 1 {
		t.Fatalf("expected 1 graph, got %d", len(proj.Graphs()))
	}
	g := proj.Graphs()[0]
	if len(g.Comments()) != 1 || !strings.Contains(g.Comments()[0].Text, d.BuildID.String()) {
		t.Fatalf("expected a build-id comment stamped on the module graph")
	}
}

func TestCompileGlobalFunctionAcrossModules(t *testing.T) {
	proj := graph.NewMemProject()
	d := New(proj)
	if err := d.AddModule("lib", `global function int sum(int a, int b) { return a + b; }`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.AddModule("main", `event OnEntityCreated() { int z = sum(3, 4); }`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Compile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// sum's composite graph plus the lib and main module entity graphs.
	if len(proj.Graphs()) != 3 {
		t.Fatalf("expected 3 graphs, got %d", len(proj.Graphs()))
	}
}

func TestCompileStopsAtFirstError(t *testing.T) {
	proj := graph.NewMemProject()
	d := New(proj)
	if err := d.AddModule("m1", `event OnEntityCreated() { int a = undefinedVar; }`); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	err := d.Compile()
	if err == nil {
		t.Fatalf("expected a compile error")
	}
	if err.Kind != cerrors.UndefinedSymbol {
		t.Fatalf("expected UndefinedSymbol, got %v", err.Kind)
	}
}

func TestAddModuleSyntaxError(t *testing.T) {
	proj := graph.NewMemProject()
	d := New(proj)
	err := d.AddModule("bad", `event ( { `)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
}
