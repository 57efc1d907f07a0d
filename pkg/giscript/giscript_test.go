package giscript

import (
	"testing"

	"github.com/hackermdch/giscript/internal/graph"
)

func TestCompileSourceTrivialEvent(t *testing.T) {
	buildID, err := CompileSource("m1", `event OnEntityCreated(entity sourceEntity) { }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buildID.String() == "" {
		t.Fatalf("expected a non-empty build id")
	}
}

func TestCompilerAddModuleAndInspectProject(t *testing.T) {
	c := New()
	if err := c.AddModule("m1", `event OnEntityCreated() { int a = 1; }`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Compile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	proj, ok := c.Project().(*graph.MemProject)
	if !ok {
		t.Fatalf("expected the default in-memory project")
	}
	if len(proj.Graphs()) != 1 {
		t.Fatalf("expected 1 graph, got %d", len(proj.Graphs()))
	}
}

func TestCompileSourcePropagatesErrors(t *testing.T) {
	_, err := CompileSource("m1", `event OnEntityCreated() { int a = undefinedVar; }`)
	if err == nil {
		t.Fatalf("expected a compile error")
	}
}
