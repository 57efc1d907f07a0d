package emitter

import (
	"testing"

	"github.com/hackermdch/giscript/internal/graph"
)

func TestEmitCustomVariableGetAndSet(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated(entity sourceEntity) {
		sourceEntity.score:int = 10;
		int x = sourceEntity.score:int;
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]
	if n := countKind(g, "SetCustomVariableInt"); n != 1 {
		t.Fatalf("expected 1 SetCustomVariableInt, got %d", n)
	}
	// One for the assignment target's access, one for x's read.
	if n := countKind(g, "GetCustomVariableInt"); n != 2 {
		t.Fatalf("expected 2 GetCustomVariableInt, got %d", n)
	}
}

func TestEmitCustomVariableRequiresExplicitType(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated(entity sourceEntity) {
		int x = sourceEntity.score;
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr == nil {
		t.Fatalf("expected an error for a custom variable access without a :Type suffix")
	}
}

func TestEmitTernary(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		int a = 1;
		int b = a == 1 ? 10 : 20;
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]
	if n := countKind(g, "DoubleBranch"); n != 1 {
		t.Fatalf("expected 1 DoubleBranch guarding the ternary, got %d", n)
	}
	if n := countKind(g, "SetLocalVariableInt"); n != 3 {
		t.Fatalf("expected 3 SetLocalVariableInt (the two ternary arms plus b's initializer), got %d", n)
	}
}

func TestEmitTernaryRejectsMismatchedArms(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		string s = true ? 1 : "x";
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr == nil {
		t.Fatalf("expected an error for mismatched ternary arm types")
	}
}

func TestEmitPreIncrement(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		int i = 0;
		int j = ++i;
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]
	if n := countKind(g, "AdditionInt"); n != 1 {
		t.Fatalf("expected 1 AdditionInt for ++i, got %d", n)
	}
	// pre-form stores directly, no temp Get/Set pair beyond the store.
	if n := countKind(g, "SetLocalVariableInt"); n != 2 {
		t.Fatalf("expected 2 SetLocalVariableInt (i's store from ++, j's initializer), got %d", n)
	}
}

func TestEmitPostDecrement(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		int i = 5;
		int j = i--;
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]
	if n := countKind(g, "AdditionInt"); n != 0 {
		t.Fatalf("expected 0 AdditionInt for i--, got %d", n)
	}
	// post-form needs a temp local (Get+Set) to save the pre-decrement
	// value, plus the store of the decremented value into i, plus j's
	// own initializer store.
	if n := countKind(g, "SetLocalVariableInt"); n != 3 {
		t.Fatalf("expected 3 SetLocalVariableInt (temp save, i's store, j's initializer), got %d", n)
	}
}

func TestEmitIncrementRejectsRvalue(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		int x = (1 + 2)++;
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr == nil {
		t.Fatalf("expected an error incrementing an rvalue")
	}
}

func TestEmitCastIntToFloat(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated() {
		int i = 3;
		float f = (float)i;
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	g := proj.Graphs()[0]
	if n := countKind(g, "DataTypeConversion"); n != 1 {
		t.Fatalf("expected 1 DataTypeConversion node, got %d", n)
	}
}

func TestEmitCastRejectsUnsupportedConversion(t *testing.T) {
	prog := mustParse(t, `event OnEntityCreated(entity sourceEntity) {
		float f = (float)sourceEntity;
	}`)
	proj := graph.NewMemProject()
	e := New()
	if cerr := e.EmitModule(proj, "m1", prog, "", "test.gis"); cerr == nil {
		t.Fatalf("expected an error casting Entity to Float")
	}
}
