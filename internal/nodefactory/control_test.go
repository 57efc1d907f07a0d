package nodefactory

import (
	"testing"

	"github.com/hackermdch/giscript/internal/fragment"
	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/types"
)

func TestCreate3DVectorRejectsNonFloat(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	_, err := Create3DVector(g, []fragment.Expr{exprOf(types.TInt())})
	if _, ok := err.(*TypeMismatchError); !ok {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
}

func TestCreate3DVectorRejectsTooManyComponents(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	four := []fragment.Expr{exprOf(types.TFloat()), exprOf(types.TFloat()), exprOf(types.TFloat()), exprOf(types.TFloat())}
	_, err := Create3DVector(g, four)
	if _, ok := err.(*UnsupportedTypeError); !ok {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
}

func TestAssembleListInt(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	n, err := AssembleList(g, types.TInt(), []fragment.Expr{literalInt(1), literalInt(2), literalInt(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != "AssemblyListInt" {
		t.Fatalf("unexpected kind: %v", n.Kind())
	}
}

func TestGetFromListFloat(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	n, err := GetFromList(g, types.TFloat())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != "GetFromListFloat" {
		t.Fatalf("unexpected kind: %v", n.Kind())
	}
}

func TestListIterationLoopUnsupportedElem(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	_, err := ListIterationLoop(g, types.TFunction())
	if _, ok := err.(*UnsupportedTypeError); !ok {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
}

func TestDoubleBranchAndFiniteLoopKinds(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	if DoubleBranch(g).Kind() != NKDoubleBranch {
		t.Fatalf("unexpected DoubleBranch kind")
	}
	if FiniteLoop(g).Kind() != NKFiniteLoop {
		t.Fatalf("unexpected FiniteLoop kind")
	}
	if BreakLoop(g).Kind() != NKBreakLoop {
		t.Fatalf("unexpected BreakLoop kind")
	}
}
