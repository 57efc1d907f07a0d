package nodefactory

import (
	"testing"

	"github.com/hackermdch/giscript/internal/fragment"
	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/types"
)

func exprOf(t types.Type) fragment.Expr { return fragment.Expr{Type: t} }

func literalInt(v int64) fragment.Expr {
	return fragment.Expr{Type: types.TInt(), Literal: fragment.Literal{Kind: fragment.LiteralInt, Int: v}}
}

func TestGetSetLocalVariable(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)

	n, err := GetLocalVariable(g, types.TInt())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != NKGetLocalVariableInt {
		t.Fatalf("unexpected kind: %v", n.Kind())
	}

	n, err = SetLocalVariable(g, types.TBool())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != NKSetLocalVariableBool {
		t.Fatalf("unexpected kind: %v", n.Kind())
	}

	if _, err := GetLocalVariable(g, types.TFunction()); err == nil {
		t.Fatalf("expected unsupported type error for Function")
	}
}

func TestGetSetCustomVariable(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)

	n, err := GetCustomVariable(g, types.TFloat())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != NKGetCustomVariableFloat {
		t.Fatalf("unexpected kind: %v", n.Kind())
	}

	n, err = SetCustomVariable(g, types.TGuid(types.GuidFaction))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != NKSetCustomVariableFaction {
		t.Fatalf("unexpected kind: %v", n.Kind())
	}
}

func TestAddIntFoldsLiterals(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	n, err := Add(g, literalInt(1), literalInt(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != NKAdditionInt {
		t.Fatalf("unexpected kind: %v", n.Kind())
	}
}

func TestAddTypeMismatch(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	_, err := Add(g, exprOf(types.TInt()), exprOf(types.TFloat()))
	if _, ok := err.(*TypeMismatchError); !ok {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
}

func TestMulVecByFloatScale(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	n, err := Mul(g, exprOf(types.TVec()), exprOf(types.TFloat()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != NK3DVectorZoom {
		t.Fatalf("unexpected kind: %v", n.Kind())
	}
}

func TestModRejectsFloat(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	_, err := Mod(g, exprOf(types.TFloat()), exprOf(types.TFloat()))
	if _, ok := err.(*UnsupportedTypeError); !ok {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
}

func TestCompareFloat(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	n, err := Compare(g, exprOf(types.TFloat()), exprOf(types.TFloat()), GE)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != NKGreaterThanorEqualToFloat {
		t.Fatalf("unexpected kind: %v", n.Kind())
	}
}

func TestEqualGuidEntityAndRejectsFaction(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	n, err := Equal(g, exprOf(types.TGuid(types.GuidEntity)), exprOf(types.TGuid(types.GuidEntity)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != NKEqualEntity {
		t.Fatalf("unexpected kind: %v", n.Kind())
	}

	_, err = Equal(g, exprOf(types.TGuid(types.GuidFaction)), exprOf(types.TGuid(types.GuidFaction)))
	if _, ok := err.(*UnsupportedTypeError); !ok {
		t.Fatalf("expected UnsupportedTypeError for Guid<Faction> equality, got %v", err)
	}
}

func TestBitwiseShiftRightSharesNodeKind(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	logical, err := Bitwise(g, exprOf(types.TInt()), exprOf(types.TInt()), ShiftRightLogical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logical.Kind() != NKRightShiftOperation {
		t.Fatalf("unexpected kind: %v", logical.Kind())
	}
}

func TestLogicalRejectsNonBool(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	_, err := Logical(g, exprOf(types.TInt()), exprOf(types.TInt()), LogAnd)
	if _, ok := err.(*UnsupportedTypeError); !ok {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
}

func TestCastIntToFloatAllowed(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	n, err := Cast(g, exprOf(types.TInt()), types.TFloat())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != NKDataTypeConversion {
		t.Fatalf("unexpected kind: %v", n.Kind())
	}
}

func TestCastGuidPrefabToStringRejected(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	_, err := Cast(g, exprOf(types.TGuid(types.GuidPrefab)), types.TString())
	if _, ok := err.(*UnsupportedTypeError); !ok {
		t.Fatalf("expected UnsupportedTypeError for Guid<Prefab>-to-String cast, got %v", err)
	}
}

func TestCastVecToStringAllowed(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	n, err := Cast(g, exprOf(types.TVec()), types.TString())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != NKDataTypeConversion {
		t.Fatalf("unexpected kind: %v", n.Kind())
	}
}

func TestCastRejectsUnlistedConversion(t *testing.T) {
	g := graph.NewMemGraph("g", graph.Entity)
	_, err := Cast(g, exprOf(types.TBool()), types.TFloat())
	if _, ok := err.(*UnsupportedTypeError); !ok {
		t.Fatalf("expected UnsupportedTypeError for Bool-to-Float cast, got %v", err)
	}
}
