package registry

import (
	"testing"

	"github.com/hackermdch/giscript/internal/types"
)

func TestResolveEventSingleOverloadNoParams(t *testing.T) {
	proto, err := ResolveEvent("OnEntityCreated", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proto.Node != NKWhenEntityIsCreated {
		t.Fatalf("unexpected node: %v", proto.Node)
	}
}

func TestResolveEventPicksOverloadByDeclaredParamNameAndType(t *testing.T) {
	proto, err := ResolveEvent("OnCustomVariableChanges", []EventParam{
		{Name: "sourceEntity", Type: types.TEntity()},
		{Name: "name", Type: types.TString()},
		{Name: "before", Type: types.TFloat()},
		{Name: "after", Type: types.TFloat()},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proto.Node != NKWhenCustomVariableChangesFloat {
		t.Fatalf("expected float overload, got %v", proto.Node)
	}
}

func TestResolveEventUnknownName(t *testing.T) {
	_, err := ResolveEvent("OnSomethingThatDoesNotExist", nil)
	if _, ok := err.(*UnknownEventError); !ok {
		t.Fatalf("expected UnknownEventError, got %v", err)
	}
}

func TestResolveEventNoMatchingOverload(t *testing.T) {
	_, err := ResolveEvent("OnCustomVariableChanges", []EventParam{
		{Name: "before", Type: types.TInt()},
		{Name: "after", Type: types.TString()}, // mismatched type on same name elsewhere
	})
	if _, ok := err.(*NoMatchingEventOverloadError); !ok {
		t.Fatalf("expected NoMatchingEventOverloadError, got %v", err)
	}
}

func TestResolveFunctionExactMatch(t *testing.T) {
	proto, err := ResolveFunction("print", []types.Type{types.TString()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proto.Node != NKPrintString || proto.Return != nil {
		t.Fatalf("unexpected proto: %+v", proto)
	}
}

func TestResolveFunctionNoImplicitConversion(t *testing.T) {
	// print takes String(); an Int argument must not silently match.
	_, err := ResolveFunction("print", []types.Type{types.TInt()})
	if _, ok := err.(*NoMatchingFunctionOverloadError); !ok {
		t.Fatalf("expected NoMatchingFunctionOverloadError, got %v", err)
	}
}

func TestResolveFunctionUnknownName(t *testing.T) {
	_, err := ResolveFunction("NotARealFunction", nil)
	if _, ok := err.(*UnknownFunctionError); !ok {
		t.Fatalf("expected UnknownFunctionError, got %v", err)
	}
}

func TestResolveFunctionOverloadBySignature(t *testing.T) {
	proto, err := ResolveFunction("InsertValue", []types.Type{
		types.TList(types.TInt()), types.TInt(), types.TInt(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proto.Node != NKInsertValueIntoListInt {
		t.Fatalf("expected int list overload, got %v", proto.Node)
	}
	if proto.GenericPins == nil {
		t.Fatalf("expected generic pins on list builtin")
	}
}

func TestGenericPinsTypeIndexLookup(t *testing.T) {
	idx, ok := typeIndexTable().Lookup(types.TFloat())
	if !ok || idx != 4 {
		t.Fatalf("expected float selector 4, got %d ok=%v", idx, ok)
	}
	idx, ok = typeIndexTable().Lookup(types.TList(types.TGuid(types.GuidFaction)))
	if !ok || idx != 19 {
		t.Fatalf("expected list<guid<faction>> selector 19, got %d ok=%v", idx, ok)
	}
}

func TestFunctionOverloadsHaveExpectedCounts(t *testing.T) {
	if len(FunctionOverloads) != 253 {
		t.Fatalf("expected 253 distinct functions, got %d", len(FunctionOverloads))
	}
	total := 0
	for _, ov := range FunctionOverloads {
		total += len(ov)
	}
	if total != 290 {
		t.Fatalf("expected 290 total function overloads, got %d", total)
	}
}

func TestEventOverloadsHaveExpectedCounts(t *testing.T) {
	if len(EventOverloads) != 46 {
		t.Fatalf("expected 46 distinct events, got %d", len(EventOverloads))
	}
	total := 0
	for _, ov := range EventOverloads {
		total += len(ov)
	}
	if total != 65 {
		t.Fatalf("expected 65 total event overloads, got %d", total)
	}
}
