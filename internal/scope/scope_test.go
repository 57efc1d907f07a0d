package scope

import (
	"testing"

	"github.com/hackermdch/giscript/internal/types"
)

func TestAddAndFind(t *testing.T) {
	s := New()
	ok := s.Add("x", &LocalVar{Type: types.TInt()})
	if !ok {
		t.Fatalf("expected Add to succeed")
	}
	lv := s.Find("x")
	if lv == nil || lv.Type.Kind != types.Int {
		t.Fatalf("expected to find x with Int type, got %+v", lv)
	}
}

func TestShadowingAllowedAcrossFrames(t *testing.T) {
	s := New()
	s.Add("x", &LocalVar{Type: types.TInt()})
	s.Enter()
	ok := s.Add("x", &LocalVar{Type: types.TString()})
	if !ok {
		t.Fatalf("expected shadowing in a new frame to succeed")
	}
	lv := s.Find("x")
	if lv.Type.Kind != types.String {
		t.Fatalf("expected inner binding to win, got %v", lv.Type.Kind)
	}
	s.Exit()
	lv = s.Find("x")
	if lv.Type.Kind != types.Int {
		t.Fatalf("expected outer binding to reappear after Exit, got %v", lv.Type.Kind)
	}
}

func TestRedefinitionInSameFrameRejected(t *testing.T) {
	s := New()
	s.Add("x", &LocalVar{Type: types.TInt()})
	ok := s.Add("x", &LocalVar{Type: types.TInt()})
	if ok {
		t.Fatalf("expected redefinition in the same frame to fail")
	}
}

func TestFindMissingReturnsNil(t *testing.T) {
	s := New()
	if s.Find("nope") != nil {
		t.Fatalf("expected nil for unbound name")
	}
}

func TestExitDoesNotUnderflow(t *testing.T) {
	s := New()
	s.Exit()
	s.Exit() // must not panic
	if s.Depth() != 0 {
		t.Fatalf("expected depth 0, got %d", s.Depth())
	}
}
