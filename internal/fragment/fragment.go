// Package fragment defines the intermediate result the emitter threads
// through expression compilation: the set of newly created nodes, the
// resolved type, and the data/control-flow pins an enclosing expression
// should wire into.
package fragment

import (
	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/types"
)

// LiteralKind classifies a fragment whose value folded into an inline
// constant rather than a node output pin.
type LiteralKind int

const (
	NotLiteral LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralString
	LiteralBool
)

// Literal is the folded constant payload of a fragment, valid only when
// Kind != NotLiteral.
type Literal struct {
	Kind   LiteralKind
	Int    int64
	Float  float32
	String string
	Bool   bool
}

// Expr is the result of compiling one expression: the nodes it created
// plus where a consumer connects to read its value and, if applicable,
// drive its control flow.
type Expr struct {
	// Nodes holds every node this expression (and its sub-expressions)
	// created, in creation order. Combine concatenates these lists so the
	// full expression tree's nodes are always available to the caller
	// without re-walking the AST.
	Nodes []graph.Node

	// Type is this expression's resolved value type.
	Type types.Type

	// Start/End are the data out-pin/owning-node pair a consumer reads the
	// expression's value from. Start is nil for a pure control-flow
	// fragment (e.g. a bare function call used as a statement).
	Start graph.Node
	StartPin int

	// FlowStart/FlowEnd are the control-flow entry/exit points of this
	// expression's evaluation, when it has side effects requiring
	// sequencing (a Call or Assignment). FlowStart is nil for a
	// side-effect-free expression (a Literal, a pure arithmetic chain).
	FlowStart   graph.Node
	FlowStartPin int
	FlowEnd      graph.Node
	FlowEndPin   int

	// Branch/Branches hold divergent control-flow tails produced by a
	// short-circuiting or branching expression (&&, ||, ?:): the single
	// successor both arms must eventually reconverge on is left for the
	// caller to wire once it knows what follows.
	Branches []Branch

	// Literal holds the folded constant, when this fragment is a literal
	// that never needed a node of its own.
	Literal Literal
}

// Branch is one divergent control-flow tail awaiting reconvergence: the
// node/pin pair that should be connected onward once the caller knows
// what statement or expression comes next.
type Branch struct {
	Node graph.Node
	Pin  int
}

// IsLiteral reports whether this fragment folded to an inline constant
// rather than a node output.
func (e Expr) IsLiteral() bool { return e.Literal.Kind != NotLiteral }

// Combine appends before's nodes ahead of this fragment's own, producing
// the fragment a caller sees after evaluating before then this. It does
// not wire any control-flow edge itself — composing two fragments that
// both have side effects is the emitter's job, since only it knows
// whether an edge should be control-flow or data and at which pin.
// Combine exists so every multi-node expression construction goes
// through one place that keeps the Nodes slice (and therefore graph
// cleanup/snapshotting) complete and ordered.
func Combine(before Expr, pin Expr) Expr {
	pin.Nodes = append(append([]graph.Node{}, before.Nodes...), pin.Nodes...)
	return pin
}
