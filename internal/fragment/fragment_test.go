package fragment

import (
	"testing"

	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/types"
)

func TestCombineConcatenatesNodesInOrder(t *testing.T) {
	g := graph.NewMemGraph("f", graph.Entity)
	n1 := g.AddNode(graph.NodeKind("A"))
	n2 := g.AddNode(graph.NodeKind("B"))

	before := Expr{Nodes: []graph.Node{n1}, Type: types.TInt()}
	after := Expr{Nodes: []graph.Node{n2}, Type: types.TInt(), Start: n2}

	combined := Combine(before, after)

	if len(combined.Nodes) != 2 || combined.Nodes[0] != n1 || combined.Nodes[1] != n2 {
		t.Fatalf("unexpected combined nodes: %+v", combined.Nodes)
	}
	if combined.Start != n2 {
		t.Fatalf("expected combined fragment to keep the second fragment's Start")
	}
}

func TestIsLiteral(t *testing.T) {
	lit := Expr{Literal: Literal{Kind: LiteralInt, Int: 3}}
	if !lit.IsLiteral() {
		t.Fatalf("expected literal fragment to report IsLiteral")
	}
	nonLit := Expr{}
	if nonLit.IsLiteral() {
		t.Fatalf("expected zero-value fragment to not be a literal")
	}
}
