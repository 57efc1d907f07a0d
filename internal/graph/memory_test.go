package graph

import "testing"

func TestAddNodeAndConnect(t *testing.T) {
	g := NewMemGraph("OnEntityCreated", Entity)
	a := g.AddNode(NodeKind("GetLocalVar"))
	b := g.AddNode(NodeKind("SetLocalVar"))
	a.SetPin(0, Integer, true)
	b.SetPin(0, Integer, false)
	a.Connect(b, 0, 0, false)

	if len(g.Nodes()) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(g.Nodes()))
	}
	edges := g.Edges()
	if len(edges) != 1 || edges[0].From != a.ID() || edges[0].To != b.ID() {
		t.Fatalf("unexpected edges: %+v", edges)
	}
}

func TestCreateNodeThenInsert(t *testing.T) {
	g := NewMemGraph("f", Composite)
	n := g.CreateNode(NodeKind("Add"))
	if len(g.Nodes()) != 0 {
		t.Fatalf("expected CreateNode not to insert immediately")
	}
	g.Insert(n)
	if len(g.Nodes()) != 1 {
		t.Fatalf("expected Insert to add the node, got %d nodes", len(g.Nodes()))
	}
	// Inserting twice must not duplicate.
	g.Insert(n)
	if len(g.Nodes()) != 1 {
		t.Fatalf("expected Insert to be idempotent, got %d nodes", len(g.Nodes()))
	}
}

func TestSetValueAndFill(t *testing.T) {
	g := NewMemGraph("f", Entity)
	n := g.AddNode(NodeKind("Literal"))
	n.SetValue(0, int64(42), Integer)
	n.Fill(1, "hello")

	mn := n.(*memNode)
	if mn.pins[0].Value.(int64) != 42 || mn.pins[0].Type != Integer {
		t.Fatalf("unexpected pin 0: %+v", mn.pins[0])
	}
	if mn.pins[1].Value.(string) != "hello" || mn.pins[1].HasType {
		t.Fatalf("expected Fill to leave type unset: %+v", mn.pins[1])
	}
}

func TestFindByID(t *testing.T) {
	g := NewMemGraph("f", Entity)
	n := g.AddNode(NodeKind("Add"))
	found, ok := g.Find(n.ID())
	if !ok || found.ID() != n.ID() {
		t.Fatalf("expected to find node by id")
	}
	if _, ok := g.Find(9999); ok {
		t.Fatalf("expected missing id to not be found")
	}
}

func TestSetCompositePinAndComment(t *testing.T) {
	g := NewMemGraph("sum", Composite)
	n := g.AddNode(NodeKind("Add"))
	g.SetCompositePin(n, Input, 0, 0)
	g.SetCompositePin(n, Output, 0, 0)
	g.AddComment("entrypoint", 0, 0)

	if len(g.CompositePins()) != 2 {
		t.Fatalf("expected 2 composite pins, got %d", len(g.CompositePins()))
	}
	if len(g.Comments()) != 1 || g.Comments()[0].Text != "entrypoint" {
		t.Fatalf("unexpected comments: %+v", g.Comments())
	}
}

func TestProjectDefineAndAdd(t *testing.T) {
	p := NewMemProject()
	g := p.CreateGraph("sum", Composite)
	p.Define(g)
	p.Add(g)
	if len(p.Graphs()) != 1 {
		t.Fatalf("expected 1 added graph, got %d", len(p.Graphs()))
	}
}
