package graph

import "fmt"

// Pin is the inline state of one pin on a memNode: its declared type and,
// for data pins folded to a constant, its inline value.
type Pin struct {
	Type    DataType
	IsOut   bool
	HasType bool
	Value   interface{}
	HasVal  bool
}

// Edge is one connection between two nodes recorded by memGraph.
type Edge struct {
	From, To         int
	OutPin, InPin    int
	IsControlFlow    bool
}

// memNode is the in-memory reference Node implementation.
type memNode struct {
	id      int
	kind    NodeKind
	pins    map[int]*Pin
	x, y    float64
	comment string
	owner   *MemGraph
}

func (n *memNode) ID() int        { return n.id }
func (n *memNode) Kind() NodeKind { return n.kind }

func (n *memNode) pin(idx int) *Pin {
	p, ok := n.pins[idx]
	if !ok {
		p = &Pin{}
		n.pins[idx] = p
	}
	return p
}

func (n *memNode) SetPin(pinIndex int, typeIndex DataType, isOut bool) {
	p := n.pin(pinIndex)
	p.Type = typeIndex
	p.HasType = true
	p.IsOut = isOut
}

func (n *memNode) SetValue(pinIndex int, value interface{}, typeIndex ...DataType) {
	p := n.pin(pinIndex)
	p.Value = value
	p.HasVal = true
	if len(typeIndex) > 0 {
		p.Type = typeIndex[0]
		p.HasType = true
	}
}

func (n *memNode) Fill(pinIndex int, value interface{}) {
	p := n.pin(pinIndex)
	p.Value = value
	p.HasVal = true
}

func (n *memNode) SetPos(x, y float64)    { n.x, n.y = x, y }
func (n *memNode) SetComment(text string) { n.comment = text }
func (n *memNode) Change(kind NodeKind)   { n.kind = kind }

func (n *memNode) Connect(target Node, outPin, inPin int, isControlFlow bool) {
	tn, ok := target.(*memNode)
	if !ok {
		panic(fmt.Sprintf("graph: Connect called with a foreign Node implementation %T", target))
	}
	if tn.owner == nil {
		panic("graph: Connect target does not belong to any graph")
	}
	tn.owner.edges = append(tn.owner.edges, Edge{
		From: n.id, To: tn.id, OutPin: outPin, InPin: inPin, IsControlFlow: isControlFlow,
	})
}

// MemGraph is the in-memory reference Graph implementation: a flat list
// of nodes plus a list of edges, suitable for golden-snapshot assertions
// in tests and for CLI dry runs that skip persistence entirely.
type MemGraph struct {
	name    string
	kind    Kind
	nodes   []*memNode
	byID    map[int]*memNode
	edges   []Edge
	comments []Comment
	compositePins []CompositePin
	nextID  int
}

// Comment is a free-floating annotation placed on the graph canvas.
type Comment struct {
	Text string
	X, Y float64
}

// CompositePin records one exposed pin of a composite (global function)
// graph's outer boundary.
type CompositePin struct {
	NodeID        int
	Dir           PinDirection
	Pin           int
	ExternalIndex int
}

func NewMemGraph(name string, kind Kind) *MemGraph {
	return &MemGraph{name: name, kind: kind, byID: map[int]*memNode{}}
}

func (g *MemGraph) Name() string { return g.name }
func (g *MemGraph) Kind() Kind   { return g.kind }

func (g *MemGraph) newNode(kind NodeKind) *memNode {
	g.nextID++
	return &memNode{id: g.nextID, kind: kind, pins: map[int]*Pin{}}
}

// wrap attaches the owner back-reference a bare *memNode needs so that
// Connect (called through the Node interface) can still find this graph's
// edge list. Every node handed out to callers is a *memNode whose
// Connect method closes over its owner via this field.
func (g *MemGraph) wrap(n *memNode) *memNode {
	n.owner = g
	return n
}

func (g *MemGraph) AddNode(kind NodeKind) Node {
	n := g.wrap(g.newNode(kind))
	g.nodes = append(g.nodes, n)
	g.byID[n.id] = n
	return n
}

func (g *MemGraph) CreateNode(kind NodeKind) Node {
	return g.wrap(g.newNode(kind))
}

func (g *MemGraph) Insert(n Node) {
	mn, ok := n.(*memNode)
	if !ok {
		panic(fmt.Sprintf("graph: Insert called with a foreign Node implementation %T", n))
	}
	if _, already := g.byID[mn.id]; already {
		return
	}
	g.nodes = append(g.nodes, mn)
	g.byID[mn.id] = mn
}

func (g *MemGraph) AddComment(text string, x, y float64) {
	g.comments = append(g.comments, Comment{Text: text, X: x, Y: y})
}

func (g *MemGraph) SetCompositePin(node Node, dir PinDirection, pin int, externalIndex int) {
	mn, ok := node.(*memNode)
	if !ok {
		panic(fmt.Sprintf("graph: SetCompositePin called with a foreign Node implementation %T", node))
	}
	g.compositePins = append(g.compositePins, CompositePin{
		NodeID: mn.id, Dir: dir, Pin: pin, ExternalIndex: externalIndex,
	})
}

func (g *MemGraph) Find(id int) (Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// Nodes, Edges, Comments and CompositePins expose the graph's contents
// for snapshot tests; they are not part of the Graph interface.
func (g *MemGraph) Nodes() []*memNode             { return g.nodes }
func (g *MemGraph) Edges() []Edge                 { return g.edges }
func (g *MemGraph) Comments() []Comment           { return g.comments }
func (g *MemGraph) CompositePins() []CompositePin { return g.compositePins }

// MemProject is the in-memory reference Project implementation.
type MemProject struct {
	defined []*MemGraph
	added   []*MemGraph
}

func NewMemProject() *MemProject { return &MemProject{} }

func (p *MemProject) CreateGraph(name string, kind Kind) Graph {
	return NewMemGraph(name, kind)
}

func (p *MemProject) Define(g Graph) {
	mg, ok := g.(*MemGraph)
	if !ok {
		panic(fmt.Sprintf("graph: Define called with a foreign Graph implementation %T", g))
	}
	p.defined = append(p.defined, mg)
}

func (p *MemProject) Add(g Graph) {
	mg, ok := g.(*MemGraph)
	if !ok {
		panic(fmt.Sprintf("graph: Add called with a foreign Graph implementation %T", g))
	}
	p.added = append(p.added, mg)
}

// Save is a no-op placeholder: the on-disk project format is outside
// this package's scope. Callers that need persistence supply their own
// Project implementation; MemProject exists for in-process testing.
func (p *MemProject) Save(path string) error { return nil }

func (p *MemProject) Graphs() []*MemGraph { return p.added }
