// Package graph defines the external graph-sink contract the compiler
// targets: an abstract collaborator owning node creation, pin typing, and
// edge connection for the node-graph IR consumed by the runtime. The
// persistence format and editor/viewer behind this contract are out of
// scope; this package only models the interface plus an in-memory
// reference implementation usable for tests and dry runs.
package graph

import "fmt"

// Kind distinguishes the two graph shapes the compiler produces: an
// Entity graph backing an event/local-function body, or a Composite graph
// backing a global function.
type Kind int

const (
	Entity Kind = iota
	Composite
)

func (k Kind) String() string {
	if k == Composite {
		return "Composite"
	}
	return "Entity"
}

// PinDirection classifies a composite graph's externally exposed pins.
type PinDirection int

const (
	Input PinDirection = iota
	Output
	Inflow
	Outflow
)

// NodeKind identifies which concrete node type to create. Values are
// defined by internal/registry (event/function node kinds) and
// internal/nodefactory (operator/variable node kinds); this package only
// carries the identifier so it has no dependency on either.
type NodeKind string

// DataType is a pin's concrete runtime value type, as referenced by
// node.set/node.fill.
type DataType int

const (
	Integer DataType = iota
	Float
	String
	Boolean
	EntityType
	GUID
	Prefab
	Configuration
	Faction
	Vector
	ListInteger
	ListFloat
	ListString
	ListBoolean
	ListEntity
	ListGUID
	ListVector
	ListPrefab
	ListConfiguration
	ListFaction
)

func (d DataType) String() string {
	names := [...]string{
		"Integer", "Float", "String", "Boolean", "Entity", "GUID", "Prefab",
		"Configuration", "Faction", "Vector", "List<Integer>", "List<Float>",
		"List<String>", "List<Boolean>", "List<Entity>", "List<GUID>",
		"List<Vector>", "List<Prefab>", "List<Configuration>", "List<Faction>",
	}
	if int(d) < len(names) {
		return names[d]
	}
	return fmt.Sprintf("DataType(%d)", int(d))
}

// Node is a single node within a Graph. Pin indices are zero-based and
// meaningful only within the node that owns them.
type Node interface {
	ID() int
	Kind() NodeKind

	// SetPin configures a pin's direction and concrete type.
	SetPin(pinIndex int, typeIndex DataType, isOut bool)

	// SetValue sets a pin's inline constant value, optionally also
	// assigning its type (mirrors node.set(pin, value[, type])).
	SetValue(pinIndex int, value interface{}, typeIndex ...DataType)

	// Fill sets only a pin's inline constant, leaving its type unchanged
	// (mirrors node.fill).
	Fill(pinIndex int, value interface{})

	SetPos(x, y float64)
	SetComment(text string)
	Change(kind NodeKind)

	// Connect wires this node's out-pin to target's in-pin. isControlFlow
	// distinguishes a control-flow edge from a data edge.
	Connect(target Node, outPin, inPin int, isControlFlow bool)
}

// Graph is a single node-graph instance: an Entity graph backing one
// event/local-function body, or a Composite graph backing one global
// function.
type Graph interface {
	Name() string
	Kind() Kind

	// AddNode creates a node of kind and inserts it into the graph
	// immediately.
	AddNode(kind NodeKind) Node

	// CreateNode creates a node of kind without inserting it; the caller
	// inserts later (e.g. after deciding whether a branch of the emitter
	// actually needs it).
	CreateNode(kind NodeKind) Node

	// Insert adds a node created via CreateNode into the graph.
	Insert(n Node)

	AddComment(text string, x, y float64)

	// SetCompositePin exposes pin on node at the composite graph's outer
	// boundary, in the given direction, under externalIndex.
	SetCompositePin(node Node, dir PinDirection, pin int, externalIndex int)

	// Find retrieves a previously inserted node by id.
	Find(id int) (Node, bool)
}

// Project is the root collaborator: it owns graphs across a compile
// batch and persists them.
type Project interface {
	// CreateGraph allocates a fresh, empty graph of the given kind.
	CreateGraph(name string, kind Kind) Graph

	// Define registers graph's signature (its composite input/output
	// pins) before its body is compiled, so call-sites can reference it.
	Define(g Graph)

	// Add commits a fully compiled graph.
	Add(g Graph)

	// Save persists all defined/added graphs to path.
	Save(path string) error
}

// LoadProject loads a previously saved project. The out-of-scope
// persistence format means this reference implementation only supports
// round-tripping projects it created itself via Save; see memory.go.
type ProjectLoader func(path string) (Project, error)
