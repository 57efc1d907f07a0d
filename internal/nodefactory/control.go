package nodefactory

import (
	"fmt"

	"github.com/hackermdch/giscript/internal/fragment"
	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/types"
)

// Node kinds for control flow and list/vector construction. Unlike the
// business-domain catalog in internal/registry, these are structural
// nodes the emitter reaches for directly while lowering statements, so
// they live alongside the operator node kinds above.
const (
	NKDoubleBranch      graph.NodeKind = "DoubleBranch"
	NKFiniteLoop        graph.NodeKind = "FiniteLoop"
	NKBreakLoop         graph.NodeKind = "BreakLoop"
	NKListIterationLoop graph.NodeKind = "ListIterationLoop"
	NKCreate3DVector    graph.NodeKind = "Create3DVector"
	NKSplit3DVector     graph.NodeKind = "Split3DVector"
)

// finiteLoopCap mirrors the source compiler's choice to give While/For an
// explicit iteration ceiling rather than allow an unbounded loop node;
// INT_MAX is the widest value the Int pin can hold.
const finiteLoopCap = int64(2147483647)

// assembleListKind/getFromListKind index the per-element-type node kinds
// backing list literals and indexed list reads.
var assembleListKind = map[string]graph.NodeKind{
	types.TInt().String():    "AssemblyListInt",
	types.TFloat().String():  "AssemblyListFloat",
	types.TString().String(): "AssemblyListStr",
	types.TBool().String():   "AssemblyListBool",
	types.TEntity().String(): "AssemblyListEntity",
	types.TVec().String():    "AssemblyListVec",
	types.TGuid(types.GuidEntity).String():        "AssemblyListGUID",
	types.TGuid(types.GuidPrefab).String():         "AssemblyListPrefab",
	types.TGuid(types.GuidConfiguration).String():  "AssemblyListConfig",
	types.TGuid(types.GuidFaction).String():        "AssemblyListFaction",
}

var getFromListKind = map[string]graph.NodeKind{
	types.TInt().String():    "GetFromListInt",
	types.TFloat().String():  "GetFromListFloat",
	types.TString().String(): "GetFromListStr",
	types.TBool().String():   "GetFromListBool",
	types.TEntity().String(): "GetFromListEntity",
	types.TVec().String():    "GetFromListVec",
	types.TGuid(types.GuidEntity).String():        "GetFromListGUID",
	types.TGuid(types.GuidPrefab).String():         "GetFromListPrefab",
	types.TGuid(types.GuidConfiguration).String():  "GetFromListConfig",
	types.TGuid(types.GuidFaction).String():        "GetFromListFaction",
}

// listElemDataType mirrors the DataType a list's element type occupies
// on AssemblyList/GetFromList/ListIterationLoop pins.
var listElemDataType = map[string]graph.DataType{
	types.TInt().String():    graph.Integer,
	types.TFloat().String():  graph.Float,
	types.TString().String(): graph.String,
	types.TBool().String():   graph.Boolean,
	types.TEntity().String(): graph.EntityType,
	types.TVec().String():    graph.Vector,
	types.TGuid(types.GuidEntity).String():        graph.GUID,
	types.TGuid(types.GuidPrefab).String():         graph.Prefab,
	types.TGuid(types.GuidConfiguration).String():  graph.Configuration,
	types.TGuid(types.GuidFaction).String():        graph.Faction,
}

// DoubleBranch creates the shared if/ternary branching node: one Bool
// condition in-pin, a true-outflow and a false-outflow.
func DoubleBranch(g graph.Graph) graph.Node {
	n := g.AddNode(NKDoubleBranch)
	n.SetPin(0, graph.Boolean, false)
	return n
}

// FiniteLoop creates a While/For loop node, capped at finiteLoopCap
// iterations since the node catalog has no unbounded-loop primitive.
func FiniteLoop(g graph.Graph) graph.Node {
	n := g.AddNode(NKFiniteLoop)
	n.SetValue(0, finiteLoopCap, graph.Integer)
	return n
}

// BreakLoop creates a node that exits the innermost enclosing loop.
func BreakLoop(g graph.Graph) graph.Node {
	return g.AddNode(NKBreakLoop)
}

// Create3DVector builds a Vec literal from up to three Float
// sub-expressions, folding any literal component inline via Fill.
func Create3DVector(g graph.Graph, components []fragment.Expr) (graph.Node, error) {
	if len(components) > 3 {
		return nil, &UnsupportedTypeError{Op: "vector literal", T: types.TVec()}
	}
	for _, c := range components {
		if c.Type.Kind != types.Float {
			return nil, &TypeMismatchError{Op: "vector literal", T1: types.TFloat(), T2: c.Type}
		}
	}
	n := g.AddNode(NKCreate3DVector)
	for i, c := range components {
		n.SetPin(i, graph.Float, false)
		fillLiteral(n, i, c)
	}
	n.SetPin(3, graph.Vector, true)
	return n, nil
}

// VecComponent selects one axis out of a Split3DVector node's outputs.
type VecComponent int

const (
	VecX VecComponent = iota
	VecY
	VecZ
)

// Split3DVector creates a node that decomposes a Vec operand into its
// x/y/z Float outputs and returns the node plus the out-pin for comp.
func Split3DVector(g graph.Graph, comp VecComponent) (graph.Node, int) {
	n := g.AddNode(NKSplit3DVector)
	n.SetPin(0, graph.Vector, false)
	n.SetPin(1, graph.Float, true)
	n.SetPin(2, graph.Float, true)
	n.SetPin(3, graph.Float, true)
	return n, int(comp) + 1
}

// AssembleList builds a List<elem> literal from items, one input pin per
// element, typed elem.
func AssembleList(g graph.Graph, elem types.Type, items []fragment.Expr) (graph.Node, error) {
	kind, ok := assembleListKind[elem.String()]
	if !ok {
		return nil, &UnsupportedTypeError{Op: "list literal", T: elem}
	}
	dt := listElemDataType[elem.String()]
	n := g.AddNode(kind)
	for i, it := range items {
		n.SetPin(i, dt, false)
		fillLiteral(n, i, it)
	}
	n.SetPin(len(items), listDataType(elem), true)
	return n, nil
}

// GetFromList creates a node reading element at an Int index out of a
// List<elem>.
func GetFromList(g graph.Graph, elem types.Type) (graph.Node, error) {
	kind, ok := getFromListKind[elem.String()]
	if !ok {
		return nil, &UnsupportedTypeError{Op: "list index", T: elem}
	}
	dt := listElemDataType[elem.String()]
	n := g.AddNode(kind)
	n.SetPin(0, listDataType(elem), false)
	n.SetPin(1, graph.Integer, false)
	n.SetPin(binaryOutPin, dt, true)
	return n, nil
}

// ListIterationLoop creates a ForEach node over a List<elem>: pin 0 takes
// the list, the iterator value is exposed as an rvalue on its out pin.
func ListIterationLoop(g graph.Graph, elem types.Type) (graph.Node, error) {
	dt, ok := listElemDataType[elem.String()]
	if !ok {
		return nil, &UnsupportedTypeError{Op: "foreach", T: elem}
	}
	n := g.AddNode(NKListIterationLoop)
	n.SetPin(0, listDataType(elem), false)
	n.SetPin(unaryOutPin, dt, true)
	return n, nil
}

// listDataType maps an element type to the DataType its containing list
// pin uses (the List* variants at the tail of the DataType enum).
func listDataType(elem types.Type) graph.DataType {
	switch elem.Kind {
	case types.Int:
		return graph.ListInteger
	case types.Float:
		return graph.ListFloat
	case types.String:
		return graph.ListString
	case types.Bool:
		return graph.ListBoolean
	case types.Entity:
		return graph.ListEntity
	case types.Vec:
		return graph.ListVector
	case types.Guid:
		switch elem.GuidKind {
		case types.GuidPrefab:
			return graph.ListPrefab
		case types.GuidConfiguration:
			return graph.ListConfiguration
		case types.GuidFaction:
			return graph.ListFaction
		default:
			return graph.ListGUID
		}
	default:
		panic(fmt.Sprintf("listDataType: unsupported element type %s", elem))
	}
}
