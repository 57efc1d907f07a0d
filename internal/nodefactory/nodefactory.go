// Package nodefactory builds the graph nodes backing the language's
// built-in operators and variable accessors: arithmetic, comparison,
// equality, bitwise and logical operators, casts, and local/custom
// variable get/set nodes. Each function here is a pure mapping from
// resolved operand types (and, where it folds, operand literal values)
// to a freshly created node wired up to receive its operands — callers
// are responsible for connecting those operands and sequencing control
// flow.
package nodefactory

import (
	"fmt"

	"github.com/hackermdch/giscript/internal/fragment"
	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/types"
)

// Node kinds for local-variable access, one pair per concrete type.
const (
	NKGetLocalVariableBool    graph.NodeKind = "GetLocalVariableBool"
	NKGetLocalVariableInt     graph.NodeKind = "GetLocalVariableInt"
	NKGetLocalVariableFloat   graph.NodeKind = "GetLocalVariableFloat"
	NKGetLocalVariableStr     graph.NodeKind = "GetLocalVariableStr"
	NKGetLocalVariableEntity  graph.NodeKind = "GetLocalVariableEntity"
	NKGetLocalVariableVec     graph.NodeKind = "GetLocalVariableVec"
	NKGetLocalVariableGUID    graph.NodeKind = "GetLocalVariableGUID"
	NKGetLocalVariablePrefab  graph.NodeKind = "GetLocalVariablePrefab"
	NKGetLocalVariableConfig  graph.NodeKind = "GetLocalVariableConfig"
	NKGetLocalVariableFaction graph.NodeKind = "GetLocalVariableFaction"

	NKGetLocalVariableListInt     graph.NodeKind = "GetLocalVariableListInt"
	NKGetLocalVariableListFloat   graph.NodeKind = "GetLocalVariableListFloat"
	NKGetLocalVariableListStr     graph.NodeKind = "GetLocalVariableListStr"
	NKGetLocalVariableListBool    graph.NodeKind = "GetLocalVariableListBool"
	NKGetLocalVariableListEntity  graph.NodeKind = "GetLocalVariableListEntity"
	NKGetLocalVariableListVec     graph.NodeKind = "GetLocalVariableListVec"
	NKGetLocalVariableListGUID    graph.NodeKind = "GetLocalVariableListGUID"
	NKGetLocalVariableListPrefab  graph.NodeKind = "GetLocalVariableListPrefab"
	NKGetLocalVariableListConfig  graph.NodeKind = "GetLocalVariableListConfig"
	NKGetLocalVariableListFaction graph.NodeKind = "GetLocalVariableListFaction"

	NKSetLocalVariableBool    graph.NodeKind = "SetLocalVariableBool"
	NKSetLocalVariableInt     graph.NodeKind = "SetLocalVariableInt"
	NKSetLocalVariableFloat   graph.NodeKind = "SetLocalVariableFloat"
	NKSetLocalVariableStr     graph.NodeKind = "SetLocalVariableStr"
	NKSetLocalVariableEntity  graph.NodeKind = "SetLocalVariableEntity"
	NKSetLocalVariableVec     graph.NodeKind = "SetLocalVariableVec"
	NKSetLocalVariableGUID    graph.NodeKind = "SetLocalVariableGUID"
	NKSetLocalVariablePrefab  graph.NodeKind = "SetLocalVariablePrefab"
	NKSetLocalVariableConfig  graph.NodeKind = "SetLocalVariableConfig"
	NKSetLocalVariableFaction graph.NodeKind = "SetLocalVariableFaction"

	NKSetLocalVariableListInt     graph.NodeKind = "SetLocalVariableListInt"
	NKSetLocalVariableListFloat   graph.NodeKind = "SetLocalVariableListFloat"
	NKSetLocalVariableListStr     graph.NodeKind = "SetLocalVariableListStr"
	NKSetLocalVariableListBool    graph.NodeKind = "SetLocalVariableListBool"
	NKSetLocalVariableListEntity  graph.NodeKind = "SetLocalVariableListEntity"
	NKSetLocalVariableListVec     graph.NodeKind = "SetLocalVariableListVec"
	NKSetLocalVariableListGUID    graph.NodeKind = "SetLocalVariableListGUID"
	NKSetLocalVariableListPrefab  graph.NodeKind = "SetLocalVariableListPrefab"
	NKSetLocalVariableListConfig  graph.NodeKind = "SetLocalVariableListConfig"
	NKSetLocalVariableListFaction graph.NodeKind = "SetLocalVariableListFaction"
)

// Node kinds for custom-variable (entity-attached) access.
const (
	NKGetCustomVariableInt     graph.NodeKind = "GetCustomVariableInt"
	NKGetCustomVariableFloat   graph.NodeKind = "GetCustomVariableFloat"
	NKGetCustomVariableStr     graph.NodeKind = "GetCustomVariableStr"
	NKGetCustomVariableBool    graph.NodeKind = "GetCustomVariableBool"
	NKGetCustomVariableEntity  graph.NodeKind = "GetCustomVariableEntity"
	NKGetCustomVariableVec     graph.NodeKind = "GetCustomVariableVec"
	NKGetCustomVariableGUID    graph.NodeKind = "GetCustomVariableGUID"
	NKGetCustomVariablePrefab  graph.NodeKind = "GetCustomVariablePrefab"
	NKGetCustomVariableConfig  graph.NodeKind = "GetCustomVariableConfig"
	NKGetCustomVariableFaction graph.NodeKind = "GetCustomVariableFaction"

	NKGetCustomVariableListInt     graph.NodeKind = "GetCustomVariableListInt"
	NKGetCustomVariableListFloat   graph.NodeKind = "GetCustomVariableListFloat"
	NKGetCustomVariableListStr     graph.NodeKind = "GetCustomVariableListStr"
	NKGetCustomVariableListBool    graph.NodeKind = "GetCustomVariableListBool"
	NKGetCustomVariableListEntity  graph.NodeKind = "GetCustomVariableListEntity"
	NKGetCustomVariableListVec     graph.NodeKind = "GetCustomVariableListVec"
	NKGetCustomVariableListGUID    graph.NodeKind = "GetCustomVariableListGUID"
	NKGetCustomVariableListPrefab  graph.NodeKind = "GetCustomVariableListPrefab"
	NKGetCustomVariableListConfig  graph.NodeKind = "GetCustomVariableListConfig"
	NKGetCustomVariableListFaction graph.NodeKind = "GetCustomVariableListFaction"

	NKSetCustomVariableInt     graph.NodeKind = "SetCustomVariableInt"
	NKSetCustomVariableFloat   graph.NodeKind = "SetCustomVariableFloat"
	NKSetCustomVariableStr     graph.NodeKind = "SetCustomVariableStr"
	NKSetCustomVariableBool    graph.NodeKind = "SetCustomVariableBool"
	NKSetCustomVariableEntity  graph.NodeKind = "SetCustomVariableEntity"
	NKSetCustomVariableVec     graph.NodeKind = "SetCustomVariableVec"
	NKSetCustomVariableGUID    graph.NodeKind = "SetCustomVariableGUID"
	NKSetCustomVariablePrefab  graph.NodeKind = "SetCustomVariablePrefab"
	NKSetCustomVariableConfig  graph.NodeKind = "SetCustomVariableConfig"
	NKSetCustomVariableFaction graph.NodeKind = "SetCustomVariableFaction"
)

// Node kinds for arithmetic, comparison, equality, bitwise, logical and
// cast operators.
const (
	NKAdditionInt        graph.NodeKind = "AdditionInt"
	NKAdditionFloat       graph.NodeKind = "AdditionFloat"
	NK3DVectorAddition    graph.NodeKind = "_3DVectorAddition"
	NKSubtractionInt      graph.NodeKind = "SubtractionInt"
	NKSubtractionFloat    graph.NodeKind = "SubtractionFloat"
	NK3DVectorSubtraction graph.NodeKind = "_3DVectorSubtraction"
	NKMultiplicationInt   graph.NodeKind = "MultiplicationInt"
	NKMultiplicationFloat graph.NodeKind = "MultiplicationFloat"
	NK3DVectorZoom        graph.NodeKind = "_3DVectorZoom"
	NKDivisionInt         graph.NodeKind = "DivisionInt"
	NKDivisionFloat       graph.NodeKind = "DivisionFloat"
	NKModuloOperation     graph.NodeKind = "ModuloOperation"

	NKLessThanInt              graph.NodeKind = "LessThanInt"
	NKGreaterThanInt            graph.NodeKind = "GreaterThanInt"
	NKLessThanorEqualToInt      graph.NodeKind = "LessThanorEqualToInt"
	NKGreaterThanorEqualToInt   graph.NodeKind = "GreaterThanorEqualToInt"
	NKLessThanFloat             graph.NodeKind = "LessThanFloat"
	NKGreaterThanFloat          graph.NodeKind = "GreaterThanFloat"
	NKLessThanorEqualToFloat    graph.NodeKind = "LessThanorEqualToFloat"
	NKGreaterThanorEqualToFloat graph.NodeKind = "GreaterThanorEqualToFloat"

	NKEqualInt    graph.NodeKind = "EqualInt"
	NKEqualFloat  graph.NodeKind = "EqualFloat"
	NKEqualStr    graph.NodeKind = "EqualStr"
	NKEqualVec    graph.NodeKind = "EqualVec"
	NKEqualEntity graph.NodeKind = "EqualEntity"
	NKEqualPrefab graph.NodeKind = "EqualPrefab"
	NKEqualConfig graph.NodeKind = "EqualConfig"
	NKEqualBool   graph.NodeKind = "EqualBool"

	NKLogicalNOTOperation graph.NodeKind = "LogicalNOTOperation"
	NKBitwiseAND          graph.NodeKind = "BitwiseAND"
	NKBitwiseOR           graph.NodeKind = "BitwiseOR"
	NKXORExclusiveOR      graph.NodeKind = "XORExclusiveOR"
	NKLeftShiftOperation  graph.NodeKind = "LeftShiftOperation"
	NKRightShiftOperation graph.NodeKind = "RightShiftOperation"
	NKBitwiseComplement   graph.NodeKind = "BitwiseComplement"

	NKLogicalANDOperation graph.NodeKind = "LogicalANDOperation"
	NKLogicalOROperation  graph.NodeKind = "LogicalOROperation"
	NKLogicalXOROperation graph.NodeKind = "LogicalXOROperation"

	NKDataTypeConversion graph.NodeKind = "DataTypeConversion"
)

// localVarIndex is the type-index table for local-variable get/set nodes
// (the Set(0/1, index) argument identifying which concrete type the node
// was specialized for).
var localVarIndex = map[string]int{
	types.TBool().String():   0,
	types.TInt().String():    1,
	types.TString().String(): 2,
	types.TEntity().String(): 3,
	types.TGuid(types.GuidEntity).String():       4,
	types.TFloat().String():                       5,
	types.TVec().String():                         6,
	types.TList(types.TInt()).String():            7,
	types.TList(types.TString()).String():         8,
	types.TList(types.TEntity()).String():         9,
	types.TList(types.TGuid(types.GuidEntity)).String():      10,
	types.TList(types.TFloat()).String():                      11,
	types.TList(types.TVec()).String():                        12,
	types.TList(types.TBool()).String():                       13,
	types.TGuid(types.GuidConfiguration).String():             14,
	types.TGuid(types.GuidPrefab).String():                    15,
	types.TList(types.TGuid(types.GuidConfiguration)).String(): 16,
	types.TList(types.TGuid(types.GuidPrefab)).String():        17,
	types.TGuid(types.GuidFaction).String():                    18,
	types.TList(types.TGuid(types.GuidFaction)).String():       19,
}

// customVarIndex is the type-index table for custom-variable get/set
// nodes. It assigns the same twenty slots as localVarIndex but in a
// different order (Int first rather than Bool first) because the two
// node families were specialized independently in the original compiler.
var customVarIndex = map[string]int{
	types.TInt().String():    0,
	types.TString().String(): 1,
	types.TEntity().String(): 2,
	types.TGuid(types.GuidEntity).String():       3,
	types.TFloat().String():                       4,
	types.TVec().String():                         5,
	types.TBool().String():                        6,
	types.TList(types.TInt()).String():            7,
	types.TList(types.TString()).String():         8,
	types.TList(types.TEntity()).String():         9,
	types.TList(types.TGuid(types.GuidEntity)).String():      10,
	types.TList(types.TFloat()).String():                      11,
	types.TList(types.TVec()).String():                        12,
	types.TList(types.TBool()).String():                       13,
	types.TGuid(types.GuidConfiguration).String():             14,
	types.TGuid(types.GuidPrefab).String():                    15,
	types.TList(types.TGuid(types.GuidConfiguration)).String(): 16,
	types.TList(types.TGuid(types.GuidPrefab)).String():        17,
	types.TGuid(types.GuidFaction).String():                    18,
	types.TList(types.TGuid(types.GuidFaction)).String():       19,
}

var localVarNodeKind = map[string]graph.NodeKind{
	types.TBool().String():   NKGetLocalVariableBool,
	types.TInt().String():    NKGetLocalVariableInt,
	types.TFloat().String():  NKGetLocalVariableFloat,
	types.TString().String(): NKGetLocalVariableStr,
	types.TEntity().String(): NKGetLocalVariableEntity,
	types.TVec().String():    NKGetLocalVariableVec,
	types.TGuid(types.GuidEntity).String():        NKGetLocalVariableGUID,
	types.TGuid(types.GuidPrefab).String():         NKGetLocalVariablePrefab,
	types.TGuid(types.GuidConfiguration).String():  NKGetLocalVariableConfig,
	types.TGuid(types.GuidFaction).String():        NKGetLocalVariableFaction,
	types.TList(types.TInt()).String():             NKGetLocalVariableListInt,
	types.TList(types.TFloat()).String():           NKGetLocalVariableListFloat,
	types.TList(types.TString()).String():          NKGetLocalVariableListStr,
	types.TList(types.TBool()).String():            NKGetLocalVariableListBool,
	types.TList(types.TEntity()).String():          NKGetLocalVariableListEntity,
	types.TList(types.TVec()).String():             NKGetLocalVariableListVec,
	types.TList(types.TGuid(types.GuidEntity)).String():       NKGetLocalVariableListGUID,
	types.TList(types.TGuid(types.GuidPrefab)).String():        NKGetLocalVariableListPrefab,
	types.TList(types.TGuid(types.GuidConfiguration)).String(): NKGetLocalVariableListConfig,
	types.TList(types.TGuid(types.GuidFaction)).String():       NKGetLocalVariableListFaction,
}

var setLocalVarNodeKind = map[string]graph.NodeKind{
	types.TBool().String():   NKSetLocalVariableBool,
	types.TInt().String():    NKSetLocalVariableInt,
	types.TFloat().String():  NKSetLocalVariableFloat,
	types.TString().String(): NKSetLocalVariableStr,
	types.TEntity().String(): NKSetLocalVariableEntity,
	types.TVec().String():    NKSetLocalVariableVec,
	types.TGuid(types.GuidEntity).String():        NKSetLocalVariableGUID,
	types.TGuid(types.GuidPrefab).String():         NKSetLocalVariablePrefab,
	types.TGuid(types.GuidConfiguration).String():  NKSetLocalVariableConfig,
	types.TGuid(types.GuidFaction).String():        NKSetLocalVariableFaction,
	types.TList(types.TInt()).String():             NKSetLocalVariableListInt,
	types.TList(types.TFloat()).String():           NKSetLocalVariableListFloat,
	types.TList(types.TString()).String():          NKSetLocalVariableListStr,
	types.TList(types.TBool()).String():            NKSetLocalVariableListBool,
	types.TList(types.TEntity()).String():          NKSetLocalVariableListEntity,
	types.TList(types.TVec()).String():             NKSetLocalVariableListVec,
	types.TList(types.TGuid(types.GuidEntity)).String():       NKSetLocalVariableListGUID,
	types.TList(types.TGuid(types.GuidPrefab)).String():        NKSetLocalVariableListPrefab,
	types.TList(types.TGuid(types.GuidConfiguration)).String(): NKSetLocalVariableListConfig,
	types.TList(types.TGuid(types.GuidFaction)).String():       NKSetLocalVariableListFaction,
}

var customVarNodeKind = map[string]graph.NodeKind{
	types.TInt().String():    NKGetCustomVariableInt,
	types.TFloat().String():  NKGetCustomVariableFloat,
	types.TString().String(): NKGetCustomVariableStr,
	types.TBool().String():   NKGetCustomVariableBool,
	types.TEntity().String(): NKGetCustomVariableEntity,
	types.TVec().String():    NKGetCustomVariableVec,
	types.TGuid(types.GuidEntity).String():        NKGetCustomVariableGUID,
	types.TGuid(types.GuidPrefab).String():         NKGetCustomVariablePrefab,
	types.TGuid(types.GuidConfiguration).String():  NKGetCustomVariableConfig,
	types.TGuid(types.GuidFaction).String():        NKGetCustomVariableFaction,
	types.TList(types.TInt()).String():             NKGetCustomVariableListInt,
	types.TList(types.TFloat()).String():           NKGetCustomVariableListFloat,
	types.TList(types.TString()).String():          NKGetCustomVariableListStr,
	types.TList(types.TBool()).String():            NKGetCustomVariableListBool,
	types.TList(types.TEntity()).String():          NKGetCustomVariableListEntity,
	types.TList(types.TVec()).String():             NKGetCustomVariableListVec,
	types.TList(types.TGuid(types.GuidEntity)).String():       NKGetCustomVariableListGUID,
	types.TList(types.TGuid(types.GuidPrefab)).String():        NKGetCustomVariableListPrefab,
	types.TList(types.TGuid(types.GuidConfiguration)).String(): NKGetCustomVariableListConfig,
	types.TList(types.TGuid(types.GuidFaction)).String():       NKGetCustomVariableListFaction,
}

var setCustomVarNodeKind = map[string]graph.NodeKind{
	types.TInt().String():    NKSetCustomVariableInt,
	types.TFloat().String():  NKSetCustomVariableFloat,
	types.TString().String(): NKSetCustomVariableStr,
	types.TBool().String():   NKSetCustomVariableBool,
	types.TEntity().String(): NKSetCustomVariableEntity,
	types.TVec().String():    NKSetCustomVariableVec,
	types.TGuid(types.GuidEntity).String():       NKSetCustomVariableGUID,
	types.TGuid(types.GuidPrefab).String():        NKSetCustomVariablePrefab,
	types.TGuid(types.GuidConfiguration).String(): NKSetCustomVariableConfig,
	types.TGuid(types.GuidFaction).String():       NKSetCustomVariableFaction,
}

// UnsupportedTypeError reports that an operator does not accept t.
type UnsupportedTypeError struct {
	Op string
	T  types.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %s for %s", e.T, e.Op)
}

// TypeMismatchError reports that an operator's two operands disagree in
// type when the operator requires them to match.
type TypeMismatchError struct {
	Op     string
	T1, T2 types.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch for %s: %s vs %s", e.Op, e.T1, e.T2)
}

// GetLocalVariable creates a node that reads a local variable of type t,
// specialized to that type.
func GetLocalVariable(g graph.Graph, t types.Type) (graph.Node, error) {
	kind, ok := localVarNodeKind[t.String()]
	if !ok {
		return nil, &UnsupportedTypeError{Op: "local variable", T: t}
	}
	idx := localVarIndex[t.String()]
	n := g.AddNode(kind)
	n.SetPin(0, graph.DataType(idx), false)
	n.SetPin(1, graph.DataType(idx), true)
	return n, nil
}

// SetLocalVariable creates a node that writes a local variable of type t.
func SetLocalVariable(g graph.Graph, t types.Type) (graph.Node, error) {
	kind, ok := setLocalVarNodeKind[t.String()]
	if !ok {
		return nil, &UnsupportedTypeError{Op: "local variable", T: t}
	}
	idx := localVarIndex[t.String()]
	n := g.AddNode(kind)
	n.SetPin(1, graph.DataType(idx), false)
	return n, nil
}

// GetCustomVariable creates a node that reads an entity-attached custom
// variable of type t.
func GetCustomVariable(g graph.Graph, t types.Type) (graph.Node, error) {
	kind, ok := customVarNodeKind[t.String()]
	if !ok {
		return nil, &UnsupportedTypeError{Op: "custom variable", T: t}
	}
	idx := customVarIndex[t.String()]
	n := g.AddNode(kind)
	n.SetPin(0, graph.DataType(idx), true)
	return n, nil
}

// SetCustomVariable creates a node that writes an entity-attached custom
// variable of type t.
func SetCustomVariable(g graph.Graph, t types.Type) (graph.Node, error) {
	kind, ok := setCustomVarNodeKind[t.String()]
	if !ok {
		return nil, &UnsupportedTypeError{Op: "custom variable", T: t}
	}
	idx := customVarIndex[t.String()]
	n := g.AddNode(kind)
	n.SetPin(2, graph.DataType(idx), false)
	return n, nil
}

// binaryOutPin/unaryOutPin are the out-pin indices used by the operator
// nodes below. Pins are keyed by index alone, not by index+direction, so
// an operator's result pin must never reuse an operand's in-pin index.
const (
	binaryOutPin = 2
	unaryOutPin  = 1
)

func fillLiteral(n graph.Node, pin int, e fragment.Expr) {
	switch e.Literal.Kind {
	case fragment.LiteralInt:
		n.Fill(pin, e.Literal.Int)
	case fragment.LiteralFloat:
		n.Fill(pin, e.Literal.Float)
	case fragment.LiteralString:
		n.Fill(pin, e.Literal.String)
	case fragment.LiteralBool:
		n.Fill(pin, e.Literal.Bool)
	}
}

// Add creates an addition node for e1+e2. Both operands must share the
// same type, one of Int, Float or Vec.
func Add(g graph.Graph, e1, e2 fragment.Expr) (graph.Node, error) {
	if !e1.Type.Equals(e2.Type) {
		return nil, &TypeMismatchError{Op: "addition", T1: e1.Type, T2: e2.Type}
	}
	switch e1.Type.Kind {
	case types.Int:
		n := g.AddNode(NKAdditionInt)
		n.SetPin(0, graph.Integer, false)
		n.SetPin(1, graph.Integer, false)
		n.SetPin(binaryOutPin, graph.Integer, true)
		fillLiteral(n, 0, e1)
		fillLiteral(n, 1, e2)
		return n, nil
	case types.Float:
		n := g.AddNode(NKAdditionFloat)
		n.SetPin(0, graph.Float, false)
		n.SetPin(1, graph.Float, false)
		n.SetPin(binaryOutPin, graph.Float, true)
		fillLiteral(n, 0, e1)
		fillLiteral(n, 1, e2)
		return n, nil
	case types.Vec:
		n := g.AddNode(NK3DVectorAddition)
		n.SetPin(0, graph.Vector, false)
		n.SetPin(1, graph.Vector, false)
		n.SetPin(binaryOutPin, graph.Vector, true)
		return n, nil
	default:
		return nil, &UnsupportedTypeError{Op: "addition", T: e1.Type}
	}
}

// Sub creates a subtraction node for e1-e2.
func Sub(g graph.Graph, e1, e2 fragment.Expr) (graph.Node, error) {
	if !e1.Type.Equals(e2.Type) {
		return nil, &TypeMismatchError{Op: "subtraction", T1: e1.Type, T2: e2.Type}
	}
	switch e1.Type.Kind {
	case types.Int:
		n := g.AddNode(NKSubtractionInt)
		n.SetPin(0, graph.Integer, false)
		n.SetPin(1, graph.Integer, false)
		n.SetPin(binaryOutPin, graph.Integer, true)
		fillLiteral(n, 0, e1)
		fillLiteral(n, 1, e2)
		return n, nil
	case types.Float:
		n := g.AddNode(NKSubtractionFloat)
		n.SetPin(0, graph.Float, false)
		n.SetPin(1, graph.Float, false)
		n.SetPin(binaryOutPin, graph.Float, true)
		fillLiteral(n, 0, e1)
		fillLiteral(n, 1, e2)
		return n, nil
	case types.Vec:
		n := g.AddNode(NK3DVectorSubtraction)
		n.SetPin(0, graph.Vector, false)
		n.SetPin(1, graph.Vector, false)
		n.SetPin(binaryOutPin, graph.Vector, true)
		return n, nil
	default:
		return nil, &UnsupportedTypeError{Op: "subtraction", T: e1.Type}
	}
}

// Mul creates a multiplication node for e1*e2. Vec*Float (scaling) is the
// one case where operand types legitimately differ.
func Mul(g graph.Graph, e1, e2 fragment.Expr) (graph.Node, error) {
	vecScale := e1.Type.Kind == types.Vec && e2.Type.Kind == types.Float
	if !e1.Type.Equals(e2.Type) && !vecScale {
		return nil, &TypeMismatchError{Op: "multiplication", T1: e1.Type, T2: e2.Type}
	}
	switch e1.Type.Kind {
	case types.Int:
		n := g.AddNode(NKMultiplicationInt)
		n.SetPin(0, graph.Integer, false)
		n.SetPin(1, graph.Integer, false)
		n.SetPin(binaryOutPin, graph.Integer, true)
		fillLiteral(n, 0, e1)
		fillLiteral(n, 1, e2)
		return n, nil
	case types.Float:
		n := g.AddNode(NKMultiplicationFloat)
		n.SetPin(0, graph.Float, false)
		n.SetPin(1, graph.Float, false)
		n.SetPin(binaryOutPin, graph.Float, true)
		fillLiteral(n, 0, e1)
		fillLiteral(n, 1, e2)
		return n, nil
	case types.Vec:
		n := g.AddNode(NK3DVectorZoom)
		n.SetPin(0, graph.Vector, false)
		n.SetPin(1, graph.Float, false)
		n.SetPin(binaryOutPin, graph.Vector, true)
		if e2.IsLiteral() {
			n.SetValue(1, e2.Literal.Float)
		}
		return n, nil
	default:
		return nil, &UnsupportedTypeError{Op: "multiplication", T: e1.Type}
	}
}

// Div creates a division node for e1/e2. Vec division is not supported.
func Div(g graph.Graph, e1, e2 fragment.Expr) (graph.Node, error) {
	if !e1.Type.Equals(e2.Type) {
		return nil, &TypeMismatchError{Op: "division", T1: e1.Type, T2: e2.Type}
	}
	switch e1.Type.Kind {
	case types.Int:
		n := g.AddNode(NKDivisionInt)
		n.SetPin(0, graph.Integer, false)
		n.SetPin(1, graph.Integer, false)
		n.SetPin(binaryOutPin, graph.Integer, true)
		fillLiteral(n, 0, e1)
		fillLiteral(n, 1, e2)
		return n, nil
	case types.Float:
		n := g.AddNode(NKDivisionFloat)
		n.SetPin(0, graph.Float, false)
		n.SetPin(1, graph.Float, false)
		n.SetPin(binaryOutPin, graph.Float, true)
		fillLiteral(n, 0, e1)
		fillLiteral(n, 1, e2)
		return n, nil
	default:
		return nil, &UnsupportedTypeError{Op: "division", T: e1.Type}
	}
}

// Mod creates a modulo node. Int-only.
func Mod(g graph.Graph, e1, e2 fragment.Expr) (graph.Node, error) {
	if !e1.Type.Equals(e2.Type) {
		return nil, &TypeMismatchError{Op: "modulo", T1: e1.Type, T2: e2.Type}
	}
	if e1.Type.Kind != types.Int {
		return nil, &UnsupportedTypeError{Op: "modulo", T: e1.Type}
	}
	n := g.AddNode(NKModuloOperation)
	n.SetPin(0, graph.Integer, false)
	n.SetPin(1, graph.Integer, false)
	n.SetPin(binaryOutPin, graph.Integer, true)
	if e1.IsLiteral() {
		n.SetValue(0, e1.Literal.Int)
	}
	if e2.IsLiteral() {
		n.SetValue(1, e2.Literal.Int)
	}
	return n, nil
}

// CompareOp identifies a relational operator.
type CompareOp int

const (
	LT CompareOp = iota
	GT
	LE
	GE
)

// Compare creates a relational comparison node (LT/GT/LE/GE) over Int or
// Float operands.
func Compare(g graph.Graph, e1, e2 fragment.Expr, op CompareOp) (graph.Node, error) {
	if !e1.Type.Equals(e2.Type) {
		return nil, &TypeMismatchError{Op: "compare", T1: e1.Type, T2: e2.Type}
	}
	var kind graph.NodeKind
	var dt graph.DataType
	switch e1.Type.Kind {
	case types.Int:
		dt = graph.Integer
		switch op {
		case LT:
			kind = NKLessThanInt
		case GT:
			kind = NKGreaterThanInt
		case LE:
			kind = NKLessThanorEqualToInt
		case GE:
			kind = NKGreaterThanorEqualToInt
		}
	case types.Float:
		dt = graph.Float
		switch op {
		case LT:
			kind = NKLessThanFloat
		case GT:
			kind = NKGreaterThanFloat
		case LE:
			kind = NKLessThanorEqualToFloat
		case GE:
			kind = NKGreaterThanorEqualToFloat
		}
	default:
		return nil, &UnsupportedTypeError{Op: "compare", T: e1.Type}
	}
	n := g.AddNode(kind)
	n.SetPin(0, dt, false)
	n.SetPin(1, dt, false)
	n.SetPin(binaryOutPin, graph.Boolean, true)
	fillLiteral(n, 0, e1)
	fillLiteral(n, 1, e2)
	return n, nil
}

// Equal creates an equality node over Int/Float/String/Vec/Entity/Bool or
// a Guid of any kind except Faction, which the original node catalog
// never specialized an EqualFaction variant for.
func Equal(g graph.Graph, e1, e2 fragment.Expr) (graph.Node, error) {
	if !e1.Type.Equals(e2.Type) {
		return nil, &TypeMismatchError{Op: "equal", T1: e1.Type, T2: e2.Type}
	}
	switch e1.Type.Kind {
	case types.Int:
		n := g.AddNode(NKEqualInt)
		n.SetPin(0, graph.Integer, false)
		n.SetPin(1, graph.Integer, false)
		n.SetPin(binaryOutPin, graph.Boolean, true)
		fillLiteral(n, 0, e1)
		fillLiteral(n, 1, e2)
		return n, nil
	case types.Float:
		n := g.AddNode(NKEqualFloat)
		n.SetPin(0, graph.Float, false)
		n.SetPin(1, graph.Float, false)
		n.SetPin(binaryOutPin, graph.Boolean, true)
		fillLiteral(n, 0, e1)
		fillLiteral(n, 1, e2)
		return n, nil
	case types.String:
		n := g.AddNode(NKEqualStr)
		n.SetPin(0, graph.String, false)
		n.SetPin(1, graph.String, false)
		n.SetPin(binaryOutPin, graph.Boolean, true)
		fillLiteral(n, 0, e1)
		fillLiteral(n, 1, e2)
		return n, nil
	case types.Vec:
		n := g.AddNode(NKEqualVec)
		n.SetPin(0, graph.Vector, false)
		n.SetPin(1, graph.Vector, false)
		n.SetPin(binaryOutPin, graph.Boolean, true)
		return n, nil
	case types.Entity:
		n := g.AddNode(NKEqualEntity)
		n.SetPin(0, graph.EntityType, false)
		n.SetPin(1, graph.EntityType, false)
		n.SetPin(binaryOutPin, graph.Boolean, true)
		return n, nil
	case types.Bool:
		n := g.AddNode(NKEqualBool)
		n.SetPin(0, graph.Boolean, false)
		n.SetPin(1, graph.Boolean, false)
		n.SetPin(binaryOutPin, graph.Boolean, true)
		return n, nil
	case types.Guid:
		switch e1.Type.GuidKind {
		case types.GuidEntity:
			n := g.AddNode(NKEqualEntity)
			n.SetPin(0, graph.GUID, false)
			n.SetPin(1, graph.GUID, false)
			n.SetPin(binaryOutPin, graph.Boolean, true)
			return n, nil
		case types.GuidPrefab:
			n := g.AddNode(NKEqualPrefab)
			n.SetPin(0, graph.Prefab, false)
			n.SetPin(1, graph.Prefab, false)
			n.SetPin(binaryOutPin, graph.Boolean, true)
			return n, nil
		case types.GuidConfiguration:
			n := g.AddNode(NKEqualConfig)
			n.SetPin(0, graph.Configuration, false)
			n.SetPin(1, graph.Configuration, false)
			n.SetPin(binaryOutPin, graph.Boolean, true)
			return n, nil
		default:
			return nil, &UnsupportedTypeError{Op: "equal", T: e1.Type}
		}
	default:
		return nil, &UnsupportedTypeError{Op: "equal", T: e1.Type}
	}
}

// NotEqual builds e1 != e2 as Not(Equal(e1, e2)), matching the source
// catalog which never specialized a dedicated NE node.
func NotEqual(g graph.Graph, e1, e2 fragment.Expr, eq graph.Node) graph.Node {
	n := g.AddNode(NKLogicalNOTOperation)
	n.SetPin(0, graph.Boolean, false)
	n.SetPin(unaryOutPin, graph.Boolean, true)
	return joinUnary(n, eq)
}

func joinUnary(not graph.Node, operand graph.Node) graph.Node {
	operand.Connect(not, binaryOutPin, 0, false)
	return not
}

// Not creates a logical NOT node over a Bool operand.
func Not(g graph.Graph, e fragment.Expr) (graph.Node, error) {
	if e.Type.Kind != types.Bool {
		return nil, &UnsupportedTypeError{Op: "logical not", T: e.Type}
	}
	n := g.AddNode(NKLogicalNOTOperation)
	n.SetPin(0, graph.Boolean, false)
	n.SetPin(unaryOutPin, graph.Boolean, true)
	if e.IsLiteral() {
		n.SetValue(0, e.Literal.Bool, graph.Boolean)
	}
	return n, nil
}

// BitwiseOp identifies a bitwise operator (Int operands only). ShA is a
// logical right shift is never produced here: a right-arithmetic-shift
// is synthesized by the caller from several nodes, not a single bitwise
// node (see the emitter's shift handling).
type BitwiseOp int

const (
	BitAnd BitwiseOp = iota
	BitOr
	BitXor
	ShiftLeft
	ShiftRightLogical
)

// Bitwise creates a bitwise operator node over Int operands.
func Bitwise(g graph.Graph, e1, e2 fragment.Expr, op BitwiseOp) (graph.Node, error) {
	if !e1.Type.Equals(e2.Type) {
		return nil, &TypeMismatchError{Op: "bitwise", T1: e1.Type, T2: e2.Type}
	}
	if e1.Type.Kind != types.Int {
		return nil, &UnsupportedTypeError{Op: "bitwise", T: e1.Type}
	}
	var kind graph.NodeKind
	switch op {
	case BitAnd:
		kind = NKBitwiseAND
	case BitOr:
		kind = NKBitwiseOR
	case BitXor:
		kind = NKXORExclusiveOR
	case ShiftLeft:
		kind = NKLeftShiftOperation
	case ShiftRightLogical:
		kind = NKRightShiftOperation
	}
	n := g.AddNode(kind)
	n.SetPin(0, graph.Integer, false)
	n.SetPin(1, graph.Integer, false)
	n.SetPin(binaryOutPin, graph.Integer, true)
	if e1.IsLiteral() {
		n.SetValue(0, e1.Literal.Int)
	}
	if e2.IsLiteral() {
		n.SetValue(1, e2.Literal.Int)
	}
	return n, nil
}

// BitwiseNot creates a one's-complement node over an Int operand.
func BitwiseNot(g graph.Graph, e fragment.Expr) (graph.Node, error) {
	if e.Type.Kind != types.Int {
		return nil, &UnsupportedTypeError{Op: "bitwise not", T: e.Type}
	}
	n := g.AddNode(NKBitwiseComplement)
	n.SetPin(0, graph.Integer, false)
	n.SetPin(unaryOutPin, graph.Integer, true)
	if e.IsLiteral() {
		n.SetValue(0, e.Literal.Int)
	}
	return n, nil
}

// LogicalOp identifies a logical (Bool-only) binary operator.
type LogicalOp int

const (
	LogAnd LogicalOp = iota
	LogOr
	LogXor
)

// Logical creates a logical AND/OR/XOR node over Bool operands.
func Logical(g graph.Graph, e1, e2 fragment.Expr, op LogicalOp) (graph.Node, error) {
	if !e1.Type.Equals(e2.Type) {
		return nil, &TypeMismatchError{Op: "logical", T1: e1.Type, T2: e2.Type}
	}
	if e1.Type.Kind != types.Bool {
		return nil, &UnsupportedTypeError{Op: "logical", T: e1.Type}
	}
	var kind graph.NodeKind
	switch op {
	case LogAnd:
		kind = NKLogicalANDOperation
	case LogOr:
		kind = NKLogicalOROperation
	case LogXor:
		kind = NKLogicalXOROperation
	}
	n := g.AddNode(kind)
	n.SetPin(0, graph.Boolean, false)
	n.SetPin(1, graph.Boolean, false)
	n.SetPin(binaryOutPin, graph.Boolean, true)
	if e1.IsLiteral() {
		n.SetValue(0, e1.Literal.Bool, graph.Boolean)
	}
	if e2.IsLiteral() {
		n.SetValue(1, e2.Literal.Bool, graph.Boolean)
	}
	return n, nil
}

// castInIndex/castOutIndex are the type-index selectors for the single
// shared cast node, DataTypeConversion.
var castInIndex = map[string]int{
	types.TInt().String():    0,
	types.TEntity().String(): 1,
	types.TGuid(types.GuidEntity).String():  2,
	types.TBool().String():                   3,
	types.TFloat().String():                  4,
	types.TVec().String():                    5,
	types.TGuid(types.GuidFaction).String(): 6,
}

var castOutIndex = map[string]int{
	types.TBool().String():   0,
	types.TFloat().String():  1,
	types.TString().String(): 2,
	types.TInt().String():    3,
}

// castAllowed lists, per source-type string, the target Kinds a Cast may
// convert to.
var castAllowed = map[types.Kind][]types.Kind{
	types.Int:   {types.Float, types.Bool, types.String},
	types.Float: {types.Int, types.String},
	types.Bool:  {types.Int, types.String},
	types.Vec:   {types.String},
	types.Entity: {types.String},
}

// Cast creates the universal type-conversion node for expr cast to to.
// Guid sources are restricted to the Entity and Faction kinds, converting
// only to String; every other Guid kind is rejected even though the cast
// node's own in-type table has a slot reserved for Entity/Faction but not
// Prefab/Configuration.
func Cast(g graph.Graph, e fragment.Expr, to types.Type) (graph.Node, error) {
	srcKind := e.Type.Kind
	if srcKind == types.Guid {
		if e.Type.GuidKind != types.GuidEntity && e.Type.GuidKind != types.GuidFaction {
			return nil, &UnsupportedTypeError{Op: "cast", T: e.Type}
		}
		if to.Kind != types.String {
			return nil, &UnsupportedTypeError{Op: "cast", T: to}
		}
	} else {
		allowed, ok := castAllowed[srcKind]
		if !ok {
			return nil, &UnsupportedTypeError{Op: "cast", T: e.Type}
		}
		found := false
		for _, k := range allowed {
			if k == to.Kind {
				found = true
				break
			}
		}
		if !found {
			return nil, &UnsupportedTypeError{Op: "cast", T: to}
		}
	}

	in, ok := castInIndex[e.Type.String()]
	if !ok {
		return nil, &UnsupportedTypeError{Op: "cast", T: e.Type}
	}
	out, ok := castOutIndex[to.String()]
	if !ok {
		return nil, &UnsupportedTypeError{Op: "cast", T: to}
	}
	n := g.AddNode(NKDataTypeConversion)
	n.SetPin(0, graph.DataType(in), false)
	n.SetPin(unaryOutPin, graph.DataType(out), true)
	switch e.Literal.Kind {
	case fragment.LiteralInt:
		n.Fill(0, e.Literal.Int)
	case fragment.LiteralFloat:
		n.Fill(0, e.Literal.Float)
	}
	return n, nil
}
