package registry

import "github.com/hackermdch/giscript/internal/types"

// GenericPins records, for a node with one or more type-polymorphic pins,
// how to map a resolved script type to that node's internal type-index
// selector. A node kind shared by many overloads (OnCustomVariableChanges,
// the list builtins) exposes its polymorphism this way instead of through
// a distinct node kind per type.
type GenericPins struct {
	// In maps a parameter pin index to its type -> selector table.
	In map[int]TypeIndex
	// Out maps a return pin index (0 for a single return value) to its
	// type -> selector table.
	Out map[int]TypeIndex
}

// TypeIndex maps a resolved script type to the integer selector the node
// expects on its type-index input. It is keyed by Type.String() rather
// than by types.Type itself: Type embeds *Type fields (Elem/Key/Value),
// so two structurally-equal List/Map types are rarely the same pointer
// and would collide under Go's shallow struct equality.
type TypeIndex map[string]int

// Lookup resolves t's selector, matching by structural type string.
func (ti TypeIndex) Lookup(t types.Type) (int, bool) {
	idx, ok := ti[t.String()]
	return idx, ok
}

// typeIndexTable is the selector assignment shared by every generic node
// in this registry: it is stable across node kinds because the runtime's
// type-index enumeration is global, not per-node.
func typeIndexTable() TypeIndex {
	return TypeIndex{
		types.TInt().String():                               0,
		types.TString().String():                             1,
		types.TEntity().String():                             2,
		types.TGuid(types.GuidEntity).String():                3,
		types.TFloat().String():                               4,
		types.TVec().String():                                 5,
		types.TBool().String():                                6,
		types.TList(types.TInt()).String():                    7,
		types.TList(types.TString()).String():                 8,
		types.TList(types.TEntity()).String():                 9,
		types.TList(types.TGuid(types.GuidEntity)).String():   10,
		types.TList(types.TFloat()).String():                  11,
		types.TList(types.TVec()).String():                    12,
		types.TList(types.TBool()).String():                   13,
		types.TGuid(types.GuidConfiguration).String():         14,
		types.TGuid(types.GuidPrefab).String():                15,
		types.TList(types.TGuid(types.GuidConfiguration)).String(): 16,
		types.TList(types.TGuid(types.GuidPrefab)).String():        17,
		types.TGuid(types.GuidFaction).String():                    18,
		types.TList(types.TGuid(types.GuidFaction)).String():       19,
	}
}

// customVariableChangesGenericPins backs the OnCustomVariableChanges event:
// its "before"/"after" pins (indices 3 and 4) share one type-index table
// on the output side, selecting which of the twenty registered overloads'
// node variants actually ran.
var customVariableChangesGenericPins = &GenericPins{
	Out: map[int]TypeIndex{
		3: typeIndexTable(),
		4: typeIndexTable(),
	},
}

// listElementAndIndexGenericPins backs InsertValue/SetValue: pin 0 is the
// list itself, pin 2 is the element value; both select the same node
// variant, so both input pins share the table.
var listElementAndIndexGenericPins = &GenericPins{
	In: map[int]TypeIndex{
		0: typeIndexTable(),
		2: typeIndexTable(),
	},
}

// listOnlyGenericPins backs RemoveValue/Clear: only pin 0 (the list) is
// polymorphic.
var listOnlyGenericPins = &GenericPins{
	In: map[int]TypeIndex{
		0: typeIndexTable(),
	},
}
