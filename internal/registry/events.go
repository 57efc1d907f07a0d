// Package registry implements the built-in event and function lookup
// tables: the fixed catalog of node kinds the compiler can call into,
// together with the overload-resolution rules that pick among them.
package registry

import (
	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/types"
)

// EventParam is one named, typed parameter of an event overload.
type EventParam struct {
	Name string
	Type types.Type
}

// EventProto is one registered overload of a script event. Entrypoint
// scripts declare their own parameter subset; ResolveEvent picks the
// first overload whose parameter set contains every one named in
// source, matching both name and type.
type EventProto struct {
	Node       graph.NodeKind
	Params     []EventParam
	GenericPins *GenericPins
}

// EventOverloads maps an event name to its registered overloads, in
// registration order (first-match wins on ambiguity).
var EventOverloads = map[string][]EventProto{
	"OnEntityCreated": {
		{Node: NKWhenEntityIsCreated, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}}, GenericPins: nil},
	},
	"OnEntityRemovedDestroyed": {
		{Node: NKWhenEntityIsRemovedDestroyed, Params: []EventParam{{Name: "source", Type: types.TGuid(types.GuidEntity)}}, GenericPins: nil},
	},
	"OnPresetStatusChanges": {
		{Node: NKWhenPresetStatusChanges, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TInt()}, {Name: "b", Type: types.TInt()}, {Name: "c", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnTimerIsTriggered": {
		{Node: NKWhenTimerIsTriggered, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TString()}, {Name: "b", Type: types.TInt()}, {Name: "c", Type: types.TInt()}, {Name: "d", Type: types.TGuid(types.GuidEntity)}}, GenericPins: nil},
	},
	"OnBasicMotionDeviceStops": {
		{Node: NKWhenBasicMotionDeviceStops, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TString()}}, GenericPins: nil},
	},
	"OnExitingCollisionTrigger": {
		{Node: NKWhenExitingCollisionTrigger, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TEntity()}, {Name: "b", Type: types.TGuid(types.GuidEntity)}, {Name: "c", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnEnteringCollisionTrigger": {
		{Node: NKWhenEnteringCollisionTrigger, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TEntity()}, {Name: "b", Type: types.TGuid(types.GuidEntity)}, {Name: "c", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnPathReachesWaypoint": {
		{Node: NKWhenPathReachesWaypoint, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TString()}, {Name: "b", Type: types.TInt()}, {Name: "c", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnEntityFactionChanges": {
		{Node: NKWhenEntityFactionChanges, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TGuid(types.GuidFaction)}, {Name: "b", Type: types.TGuid(types.GuidFaction)}}, GenericPins: nil},
	},
	"OnOnHitDetectionIsTriggered": {
		{Node: NKWhenOnHitDetectionIsTriggered, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TBool()}, {Name: "b", Type: types.TEntity()}, {Name: "c", Type: types.TVec()}}, GenericPins: nil},
	},
	"OnCharacterRevives": {
		{Node: NKWhenCharacterRevives, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}}, GenericPins: nil},
	},
	"OnAllPlayersCharactersAreDown": {
		{Node: NKWhenAllPlayersCharactersAreDown, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}}, GenericPins: nil},
	},
	"OnPlayerIsAbnormallyDownedandRevives": {
		{Node: NKWhenPlayerIsAbnormallyDownedandRevives, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}}, GenericPins: nil},
	},
	"OnAllPlayersCharactersAreRevived": {
		{Node: NKWhenAllPlayersCharactersAreRevived, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}}, GenericPins: nil},
	},
	"OnPlayerTeleportCompletes": {
		{Node: NKWhenPlayerTeleportCompletes, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}}, GenericPins: nil},
	},
	"OnUnitStatusChanges": {
		{Node: NKWhenUnitStatusChanges, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TGuid(types.GuidConfiguration)}, {Name: "b", Type: types.TEntity()}, {Name: "c", Type: types.TBool()}, {Name: "d", Type: types.TFloat()}, {Name: "e", Type: types.TInt()}, {Name: "f", Type: types.TInt()}, {Name: "g", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnTabIsSelected": {
		{Node: NKWhenTabIsSelected, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TInt()}, {Name: "b", Type: types.TEntity()}, {Name: "c", Type: types.TGuid(types.GuidEntity)}}, GenericPins: nil},
	},
	"OnGlobalTimerIsTriggered": {
		{Node: NKWhenGlobalTimerIsTriggered, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TString()}}, GenericPins: nil},
	},
	"OnUIControlGroupIsTriggered": {
		{Node: NKWhenUIControlGroupIsTriggered, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TInt()}, {Name: "b", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnCreationEntersCombat": {
		{Node: NKWhenCreationEntersCombat, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}}, GenericPins: nil},
	},
	"OnCreationLeavesCombat": {
		{Node: NKWhenCreationLeavesCombat, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}}, GenericPins: nil},
	},
	"OnPlayerClassChanges": {
		{Node: NKWhenPlayerClassChanges, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TGuid(types.GuidConfiguration)}, {Name: "b", Type: types.TGuid(types.GuidConfiguration)}}, GenericPins: nil},
	},
	"OnPlayerClassLevelChanges": {
		{Node: NKWhenPlayerClassLevelChanges, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TInt()}, {Name: "b", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnSkillNodeIsCalled": {
		{Node: NKWhenSkillNodeIsCalled, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TString()}, {Name: "b", Type: types.TString()}, {Name: "c", Type: types.TString()}}, GenericPins: nil},
	},
	"OnHPIsRecovered": {
		{Node: NKWhenHPIsRecovered, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TEntity()}, {Name: "b", Type: types.TFloat()}, {Name: "c", Type: types.TList(types.TString())}}, GenericPins: nil},
	},
	"OnInitiatingHPRecovery": {
		{Node: NKWhenInitiatingHPRecovery, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TEntity()}, {Name: "b", Type: types.TFloat()}, {Name: "c", Type: types.TList(types.TString())}}, GenericPins: nil},
	},
	"OnAggroTargetChanges": {
		{Node: NKWhenAggroTargetChanges, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TEntity()}, {Name: "b", Type: types.TEntity()}}, GenericPins: nil},
	},
	"OnSelfEntersCombat": {
		{Node: NKWhenSelfEntersCombat, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}}, GenericPins: nil},
	},
	"OnSelfLeavesCombat": {
		{Node: NKWhenSelfLeavesCombat, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}}, GenericPins: nil},
	},
	"OnCreationReachesPatrolWaypoint": {
		{Node: NKWhenCreationReachesPatrolWaypoint, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TInt()}, {Name: "b", Type: types.TInt()}, {Name: "c", Type: types.TInt()}, {Name: "d", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnShieldIsAttacked": {
		{Node: NKWhenShieldIsAttacked, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TEntity()}, {Name: "b", Type: types.TGuid(types.GuidEntity)}, {Name: "c", Type: types.TGuid(types.GuidConfiguration)}, {Name: "d", Type: types.TInt()}, {Name: "e", Type: types.TInt()}, {Name: "f", Type: types.TFloat()}, {Name: "g", Type: types.TFloat()}}, GenericPins: nil},
	},
	"OnTextBubbleIsCompleted": {
		{Node: NKWhenTextBubbleIsCompleted, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TEntity()}, {Name: "a", Type: types.TGuid(types.GuidConfiguration)}, {Name: "b", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnEquipmentAffixValueChanges": {
		{Node: NKWhenEquipmentAffixValueChanges, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TInt()}, {Name: "b", Type: types.TInt()}, {Name: "c", Type: types.TFloat()}, {Name: "d", Type: types.TFloat()}}, GenericPins: nil},
	},
	"OnItemIsAddedtoInventory": {
		{Node: NKWhenItemIsAddedtoInventory, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TGuid(types.GuidConfiguration)}, {Name: "b", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnItemIsLostFromInventory": {
		{Node: NKWhenItemIsLostFromInventory, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TGuid(types.GuidConfiguration)}, {Name: "b", Type: types.TInt()}}, GenericPins: nil},
	},
	"OntheQuantityofInventoryItemChanges": {
		{Node: NKWhentheQuantityofInventoryItemChanges, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TGuid(types.GuidConfiguration)}, {Name: "b", Type: types.TInt()}, {Name: "c", Type: types.TInt()}}, GenericPins: nil},
	},
	"OntheQuantityofInventoryCurrencyChanges": {
		{Node: NKWhentheQuantityofInventoryCurrencyChanges, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TGuid(types.GuidConfiguration)}, {Name: "b", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnEquipmentIsInitialized": {
		{Node: NKWhenEquipmentIsInitialized, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnEquipmentIsEquipped": {
		{Node: NKWhenEquipmentIsEquipped, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnEquipmentIsUnequipped": {
		{Node: NKWhenEquipmentIsUnequipped, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnCustomShopItemIsSold": {
		{Node: NKWhenCustomShopItemIsSold, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TEntity()}, {Name: "b", Type: types.TInt()}, {Name: "c", Type: types.TInt()}, {Name: "d", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnSellingInventoryItemsintheShop": {
		{Node: NKWhenSellingInventoryItemsintheShop, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TEntity()}, {Name: "b", Type: types.TInt()}, {Name: "c", Type: types.TGuid(types.GuidConfiguration)}, {Name: "d", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnItemsintheInventoryAreUsed": {
		{Node: NKWhenItemsintheInventoryAreUsed, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TGuid(types.GuidConfiguration)}, {Name: "b", Type: types.TInt()}}, GenericPins: nil},
	},
	"OnPlayerClassIsRemoved": {
		{Node: NKWhenPlayerClassIsRemoved, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TGuid(types.GuidConfiguration)}, {Name: "b", Type: types.TGuid(types.GuidConfiguration)}}, GenericPins: nil},
	},
	"OnEnteringanInterruptibleState": {
		{Node: NKWhenEnteringanInterruptibleState, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "a", Type: types.TEntity()}}, GenericPins: nil},
	},
	"OnCustomVariableChanges": {
		{Node: NKWhenCustomVariableChangesInt, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TInt()}, {Name: "after", Type: types.TInt()}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesStr, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TString()}, {Name: "after", Type: types.TString()}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesEntity, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TEntity()}, {Name: "after", Type: types.TEntity()}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesGUID, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TGuid(types.GuidEntity)}, {Name: "after", Type: types.TGuid(types.GuidEntity)}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesFloat, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TFloat()}, {Name: "after", Type: types.TFloat()}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesVec, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TVec()}, {Name: "after", Type: types.TVec()}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesBool, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TBool()}, {Name: "after", Type: types.TBool()}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesConfig, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TGuid(types.GuidConfiguration)}, {Name: "after", Type: types.TGuid(types.GuidConfiguration)}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesPrefab, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TGuid(types.GuidPrefab)}, {Name: "after", Type: types.TGuid(types.GuidPrefab)}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesFaction, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TGuid(types.GuidFaction)}, {Name: "after", Type: types.TGuid(types.GuidFaction)}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesListInt, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TList(types.TInt())}, {Name: "after", Type: types.TList(types.TInt())}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesListStr, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TList(types.TString())}, {Name: "after", Type: types.TList(types.TString())}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesListEntity, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TList(types.TEntity())}, {Name: "after", Type: types.TList(types.TEntity())}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesListGUID, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TList(types.TGuid(types.GuidEntity))}, {Name: "after", Type: types.TList(types.TGuid(types.GuidEntity))}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesListFloat, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TList(types.TFloat())}, {Name: "after", Type: types.TList(types.TFloat())}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesListVec, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TList(types.TVec())}, {Name: "after", Type: types.TList(types.TVec())}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesListBool, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TList(types.TBool())}, {Name: "after", Type: types.TList(types.TBool())}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesListConfig, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TList(types.TGuid(types.GuidConfiguration))}, {Name: "after", Type: types.TList(types.TGuid(types.GuidConfiguration))}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesListPrefab, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TList(types.TGuid(types.GuidPrefab))}, {Name: "after", Type: types.TList(types.TGuid(types.GuidPrefab))}}, GenericPins: customVariableChangesGenericPins},
		{Node: NKWhenCustomVariableChangesListFaction, Params: []EventParam{{Name: "sourceEntity", Type: types.TEntity()}, {Name: "sourceGuid", Type: types.TGuid(types.GuidEntity)}, {Name: "name", Type: types.TString()}, {Name: "before", Type: types.TList(types.TGuid(types.GuidFaction))}, {Name: "after", Type: types.TList(types.TGuid(types.GuidFaction))}}, GenericPins: customVariableChangesGenericPins},
	},
}

// UnknownEventError and NoMatchingEventOverloadError distinguish the two
// ways an event reference can fail to resolve, mirroring the error kinds
// the compiler reports.
type UnknownEventError struct{ Name string }

func (e *UnknownEventError) Error() string { return "unknown event: " + e.Name }

type NoMatchingEventOverloadError struct{ Name string }

func (e *NoMatchingEventOverloadError) Error() string {
	return "no matching overload for event: " + e.Name
}

// ResolveEvent finds the overload of name whose parameters are a superset
// of declared (matched by name and exact type), returning the first such
// overload in registration order. An event with zero overload parameters
// that was declared with zero script parameters always matches directly.
func ResolveEvent(name string, declared []EventParam) (*EventProto, error) {
	overloads, ok := EventOverloads[name]
	if !ok {
		return nil, &UnknownEventError{Name: name}
	}
	if len(overloads) == 1 && len(declared) == 0 {
		p := overloads[0]
		return &p, nil
	}
overload:
	for i := range overloads {
		proto := &overloads[i]
		for _, d := range declared {
			if !eventProtoHasParam(proto, d) {
				continue overload
			}
		}
		return proto, nil
	}
	return nil, &NoMatchingEventOverloadError{Name: name}
}

func eventProtoHasParam(proto *EventProto, d EventParam) bool {
	for _, p := range proto.Params {
		if p.Name == d.Name && p.Type.Equals(d.Type) {
			return true
		}
	}
	return false
}
