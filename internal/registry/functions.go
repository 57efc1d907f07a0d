package registry

import (
	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/types"
)

// FunctionProto is one registered overload of a built-in function.
// Return is nil for a void function; Pure marks a function with no side
// effects (safe to use anywhere an expression is expected).
type FunctionProto struct {
	Node        graph.NodeKind
	Return      *types.Type
	Params      []types.Type
	Pure        bool
	GenericPins *GenericPins
}

// FunctionOverloads maps a function name to its registered overloads, in
// registration order (first exact structural match wins; there is no
// implicit conversion between overloads).
var FunctionOverloads = map[string][]FunctionProto{
	"print": {
		{Node: NKPrintString, Return: nil, Params: []types.Type{types.TString()}, Pure: false, GenericPins: nil},
	},
	"ForwardEvent": {
		{Node: NKForwardingEvent, Return: nil, Params: []types.Type{types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"GetRandomFloatingPointNumber": {
		{Node: NKGetRandomFloatingPointNumber, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TFloat(), types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"WeightedRandom": {
		{Node: NKWeightedRandom, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TList(types.TInt())}, Pure: true, GenericPins: nil},
	},
	"SetPresetStatus": {
		{Node: NKSetPresetStatus, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"GetPresetStatus": {
		{Node: NKGetPresetStatus, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"DestroyEntity": {
		{Node: NKDestroyEntity, Return: nil, Params: []types.Type{types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"CreateEntity": {
		{Node: NKCreateEntity, Return: nil, Params: []types.Type{types.TGuid(types.GuidEntity), types.TList(types.TInt())}, Pure: false, GenericPins: nil},
	},
	"GetSelfEntity": {
		{Node: NKGetSelfEntity, Return: func() *types.Type { t := types.TEntity(); return &t }(), Params: []types.Type{}, Pure: true, GenericPins: nil},
	},
	"QueryEntitybyGUID": {
		{Node: NKQueryEntitybyGUID, Return: func() *types.Type { t := types.TEntity(); return &t }(), Params: []types.Type{types.TGuid(types.GuidEntity)}, Pure: true, GenericPins: nil},
	},
	"QueryGUIDbyEntity": {
		{Node: NKQueryGUIDbyEntity, Return: func() *types.Type { t := types.TGuid(types.GuidEntity); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"SettleStage": {
		{Node: NKSettleStage, Return: nil, Params: []types.Type{types.TBool()}, Pure: false, GenericPins: nil},
	},
	"StartTimer": {
		{Node: NKStartTimer, Return: nil, Params: []types.Type{types.TEntity(), types.TString(), types.TBool(), types.TList(types.TFloat())}, Pure: false, GenericPins: nil},
	},
	"PauseTimer": {
		{Node: NKPauseTimer, Return: nil, Params: []types.Type{types.TEntity(), types.TString()}, Pure: false, GenericPins: nil},
	},
	"ResumeTimer": {
		{Node: NKResumeTimer, Return: nil, Params: []types.Type{types.TEntity(), types.TString()}, Pure: false, GenericPins: nil},
	},
	"StopTimer": {
		{Node: NKStopTimer, Return: nil, Params: []types.Type{types.TEntity(), types.TString()}, Pure: false, GenericPins: nil},
	},
	"AddUniformBasicLinearMotionDevice": {
		{Node: NKAddUniformBasicLinearMotionDevice, Return: nil, Params: []types.Type{types.TEntity(), types.TString(), types.TFloat(), types.TVec()}, Pure: false, GenericPins: nil},
	},
	"AddUniformBasicRotationBasedMotionDevice": {
		{Node: NKAddUniformBasicRotationBasedMotionDevice, Return: nil, Params: []types.Type{types.TEntity(), types.TString(), types.TFloat(), types.TFloat(), types.TVec()}, Pure: false, GenericPins: nil},
	},
	"StopandDeleteBasicMotionDevice": {
		{Node: NKStopandDeleteBasicMotionDevice, Return: nil, Params: []types.Type{types.TEntity(), types.TString(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"PauseBasicMotionDevice": {
		{Node: NKPauseBasicMotionDevice, Return: nil, Params: []types.Type{types.TEntity(), types.TString()}, Pure: false, GenericPins: nil},
	},
	"RecoverBasicMotionDevice": {
		{Node: NKRecoverBasicMotionDevice, Return: nil, Params: []types.Type{types.TEntity(), types.TString()}, Pure: false, GenericPins: nil},
	},
	"ActivateDisableCollisionTrigger": {
		{Node: NKActivateDisableCollisionTrigger, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"PlayTimedEffects": {
		{Node: NKPlayTimedEffects, Return: nil, Params: []types.Type{types.TGuid(types.GuidConfiguration), types.TEntity(), types.TString(), types.TBool(), types.TBool(), types.TVec(), types.TVec(), types.TFloat(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"MountLoopingSpecialEffect": {
		{Node: NKMountLoopingSpecialEffect, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TGuid(types.GuidConfiguration), types.TEntity(), types.TString(), types.TBool(), types.TBool(), types.TVec(), types.TVec(), types.TFloat(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"ClearLoopingSpecialEffect": {
		{Node: NKClearLoopingSpecialEffect, Return: nil, Params: []types.Type{types.TInt(), types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"ActivateDisableEntityDeploymentGroup": {
		{Node: NKActivateDisableEntityDeploymentGroup, Return: nil, Params: []types.Type{types.TInt(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"GetCurrentlyActiveEntityDeploymentGroups": {
		{Node: NKGetCurrentlyActiveEntityDeploymentGroups, Return: func() *types.Type { t := types.TList(types.TInt()); return &t }(), Params: []types.Type{}, Pure: true, GenericPins: nil},
	},
	"ForwardingEvent": {
		{Node: NKForwardingEvent, Return: nil, Params: []types.Type{types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"Pi": {
		{Node: NKPi, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"ModuloOperation": {
		{Node: NKModuloOperation, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TInt(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"LogarithmOperation": {
		{Node: NKLogarithmOperation, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TFloat(), types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"ArithmeticSquareRootOperation": {
		{Node: NKArithmeticSquareRootOperation, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"RoundtoIntegerOperation": {
		{Node: NKRoundtoIntegerOperation, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"Create3DVector": {
		{Node: NKCreate3DVector, Return: func() *types.Type { t := types.TVec(); return &t }(), Params: []types.Type{types.TFloat(), types.TFloat(), types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"LogicalANDOperation": {
		{Node: NKLogicalANDOperation, Return: func() *types.Type { t := types.TBool(); return &t }(), Params: []types.Type{types.TBool(), types.TBool()}, Pure: true, GenericPins: nil},
	},
	"LogicalOROperation": {
		{Node: NKLogicalOROperation, Return: func() *types.Type { t := types.TBool(); return &t }(), Params: []types.Type{types.TBool(), types.TBool()}, Pure: true, GenericPins: nil},
	},
	"LogicalXOROperation": {
		{Node: NKLogicalXOROperation, Return: func() *types.Type { t := types.TBool(); return &t }(), Params: []types.Type{types.TBool(), types.TBool()}, Pure: true, GenericPins: nil},
	},
	"LogicalNOTOperation": {
		{Node: NKLogicalNOTOperation, Return: func() *types.Type { t := types.TBool(); return &t }(), Params: []types.Type{types.TBool(), types.TBool()}, Pure: true, GenericPins: nil},
	},
	"ActivateDisableNativeCollision": {
		{Node: NKActivateDisableNativeCollision, Return: nil, Params: []types.Type{types.TEntity(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"ActivateDisableNativeCollisionClimbability": {
		{Node: NKActivateDisableNativeCollisionClimbability, Return: nil, Params: []types.Type{types.TEntity(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"ActivateDisableExtraCollision": {
		{Node: NKActivateDisableExtraCollision, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"ActivateDisableExtraCollisionClimbability": {
		{Node: NKActivateDisableExtraCollisionClimbability, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"DistanceBetweenTwoCoordinatePoints": {
		{Node: NKDistanceBetweenTwoCoordinatePoints, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TVec(), types.TVec()}, Pure: true, GenericPins: nil},
	},
	"SwitchFollowMotionDeviceTargetbyGUID": {
		{Node: NKSwitchFollowMotionDeviceTargetbyGUID, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidEntity), types.TString(), types.TVec(), types.TVec()}, Pure: false, GenericPins: nil},
	},
	"GetListofPlayerEntitiesontheField": {
		{Node: NKGetListofPlayerEntitiesontheField, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{}, Pure: true, GenericPins: nil},
	},
	"QueryEntityFaction": {
		{Node: NKQueryEntityFaction, Return: func() *types.Type { t := types.TGuid(types.GuidFaction); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"ModifyEntityFaction": {
		{Node: NKModifyEntityFaction, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidFaction)}, Pure: false, GenericPins: nil},
	},
	"CreatePrefab": {
		{Node: NKCreatePrefab, Return: func() *types.Type { t := types.TEntity(); return &t }(), Params: []types.Type{types.TGuid(types.GuidPrefab), types.TVec(), types.TVec(), types.TEntity(), types.TEntity(), types.TBool(), types.TInt(), types.TList(types.TInt())}, Pure: false, GenericPins: nil},
	},
	"CreateProjectile": {
		{Node: NKCreateProjectile, Return: func() *types.Type { t := types.TEntity(); return &t }(), Params: []types.Type{types.TGuid(types.GuidPrefab), types.TVec(), types.TVec(), types.TEntity(), types.TEntity(), types.TBool(), types.TInt(), types.TList(types.TInt())}, Pure: false, GenericPins: nil},
	},
	"GetRandomInteger": {
		{Node: NKGetRandomInteger, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TInt(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"GetAllCharacterEntitiesofSpecifiedPlayer": {
		{Node: NKGetAllCharacterEntitiesofSpecifiedPlayer, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GetPlayerEntitytoWhichtheCharacterBelongs": {
		{Node: NKGetPlayerEntitytoWhichtheCharacterBelongs, Return: func() *types.Type { t := types.TEntity(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GetEntityType": {
		{Node: NKGetEntityType, Return: nil, Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"SwitchMainCameraTemplate": {
		{Node: NKSwitchMainCameraTemplate, Return: nil, Params: []types.Type{types.TList(types.TEntity()), types.TString()}, Pure: false, GenericPins: nil},
	},
	"ActivateEntityCamera": {
		{Node: NKActivateEntityCamera, Return: nil, Params: []types.Type{types.TList(types.TEntity()), types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"DisableEntityCamera": {
		{Node: NKDisableEntityCamera, Return: nil, Params: []types.Type{types.TList(types.TEntity())}, Pure: true, GenericPins: nil},
	},
	"ActivateFocusCamera": {
		{Node: NKActivateFocusCamera, Return: nil, Params: []types.Type{types.TList(types.TEntity()), types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"DisableFocusCamera": {
		{Node: NKDisableFocusCamera, Return: nil, Params: []types.Type{types.TList(types.TEntity())}, Pure: true, GenericPins: nil},
	},
	"ActivateScreenShake": {
		{Node: NKActivateScreenShake, Return: nil, Params: []types.Type{types.TList(types.TEntity()), types.TFloat(), types.TFloat(), types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"ActivateBasicMotionDevice": {
		{Node: NKActivateBasicMotionDevice, Return: nil, Params: []types.Type{types.TEntity(), types.TString()}, Pure: false, GenericPins: nil},
	},
	"GetPresetPointListbyUnitTag": {
		{Node: NKGetPresetPointListbyUnitTag, Return: func() *types.Type { t := types.TList(types.TInt()); return &t }(), Params: []types.Type{types.TInt()}, Pure: true, GenericPins: nil},
	},
	"ActivateRevivePoint": {
		{Node: NKActivateRevivePoint, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"DeactivateRevivePoint": {
		{Node: NKDeactivateRevivePoint, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"AllowForbidPlayertoRevive": {
		{Node: NKAllowForbidPlayertoRevive, Return: nil, Params: []types.Type{types.TEntity(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"GetPlayerRemainingRevives": {
		{Node: NKGetPlayerRemainingRevives, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"SetPlayerRemainingRevives": {
		{Node: NKSetPlayerRemainingRevives, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"GetPlayerReviveTime": {
		{Node: NKGetPlayerReviveTime, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"SetPlayerReviveTime": {
		{Node: NKSetPlayerReviveTime, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"ReviveCharacter": {
		{Node: NKReviveCharacter, Return: nil, Params: []types.Type{types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"DefeatAllPlayersCharacters": {
		{Node: NKDefeatAllPlayersCharacters, Return: nil, Params: []types.Type{types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"ReviveAllPlayersCharacters": {
		{Node: NKReviveAllPlayersCharacters, Return: nil, Params: []types.Type{types.TEntity(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"QueryIfAllPlayerCharactersAreDown": {
		{Node: NKQueryIfAllPlayerCharactersAreDown, Return: func() *types.Type { t := types.TBool(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"TeleportPlayer": {
		{Node: NKTeleportPlayer, Return: nil, Params: []types.Type{types.TEntity(), types.TVec(), types.TVec()}, Pure: false, GenericPins: nil},
	},
	"QueryGameTimeElapsed": {
		{Node: NKQueryGameTimeElapsed, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{}, Pure: true, GenericPins: nil},
	},
	"SineFunction": {
		{Node: NKSineFunction, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"CosineFunction": {
		{Node: NKCosineFunction, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"TangentFunction": {
		{Node: NKTangentFunction, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"ArcsineFunction": {
		{Node: NKArcsineFunction, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"ArccosineFunction": {
		{Node: NKArccosineFunction, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"ArctangentFunction": {
		{Node: NKArctangentFunction, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"ModifyingCharacterDisruptorDevice": {
		{Node: NKModifyingCharacterDisruptorDevice, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"InitiateAttack": {
		{Node: NKInitiateAttack, Return: nil, Params: []types.Type{types.TEntity(), types.TFloat(), types.TFloat(), types.TVec(), types.TVec(), types.TString(), types.TBool(), types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"ActivateDisableTab": {
		{Node: NKActivateDisableTab, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"ActivateDisableModelDisplay": {
		{Node: NKActivateDisableModelDisplay, Return: nil, Params: []types.Type{types.TEntity(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"PauseGlobalTimer": {
		{Node: NKPauseGlobalTimer, Return: nil, Params: []types.Type{types.TEntity(), types.TString()}, Pure: false, GenericPins: nil},
	},
	"GetCurrentGlobalTimerTime": {
		{Node: NKGetCurrentGlobalTimerTime, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TEntity(), types.TString()}, Pure: true, GenericPins: nil},
	},
	"StartGlobalTimer": {
		{Node: NKStartGlobalTimer, Return: nil, Params: []types.Type{types.TEntity(), types.TString()}, Pure: false, GenericPins: nil},
	},
	"RecoverGlobalTimer": {
		{Node: NKRecoverGlobalTimer, Return: nil, Params: []types.Type{types.TEntity(), types.TString()}, Pure: false, GenericPins: nil},
	},
	"StopGlobalTimer": {
		{Node: NKStopGlobalTimer, Return: nil, Params: []types.Type{types.TEntity(), types.TString()}, Pure: false, GenericPins: nil},
	},
	"ModifyGlobalTimer": {
		{Node: NKModifyGlobalTimer, Return: nil, Params: []types.Type{types.TEntity(), types.TString(), types.TFloat()}, Pure: false, GenericPins: nil},
	},
	"GetPlayersCurrentUILayout": {
		{Node: NKGetPlayersCurrentUILayout, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GetAllEntitiesontheField": {
		{Node: NKGetAllEntitiesontheField, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{}, Pure: true, GenericPins: nil},
	},
	"GetSpecifiedTypeofEntitiesontheField": {
		{Node: NKGetSpecifiedTypeofEntitiesontheField, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{}, Pure: true, GenericPins: nil},
	},
	"GetEntitiesWithSpecifiedPrefabontheField": {
		{Node: NKGetEntitiesWithSpecifiedPrefabontheField, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{types.TGuid(types.GuidPrefab)}, Pure: true, GenericPins: nil},
	},
	"RadianstoDegrees": {
		{Node: NKRadianstoDegrees, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"DegreestoRadians": {
		{Node: NKDegreestoRadians, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"RemoveEntity": {
		{Node: NKRemoveEntity, Return: nil, Params: []types.Type{types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"GetCreationsCurrentTarget": {
		{Node: NKGetCreationsCurrentTarget, Return: func() *types.Type { t := types.TEntity(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GetEntityListbySpecifiedType": {
		{Node: NKGetEntityListbySpecifiedType, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{types.TList(types.TEntity())}, Pure: true, GenericPins: nil},
	},
	"GetEntityListbySpecifiedPrefab": {
		{Node: NKGetEntityListbySpecifiedPrefab, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{types.TList(types.TEntity()), types.TGuid(types.GuidPrefab)}, Pure: true, GenericPins: nil},
	},
	"GetEntityListbySpecifiedFaction": {
		{Node: NKGetEntityListbySpecifiedFaction, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{types.TList(types.TEntity()), types.TGuid(types.GuidFaction)}, Pure: true, GenericPins: nil},
	},
	"GetEntityListbySpecifiedRange": {
		{Node: NKGetEntityListbySpecifiedRange, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{types.TList(types.TEntity()), types.TVec(), types.TFloat()}, Pure: true, GenericPins: nil},
	},
	"SwitchCurrentInterfaceLayout": {
		{Node: NKSwitchCurrentInterfaceLayout, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"ActivateUIControlGroupinControlGroupLibrary": {
		{Node: NKActivateUIControlGroupinControlGroupLibrary, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"ModifyUIControlStatusWithintheInterfaceLayout": {
		{Node: NKModifyUIControlStatusWithintheInterfaceLayout, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"QueryPlayerClass": {
		{Node: NKQueryPlayerClass, Return: func() *types.Type { t := types.TGuid(types.GuidConfiguration); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"QueryPlayerClassLevel": {
		{Node: NKQueryPlayerClassLevel, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration)}, Pure: true, GenericPins: nil},
	},
	"ChangePlayerClass": {
		{Node: NKChangePlayerClass, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration)}, Pure: false, GenericPins: nil},
	},
	"IncreasePlayersCurrentClassEXP": {
		{Node: NKIncreasePlayersCurrentClassEXP, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"ChangePlayersCurrentClassLevel": {
		{Node: NKChangePlayersCurrentClassLevel, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"ModifySkillResourceAmount": {
		{Node: NKModifySkillResourceAmount, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration), types.TFloat()}, Pure: false, GenericPins: nil},
	},
	"SetSkillResourceAmount": {
		{Node: NKSetSkillResourceAmount, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration), types.TFloat()}, Pure: false, GenericPins: nil},
	},
	"AddCharacterSkill": {
		{Node: NKAddCharacterSkill, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration)}, Pure: false, GenericPins: nil},
	},
	"DeleteCharacterSkillbyID": {
		{Node: NKDeleteCharacterSkillbyID, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration)}, Pure: false, GenericPins: nil},
	},
	"InitializeCharacterSkill": {
		{Node: NKInitializeCharacterSkill, Return: nil, Params: []types.Type{types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"QueryCharacterSkill": {
		{Node: NKQueryCharacterSkill, Return: func() *types.Type { t := types.TGuid(types.GuidConfiguration); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"DeleteCharacterSkillbySlot": {
		{Node: NKDeleteCharacterSkillbySlot, Return: nil, Params: []types.Type{types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"ClearSpecialEffectsBasedonSpecialEffectAssets": {
		{Node: NKClearSpecialEffectsBasedonSpecialEffectAssets, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration)}, Pure: false, GenericPins: nil},
	},
	"QueryIfEntityIsontheField": {
		{Node: NKQueryIfEntityIsontheField, Return: func() *types.Type { t := types.TBool(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"QueryIfEntityHasUnitStatus": {
		{Node: NKQueryIfEntityHasUnitStatus, Return: func() *types.Type { t := types.TBool(); return &t }(), Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration)}, Pure: true, GenericPins: nil},
	},
	"GetEntityForwardVector": {
		{Node: NKGetEntityForwardVector, Return: func() *types.Type { t := types.TVec(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GetEntityRightVector": {
		{Node: NKGetEntityRightVector, Return: func() *types.Type { t := types.TVec(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GetEntityUpwardVector": {
		{Node: NKGetEntityUpwardVector, Return: func() *types.Type { t := types.TVec(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"DirectionVectortoRotation": {
		{Node: NKDirectionVectortoRotation, Return: func() *types.Type { t := types.TVec(); return &t }(), Params: []types.Type{types.TVec(), types.TVec()}, Pure: true, GenericPins: nil},
	},
	"AddTargetOrientedRotationBasedMotionDevice": {
		{Node: NKAddTargetOrientedRotationBasedMotionDevice, Return: nil, Params: []types.Type{types.TEntity(), types.TString(), types.TFloat(), types.TVec()}, Pure: false, GenericPins: nil},
	},
	"RemoveInterfaceControlGroupFromControlGroupLibrary": {
		{Node: NKRemoveInterfaceControlGroupFromControlGroupLibrary, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"RecoverHP": {
		{Node: NKRecoverHP, Return: nil, Params: []types.Type{types.TEntity(), types.TFloat(), types.TString(), types.TBool(), types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"AddUnitTagtoEntity": {
		{Node: NKAddUnitTagtoEntity, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"RemoveUnitTagfromEntity": {
		{Node: NKRemoveUnitTagfromEntity, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"ClearUnitTagsfromEntity": {
		{Node: NKClearUnitTagsfromEntity, Return: nil, Params: []types.Type{types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"GetEntityUnitTagList": {
		{Node: NKGetEntityUnitTagList, Return: func() *types.Type { t := types.TList(types.TInt()); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GetEntityListbyUnitTag": {
		{Node: NKGetEntityListbyUnitTag, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{types.TInt()}, Pure: true, GenericPins: nil},
	},
	"CloseSpecifiedSoundEffectPlayer": {
		{Node: NKCloseSpecifiedSoundEffectPlayer, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"StartPauseSpecifiedSoundEffectPlayer": {
		{Node: NKStartPauseSpecifiedSoundEffectPlayer, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"AdjustSpecifiedSoundEffectPlayer": {
		{Node: NKAdjustSpecifiedSoundEffectPlayer, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TInt(), types.TFloat()}, Pure: false, GenericPins: nil},
	},
	"StartPausePlayerBackgroundMusic": {
		{Node: NKStartPausePlayerBackgroundMusic, Return: nil, Params: []types.Type{types.TEntity(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"AdjustPlayerBackgroundMusicVolume": {
		{Node: NKAdjustPlayerBackgroundMusicVolume, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"ModifyPlayerBackgroundMusic": {
		{Node: NKModifyPlayerBackgroundMusic, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TFloat(), types.TFloat(), types.TInt(), types.TBool(), types.TFloat(), types.TFloat(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"PlayerPlaysOneShot2DSoundEffect": {
		{Node: NKPlayerPlaysOneShot2DSoundEffect, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TInt(), types.TFloat()}, Pure: false, GenericPins: nil},
	},
	"SettheAggroValueofSpecifiedEntity": {
		{Node: NKSettheAggroValueofSpecifiedEntity, Return: nil, Params: []types.Type{types.TEntity(), types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"RemoveTargetEntityFromAggroList": {
		{Node: NKRemoveTargetEntityFromAggroList, Return: nil, Params: []types.Type{types.TEntity(), types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"ClearSpecifiedTargetsAggroList": {
		{Node: NKClearSpecifiedTargetsAggroList, Return: nil, Params: []types.Type{types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"TauntTarget": {
		{Node: NKTauntTarget, Return: nil, Params: []types.Type{types.TEntity(), types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"QuerytheAggroValueoftheSpecifiedEntity": {
		{Node: NKQuerytheAggroValueoftheSpecifiedEntity, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity(), types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"QuerytheAggroMultiplieroftheSpecifiedEntity": {
		{Node: NKQuerytheAggroMultiplieroftheSpecifiedEntity, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"QueryGlobalAggroTransferMultiplier": {
		{Node: NKQueryGlobalAggroTransferMultiplier, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{}, Pure: true, GenericPins: nil},
	},
	"GettheAggroTargetoftheSpecifiedEntity": {
		{Node: NKGettheAggroTargetoftheSpecifiedEntity, Return: func() *types.Type { t := types.TEntity(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GetListofOwnersWhoHavetheTargetinTheirAggroList": {
		{Node: NKGetListofOwnersWhoHavetheTargetinTheirAggroList, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GetListofOwnersThatHavetheTargetAsTheirAggroTarget": {
		{Node: NKGetListofOwnersThatHavetheTargetAsTheirAggroTarget, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GettheAggroListoftheSpecifiedEntity": {
		{Node: NKGettheAggroListoftheSpecifiedEntity, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"QueryifSpecifiedEntityIsinCombat": {
		{Node: NKQueryifSpecifiedEntityIsinCombat, Return: func() *types.Type { t := types.TBool(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"QueryIfFactionIsHostile": {
		{Node: NKQueryIfFactionIsHostile, Return: func() *types.Type { t := types.TBool(); return &t }(), Params: []types.Type{types.TGuid(types.GuidFaction), types.TGuid(types.GuidFaction)}, Pure: true, GenericPins: nil},
	},
	"AddEntityActiveNameplate": {
		{Node: NKAddEntityActiveNameplate, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration)}, Pure: true, GenericPins: nil},
	},
	"DeleteEntityActiveNameplate": {
		{Node: NKDeleteEntityActiveNameplate, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration)}, Pure: true, GenericPins: nil},
	},
	"SetEntityActiveNameplate": {
		{Node: NKSetEntityActiveNameplate, Return: nil, Params: []types.Type{types.TEntity(), types.TList(types.TGuid(types.GuidConfiguration))}, Pure: false, GenericPins: nil},
	},
	"SwitchCreationPatrolTemplate": {
		{Node: NKSwitchCreationPatrolTemplate, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"SwitchActiveTextBubble": {
		{Node: NKSwitchActiveTextBubble, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration)}, Pure: false, GenericPins: nil},
	},
	"ModifyMiniMapZoom": {
		{Node: NKModifyMiniMapZoom, Return: nil, Params: []types.Type{types.TEntity(), types.TFloat()}, Pure: false, GenericPins: nil},
	},
	"ModifyMiniMapMarkerActivationStatus": {
		{Node: NKModifyMiniMapMarkerActivationStatus, Return: nil, Params: []types.Type{types.TEntity(), types.TList(types.TInt()), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"ModifyPlayerListforVisibleMiniMapMarkers": {
		{Node: NKModifyPlayerListforVisibleMiniMapMarkers, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TList(types.TEntity())}, Pure: false, GenericPins: nil},
	},
	"ModifyPlayerListforTrackingMiniMapMarkers": {
		{Node: NKModifyPlayerListforTrackingMiniMapMarkers, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TList(types.TEntity())}, Pure: false, GenericPins: nil},
	},
	"ModifyPlayerMarkersontheMiniMap": {
		{Node: NKModifyPlayerMarkersontheMiniMap, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"CloseDeckSelector": {
		{Node: NKCloseDeckSelector, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"QueryIfAchievementIsCompleted": {
		{Node: NKQueryIfAchievementIsCompleted, Return: func() *types.Type { t := types.TBool(); return &t }(), Params: []types.Type{types.TEntity(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"SetAchievementProgressTally": {
		{Node: NKSetAchievementProgressTally, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"ChangeAchievementProgressTally": {
		{Node: NKChangeAchievementProgressTally, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"SetPlayerSettlementRankingValue": {
		{Node: NKSetPlayerSettlementRankingValue, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"GetPlayerSettlementRankingValue": {
		{Node: NKGetPlayerSettlementRankingValue, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"SetPlayerSettlementSuccessStatus": {
		{Node: NKSetPlayerSettlementSuccessStatus, Return: nil, Params: []types.Type{types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"GetPlayerSettlementSuccessStatus": {
		{Node: NKGetPlayerSettlementSuccessStatus, Return: nil, Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"SetFactionSettlementRankingValue": {
		{Node: NKSetFactionSettlementRankingValue, Return: nil, Params: []types.Type{types.TGuid(types.GuidFaction), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"GetFactionSettlementRankingValue": {
		{Node: NKGetFactionSettlementRankingValue, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TGuid(types.GuidFaction)}, Pure: true, GenericPins: nil},
	},
	"SetFactionSettlementSuccessStatus": {
		{Node: NKSetFactionSettlementSuccessStatus, Return: nil, Params: []types.Type{types.TGuid(types.GuidFaction)}, Pure: false, GenericPins: nil},
	},
	"GetFactionSettlementSuccessStatus": {
		{Node: NKGetFactionSettlementSuccessStatus, Return: nil, Params: []types.Type{types.TGuid(types.GuidFaction)}, Pure: true, GenericPins: nil},
	},
	"GetPlayerRankScoreChange": {
		{Node: NKGetPlayerRankScoreChange, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"SetPlayerEscapeValidity": {
		{Node: NKSetPlayerEscapeValidity, Return: nil, Params: []types.Type{types.TEntity(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"GetPlayerEscapeValidity": {
		{Node: NKGetPlayerEscapeValidity, Return: func() *types.Type { t := types.TBool(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"Switchthescoringgroupthataffectsplayerscompetitiverank": {
		{Node: NKSwitchthescoringgroupthataffectsplayerscompetitiverank, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"SetCurrentEnvironmentTime": {
		{Node: NKSetCurrentEnvironmentTime, Return: nil, Params: []types.Type{types.TFloat()}, Pure: false, GenericPins: nil},
	},
	"SetEnvironmentTimePassageSpeed": {
		{Node: NKSetEnvironmentTimePassageSpeed, Return: nil, Params: []types.Type{types.TFloat()}, Pure: false, GenericPins: nil},
	},
	"ToggleEntityLightSource": {
		{Node: NKToggleEntityLightSource, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"SwitchFollowMotionDeviceTargetByEntity": {
		{Node: NKSwitchFollowMotionDeviceTargetByEntity, Return: nil, Params: []types.Type{types.TEntity(), types.TEntity(), types.TString(), types.TVec(), types.TVec()}, Pure: false, GenericPins: nil},
	},
	"GetAllEntitiesWithinTheCollisionTrigger": {
		{Node: NKGetAllEntitiesWithinTheCollisionTrigger, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{types.TEntity(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"AddAffixToEquipment": {
		{Node: NKAddAffixToEquipment, Return: nil, Params: []types.Type{types.TInt(), types.TGuid(types.GuidConfiguration), types.TBool(), types.TFloat()}, Pure: false, GenericPins: nil},
	},
	"RemoveEquipmentAffix": {
		{Node: NKRemoveEquipmentAffix, Return: nil, Params: []types.Type{types.TInt(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"ModifyEquipmentAffixValue": {
		{Node: NKModifyEquipmentAffixValue, Return: nil, Params: []types.Type{types.TInt(), types.TInt(), types.TFloat()}, Pure: false, GenericPins: nil},
	},
	"GetEquipmentAffixList": {
		{Node: NKGetEquipmentAffixList, Return: func() *types.Type { t := types.TList(types.TInt()); return &t }(), Params: []types.Type{types.TInt()}, Pure: true, GenericPins: nil},
	},
	"GetEquipmentAffixConfigID": {
		{Node: NKGetEquipmentAffixConfigID, Return: func() *types.Type { t := types.TGuid(types.GuidConfiguration); return &t }(), Params: []types.Type{types.TInt(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"GetEquipmentAffixValue": {
		{Node: NKGetEquipmentAffixValue, Return: func() *types.Type { t := types.TFloat(); return &t }(), Params: []types.Type{types.TInt(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"UpdatePlayerLeaderboardScore": {
		{Node: NKUpdatePlayerLeaderboardScore, Return: nil, Params: []types.Type{types.TList(types.TInt()), types.TInt(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"IncreaseMaximumInventoryCapacity": {
		{Node: NKIncreaseMaximumInventoryCapacity, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"ModifyInventoryItemQuantity": {
		{Node: NKModifyInventoryItemQuantity, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"SetInventoryDropItemsCurrencyAmount": {
		{Node: NKSetInventoryDropItemsCurrencyAmount, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"ModifyInventoryCurrencyQuantity": {
		{Node: NKModifyInventoryCurrencyQuantity, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"GetInventoryCapacity": {
		{Node: NKGetInventoryCapacity, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GetInventoryItemQuantity": {
		{Node: NKGetInventoryItemQuantity, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration)}, Pure: true, GenericPins: nil},
	},
	"GetInventoryCurrencyQuantity": {
		{Node: NKGetInventoryCurrencyQuantity, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration)}, Pure: true, GenericPins: nil},
	},
	"HPLoss": {
		{Node: NKHPLoss, Return: nil, Params: []types.Type{types.TEntity(), types.TFloat(), types.TBool(), types.TBool(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"RecoverHPDirectly": {
		{Node: NKRecoverHPDirectly, Return: nil, Params: []types.Type{types.TEntity(), types.TEntity(), types.TFloat(), types.TBool(), types.TFloat(), types.TFloat(), types.TList(types.TString())}, Pure: false, GenericPins: nil},
	},
	"OpenShop": {
		{Node: NKOpenShop, Return: nil, Params: []types.Type{types.TEntity(), types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"CloseShop": {
		{Node: NKCloseShop, Return: nil, Params: []types.Type{types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"RemoveItemFromCustomShopSalesList": {
		{Node: NKRemoveItemFromCustomShopSalesList, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"RemoveItemFromInventoryShopSalesList": {
		{Node: NKRemoveItemFromInventoryShopSalesList, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TGuid(types.GuidConfiguration)}, Pure: false, GenericPins: nil},
	},
	"RemoveItemFromPurchaseList": {
		{Node: NKRemoveItemFromPurchaseList, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TGuid(types.GuidConfiguration)}, Pure: false, GenericPins: nil},
	},
	"QueryCustomShopItemSalesList": {
		{Node: NKQueryCustomShopItemSalesList, Return: func() *types.Type { t := types.TList(types.TInt()); return &t }(), Params: []types.Type{types.TEntity(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"QueryInventoryShopItemSalesList": {
		{Node: NKQueryInventoryShopItemSalesList, Return: func() *types.Type { t := types.TList(types.TGuid(types.GuidConfiguration)); return &t }(), Params: []types.Type{types.TEntity(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"QueryShopPurchaseItemList": {
		{Node: NKQueryShopPurchaseItemList, Return: func() *types.Type { t := types.TList(types.TGuid(types.GuidConfiguration)); return &t }(), Params: []types.Type{types.TEntity(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"GetAllEquipmentFromInventory": {
		{Node: NKGetAllEquipmentFromInventory, Return: func() *types.Type { t := types.TList(types.TInt()); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"SetLootDropContent": {
		{Node: NKSetLootDropContent, Return: nil, Params: []types.Type{types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"ModifyLootItemComponentQuantity": {
		{Node: NKModifyLootItemComponentQuantity, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"ModifyLootComponentCurrencyAmount": {
		{Node: NKModifyLootComponentCurrencyAmount, Return: nil, Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"GetLootComponentItemQuantity": {
		{Node: NKGetLootComponentItemQuantity, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration)}, Pure: true, GenericPins: nil},
	},
	"GetLootComponentCurrencyQuantity": {
		{Node: NKGetLootComponentCurrencyQuantity, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration)}, Pure: true, GenericPins: nil},
	},
	"GetAllTrophyItems": {
		{Node: NKGetAllTrophyItems, Return: nil, Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GetAllTrophyCurrency": {
		{Node: NKGetAllTrophyCurrency, Return: nil, Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GetAllEquipmentFromLootComponent": {
		{Node: NKGetAllEquipmentFromLootComponent, Return: func() *types.Type { t := types.TList(types.TInt()); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"QueryEquipmentTagList": {
		{Node: NKQueryEquipmentTagList, Return: func() *types.Type { t := types.TList(types.TGuid(types.GuidConfiguration)); return &t }(), Params: []types.Type{types.TInt()}, Pure: true, GenericPins: nil},
	},
	"SetScanTagRules": {
		{Node: NKSetScanTagRules, Return: nil, Params: []types.Type{types.TEntity()}, Pure: false, GenericPins: nil},
	},
	"SetScanComponentsActiveScanTagID": {
		{Node: NKSetScanComponentsActiveScanTagID, Return: nil, Params: []types.Type{types.TEntity(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"GetTheCurrentlyActiveScanTagConfigID": {
		{Node: NKGetTheCurrentlyActiveScanTagConfigID, Return: func() *types.Type { t := types.TGuid(types.GuidConfiguration); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"AddAffixToEquipmentAtSpecifiedID": {
		{Node: NKAddAffixToEquipmentAtSpecifiedID, Return: nil, Params: []types.Type{types.TInt(), types.TGuid(types.GuidConfiguration), types.TInt(), types.TBool(), types.TFloat()}, Pure: false, GenericPins: nil},
	},
	"RandomDeckSelectorSelectionList": {
		{Node: NKRandomDeckSelectorSelectionList, Return: nil, Params: []types.Type{types.TList(types.TInt())}, Pure: false, GenericPins: nil},
	},
	"GetOwnerEntity": {
		{Node: NKGetOwnerEntity, Return: func() *types.Type { t := types.TEntity(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GetListOfEntitiesOwnedByTheEntity": {
		{Node: NKGetListOfEntitiesOwnedByTheEntity, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"QueryUnitStatusStacksBySlotID": {
		{Node: NKQueryUnitStatusStacksBySlotID, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"QueryUnitStatusApplierBySlotID": {
		{Node: NKQueryUnitStatusApplierBySlotID, Return: func() *types.Type { t := types.TEntity(); return &t }(), Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"ListOfSlotIDsQueryingUnitStatus": {
		{Node: NKListOfSlotIDsQueryingUnitStatus, Return: func() *types.Type { t := types.TList(types.TInt()); return &t }(), Params: []types.Type{types.TEntity(), types.TGuid(types.GuidConfiguration)}, Pure: true, GenericPins: nil},
	},
	"QueryEquipmentConfigIDbyEquipmentID": {
		{Node: NKQueryEquipmentConfigIDbyEquipmentID, Return: func() *types.Type { t := types.TGuid(types.GuidConfiguration); return &t }(), Params: []types.Type{types.TInt()}, Pure: true, GenericPins: nil},
	},
	"GetPlayerGUIDbyPlayerID": {
		{Node: NKGetPlayerGUIDbyPlayerID, Return: func() *types.Type { t := types.TGuid(types.GuidEntity); return &t }(), Params: []types.Type{types.TInt()}, Pure: true, GenericPins: nil},
	},
	"GetPlayerIDbyPlayerGUID": {
		{Node: NKGetPlayerIDbyPlayerGUID, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TGuid(types.GuidEntity)}, Pure: true, GenericPins: nil},
	},
	"CalculateTimestampFromFormattedTime": {
		{Node: NKCalculateTimestampFromFormattedTime, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TInt(), types.TInt(), types.TInt(), types.TInt(), types.TInt(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"Calculatedayoftheweekfromtimestamp": {
		{Node: NKCalculatedayoftheweekfromtimestamp, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TInt()}, Pure: true, GenericPins: nil},
	},
	"QueryTimestampUTC0": {
		{Node: NKQueryTimestampUTC0, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{}, Pure: true, GenericPins: nil},
	},
	"QueryServerTimeZone": {
		{Node: NKQueryServerTimeZone, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{}, Pure: true, GenericPins: nil},
	},
	"CreatePrefabGroup": {
		{Node: NKCreatePrefabGroup, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{types.TInt(), types.TVec(), types.TVec(), types.TEntity(), types.TEntity(), types.TInt(), types.TList(types.TInt()), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"GetAggroListOfCreationInDefaultMode": {
		{Node: NKGetAggroListOfCreationInDefaultMode, Return: func() *types.Type { t := types.TList(types.TEntity()); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"SetPlayerLeaderboardScoreAsan": {
		{Node: NKSetPlayerLeaderboardScoreAsanInteger, Return: nil, Params: []types.Type{types.TList(types.TInt()), types.TInt(), types.TInt()}, Pure: false, GenericPins: nil},
		{Node: NKSetPlayerLeaderboardScoreAsanFloat, Return: nil, Params: []types.Type{types.TList(types.TInt()), types.TFloat(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"ModifyEnvironmentSettings": {
		{Node: NKModifyEnvironmentSettings, Return: nil, Params: []types.Type{types.TInt(), types.TList(types.TEntity()), types.TBool(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"QueryGameModeAndPlayerNumber": {
		{Node: NKQueryGameModeAndPlayerNumber, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{}, Pure: true, GenericPins: nil},
	},
	"GetPlayerNickname": {
		{Node: NKGetPlayerNickname, Return: func() *types.Type { t := types.TString(); return &t }(), Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"GetPlayerClientInputDeviceType": {
		{Node: NKGetPlayerClientInputDeviceType, Return: nil, Params: []types.Type{types.TEntity()}, Pure: true, GenericPins: nil},
	},
	"SetChatChannelSwitch": {
		{Node: NKSetChatChannelSwitch, Return: nil, Params: []types.Type{types.TInt(), types.TBool(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"ModifyPlayerChannelPermission": {
		{Node: NKModifyPlayerChannelPermission, Return: nil, Params: []types.Type{types.TGuid(types.GuidEntity), types.TInt(), types.TBool()}, Pure: false, GenericPins: nil},
	},
	"SetPlayersCurrentChannel": {
		{Node: NKSetPlayersCurrentChannel, Return: nil, Params: []types.Type{types.TGuid(types.GuidEntity), types.TList(types.TInt())}, Pure: false, GenericPins: nil},
	},
	"ConsumeGiftBox": {
		{Node: NKConsumeGiftBox, Return: nil, Params: []types.Type{types.TEntity(), types.TInt(), types.TInt()}, Pure: false, GenericPins: nil},
	},
	"QueryCorrespondingGiftBoxQuantity": {
		{Node: NKQueryCorrespondingGiftBoxQuantity, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"QueryCorrespondingGiftBoxConsumption": {
		{Node: NKQueryCorrespondingGiftBoxConsumption, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TEntity(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"WriteByBit": {
		{Node: NKWriteByBit, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TInt(), types.TInt(), types.TInt(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"ReadByBit": {
		{Node: NKReadByBit, Return: func() *types.Type { t := types.TInt(); return &t }(), Params: []types.Type{types.TInt(), types.TInt(), types.TInt()}, Pure: true, GenericPins: nil},
	},
	"InsertValue": {
		{Node: NKInsertValueIntoListInt, Return: nil, Params: []types.Type{types.TList(types.TInt()), types.TInt(), types.TInt()}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKInsertValueIntoListStr, Return: nil, Params: []types.Type{types.TList(types.TString()), types.TInt(), types.TString()}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKInsertValueIntoListEntity, Return: nil, Params: []types.Type{types.TList(types.TEntity()), types.TInt(), types.TEntity()}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKInsertValueIntoListGUID, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidEntity)), types.TInt(), types.TGuid(types.GuidEntity)}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKInsertValueIntoListFloat, Return: nil, Params: []types.Type{types.TList(types.TFloat()), types.TInt(), types.TFloat()}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKInsertValueIntoListVec, Return: nil, Params: []types.Type{types.TList(types.TVec()), types.TInt(), types.TVec()}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKInsertValueIntoListBool, Return: nil, Params: []types.Type{types.TList(types.TBool()), types.TInt(), types.TBool()}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKInsertValueIntoListConfig, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidConfiguration)), types.TInt(), types.TGuid(types.GuidConfiguration)}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKInsertValueIntoListPrefab, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidPrefab)), types.TInt(), types.TGuid(types.GuidPrefab)}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKInsertValueIntoListFaction, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidFaction)), types.TInt(), types.TGuid(types.GuidFaction)}, Pure: false, GenericPins: listElementAndIndexGenericPins},
	},
	"SetValue": {
		{Node: NKModifyValueinListInt, Return: nil, Params: []types.Type{types.TList(types.TInt()), types.TInt(), types.TInt()}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKModifyValueinListStr, Return: nil, Params: []types.Type{types.TList(types.TString()), types.TInt(), types.TString()}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKModifyValueinListEntity, Return: nil, Params: []types.Type{types.TList(types.TEntity()), types.TInt(), types.TEntity()}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKModifyValueinListGUID, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidEntity)), types.TInt(), types.TGuid(types.GuidEntity)}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKModifyValueinListFloat, Return: nil, Params: []types.Type{types.TList(types.TFloat()), types.TInt(), types.TFloat()}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKModifyValueinListVec, Return: nil, Params: []types.Type{types.TList(types.TVec()), types.TInt(), types.TVec()}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKModifyValueinListBool, Return: nil, Params: []types.Type{types.TList(types.TBool()), types.TInt(), types.TBool()}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKModifyValueinListConfig, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidConfiguration)), types.TInt(), types.TGuid(types.GuidConfiguration)}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKModifyValueinListPrefab, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidPrefab)), types.TInt(), types.TGuid(types.GuidPrefab)}, Pure: false, GenericPins: listElementAndIndexGenericPins},
		{Node: NKModifyValueinListFaction, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidFaction)), types.TInt(), types.TGuid(types.GuidFaction)}, Pure: false, GenericPins: listElementAndIndexGenericPins},
	},
	"RemoveValue": {
		{Node: NKRemoveValueFromListInt, Return: nil, Params: []types.Type{types.TList(types.TInt()), types.TInt()}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKRemoveValueFromListStr, Return: nil, Params: []types.Type{types.TList(types.TString()), types.TInt()}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKRemoveValueFromListEntity, Return: nil, Params: []types.Type{types.TList(types.TEntity()), types.TInt()}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKRemoveValueFromListGUID, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidEntity)), types.TInt()}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKRemoveValueFromListFloat, Return: nil, Params: []types.Type{types.TList(types.TFloat()), types.TInt()}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKRemoveValueFromListVec, Return: nil, Params: []types.Type{types.TList(types.TVec()), types.TInt()}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKRemoveValueFromListBool, Return: nil, Params: []types.Type{types.TList(types.TBool()), types.TInt()}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKRemoveValueFromListConfig, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidConfiguration)), types.TInt()}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKRemoveValueFromListPrefab, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidPrefab)), types.TInt()}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKRemoveValueFromListFaction, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidFaction)), types.TInt()}, Pure: false, GenericPins: listOnlyGenericPins},
	},
	"Clear": {
		{Node: NKClearListInt, Return: nil, Params: []types.Type{types.TList(types.TInt())}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKClearListStr, Return: nil, Params: []types.Type{types.TList(types.TString())}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKClearListEntity, Return: nil, Params: []types.Type{types.TList(types.TEntity())}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKClearListGUID, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidEntity))}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKClearListFloat, Return: nil, Params: []types.Type{types.TList(types.TFloat())}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKClearListVec, Return: nil, Params: []types.Type{types.TList(types.TVec())}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKClearListBool, Return: nil, Params: []types.Type{types.TList(types.TBool())}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKClearListConfig, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidConfiguration))}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKClearListPrefab, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidPrefab))}, Pure: false, GenericPins: listOnlyGenericPins},
		{Node: NKClearListFaction, Return: nil, Params: []types.Type{types.TList(types.TGuid(types.GuidFaction))}, Pure: false, GenericPins: listOnlyGenericPins},
	},
}

// UnknownFunctionError and NoMatchingFunctionOverloadError distinguish the
// two ways a call can fail to resolve a built-in function.
type UnknownFunctionError struct{ Name string }

func (e *UnknownFunctionError) Error() string { return "unknown function: " + e.Name }

type NoMatchingFunctionOverloadError struct{ Name string }

func (e *NoMatchingFunctionOverloadError) Error() string {
	return "no matching overload for function: " + e.Name
}

// ResolveFunction finds the overload of name whose parameter types
// structurally match args exactly, in registration order.
func ResolveFunction(name string, args []types.Type) (*FunctionProto, error) {
	overloads, ok := FunctionOverloads[name]
	if !ok {
		return nil, &UnknownFunctionError{Name: name}
	}
overload:
	for i := range overloads {
		proto := &overloads[i]
		if len(proto.Params) != len(args) {
			continue
		}
		for j, p := range proto.Params {
			if !p.Equals(args[j]) {
				continue overload
			}
		}
		return proto, nil
	}
	return nil, &NoMatchingFunctionOverloadError{Name: name}
}
