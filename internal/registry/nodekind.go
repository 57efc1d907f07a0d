// Code grounded on the node-kind identifiers used by the event and
// function registries below; each constant names one concrete node type
// the factory can instantiate in a graph.
package registry

import "github.com/hackermdch/giscript/internal/graph"

const (
	NKActivateBasicMotionDevice graph.NodeKind = "ActivateBasicMotionDevice"
	NKActivateDisableCollisionTrigger graph.NodeKind = "ActivateDisableCollisionTrigger"
	NKActivateDisableEntityDeploymentGroup graph.NodeKind = "ActivateDisableEntityDeploymentGroup"
	NKActivateDisableExtraCollision graph.NodeKind = "ActivateDisableExtraCollision"
	NKActivateDisableExtraCollisionClimbability graph.NodeKind = "ActivateDisableExtraCollisionClimbability"
	NKActivateDisableModelDisplay graph.NodeKind = "ActivateDisableModelDisplay"
	NKActivateDisableNativeCollision graph.NodeKind = "ActivateDisableNativeCollision"
	NKActivateDisableNativeCollisionClimbability graph.NodeKind = "ActivateDisableNativeCollisionClimbability"
	NKActivateDisableTab graph.NodeKind = "ActivateDisableTab"
	NKActivateEntityCamera graph.NodeKind = "ActivateEntityCamera"
	NKActivateFocusCamera graph.NodeKind = "ActivateFocusCamera"
	NKActivateRevivePoint graph.NodeKind = "ActivateRevivePoint"
	NKActivateScreenShake graph.NodeKind = "ActivateScreenShake"
	NKActivateUIControlGroupinControlGroupLibrary graph.NodeKind = "ActivateUIControlGroupinControlGroupLibrary"
	NKAddAffixToEquipment graph.NodeKind = "AddAffixToEquipment"
	NKAddAffixToEquipmentAtSpecifiedID graph.NodeKind = "AddAffixToEquipmentAtSpecifiedID"
	NKAddCharacterSkill graph.NodeKind = "AddCharacterSkill"
	NKAddEntityActiveNameplate graph.NodeKind = "AddEntityActiveNameplate"
	NKAddTargetOrientedRotationBasedMotionDevice graph.NodeKind = "AddTargetOrientedRotationBasedMotionDevice"
	NKAddUniformBasicLinearMotionDevice graph.NodeKind = "AddUniformBasicLinearMotionDevice"
	NKAddUniformBasicRotationBasedMotionDevice graph.NodeKind = "AddUniformBasicRotationBasedMotionDevice"
	NKAddUnitTagtoEntity graph.NodeKind = "AddUnitTagtoEntity"
	NKAdjustPlayerBackgroundMusicVolume graph.NodeKind = "AdjustPlayerBackgroundMusicVolume"
	NKAdjustSpecifiedSoundEffectPlayer graph.NodeKind = "AdjustSpecifiedSoundEffectPlayer"
	NKAllowForbidPlayertoRevive graph.NodeKind = "AllowForbidPlayertoRevive"
	NKArccosineFunction graph.NodeKind = "ArccosineFunction"
	NKArcsineFunction graph.NodeKind = "ArcsineFunction"
	NKArctangentFunction graph.NodeKind = "ArctangentFunction"
	NKArithmeticSquareRootOperation graph.NodeKind = "ArithmeticSquareRootOperation"
	NKCalculateTimestampFromFormattedTime graph.NodeKind = "CalculateTimestampFromFormattedTime"
	NKCalculatedayoftheweekfromtimestamp graph.NodeKind = "Calculatedayoftheweekfromtimestamp"
	NKChangeAchievementProgressTally graph.NodeKind = "ChangeAchievementProgressTally"
	NKChangePlayerClass graph.NodeKind = "ChangePlayerClass"
	NKChangePlayersCurrentClassLevel graph.NodeKind = "ChangePlayersCurrentClassLevel"
	NKClearListBool graph.NodeKind = "ClearListBool"
	NKClearListConfig graph.NodeKind = "ClearListConfig"
	NKClearListEntity graph.NodeKind = "ClearListEntity"
	NKClearListFaction graph.NodeKind = "ClearListFaction"
	NKClearListFloat graph.NodeKind = "ClearListFloat"
	NKClearListGUID graph.NodeKind = "ClearListGUID"
	NKClearListInt graph.NodeKind = "ClearListInt"
	NKClearListPrefab graph.NodeKind = "ClearListPrefab"
	NKClearListStr graph.NodeKind = "ClearListStr"
	NKClearListVec graph.NodeKind = "ClearListVec"
	NKClearLoopingSpecialEffect graph.NodeKind = "ClearLoopingSpecialEffect"
	NKClearSpecialEffectsBasedonSpecialEffectAssets graph.NodeKind = "ClearSpecialEffectsBasedonSpecialEffectAssets"
	NKClearSpecifiedTargetsAggroList graph.NodeKind = "ClearSpecifiedTargetsAggroList"
	NKClearUnitTagsfromEntity graph.NodeKind = "ClearUnitTagsfromEntity"
	NKCloseDeckSelector graph.NodeKind = "CloseDeckSelector"
	NKCloseShop graph.NodeKind = "CloseShop"
	NKCloseSpecifiedSoundEffectPlayer graph.NodeKind = "CloseSpecifiedSoundEffectPlayer"
	NKConsumeGiftBox graph.NodeKind = "ConsumeGiftBox"
	NKCosineFunction graph.NodeKind = "CosineFunction"
	NKCreate3DVector graph.NodeKind = "Create3DVector"
	NKCreateEntity graph.NodeKind = "CreateEntity"
	NKCreatePrefab graph.NodeKind = "CreatePrefab"
	NKCreatePrefabGroup graph.NodeKind = "CreatePrefabGroup"
	NKCreateProjectile graph.NodeKind = "CreateProjectile"
	NKDeactivateRevivePoint graph.NodeKind = "DeactivateRevivePoint"
	NKDefeatAllPlayersCharacters graph.NodeKind = "DefeatAllPlayersCharacters"
	NKDegreestoRadians graph.NodeKind = "DegreestoRadians"
	NKDeleteCharacterSkillbyID graph.NodeKind = "DeleteCharacterSkillbyID"
	NKDeleteCharacterSkillbySlot graph.NodeKind = "DeleteCharacterSkillbySlot"
	NKDeleteEntityActiveNameplate graph.NodeKind = "DeleteEntityActiveNameplate"
	NKDestroyEntity graph.NodeKind = "DestroyEntity"
	NKDirectionVectortoRotation graph.NodeKind = "DirectionVectortoRotation"
	NKDisableEntityCamera graph.NodeKind = "DisableEntityCamera"
	NKDisableFocusCamera graph.NodeKind = "DisableFocusCamera"
	NKDistanceBetweenTwoCoordinatePoints graph.NodeKind = "DistanceBetweenTwoCoordinatePoints"
	NKForwardingEvent graph.NodeKind = "ForwardingEvent"
	NKGetAggroListOfCreationInDefaultMode graph.NodeKind = "GetAggroListOfCreationInDefaultMode"
	NKGetAllCharacterEntitiesofSpecifiedPlayer graph.NodeKind = "GetAllCharacterEntitiesofSpecifiedPlayer"
	NKGetAllEntitiesWithinTheCollisionTrigger graph.NodeKind = "GetAllEntitiesWithinTheCollisionTrigger"
	NKGetAllEntitiesontheField graph.NodeKind = "GetAllEntitiesontheField"
	NKGetAllEquipmentFromInventory graph.NodeKind = "GetAllEquipmentFromInventory"
	NKGetAllEquipmentFromLootComponent graph.NodeKind = "GetAllEquipmentFromLootComponent"
	NKGetAllTrophyCurrency graph.NodeKind = "GetAllTrophyCurrency"
	NKGetAllTrophyItems graph.NodeKind = "GetAllTrophyItems"
	NKGetCreationsCurrentTarget graph.NodeKind = "GetCreationsCurrentTarget"
	NKGetCurrentGlobalTimerTime graph.NodeKind = "GetCurrentGlobalTimerTime"
	NKGetCurrentlyActiveEntityDeploymentGroups graph.NodeKind = "GetCurrentlyActiveEntityDeploymentGroups"
	NKGetEntitiesWithSpecifiedPrefabontheField graph.NodeKind = "GetEntitiesWithSpecifiedPrefabontheField"
	NKGetEntityForwardVector graph.NodeKind = "GetEntityForwardVector"
	NKGetEntityListbySpecifiedFaction graph.NodeKind = "GetEntityListbySpecifiedFaction"
	NKGetEntityListbySpecifiedPrefab graph.NodeKind = "GetEntityListbySpecifiedPrefab"
	NKGetEntityListbySpecifiedRange graph.NodeKind = "GetEntityListbySpecifiedRange"
	NKGetEntityListbySpecifiedType graph.NodeKind = "GetEntityListbySpecifiedType"
	NKGetEntityListbyUnitTag graph.NodeKind = "GetEntityListbyUnitTag"
	NKGetEntityRightVector graph.NodeKind = "GetEntityRightVector"
	NKGetEntityType graph.NodeKind = "GetEntityType"
	NKGetEntityUnitTagList graph.NodeKind = "GetEntityUnitTagList"
	NKGetEntityUpwardVector graph.NodeKind = "GetEntityUpwardVector"
	NKGetEquipmentAffixConfigID graph.NodeKind = "GetEquipmentAffixConfigID"
	NKGetEquipmentAffixList graph.NodeKind = "GetEquipmentAffixList"
	NKGetEquipmentAffixValue graph.NodeKind = "GetEquipmentAffixValue"
	NKGetFactionSettlementRankingValue graph.NodeKind = "GetFactionSettlementRankingValue"
	NKGetFactionSettlementSuccessStatus graph.NodeKind = "GetFactionSettlementSuccessStatus"
	NKGetInventoryCapacity graph.NodeKind = "GetInventoryCapacity"
	NKGetInventoryCurrencyQuantity graph.NodeKind = "GetInventoryCurrencyQuantity"
	NKGetInventoryItemQuantity graph.NodeKind = "GetInventoryItemQuantity"
	NKGetListOfEntitiesOwnedByTheEntity graph.NodeKind = "GetListOfEntitiesOwnedByTheEntity"
	NKGetListofOwnersThatHavetheTargetAsTheirAggroTarget graph.NodeKind = "GetListofOwnersThatHavetheTargetAsTheirAggroTarget"
	NKGetListofOwnersWhoHavetheTargetinTheirAggroList graph.NodeKind = "GetListofOwnersWhoHavetheTargetinTheirAggroList"
	NKGetListofPlayerEntitiesontheField graph.NodeKind = "GetListofPlayerEntitiesontheField"
	NKGetLootComponentCurrencyQuantity graph.NodeKind = "GetLootComponentCurrencyQuantity"
	NKGetLootComponentItemQuantity graph.NodeKind = "GetLootComponentItemQuantity"
	NKGetOwnerEntity graph.NodeKind = "GetOwnerEntity"
	NKGetPlayerClientInputDeviceType graph.NodeKind = "GetPlayerClientInputDeviceType"
	NKGetPlayerEntitytoWhichtheCharacterBelongs graph.NodeKind = "GetPlayerEntitytoWhichtheCharacterBelongs"
	NKGetPlayerEscapeValidity graph.NodeKind = "GetPlayerEscapeValidity"
	NKGetPlayerGUIDbyPlayerID graph.NodeKind = "GetPlayerGUIDbyPlayerID"
	NKGetPlayerIDbyPlayerGUID graph.NodeKind = "GetPlayerIDbyPlayerGUID"
	NKGetPlayerNickname graph.NodeKind = "GetPlayerNickname"
	NKGetPlayerRankScoreChange graph.NodeKind = "GetPlayerRankScoreChange"
	NKGetPlayerRemainingRevives graph.NodeKind = "GetPlayerRemainingRevives"
	NKGetPlayerReviveTime graph.NodeKind = "GetPlayerReviveTime"
	NKGetPlayerSettlementRankingValue graph.NodeKind = "GetPlayerSettlementRankingValue"
	NKGetPlayerSettlementSuccessStatus graph.NodeKind = "GetPlayerSettlementSuccessStatus"
	NKGetPlayersCurrentUILayout graph.NodeKind = "GetPlayersCurrentUILayout"
	NKGetPresetPointListbyUnitTag graph.NodeKind = "GetPresetPointListbyUnitTag"
	NKGetPresetStatus graph.NodeKind = "GetPresetStatus"
	NKGetRandomFloatingPointNumber graph.NodeKind = "GetRandomFloatingPointNumber"
	NKGetRandomInteger graph.NodeKind = "GetRandomInteger"
	NKGetSelfEntity graph.NodeKind = "GetSelfEntity"
	NKGetSpecifiedTypeofEntitiesontheField graph.NodeKind = "GetSpecifiedTypeofEntitiesontheField"
	NKGetTheCurrentlyActiveScanTagConfigID graph.NodeKind = "GetTheCurrentlyActiveScanTagConfigID"
	NKGettheAggroListoftheSpecifiedEntity graph.NodeKind = "GettheAggroListoftheSpecifiedEntity"
	NKGettheAggroTargetoftheSpecifiedEntity graph.NodeKind = "GettheAggroTargetoftheSpecifiedEntity"
	NKHPLoss graph.NodeKind = "HPLoss"
	NKIncreaseMaximumInventoryCapacity graph.NodeKind = "IncreaseMaximumInventoryCapacity"
	NKIncreasePlayersCurrentClassEXP graph.NodeKind = "IncreasePlayersCurrentClassEXP"
	NKInitializeCharacterSkill graph.NodeKind = "InitializeCharacterSkill"
	NKInitiateAttack graph.NodeKind = "InitiateAttack"
	NKInsertValueIntoListBool graph.NodeKind = "InsertValueIntoListBool"
	NKInsertValueIntoListConfig graph.NodeKind = "InsertValueIntoListConfig"
	NKInsertValueIntoListEntity graph.NodeKind = "InsertValueIntoListEntity"
	NKInsertValueIntoListFaction graph.NodeKind = "InsertValueIntoListFaction"
	NKInsertValueIntoListFloat graph.NodeKind = "InsertValueIntoListFloat"
	NKInsertValueIntoListGUID graph.NodeKind = "InsertValueIntoListGUID"
	NKInsertValueIntoListInt graph.NodeKind = "InsertValueIntoListInt"
	NKInsertValueIntoListPrefab graph.NodeKind = "InsertValueIntoListPrefab"
	NKInsertValueIntoListStr graph.NodeKind = "InsertValueIntoListStr"
	NKInsertValueIntoListVec graph.NodeKind = "InsertValueIntoListVec"
	NKListOfSlotIDsQueryingUnitStatus graph.NodeKind = "ListOfSlotIDsQueryingUnitStatus"
	NKLogarithmOperation graph.NodeKind = "LogarithmOperation"
	NKLogicalANDOperation graph.NodeKind = "LogicalANDOperation"
	NKLogicalNOTOperation graph.NodeKind = "LogicalNOTOperation"
	NKLogicalOROperation graph.NodeKind = "LogicalOROperation"
	NKLogicalXOROperation graph.NodeKind = "LogicalXOROperation"
	NKModifyEntityFaction graph.NodeKind = "ModifyEntityFaction"
	NKModifyEnvironmentSettings graph.NodeKind = "ModifyEnvironmentSettings"
	NKModifyEquipmentAffixValue graph.NodeKind = "ModifyEquipmentAffixValue"
	NKModifyGlobalTimer graph.NodeKind = "ModifyGlobalTimer"
	NKModifyInventoryCurrencyQuantity graph.NodeKind = "ModifyInventoryCurrencyQuantity"
	NKModifyInventoryItemQuantity graph.NodeKind = "ModifyInventoryItemQuantity"
	NKModifyLootComponentCurrencyAmount graph.NodeKind = "ModifyLootComponentCurrencyAmount"
	NKModifyLootItemComponentQuantity graph.NodeKind = "ModifyLootItemComponentQuantity"
	NKModifyMiniMapMarkerActivationStatus graph.NodeKind = "ModifyMiniMapMarkerActivationStatus"
	NKModifyMiniMapZoom graph.NodeKind = "ModifyMiniMapZoom"
	NKModifyPlayerBackgroundMusic graph.NodeKind = "ModifyPlayerBackgroundMusic"
	NKModifyPlayerChannelPermission graph.NodeKind = "ModifyPlayerChannelPermission"
	NKModifyPlayerListforTrackingMiniMapMarkers graph.NodeKind = "ModifyPlayerListforTrackingMiniMapMarkers"
	NKModifyPlayerListforVisibleMiniMapMarkers graph.NodeKind = "ModifyPlayerListforVisibleMiniMapMarkers"
	NKModifyPlayerMarkersontheMiniMap graph.NodeKind = "ModifyPlayerMarkersontheMiniMap"
	NKModifySkillResourceAmount graph.NodeKind = "ModifySkillResourceAmount"
	NKModifyUIControlStatusWithintheInterfaceLayout graph.NodeKind = "ModifyUIControlStatusWithintheInterfaceLayout"
	NKModifyValueinListBool graph.NodeKind = "ModifyValueinListBool"
	NKModifyValueinListConfig graph.NodeKind = "ModifyValueinListConfig"
	NKModifyValueinListEntity graph.NodeKind = "ModifyValueinListEntity"
	NKModifyValueinListFaction graph.NodeKind = "ModifyValueinListFaction"
	NKModifyValueinListFloat graph.NodeKind = "ModifyValueinListFloat"
	NKModifyValueinListGUID graph.NodeKind = "ModifyValueinListGUID"
	NKModifyValueinListInt graph.NodeKind = "ModifyValueinListInt"
	NKModifyValueinListPrefab graph.NodeKind = "ModifyValueinListPrefab"
	NKModifyValueinListStr graph.NodeKind = "ModifyValueinListStr"
	NKModifyValueinListVec graph.NodeKind = "ModifyValueinListVec"
	NKModifyingCharacterDisruptorDevice graph.NodeKind = "ModifyingCharacterDisruptorDevice"
	NKModuloOperation graph.NodeKind = "ModuloOperation"
	NKMountLoopingSpecialEffect graph.NodeKind = "MountLoopingSpecialEffect"
	NKOpenShop graph.NodeKind = "OpenShop"
	NKPauseBasicMotionDevice graph.NodeKind = "PauseBasicMotionDevice"
	NKPauseGlobalTimer graph.NodeKind = "PauseGlobalTimer"
	NKPauseTimer graph.NodeKind = "PauseTimer"
	NKPi graph.NodeKind = "Pi"
	NKPlayTimedEffects graph.NodeKind = "PlayTimedEffects"
	NKPlayerPlaysOneShot2DSoundEffect graph.NodeKind = "PlayerPlaysOneShot2DSoundEffect"
	NKPrintString graph.NodeKind = "PrintString"
	NKQueryCharacterSkill graph.NodeKind = "QueryCharacterSkill"
	NKQueryCorrespondingGiftBoxConsumption graph.NodeKind = "QueryCorrespondingGiftBoxConsumption"
	NKQueryCorrespondingGiftBoxQuantity graph.NodeKind = "QueryCorrespondingGiftBoxQuantity"
	NKQueryCustomShopItemSalesList graph.NodeKind = "QueryCustomShopItemSalesList"
	NKQueryEntityFaction graph.NodeKind = "QueryEntityFaction"
	NKQueryEntitybyGUID graph.NodeKind = "QueryEntitybyGUID"
	NKQueryEquipmentConfigIDbyEquipmentID graph.NodeKind = "QueryEquipmentConfigIDbyEquipmentID"
	NKQueryEquipmentTagList graph.NodeKind = "QueryEquipmentTagList"
	NKQueryGUIDbyEntity graph.NodeKind = "QueryGUIDbyEntity"
	NKQueryGameModeAndPlayerNumber graph.NodeKind = "QueryGameModeAndPlayerNumber"
	NKQueryGameTimeElapsed graph.NodeKind = "QueryGameTimeElapsed"
	NKQueryGlobalAggroTransferMultiplier graph.NodeKind = "QueryGlobalAggroTransferMultiplier"
	NKQueryIfAchievementIsCompleted graph.NodeKind = "QueryIfAchievementIsCompleted"
	NKQueryIfAllPlayerCharactersAreDown graph.NodeKind = "QueryIfAllPlayerCharactersAreDown"
	NKQueryIfEntityHasUnitStatus graph.NodeKind = "QueryIfEntityHasUnitStatus"
	NKQueryIfEntityIsontheField graph.NodeKind = "QueryIfEntityIsontheField"
	NKQueryIfFactionIsHostile graph.NodeKind = "QueryIfFactionIsHostile"
	NKQueryInventoryShopItemSalesList graph.NodeKind = "QueryInventoryShopItemSalesList"
	NKQueryPlayerClass graph.NodeKind = "QueryPlayerClass"
	NKQueryPlayerClassLevel graph.NodeKind = "QueryPlayerClassLevel"
	NKQueryServerTimeZone graph.NodeKind = "QueryServerTimeZone"
	NKQueryShopPurchaseItemList graph.NodeKind = "QueryShopPurchaseItemList"
	NKQueryTimestampUTC0 graph.NodeKind = "QueryTimestampUTC0"
	NKQueryUnitStatusApplierBySlotID graph.NodeKind = "QueryUnitStatusApplierBySlotID"
	NKQueryUnitStatusStacksBySlotID graph.NodeKind = "QueryUnitStatusStacksBySlotID"
	NKQueryifSpecifiedEntityIsinCombat graph.NodeKind = "QueryifSpecifiedEntityIsinCombat"
	NKQuerytheAggroMultiplieroftheSpecifiedEntity graph.NodeKind = "QuerytheAggroMultiplieroftheSpecifiedEntity"
	NKQuerytheAggroValueoftheSpecifiedEntity graph.NodeKind = "QuerytheAggroValueoftheSpecifiedEntity"
	NKRadianstoDegrees graph.NodeKind = "RadianstoDegrees"
	NKRandomDeckSelectorSelectionList graph.NodeKind = "RandomDeckSelectorSelectionList"
	NKReadByBit graph.NodeKind = "ReadByBit"
	NKRecoverBasicMotionDevice graph.NodeKind = "RecoverBasicMotionDevice"
	NKRecoverGlobalTimer graph.NodeKind = "RecoverGlobalTimer"
	NKRecoverHP graph.NodeKind = "RecoverHP"
	NKRecoverHPDirectly graph.NodeKind = "RecoverHPDirectly"
	NKRemoveEntity graph.NodeKind = "RemoveEntity"
	NKRemoveEquipmentAffix graph.NodeKind = "RemoveEquipmentAffix"
	NKRemoveInterfaceControlGroupFromControlGroupLibrary graph.NodeKind = "RemoveInterfaceControlGroupFromControlGroupLibrary"
	NKRemoveItemFromCustomShopSalesList graph.NodeKind = "RemoveItemFromCustomShopSalesList"
	NKRemoveItemFromInventoryShopSalesList graph.NodeKind = "RemoveItemFromInventoryShopSalesList"
	NKRemoveItemFromPurchaseList graph.NodeKind = "RemoveItemFromPurchaseList"
	NKRemoveTargetEntityFromAggroList graph.NodeKind = "RemoveTargetEntityFromAggroList"
	NKRemoveUnitTagfromEntity graph.NodeKind = "RemoveUnitTagfromEntity"
	NKRemoveValueFromListBool graph.NodeKind = "RemoveValueFromListBool"
	NKRemoveValueFromListConfig graph.NodeKind = "RemoveValueFromListConfig"
	NKRemoveValueFromListEntity graph.NodeKind = "RemoveValueFromListEntity"
	NKRemoveValueFromListFaction graph.NodeKind = "RemoveValueFromListFaction"
	NKRemoveValueFromListFloat graph.NodeKind = "RemoveValueFromListFloat"
	NKRemoveValueFromListGUID graph.NodeKind = "RemoveValueFromListGUID"
	NKRemoveValueFromListInt graph.NodeKind = "RemoveValueFromListInt"
	NKRemoveValueFromListPrefab graph.NodeKind = "RemoveValueFromListPrefab"
	NKRemoveValueFromListStr graph.NodeKind = "RemoveValueFromListStr"
	NKRemoveValueFromListVec graph.NodeKind = "RemoveValueFromListVec"
	NKResumeTimer graph.NodeKind = "ResumeTimer"
	NKReviveAllPlayersCharacters graph.NodeKind = "ReviveAllPlayersCharacters"
	NKReviveCharacter graph.NodeKind = "ReviveCharacter"
	NKRoundtoIntegerOperation graph.NodeKind = "RoundtoIntegerOperation"
	NKSetAchievementProgressTally graph.NodeKind = "SetAchievementProgressTally"
	NKSetChatChannelSwitch graph.NodeKind = "SetChatChannelSwitch"
	NKSetCurrentEnvironmentTime graph.NodeKind = "SetCurrentEnvironmentTime"
	NKSetEntityActiveNameplate graph.NodeKind = "SetEntityActiveNameplate"
	NKSetEnvironmentTimePassageSpeed graph.NodeKind = "SetEnvironmentTimePassageSpeed"
	NKSetFactionSettlementRankingValue graph.NodeKind = "SetFactionSettlementRankingValue"
	NKSetFactionSettlementSuccessStatus graph.NodeKind = "SetFactionSettlementSuccessStatus"
	NKSetInventoryDropItemsCurrencyAmount graph.NodeKind = "SetInventoryDropItemsCurrencyAmount"
	NKSetLootDropContent graph.NodeKind = "SetLootDropContent"
	NKSetPlayerEscapeValidity graph.NodeKind = "SetPlayerEscapeValidity"
	NKSetPlayerLeaderboardScoreAsanFloat graph.NodeKind = "SetPlayerLeaderboardScoreAsanFloat"
	NKSetPlayerLeaderboardScoreAsanInteger graph.NodeKind = "SetPlayerLeaderboardScoreAsanInteger"
	NKSetPlayerRemainingRevives graph.NodeKind = "SetPlayerRemainingRevives"
	NKSetPlayerReviveTime graph.NodeKind = "SetPlayerReviveTime"
	NKSetPlayerSettlementRankingValue graph.NodeKind = "SetPlayerSettlementRankingValue"
	NKSetPlayerSettlementSuccessStatus graph.NodeKind = "SetPlayerSettlementSuccessStatus"
	NKSetPlayersCurrentChannel graph.NodeKind = "SetPlayersCurrentChannel"
	NKSetPresetStatus graph.NodeKind = "SetPresetStatus"
	NKSetScanComponentsActiveScanTagID graph.NodeKind = "SetScanComponentsActiveScanTagID"
	NKSetScanTagRules graph.NodeKind = "SetScanTagRules"
	NKSetSkillResourceAmount graph.NodeKind = "SetSkillResourceAmount"
	NKSettheAggroValueofSpecifiedEntity graph.NodeKind = "SettheAggroValueofSpecifiedEntity"
	NKSettleStage graph.NodeKind = "SettleStage"
	NKSineFunction graph.NodeKind = "SineFunction"
	NKStartGlobalTimer graph.NodeKind = "StartGlobalTimer"
	NKStartPausePlayerBackgroundMusic graph.NodeKind = "StartPausePlayerBackgroundMusic"
	NKStartPauseSpecifiedSoundEffectPlayer graph.NodeKind = "StartPauseSpecifiedSoundEffectPlayer"
	NKStartTimer graph.NodeKind = "StartTimer"
	NKStopGlobalTimer graph.NodeKind = "StopGlobalTimer"
	NKStopTimer graph.NodeKind = "StopTimer"
	NKStopandDeleteBasicMotionDevice graph.NodeKind = "StopandDeleteBasicMotionDevice"
	NKSwitchActiveTextBubble graph.NodeKind = "SwitchActiveTextBubble"
	NKSwitchCreationPatrolTemplate graph.NodeKind = "SwitchCreationPatrolTemplate"
	NKSwitchCurrentInterfaceLayout graph.NodeKind = "SwitchCurrentInterfaceLayout"
	NKSwitchFollowMotionDeviceTargetByEntity graph.NodeKind = "SwitchFollowMotionDeviceTargetByEntity"
	NKSwitchFollowMotionDeviceTargetbyGUID graph.NodeKind = "SwitchFollowMotionDeviceTargetbyGUID"
	NKSwitchMainCameraTemplate graph.NodeKind = "SwitchMainCameraTemplate"
	NKSwitchthescoringgroupthataffectsplayerscompetitiverank graph.NodeKind = "Switchthescoringgroupthataffectsplayerscompetitiverank"
	NKTangentFunction graph.NodeKind = "TangentFunction"
	NKTauntTarget graph.NodeKind = "TauntTarget"
	NKTeleportPlayer graph.NodeKind = "TeleportPlayer"
	NKToggleEntityLightSource graph.NodeKind = "ToggleEntityLightSource"
	NKUpdatePlayerLeaderboardScore graph.NodeKind = "UpdatePlayerLeaderboardScore"
	NKWeightedRandom graph.NodeKind = "WeightedRandom"
	NKWhenAggroTargetChanges graph.NodeKind = "WhenAggroTargetChanges"
	NKWhenAllPlayersCharactersAreDown graph.NodeKind = "WhenAllPlayersCharactersAreDown"
	NKWhenAllPlayersCharactersAreRevived graph.NodeKind = "WhenAllPlayersCharactersAreRevived"
	NKWhenBasicMotionDeviceStops graph.NodeKind = "WhenBasicMotionDeviceStops"
	NKWhenCharacterRevives graph.NodeKind = "WhenCharacterRevives"
	NKWhenCreationEntersCombat graph.NodeKind = "WhenCreationEntersCombat"
	NKWhenCreationLeavesCombat graph.NodeKind = "WhenCreationLeavesCombat"
	NKWhenCreationReachesPatrolWaypoint graph.NodeKind = "WhenCreationReachesPatrolWaypoint"
	NKWhenCustomShopItemIsSold graph.NodeKind = "WhenCustomShopItemIsSold"
	NKWhenCustomVariableChangesBool graph.NodeKind = "WhenCustomVariableChangesBool"
	NKWhenCustomVariableChangesConfig graph.NodeKind = "WhenCustomVariableChangesConfig"
	NKWhenCustomVariableChangesEntity graph.NodeKind = "WhenCustomVariableChangesEntity"
	NKWhenCustomVariableChangesFaction graph.NodeKind = "WhenCustomVariableChangesFaction"
	NKWhenCustomVariableChangesFloat graph.NodeKind = "WhenCustomVariableChangesFloat"
	NKWhenCustomVariableChangesGUID graph.NodeKind = "WhenCustomVariableChangesGUID"
	NKWhenCustomVariableChangesInt graph.NodeKind = "WhenCustomVariableChangesInt"
	NKWhenCustomVariableChangesListBool graph.NodeKind = "WhenCustomVariableChangesListBool"
	NKWhenCustomVariableChangesListConfig graph.NodeKind = "WhenCustomVariableChangesListConfig"
	NKWhenCustomVariableChangesListEntity graph.NodeKind = "WhenCustomVariableChangesListEntity"
	NKWhenCustomVariableChangesListFaction graph.NodeKind = "WhenCustomVariableChangesListFaction"
	NKWhenCustomVariableChangesListFloat graph.NodeKind = "WhenCustomVariableChangesListFloat"
	NKWhenCustomVariableChangesListGUID graph.NodeKind = "WhenCustomVariableChangesListGUID"
	NKWhenCustomVariableChangesListInt graph.NodeKind = "WhenCustomVariableChangesListInt"
	NKWhenCustomVariableChangesListPrefab graph.NodeKind = "WhenCustomVariableChangesListPrefab"
	NKWhenCustomVariableChangesListStr graph.NodeKind = "WhenCustomVariableChangesListStr"
	NKWhenCustomVariableChangesListVec graph.NodeKind = "WhenCustomVariableChangesListVec"
	NKWhenCustomVariableChangesPrefab graph.NodeKind = "WhenCustomVariableChangesPrefab"
	NKWhenCustomVariableChangesStr graph.NodeKind = "WhenCustomVariableChangesStr"
	NKWhenCustomVariableChangesVec graph.NodeKind = "WhenCustomVariableChangesVec"
	NKWhenEnteringCollisionTrigger graph.NodeKind = "WhenEnteringCollisionTrigger"
	NKWhenEnteringanInterruptibleState graph.NodeKind = "WhenEnteringanInterruptibleState"
	NKWhenEntityFactionChanges graph.NodeKind = "WhenEntityFactionChanges"
	NKWhenEntityIsCreated graph.NodeKind = "WhenEntityIsCreated"
	NKWhenEntityIsRemovedDestroyed graph.NodeKind = "WhenEntityIsRemovedDestroyed"
	NKWhenEquipmentAffixValueChanges graph.NodeKind = "WhenEquipmentAffixValueChanges"
	NKWhenEquipmentIsEquipped graph.NodeKind = "WhenEquipmentIsEquipped"
	NKWhenEquipmentIsInitialized graph.NodeKind = "WhenEquipmentIsInitialized"
	NKWhenEquipmentIsUnequipped graph.NodeKind = "WhenEquipmentIsUnequipped"
	NKWhenExitingCollisionTrigger graph.NodeKind = "WhenExitingCollisionTrigger"
	NKWhenGlobalTimerIsTriggered graph.NodeKind = "WhenGlobalTimerIsTriggered"
	NKWhenHPIsRecovered graph.NodeKind = "WhenHPIsRecovered"
	NKWhenInitiatingHPRecovery graph.NodeKind = "WhenInitiatingHPRecovery"
	NKWhenItemIsAddedtoInventory graph.NodeKind = "WhenItemIsAddedtoInventory"
	NKWhenItemIsLostFromInventory graph.NodeKind = "WhenItemIsLostFromInventory"
	NKWhenItemsintheInventoryAreUsed graph.NodeKind = "WhenItemsintheInventoryAreUsed"
	NKWhenOnHitDetectionIsTriggered graph.NodeKind = "WhenOnHitDetectionIsTriggered"
	NKWhenPathReachesWaypoint graph.NodeKind = "WhenPathReachesWaypoint"
	NKWhenPlayerClassChanges graph.NodeKind = "WhenPlayerClassChanges"
	NKWhenPlayerClassIsRemoved graph.NodeKind = "WhenPlayerClassIsRemoved"
	NKWhenPlayerClassLevelChanges graph.NodeKind = "WhenPlayerClassLevelChanges"
	NKWhenPlayerIsAbnormallyDownedandRevives graph.NodeKind = "WhenPlayerIsAbnormallyDownedandRevives"
	NKWhenPlayerTeleportCompletes graph.NodeKind = "WhenPlayerTeleportCompletes"
	NKWhenPresetStatusChanges graph.NodeKind = "WhenPresetStatusChanges"
	NKWhenSelfEntersCombat graph.NodeKind = "WhenSelfEntersCombat"
	NKWhenSelfLeavesCombat graph.NodeKind = "WhenSelfLeavesCombat"
	NKWhenSellingInventoryItemsintheShop graph.NodeKind = "WhenSellingInventoryItemsintheShop"
	NKWhenShieldIsAttacked graph.NodeKind = "WhenShieldIsAttacked"
	NKWhenSkillNodeIsCalled graph.NodeKind = "WhenSkillNodeIsCalled"
	NKWhenTabIsSelected graph.NodeKind = "WhenTabIsSelected"
	NKWhenTextBubbleIsCompleted graph.NodeKind = "WhenTextBubbleIsCompleted"
	NKWhenTimerIsTriggered graph.NodeKind = "WhenTimerIsTriggered"
	NKWhenUIControlGroupIsTriggered graph.NodeKind = "WhenUIControlGroupIsTriggered"
	NKWhenUnitStatusChanges graph.NodeKind = "WhenUnitStatusChanges"
	NKWhentheQuantityofInventoryCurrencyChanges graph.NodeKind = "WhentheQuantityofInventoryCurrencyChanges"
	NKWhentheQuantityofInventoryItemChanges graph.NodeKind = "WhentheQuantityofInventoryItemChanges"
	NKWriteByBit graph.NodeKind = "WriteByBit"
)
