package entity

// Предикаты классификации сущностей для системы защиты регионов.
// Все функции чистые: не меняют сущность, не блокируются и для nil
// возвращают false.

// NPCMetadataKey - метка, которой сторонние системы помечают своих NPC
const NPCMetadataKey = "NPC"

// IsTamed проверяет, что сущность приручаемая и приручена
func IsTamed(e *Entity) bool {
	return e.Is(CapTameable) && e.Tamed
}

// IsTNTBased проверяет, что сущность - подожжённый TNT или вагонетка с TNT
func IsTNTBased(e *Entity) bool {
	return e.Capabilities().Any(CapPrimedTNT | CapExplosiveMinecart)
}

// IsFireball проверяет, что вид - огненный шар (большой или малый).
// Черепа иссушителя сюда не входят.
func IsFireball(t EntityType) bool {
	return t == EntityTypeFireball || t == EntityTypeSmallFireball
}

// IsRiddenOnUse проверяет, можно ли оседлать сущность при использовании.
// Управляемые сущности (свинья, страйдер) - только с седлом, прочий
// транспорт - всегда.
func IsRiddenOnUse(e *Entity) bool {
	if e.Is(CapSteerable) {
		return e.Saddled
	}
	return e.Is(CapVehicle)
}

// IsVehicle проверяет, что вид - лодка или вагонетка
func IsVehicle(t EntityType) bool {
	return IsBoat(t) || IsMinecart(t)
}

// IsBoat проверяет, что вид - лодка, плот или лодка с сундуком
func IsBoat(t EntityType) bool {
	switch t {
	case EntityTypeOakBoat, EntityTypeDarkOakBoat, EntityTypeSpruceBoat, EntityTypeAcaciaBoat,
		EntityTypeCherryBoat, EntityTypeJungleBoat, EntityTypeMangroveBoat, EntityTypeBirchBoat,
		EntityTypePaleOakBoat, EntityTypeBambooRaft, EntityTypeOakChestBoat, EntityTypeDarkOakChestBoat,
		EntityTypeSpruceChestBoat, EntityTypeAcaciaChestBoat, EntityTypeCherryChestBoat,
		EntityTypeJungleChestBoat, EntityTypeMangroveChestBoat, EntityTypeBirchChestBoat,
		EntityTypePaleOakChestBoat, EntityTypeBambooChestRaft:
		return true
	default:
		return false
	}
}

// IsMinecart проверяет, что вид - вагонетка любого типа
func IsMinecart(t EntityType) bool {
	switch t {
	case EntityTypeMinecart, EntityTypeChestMinecart, EntityTypeCommandBlockMinecart,
		EntityTypeFurnaceMinecart, EntityTypeHopperMinecart, EntityTypeSpawnerMinecart,
		EntityTypeTNTMinecart:
		return true
	default:
		return false
	}
}

// IsHostile проверяет, что сущность враждебна
func IsHostile(e *Entity) bool {
	return e.Capabilities().Any(CapMonster | CapSlime | CapFlying | CapEnderDragon | CapShulker)
}

// IsNonHostile проверяет, что сущность - невраждебное существо
func IsNonHostile(e *Entity) bool {
	return !IsHostile(e) && e.Is(CapCreature)
}

// IsAmbient проверяет, что сущность - фоновое существо (летучая мышь)
func IsAmbient(e *Entity) bool {
	return e.Is(CapAmbient)
}

// IsNPC проверяет, что сущность - NPC: либо по виду, либо по метке
// NPCMetadataKey из metadata. metadata может быть nil.
func IsNPC(e *Entity, metadata MetadataSource) bool {
	if e == nil {
		return false
	}
	if e.Is(CapNPC) {
		return true
	}
	return metadata != nil && metadata.HasMetadata(e.UniqueID, NPCMetadataKey)
}

// IsNonPlayerCreature проверяет, что сущность живая и не является игроком
func IsNonPlayerCreature(e *Entity) bool {
	return e.Is(CapLiving) && !e.Is(CapPlayer)
}

// IsConsideredBuildingIfUsed проверяет, считается ли использование
// сущности строительством, а не простым взаимодействием.
func IsConsideredBuildingIfUsed(e *Entity) bool {
	caps := e.Capabilities()
	return caps.Any(CapHanging|CapArmorStand|CapEnderCrystal|CapAllay) ||
		caps.Has(CapMinecart|CapInventoryHolder)
}

// IsPotionArrow проверяет, что сущность - стрела с эффектом или спектральная
func IsPotionArrow(e *Entity) bool {
	return e.Capabilities().Any(CapArrow | CapSpectralArrow)
}

// IsAoECloud проверяет, что вид - облако эффекта
func IsAoECloud(t EntityType) bool {
	return t == EntityTypeAreaEffectCloud
}

// IsPluginSpawning проверяет, что причина появления - создание плагином или
// командой summon.
func IsPluginSpawning(reason SpawnReason) bool {
	switch reason {
	case SpawnReasonCustom, SpawnReasonCommand:
		return true
	default:
		return false
	}
}
