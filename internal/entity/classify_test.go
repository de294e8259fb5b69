package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// stubMetadata - метки в памяти для тестов IsNPC
type stubMetadata map[uuid.UUID]map[string]bool

func (s stubMetadata) HasMetadata(id uuid.UUID, key string) bool {
	return s[id][key]
}

func TestVehicle_BoatAndMinecartConsistency(t *testing.T) {
	boats, minecarts := 0, 0

	for _, et := range EntityTypes() {
		boat := IsBoat(et)
		minecart := IsMinecart(et)

		assert.Equal(t, boat || minecart, IsVehicle(et), "IsVehicle для %s должен совпадать с IsBoat||IsMinecart", et)
		assert.False(t, boat && minecart, "%s не может быть одновременно лодкой и вагонеткой", et)

		if boat {
			boats++
		}
		if minecart {
			minecarts++
		}
	}

	assert.Equal(t, 20, boats, "Ожидалось 20 видов лодок и плотов")
	assert.Equal(t, 7, minecarts, "Ожидалось 7 видов вагонеток")
	assert.False(t, IsVehicle(EntityTypeUnknown))
	assert.False(t, IsVehicle(EntityTypeHorse), "Лошадь не относится к лодкам и вагонеткам")
}

func TestHostile_ExactlyOneForCreatures(t *testing.T) {
	for _, et := range EntityTypes() {
		e := NewEntity(1, et)
		if !e.Is(CapCreature) {
			assert.False(t, IsNonHostile(e), "%s не существо и не может быть невраждебным", et)
			continue
		}

		assert.NotEqual(t, IsHostile(e), IsNonHostile(e),
			"Для существа %s ровно один из IsHostile/IsNonHostile должен быть true", et)
	}
}

func TestHostile_Kinds(t *testing.T) {
	hostile := []EntityType{
		EntityTypeZombie, EntityTypeCreeper, EntityTypeWither, EntityTypeSlime, EntityTypeMagmaCube,
		EntityTypeGhast, EntityTypePhantom, EntityTypeEnderDragon, EntityTypeShulker, EntityTypeWarden,
	}
	for _, et := range hostile {
		assert.True(t, IsHostile(NewEntity(1, et)), "%s должен быть враждебным", et)
	}

	nonHostile := []EntityType{EntityTypeCow, EntityTypeWolf, EntityTypeVillager, EntityTypeHoglin, EntityTypeIronGolem}
	for _, et := range nonHostile {
		e := NewEntity(1, et)
		assert.False(t, IsHostile(e), "%s не должен быть враждебным", et)
		assert.True(t, IsNonHostile(e), "%s должен быть невраждебным существом", et)
	}

	// Не существа: ни то, ни другое
	for _, et := range []EntityType{EntityTypeBat, EntityTypePlayer, EntityTypeArmorStand, EntityTypeOakBoat} {
		e := NewEntity(1, et)
		assert.False(t, IsHostile(e), "%s не враждебен", et)
		assert.False(t, IsNonHostile(e), "%s не является существом", et)
	}

	assert.False(t, IsHostile(nil))
	assert.False(t, IsNonHostile(nil))
}

func TestNonPlayerCreature(t *testing.T) {
	for _, et := range EntityTypes() {
		e := NewEntity(1, et)
		switch {
		case et == EntityTypePlayer:
			assert.False(t, IsNonPlayerCreature(e), "Игрок не может быть неигровым существом")
		case e.Is(CapLiving):
			assert.True(t, IsNonPlayerCreature(e), "Живая сущность %s должна считаться неигровым существом", et)
		default:
			assert.False(t, IsNonPlayerCreature(e), "Неживая сущность %s не существо", et)
		}
	}
	assert.False(t, IsNonPlayerCreature(nil))
}

func TestIsTamed(t *testing.T) {
	wolf := NewEntity(1, EntityTypeWolf)
	assert.False(t, IsTamed(wolf), "Дикий волк не приручен")

	wolf.Tamed = true
	assert.True(t, IsTamed(wolf), "Прирученный волк должен определяться")

	// Флаг приручения у неприручаемого вида игнорируется
	cow := NewEntity(2, EntityTypeCow)
	cow.Tamed = true
	assert.False(t, IsTamed(cow), "Корова не приручаемая")

	horse := NewEntity(3, EntityTypeHorse)
	horse.Tamed = true
	assert.True(t, IsTamed(horse))

	assert.False(t, IsTamed(nil), "nil не может быть приручен")
}

func TestIsTNTBased(t *testing.T) {
	assert.True(t, IsTNTBased(NewEntity(1, EntityTypeTNT)))
	assert.True(t, IsTNTBased(NewEntity(2, EntityTypeTNTMinecart)))
	assert.False(t, IsTNTBased(NewEntity(3, EntityTypeCreeper)), "Крипер не основан на TNT")
	assert.False(t, IsTNTBased(NewEntity(4, EntityTypeMinecart)))
	assert.False(t, IsTNTBased(nil))
}

func TestIsFireball(t *testing.T) {
	assert.True(t, IsFireball(EntityTypeFireball))
	assert.True(t, IsFireball(EntityTypeSmallFireball))
	assert.False(t, IsFireball(EntityTypeWitherSkull), "Череп иссушителя не огненный шар")
	assert.False(t, IsFireball(EntityTypeDragonFireball))
	assert.False(t, IsFireball(EntityTypeWindCharge))
	assert.False(t, IsFireball(EntityTypeUnknown))
}

func TestIsRiddenOnUse(t *testing.T) {
	pig := NewEntity(1, EntityTypePig)
	assert.False(t, IsRiddenOnUse(pig), "Свинья без седла не ездовая")
	pig.Saddled = true
	assert.True(t, IsRiddenOnUse(pig), "Свинья с седлом ездовая")

	strider := NewEntity(2, EntityTypeStrider)
	assert.False(t, IsRiddenOnUse(strider))

	for _, et := range []EntityType{EntityTypeOakBoat, EntityTypeBambooChestRaft, EntityTypeMinecart, EntityTypeHorse, EntityTypeCamel} {
		assert.True(t, IsRiddenOnUse(NewEntity(3, et)), "Транспорт %s должен быть ездовым", et)
	}

	cow := NewEntity(4, EntityTypeCow)
	cow.Saddled = true
	assert.False(t, IsRiddenOnUse(cow), "Седло у коровы не учитывается")
	assert.False(t, IsRiddenOnUse(nil))
}

func TestIsAmbient(t *testing.T) {
	assert.True(t, IsAmbient(NewEntity(1, EntityTypeBat)))
	assert.False(t, IsAmbient(NewEntity(2, EntityTypeParrot)))
	assert.False(t, IsAmbient(nil))
}

func TestIsNPC(t *testing.T) {
	villager := NewEntity(1, EntityTypeVillager)
	assert.True(t, IsNPC(villager, nil), "Житель - NPC по виду")
	assert.True(t, IsNPC(NewEntity(2, EntityTypeWanderingTrader), nil))

	zombie := NewEntity(3, EntityTypeZombie)
	assert.False(t, IsNPC(zombie, nil), "Без метаданных зомби не NPC")

	md := stubMetadata{zombie.UniqueID: {NPCMetadataKey: true}}
	assert.True(t, IsNPC(zombie, md), "Метка NPC должна делать сущность NPC")

	other := stubMetadata{zombie.UniqueID: {"guard": true}}
	assert.False(t, IsNPC(zombie, other), "Посторонняя метка не влияет")

	// Метка на неизвестном виде тоже учитывается
	unknown := &Entity{UniqueID: uuid.New(), Type: EntityTypeUnknown}
	assert.True(t, IsNPC(unknown, stubMetadata{unknown.UniqueID: {NPCMetadataKey: true}}))

	assert.False(t, IsNPC(nil, md))
}

func TestIsConsideredBuildingIfUsed(t *testing.T) {
	building := []EntityType{
		EntityTypeItemFrame, EntityTypeGlowItemFrame, EntityTypePainting, EntityTypeLeashKnot,
		EntityTypeArmorStand, EntityTypeEndCrystal, EntityTypeAllay,
		EntityTypeChestMinecart, EntityTypeHopperMinecart,
	}
	for _, et := range building {
		assert.True(t, IsConsideredBuildingIfUsed(NewEntity(1, et)), "Использование %s считается строительством", et)
	}

	notBuilding := []EntityType{
		EntityTypeMinecart, EntityTypeTNTMinecart, EntityTypeFurnaceMinecart,
		EntityTypeOakChestBoat, EntityTypeDonkey, EntityTypeVillager, EntityTypeCow, EntityTypePlayer,
	}
	for _, et := range notBuilding {
		assert.False(t, IsConsideredBuildingIfUsed(NewEntity(1, et)), "Использование %s не строительство", et)
	}

	assert.False(t, IsConsideredBuildingIfUsed(nil))
}

func TestIsPotionArrow(t *testing.T) {
	assert.True(t, IsPotionArrow(NewEntity(1, EntityTypeArrow)))
	assert.True(t, IsPotionArrow(NewEntity(2, EntityTypeSpectralArrow)))
	assert.False(t, IsPotionArrow(NewEntity(3, EntityTypeTrident)))
	assert.False(t, IsPotionArrow(NewEntity(4, EntityTypeSnowball)))
	assert.False(t, IsPotionArrow(nil))
}

func TestIsAoECloud(t *testing.T) {
	for _, et := range EntityTypes() {
		assert.Equal(t, et == EntityTypeAreaEffectCloud, IsAoECloud(et), "IsAoECloud(%s)", et)
	}
}

func TestIsPluginSpawning(t *testing.T) {
	for _, reason := range SpawnReasons() {
		expected := reason == SpawnReasonCustom || reason == SpawnReasonCommand
		assert.Equal(t, expected, IsPluginSpawning(reason), "IsPluginSpawning(%s)", reason)
	}
	assert.False(t, IsPluginSpawning(SpawnReason(250)), "Неизвестная причина не считается плагинной")
}

func TestUnknownVariant_SafeDefaults(t *testing.T) {
	for _, et := range []EntityType{EntityTypeUnknown, EntityType(9999)} {
		e := &Entity{ID: 1, Type: et, Tamed: true, Saddled: true}

		assert.False(t, IsTamed(e))
		assert.False(t, IsTNTBased(e))
		assert.False(t, IsRiddenOnUse(e))
		assert.False(t, IsHostile(e))
		assert.False(t, IsNonHostile(e))
		assert.False(t, IsAmbient(e))
		assert.False(t, IsNPC(e, nil))
		assert.False(t, IsNonPlayerCreature(e))
		assert.False(t, IsConsideredBuildingIfUsed(e))
		assert.False(t, IsPotionArrow(e))
		assert.False(t, IsFireball(et))
		assert.False(t, IsVehicle(et))
		assert.False(t, IsBoat(et))
		assert.False(t, IsMinecart(et))
		assert.False(t, IsAoECloud(et))
	}
}

func TestPredicates_Idempotent(t *testing.T) {
	for _, et := range EntityTypes() {
		e := NewEntity(1, et)
		e.Tamed = true
		e.Saddled = true

		assert.Equal(t, IsHostile(e), IsHostile(e))
		assert.Equal(t, IsNonHostile(e), IsNonHostile(e))
		assert.Equal(t, IsTamed(e), IsTamed(e))
		assert.Equal(t, IsRiddenOnUse(e), IsRiddenOnUse(e))
		assert.Equal(t, IsConsideredBuildingIfUsed(e), IsConsideredBuildingIfUsed(e))
		assert.Equal(t, ExplosionFlag(e), ExplosionFlag(e))
	}
}
