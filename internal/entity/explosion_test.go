package entity

import (
	"testing"

	"github.com/annel0/mmo-guard/internal/flags"
	"github.com/stretchr/testify/assert"
)

func TestExplosionFlag(t *testing.T) {
	testCases := []struct {
		entityType EntityType
		expected   flags.Flag
	}{
		{EntityTypeBreezeWindCharge, flags.BreezeWindCharge},
		{EntityTypeWindCharge, flags.WindChargeBurst},
		{EntityTypeFireworkRocket, flags.FireworkDamage},
		{EntityTypeFireball, flags.GhastFireball},
		{EntityTypeSmallFireball, flags.GhastFireball},
		{EntityTypeDragonFireball, flags.GhastFireball},
		{EntityTypeWitherSkull, flags.GhastFireball},
		{EntityTypeWither, flags.WitherDamage},
		{EntityTypeCreeper, flags.CreeperExplosion},
		{EntityTypeTNT, flags.TNT},
		{EntityTypeTNTMinecart, flags.TNT},
		{EntityTypeEnderDragon, flags.EnderDragonBlockDamage},
		{EntityTypeZombie, flags.OtherExplosion},
		{EntityTypeEndCrystal, flags.OtherExplosion},
		{EntityTypeMinecart, flags.OtherExplosion},
		{EntityTypeUnknown, flags.OtherExplosion},
		{EntityType(4242), flags.OtherExplosion},
	}

	for _, tc := range testCases {
		got := ExplosionFlag(&Entity{ID: 1, Type: tc.entityType})
		assert.Equal(t, tc.expected, got, "Неверный флаг взрыва для %s", tc.entityType)
	}
}

func TestExplosionFlag_Nil(t *testing.T) {
	assert.Equal(t, flags.OtherExplosion, ExplosionFlag(nil), "Для nil ожидается флаг по умолчанию")
}

func TestExplosionFlag_CreeperIsNotTNT(t *testing.T) {
	creeper := NewEntity(1, EntityTypeCreeper)
	assert.False(t, IsTNTBased(creeper))
	assert.Equal(t, flags.CreeperExplosion, ExplosionFlag(creeper))
}

func TestExplosionFlag_WindChargesBeforeFireball(t *testing.T) {
	// Заряды ветра тоже огненные шары, но правило для них стоит раньше
	for _, et := range []EntityType{EntityTypeWindCharge, EntityTypeBreezeWindCharge} {
		assert.True(t, et.Has(CapFireball), "%s должен обладать CapFireball", et)
		assert.NotEqual(t, flags.GhastFireball, ExplosionFlag(NewEntity(1, et)))
	}
}

func TestExplosionFlag_EveryRuleReachable(t *testing.T) {
	reached := make(map[flags.Flag]bool)
	for _, et := range EntityTypes() {
		reached[ExplosionFlag(NewEntity(1, et))] = true
	}

	for _, f := range flags.ExplosionFlags() {
		assert.True(t, reached[f], "Флаг %s недостижим ни для одного вида", f)
	}
}
