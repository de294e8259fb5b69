package entity

import "github.com/annel0/mmo-guard/internal/flags"

// explosionRule сопоставляет возможность сущности с флагом взрыва
type explosionRule struct {
	capability Capability
	flag       flags.Flag
}

// explosionRules проверяются по порядку, побеждает первое совпадение.
// Заряд ветра бриза стоит раньше обычного заряда, оба - раньше огненного
// шара, так как они тоже обладают CapFireball.
var explosionRules = []explosionRule{
	{CapBreezeWindCharge, flags.BreezeWindCharge},
	{CapWindCharge, flags.WindChargeBurst},
	{CapFirework, flags.FireworkDamage},
	{CapFireball, flags.GhastFireball},
	{CapWither, flags.WitherDamage},
	{CapCreeper, flags.CreeperExplosion},
	{CapPrimedTNT, flags.TNT},
	{CapExplosiveMinecart, flags.TNT},
	{CapEnderDragon, flags.EnderDragonBlockDamage},
}

// ExplosionFlag возвращает флаг, которым регулируется взрыв, вызванный
// сущностью. Для nil и видов без правила - flags.OtherExplosion.
func ExplosionFlag(e *Entity) flags.Flag {
	caps := e.Capabilities()
	for _, rule := range explosionRules {
		if caps.Has(rule.capability) {
			return rule.flag
		}
	}
	return flags.OtherExplosion
}
