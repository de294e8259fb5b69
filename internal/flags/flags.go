package flags

import "strings"

// Flag - идентификатор флага разрешений региона.
// Default - состояние флага, когда в регионе он не задан.
type Flag struct {
	Name    string
	Default bool
}

// String возвращает имя флага
func (f Flag) String() string {
	return f.Name
}

// Флаги, управляющие взрывами
var (
	BreezeWindCharge       = Flag{Name: "breeze-charge-explosion", Default: true}
	WindChargeBurst        = Flag{Name: "wind-charge-burst", Default: false}
	FireworkDamage         = Flag{Name: "firework-damage", Default: false}
	GhastFireball          = Flag{Name: "ghast-fireball", Default: true}
	WitherDamage           = Flag{Name: "wither-damage", Default: true}
	CreeperExplosion       = Flag{Name: "creeper-explosion", Default: true}
	TNT                    = Flag{Name: "tnt", Default: false}
	EnderDragonBlockDamage = Flag{Name: "enderdragon-block-damage", Default: true}
	OtherExplosion         = Flag{Name: "other-explosion", Default: true}
)

// ExplosionFlags возвращает все флаги взрывов
func ExplosionFlags() []Flag {
	return []Flag{
		BreezeWindCharge,
		WindChargeBurst,
		FireworkDamage,
		GhastFireball,
		WitherDamage,
		CreeperExplosion,
		TNT,
		EnderDragonBlockDamage,
		OtherExplosion,
	}
}

// Lookup ищет флаг взрыва по имени без учёта регистра
func Lookup(name string) (Flag, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, f := range ExplosionFlags() {
		if f.Name == key {
			return f, true
		}
	}
	return Flag{}, false
}
