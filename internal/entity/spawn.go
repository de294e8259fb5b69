package entity

import "strings"

// SpawnReason - причина появления сущности в мире
type SpawnReason uint8

const (
	SpawnReasonDefault SpawnReason = iota
	SpawnReasonNatural
	SpawnReasonJockey
	SpawnReasonChunkGen
	SpawnReasonSpawner
	SpawnReasonTrialSpawner
	SpawnReasonEgg
	SpawnReasonSpawnerEgg
	SpawnReasonBucket
	SpawnReasonLightning
	SpawnReasonBuildSnowman
	SpawnReasonBuildIronGolem
	SpawnReasonBuildWither
	SpawnReasonVillageDefense
	SpawnReasonVillageInvasion
	SpawnReasonBreeding
	SpawnReasonSlimeSplit
	SpawnReasonReinforcements
	SpawnReasonNetherPortal
	SpawnReasonDispenseEgg
	SpawnReasonInfection
	SpawnReasonCured
	SpawnReasonOcelotBaby
	SpawnReasonSilverfishBlock
	SpawnReasonMount
	SpawnReasonTrap
	SpawnReasonEnderPearl
	SpawnReasonShoulderEntity
	SpawnReasonDrowned
	SpawnReasonSheared
	SpawnReasonExplosion
	SpawnReasonRaid
	SpawnReasonPatrol
	SpawnReasonBeehive
	SpawnReasonPiglinZombified
	SpawnReasonSpell
	SpawnReasonFrozen
	SpawnReasonMetamorphosis
	SpawnReasonDuplication
	SpawnReasonCommand
	SpawnReasonEnchantment
	SpawnReasonOminousItemSpawner
	SpawnReasonPotionEffect
	SpawnReasonReanimate
	SpawnReasonCustom

	spawnReasonCount
)

var spawnReasonNames = [spawnReasonCount]string{
	SpawnReasonDefault:            "DEFAULT",
	SpawnReasonNatural:            "NATURAL",
	SpawnReasonJockey:             "JOCKEY",
	SpawnReasonChunkGen:           "CHUNK_GEN",
	SpawnReasonSpawner:            "SPAWNER",
	SpawnReasonTrialSpawner:       "TRIAL_SPAWNER",
	SpawnReasonEgg:                "EGG",
	SpawnReasonSpawnerEgg:         "SPAWNER_EGG",
	SpawnReasonBucket:             "BUCKET",
	SpawnReasonLightning:          "LIGHTNING",
	SpawnReasonBuildSnowman:       "BUILD_SNOWMAN",
	SpawnReasonBuildIronGolem:     "BUILD_IRONGOLEM",
	SpawnReasonBuildWither:        "BUILD_WITHER",
	SpawnReasonVillageDefense:     "VILLAGE_DEFENSE",
	SpawnReasonVillageInvasion:    "VILLAGE_INVASION",
	SpawnReasonBreeding:           "BREEDING",
	SpawnReasonSlimeSplit:         "SLIME_SPLIT",
	SpawnReasonReinforcements:     "REINFORCEMENTS",
	SpawnReasonNetherPortal:       "NETHER_PORTAL",
	SpawnReasonDispenseEgg:        "DISPENSE_EGG",
	SpawnReasonInfection:          "INFECTION",
	SpawnReasonCured:              "CURED",
	SpawnReasonOcelotBaby:         "OCELOT_BABY",
	SpawnReasonSilverfishBlock:    "SILVERFISH_BLOCK",
	SpawnReasonMount:              "MOUNT",
	SpawnReasonTrap:               "TRAP",
	SpawnReasonEnderPearl:         "ENDER_PEARL",
	SpawnReasonShoulderEntity:     "SHOULDER_ENTITY",
	SpawnReasonDrowned:            "DROWNED",
	SpawnReasonSheared:            "SHEARED",
	SpawnReasonExplosion:          "EXPLOSION",
	SpawnReasonRaid:               "RAID",
	SpawnReasonPatrol:             "PATROL",
	SpawnReasonBeehive:            "BEEHIVE",
	SpawnReasonPiglinZombified:    "PIGLIN_ZOMBIFIED",
	SpawnReasonSpell:              "SPELL",
	SpawnReasonFrozen:             "FROZEN",
	SpawnReasonMetamorphosis:      "METAMORPHOSIS",
	SpawnReasonDuplication:        "DUPLICATION",
	SpawnReasonCommand:            "COMMAND",
	SpawnReasonEnchantment:        "ENCHANTMENT",
	SpawnReasonOminousItemSpawner: "OMINOUS_ITEM_SPAWNER",
	SpawnReasonPotionEffect:       "POTION_EFFECT",
	SpawnReasonReanimate:          "REANIMATE",
	SpawnReasonCustom:             "CUSTOM",
}

// String возвращает имя причины в верхнем регистре
func (r SpawnReason) String() string {
	if r >= spawnReasonCount {
		return "UNKNOWN"
	}
	return spawnReasonNames[r]
}

// SpawnReasons возвращает все известные причины появления
func SpawnReasons() []SpawnReason {
	reasons := make([]SpawnReason, 0, spawnReasonCount)
	for r := SpawnReason(0); r < spawnReasonCount; r++ {
		reasons = append(reasons, r)
	}
	return reasons
}

// ParseSpawnReason разбирает имя причины без учёта регистра
func ParseSpawnReason(name string) (SpawnReason, bool) {
	key := strings.ToUpper(strings.TrimSpace(name))
	for r := SpawnReason(0); r < spawnReasonCount; r++ {
		if spawnReasonNames[r] == key {
			return r, true
		}
	}
	return SpawnReasonDefault, false
}
