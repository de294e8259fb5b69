package entity

import (
	"strings"
)

// EntityType представляет вид сущности без привязки к живому экземпляру.
// Перечисление закрытое: при появлении новых видов в игре их нужно добавить
// сюда и в таблицу возможностей (capabilities.go).
type EntityType uint16

const (
	EntityTypeUnknown EntityType = iota

	// Игрок
	EntityTypePlayer

	// Лодки и плоты
	EntityTypeOakBoat
	EntityTypeSpruceBoat
	EntityTypeBirchBoat
	EntityTypeJungleBoat
	EntityTypeAcaciaBoat
	EntityTypeCherryBoat
	EntityTypeDarkOakBoat
	EntityTypePaleOakBoat
	EntityTypeMangroveBoat
	EntityTypeBambooRaft
	EntityTypeOakChestBoat
	EntityTypeSpruceChestBoat
	EntityTypeBirchChestBoat
	EntityTypeJungleChestBoat
	EntityTypeAcaciaChestBoat
	EntityTypeCherryChestBoat
	EntityTypeDarkOakChestBoat
	EntityTypePaleOakChestBoat
	EntityTypeMangroveChestBoat
	EntityTypeBambooChestRaft

	// Вагонетки
	EntityTypeMinecart
	EntityTypeChestMinecart
	EntityTypeCommandBlockMinecart
	EntityTypeFurnaceMinecart
	EntityTypeHopperMinecart
	EntityTypeSpawnerMinecart
	EntityTypeTNTMinecart

	// Снаряды
	EntityTypeArrow
	EntityTypeSpectralArrow
	EntityTypeTrident
	EntityTypeSnowball
	EntityTypeEgg
	EntityTypeEnderPearl
	EntityTypePotion
	EntityTypeExperienceBottle
	EntityTypeFireball
	EntityTypeSmallFireball
	EntityTypeDragonFireball
	EntityTypeWitherSkull
	EntityTypeWindCharge
	EntityTypeBreezeWindCharge
	EntityTypeFireworkRocket
	EntityTypeLlamaSpit
	EntityTypeShulkerBullet
	EntityTypeFishingBobber

	// Подвесные объекты и декорации
	EntityTypeItemFrame
	EntityTypeGlowItemFrame
	EntityTypePainting
	EntityTypeLeashKnot
	EntityTypeArmorStand
	EntityTypeEndCrystal

	// Прочие неживые сущности
	EntityTypeItem
	EntityTypeExperienceOrb
	EntityTypeAreaEffectCloud
	EntityTypeTNT
	EntityTypeFallingBlock
	EntityTypeEyeOfEnder
	EntityTypeEvokerFangs
	EntityTypeLightningBolt
	EntityTypeMarker
	EntityTypeInteraction
	EntityTypeBlockDisplay
	EntityTypeItemDisplay
	EntityTypeTextDisplay
	EntityTypeOminousItemSpawner

	// Враждебные монстры
	EntityTypeZombie
	EntityTypeHusk
	EntityTypeDrowned
	EntityTypeZombieVillager
	EntityTypeZombifiedPiglin
	EntityTypeGiant
	EntityTypeSkeleton
	EntityTypeStray
	EntityTypeWitherSkeleton
	EntityTypeBogged
	EntityTypeCreeper
	EntityTypeSpider
	EntityTypeCaveSpider
	EntityTypeEnderman
	EntityTypeEndermite
	EntityTypeSilverfish
	EntityTypeBlaze
	EntityTypeWitch
	EntityTypeGuardian
	EntityTypeElderGuardian
	EntityTypeVex
	EntityTypeVindicator
	EntityTypeEvoker
	EntityTypeIllusioner
	EntityTypePillager
	EntityTypeRavager
	EntityTypePiglin
	EntityTypePiglinBrute
	EntityTypeZoglin
	EntityTypeWarden
	EntityTypeBreeze
	EntityTypeCreaking
	EntityTypeWither

	// Враждебные вне иерархии монстров
	EntityTypeSlime
	EntityTypeMagmaCube
	EntityTypeGhast
	EntityTypePhantom
	EntityTypeEnderDragon
	EntityTypeShulker

	// Животные и прочие существа
	EntityTypePig
	EntityTypeCow
	EntityTypeMooshroom
	EntityTypeSheep
	EntityTypeChicken
	EntityTypeRabbit
	EntityTypeWolf
	EntityTypeCat
	EntityTypeOcelot
	EntityTypeParrot
	EntityTypeFox
	EntityTypePanda
	EntityTypePolarBear
	EntityTypeBee
	EntityTypeTurtle
	EntityTypeGoat
	EntityTypeFrog
	EntityTypeTadpole
	EntityTypeAxolotl
	EntityTypeSniffer
	EntityTypeArmadillo
	EntityTypeHoglin
	EntityTypeStrider
	EntityTypeHorse
	EntityTypeDonkey
	EntityTypeMule
	EntityTypeSkeletonHorse
	EntityTypeZombieHorse
	EntityTypeLlama
	EntityTypeTraderLlama
	EntityTypeCamel
	EntityTypeSquid
	EntityTypeGlowSquid
	EntityTypeCod
	EntityTypeSalmon
	EntityTypePufferfish
	EntityTypeTropicalFish
	EntityTypeDolphin
	EntityTypeIronGolem
	EntityTypeSnowGolem
	EntityTypeVillager
	EntityTypeWanderingTrader
	EntityTypeAllay
	EntityTypeBat

	entityTypeCount
)

// entityTypeNames хранит ключи видов в том виде, в каком их пишет игра
var entityTypeNames = [entityTypeCount]string{
	EntityTypeUnknown: "unknown",
	EntityTypePlayer:  "player",

	EntityTypeOakBoat:           "oak_boat",
	EntityTypeSpruceBoat:        "spruce_boat",
	EntityTypeBirchBoat:         "birch_boat",
	EntityTypeJungleBoat:        "jungle_boat",
	EntityTypeAcaciaBoat:        "acacia_boat",
	EntityTypeCherryBoat:        "cherry_boat",
	EntityTypeDarkOakBoat:       "dark_oak_boat",
	EntityTypePaleOakBoat:       "pale_oak_boat",
	EntityTypeMangroveBoat:      "mangrove_boat",
	EntityTypeBambooRaft:        "bamboo_raft",
	EntityTypeOakChestBoat:      "oak_chest_boat",
	EntityTypeSpruceChestBoat:   "spruce_chest_boat",
	EntityTypeBirchChestBoat:    "birch_chest_boat",
	EntityTypeJungleChestBoat:   "jungle_chest_boat",
	EntityTypeAcaciaChestBoat:   "acacia_chest_boat",
	EntityTypeCherryChestBoat:   "cherry_chest_boat",
	EntityTypeDarkOakChestBoat:  "dark_oak_chest_boat",
	EntityTypePaleOakChestBoat:  "pale_oak_chest_boat",
	EntityTypeMangroveChestBoat: "mangrove_chest_boat",
	EntityTypeBambooChestRaft:   "bamboo_chest_raft",

	EntityTypeMinecart:             "minecart",
	EntityTypeChestMinecart:        "chest_minecart",
	EntityTypeCommandBlockMinecart: "command_block_minecart",
	EntityTypeFurnaceMinecart:      "furnace_minecart",
	EntityTypeHopperMinecart:       "hopper_minecart",
	EntityTypeSpawnerMinecart:      "spawner_minecart",
	EntityTypeTNTMinecart:          "tnt_minecart",

	EntityTypeArrow:            "arrow",
	EntityTypeSpectralArrow:    "spectral_arrow",
	EntityTypeTrident:          "trident",
	EntityTypeSnowball:         "snowball",
	EntityTypeEgg:              "egg",
	EntityTypeEnderPearl:       "ender_pearl",
	EntityTypePotion:           "potion",
	EntityTypeExperienceBottle: "experience_bottle",
	EntityTypeFireball:         "fireball",
	EntityTypeSmallFireball:    "small_fireball",
	EntityTypeDragonFireball:   "dragon_fireball",
	EntityTypeWitherSkull:      "wither_skull",
	EntityTypeWindCharge:       "wind_charge",
	EntityTypeBreezeWindCharge: "breeze_wind_charge",
	EntityTypeFireworkRocket:   "firework_rocket",
	EntityTypeLlamaSpit:        "llama_spit",
	EntityTypeShulkerBullet:    "shulker_bullet",
	EntityTypeFishingBobber:    "fishing_bobber",

	EntityTypeItemFrame:     "item_frame",
	EntityTypeGlowItemFrame: "glow_item_frame",
	EntityTypePainting:      "painting",
	EntityTypeLeashKnot:     "leash_knot",
	EntityTypeArmorStand:    "armor_stand",
	EntityTypeEndCrystal:    "end_crystal",

	EntityTypeItem:               "item",
	EntityTypeExperienceOrb:      "experience_orb",
	EntityTypeAreaEffectCloud:    "area_effect_cloud",
	EntityTypeTNT:                "tnt",
	EntityTypeFallingBlock:       "falling_block",
	EntityTypeEyeOfEnder:         "eye_of_ender",
	EntityTypeEvokerFangs:        "evoker_fangs",
	EntityTypeLightningBolt:      "lightning_bolt",
	EntityTypeMarker:             "marker",
	EntityTypeInteraction:        "interaction",
	EntityTypeBlockDisplay:       "block_display",
	EntityTypeItemDisplay:        "item_display",
	EntityTypeTextDisplay:        "text_display",
	EntityTypeOminousItemSpawner: "ominous_item_spawner",

	EntityTypeZombie:          "zombie",
	EntityTypeHusk:            "husk",
	EntityTypeDrowned:         "drowned",
	EntityTypeZombieVillager:  "zombie_villager",
	EntityTypeZombifiedPiglin: "zombified_piglin",
	EntityTypeGiant:           "giant",
	EntityTypeSkeleton:        "skeleton",
	EntityTypeStray:           "stray",
	EntityTypeWitherSkeleton:  "wither_skeleton",
	EntityTypeBogged:          "bogged",
	EntityTypeCreeper:         "creeper",
	EntityTypeSpider:          "spider",
	EntityTypeCaveSpider:      "cave_spider",
	EntityTypeEnderman:        "enderman",
	EntityTypeEndermite:       "endermite",
	EntityTypeSilverfish:      "silverfish",
	EntityTypeBlaze:           "blaze",
	EntityTypeWitch:           "witch",
	EntityTypeGuardian:        "guardian",
	EntityTypeElderGuardian:   "elder_guardian",
	EntityTypeVex:             "vex",
	EntityTypeVindicator:      "vindicator",
	EntityTypeEvoker:          "evoker",
	EntityTypeIllusioner:      "illusioner",
	EntityTypePillager:        "pillager",
	EntityTypeRavager:         "ravager",
	EntityTypePiglin:          "piglin",
	EntityTypePiglinBrute:     "piglin_brute",
	EntityTypeZoglin:          "zoglin",
	EntityTypeWarden:          "warden",
	EntityTypeBreeze:          "breeze",
	EntityTypeCreaking:        "creaking",
	EntityTypeWither:          "wither",

	EntityTypeSlime:       "slime",
	EntityTypeMagmaCube:   "magma_cube",
	EntityTypeGhast:       "ghast",
	EntityTypePhantom:     "phantom",
	EntityTypeEnderDragon: "ender_dragon",
	EntityTypeShulker:     "shulker",

	EntityTypePig:             "pig",
	EntityTypeCow:             "cow",
	EntityTypeMooshroom:       "mooshroom",
	EntityTypeSheep:           "sheep",
	EntityTypeChicken:         "chicken",
	EntityTypeRabbit:          "rabbit",
	EntityTypeWolf:            "wolf",
	EntityTypeCat:             "cat",
	EntityTypeOcelot:          "ocelot",
	EntityTypeParrot:          "parrot",
	EntityTypeFox:             "fox",
	EntityTypePanda:           "panda",
	EntityTypePolarBear:       "polar_bear",
	EntityTypeBee:             "bee",
	EntityTypeTurtle:          "turtle",
	EntityTypeGoat:            "goat",
	EntityTypeFrog:            "frog",
	EntityTypeTadpole:         "tadpole",
	EntityTypeAxolotl:         "axolotl",
	EntityTypeSniffer:         "sniffer",
	EntityTypeArmadillo:       "armadillo",
	EntityTypeHoglin:          "hoglin",
	EntityTypeStrider:         "strider",
	EntityTypeHorse:           "horse",
	EntityTypeDonkey:          "donkey",
	EntityTypeMule:            "mule",
	EntityTypeSkeletonHorse:   "skeleton_horse",
	EntityTypeZombieHorse:     "zombie_horse",
	EntityTypeLlama:           "llama",
	EntityTypeTraderLlama:     "trader_llama",
	EntityTypeCamel:           "camel",
	EntityTypeSquid:           "squid",
	EntityTypeGlowSquid:       "glow_squid",
	EntityTypeCod:             "cod",
	EntityTypeSalmon:          "salmon",
	EntityTypePufferfish:      "pufferfish",
	EntityTypeTropicalFish:    "tropical_fish",
	EntityTypeDolphin:         "dolphin",
	EntityTypeIronGolem:       "iron_golem",
	EntityTypeSnowGolem:       "snow_golem",
	EntityTypeVillager:        "villager",
	EntityTypeWanderingTrader: "wandering_trader",
	EntityTypeAllay:           "allay",
	EntityTypeBat:             "bat",
}

// String возвращает игровой ключ вида ("oak_boat")
func (t EntityType) String() string {
	if t >= entityTypeCount {
		return "unknown"
	}
	return entityTypeNames[t]
}

// Known сообщает, входит ли вид в текущее перечисление
func (t EntityType) Known() bool {
	return t > EntityTypeUnknown && t < entityTypeCount
}

// EntityTypes возвращает все известные виды в порядке объявления (без Unknown)
func EntityTypes() []EntityType {
	types := make([]EntityType, 0, entityTypeCount-1)
	for t := EntityTypeUnknown + 1; t < entityTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// ParseEntityType разбирает ключ вида. Принимает "oak_boat", "OAK_BOAT"
// и "minecraft:oak_boat". Для неизвестных ключей возвращает Unknown и false.
func ParseEntityType(name string) (EntityType, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "minecraft:")
	if key == "" {
		return EntityTypeUnknown, false
	}

	for t := EntityTypeUnknown + 1; t < entityTypeCount; t++ {
		if entityTypeNames[t] == key {
			return t, true
		}
	}
	return EntityTypeUnknown, false
}
