package entity

// Capability описывает одну возможность сущности (приручаемость, снаряд,
// транспорт и т.д.). Набор возможностей определяется видом сущности и не
// меняется за время её жизни.
type Capability uint64

const (
	CapTameable Capability = 1 << iota
	CapProjectile
	CapSteerable
	CapVehicle
	CapHanging
	CapInventoryHolder
	CapLiving
	CapPlayer
	CapCreature
	CapMonster
	CapSlime
	CapFlying
	CapEnderDragon
	CapShulker
	CapAmbient
	CapNPC
	CapMinecart
	CapArmorStand
	CapEnderCrystal
	CapAllay
	CapFireball
	CapWindCharge
	CapBreezeWindCharge
	CapFirework
	CapWither
	CapCreeper
	CapPrimedTNT
	CapExplosiveMinecart
	CapArrow
	CapSpectralArrow
)

// Has проверяет, что все биты other присутствуют в наборе
func (c Capability) Has(other Capability) bool {
	return other != 0 && c&other == other
}

// Any проверяет, что хотя бы один бит other присутствует в наборе
func (c Capability) Any(other Capability) bool {
	return c&other != 0
}

// Типовые наборы возможностей
const (
	capsCreature   = CapLiving | CapCreature
	capsMonster    = capsCreature | CapMonster
	capsHorse      = capsCreature | CapTameable | CapVehicle | CapInventoryHolder
	capsBoat       = CapVehicle
	capsChestBoat  = CapVehicle | CapInventoryHolder
	capsMinecart   = CapVehicle | CapMinecart
	capsFireball   = CapProjectile | CapFireball
	capsVillager   = capsCreature | CapNPC | CapInventoryHolder
	capsSteerable  = capsCreature | CapSteerable | CapVehicle
	capsTameable   = capsCreature | CapTameable
	capsFlying     = CapLiving | CapFlying
	capsSlime      = CapLiving | CapSlime
	capsHanging    = CapHanging
	capsProjectile = CapProjectile
)

// capabilities - таблица возможностей по видам. Виды, отсутствующие в
// таблице (включая Unknown), не имеют ни одной возможности.
var capabilities = [entityTypeCount]Capability{
	EntityTypePlayer: CapLiving | CapPlayer | CapInventoryHolder,

	EntityTypeOakBoat:           capsBoat,
	EntityTypeSpruceBoat:        capsBoat,
	EntityTypeBirchBoat:         capsBoat,
	EntityTypeJungleBoat:        capsBoat,
	EntityTypeAcaciaBoat:        capsBoat,
	EntityTypeCherryBoat:        capsBoat,
	EntityTypeDarkOakBoat:       capsBoat,
	EntityTypePaleOakBoat:       capsBoat,
	EntityTypeMangroveBoat:      capsBoat,
	EntityTypeBambooRaft:        capsBoat,
	EntityTypeOakChestBoat:      capsChestBoat,
	EntityTypeSpruceChestBoat:   capsChestBoat,
	EntityTypeBirchChestBoat:    capsChestBoat,
	EntityTypeJungleChestBoat:   capsChestBoat,
	EntityTypeAcaciaChestBoat:   capsChestBoat,
	EntityTypeCherryChestBoat:   capsChestBoat,
	EntityTypeDarkOakChestBoat:  capsChestBoat,
	EntityTypePaleOakChestBoat:  capsChestBoat,
	EntityTypeMangroveChestBoat: capsChestBoat,
	EntityTypeBambooChestRaft:   capsChestBoat,

	EntityTypeMinecart:             capsMinecart,
	EntityTypeChestMinecart:        capsMinecart | CapInventoryHolder,
	EntityTypeCommandBlockMinecart: capsMinecart,
	EntityTypeFurnaceMinecart:      capsMinecart,
	EntityTypeHopperMinecart:       capsMinecart | CapInventoryHolder,
	EntityTypeSpawnerMinecart:      capsMinecart,
	EntityTypeTNTMinecart:          capsMinecart | CapExplosiveMinecart,

	EntityTypeArrow:            capsProjectile | CapArrow,
	EntityTypeSpectralArrow:    capsProjectile | CapSpectralArrow,
	EntityTypeTrident:          capsProjectile,
	EntityTypeSnowball:         capsProjectile,
	EntityTypeEgg:              capsProjectile,
	EntityTypeEnderPearl:       capsProjectile,
	EntityTypePotion:           capsProjectile,
	EntityTypeExperienceBottle: capsProjectile,
	EntityTypeFireball:         capsFireball,
	EntityTypeSmallFireball:    capsFireball,
	EntityTypeDragonFireball:   capsFireball,
	EntityTypeWitherSkull:      capsFireball,
	EntityTypeWindCharge:       capsFireball | CapWindCharge,
	EntityTypeBreezeWindCharge: capsFireball | CapBreezeWindCharge,
	EntityTypeFireworkRocket:   capsProjectile | CapFirework,
	EntityTypeLlamaSpit:        capsProjectile,
	EntityTypeShulkerBullet:    capsProjectile,
	EntityTypeFishingBobber:    capsProjectile,

	EntityTypeItemFrame:     capsHanging,
	EntityTypeGlowItemFrame: capsHanging,
	EntityTypePainting:      capsHanging,
	EntityTypeLeashKnot:     capsHanging,
	EntityTypeArmorStand:    CapLiving | CapArmorStand,
	EntityTypeEndCrystal:    CapEnderCrystal,

	EntityTypeTNT: CapPrimedTNT,

	EntityTypeZombie:          capsMonster,
	EntityTypeHusk:            capsMonster,
	EntityTypeDrowned:         capsMonster,
	EntityTypeZombieVillager:  capsMonster,
	EntityTypeZombifiedPiglin: capsMonster,
	EntityTypeGiant:           capsMonster,
	EntityTypeSkeleton:        capsMonster,
	EntityTypeStray:           capsMonster,
	EntityTypeWitherSkeleton:  capsMonster,
	EntityTypeBogged:          capsMonster,
	EntityTypeCreeper:         capsMonster | CapCreeper,
	EntityTypeSpider:          capsMonster,
	EntityTypeCaveSpider:      capsMonster,
	EntityTypeEnderman:        capsMonster,
	EntityTypeEndermite:       capsMonster,
	EntityTypeSilverfish:      capsMonster,
	EntityTypeBlaze:           capsMonster,
	EntityTypeWitch:           capsMonster,
	EntityTypeGuardian:        capsMonster,
	EntityTypeElderGuardian:   capsMonster,
	EntityTypeVex:             capsMonster,
	EntityTypeVindicator:      capsMonster,
	EntityTypeEvoker:          capsMonster,
	EntityTypeIllusioner:      capsMonster,
	EntityTypePillager:        capsMonster | CapInventoryHolder,
	EntityTypeRavager:         capsMonster,
	EntityTypePiglin:          capsMonster | CapInventoryHolder,
	EntityTypePiglinBrute:     capsMonster,
	EntityTypeZoglin:          capsMonster,
	EntityTypeWarden:          capsMonster,
	EntityTypeBreeze:          capsMonster,
	EntityTypeCreaking:        capsMonster,
	EntityTypeWither:          capsMonster | CapWither,

	EntityTypeSlime:       capsSlime,
	EntityTypeMagmaCube:   capsSlime,
	EntityTypeGhast:       capsFlying,
	EntityTypePhantom:     capsFlying,
	EntityTypeEnderDragon: CapLiving | CapEnderDragon,
	EntityTypeShulker:     capsCreature | CapShulker,

	EntityTypePig:             capsSteerable,
	EntityTypeCow:             capsCreature,
	EntityTypeMooshroom:       capsCreature,
	EntityTypeSheep:           capsCreature,
	EntityTypeChicken:         capsCreature,
	EntityTypeRabbit:          capsCreature,
	EntityTypeWolf:            capsTameable,
	EntityTypeCat:             capsTameable,
	EntityTypeOcelot:          capsCreature,
	EntityTypeParrot:          capsTameable,
	EntityTypeFox:             capsCreature,
	EntityTypePanda:           capsCreature,
	EntityTypePolarBear:       capsCreature,
	EntityTypeBee:             capsCreature,
	EntityTypeTurtle:          capsCreature,
	EntityTypeGoat:            capsCreature,
	EntityTypeFrog:            capsCreature,
	EntityTypeTadpole:         capsCreature,
	EntityTypeAxolotl:         capsCreature,
	EntityTypeSniffer:         capsCreature,
	EntityTypeArmadillo:       capsCreature,
	EntityTypeHoglin:          capsCreature,
	EntityTypeStrider:         capsSteerable,
	EntityTypeHorse:           capsHorse,
	EntityTypeDonkey:          capsHorse,
	EntityTypeMule:            capsHorse,
	EntityTypeSkeletonHorse:   capsHorse,
	EntityTypeZombieHorse:     capsHorse,
	EntityTypeLlama:           capsHorse,
	EntityTypeTraderLlama:     capsHorse,
	EntityTypeCamel:           capsHorse,
	EntityTypeSquid:           capsCreature,
	EntityTypeGlowSquid:       capsCreature,
	EntityTypeCod:             capsCreature,
	EntityTypeSalmon:          capsCreature,
	EntityTypePufferfish:      capsCreature,
	EntityTypeTropicalFish:    capsCreature,
	EntityTypeDolphin:         capsCreature,
	EntityTypeIronGolem:       capsCreature,
	EntityTypeSnowGolem:       capsCreature,
	EntityTypeVillager:        capsVillager,
	EntityTypeWanderingTrader: capsVillager,
	EntityTypeAllay:           capsCreature | CapAllay | CapInventoryHolder,
	EntityTypeBat:             CapLiving | CapAmbient,
}

// Capabilities возвращает набор возможностей вида.
// Для неизвестных видов возвращается пустой набор.
func (t EntityType) Capabilities() Capability {
	if t >= entityTypeCount {
		return 0
	}
	return capabilities[t]
}

// Has проверяет наличие возможности у вида
func (t EntityType) Has(c Capability) bool {
	return t.Capabilities().Has(c)
}
