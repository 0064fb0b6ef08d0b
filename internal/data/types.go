package data

// UnitKind — категория юнита: войско, осадная машина или заклинание.
// Determines which capacity pool and which production gates apply.
type UnitKind int32

const (
	KindTroop UnitKind = iota
	KindSiege
	KindSpell
)

// String returns the display name of the kind.
func (k UnitKind) String() string {
	switch k {
	case KindTroop:
		return "troop"
	case KindSiege:
		return "siege"
	case KindSpell:
		return "spell"
	}
	return "unknown"
}

// ProductionBuilding — здание, в котором производится юнит.
type ProductionBuilding int32

const (
	BuildingBarrack ProductionBuilding = iota
	BuildingDarkBarrack
	BuildingSpellFactory
	BuildingDarkSpellFactory
	BuildingWorkshop
)

// String returns the display name of the building.
func (b ProductionBuilding) String() string {
	switch b {
	case BuildingBarrack:
		return "barrack"
	case BuildingDarkBarrack:
		return "dark barrack"
	case BuildingSpellFactory:
		return "spell factory"
	case BuildingDarkSpellFactory:
		return "dark spell factory"
	case BuildingWorkshop:
		return "workshop"
	}
	return "unknown"
}

// Hero — один из пяти героев. Identified by display name because the save
// payload and the reference seed both key heroes by name.
type Hero string

const (
	HeroBarbarianKing Hero = "Barbarian King"
	HeroArcherQueen   Hero = "Archer Queen"
	HeroGrandWarden   Hero = "Grand Warden"
	HeroRoyalChampion Hero = "Royal Champion"
	HeroMinionPrince  Hero = "Minion Prince"
)

// Heroes lists all recognized heroes in roster order.
var Heroes = []Hero{
	HeroBarbarianKing,
	HeroArcherQueen,
	HeroGrandWarden,
	HeroRoyalChampion,
	HeroMinionPrince,
}

// TownHallTier — полный набор разблокировок для одного уровня ратуши.
// Nullable building maximums (nil = building not yet available at this tier).
// Static reference data, never mutated after load.
type TownHallTier struct {
	Level int32

	MaxBarrack          *int32
	MaxDarkBarrack      *int32
	MaxLaboratory       *int32
	MaxSpellFactory     *int32
	MaxDarkSpellFactory *int32
	MaxWorkshop         *int32
	MaxBlacksmith       *int32
	MaxPetHouse         *int32
	MaxClanCastle       *int32

	MaxBarbarianKing *int32
	MaxArcherQueen   *int32
	MaxGrandWarden   *int32
	MaxRoyalChampion *int32
	MaxMinionPrince  *int32

	// Army camp capacities.
	TroopCapacity int32
	SpellCapacity int32
	SiegeCapacity int32

	// Clan castle capacities and the donation-specific laboratory cap.
	CcTroopCapacity int32
	CcSpellCapacity int32
	CcSiegeCapacity int32
	CcLaboratoryCap int32
}

// UnitLevel — требования для одного уровня юнита.
// BuildingLevel задаёт порог уровня производящего здания (barrack /
// dark barrack / spell factory / dark spell factory / workshop в зависимости
// от ProductionBuilding юнита). LaboratoryLevel nil означает «без требования
// лаборатории», что отличается от 0.
type UnitLevel struct {
	Level           int32
	BuildingLevel   *int32
	LaboratoryLevel *int32
}

// UnitDefinition — статическое описание юнита (troop / siege / spell).
// Levels отсортированы по возрастанию, без дубликатов (validated at load).
type UnitDefinition struct {
	ID      int32
	Name    string
	Kind    UnitKind
	IsSuper bool

	Flying     bool
	Jumping    bool
	TargetsAir bool

	Production   ProductionBuilding
	HousingSpace int32
	TrainingTime int32 // seconds per unit

	// RegularCounterpart — имя обычного юнита для super-варианта
	// (не всегда простое отбрасывание префикса "Super").
	// Empty for non-super units.
	RegularCounterpart string

	Levels []UnitLevel
}

// EquipmentLevel — требование кузницы для одного уровня снаряжения.
type EquipmentLevel struct {
	Level           int32
	BlacksmithLevel *int32
}

// EquipmentDefinition — снаряжение героя.
type EquipmentDefinition struct {
	ID     int32
	Name   string
	Hero   Hero
	Epic   bool
	Levels []EquipmentLevel
}

// PetLevel — требование pet house для одного уровня питомца.
type PetLevel struct {
	Level         int32
	PetHouseLevel *int32
}

// PetDefinition — питомец героя.
type PetDefinition struct {
	ID     int32
	Name   string
	Levels []PetLevel
}
