package army

import (
	"fmt"

	"github.com/udisondev/armygo/internal/data"
)

const (
	// superTroopMinTownHall — ниже этой ратуши super-варианты недоступны.
	superTroopMinTownHall = 11
	// siegeMinTownHall — осадные машины категорически недоступны ниже.
	siegeMinTownHall = 12
	// spellMinTownHall — заклинания появляются вместе с фабрикой.
	spellMinTownHall = 5

	// battleDrillName / battleDrillMinCcLevel — единственная осадная машина
	// с особым порогом доставки через клановый замок.
	battleDrillName       = "Battle Drill"
	battleDrillMinCcLevel = 9
)

// resolutionMode различает обычное разблокирование и разблокирование для
// донатов кланового замка (свой lab cap, свои терминальные проверки).
type resolutionMode int32

const (
	modeRegular resolutionMode = iota
	modeClanCastle
)

// ResolveUnitLevel возвращает максимальный открытый уровень юнита на tier,
// либо -1 если юнит недоступен вовсе.
//
// Итерация идёт по требованиям уровней по возрастанию: как только требование
// уровня N недостижимо, недостижимы и все уровни выше N, поэтому возвращается
// лучший уровень, найденный до первого сработавшего gate.
func ResolveUnitLevel(snap *data.Snapshot, u *data.UnitDefinition, tier *data.TownHallTier) int32 {
	return resolveUnit(snap, u, tier, modeRegular)
}

// ResolveCcUnitLevel возвращает максимальный уровень юнита, который можно
// задонатить в клановый замок на tier. Донаты ограничены собственным
// laboratory cap замка, а не полной лабораторией игрока.
func ResolveCcUnitLevel(snap *data.Snapshot, u *data.UnitDefinition, tier *data.TownHallTier) int32 {
	return resolveUnit(snap, u, tier, modeClanCastle)
}

func resolveUnit(snap *data.Snapshot, u *data.UnitDefinition, tier *data.TownHallTier, mode resolutionMode) int32 {
	if mode == modeClanCastle {
		if tier.MaxClanCastle == nil {
			return -1
		}
		if u.Name == battleDrillName && *tier.MaxClanCastle < battleDrillMinCcLevel {
			return -1
		}
	}

	// Sieges are categorically unavailable below town hall 12 or without a
	// workshop: exactly -1, never a running best. This is deliberately NOT
	// symmetrical with the spell gate below, which returns the running best.
	if mode == modeRegular && u.Kind == data.KindSiege {
		if tier.Level < siegeMinTownHall || tier.MaxWorkshop == nil {
			return -1
		}
	}

	labCap := orZero(tier.MaxLaboratory)
	if mode == modeClanCastle {
		labCap = tier.CcLaboratoryCap
	}

	best := int32(-1)
	for i := range u.Levels {
		lv := &u.Levels[i]

		// Production gates apply only to the player's own army; donated
		// units are produced by the donor.
		if mode == modeRegular {
			if u.Kind == data.KindSpell && tier.Level < spellMinTownHall {
				return best
			}
			if !buildingReached(tier, u.Production, lv.BuildingLevel) {
				return best
			}
		}

		// Laboratory gate. Level 1 is the baseline unlock and is exempt
		// even if the seed carries a lab threshold for it.
		if lv.Level != 1 && lv.LaboratoryLevel != nil && *lv.LaboratoryLevel > labCap {
			return best
		}

		if u.IsSuper {
			if tier.Level < superTroopMinTownHall {
				return best
			}
			reg := snap.RegularCounterpart(u.ID)
			if reg == nil {
				// Snapshot construction guarantees every super troop has
				// a resolved counterpart.
				panic(fmt.Sprintf("super troop %q has no regular counterpart in snapshot", u.Name))
			}
			// Boost eligibility: the regular troop's full lab progress must
			// reach this level's floor.
			regularMax := resolveUnit(snap, reg, tier, modeRegular)
			if lv.Level > regularMax {
				return best
			}
			// A super troop has no level track of its own: it mirrors the
			// regular troop exactly (for donations — the regular troop's
			// donated level).
			if mode == modeClanCastle {
				return resolveUnit(snap, reg, tier, modeClanCastle)
			}
			return regularMax
		}

		best = lv.Level
	}
	return best
}

// buildingReached reports whether the tier's production building max covers
// the requirement threshold. nil threshold means no requirement.
func buildingReached(tier *data.TownHallTier, building data.ProductionBuilding, threshold *int32) bool {
	if threshold == nil {
		return true
	}
	var max *int32
	switch building {
	case data.BuildingBarrack:
		max = tier.MaxBarrack
	case data.BuildingDarkBarrack:
		max = tier.MaxDarkBarrack
	case data.BuildingSpellFactory:
		max = tier.MaxSpellFactory
	case data.BuildingDarkSpellFactory:
		max = tier.MaxDarkSpellFactory
	case data.BuildingWorkshop:
		max = tier.MaxWorkshop
	default:
		// Snapshot construction rejects unknown production buildings.
		panic(fmt.Sprintf("unknown production building %d", building))
	}
	return *threshold <= orZero(max)
}

// ResolveEquipmentLevel возвращает максимальный уровень снаряжения на tier,
// либо -1 если герой-владелец ещё не открыт.
func ResolveEquipmentLevel(e *data.EquipmentDefinition, tier *data.TownHallTier) int32 {
	if ResolveHeroLevel(tier, e.Hero) < 1 {
		return -1
	}
	best := int32(-1)
	for i := range e.Levels {
		lv := &e.Levels[i]
		if lv.BlacksmithLevel != nil && *lv.BlacksmithLevel > orZero(tier.MaxBlacksmith) {
			return best
		}
		best = lv.Level
	}
	return best
}

// ResolvePetLevel возвращает максимальный уровень питомца на tier,
// либо -1 если pet house ещё не построен.
func ResolvePetLevel(p *data.PetDefinition, tier *data.TownHallTier) int32 {
	if tier.MaxPetHouse == nil {
		return -1
	}
	best := int32(-1)
	for i := range p.Levels {
		lv := &p.Levels[i]
		if lv.PetHouseLevel != nil && *lv.PetHouseLevel > *tier.MaxPetHouse {
			return best
		}
		best = lv.Level
	}
	return best
}

// ResolveHeroLevel возвращает максимальный уровень героя на tier.
// Unrecognized hero or a hero not yet unlocked resolves to -1.
func ResolveHeroLevel(tier *data.TownHallTier, hero data.Hero) int32 {
	max := tier.HeroMax(hero)
	if max == nil {
		return -1
	}
	return *max
}

func orZero(p *int32) int32 {
	if p == nil {
		return 0
	}
	return *p
}
