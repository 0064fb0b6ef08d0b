package army

import "github.com/udisondev/armygo/internal/data"

// CapacityEntry — один выбранный юнит для агрегации вместимости.
type CapacityEntry struct {
	Kind         data.UnitKind
	Amount       int32
	HousingSpace int32
	TrainingTime int32 // seconds per unit
}

// CapacityTotals — суммарная вместимость по видам и общее время тренировки.
// Totals are int64: amounts are client input, and the products must not wrap
// back under a capacity limit.
type CapacityTotals struct {
	TroopSpace int64
	SiegeSpace int64
	SpellSpace int64
	// TrainingTime — wall-clock время сбора армии в секундах. Troops,
	// sieges and spells train on independent production lines, so this is
	// the slowest line, not the sum of all three.
	TrainingTime int64
}

// SpaceFor возвращает занятое место для вида юнитов.
func (t CapacityTotals) SpaceFor(kind data.UnitKind) int64 {
	switch kind {
	case data.KindTroop:
		return t.TroopSpace
	case data.KindSiege:
		return t.SiegeSpace
	case data.KindSpell:
		return t.SpellSpace
	}
	return 0
}

// AggregateCapacity суммирует housing space по видам и считает время
// тренировки как максимум из трёх параллельных очередей.
// Empty input yields the zero value, not an error.
func AggregateCapacity(entries []CapacityEntry) CapacityTotals {
	var totals CapacityTotals
	var troopTime, siegeTime, spellTime int64
	for _, e := range entries {
		space := int64(e.Amount) * int64(e.HousingSpace)
		time := int64(e.Amount) * int64(e.TrainingTime)
		switch e.Kind {
		case data.KindTroop:
			totals.TroopSpace += space
			troopTime += time
		case data.KindSiege:
			totals.SiegeSpace += space
			siegeTime += time
		case data.KindSpell:
			totals.SpellSpace += space
			spellTime += time
		}
	}
	totals.TrainingTime = max(troopTime, siegeTime, spellTime)
	return totals
}
