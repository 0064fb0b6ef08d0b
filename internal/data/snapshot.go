package data

import (
	"fmt"
	"log/slog"
	"slices"
)

// IntegrityError — справочные данные повреждены (ошибка в пайплайне данных,
// не пользовательский ввод). Fatal at startup: must never be swallowed.
type IntegrityError struct {
	Msg string
}

func (e *IntegrityError) Error() string {
	return "reference data integrity: " + e.Msg
}

func integrityf(format string, args ...any) *IntegrityError {
	return &IntegrityError{Msg: fmt.Sprintf(format, args...)}
}

// Snapshot — неизменяемый каталог справочных данных на время жизни процесса.
// Построен один раз при старте через NewSnapshot и передаётся явно всем
// resolver/validator функциям. Concurrent readers are always safe: no writes
// after construction.
type Snapshot struct {
	tiers    map[int32]*TownHallTier
	maxTier  int32
	units    map[int32]*UnitDefinition
	unitName map[string]*UnitDefinition
	equip    map[int32]*EquipmentDefinition
	pets     map[int32]*PetDefinition
	petName  map[string]*PetDefinition

	// superRegular: super unit id → id обычного юнита.
	// Names are resolved to stable ids once here so the resolver recurses
	// on ids, never on strings.
	superRegular map[int32]int32
}

// NewSnapshot строит Snapshot из плоских записей, полученных от хранилища,
// и проверяет целостность справочника. Fail fast: любое нарушение — ошибка
// загрузки, процесс не должен стартовать.
func NewSnapshot(
	tiers []TownHallTier,
	units []UnitDefinition,
	equipment []EquipmentDefinition,
	pets []PetDefinition,
) (*Snapshot, error) {
	s := &Snapshot{
		tiers:        make(map[int32]*TownHallTier, len(tiers)),
		units:        make(map[int32]*UnitDefinition, len(units)),
		unitName:     make(map[string]*UnitDefinition, len(units)),
		equip:        make(map[int32]*EquipmentDefinition, len(equipment)),
		pets:         make(map[int32]*PetDefinition, len(pets)),
		petName:      make(map[string]*PetDefinition, len(pets)),
		superRegular: make(map[int32]int32),
	}

	for i := range tiers {
		t := &tiers[i]
		if t.Level < 1 {
			return nil, integrityf("town hall level %d out of range", t.Level)
		}
		if _, dup := s.tiers[t.Level]; dup {
			return nil, integrityf("duplicate town hall level %d", t.Level)
		}
		s.tiers[t.Level] = t
		if t.Level > s.maxTier {
			s.maxTier = t.Level
		}
	}
	if len(s.tiers) == 0 {
		return nil, integrityf("no town hall tiers")
	}
	// Tiers must be contiguous 1..maxTier.
	for lvl := int32(1); lvl <= s.maxTier; lvl++ {
		if _, ok := s.tiers[lvl]; !ok {
			return nil, integrityf("town hall level %d missing (tiers must be contiguous)", lvl)
		}
	}

	for i := range units {
		u := &units[i]
		if err := validateUnit(u); err != nil {
			return nil, err
		}
		if _, dup := s.units[u.ID]; dup {
			return nil, integrityf("duplicate unit id %d (%s)", u.ID, u.Name)
		}
		if _, dup := s.unitName[u.Name]; dup {
			return nil, integrityf("duplicate unit name %q", u.Name)
		}
		s.units[u.ID] = u
		s.unitName[u.Name] = u
	}

	// Resolve super → regular counterparts to ids.
	for _, u := range s.units {
		if !u.IsSuper {
			continue
		}
		if u.RegularCounterpart == "" {
			return nil, integrityf("super troop %q has no regular counterpart", u.Name)
		}
		reg, ok := s.unitName[u.RegularCounterpart]
		if !ok {
			return nil, integrityf("super troop %q: regular counterpart %q not found", u.Name, u.RegularCounterpart)
		}
		if reg.ID == u.ID {
			return nil, integrityf("super troop %q references itself as counterpart", u.Name)
		}
		if reg.IsSuper {
			return nil, integrityf("super troop %q: counterpart %q is itself super", u.Name, u.RegularCounterpart)
		}
		s.superRegular[u.ID] = reg.ID
	}

	for i := range equipment {
		e := &equipment[i]
		if len(e.Levels) == 0 {
			return nil, integrityf("equipment %q has no levels", e.Name)
		}
		if !ValidHero(e.Hero) {
			return nil, integrityf("equipment %q: unknown hero %q", e.Name, e.Hero)
		}
		for j := range e.Levels {
			if j > 0 && e.Levels[j].Level <= e.Levels[j-1].Level {
				return nil, integrityf("equipment %q levels not strictly ascending", e.Name)
			}
		}
		if _, dup := s.equip[e.ID]; dup {
			return nil, integrityf("duplicate equipment id %d (%s)", e.ID, e.Name)
		}
		s.equip[e.ID] = e
	}

	for i := range pets {
		p := &pets[i]
		if len(p.Levels) == 0 {
			return nil, integrityf("pet %q has no levels", p.Name)
		}
		for j := range p.Levels {
			if j > 0 && p.Levels[j].Level <= p.Levels[j-1].Level {
				return nil, integrityf("pet %q levels not strictly ascending", p.Name)
			}
		}
		if _, dup := s.pets[p.ID]; dup {
			return nil, integrityf("duplicate pet id %d (%s)", p.ID, p.Name)
		}
		if _, dup := s.petName[p.Name]; dup {
			return nil, integrityf("duplicate pet name %q", p.Name)
		}
		s.pets[p.ID] = p
		s.petName[p.Name] = p
	}

	slog.Info("reference snapshot built",
		"town_halls", len(s.tiers),
		"units", len(s.units),
		"equipment", len(s.equip),
		"pets", len(s.pets),
		"super_troops", len(s.superRegular))
	return s, nil
}

func validateUnit(u *UnitDefinition) error {
	if len(u.Levels) == 0 {
		return integrityf("unit %q has no levels", u.Name)
	}
	for j := range u.Levels {
		if j > 0 && u.Levels[j].Level <= u.Levels[j-1].Level {
			return integrityf("unit %q levels not strictly ascending", u.Name)
		}
	}
	switch u.Kind {
	case KindTroop:
		if u.Production != BuildingBarrack && u.Production != BuildingDarkBarrack {
			return integrityf("troop %q produced in %s", u.Name, u.Production)
		}
	case KindSiege:
		if u.Production != BuildingWorkshop {
			return integrityf("siege %q produced in %s", u.Name, u.Production)
		}
		if u.IsSuper {
			return integrityf("siege %q cannot be super", u.Name)
		}
	case KindSpell:
		if u.Production != BuildingSpellFactory && u.Production != BuildingDarkSpellFactory {
			return integrityf("spell %q produced in %s", u.Name, u.Production)
		}
		if u.IsSuper {
			return integrityf("spell %q cannot be super", u.Name)
		}
	default:
		return integrityf("unit %q has unknown kind %d", u.Name, u.Kind)
	}
	if u.HousingSpace < 0 || u.TrainingTime < 0 {
		return integrityf("unit %q has negative housing or training time", u.Name)
	}
	return nil
}

// ValidHero reports whether h is one of the five recognized heroes.
func ValidHero(h Hero) bool {
	for _, known := range Heroes {
		if h == known {
			return true
		}
	}
	return false
}

// Tier возвращает tier по уровню ратуши. Returns nil if unknown.
func (s *Snapshot) Tier(level int32) *TownHallTier {
	return s.tiers[level]
}

// MaxTier возвращает максимальный уровень ратуши в справочнике.
func (s *Snapshot) MaxTier() int32 {
	return s.maxTier
}

// Unit возвращает юнита по id. Returns nil if unknown.
func (s *Snapshot) Unit(id int32) *UnitDefinition {
	return s.units[id]
}

// UnitByName возвращает юнита по имени. Returns nil if unknown.
func (s *Snapshot) UnitByName(name string) *UnitDefinition {
	return s.unitName[name]
}

// Equipment возвращает снаряжение по id. Returns nil if unknown.
func (s *Snapshot) Equipment(id int32) *EquipmentDefinition {
	return s.equip[id]
}

// Pet возвращает питомца по id. Returns nil if unknown.
func (s *Snapshot) Pet(id int32) *PetDefinition {
	return s.pets[id]
}

// RegularCounterpart возвращает обычного юнита для super-варианта.
// Returns nil for non-super units.
func (s *Snapshot) RegularCounterpart(superID int32) *UnitDefinition {
	regID, ok := s.superRegular[superID]
	if !ok {
		return nil
	}
	return s.units[regID]
}

// Units возвращает всех юнитов, отсортированных по id.
func (s *Snapshot) Units() []*UnitDefinition {
	out := make([]*UnitDefinition, 0, len(s.units))
	for _, u := range s.units {
		out = append(out, u)
	}
	slices.SortFunc(out, func(a, b *UnitDefinition) int { return int(a.ID - b.ID) })
	return out
}

// EquipmentList возвращает всё снаряжение, отсортированное по id.
func (s *Snapshot) EquipmentList() []*EquipmentDefinition {
	out := make([]*EquipmentDefinition, 0, len(s.equip))
	for _, e := range s.equip {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *EquipmentDefinition) int { return int(a.ID - b.ID) })
	return out
}

// Pets возвращает всех питомцев, отсортированных по id.
func (s *Snapshot) Pets() []*PetDefinition {
	out := make([]*PetDefinition, 0, len(s.pets))
	for _, p := range s.pets {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b *PetDefinition) int { return int(a.ID - b.ID) })
	return out
}

// HeroMax возвращает максимальный уровень героя на данном tier.
// nil если герой ещё не открыт; unrecognized hero also returns nil.
func (t *TownHallTier) HeroMax(h Hero) *int32 {
	switch h {
	case HeroBarbarianKing:
		return t.MaxBarbarianKing
	case HeroArcherQueen:
		return t.MaxArcherQueen
	case HeroGrandWarden:
		return t.MaxGrandWarden
	case HeroRoyalChampion:
		return t.MaxRoyalChampion
	case HeroMinionPrince:
		return t.MaxMinionPrince
	}
	return nil
}
