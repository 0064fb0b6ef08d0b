package army

import (
	"net/url"
	"unicode/utf8"

	"github.com/udisondev/armygo/internal/data"
)

// maxHeroesPerComposition — в бою участвуют максимум 4 героя из пяти.
const maxHeroesPerComposition = 4

// maxUniqueSuperTroops — лимит одновременно активных super-бустов.
// Clan castle donations are exempt.
const maxUniqueSuperTroops = 2

// Limits — настраиваемые пределы валидации (из конфига).
type Limits struct {
	// GuideTextLimit — бюджет символов текста гайда (runes, not bytes).
	GuideTextLimit int
}

// DefaultLimits возвращает пределы по умолчанию.
func DefaultLimits() Limits {
	return Limits{GuideTextLimit: 2000}
}

// Validator проверяет save payload по снапшоту справочника.
// Pure and stateless: the same payload against the same snapshot always
// yields the same decision.
type Validator struct {
	snap   *data.Snapshot
	limits Limits
}

// NewValidator создаёт Validator с указанными пределами.
func NewValidator(snap *data.Snapshot, limits Limits) *Validator {
	return &Validator{snap: snap, limits: limits}
}

// ValidateComposition проверяет payload с пределами по умолчанию.
func ValidateComposition(snap *data.Snapshot, p SavePayload) (SavePayload, error) {
	return NewValidator(snap, DefaultLimits()).Validate(p)
}

// Validate принимает payload целиком или отклоняет его первой нарушенной
// проверкой (fail fast, без накопления ошибок). Сообщения отклонений —
// часть пользовательского контракта: они называют сущность и лимиты.
//
// Порядок проверок: tier → дубликаты юнитов → вместимость → super-лимит →
// разблокировка юнитов → снаряжение → питомцы → число героев → гайд.
func (v *Validator) Validate(p SavePayload) (SavePayload, error) {
	tier := v.snap.Tier(p.TownHall)
	if tier == nil {
		// Fail closed: an unknown tier must never fall back to a default.
		return SavePayload{}, &NotFoundError{Entity: "town hall", ID: p.TownHall}
	}

	camp, cc, err := v.partitionUnits(p.Units)
	if err != nil {
		return SavePayload{}, err
	}

	if err := v.checkCapacity(tier, camp, PlacementArmyCamp); err != nil {
		return SavePayload{}, err
	}
	if err := v.checkCapacity(tier, cc, PlacementClanCastle); err != nil {
		return SavePayload{}, err
	}

	if err := v.checkSuperTroops(camp); err != nil {
		return SavePayload{}, err
	}

	for _, su := range camp {
		u := v.snap.Unit(su.UnitID)
		if ResolveUnitLevel(v.snap, u, tier) < 1 {
			return SavePayload{}, rejectf("%s is not available at town hall %d", u.Name, tier.Level)
		}
	}
	for _, su := range cc {
		u := v.snap.Unit(su.UnitID)
		if ResolveCcUnitLevel(v.snap, u, tier) < 1 {
			return SavePayload{}, rejectf("%s cannot be donated at town hall %d", u.Name, tier.Level)
		}
	}

	heroes, err := v.checkEquipment(tier, p.Equipment)
	if err != nil {
		return SavePayload{}, err
	}
	if err := v.checkPets(tier, p.Pets, heroes); err != nil {
		return SavePayload{}, err
	}
	if len(heroes) > maxHeroesPerComposition {
		return SavePayload{}, rejectf("a composition can use at most %d heroes, got %d", maxHeroesPerComposition, len(heroes))
	}

	if p.Guide != nil {
		if err := v.checkGuide(p.Guide); err != nil {
			return SavePayload{}, err
		}
	}

	return p, nil
}

// partitionUnits разбивает юниты по placement, отклоняя дубликаты внутри
// одного placement и некорректные amount.
func (v *Validator) partitionUnits(units []SelectedUnit) (camp, cc []SelectedUnit, err error) {
	seen := make(map[Placement]map[int32]bool, 2)
	seen[PlacementArmyCamp] = make(map[int32]bool)
	seen[PlacementClanCastle] = make(map[int32]bool)

	for _, su := range units {
		if !su.Placement.Valid() {
			return nil, nil, rejectf("unknown placement %q", string(su.Placement))
		}
		u := v.snap.Unit(su.UnitID)
		if u == nil {
			return nil, nil, &NotFoundError{Entity: "unit", ID: su.UnitID}
		}
		if su.Amount < 1 {
			return nil, nil, rejectf("%s has invalid amount %d", u.Name, su.Amount)
		}
		if seen[su.Placement][su.UnitID] {
			return nil, nil, rejectf("%s is selected twice in the %s", u.Name, placementLabel(su.Placement))
		}
		seen[su.Placement][su.UnitID] = true
		if su.Placement == PlacementArmyCamp {
			camp = append(camp, su)
		} else {
			cc = append(cc, su)
		}
	}
	return camp, cc, nil
}

// checkCapacity проверяет суммарный housing space каждого вида против
// вместимости tier для данного placement.
func (v *Validator) checkCapacity(tier *data.TownHallTier, units []SelectedUnit, placement Placement) error {
	entries := make([]CapacityEntry, 0, len(units))
	for _, su := range units {
		u := v.snap.Unit(su.UnitID)
		entries = append(entries, CapacityEntry{
			Kind:         u.Kind,
			Amount:       su.Amount,
			HousingSpace: u.HousingSpace,
			TrainingTime: u.TrainingTime,
		})
	}
	totals := AggregateCapacity(entries)

	for _, kind := range []data.UnitKind{data.KindTroop, data.KindSpell, data.KindSiege} {
		limit := int64(capacityFor(tier, placement, kind))
		if got := totals.SpaceFor(kind); got > limit {
			return rejectf("town hall %d allows at most %d %s housing space in the %s, got %d",
				tier.Level, limit, kind, placementLabel(placement), got)
		}
	}
	return nil
}

// checkSuperTroops отклоняет больше двух уникальных super-юнитов в лагере.
func (v *Validator) checkSuperTroops(camp []SelectedUnit) error {
	count := 0
	for _, su := range camp {
		if v.snap.Unit(su.UnitID).IsSuper {
			count++
		}
	}
	if count > maxUniqueSuperTroops {
		return rejectf("an army can contain at most %d unique super troops, got %d", maxUniqueSuperTroops, count)
	}
	return nil
}

// checkEquipment валидирует снаряжение, накапливая занятых героев.
// Returns the set of heroes referenced by equipment.
func (v *Validator) checkEquipment(tier *data.TownHallTier, equipment []SelectedEquipment) (map[data.Hero]bool, error) {
	heroes := make(map[data.Hero]bool)
	worn := make(map[data.Hero][]string)

	for _, se := range equipment {
		e := v.snap.Equipment(se.EquipmentID)
		if e == nil {
			return nil, &NotFoundError{Entity: "equipment", ID: se.EquipmentID}
		}
		for _, name := range worn[e.Hero] {
			if name == e.Name {
				return nil, rejectf("%s already has %s equipped", e.Hero, e.Name)
			}
		}
		if len(worn[e.Hero]) >= 2 {
			return nil, rejectf("%s can carry at most 2 equipment pieces", e.Hero)
		}
		if ResolveHeroLevel(tier, e.Hero) < 1 {
			return nil, rejectf("%s is not unlocked at town hall %d", e.Hero, tier.Level)
		}
		if ResolveEquipmentLevel(e, tier) < 1 {
			return nil, rejectf("%s is not available at town hall %d", e.Name, tier.Level)
		}
		worn[e.Hero] = append(worn[e.Hero], e.Name)
		heroes[e.Hero] = true
	}
	return heroes, nil
}

// checkPets валидирует питомцев, дополняя набор занятых героев.
func (v *Validator) checkPets(tier *data.TownHallTier, pets []SelectedPet, heroes map[data.Hero]bool) error {
	petHero := make(map[string]data.Hero)
	assigned := make(map[data.Hero]bool)

	for _, sp := range pets {
		p := v.snap.Pet(sp.PetID)
		if p == nil {
			return &NotFoundError{Entity: "pet", ID: sp.PetID}
		}
		if !data.ValidHero(sp.Hero) {
			return rejectf("unknown hero %q", string(sp.Hero))
		}
		if assigned[sp.Hero] {
			return rejectf("%s already has a pet", sp.Hero)
		}
		if other, ok := petHero[p.Name]; ok && other != sp.Hero {
			return rejectf("%s is already assigned to %s", p.Name, other)
		}
		if ResolveHeroLevel(tier, sp.Hero) < 1 {
			return rejectf("%s is not unlocked at town hall %d", sp.Hero, tier.Level)
		}
		if ResolvePetLevel(p, tier) < 1 {
			return rejectf("%s is not available at town hall %d", p.Name, tier.Level)
		}
		petHero[p.Name] = sp.Hero
		assigned[sp.Hero] = true
		heroes[sp.Hero] = true
	}
	return nil
}

// checkGuide проверяет текстовый бюджет и синтаксис видео-ссылки.
func (v *Validator) checkGuide(g *Guide) error {
	if g.Text == "" && g.VideoURL == "" {
		return rejectf("a guide needs text or a video link")
	}
	if limit := v.limits.GuideTextLimit; utf8.RuneCountInString(g.Text) > limit {
		return rejectf("guide text exceeds %d characters", limit)
	}
	if g.VideoURL != "" && !validVideoURL(g.VideoURL) {
		return rejectf("invalid video link %q", g.VideoURL)
	}
	return nil
}

func validVideoURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func capacityFor(tier *data.TownHallTier, placement Placement, kind data.UnitKind) int32 {
	if placement == PlacementClanCastle {
		switch kind {
		case data.KindTroop:
			return tier.CcTroopCapacity
		case data.KindSiege:
			return tier.CcSiegeCapacity
		case data.KindSpell:
			return tier.CcSpellCapacity
		}
		return 0
	}
	switch kind {
	case data.KindTroop:
		return tier.TroopCapacity
	case data.KindSiege:
		return tier.SiegeCapacity
	case data.KindSpell:
		return tier.SpellCapacity
	}
	return 0
}

func placementLabel(p Placement) string {
	if p == PlacementClanCastle {
		return "clan castle"
	}
	return "army camp"
}
