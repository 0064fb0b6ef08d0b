package army

import (
	"sync"

	"github.com/google/uuid"

	"github.com/udisondev/armygo/internal/data"
)

// ArmyType — грубая классификация армии по доле летающих юнитов.
type ArmyType string

const (
	ArmyTypeAir    ArmyType = "air"
	ArmyTypeGround ArmyType = "ground"
	ArmyTypeHybrid ArmyType = "hybrid"
)

// Composition — изменяемая модель композиции в процессе редактирования.
// Даёт живую обратную связь (занятое место, доступные уровни) без полного
// прогона валидатора на каждое действие. Exactly one logical owner edits a
// Composition; the mutex only guards against racy readers.
//
// Persisted form is authoritative: this model is ephemeral per session and
// converts to the save payload via SaveData.
type Composition struct {
	mu sync.RWMutex

	snap *data.Snapshot

	id       uuid.UUID
	name     string
	townHall int32

	units     []SelectedUnit
	equipment []SelectedEquipment
	pets      []SelectedPet
	guide     *Guide
	tags      []string
	banner    string
}

// NewComposition создаёт пустую композицию на максимальной ратуше снапшота.
func NewComposition(snap *data.Snapshot) *Composition {
	return &Composition{
		snap:     snap,
		id:       uuid.New(),
		townHall: snap.MaxTier(),
	}
}

// FromPayload гидрирует модель из сохранённой записи.
// The payload is not re-validated here; call ValidateComposition before
// persisting again.
func FromPayload(snap *data.Snapshot, p SavePayload) *Composition {
	c := &Composition{
		snap:     snap,
		id:       p.ID,
		name:     p.Name,
		townHall: p.TownHall,
		guide:    p.Guide,
		banner:   p.Banner,
	}
	if c.id == uuid.Nil {
		c.id = uuid.New()
	}
	// A stale record may carry a tier the current snapshot no longer knows;
	// every capacity and level read assumes the active tier exists.
	if c.snap.Tier(c.townHall) == nil {
		c.townHall = snap.MaxTier()
	}
	c.units = append(c.units, p.Units...)
	c.equipment = append(c.equipment, p.Equipment...)
	c.pets = append(c.pets, p.Pets...)
	c.tags = append(c.tags, p.Tags...)
	return c
}

// ID возвращает идентификатор композиции.
func (c *Composition) ID() uuid.UUID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

// Name возвращает название композиции.
func (c *Composition) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

// SetName задаёт название композиции.
func (c *Composition) SetName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.name = name
}

// TownHall возвращает активный уровень ратуши.
func (c *Composition) TownHall() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.townHall
}

// SetTownHall переключает активный tier. Unknown level is rejected.
func (c *Composition) SetTownHall(level int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap.Tier(level) == nil {
		return &NotFoundError{Entity: "town hall", ID: level}
	}
	c.townHall = level
	return nil
}

// AddUnit добавляет amount юнитов в указанный placement. Если юнит уже
// выбран там, количество суммируется.
func (c *Composition) AddUnit(unitID int32, placement Placement, amount int32) error {
	if !placement.Valid() {
		return rejectf("unknown placement %q", string(placement))
	}
	if amount < 1 {
		return rejectf("amount must be positive, got %d", amount)
	}
	if c.snap.Unit(unitID) == nil {
		return &NotFoundError{Entity: "unit", ID: unitID}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.units {
		if c.units[i].UnitID == unitID && c.units[i].Placement == placement {
			c.units[i].Amount += amount
			return nil
		}
	}
	c.units = append(c.units, SelectedUnit{UnitID: unitID, Placement: placement, Amount: amount})
	return nil
}

// RemoveUnit убирает юнита из указанного placement целиком.
func (c *Composition) RemoveUnit(unitID int32, placement Placement) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.units {
		if c.units[i].UnitID == unitID && c.units[i].Placement == placement {
			c.units = append(c.units[:i], c.units[i+1:]...)
			return
		}
	}
}

// AddEquipment добавляет снаряжение. Повторное добавление того же id — no-op.
func (c *Composition) AddEquipment(equipmentID int32) error {
	if c.snap.Equipment(equipmentID) == nil {
		return &NotFoundError{Entity: "equipment", ID: equipmentID}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, se := range c.equipment {
		if se.EquipmentID == equipmentID {
			return nil
		}
	}
	c.equipment = append(c.equipment, SelectedEquipment{EquipmentID: equipmentID})
	return nil
}

// RemoveEquipment убирает снаряжение по id.
func (c *Composition) RemoveEquipment(equipmentID int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.equipment {
		if c.equipment[i].EquipmentID == equipmentID {
			c.equipment = append(c.equipment[:i], c.equipment[i+1:]...)
			return
		}
	}
}

// AssignPet назначает питомца герою, заменяя прежнего питомца героя.
func (c *Composition) AssignPet(petID int32, hero data.Hero) error {
	if c.snap.Pet(petID) == nil {
		return &NotFoundError{Entity: "pet", ID: petID}
	}
	if !data.ValidHero(hero) {
		return rejectf("unknown hero %q", string(hero))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.pets {
		if c.pets[i].Hero == hero {
			c.pets[i].PetID = petID
			return nil
		}
	}
	c.pets = append(c.pets, SelectedPet{PetID: petID, Hero: hero})
	return nil
}

// RemovePet снимает питомца с героя.
func (c *Composition) RemovePet(hero data.Hero) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.pets {
		if c.pets[i].Hero == hero {
			c.pets = append(c.pets[:i], c.pets[i+1:]...)
			return
		}
	}
}

// SetGuide задаёт гайд композиции.
func (c *Composition) SetGuide(text, videoURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guide = &Guide{Text: text, VideoURL: videoURL}
}

// ClearGuide убирает гайд.
func (c *Composition) ClearGuide() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guide = nil
}

// SetTags задаёт теги композиции.
func (c *Composition) SetTags(tags []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags = append(c.tags[:0], tags...)
}

// SetBanner задаёт баннер композиции.
func (c *Composition) SetBanner(banner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.banner = banner
}

// Capacity возвращает вместимость лагеря активного tier (troop/spell/siege).
func (c *Composition) Capacity() (troop, spell, siege int32) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t := c.snap.Tier(c.townHall)
	return t.TroopCapacity, t.SpellCapacity, t.SiegeCapacity
}

// CcCapacity возвращает вместимость кланового замка активного tier.
func (c *Composition) CcCapacity() (troop, spell, siege int32) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t := c.snap.Tier(c.townHall)
	return t.CcTroopCapacity, t.CcSpellCapacity, t.CcSiegeCapacity
}

// HousingTotals возвращает занятое место и время тренировки лагеря.
func (c *Composition) HousingTotals() CapacityTotals {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totalsLocked(PlacementArmyCamp)
}

// CcHousingTotals возвращает занятое место кланового замка.
func (c *Composition) CcHousingTotals() CapacityTotals {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totalsLocked(PlacementClanCastle)
}

func (c *Composition) totalsLocked(placement Placement) CapacityTotals {
	var entries []CapacityEntry
	for _, su := range c.units {
		if su.Placement != placement {
			continue
		}
		u := c.snap.Unit(su.UnitID)
		entries = append(entries, CapacityEntry{
			Kind:         u.Kind,
			Amount:       su.Amount,
			HousingSpace: u.HousingSpace,
			TrainingTime: u.TrainingTime,
		})
	}
	return AggregateCapacity(entries)
}

// UnitLevel возвращает уровень юнита на активном tier для live-подсказок
// (placement определяет, какой resolver применяется).
func (c *Composition) UnitLevel(unitID int32, placement Placement) int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u := c.snap.Unit(unitID)
	if u == nil {
		return -1
	}
	tier := c.snap.Tier(c.townHall)
	if placement == PlacementClanCastle {
		return ResolveCcUnitLevel(c.snap, u, tier)
	}
	return ResolveUnitLevel(c.snap, u, tier)
}

// Type классифицирует армию по доле housing space летающих юнитов:
// больше 60% — air, меньше 40% — ground, иначе hybrid. Spells are excluded
// from the ratio; an empty army counts as ground.
func (c *Composition) Type() ArmyType {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var air, total int64
	for _, su := range c.units {
		u := c.snap.Unit(su.UnitID)
		if u.Kind == data.KindSpell {
			continue
		}
		space := int64(su.Amount) * int64(u.HousingSpace)
		total += space
		if u.Flying {
			air += space
		}
	}
	if total == 0 {
		return ArmyTypeGround
	}
	ratio := float64(air) / float64(total)
	switch {
	case ratio > 0.6:
		return ArmyTypeAir
	case ratio < 0.4:
		return ArmyTypeGround
	}
	return ArmyTypeHybrid
}

// HasClanCastle reports whether any unit is placed in the clan castle.
func (c *Composition) HasClanCastle() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, su := range c.units {
		if su.Placement == PlacementClanCastle {
			return true
		}
	}
	return false
}

// HasHeroes reports whether any equipment or pet implies a hero.
func (c *Composition) HasHeroes() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.equipment) > 0 || len(c.pets) > 0
}

// HasGuide reports whether a guide is attached.
func (c *Composition) HasGuide() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.guide != nil
}

// SaveData конвертирует модель в save payload — ровно ту форму, которую
// принимает ValidateComposition и которая сериализуется в хранилище.
func (c *Composition) SaveData() SavePayload {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := SavePayload{
		ID:       c.id,
		Name:     c.name,
		TownHall: c.townHall,
		Banner:   c.banner,
	}
	p.Units = append(p.Units, c.units...)
	p.Equipment = append(p.Equipment, c.equipment...)
	p.Pets = append(p.Pets, c.pets...)
	p.Tags = append(p.Tags, c.tags...)
	if c.guide != nil {
		g := *c.guide
		p.Guide = &g
	}
	return p
}
