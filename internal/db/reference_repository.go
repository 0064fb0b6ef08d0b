package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/armygo/internal/data"
)

// ReferenceRepository читает справочные таблицы и собирает из них входные
// записи для data.NewSnapshot. Вызывается один раз при старте процесса.
type ReferenceRepository struct {
	pool *pgxpool.Pool
}

// NewReferenceRepository создаёт repository поверх пула.
func NewReferenceRepository(pool *pgxpool.Pool) *ReferenceRepository {
	return &ReferenceRepository{pool: pool}
}

// LoadSnapshot загружает все справочные таблицы (параллельно по семействам)
// и строит снапшот. Integrity violations surface as load errors here.
func (r *ReferenceRepository) LoadSnapshot(ctx context.Context) (*data.Snapshot, error) {
	var (
		tiers     []data.TownHallTier
		units     []data.UnitDefinition
		equipment []data.EquipmentDefinition
		pets      []data.PetDefinition
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tiers, err = r.loadTownHalls(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		units, err = r.loadUnits(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		equipment, err = r.loadEquipment(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pets, err = r.loadPets(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading reference tables: %w", err)
	}

	return data.NewSnapshot(tiers, units, equipment, pets)
}

func (r *ReferenceRepository) loadTownHalls(ctx context.Context) ([]data.TownHallTier, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT level, max_barrack, max_dark_barrack, max_laboratory, max_spell_factory,
		        max_dark_spell_factory, max_workshop, max_blacksmith, max_pet_house, max_clan_castle,
		        max_barbarian_king, max_archer_queen, max_grand_warden, max_royal_champion, max_minion_prince,
		        troop_capacity, spell_capacity, siege_capacity,
		        cc_troop_capacity, cc_spell_capacity, cc_siege_capacity, cc_laboratory_cap
		 FROM town_halls ORDER BY level`)
	if err != nil {
		return nil, fmt.Errorf("querying town halls: %w", err)
	}
	defer rows.Close()

	var tiers []data.TownHallTier
	for rows.Next() {
		var t data.TownHallTier
		if err := rows.Scan(
			&t.Level, &t.MaxBarrack, &t.MaxDarkBarrack, &t.MaxLaboratory, &t.MaxSpellFactory,
			&t.MaxDarkSpellFactory, &t.MaxWorkshop, &t.MaxBlacksmith, &t.MaxPetHouse, &t.MaxClanCastle,
			&t.MaxBarbarianKing, &t.MaxArcherQueen, &t.MaxGrandWarden, &t.MaxRoyalChampion, &t.MaxMinionPrince,
			&t.TroopCapacity, &t.SpellCapacity, &t.SiegeCapacity,
			&t.CcTroopCapacity, &t.CcSpellCapacity, &t.CcSiegeCapacity, &t.CcLaboratoryCap,
		); err != nil {
			return nil, fmt.Errorf("scanning town hall: %w", err)
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

func (r *ReferenceRepository) loadUnits(ctx context.Context) ([]data.UnitDefinition, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, kind, is_super, flying, jumping, targets_air,
		        production, housing_space, training_time, regular_counterpart
		 FROM units ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying units: %w", err)
	}
	defer rows.Close()

	var units []data.UnitDefinition
	byID := make(map[int32]int)
	for rows.Next() {
		var u data.UnitDefinition
		var kind, production int32
		if err := rows.Scan(
			&u.ID, &u.Name, &kind, &u.IsSuper, &u.Flying, &u.Jumping, &u.TargetsAir,
			&production, &u.HousingSpace, &u.TrainingTime, &u.RegularCounterpart,
		); err != nil {
			return nil, fmt.Errorf("scanning unit: %w", err)
		}
		u.Kind = data.UnitKind(kind)
		u.Production = data.ProductionBuilding(production)
		byID[u.ID] = len(units)
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	lvlRows, err := r.pool.Query(ctx,
		`SELECT unit_id, level, building_level, laboratory_level
		 FROM unit_levels ORDER BY unit_id, level`)
	if err != nil {
		return nil, fmt.Errorf("querying unit levels: %w", err)
	}
	defer lvlRows.Close()

	for lvlRows.Next() {
		var unitID int32
		var lv data.UnitLevel
		if err := lvlRows.Scan(&unitID, &lv.Level, &lv.BuildingLevel, &lv.LaboratoryLevel); err != nil {
			return nil, fmt.Errorf("scanning unit level: %w", err)
		}
		i, ok := byID[unitID]
		if !ok {
			return nil, fmt.Errorf("unit level references unknown unit %d", unitID)
		}
		units[i].Levels = append(units[i].Levels, lv)
	}
	return units, lvlRows.Err()
}

func (r *ReferenceRepository) loadEquipment(ctx context.Context) ([]data.EquipmentDefinition, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, hero, epic FROM equipment ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying equipment: %w", err)
	}
	defer rows.Close()

	var equipment []data.EquipmentDefinition
	byID := make(map[int32]int)
	for rows.Next() {
		var e data.EquipmentDefinition
		var hero string
		if err := rows.Scan(&e.ID, &e.Name, &hero, &e.Epic); err != nil {
			return nil, fmt.Errorf("scanning equipment: %w", err)
		}
		e.Hero = data.Hero(hero)
		byID[e.ID] = len(equipment)
		equipment = append(equipment, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	lvlRows, err := r.pool.Query(ctx,
		`SELECT equipment_id, level, blacksmith_level FROM equipment_levels ORDER BY equipment_id, level`)
	if err != nil {
		return nil, fmt.Errorf("querying equipment levels: %w", err)
	}
	defer lvlRows.Close()

	for lvlRows.Next() {
		var equipmentID int32
		var lv data.EquipmentLevel
		if err := lvlRows.Scan(&equipmentID, &lv.Level, &lv.BlacksmithLevel); err != nil {
			return nil, fmt.Errorf("scanning equipment level: %w", err)
		}
		i, ok := byID[equipmentID]
		if !ok {
			return nil, fmt.Errorf("equipment level references unknown equipment %d", equipmentID)
		}
		equipment[i].Levels = append(equipment[i].Levels, lv)
	}
	return equipment, lvlRows.Err()
}

func (r *ReferenceRepository) loadPets(ctx context.Context) ([]data.PetDefinition, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM pets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying pets: %w", err)
	}
	defer rows.Close()

	var pets []data.PetDefinition
	byID := make(map[int32]int)
	for rows.Next() {
		var p data.PetDefinition
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scanning pet: %w", err)
		}
		byID[p.ID] = len(pets)
		pets = append(pets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	lvlRows, err := r.pool.Query(ctx,
		`SELECT pet_id, level, pet_house_level FROM pet_levels ORDER BY pet_id, level`)
	if err != nil {
		return nil, fmt.Errorf("querying pet levels: %w", err)
	}
	defer lvlRows.Close()

	for lvlRows.Next() {
		var petID int32
		var lv data.PetLevel
		if err := lvlRows.Scan(&petID, &lv.Level, &lv.PetHouseLevel); err != nil {
			return nil, fmt.Errorf("scanning pet level: %w", err)
		}
		i, ok := byID[petID]
		if !ok {
			return nil, fmt.Errorf("pet level references unknown pet %d", petID)
		}
		pets[i].Levels = append(pets[i].Levels, lv)
	}
	return pets, lvlRows.Err()
}
