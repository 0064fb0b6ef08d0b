package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/armygo/internal/data"
)

// SeedReference наполняет пустые справочные таблицы встроенным сидом.
// No-op если таблица town_halls уже содержит строки: обновление справочника
// происходит миграциями и редеплоем, не на лету.
func SeedReference(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM town_halls`).Scan(&count); err != nil {
		return fmt.Errorf("checking town_halls: %w", err)
	}
	if count > 0 {
		return nil
	}

	tiers, units, equipment, pets := data.DefaultRecords()

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, t := range tiers {
		if _, err := tx.Exec(ctx,
			`INSERT INTO town_halls (
			    level, max_barrack, max_dark_barrack, max_laboratory, max_spell_factory,
			    max_dark_spell_factory, max_workshop, max_blacksmith, max_pet_house, max_clan_castle,
			    max_barbarian_king, max_archer_queen, max_grand_warden, max_royal_champion, max_minion_prince,
			    troop_capacity, spell_capacity, siege_capacity,
			    cc_troop_capacity, cc_spell_capacity, cc_siege_capacity, cc_laboratory_cap)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)`,
			t.Level, t.MaxBarrack, t.MaxDarkBarrack, t.MaxLaboratory, t.MaxSpellFactory,
			t.MaxDarkSpellFactory, t.MaxWorkshop, t.MaxBlacksmith, t.MaxPetHouse, t.MaxClanCastle,
			t.MaxBarbarianKing, t.MaxArcherQueen, t.MaxGrandWarden, t.MaxRoyalChampion, t.MaxMinionPrince,
			t.TroopCapacity, t.SpellCapacity, t.SiegeCapacity,
			t.CcTroopCapacity, t.CcSpellCapacity, t.CcSiegeCapacity, t.CcLaboratoryCap,
		); err != nil {
			return fmt.Errorf("seeding town hall %d: %w", t.Level, err)
		}
	}

	for _, u := range units {
		if _, err := tx.Exec(ctx,
			`INSERT INTO units (id, name, kind, is_super, flying, jumping, targets_air,
			                    production, housing_space, training_time, regular_counterpart)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			u.ID, u.Name, int32(u.Kind), u.IsSuper, u.Flying, u.Jumping, u.TargetsAir,
			int32(u.Production), u.HousingSpace, u.TrainingTime, u.RegularCounterpart,
		); err != nil {
			return fmt.Errorf("seeding unit %q: %w", u.Name, err)
		}
		for _, lv := range u.Levels {
			if _, err := tx.Exec(ctx,
				`INSERT INTO unit_levels (unit_id, level, building_level, laboratory_level)
				 VALUES ($1,$2,$3,$4)`,
				u.ID, lv.Level, lv.BuildingLevel, lv.LaboratoryLevel,
			); err != nil {
				return fmt.Errorf("seeding unit %q level %d: %w", u.Name, lv.Level, err)
			}
		}
	}

	for _, e := range equipment {
		if _, err := tx.Exec(ctx,
			`INSERT INTO equipment (id, name, hero, epic) VALUES ($1,$2,$3,$4)`,
			e.ID, e.Name, string(e.Hero), e.Epic,
		); err != nil {
			return fmt.Errorf("seeding equipment %q: %w", e.Name, err)
		}
		for _, lv := range e.Levels {
			if _, err := tx.Exec(ctx,
				`INSERT INTO equipment_levels (equipment_id, level, blacksmith_level)
				 VALUES ($1,$2,$3)`,
				e.ID, lv.Level, lv.BlacksmithLevel,
			); err != nil {
				return fmt.Errorf("seeding equipment %q level %d: %w", e.Name, lv.Level, err)
			}
		}
	}

	for _, p := range pets {
		if _, err := tx.Exec(ctx, `INSERT INTO pets (id, name) VALUES ($1,$2)`, p.ID, p.Name); err != nil {
			return fmt.Errorf("seeding pet %q: %w", p.Name, err)
		}
		for _, lv := range p.Levels {
			if _, err := tx.Exec(ctx,
				`INSERT INTO pet_levels (pet_id, level, pet_house_level) VALUES ($1,$2,$3)`,
				p.ID, lv.Level, lv.PetHouseLevel,
			); err != nil {
				return fmt.Errorf("seeding pet %q level %d: %w", p.Name, lv.Level, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	slog.Info("reference tables seeded",
		"town_halls", len(tiers), "units", len(units), "equipment", len(equipment), "pets", len(pets))
	return nil
}
