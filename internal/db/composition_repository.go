package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/armygo/internal/army"
)

// CompositionRecord — сохранённая композиция вместе с метриками,
// которыми владеет хранилище (голоса, закладки, просмотры).
type CompositionRecord struct {
	Owner     string
	Payload   army.SavePayload
	Votes     int32
	Bookmarks int32
	Views     int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompositionRepository персистит композиции. Save принимает только уже
// провалидированный payload: валидатор отрабатывает целиком до любой записи.
type CompositionRepository struct {
	pool *pgxpool.Pool
}

// NewCompositionRepository создаёт repository поверх пула.
func NewCompositionRepository(pool *pgxpool.Pool) *CompositionRepository {
	return &CompositionRepository{pool: pool}
}

// Save сохраняет композицию (upsert по id, чтобы повторное сохранение при
// редактировании не плодило строки).
func (r *CompositionRepository) Save(ctx context.Context, owner string, p army.SavePayload) error {
	units, err := json.Marshal(p.Units)
	if err != nil {
		return fmt.Errorf("marshaling units: %w", err)
	}
	equipment, err := json.Marshal(p.Equipment)
	if err != nil {
		return fmt.Errorf("marshaling equipment: %w", err)
	}
	pets, err := json.Marshal(p.Pets)
	if err != nil {
		return fmt.Errorf("marshaling pets: %w", err)
	}
	var guide []byte
	if p.Guide != nil {
		if guide, err = json.Marshal(p.Guide); err != nil {
			return fmt.Errorf("marshaling guide: %w", err)
		}
	}
	tags := p.Tags
	if tags == nil {
		// nil encodes as SQL NULL, and the column is NOT NULL.
		tags = []string{}
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO compositions (id, owner, name, town_hall, units, equipment, pets, guide, tags, banner, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now())
		 ON CONFLICT (id) DO UPDATE SET
		     name = EXCLUDED.name,
		     town_hall = EXCLUDED.town_hall,
		     units = EXCLUDED.units,
		     equipment = EXCLUDED.equipment,
		     pets = EXCLUDED.pets,
		     guide = EXCLUDED.guide,
		     tags = EXCLUDED.tags,
		     banner = EXCLUDED.banner,
		     updated_at = now()
		 WHERE compositions.owner = EXCLUDED.owner`,
		p.ID, owner, p.Name, p.TownHall, units, equipment, pets, guide, tags, p.Banner,
	)
	if err != nil {
		return fmt.Errorf("saving composition %s: %w", p.ID, err)
	}
	return nil
}

// Get возвращает композицию по id. Returns nil, nil if not found.
func (r *CompositionRepository) Get(ctx context.Context, id uuid.UUID) (*CompositionRecord, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT owner, name, town_hall, units, equipment, pets, guide, tags, banner,
		        votes, bookmarks, views, created_at, updated_at
		 FROM compositions WHERE id = $1`, id)

	rec := CompositionRecord{Payload: army.SavePayload{ID: id}}
	var units, equipment, pets []byte
	var guide []byte
	err := row.Scan(
		&rec.Owner, &rec.Payload.Name, &rec.Payload.TownHall, &units, &equipment, &pets, &guide,
		&rec.Payload.Tags, &rec.Payload.Banner,
		&rec.Votes, &rec.Bookmarks, &rec.Views, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying composition %s: %w", id, err)
	}

	if err := json.Unmarshal(units, &rec.Payload.Units); err != nil {
		return nil, fmt.Errorf("unmarshaling units of %s: %w", id, err)
	}
	if err := json.Unmarshal(equipment, &rec.Payload.Equipment); err != nil {
		return nil, fmt.Errorf("unmarshaling equipment of %s: %w", id, err)
	}
	if err := json.Unmarshal(pets, &rec.Payload.Pets); err != nil {
		return nil, fmt.Errorf("unmarshaling pets of %s: %w", id, err)
	}
	if len(guide) > 0 {
		rec.Payload.Guide = &army.Guide{}
		if err := json.Unmarshal(guide, rec.Payload.Guide); err != nil {
			return nil, fmt.Errorf("unmarshaling guide of %s: %w", id, err)
		}
	}
	return &rec, nil
}

// ListByOwner возвращает id и названия композиций владельца.
func (r *CompositionRepository) ListByOwner(ctx context.Context, owner string) (map[uuid.UUID]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name FROM compositions WHERE owner = $1 ORDER BY updated_at DESC`, owner)
	if err != nil {
		return nil, fmt.Errorf("listing compositions of %q: %w", owner, err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]string)
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scanning composition row: %w", err)
		}
		out[id] = name
	}
	return out, rows.Err()
}

// Delete удаляет композицию владельца. Ownership is enforced in SQL.
func (r *CompositionRepository) Delete(ctx context.Context, id uuid.UUID, owner string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM compositions WHERE id = $1 AND owner = $2`, id, owner)
	if err != nil {
		return fmt.Errorf("deleting composition %s: %w", id, err)
	}
	return nil
}

// IncrementViews увеличивает счётчик просмотров.
func (r *CompositionRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE compositions SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("incrementing views of %s: %w", id, err)
	}
	return nil
}

// AddVote смещает счётчик голосов на delta (+1 / -1).
func (r *CompositionRepository) AddVote(ctx context.Context, id uuid.UUID, delta int32) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE compositions SET votes = votes + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("voting on composition %s: %w", id, err)
	}
	return nil
}

// AddBookmark смещает счётчик закладок на delta (+1 / -1).
func (r *CompositionRepository) AddBookmark(ctx context.Context, id uuid.UUID, delta int32) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE compositions SET bookmarks = bookmarks + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("bookmarking composition %s: %w", id, err)
	}
	return nil
}
