package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/slopworks/cultivator/internal/model"
)

// TitleRepository handles title content CRUD operations.
type TitleRepository struct {
	pool *pgxpool.Pool
}

// NewTitleRepository creates a new title repository.
func NewTitleRepository(pool *pgxpool.Pool) *TitleRepository {
	return &TitleRepository{pool: pool}
}

func scanTitle(row pgx.Row) (model.Title, error) {
	var t model.Title
	err := row.Scan(&t.ID, &t.Key, &t.Name, &t.Emoji, &t.PrestigeLevel,
		&t.StatBonuses.HealthMultiplier,
		&t.StatBonuses.DamageMultiplier,
		&t.StatBonuses.AttackSpeedMultiplier,
		&t.StatBonuses.RangeBonus,
		&t.StatBonuses.MovementSpeedMultiplier)
	if err != nil {
		return model.Title{}, err
	}
	return t, nil
}

const titleColumns = `id, key, name, emoji, prestige_level,
	health_multiplier, damage_multiplier, attack_speed_multiplier,
	range_bonus, movement_speed_multiplier`

// Get loads a title by id.
func (r *TitleRepository) Get(ctx context.Context, id uuid.UUID) (model.Title, error) {
	t, err := scanTitle(r.pool.QueryRow(ctx,
		`SELECT `+titleColumns+` FROM titles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Title{}, fmt.Errorf("title %s: %w", id, ErrNotFound)
		}
		return model.Title{}, fmt.Errorf("loading title %s: %w", id, err)
	}
	return t, nil
}

// GetByKey loads a title by its slug.
func (r *TitleRepository) GetByKey(ctx context.Context, key string) (model.Title, error) {
	t, err := scanTitle(r.pool.QueryRow(ctx,
		`SELECT `+titleColumns+` FROM titles WHERE key = $1`, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Title{}, fmt.Errorf("title %q: %w", key, ErrNotFound)
		}
		return model.Title{}, fmt.Errorf("loading title %q: %w", key, err)
	}
	return t, nil
}

// List loads all titles ordered by prestige level, then key.
func (r *TitleRepository) List(ctx context.Context) ([]model.Title, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+titleColumns+` FROM titles ORDER BY prestige_level, key`)
	if err != nil {
		return nil, fmt.Errorf("listing titles: %w", err)
	}
	defer rows.Close()

	var out []model.Title
	for rows.Next() {
		t, err := scanTitle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning title row: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating title rows: %w", err)
	}
	return out, nil
}

// Save upserts a title record by id.
func (r *TitleRepository) Save(ctx context.Context, t model.Title) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO titles (id, key, name, emoji, prestige_level,
		   health_multiplier, damage_multiplier, attack_speed_multiplier,
		   range_bonus, movement_speed_multiplier)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		   key = EXCLUDED.key,
		   name = EXCLUDED.name,
		   emoji = EXCLUDED.emoji,
		   prestige_level = EXCLUDED.prestige_level,
		   health_multiplier = EXCLUDED.health_multiplier,
		   damage_multiplier = EXCLUDED.damage_multiplier,
		   attack_speed_multiplier = EXCLUDED.attack_speed_multiplier,
		   range_bonus = EXCLUDED.range_bonus,
		   movement_speed_multiplier = EXCLUDED.movement_speed_multiplier`,
		t.ID, t.Key, t.Name, t.Emoji, t.PrestigeLevel,
		t.StatBonuses.HealthMultiplier,
		t.StatBonuses.DamageMultiplier,
		t.StatBonuses.AttackSpeedMultiplier,
		t.StatBonuses.RangeBonus,
		t.StatBonuses.MovementSpeedMultiplier,
	)
	if err != nil {
		return fmt.Errorf("saving title %q: %w", t.Key, err)
	}
	return nil
}

// Delete removes a title by id.
func (r *TitleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM titles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting title %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("title %s: %w", id, ErrNotFound)
	}
	return nil
}
