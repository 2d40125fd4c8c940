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

// SpeciesRepository handles species content CRUD operations.
type SpeciesRepository struct {
	pool *pgxpool.Pool
}

// NewSpeciesRepository creates a new species repository.
func NewSpeciesRepository(pool *pgxpool.Pool) *SpeciesRepository {
	return &SpeciesRepository{pool: pool}
}

// Get loads a species by id.
func (r *SpeciesRepository) Get(ctx context.Context, id uuid.UUID) (model.Species, error) {
	var s model.Species
	err := r.pool.QueryRow(ctx,
		`SELECT id, key, name, emoji, health, movement_speed
		 FROM species WHERE id = $1`, id,
	).Scan(&s.ID, &s.Key, &s.Name, &s.Emoji, &s.BaseStats.Health, &s.BaseStats.MovementSpeed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Species{}, fmt.Errorf("species %s: %w", id, ErrNotFound)
		}
		return model.Species{}, fmt.Errorf("loading species %s: %w", id, err)
	}
	return s, nil
}

// GetByKey loads a species by its slug.
func (r *SpeciesRepository) GetByKey(ctx context.Context, key string) (model.Species, error) {
	var s model.Species
	err := r.pool.QueryRow(ctx,
		`SELECT id, key, name, emoji, health, movement_speed
		 FROM species WHERE key = $1`, key,
	).Scan(&s.ID, &s.Key, &s.Name, &s.Emoji, &s.BaseStats.Health, &s.BaseStats.MovementSpeed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Species{}, fmt.Errorf("species %q: %w", key, ErrNotFound)
		}
		return model.Species{}, fmt.Errorf("loading species %q: %w", key, err)
	}
	return s, nil
}

// List loads all species ordered by key.
func (r *SpeciesRepository) List(ctx context.Context) ([]model.Species, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, key, name, emoji, health, movement_speed
		 FROM species ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing species: %w", err)
	}
	defer rows.Close()

	var out []model.Species
	for rows.Next() {
		var s model.Species
		if err := rows.Scan(&s.ID, &s.Key, &s.Name, &s.Emoji, &s.BaseStats.Health, &s.BaseStats.MovementSpeed); err != nil {
			return nil, fmt.Errorf("scanning species row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating species rows: %w", err)
	}
	return out, nil
}

// Save upserts a species record by id.
func (r *SpeciesRepository) Save(ctx context.Context, s model.Species) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO species (id, key, name, emoji, health, movement_speed)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
		   key = EXCLUDED.key,
		   name = EXCLUDED.name,
		   emoji = EXCLUDED.emoji,
		   health = EXCLUDED.health,
		   movement_speed = EXCLUDED.movement_speed`,
		s.ID, s.Key, s.Name, s.Emoji, s.BaseStats.Health, s.BaseStats.MovementSpeed,
	)
	if err != nil {
		return fmt.Errorf("saving species %q: %w", s.Key, err)
	}
	return nil
}

// Delete removes a species by id.
func (r *SpeciesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM species WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting species %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("species %s: %w", id, ErrNotFound)
	}
	return nil
}
