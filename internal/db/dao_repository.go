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

// DaoRepository handles dao content CRUD operations.
type DaoRepository struct {
	pool *pgxpool.Pool
}

// NewDaoRepository creates a new dao repository.
func NewDaoRepository(pool *pgxpool.Pool) *DaoRepository {
	return &DaoRepository{pool: pool}
}

func scanDao(row pgx.Row) (model.Dao, error) {
	var d model.Dao
	var pattern string
	err := row.Scan(&d.ID, &d.Key, &d.Name, &d.Emoji,
		&d.CombatStats.Damage, &d.CombatStats.AttackSpeed, &d.CombatStats.Range,
		&pattern, &d.CompatibleSkills)
	if err != nil {
		return model.Dao{}, err
	}
	d.CombatStats.AttackPattern = model.AttackPattern(pattern)
	return d, nil
}

// Get loads a dao by id.
func (r *DaoRepository) Get(ctx context.Context, id uuid.UUID) (model.Dao, error) {
	d, err := scanDao(r.pool.QueryRow(ctx,
		`SELECT id, key, name, emoji, damage, attack_speed, attack_range, attack_pattern, compatible_skills
		 FROM daos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Dao{}, fmt.Errorf("dao %s: %w", id, ErrNotFound)
		}
		return model.Dao{}, fmt.Errorf("loading dao %s: %w", id, err)
	}
	return d, nil
}

// GetByKey loads a dao by its slug.
func (r *DaoRepository) GetByKey(ctx context.Context, key string) (model.Dao, error) {
	d, err := scanDao(r.pool.QueryRow(ctx,
		`SELECT id, key, name, emoji, damage, attack_speed, attack_range, attack_pattern, compatible_skills
		 FROM daos WHERE key = $1`, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Dao{}, fmt.Errorf("dao %q: %w", key, ErrNotFound)
		}
		return model.Dao{}, fmt.Errorf("loading dao %q: %w", key, err)
	}
	return d, nil
}

// List loads all daos ordered by key.
func (r *DaoRepository) List(ctx context.Context) ([]model.Dao, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, key, name, emoji, damage, attack_speed, attack_range, attack_pattern, compatible_skills
		 FROM daos ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing daos: %w", err)
	}
	defer rows.Close()

	var out []model.Dao
	for rows.Next() {
		d, err := scanDao(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning dao row: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dao rows: %w", err)
	}
	return out, nil
}

// Save upserts a dao record by id.
func (r *DaoRepository) Save(ctx context.Context, d model.Dao) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO daos (id, key, name, emoji, damage, attack_speed, attack_range, attack_pattern, compatible_skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
		   key = EXCLUDED.key,
		   name = EXCLUDED.name,
		   emoji = EXCLUDED.emoji,
		   damage = EXCLUDED.damage,
		   attack_speed = EXCLUDED.attack_speed,
		   attack_range = EXCLUDED.attack_range,
		   attack_pattern = EXCLUDED.attack_pattern,
		   compatible_skills = EXCLUDED.compatible_skills`,
		d.ID, d.Key, d.Name, d.Emoji,
		d.CombatStats.Damage, d.CombatStats.AttackSpeed, d.CombatStats.Range,
		string(d.CombatStats.AttackPattern), d.CompatibleSkills,
	)
	if err != nil {
		return fmt.Errorf("saving dao %q: %w", d.Key, err)
	}
	return nil
}

// Delete removes a dao by id.
func (r *DaoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM daos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting dao %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dao %s: %w", id, ErrNotFound)
	}
	return nil
}
