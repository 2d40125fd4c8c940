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

// PersonTypeRepository handles person type CRUD operations.
type PersonTypeRepository struct {
	pool *pgxpool.Pool
}

// NewPersonTypeRepository creates a new person type repository.
func NewPersonTypeRepository(pool *pgxpool.Pool) *PersonTypeRepository {
	return &PersonTypeRepository{pool: pool}
}

const personTypeColumns = `id, key, name, species_id, dao_id, title_id, cost, wave_weight,
	ovr_health, ovr_damage, ovr_attack_speed, ovr_range, ovr_movement_speed`

func scanPersonType(row pgx.Row) (model.PersonType, error) {
	var p model.PersonType
	err := row.Scan(&p.ID, &p.Key, &p.Name, &p.SpeciesID, &p.DaoID, &p.TitleID,
		&p.Cost, &p.WaveWeight,
		&p.Overrides.Health, &p.Overrides.Damage, &p.Overrides.AttackSpeed,
		&p.Overrides.Range, &p.Overrides.MovementSpeed)
	if err != nil {
		return model.PersonType{}, err
	}
	return p, nil
}

// Get loads a person type by id.
func (r *PersonTypeRepository) Get(ctx context.Context, id uuid.UUID) (model.PersonType, error) {
	p, err := scanPersonType(r.pool.QueryRow(ctx,
		`SELECT `+personTypeColumns+` FROM person_types WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PersonType{}, fmt.Errorf("person type %s: %w", id, ErrNotFound)
		}
		return model.PersonType{}, fmt.Errorf("loading person type %s: %w", id, err)
	}
	return p, nil
}

// GetByKey loads a person type by its slug.
func (r *PersonTypeRepository) GetByKey(ctx context.Context, key string) (model.PersonType, error) {
	p, err := scanPersonType(r.pool.QueryRow(ctx,
		`SELECT `+personTypeColumns+` FROM person_types WHERE key = $1`, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PersonType{}, fmt.Errorf("person type %q: %w", key, ErrNotFound)
		}
		return model.PersonType{}, fmt.Errorf("loading person type %q: %w", key, err)
	}
	return p, nil
}

// List loads all person types ordered by key.
func (r *PersonTypeRepository) List(ctx context.Context) ([]model.PersonType, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+personTypeColumns+` FROM person_types ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing person types: %w", err)
	}
	defer rows.Close()

	var out []model.PersonType
	for rows.Next() {
		p, err := scanPersonType(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning person type row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating person type rows: %w", err)
	}
	return out, nil
}

// Save upserts a person type record by id. Foreign keys guarantee the
// referenced species/dao/title rows exist.
func (r *PersonTypeRepository) Save(ctx context.Context, p model.PersonType) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO person_types (id, key, name, species_id, dao_id, title_id, cost, wave_weight,
		   ovr_health, ovr_damage, ovr_attack_speed, ovr_range, ovr_movement_speed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO UPDATE SET
		   key = EXCLUDED.key,
		   name = EXCLUDED.name,
		   species_id = EXCLUDED.species_id,
		   dao_id = EXCLUDED.dao_id,
		   title_id = EXCLUDED.title_id,
		   cost = EXCLUDED.cost,
		   wave_weight = EXCLUDED.wave_weight,
		   ovr_health = EXCLUDED.ovr_health,
		   ovr_damage = EXCLUDED.ovr_damage,
		   ovr_attack_speed = EXCLUDED.ovr_attack_speed,
		   ovr_range = EXCLUDED.ovr_range,
		   ovr_movement_speed = EXCLUDED.ovr_movement_speed`,
		p.ID, p.Key, p.Name, p.SpeciesID, p.DaoID, p.TitleID, p.Cost, p.WaveWeight,
		p.Overrides.Health, p.Overrides.Damage, p.Overrides.AttackSpeed,
		p.Overrides.Range, p.Overrides.MovementSpeed,
	)
	if err != nil {
		return fmt.Errorf("saving person type %q: %w", p.Key, err)
	}
	return nil
}

// Delete removes a person type by id.
func (r *PersonTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM person_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting person type %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("person type %s: %w", id, ErrNotFound)
	}
	return nil
}
