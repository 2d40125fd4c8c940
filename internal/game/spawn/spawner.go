// Package spawn turns persisted person types into live units: resolve the
// content triple, compose the stat block, then apply authored overrides.
package spawn

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/slopworks/cultivator/internal/model"
)

// ContentResolver is the lookup surface the spawner needs; internal/store
// satisfies it.
type ContentResolver interface {
	PersonType(ctx context.Context, id uuid.UUID) (model.PersonType, error)
	ResolveTriple(ctx context.Context, speciesID, daoID, titleID uuid.UUID) (model.Species, model.Dao, model.Title, error)
}

// Unit is a spawned combat unit. Stats are final: composed, then
// override-adjusted. Nothing rewrites them after spawn.
type Unit struct {
	ID            uuid.UUID           `json:"id"`
	PersonTypeKey string              `json:"personTypeKey"`
	DisplayName   string              `json:"displayName"`
	Stats         model.ComposedStats `json:"stats"`
	AttackPattern model.AttackPattern `json:"attackPattern"`
	Skills        []string            `json:"skills"`
	SpawnedAt     time.Time           `json:"spawnedAt"`
}

// Spawner builds units from person types.
type Spawner struct {
	content ContentResolver
}

// NewSpawner creates a Spawner over the given resolver.
func NewSpawner(content ContentResolver) *Spawner {
	return &Spawner{content: content}
}

// Spawn instantiates one unit from the person type. A person type with a
// dangling reference fails here, before composition is ever attempted.
func (s *Spawner) Spawn(ctx context.Context, personTypeID uuid.UUID) (*Unit, error) {
	pt, err := s.content.PersonType(ctx, personTypeID)
	if err != nil {
		return nil, fmt.Errorf("loading person type: %w", err)
	}
	if !pt.Resolved() {
		return nil, fmt.Errorf("person type %q has unresolved references", pt.Key)
	}

	species, dao, title, err := s.content.ResolveTriple(ctx, pt.SpeciesID, pt.DaoID, pt.TitleID)
	if err != nil {
		return nil, fmt.Errorf("person type %q: %w", pt.Key, err)
	}

	stats := pt.ApplyOverrides(model.ComposeCultivatorStats(species, dao, title))

	return &Unit{
		ID:            uuid.New(),
		PersonTypeKey: pt.Key,
		DisplayName:   stats.DisplayName,
		Stats:         stats,
		AttackPattern: dao.CombatStats.AttackPattern,
		Skills:        append([]string(nil), dao.CompatibleSkills...),
		SpawnedAt:     time.Now(),
	}, nil
}
