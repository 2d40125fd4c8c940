// Package store resolves content records by id for composition, fronting
// the database repositories with an injected TTL cache. The editor
// invalidates on every write, so previews never show stale records for
// longer than one cache miss.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/slopworks/cultivator/internal/model"
)

// SpeciesSource loads species records by id.
type SpeciesSource interface {
	Get(ctx context.Context, id uuid.UUID) (model.Species, error)
}

// DaoSource loads dao records by id.
type DaoSource interface {
	Get(ctx context.Context, id uuid.UUID) (model.Dao, error)
}

// TitleSource loads title records by id.
type TitleSource interface {
	Get(ctx context.Context, id uuid.UUID) (model.Title, error)
}

// PersonTypeSource loads person type records by id.
type PersonTypeSource interface {
	Get(ctx context.Context, id uuid.UUID) (model.PersonType, error)
}

// Store is the composition data store: key-based lookup of Species, Dao,
// Title and PersonType records with read-through caching.
type Store struct {
	species     SpeciesSource
	daos        DaoSource
	titles      TitleSource
	personTypes PersonTypeSource
	cache       Cache
	ttl         time.Duration
}

// New creates a store over the given sources. ttl bounds how long a cached
// record may serve reads before the source is consulted again.
func New(species SpeciesSource, daos DaoSource, titles TitleSource, personTypes PersonTypeSource, cache Cache, ttl time.Duration) *Store {
	return &Store{
		species:     species,
		daos:        daos,
		titles:      titles,
		personTypes: personTypes,
		cache:       cache,
		ttl:         ttl,
	}
}

func speciesKey(id uuid.UUID) string { return "species/" + id.String() }
func daoKey(id uuid.UUID) string     { return "dao/" + id.String() }
func titleKey(id uuid.UUID) string   { return "title/" + id.String() }
func personKey(id uuid.UUID) string  { return "person/" + id.String() }

// Species returns the species record by id.
func (s *Store) Species(ctx context.Context, id uuid.UUID) (model.Species, error) {
	if v, ok := s.cache.Get(speciesKey(id)); ok {
		return v.(model.Species), nil
	}
	rec, err := s.species.Get(ctx, id)
	if err != nil {
		return model.Species{}, err
	}
	s.cache.Set(speciesKey(id), rec, s.ttl)
	return rec, nil
}

// Dao returns the dao record by id.
func (s *Store) Dao(ctx context.Context, id uuid.UUID) (model.Dao, error) {
	if v, ok := s.cache.Get(daoKey(id)); ok {
		return v.(model.Dao), nil
	}
	rec, err := s.daos.Get(ctx, id)
	if err != nil {
		return model.Dao{}, err
	}
	s.cache.Set(daoKey(id), rec, s.ttl)
	return rec, nil
}

// Title returns the title record by id.
func (s *Store) Title(ctx context.Context, id uuid.UUID) (model.Title, error) {
	if v, ok := s.cache.Get(titleKey(id)); ok {
		return v.(model.Title), nil
	}
	rec, err := s.titles.Get(ctx, id)
	if err != nil {
		return model.Title{}, err
	}
	s.cache.Set(titleKey(id), rec, s.ttl)
	return rec, nil
}

// PersonType returns the person type record by id.
func (s *Store) PersonType(ctx context.Context, id uuid.UUID) (model.PersonType, error) {
	if v, ok := s.cache.Get(personKey(id)); ok {
		return v.(model.PersonType), nil
	}
	rec, err := s.personTypes.Get(ctx, id)
	if err != nil {
		return model.PersonType{}, err
	}
	s.cache.Set(personKey(id), rec, s.ttl)
	return rec, nil
}

// ResolveTriple loads the three records a composition needs. It fails if
// any reference is unresolved; callers only compose after a successful
// resolve.
func (s *Store) ResolveTriple(ctx context.Context, speciesID, daoID, titleID uuid.UUID) (model.Species, model.Dao, model.Title, error) {
	species, err := s.Species(ctx, speciesID)
	if err != nil {
		return model.Species{}, model.Dao{}, model.Title{}, fmt.Errorf("resolving species: %w", err)
	}
	dao, err := s.Dao(ctx, daoID)
	if err != nil {
		return model.Species{}, model.Dao{}, model.Title{}, fmt.Errorf("resolving dao: %w", err)
	}
	title, err := s.Title(ctx, titleID)
	if err != nil {
		return model.Species{}, model.Dao{}, model.Title{}, fmt.Errorf("resolving title: %w", err)
	}
	return species, dao, title, nil
}

// InvalidateSpecies drops the cached species record.
func (s *Store) InvalidateSpecies(id uuid.UUID) { s.cache.Invalidate(speciesKey(id)) }

// InvalidateDao drops the cached dao record.
func (s *Store) InvalidateDao(id uuid.UUID) { s.cache.Invalidate(daoKey(id)) }

// InvalidateTitle drops the cached title record.
func (s *Store) InvalidateTitle(id uuid.UUID) { s.cache.Invalidate(titleKey(id)) }

// InvalidatePersonType drops the cached person type record.
func (s *Store) InvalidatePersonType(id uuid.UUID) { s.cache.Invalidate(personKey(id)) }
