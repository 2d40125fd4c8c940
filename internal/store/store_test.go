package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/slopworks/cultivator/internal/model"
)

type fakeSources struct {
	species     map[uuid.UUID]model.Species
	daos        map[uuid.UUID]model.Dao
	titles      map[uuid.UUID]model.Title
	personTypes map[uuid.UUID]model.PersonType
	calls       int
}

type speciesSource struct{ f *fakeSources }

func (s speciesSource) Get(_ context.Context, id uuid.UUID) (model.Species, error) {
	s.f.calls++
	rec, ok := s.f.species[id]
	if !ok {
		return model.Species{}, context.Canceled // any error will do for the store
	}
	return rec, nil
}

type daoSource struct{ f *fakeSources }

func (s daoSource) Get(_ context.Context, id uuid.UUID) (model.Dao, error) {
	s.f.calls++
	rec, ok := s.f.daos[id]
	if !ok {
		return model.Dao{}, context.Canceled
	}
	return rec, nil
}

type titleSource struct{ f *fakeSources }

func (s titleSource) Get(_ context.Context, id uuid.UUID) (model.Title, error) {
	s.f.calls++
	rec, ok := s.f.titles[id]
	if !ok {
		return model.Title{}, context.Canceled
	}
	return rec, nil
}

type personTypeSource struct{ f *fakeSources }

func (s personTypeSource) Get(_ context.Context, id uuid.UUID) (model.PersonType, error) {
	s.f.calls++
	rec, ok := s.f.personTypes[id]
	if !ok {
		return model.PersonType{}, context.Canceled
	}
	return rec, nil
}

func newTestStore(t *testing.T) (*Store, *fakeSources, model.Species, model.Dao, model.Title) {
	t.Helper()

	species := model.Species{ID: uuid.New(), Key: "ember-fox", Name: "Ember Fox",
		BaseStats: model.BaseStats{Health: 100, MovementSpeed: 1}}
	dao := model.Dao{ID: uuid.New(), Key: "blazing-palm", Name: "Blazing Palm",
		CombatStats: model.CombatStats{Damage: 10, AttackSpeed: 1000, Range: 50, AttackPattern: model.AttackMelee}}
	title := model.Title{ID: uuid.New(), Key: "venerable", Name: "Venerable"}

	f := &fakeSources{
		species:     map[uuid.UUID]model.Species{species.ID: species},
		daos:        map[uuid.UUID]model.Dao{dao.ID: dao},
		titles:      map[uuid.UUID]model.Title{title.ID: title},
		personTypes: map[uuid.UUID]model.PersonType{},
	}
	s := New(speciesSource{f}, daoSource{f}, titleSource{f}, personTypeSource{f}, NewMemoryCache(), time.Minute)
	return s, f, species, dao, title
}

func TestStore_ResolveTriple(t *testing.T) {
	s, _, species, dao, title := newTestStore(t)

	gotSpecies, gotDao, gotTitle, err := s.ResolveTriple(context.Background(), species.ID, dao.ID, title.ID)
	require.NoError(t, err)
	require.Equal(t, species, gotSpecies)
	require.Equal(t, dao.Key, gotDao.Key)
	require.Equal(t, title.Key, gotTitle.Key)
}

func TestStore_ResolveTriple_MissingReference(t *testing.T) {
	s, _, species, dao, _ := newTestStore(t)

	_, _, _, err := s.ResolveTriple(context.Background(), species.ID, dao.ID, uuid.New())
	require.Error(t, err)
	require.Contains(t, err.Error(), "resolving title")
}

func TestStore_CachesReads(t *testing.T) {
	s, f, species, _, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Species(ctx, species.ID)
	require.NoError(t, err)
	_, err = s.Species(ctx, species.ID)
	require.NoError(t, err)

	require.Equal(t, 1, f.calls, "second read must be served from cache")
}

func TestStore_InvalidateForcesReload(t *testing.T) {
	s, f, species, _, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Species(ctx, species.ID)
	require.NoError(t, err)

	// Editor writes a new health value and invalidates.
	updated := species
	updated.BaseStats.Health = 120
	f.species[species.ID] = updated
	s.InvalidateSpecies(species.ID)

	got, err := s.Species(ctx, species.ID)
	require.NoError(t, err)
	require.Equal(t, 120.0, got.BaseStats.Health)
	require.Equal(t, 2, f.calls)
}
