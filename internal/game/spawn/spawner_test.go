package spawn

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/slopworks/cultivator/internal/model"
)

type fakeResolver struct {
	personTypes map[uuid.UUID]model.PersonType
	species     model.Species
	dao         model.Dao
	title       model.Title
}

func (f *fakeResolver) PersonType(_ context.Context, id uuid.UUID) (model.PersonType, error) {
	pt, ok := f.personTypes[id]
	if !ok {
		return model.PersonType{}, fmt.Errorf("person type %s: not found", id)
	}
	return pt, nil
}

func (f *fakeResolver) ResolveTriple(_ context.Context, speciesID, daoID, titleID uuid.UUID) (model.Species, model.Dao, model.Title, error) {
	if speciesID != f.species.ID || daoID != f.dao.ID || titleID != f.title.ID {
		return model.Species{}, model.Dao{}, model.Title{}, fmt.Errorf("dangling reference")
	}
	return f.species, f.dao, f.title, nil
}

func newFakeResolver() (*fakeResolver, model.PersonType) {
	species := model.Species{ID: uuid.New(), Key: "ember-fox", Name: "Ember Fox",
		BaseStats: model.BaseStats{Health: 100, MovementSpeed: 1.0}}
	dao := model.Dao{ID: uuid.New(), Key: "blazing-palm", Name: "Blazing Palm",
		CombatStats: model.CombatStats{Damage: 10, AttackSpeed: 1000, Range: 50, AttackPattern: model.AttackMelee},
		CompatibleSkills: []string{"flame-burst"}}
	title := model.Title{ID: uuid.New(), Key: "venerable", Name: "Venerable",
		StatBonuses: model.StatBonuses{
			HealthMultiplier: model.Float64(1.5),
			DamageMultiplier: model.Float64(2),
			RangeBonus:       model.Float64(20),
		}}
	pt := model.PersonType{
		ID: uuid.New(), Key: "ember-adept", Name: "Ember Adept",
		SpeciesID: species.ID, DaoID: dao.ID, TitleID: title.ID,
	}
	return &fakeResolver{
		personTypes: map[uuid.UUID]model.PersonType{pt.ID: pt},
		species:     species, dao: dao, title: title,
	}, pt
}

func TestSpawner_Spawn(t *testing.T) {
	resolver, pt := newFakeResolver()
	spawner := NewSpawner(resolver)

	unit, err := spawner.Spawn(context.Background(), pt.ID)
	require.NoError(t, err)

	require.Equal(t, "ember-adept", unit.PersonTypeKey)
	require.Equal(t, 150.0, unit.Stats.Health)
	require.Equal(t, 20.0, unit.Stats.Damage)
	require.Equal(t, 1000.0, unit.Stats.AttackSpeed)
	require.Equal(t, 70.0, unit.Stats.Range)
	require.Equal(t, 1.0, unit.Stats.MovementSpeed)
	require.Equal(t, model.AttackMelee, unit.AttackPattern)
	require.Equal(t, []string{"flame-burst"}, unit.Skills)
	require.NotEmpty(t, unit.DisplayName)
}

func TestSpawner_OverridesApplyAfterComposition(t *testing.T) {
	resolver, pt := newFakeResolver()
	pt.Overrides.Health = model.Float64(999)
	resolver.personTypes[pt.ID] = pt
	spawner := NewSpawner(resolver)

	unit, err := spawner.Spawn(context.Background(), pt.ID)
	require.NoError(t, err)
	require.Equal(t, 999.0, unit.Stats.Health)
	// Other stats still come from composition.
	require.Equal(t, 20.0, unit.Stats.Damage)
}

func TestSpawner_UnknownPersonType(t *testing.T) {
	resolver, _ := newFakeResolver()
	spawner := NewSpawner(resolver)

	_, err := spawner.Spawn(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestSpawner_UnresolvedPersonType(t *testing.T) {
	resolver, pt := newFakeResolver()
	pt.TitleID = uuid.Nil
	resolver.personTypes[pt.ID] = pt
	spawner := NewSpawner(resolver)

	_, err := spawner.Spawn(context.Background(), pt.ID)
	require.ErrorContains(t, err, "unresolved")
}
