package model

import (
	"strings"
	"testing"
)

func testSpecies() Species {
	return Species{
		Key:   "ember-fox",
		Name:  "Ember Fox",
		Emoji: "🦊",
		BaseStats: BaseStats{
			Health:        100,
			MovementSpeed: 1.0,
		},
	}
}

func testDao() Dao {
	return Dao{
		Key:   "blazing-palm",
		Name:  "Blazing Palm",
		Emoji: "🔥",
		CombatStats: CombatStats{
			Damage:        10,
			AttackSpeed:   1000,
			Range:         50,
			AttackPattern: AttackMelee,
		},
		CompatibleSkills: []string{"flame-burst", "cinder-step"},
	}
}

// TestCompose_EmptyBonuses verifies the identity property: a title with no
// bonuses passes the Species/Dao base through untouched.
func TestCompose_EmptyBonuses(t *testing.T) {
	species := testSpecies()
	dao := testDao()
	title := Title{Key: "nobody", Name: "Nobody"}

	got := ComposeCultivatorStats(species, dao, title)

	if got.Health != species.BaseStats.Health {
		t.Errorf("Health = %v, want %v", got.Health, species.BaseStats.Health)
	}
	if got.Damage != dao.CombatStats.Damage {
		t.Errorf("Damage = %v, want %v", got.Damage, dao.CombatStats.Damage)
	}
	if got.AttackSpeed != dao.CombatStats.AttackSpeed {
		t.Errorf("AttackSpeed = %v, want %v", got.AttackSpeed, dao.CombatStats.AttackSpeed)
	}
	if got.Range != dao.CombatStats.Range {
		t.Errorf("Range = %v, want %v", got.Range, dao.CombatStats.Range)
	}
	if got.MovementSpeed != species.BaseStats.MovementSpeed {
		t.Errorf("MovementSpeed = %v, want %v", got.MovementSpeed, species.BaseStats.MovementSpeed)
	}
}

// TestCompose_HealthMultiplier verifies multiplicative scaling against the
// species base.
func TestCompose_HealthMultiplier(t *testing.T) {
	for _, base := range []float64{0, 1, 100, 250.5} {
		species := testSpecies()
		species.BaseStats.Health = base
		title := Title{Key: "hardy", Name: "Hardy", StatBonuses: StatBonuses{
			HealthMultiplier: Float64(2),
		}}

		got := ComposeCultivatorStats(species, testDao(), title)

		if got.Health != 2*base {
			t.Errorf("Health = %v, want %v (base %v)", got.Health, 2*base, base)
		}
	}
}

// TestCompose_RangeBonus verifies the flat range bonus is additive and
// independent of other bonuses.
func TestCompose_RangeBonus(t *testing.T) {
	dao := testDao()
	title := Title{Key: "farsight", Name: "Farsight", StatBonuses: StatBonuses{
		RangeBonus:       Float64(15),
		DamageMultiplier: Float64(3),
	}}

	got := ComposeCultivatorStats(testSpecies(), dao, title)

	if got.Range != dao.CombatStats.Range+15 {
		t.Errorf("Range = %v, want %v", got.Range, dao.CombatStats.Range+15)
	}
}

// TestCompose_Deterministic verifies two calls with identical inputs return
// bitwise-identical output.
func TestCompose_Deterministic(t *testing.T) {
	species := testSpecies()
	dao := testDao()
	title := Title{Key: "venerable", Name: "Venerable", StatBonuses: StatBonuses{
		HealthMultiplier:        Float64(1.37),
		AttackSpeedMultiplier:   Float64(0.91),
		MovementSpeedMultiplier: Float64(1.11),
	}}

	first := ComposeCultivatorStats(species, dao, title)
	second := ComposeCultivatorStats(species, dao, title)

	if first != second {
		t.Errorf("repeated composition differs: %+v vs %+v", first, second)
	}
}

// TestCompose_DoesNotMutateInputs verifies composition never writes back
// into the three records.
func TestCompose_DoesNotMutateInputs(t *testing.T) {
	species := testSpecies()
	dao := testDao()
	title := Title{Key: "venerable", Name: "Venerable", StatBonuses: StatBonuses{
		HealthMultiplier: Float64(1.5),
		RangeBonus:       Float64(20),
	}}

	speciesBefore := species
	daoBefore := dao
	skillsBefore := append([]string(nil), dao.CompatibleSkills...)
	bonusesBefore := title.StatBonuses

	ComposeCultivatorStats(species, dao, title)

	if species != speciesBefore {
		t.Errorf("species mutated: %+v", species)
	}
	if dao.CombatStats != daoBefore.CombatStats || dao.Key != daoBefore.Key {
		t.Errorf("dao mutated: %+v", dao)
	}
	for i, id := range dao.CompatibleSkills {
		if id != skillsBefore[i] {
			t.Errorf("dao skills mutated at %d: %q", i, id)
		}
	}
	if *title.StatBonuses.HealthMultiplier != *bonusesBefore.HealthMultiplier ||
		*title.StatBonuses.RangeBonus != *bonusesBefore.RangeBonus {
		t.Errorf("title bonuses mutated: %+v", title.StatBonuses)
	}
}

// TestCompose_FullScenario pins the combined scenario:
// health 100×1.5=150, damage 10×2=20, attackSpeed 1000 (no multiplier),
// range 50+20=70, movementSpeed 1.0 (no multiplier).
func TestCompose_FullScenario(t *testing.T) {
	title := Title{Key: "venerable", Name: "Venerable", StatBonuses: StatBonuses{
		HealthMultiplier: Float64(1.5),
		DamageMultiplier: Float64(2),
		RangeBonus:       Float64(20),
	}}

	got := ComposeCultivatorStats(testSpecies(), testDao(), title)

	want := ComposedStats{
		Health:        150,
		Damage:        20,
		AttackSpeed:   1000,
		Range:         70,
		MovementSpeed: 1.0,
		DisplayName:   got.DisplayName,
	}
	if got != want {
		t.Errorf("ComposeCultivatorStats() = %+v, want %+v", got, want)
	}
}

// TestCompose_AttackSpeedMultiplier pins the inverted semantics: the field
// is ms between attacks, so a 0.5 multiplier halves the interval and the
// unit attacks twice as fast.
func TestCompose_AttackSpeedMultiplier(t *testing.T) {
	title := Title{Key: "swift", Name: "Swift", StatBonuses: StatBonuses{
		AttackSpeedMultiplier: Float64(0.5),
	}}

	got := ComposeCultivatorStats(testSpecies(), testDao(), title)

	if got.AttackSpeed != 500 {
		t.Errorf("AttackSpeed = %v, want 500 (interval halved)", got.AttackSpeed)
	}
}

// TestCompose_DisplayName verifies the label is non-empty and mentions all
// three names. The exact format is cosmetic.
func TestCompose_DisplayName(t *testing.T) {
	title := Title{Key: "venerable", Name: "Venerable"}

	got := ComposeCultivatorStats(testSpecies(), testDao(), title)

	if got.DisplayName == "" {
		t.Fatal("DisplayName is empty")
	}
	for _, part := range []string{"Venerable", "Ember Fox", "Blazing Palm"} {
		if !strings.Contains(got.DisplayName, part) {
			t.Errorf("DisplayName %q missing %q", got.DisplayName, part)
		}
	}
}
