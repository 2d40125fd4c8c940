package model

import (
	"testing"

	"github.com/google/uuid"
)

func testPersonType() PersonType {
	return PersonType{
		ID:         uuid.New(),
		Key:        "ember-adept",
		Name:       "Ember Adept",
		SpeciesID:  uuid.New(),
		DaoID:      uuid.New(),
		TitleID:    uuid.New(),
		Cost:       25,
		WaveWeight: 10,
	}
}

func TestPersonType_ApplyOverrides_Empty(t *testing.T) {
	pt := testPersonType()
	stats := ComposedStats{Health: 150, Damage: 20, AttackSpeed: 1000, Range: 70, MovementSpeed: 1.0}

	got := pt.ApplyOverrides(stats)

	if got != stats {
		t.Errorf("ApplyOverrides() = %+v, want unchanged %+v", got, stats)
	}
}

func TestPersonType_ApplyOverrides_Sparse(t *testing.T) {
	pt := testPersonType()
	pt.Overrides = StatOverrides{
		Health: Float64(999),
		Range:  Float64(5),
	}
	stats := ComposedStats{Health: 150, Damage: 20, AttackSpeed: 1000, Range: 70, MovementSpeed: 1.0}

	got := pt.ApplyOverrides(stats)

	if got.Health != 999 {
		t.Errorf("Health = %v, want 999", got.Health)
	}
	if got.Range != 5 {
		t.Errorf("Range = %v, want 5", got.Range)
	}
	if got.Damage != 20 || got.AttackSpeed != 1000 || got.MovementSpeed != 1.0 {
		t.Errorf("untouched fields changed: %+v", got)
	}
	// Input block passed by value; original must be intact.
	if stats.Health != 150 {
		t.Errorf("input stats mutated: %+v", stats)
	}
}

func TestPersonType_Validate_Unresolved(t *testing.T) {
	pt := testPersonType()
	pt.DaoID = uuid.Nil

	if err := pt.Validate(); err == nil {
		t.Error("Validate() = nil, want unresolved-reference error")
	}
}

func TestPersonType_Validate_BadAttackSpeedOverride(t *testing.T) {
	pt := testPersonType()
	pt.Overrides.AttackSpeed = Float64(0)

	if err := pt.Validate(); err == nil {
		t.Error("Validate() = nil, want positive-attack-speed error")
	}
}
