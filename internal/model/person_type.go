package model

import (
	"fmt"

	"github.com/google/uuid"
)

// StatOverrides are manually-authored flat replacements on a PersonType.
// A nil field keeps the composed value. Overrides are applied by the spawn
// layer after composition; the composer itself never sees them.
type StatOverrides struct {
	Health        *float64 `json:"health,omitempty"`
	Damage        *float64 `json:"damage,omitempty"`
	AttackSpeed   *float64 `json:"attackSpeed,omitempty"`
	Range         *float64 `json:"range,omitempty"`
	MovementSpeed *float64 `json:"movementSpeed,omitempty"`
}

// PersonType is a persisted game-unit definition: a Species/Dao/Title triple
// plus authored overrides and wave-placement weights.
type PersonType struct {
	ID         uuid.UUID     `json:"id"`
	Key        string        `json:"key"`
	Name       string        `json:"name"`
	SpeciesID  uuid.UUID     `json:"speciesId"`
	DaoID      uuid.UUID     `json:"daoId"`
	TitleID    uuid.UUID     `json:"titleId"`
	Cost       int           `json:"cost"`
	WaveWeight int           `json:"waveWeight"`
	Overrides  StatOverrides `json:"overrides"`
}

// Resolved reports whether all three content references are set. A
// PersonType that is not resolved must not be spawned or previewed.
func (p PersonType) Resolved() bool {
	return p.SpeciesID != uuid.Nil && p.DaoID != uuid.Nil && p.TitleID != uuid.Nil
}

// ApplyOverrides returns the stat block with authored overrides substituted.
// The input block is not modified.
func (p PersonType) ApplyOverrides(stats ComposedStats) ComposedStats {
	if v := p.Overrides.Health; v != nil {
		stats.Health = *v
	}
	if v := p.Overrides.Damage; v != nil {
		stats.Damage = *v
	}
	if v := p.Overrides.AttackSpeed; v != nil {
		stats.AttackSpeed = *v
	}
	if v := p.Overrides.Range; v != nil {
		stats.Range = *v
	}
	if v := p.Overrides.MovementSpeed; v != nil {
		stats.MovementSpeed = *v
	}
	return stats
}

// Validate checks editor-supplied fields before the record is persisted.
func (p PersonType) Validate() error {
	if p.Key == "" {
		return fmt.Errorf("person type: empty key")
	}
	if p.Name == "" {
		return fmt.Errorf("person type %q: empty name", p.Key)
	}
	if !p.Resolved() {
		return fmt.Errorf("person type %q: unresolved species/dao/title reference", p.Key)
	}
	if p.Cost < 0 {
		return fmt.Errorf("person type %q: negative cost %d", p.Key, p.Cost)
	}
	if p.WaveWeight < 0 {
		return fmt.Errorf("person type %q: negative wave weight %d", p.Key, p.WaveWeight)
	}
	if v := p.Overrides.AttackSpeed; v != nil && *v <= 0 {
		return fmt.Errorf("person type %q: attack speed override must be positive, got %v", p.Key, *v)
	}
	return nil
}
