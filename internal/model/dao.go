package model

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// AttackPattern describes how a unit delivers damage.
type AttackPattern string

const (
	AttackMelee  AttackPattern = "melee"
	AttackRanged AttackPattern = "ranged"
	AttackAOE    AttackPattern = "aoe"
)

// Valid reports whether the pattern is one of the known values.
func (p AttackPattern) Valid() bool {
	switch p {
	case AttackMelee, AttackRanged, AttackAOE:
		return true
	}
	return false
}

// CombatStats holds the offensive stats a Dao contributes to a unit.
// AttackSpeed is the interval between attacks in milliseconds: lower is
// faster.
type CombatStats struct {
	Damage        float64       `json:"damage"`
	AttackSpeed   float64       `json:"attackSpeed"`
	Range         float64       `json:"range"`
	AttackPattern AttackPattern `json:"attackPattern"`
}

// Dao represents a combat discipline authored in the content editor.
type Dao struct {
	ID               uuid.UUID   `json:"id"`
	Key              string      `json:"key"`
	Name             string      `json:"name"`
	Emoji            string      `json:"emoji"`
	CombatStats      CombatStats `json:"combatStats"`
	CompatibleSkills []string    `json:"compatibleSkills"`
}

// HasSkill reports whether the skill id is in the compatible set.
func (d Dao) HasSkill(skillID string) bool {
	return slices.Contains(d.CompatibleSkills, skillID)
}

// Validate checks editor-supplied fields before the record is persisted.
// Skill ids must be unique; ordering is not significant.
func (d Dao) Validate() error {
	if d.Key == "" {
		return fmt.Errorf("dao: empty key")
	}
	if d.Name == "" {
		return fmt.Errorf("dao %q: empty name", d.Key)
	}
	if d.CombatStats.Damage < 0 {
		return fmt.Errorf("dao %q: negative damage %v", d.Key, d.CombatStats.Damage)
	}
	if d.CombatStats.AttackSpeed <= 0 {
		return fmt.Errorf("dao %q: attack speed must be positive, got %v", d.Key, d.CombatStats.AttackSpeed)
	}
	if d.CombatStats.Range < 0 {
		return fmt.Errorf("dao %q: negative range %v", d.Key, d.CombatStats.Range)
	}
	if !d.CombatStats.AttackPattern.Valid() {
		return fmt.Errorf("dao %q: unknown attack pattern %q", d.Key, d.CombatStats.AttackPattern)
	}
	seen := make(map[string]struct{}, len(d.CompatibleSkills))
	for _, id := range d.CompatibleSkills {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("dao %q: duplicate skill %q", d.Key, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
