package model

import (
	"fmt"

	"github.com/google/uuid"
)

// StatBonuses is the sparse modifier block a Title applies on top of the
// Species+Dao base. A nil field means "no modification": multipliers default
// to 1, flat bonuses to 0. Most titles define only one or two fields.
type StatBonuses struct {
	HealthMultiplier        *float64 `json:"healthMultiplier,omitempty"`
	DamageMultiplier        *float64 `json:"damageMultiplier,omitempty"`
	AttackSpeedMultiplier   *float64 `json:"attackSpeedMultiplier,omitempty"`
	RangeBonus              *float64 `json:"rangeBonus,omitempty"`
	MovementSpeedMultiplier *float64 `json:"movementSpeedMultiplier,omitempty"`
}

// Title represents a prestige rank authored in the content editor.
// PrestigeLevel orders titles for display; it never enters stat math.
type Title struct {
	ID            uuid.UUID   `json:"id"`
	Key           string      `json:"key"`
	Name          string      `json:"name"`
	Emoji         string      `json:"emoji"`
	PrestigeLevel int         `json:"prestigeLevel"`
	StatBonuses   StatBonuses `json:"statBonuses"`
}

// multiplierOrDefault resolves an optional multiplier field. Absent = 1.
func multiplierOrDefault(v *float64) float64 {
	if v == nil {
		return 1
	}
	return *v
}

// bonusOrDefault resolves an optional flat-bonus field. Absent = 0.
func bonusOrDefault(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Validate checks editor-supplied fields before the record is persisted.
func (t Title) Validate() error {
	if t.Key == "" {
		return fmt.Errorf("title: empty key")
	}
	if t.Name == "" {
		return fmt.Errorf("title %q: empty name", t.Key)
	}
	for field, v := range map[string]*float64{
		"healthMultiplier":        t.StatBonuses.HealthMultiplier,
		"damageMultiplier":        t.StatBonuses.DamageMultiplier,
		"attackSpeedMultiplier":   t.StatBonuses.AttackSpeedMultiplier,
		"movementSpeedMultiplier": t.StatBonuses.MovementSpeedMultiplier,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("title %q: negative %s %v", t.Key, field, *v)
		}
	}
	return nil
}

// Float64 returns a pointer to v, for building sparse StatBonuses literals.
func Float64(v float64) *float64 {
	return &v
}
