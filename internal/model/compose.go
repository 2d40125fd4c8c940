package model

import "fmt"

// ComposedStats is the final stat block a spawned unit fights with. It is
// derived on every call and never persisted; callers that want rounding for
// display do it themselves.
type ComposedStats struct {
	Health        float64 `json:"health"`
	Damage        float64 `json:"damage"`
	AttackSpeed   float64 `json:"attackSpeed"`
	Range         float64 `json:"range"`
	MovementSpeed float64 `json:"movementSpeed"`
	DisplayName   string  `json:"displayName"`
}

// ComposeCultivatorStats derives the combat stat block for a unit built from
// one Species, one Dao, and one Title.
//
// Multiplicative title bonuses apply to the Species/Dao base; the flat range
// bonus is added after. AttackSpeed is milliseconds between attacks, so the
// attack speed multiplier scales the interval: a multiplier of 0.5 halves
// the interval and the unit attacks twice as fast. Do not "fix" this.
//
// Pure and total: no I/O, no mutation of inputs, no error path — every
// optional bonus has a defined default. Callers must resolve ids to records
// before invoking; a PersonType with a dangling reference never reaches this
// function.
func ComposeCultivatorStats(species Species, dao Dao, title Title) ComposedStats {
	return ComposedStats{
		Health:        species.BaseStats.Health * multiplierOrDefault(title.StatBonuses.HealthMultiplier),
		Damage:        dao.CombatStats.Damage * multiplierOrDefault(title.StatBonuses.DamageMultiplier),
		AttackSpeed:   dao.CombatStats.AttackSpeed * multiplierOrDefault(title.StatBonuses.AttackSpeedMultiplier),
		Range:         dao.CombatStats.Range + bonusOrDefault(title.StatBonuses.RangeBonus),
		MovementSpeed: species.BaseStats.MovementSpeed * multiplierOrDefault(title.StatBonuses.MovementSpeedMultiplier),
		DisplayName:   composeDisplayName(species, dao, title),
	}
}

// composeDisplayName builds the human label, e.g.
// "Venerable Ember Fox of the Blazing Palm".
func composeDisplayName(species Species, dao Dao, title Title) string {
	return fmt.Sprintf("%s %s of the %s", title.Name, species.Name, dao.Name)
}
