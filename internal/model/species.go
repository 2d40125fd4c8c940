package model

import (
	"fmt"

	"github.com/google/uuid"
)

// BaseStats holds the chassis stats a Species contributes to a unit.
type BaseStats struct {
	Health        float64 `json:"health"`
	MovementSpeed float64 `json:"movementSpeed"`
}

// Species represents a biological chassis authored in the content editor.
// Gameplay code treats it as a read-only snapshot: composition never writes
// back into the record.
type Species struct {
	ID        uuid.UUID `json:"id"`
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	BaseStats BaseStats `json:"baseStats"`
}

// Validate checks editor-supplied fields before the record is persisted.
func (s Species) Validate() error {
	if s.Key == "" {
		return fmt.Errorf("species: empty key")
	}
	if s.Name == "" {
		return fmt.Errorf("species %q: empty name", s.Key)
	}
	if s.BaseStats.Health < 0 {
		return fmt.Errorf("species %q: negative health %v", s.Key, s.BaseStats.Health)
	}
	if s.BaseStats.MovementSpeed < 0 {
		return fmt.Errorf("species %q: negative movement speed %v", s.Key, s.BaseStats.MovementSpeed)
	}
	return nil
}
