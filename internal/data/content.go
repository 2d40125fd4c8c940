// Package data holds the built-in content shipped with the game: the
// default species, daos, titles and person types. Loaded into package
// registries at startup; cmd/seed writes the same defs into the database
// for the editor to take over.
package data

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/slopworks/cultivator/internal/model"
)

// Content ids are derived from the record key so reseeding is idempotent.
var contentNamespace = uuid.MustParse("8d7a6b1e-43a2-4f09-9c55-2f0b7a1d6e84")

// ContentID returns the stable id for a built-in record.
func ContentID(kind, key string) uuid.UUID {
	return uuid.NewSHA1(contentNamespace, []byte(kind+"/"+key))
}

var (
	speciesRegistry    map[string]model.Species
	daoRegistry        map[string]model.Dao
	titleRegistry      map[string]model.Title
	personTypeRegistry map[string]model.PersonType
)

// LoadContent builds the registries from the built-in defs.
// Called once at server startup and by cmd/seed.
func LoadContent() error {
	speciesRegistry = make(map[string]model.Species, len(speciesDefs))
	for _, s := range speciesDefs {
		s.ID = ContentID("species", s.Key)
		if err := s.Validate(); err != nil {
			return fmt.Errorf("built-in species: %w", err)
		}
		speciesRegistry[s.Key] = s
	}

	daoRegistry = make(map[string]model.Dao, len(daoDefs))
	for _, d := range daoDefs {
		d.ID = ContentID("dao", d.Key)
		if err := d.Validate(); err != nil {
			return fmt.Errorf("built-in dao: %w", err)
		}
		daoRegistry[d.Key] = d
	}

	titleRegistry = make(map[string]model.Title, len(titleDefs))
	for _, t := range titleDefs {
		t.ID = ContentID("title", t.Key)
		if err := t.Validate(); err != nil {
			return fmt.Errorf("built-in title: %w", err)
		}
		titleRegistry[t.Key] = t
	}

	personTypeRegistry = make(map[string]model.PersonType, len(personTypeDefs))
	for _, p := range personTypeDefs {
		p.ID = ContentID("person", p.Key)
		p.SpeciesID = ContentID("species", p.speciesKey())
		p.DaoID = ContentID("dao", p.daoKey())
		p.TitleID = ContentID("title", p.titleKey())
		if _, ok := speciesRegistry[p.speciesKey()]; !ok {
			return fmt.Errorf("person type %q: unknown species %q", p.Key, p.speciesKey())
		}
		if _, ok := daoRegistry[p.daoKey()]; !ok {
			return fmt.Errorf("person type %q: unknown dao %q", p.Key, p.daoKey())
		}
		if _, ok := titleRegistry[p.titleKey()]; !ok {
			return fmt.Errorf("person type %q: unknown title %q", p.Key, p.titleKey())
		}
		if err := p.PersonType.Validate(); err != nil {
			return fmt.Errorf("built-in person type: %w", err)
		}
		personTypeRegistry[p.Key] = p.PersonType
	}

	slog.Info("loaded built-in content",
		"species", len(speciesRegistry),
		"daos", len(daoRegistry),
		"titles", len(titleRegistry),
		"person_types", len(personTypeRegistry))
	return nil
}

// GetSpecies returns a built-in species by key.
func GetSpecies(key string) (model.Species, bool) {
	s, ok := speciesRegistry[key]
	return s, ok
}

// GetDao returns a built-in dao by key.
func GetDao(key string) (model.Dao, bool) {
	d, ok := daoRegistry[key]
	return d, ok
}

// GetTitle returns a built-in title by key.
func GetTitle(key string) (model.Title, bool) {
	t, ok := titleRegistry[key]
	return t, ok
}

// GetPersonType returns a built-in person type by key.
func GetPersonType(key string) (model.PersonType, bool) {
	p, ok := personTypeRegistry[key]
	return p, ok
}

// AllSpecies returns the built-in species sorted by key.
func AllSpecies() []model.Species {
	out := make([]model.Species, 0, len(speciesRegistry))
	for _, s := range speciesRegistry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// AllDaos returns the built-in daos sorted by key.
func AllDaos() []model.Dao {
	out := make([]model.Dao, 0, len(daoRegistry))
	for _, d := range daoRegistry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// AllTitles returns the built-in titles sorted by prestige, then key.
func AllTitles() []model.Title {
	out := make([]model.Title, 0, len(titleRegistry))
	for _, t := range titleRegistry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PrestigeLevel != out[j].PrestigeLevel {
			return out[i].PrestigeLevel < out[j].PrestigeLevel
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// AllPersonTypes returns the built-in person types sorted by key.
func AllPersonTypes() []model.PersonType {
	out := make([]model.PersonType, 0, len(personTypeRegistry))
	for _, p := range personTypeRegistry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
