package data

import "github.com/slopworks/cultivator/internal/model"

// Built-in content. Keys are stable: editor edits are stored under the same
// ids after seeding, so renames here would fork records.

var speciesDefs = []model.Species{
	{
		Key: "ember-fox", Name: "Ember Fox", Emoji: "🦊",
		BaseStats: model.BaseStats{Health: 100, MovementSpeed: 1.0},
	},
	{
		Key: "jade-tortoise", Name: "Jade Tortoise", Emoji: "🐢",
		BaseStats: model.BaseStats{Health: 320, MovementSpeed: 0.35},
	},
	{
		Key: "paper-crane", Name: "Paper Crane", Emoji: "🕊️",
		BaseStats: model.BaseStats{Health: 55, MovementSpeed: 1.8},
	},
	{
		Key: "stone-ox", Name: "Stone Ox", Emoji: "🐂",
		BaseStats: model.BaseStats{Health: 240, MovementSpeed: 0.6},
	},
	{
		Key: "moon-hare", Name: "Moon Hare", Emoji: "🐇",
		BaseStats: model.BaseStats{Health: 80, MovementSpeed: 1.5},
	},
}

var daoDefs = []model.Dao{
	{
		Key: "blazing-palm", Name: "Blazing Palm", Emoji: "🔥",
		CombatStats: model.CombatStats{
			Damage: 10, AttackSpeed: 1000, Range: 50,
			AttackPattern: model.AttackMelee,
		},
		CompatibleSkills: []string{"flame-burst", "cinder-step"},
	},
	{
		Key: "thousand-needles", Name: "Thousand Needles", Emoji: "🪡",
		CombatStats: model.CombatStats{
			Damage: 4, AttackSpeed: 280, Range: 140,
			AttackPattern: model.AttackRanged,
		},
		CompatibleSkills: []string{"needle-rain", "silver-thread"},
	},
	{
		Key: "thunder-drum", Name: "Thunder Drum", Emoji: "🥁",
		CombatStats: model.CombatStats{
			Damage: 22, AttackSpeed: 2400, Range: 90,
			AttackPattern: model.AttackAOE,
		},
		CompatibleSkills: []string{"rolling-boom", "skyquake"},
	},
	{
		Key: "still-river", Name: "Still River", Emoji: "🌊",
		CombatStats: model.CombatStats{
			Damage: 7, AttackSpeed: 800, Range: 110,
			AttackPattern: model.AttackRanged,
		},
		CompatibleSkills: []string{"undertow", "mist-veil"},
	},
}

var titleDefs = []model.Title{
	{
		Key: "outer-disciple", Name: "Outer Disciple", Emoji: "🧹",
		PrestigeLevel: 0,
		// No bonuses: the baseline rank.
	},
	{
		Key: "inner-disciple", Name: "Inner Disciple", Emoji: "📿",
		PrestigeLevel: 1,
		StatBonuses: model.StatBonuses{
			HealthMultiplier: model.Float64(1.15),
			DamageMultiplier: model.Float64(1.1),
		},
	},
	{
		Key: "venerable", Name: "Venerable", Emoji: "🏮",
		PrestigeLevel: 3,
		StatBonuses: model.StatBonuses{
			HealthMultiplier: model.Float64(1.5),
			DamageMultiplier: model.Float64(2),
			RangeBonus:       model.Float64(20),
		},
	},
	{
		Key: "swift-as-wind", Name: "Swift as Wind", Emoji: "🍃",
		PrestigeLevel: 2,
		StatBonuses: model.StatBonuses{
			AttackSpeedMultiplier:   model.Float64(0.5),
			MovementSpeedMultiplier: model.Float64(1.4),
		},
	},
	{
		Key: "unmoving-mountain", Name: "Unmoving Mountain", Emoji: "⛰️",
		PrestigeLevel: 2,
		StatBonuses: model.StatBonuses{
			HealthMultiplier:        model.Float64(2.2),
			MovementSpeedMultiplier: model.Float64(0.7),
		},
	},
}

// personTypeDef binds a PersonType literal to content keys; ids are filled
// in by LoadContent.
type personTypeDef struct {
	model.PersonType
	species string
	dao     string
	title   string
}

func (p personTypeDef) speciesKey() string { return p.species }
func (p personTypeDef) daoKey() string     { return p.dao }
func (p personTypeDef) titleKey() string   { return p.title }

var personTypeDefs = []personTypeDef{
	{
		PersonType: model.PersonType{
			Key: "ember-adept", Name: "Ember Adept",
			Cost: 25, WaveWeight: 10,
		},
		species: "ember-fox", dao: "blazing-palm", title: "inner-disciple",
	},
	{
		PersonType: model.PersonType{
			Key: "tortoise-warden", Name: "Tortoise Warden",
			Cost: 40, WaveWeight: 6,
		},
		species: "jade-tortoise", dao: "still-river", title: "unmoving-mountain",
	},
	{
		PersonType: model.PersonType{
			Key: "crane-seamstress", Name: "Crane Seamstress",
			Cost: 30, WaveWeight: 8,
		},
		species: "paper-crane", dao: "thousand-needles", title: "swift-as-wind",
	},
	{
		PersonType: model.PersonType{
			Key: "ox-drummer", Name: "Ox Drummer",
			Cost: 55, WaveWeight: 4,
			// Tuned by hand after playtests: the composed health was too low
			// for a backline anchor.
			Overrides: model.StatOverrides{Health: model.Float64(400)},
		},
		species: "stone-ox", dao: "thunder-drum", title: "outer-disciple",
	},
	{
		PersonType: model.PersonType{
			Key: "hare-venerable", Name: "Hare Venerable",
			Cost: 90, WaveWeight: 2,
		},
		species: "moon-hare", dao: "blazing-palm", title: "venerable",
	},
}
