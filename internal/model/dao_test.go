package model

import "testing"

func TestDao_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Dao)
		wantErr bool
	}{
		{"valid", func(d *Dao) {}, false},
		{"zero attack speed", func(d *Dao) { d.CombatStats.AttackSpeed = 0 }, true},
		{"negative damage", func(d *Dao) { d.CombatStats.Damage = -1 }, true},
		{"negative range", func(d *Dao) { d.CombatStats.Range = -0.5 }, true},
		{"bad pattern", func(d *Dao) { d.CombatStats.AttackPattern = "spiral" }, true},
		{"duplicate skill", func(d *Dao) { d.CompatibleSkills = []string{"a", "b", "a"} }, true},
		{"empty key", func(d *Dao) { d.Key = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dao := testDao()
			tt.mutate(&dao)
			err := dao.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDao_HasSkill(t *testing.T) {
	dao := testDao()
	if !dao.HasSkill("flame-burst") {
		t.Error("HasSkill(flame-burst) = false, want true")
	}
	if dao.HasSkill("iron-shirt") {
		t.Error("HasSkill(iron-shirt) = true, want false")
	}
}

func TestTitle_Validate_NegativeMultiplier(t *testing.T) {
	title := Title{Key: "cursed", Name: "Cursed", StatBonuses: StatBonuses{
		DamageMultiplier: Float64(-2),
	}}
	if err := title.Validate(); err == nil {
		t.Error("Validate() = nil, want negative-multiplier error")
	}
}

func TestAsset_Validate(t *testing.T) {
	asset := Asset{Key: "fox-idle", Kind: AssetSpeciesArt, SVG: `<svg xmlns="http://www.w3.org/2000/svg"></svg>`}
	if err := asset.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	asset.SVG = "not markup"
	if err := asset.Validate(); err == nil {
		t.Error("Validate() = nil, want not-an-svg error")
	}
}
