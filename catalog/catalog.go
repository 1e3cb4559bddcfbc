// Package catalog implements component L: the on-disk YAML schema for
// skills, light cones, relics, monsters, and relic-set skills, a loader,
// and the percent normalizer used when assembling equipment from it.
//
// Grounded on spec §6's catalog-input shapes and, for the loader's own
// texture (context-aware file I/O, a single Load entry point returning a
// fully validated value or a simerr.CodeCatalogInvalid error), on
// rulebooks/dnd5e/combat's constructor-validates-its-own-input idiom
// already carried into this module's scheduler/battle packages.
package catalog

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Phantomding/starrail-simulator/simerr"
)

// SkillEntry describes one skills_by_id record (spec §6). Element is an
// addition beyond the spec's literal field list: the core Damage effect
// needs an elemental typing per skill, and the source schema has nowhere
// else to carry it for a data-driven MonsterSkill. It defaults to
// "Physical" when empty.
type SkillEntry struct {
	Type        string      `yaml:"type"`
	Params      [][]float64 `yaml:"params"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Element     string      `yaml:"element"`
}

// LightConeEntry describes one light_cones_by_id record.
type LightConeEntry struct {
	Name        string             `yaml:"name"`
	Path        string             `yaml:"path"`
	Stats       map[string]float64 `yaml:"stats"`
	SkillID     string             `yaml:"skill_id"`
	SkillParams [][]float64        `yaml:"skill_params"`
}

// RelicStat is one {stat, value} pair, used for both a relic's main stat
// and each of its sub-stats.
type RelicStat struct {
	Stat  string  `yaml:"stat"`
	Value float64 `yaml:"value"`
}

// RelicEntry describes one relics_by_id record.
type RelicEntry struct {
	Slot     string      `yaml:"slot"`
	SetName  string      `yaml:"set_name"`
	MainStat RelicStat   `yaml:"main_stat"`
	SubStats []RelicStat `yaml:"sub_stats"`
}

// MonsterEntry describes one monsters_by_id record.
type MonsterEntry struct {
	Name         string             `yaml:"name"`
	Stats        map[string]float64 `yaml:"stats"`
	Weaknesses   []string           `yaml:"weaknesses"`
	Resistances  map[string]float64 `yaml:"resistances"`
	Toughness    float64            `yaml:"toughness"`
	MaxToughness float64            `yaml:"max_toughness"`
	Skills       []string           `yaml:"skills"`
}

// RelicSetSkillEntry describes one relic_set_skills_by_name record. The
// 2pc/4pc mechanics themselves are Go code (equipment.DefaultSetRegistry)
// rather than a data-driven effect spec — this entry exists so the
// catalog can validate that every set name a relic references is a
// recognized one, and carry its display description.
type RelicSetSkillEntry struct {
	Description string `yaml:"description"`
}

// Catalog holds every loaded collection, keyed by the id or name the
// spec's catalog-input shapes use.
type Catalog struct {
	Skills         map[string]SkillEntry
	LightCones     map[string]LightConeEntry
	Relics         map[string]RelicEntry
	Monsters       map[string]MonsterEntry
	RelicSetSkills map[string]RelicSetSkillEntry
}

// Load reads skills.yaml, light_cones.yaml, relics.yaml, monsters.yaml,
// and relic_set_skills.yaml from dir, validates every entry, and returns
// the assembled Catalog. ctx is honored only for cancellation between
// files — the simulator performs no I/O once a battle starts (spec's
// Cancellation note in §5).
func Load(ctx context.Context, dir string) (*Catalog, error) {
	cat := &Catalog{
		Skills:         map[string]SkillEntry{},
		LightCones:     map[string]LightConeEntry{},
		Relics:         map[string]RelicEntry{},
		Monsters:       map[string]MonsterEntry{},
		RelicSetSkills: map[string]RelicSetSkillEntry{},
	}

	if err := loadFile(ctx, dir, "skills.yaml", &cat.Skills); err != nil {
		return nil, err
	}
	if err := loadFile(ctx, dir, "light_cones.yaml", &cat.LightCones); err != nil {
		return nil, err
	}
	if err := loadFile(ctx, dir, "relics.yaml", &cat.Relics); err != nil {
		return nil, err
	}
	if err := loadFile(ctx, dir, "monsters.yaml", &cat.Monsters); err != nil {
		return nil, err
	}
	if err := loadFile(ctx, dir, "relic_set_skills.yaml", &cat.RelicSetSkills); err != nil {
		return nil, err
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// loadFile reads name from dir and unmarshals it into out, which must be
// a pointer to a map. A missing optional file (relic_set_skills.yaml, for
// a catalog with no implemented sets yet) is not an error; a present but
// malformed file is.
func loadFile(ctx context.Context, dir, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return simerr.CatalogInvalidf("reading %s: %v", name, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return simerr.CatalogInvalidf("parsing %s: %v", name, err)
	}
	return nil
}

// Validate checks every loaded entry for the required fields spec §6
// and §7's "Invalid catalog entry" error surface demand, returning the
// first violation found as a simerr.CodeCatalogInvalid error. Validate is
// called automatically by Load; exported so a caller (cmd/simulate's
// validate subcommand) can re-run it against an already-loaded Catalog.
func (c *Catalog) Validate() error {
	for id, s := range c.Skills {
		if s.Type == "" {
			return simerr.CatalogInvalidf("skill %q: missing type", id)
		}
		if len(s.Params) == 0 {
			return simerr.CatalogInvalidf("skill %q: missing params", id)
		}
	}
	for id, lc := range c.LightCones {
		if lc.Path == "" {
			return simerr.CatalogInvalidf("light cone %q: missing path", id)
		}
	}
	for id, r := range c.Relics {
		if r.Slot == "" {
			return simerr.CatalogInvalidf("relic %q: missing slot", id)
		}
		if r.SetName == "" {
			return simerr.CatalogInvalidf("relic %q: missing set_name", id)
		}
		if r.MainStat.Stat == "" {
			return simerr.CatalogInvalidf("relic %q: missing main_stat", id)
		}
	}
	for id, m := range c.Monsters {
		if _, ok := m.Stats["HP"]; !ok {
			return simerr.CatalogInvalidf("monster %q: stats missing HP", id)
		}
		for _, skillID := range m.Skills {
			if _, ok := c.Skills[skillID]; !ok {
				return simerr.CatalogInvalidf("monster %q: references unknown skill %q", id, skillID)
			}
		}
	}
	for _, r := range c.Relics {
		if _, ok := c.RelicSetSkills[r.SetName]; !ok && len(c.RelicSetSkills) > 0 {
			return simerr.CatalogInvalidf("relic set %q is not a recognized set name", r.SetName)
		}
	}
	return nil
}
