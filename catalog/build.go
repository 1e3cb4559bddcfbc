package catalog

import (
	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/ai"
	"github.com/Phantomding/starrail-simulator/core/damage"
	"github.com/Phantomding/starrail-simulator/equipment"
	"github.com/Phantomding/starrail-simulator/simerr"
	"github.com/Phantomding/starrail-simulator/skill"
	"github.com/Phantomding/starrail-simulator/stat"
)

// normalizeStats canonicalizes and percent-normalizes a raw catalog stat
// map using stat.Canonicalize/stat.NormalizePercent's own allowlist.
func normalizeStats(raw map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for key, value := range raw {
		canon := stat.Canonicalize(key)
		out[canon] = stat.NormalizePercent(canon, value)
	}
	return out
}

// BuildLightCone assembles an equipment.LightCone for id at level,
// wiring its skill_id through DefaultLightConeSkillFactories. An
// unrecognized skill_id falls back to equipment.NoopSkill via
// equipment.NewLightCone's own nil-defaulting, since a catalog fixture
// is free to describe a light cone whose skill isn't implemented yet.
func (c *Catalog) BuildLightCone(id string, level int) (*equipment.LightCone, error) {
	entry, ok := c.LightCones[id]
	if !ok {
		return nil, simerr.CatalogInvalidf("unknown light cone id %q", id)
	}

	var lcSkill equipment.LightConeSkill
	if factory, ok := equipment.DefaultLightConeSkillFactories()[entry.SkillID]; ok {
		lcSkill = factory()
	}

	return equipment.NewLightCone(id, entry.Name, entry.Path, level, normalizeStats(entry.Stats), lcSkill), nil
}

// BuildRelic assembles an equipment.Relic for id, normalizing its main
// and sub stat values.
func (c *Catalog) BuildRelic(id string) (*equipment.Relic, error) {
	entry, ok := c.Relics[id]
	if !ok {
		return nil, simerr.CatalogInvalidf("unknown relic id %q", id)
	}

	mainStat := stat.Canonicalize(entry.MainStat.Stat)
	subStats := make([]equipment.SubStat, len(entry.SubStats))
	for i, s := range entry.SubStats {
		canon := stat.Canonicalize(s.Stat)
		subStats[i] = equipment.SubStat{Stat: canon, Value: stat.NormalizePercent(canon, s.Value)}
	}

	return &equipment.Relic{
		ID:        id,
		Slot:      equipment.Slot(entry.Slot),
		SetName:   entry.SetName,
		MainStat:  mainStat,
		MainValue: stat.NormalizePercent(mainStat, entry.MainStat.Value),
		SubStats:  subStats,
	}, nil
}

// SetRegistry returns the relic-set skill registry to use for a battle
// built from this catalog. It is always equipment.DefaultSetRegistry —
// 2pc/4pc mechanics are Go code, not data, so the catalog's own
// relic_set_skills_by_name entries serve only to validate that relics
// reference recognized set names (Catalog.Validate).
func (c *Catalog) SetRegistry() equipment.SetRegistry {
	return equipment.DefaultSetRegistry()
}

// monsterSkillElement resolves a skill's configured element, defaulting
// to Physical when the catalog entry leaves it blank.
func monsterSkillElement(entry SkillEntry) damage.Element {
	if entry.Element == "" {
		return damage.Physical
	}
	return damage.Element(entry.Element)
}

// BuildSkillRegistryFor constructs a skill.Registry covering exactly the
// skill ids given, as data-driven skill.MonsterSkill instances pulling
// each one's multiplier from params[level-1][0] — the same generic
// convention spec §4.5 describes for "generic enemy basic/BPSkill/Ultra"
// applies equally to any catalog skill id with no bespoke Go behavior of
// its own; a roster entry referencing a character-specific Talent (e.g.
// `skill/vesper.go`) is wired by the caller instead, outside the
// catalog. level is 1-indexed and clamped to the last row available for
// a skill whose params matrix is shorter.
func (c *Catalog) BuildSkillRegistryFor(skillIDs []string, level int) (skill.Registry, error) {
	registry := make(skill.Registry, len(skillIDs))
	for _, skillID := range skillIDs {
		entry, ok := c.Skills[skillID]
		if !ok {
			return nil, simerr.CatalogInvalidf("unknown skill id %q", skillID)
		}

		row := level - 1
		if row < 0 {
			row = 0
		}
		if row >= len(entry.Params) {
			row = len(entry.Params) - 1
		}
		if row < 0 || len(entry.Params[row]) == 0 {
			return nil, simerr.CatalogInvalidf("skill %q has no params for level %d", skillID, level)
		}

		registry[skillID] = skill.MonsterSkill{
			SkillKind:  entry.Type,
			Element:    monsterSkillElement(entry),
			Multiplier: entry.Params[row][0],
		}
	}
	return registry, nil
}

// BuildMonsterRegistry constructs a skill.Registry covering every skill
// id referenced by monster monsterID's Skills list.
func (c *Catalog) BuildMonsterRegistry(monsterID string, level int) (skill.Registry, error) {
	monster, ok := c.Monsters[monsterID]
	if !ok {
		return nil, simerr.CatalogInvalidf("unknown monster id %q", monsterID)
	}
	return c.BuildSkillRegistryFor(monster.Skills, level)
}

// MonsterStats normalizes a monster's raw catalog stats for use as an
// actor.Config.BaseStats map.
func (c *Catalog) MonsterStats(monsterID string) (map[string]float64, error) {
	monster, ok := c.Monsters[monsterID]
	if !ok {
		return nil, simerr.CatalogInvalidf("unknown monster id %q", monsterID)
	}
	return normalizeStats(monster.Stats), nil
}

// MonsterResistances normalizes a monster's elemental resistance
// fractions, keyed by damage.Element.
func (c *Catalog) MonsterResistances(monsterID string) (map[damage.Element]float64, error) {
	monster, ok := c.Monsters[monsterID]
	if !ok {
		return nil, simerr.CatalogInvalidf("unknown monster id %q", monsterID)
	}
	out := make(map[damage.Element]float64, len(monster.Resistances))
	for el, frac := range monster.Resistances {
		if frac > 1.0 {
			frac /= 100.0
		}
		out[damage.Element(el)] = frac
	}
	return out, nil
}

// BuildMonsterActor assembles a full *actor.Actor for monsterID at id and
// side, wiring its stats, weaknesses, resistances, and toughness straight
// from the catalog entry. The actor's AI uses ai.Default() — monster AI
// is indistinguishable from a character's generic behavior at this
// simulator's scope (spec's Non-goals exclude bespoke enemy AI scripts).
func (c *Catalog) BuildMonsterActor(id, side, monsterID string) (*actor.Actor, error) {
	monster, ok := c.Monsters[monsterID]
	if !ok {
		return nil, simerr.CatalogInvalidf("unknown monster id %q", monsterID)
	}

	stats, err := c.MonsterStats(monsterID)
	if err != nil {
		return nil, err
	}
	resistances, err := c.MonsterResistances(monsterID)
	if err != nil {
		return nil, err
	}
	weaknesses := make([]damage.Element, len(monster.Weaknesses))
	for i, w := range monster.Weaknesses {
		weaknesses[i] = damage.Element(w)
	}

	return actor.New(actor.Config{
		ID:           id,
		Name:         monster.Name,
		Side:         side,
		BaseStats:    stats,
		MaxEnergy:    100,
		MaxToughness: monster.MaxToughness,
		Weaknesses:   weaknesses,
		Resistances:  resistances,
		AI:           ai.Default(),
	}), nil
}
