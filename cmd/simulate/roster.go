package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/ai"
	"github.com/Phantomding/starrail-simulator/battle"
	"github.com/Phantomding/starrail-simulator/catalog"
	"github.com/Phantomding/starrail-simulator/equipment"
	"github.com/Phantomding/starrail-simulator/simerr"
	"github.com/Phantomding/starrail-simulator/skill"
)

// rosterSkillSlot binds one skill.Kind to a catalog skill id and the
// target shape its AI should resolve for it.
type rosterSkillSlot struct {
	SkillID string `yaml:"skill_id"`
	Level   int    `yaml:"level"`
	Target  string `yaml:"target"`
}

// rosterEntry describes one participant. A monster_id entry sources its
// stats, weaknesses, resistances, and skill kit entirely from the
// catalog (spec §6's monsters_by_id); a party entry carries its own
// base_stats directly, since the catalog has no characters_by_id table
// — character numbers are the roster author's responsibility, the same
// way the source game's player data lives outside its monster database.
type rosterEntry struct {
	ID          string                     `yaml:"id"`
	Side        string                     `yaml:"side"`
	Name        string                     `yaml:"name"`
	Path        string                     `yaml:"path"`
	Level       int                        `yaml:"level"`
	MonsterID   string                     `yaml:"monster_id"`
	BaseStats   map[string]float64         `yaml:"base_stats"`
	MaxEnergy   float64                    `yaml:"max_energy"`
	LightConeID string                     `yaml:"light_cone_id"`
	RelicIDs    []string                   `yaml:"relic_ids"`
	Skills      map[string]rosterSkillSlot `yaml:"skills"`
}

type roster struct {
	Entries []rosterEntry `yaml:"entries"`
}

func loadRoster(path string) (*roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, simerr.CatalogInvalidf("reading roster %s: %v", path, err)
	}
	var r roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, simerr.CatalogInvalidf("parsing roster %s: %v", path, err)
	}
	return &r, nil
}

var targetShapeByName = map[string]actor.TargetShape{
	"single_enemy":         actor.TargetSingleEnemy,
	"all_enemies":          actor.TargetAllEnemies,
	"lowest_hp_ratio_ally": actor.TargetLowestHPRatioAlly,
	"self":                 actor.TargetSelf,
}

// assembleBattle builds a battle.Context from a loaded catalog and
// roster: each entry becomes an actor.Actor plus a battle.Entry binding
// its skill slots, and every referenced skill id across the whole
// roster is resolved into one shared skill.Registry.
func assembleBattle(cat *catalog.Catalog, r *roster, cfg battleAssemblyConfig) (*battle.Context, error) {
	entries := make([]*battle.Entry, 0, len(r.Entries))
	registry := make(skill.Registry)
	skillIDs := make(map[string]bool)

	for _, re := range r.Entries {
		a, err := buildActor(cat, re)
		if err != nil {
			return nil, err
		}

		slots := make(map[skill.Kind]battle.SkillSlot, len(re.Skills))
		for kindName, rs := range re.Skills {
			shape, ok := targetShapeByName[rs.Target]
			if !ok {
				return nil, simerr.CatalogInvalidf("roster entry %q: unknown target shape %q", re.ID, rs.Target)
			}
			slots[skill.Kind(kindName)] = battle.SkillSlot{ID: rs.SkillID, Level: rs.Level, Target: shape}
			skillIDs[rs.SkillID] = true
		}

		entries = append(entries, &battle.Entry{Actor: a, Skills: slots})
	}

	ids := make([]string, 0, len(skillIDs))
	for id := range skillIDs {
		ids = append(ids, id)
	}
	generic, err := cat.BuildSkillRegistryFor(ids, 1)
	if err != nil {
		return nil, err
	}
	for id, behavior := range generic {
		registry[id] = behavior
	}

	return battle.New(battle.Config{
		Entries:   entries,
		Registry:  registry,
		Roller:    cfg.Roller,
		MaxRounds: cfg.MaxRounds,
		Logger:    cfg.Logger,
	}), nil
}

func buildActor(cat *catalog.Catalog, re rosterEntry) (*actor.Actor, error) {
	if re.MonsterID != "" {
		return cat.BuildMonsterActor(re.ID, re.Side, re.MonsterID)
	}

	var lc *equipment.LightCone
	if re.LightConeID != "" {
		built, err := cat.BuildLightCone(re.LightConeID, re.Level)
		if err != nil {
			return nil, err
		}
		lc = built
	}

	relics := make([]*equipment.Relic, 0, len(re.RelicIDs))
	for _, relicID := range re.RelicIDs {
		r, err := cat.BuildRelic(relicID)
		if err != nil {
			return nil, err
		}
		relics = append(relics, r)
	}

	return actor.New(actor.Config{
		ID:          re.ID,
		Name:        re.Name,
		Side:        re.Side,
		Path:        re.Path,
		Level:       re.Level,
		BaseStats:   re.BaseStats,
		MaxEnergy:   re.MaxEnergy,
		LightCone:   lc,
		Relics:      relics,
		SetRegistry: cat.SetRegistry(),
		AI:          ai.Default(),
	}), nil
}
