package skill

import (
	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/core/damage"
	"github.com/Phantomding/starrail-simulator/effect"
)

// MonsterSkill is a single data-driven Damage-only behavior, used by
// every catalog monster entry that needs no bespoke logic (spec §4.5's
// "generic enemy basic/BPSkill/Ultra").
type MonsterSkill struct {
	SkillKind  string
	Element    damage.Element
	Multiplier float64
}

// Kind implements Behavior.
func (m MonsterSkill) Kind() Kind { return Kind(m.SkillKind) }

// Use implements Behavior. The catalog pre-selects the multiplier for
// the monster's current level, so level is unused here.
func (m MonsterSkill) Use(_ *actor.Actor, targets []*actor.Actor, _ int) []effect.Effect {
	return []effect.Effect{
		effect.Damage{Targets: targets, Multiplier: m.Multiplier, Element: m.Element, SkillKind: m.SkillKind},
	}
}

var _ Behavior = MonsterSkill{}
