// Package skill implements the skill registry and effect emission
// (component F, spec §4.5): each skill identity resolves to a Behavior
// that, given a caster, pre-chosen targets, and a level, returns an
// ordered list of effects.
//
// Targets are chosen upstream by the acting actor's AI policy
// (actor.AIPolicy.ChooseTargets) before Use ever runs — Behavior never
// queries the battle roster itself, which is what lets this package avoid
// importing battle or ai.
//
// Grounded on the shape implicit across
// original_source/starrail/core/skills/{base_skill,seele_skills,
// natasha_skills,bronya_skills}.py, where every skill's `use` method is
// handed its targets and returns a description of what happened rather
// than mutating battle state directly.
package skill

import (
	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/effect"
)

// Kind names a skill's type for energy/skill-point bookkeeping (spec
// §4.9-§4.10) and for skill-type-gated damage/healing bonuses. It is a
// plain string underneath so actor.AIPolicy.ChooseSkill can return one
// without actor needing to import this package.
type Kind string

// The fixed skill kinds this simulator recognizes.
const (
	KindNormal    Kind = "Normal"
	KindBPSkill   Kind = "BPSkill"
	KindUltra     Kind = "Ultra"
	KindTalent    Kind = "Talent"
	KindTechnique Kind = "Technique"
)

// Behavior is one skill identity's effect-emission logic.
type Behavior interface {
	Kind() Kind
	Use(caster *actor.Actor, targets []*actor.Actor, level int) []effect.Effect
}

// Registry maps catalog skill ids to their Behavior. Lookup never
// returns nil: an id with no registered Behavior resolves to NoopBehavior
// (spec §4.5's "unknown skill ids resolve to a no-op skill that emits
// nothing").
type Registry map[string]Behavior

// Lookup returns id's Behavior, or NoopBehavior if id is unregistered.
func (r Registry) Lookup(id string) Behavior {
	if b, ok := r[id]; ok {
		return b
	}
	return NoopBehavior{}
}

// NoopBehavior emits nothing and reports itself as a Normal attack. The
// battle's energy/skill-point bookkeeping keys off the bound slot's kind,
// not Behavior.Kind.
type NoopBehavior struct{}

// Kind implements Behavior.
func (NoopBehavior) Kind() Kind { return KindNormal }

// Use implements Behavior.
func (NoopBehavior) Use(*actor.Actor, []*actor.Actor, int) []effect.Effect { return nil }

// scaleByLevel applies the per-level linear scaling convention used
// throughout the catalog's skill/light-cone params: base at level 1,
// growing by perLevel each level thereafter.
func scaleByLevel(base, perLevel float64, level int) float64 {
	if level < 1 {
		level = 1
	}
	return base + perLevel*float64(level-1)
}

var _ Behavior = NoopBehavior{}
