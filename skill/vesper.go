// Vesper Null (Quantum Hunt DPS) — grounded on
// original_source/starrail/core/skills/seele_skills.py's kill-triggered
// extra turn.
package skill

import (
	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/buff"
	"github.com/Phantomding/starrail-simulator/core/damage"
	"github.com/Phantomding/starrail-simulator/effect"
)

// Bloodslice is Vesper Null's basic attack.
type Bloodslice struct {
	BaseMultiplier, PerLevel float64
}

// NewBloodslice returns Bloodslice with its catalog defaults.
func NewBloodslice() Bloodslice { return Bloodslice{BaseMultiplier: 1.0, PerLevel: 0.1} }

// Kind implements Behavior.
func (Bloodslice) Kind() Kind { return KindNormal }

// Use implements Behavior.
func (s Bloodslice) Use(caster *actor.Actor, targets []*actor.Actor, level int) []effect.Effect {
	return []effect.Effect{
		effect.Damage{
			Targets:    targets,
			Multiplier: scaleByLevel(s.BaseMultiplier, s.PerLevel, level),
			Element:    damage.Quantum,
			SkillKind:  string(KindNormal),
		},
	}
}

// Severance is Vesper Null's battle skill. It marks its target with a
// brief damage-taken debuff — a mechanical stand-in for the source
// character's crit-rate-debuff effect, since this simulator's target
// model has no separate "enemy crit resistance" stat to debuff.
type Severance struct {
	BaseMultiplier, PerLevel float64
	MarkDuration             int
	MarkDamageTakenIncrease  float64
}

// NewSeverance returns Severance with its catalog defaults.
func NewSeverance() Severance {
	return Severance{BaseMultiplier: 1.5, PerLevel: 0.15, MarkDuration: 2, MarkDamageTakenIncrease: 0.1}
}

// Kind implements Behavior.
func (Severance) Kind() Kind { return KindBPSkill }

// Use implements Behavior.
func (s Severance) Use(caster *actor.Actor, targets []*actor.Actor, level int) []effect.Effect {
	effects := []effect.Effect{
		effect.Damage{
			Targets:    targets,
			Multiplier: scaleByLevel(s.BaseMultiplier, s.PerLevel, level),
			Element:    damage.Quantum,
			SkillKind:  string(KindBPSkill),
		},
	}
	for _, target := range targets {
		effects = append(effects, effect.Buff{
			Targets: []*actor.Actor{target},
			Buff: &buff.Buff{
				Name:                "Severance Mark",
				Duration:            s.MarkDuration,
				DamageTakenIncrease: s.MarkDamageTakenIncrease,
			},
		})
	}
	return effects
}

// LastEdge is Vesper Null's ultimate: a follow-up-tagged hit that always
// chains into an extra turn.
type LastEdge struct {
	BaseMultiplier, PerLevel float64
}

// NewLastEdge returns LastEdge with its catalog defaults.
func NewLastEdge() LastEdge { return LastEdge{BaseMultiplier: 3.0, PerLevel: 0.3} }

// Kind implements Behavior.
func (LastEdge) Kind() Kind { return KindUltra }

// Use implements Behavior.
func (s LastEdge) Use(caster *actor.Actor, targets []*actor.Actor, level int) []effect.Effect {
	return []effect.Effect{
		effect.Damage{
			Targets:    targets,
			Multiplier: scaleByLevel(s.BaseMultiplier, s.PerLevel, level),
			Element:    damage.Quantum,
			SkillKind:  SkillFollowUp,
		},
		effect.ExtraTurn{Target: caster},
	}
}

// SkillFollowUp tags a Damage effect as a follow-up attack for the
// damage pipeline's skill-type bonus and for hooks like
// equipment.InertSalsottoSkill that key off LastSkillKind.
const SkillFollowUp = "Follow-up"

// Talent is Vesper Null's passive: on any kill by CharacterID, grant an
// extra turn — unless the kill happened during an extra turn this same
// talent already granted (spec's extra-turn re-entry guard). The battle
// package's effect manager is expected to pass inOwnExtraTurn=true while
// resolving an action it itself flagged as this talent's extra turn.
type Talent struct {
	CharacterID string
}

// OnEnemyKilled returns the extra-turn effect this talent grants, or nil
// if the guard condition blocks it.
func (t Talent) OnEnemyKilled(killer *actor.Actor, inOwnExtraTurn bool) []effect.Effect {
	if killer.ID() != t.CharacterID || inOwnExtraTurn {
		return nil
	}
	return []effect.Effect{effect.ExtraTurn{Target: killer}}
}

var (
	_ Behavior = Bloodslice{}
	_ Behavior = Severance{}
	_ Behavior = LastEdge{}
)
