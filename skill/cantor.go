// Cantor Vess (Imaginary Harmony commander) — grounded on
// original_source/starrail/core/skills/bronya_skills.py.
package skill

import (
	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/buff"
	"github.com/Phantomding/starrail-simulator/core/damage"
	"github.com/Phantomding/starrail-simulator/effect"
)

// BatonPass is Cantor Vess's basic attack: minor damage, reflecting a
// commander archetype that leans on buffs rather than raw hits.
type BatonPass struct {
	BaseMultiplier, PerLevel float64
}

// NewBatonPass returns BatonPass with its catalog defaults.
func NewBatonPass() BatonPass { return BatonPass{BaseMultiplier: 0.6, PerLevel: 0.06} }

// Kind implements Behavior.
func (BatonPass) Kind() Kind { return KindNormal }

// Use implements Behavior.
func (s BatonPass) Use(_ *actor.Actor, targets []*actor.Actor, level int) []effect.Effect {
	return []effect.Effect{
		effect.Damage{
			Targets:    targets,
			Multiplier: scaleByLevel(s.BaseMultiplier, s.PerLevel, level),
			Element:    damage.Imaginary,
			SkillKind:  string(KindNormal),
		},
	}
}

// Downbeat is Cantor Vess's battle skill: it advances an ally's action
// progress instead of dealing damage or healing.
type Downbeat struct {
	BaseAmount, PerLevel float64
}

// NewDownbeat returns Downbeat with its catalog defaults.
func NewDownbeat() Downbeat { return Downbeat{BaseAmount: 0.2, PerLevel: 0.02} }

// Kind implements Behavior.
func (Downbeat) Kind() Kind { return KindBPSkill }

// Use implements Behavior.
func (s Downbeat) Use(_ *actor.Actor, targets []*actor.Actor, level int) []effect.Effect {
	if len(targets) == 0 {
		return nil
	}
	return []effect.Effect{
		effect.ProgressBoost{
			Target: targets[0],
			Amount: scaleByLevel(s.BaseAmount, s.PerLevel, level),
			Timing: effect.TimingNextTurn,
		},
	}
}

// Coda is Cantor Vess's ultimate: a team buff whose CRIT DMG bonus is a
// dynamic closure reading the caster's own recursive-guarded CRIT DMG —
// the canonical cyclic-reference exemplar (spec §4.6). The closure
// captures caster directly rather than reading its owner parameter,
// since the bonus scales off the commander's own stats, not each
// buffed ally's.
type Coda struct {
	ScaleFactor  float64
	FlatBonus    float64
	BuffDuration int
}

// NewCoda returns Coda with its catalog defaults.
func NewCoda() Coda { return Coda{ScaleFactor: 0.3, FlatBonus: 0.1, BuffDuration: 3} }

// Kind implements Behavior.
func (Coda) Kind() Kind { return KindUltra }

// Use implements Behavior.
func (s Coda) Use(caster *actor.Actor, targets []*actor.Actor, _ int) []effect.Effect {
	b := &buff.Buff{
		Name:     "Coda",
		Duration: s.BuffDuration,
		DynamicStat: func(buff.DynamicActor) map[string]float64 {
			casterCritDMG := caster.CurrentStats(true)["CRIT DMG"]
			return map[string]float64{"CRIT DMG": casterCritDMG*s.ScaleFactor + s.FlatBonus}
		},
	}
	return []effect.Effect{effect.Buff{Targets: targets, Buff: b, Self: false}}
}

var (
	_ Behavior = BatonPass{}
	_ Behavior = Downbeat{}
	_ Behavior = Coda{}
)
