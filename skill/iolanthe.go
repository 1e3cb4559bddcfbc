// Iolanthe Reyes (Ice Abundance healer) — grounded on
// original_source/starrail/core/skills/natasha_skills.py.
package skill

import (
	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/buff"
	"github.com/Phantomding/starrail-simulator/core/damage"
	"github.com/Phantomding/starrail-simulator/effect"
)

// PalliativeNeedle is Iolanthe Reyes's basic attack: a small poke that
// also restores a sliver of her own HP, grounded on natasha_skills.py's
// basic attack carrying a minor self-heal alongside its damage.
type PalliativeNeedle struct {
	DamageMultiplier, PerLevel float64
	SelfHealBase, PerLevelHeal float64
}

// NewPalliativeNeedle returns PalliativeNeedle with its catalog defaults.
func NewPalliativeNeedle() PalliativeNeedle {
	return PalliativeNeedle{DamageMultiplier: 0.8, PerLevel: 0.08, SelfHealBase: 20, PerLevelHeal: 2}
}

// Kind implements Behavior.
func (PalliativeNeedle) Kind() Kind { return KindNormal }

// Use implements Behavior.
func (s PalliativeNeedle) Use(caster *actor.Actor, targets []*actor.Actor, level int) []effect.Effect {
	return []effect.Effect{
		effect.Damage{
			Targets:    targets,
			Multiplier: scaleByLevel(s.DamageMultiplier, s.PerLevel, level),
			Element:    damage.Ice,
			SkillKind:  string(KindNormal),
		},
		effect.Heal{
			Targets:    []*actor.Actor{caster},
			BaseAmount: scaleByLevel(s.SelfHealBase, s.PerLevelHeal, level),
			SkillKind:  string(KindNormal),
		},
	}
}

// SutureField is Iolanthe Reyes's battle skill: a single-target heal.
// AI resolves the lowest-HP-ratio ally into targets before Use runs
// (actor.TargetLowestHPRatioAlly).
type SutureField struct {
	BaseAmount, PerLevel float64
}

// NewSutureField returns SutureField with its catalog defaults.
func NewSutureField() SutureField { return SutureField{BaseAmount: 300, PerLevel: 30} }

// Kind implements Behavior.
func (SutureField) Kind() Kind { return KindBPSkill }

// Use implements Behavior.
func (s SutureField) Use(_ *actor.Actor, targets []*actor.Actor, level int) []effect.Effect {
	return []effect.Effect{
		effect.Heal{Targets: targets, BaseAmount: scaleByLevel(s.BaseAmount, s.PerLevel, level), SkillKind: string(KindBPSkill)},
	}
}

// FieldHospital is Iolanthe Reyes's ultimate: a team-wide heal plus a
// self-buff that raises her own outgoing healing for a few rounds.
type FieldHospital struct {
	BaseAmount, PerLevel float64
	OutgoingBoost        float64
	BuffDuration         int
}

// NewFieldHospital returns FieldHospital with its catalog defaults.
func NewFieldHospital() FieldHospital {
	return FieldHospital{BaseAmount: 250, PerLevel: 25, OutgoingBoost: 0.15, BuffDuration: 3}
}

// Kind implements Behavior.
func (FieldHospital) Kind() Kind { return KindUltra }

// Use implements Behavior.
func (s FieldHospital) Use(caster *actor.Actor, targets []*actor.Actor, level int) []effect.Effect {
	return []effect.Effect{
		effect.Heal{Targets: targets, BaseAmount: scaleByLevel(s.BaseAmount, s.PerLevel, level), SkillKind: string(KindUltra)},
		effect.Buff{
			Targets: []*actor.Actor{caster},
			Buff: &buff.Buff{
				Name:        "Field Hospital",
				Duration:    s.BuffDuration,
				StaticStats: map[string]float64{"Outgoing Healing Boost": s.OutgoingBoost},
				SelfBuff:    true,
			},
			Self: true,
		},
	}
}

var (
	_ Behavior = PalliativeNeedle{}
	_ Behavior = SutureField{}
	_ Behavior = FieldHospital{}
)
