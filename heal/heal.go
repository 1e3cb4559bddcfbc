// Package heal implements the healing pipeline (component E, spec §4.4).
// It is a single formula rather than a staged chain — healing has no
// defense/resistance analogue, just an outgoing multiplier on the
// healer's side and an incoming multiplier on the target's side.
//
// Grounded on
// original_source/starrail/core/skills/heal_system.py's
// HealCalculator.calculate_heal_amount.
package heal

import "github.com/Phantomding/starrail-simulator/actor"

// Input describes one heal instance to resolve.
type Input struct {
	Healer *actor.Actor
	Target *actor.Actor

	// BaseAmount is the skill's flat heal amount before any boost is
	// applied (params[level-1][index] from the catalog).
	BaseAmount float64

	// SkillKind selects which of the healer's light-cone skill-hook
	// healing bonuses, if any, applies (e.g. a bonus that only fires on
	// Ultra).
	SkillKind string

	// TalentBonus is an additive fractional bonus contributed by the
	// healer's own talent (spec §4.5's talent contract), separate from
	// anything already folded into Outgoing Healing Boost.
	TalentBonus float64
}

// Result reports the outcome of one resolved heal instance.
type Result struct {
	Amount float64
	Healed float64
}

// Resolve computes the final heal amount and applies it to in.Target,
// implementing spec §4.4's formula:
//
//	final = base × (1 + outgoing_healing_boost + light_cone_bonus + talent_bonus) × (1 + incoming_healing_boost)
func Resolve(in Input) *Result {
	healerStats := in.Healer.CurrentStats(false)
	outgoing := healerStats["Outgoing Healing Boost"]

	lightConeBonus := 0.0
	if in.Healer.LightCone != nil {
		lightConeBonus = in.Healer.LightCone.Skill.GetHealingBonus(in.SkillKind)
	}

	amount := in.BaseAmount * (1 + outgoing + lightConeBonus + in.TalentBonus)

	incoming := in.Target.CurrentStats(false)["Incoming Healing Boost"]
	amount *= 1 + incoming

	healed := in.Target.Heal(amount)
	return &Result{Amount: amount, Healed: healed}
}
