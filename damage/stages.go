package damage

import "context"

// attackerStage computes base damage, the damage-bonus sum, and the crit
// roll, producing the theoretical damage total (spec §4.3 attacker steps
// 1-5). It is not registered on the break-only chain: break damage's
// theoretical total comes from the fixed break-coefficient formula
// instead (resolveBreak pre-seeds calc.theoretical/running).
func (p *Pipeline) attackerStage(_ context.Context, c *calc) (*calc, error) {
	stats := c.Attacker.CurrentStats(false)

	base := stats["ATK"] * c.Multiplier

	bonus := 0.0
	if c.Element != "" {
		bonus += stats[string(c.Element)+" DMG"]
	}
	bonus += skillTypeBonus(stats, c.SkillKind)
	bonus += c.Attacker.Buffs.GetDamageBonus(c.Attacker, c.Element, p.onBuffPanic)

	isCrit := p.rollCrit(c, stats)
	critMult := 1.0
	if isCrit {
		critMult = 1 + stats["CRIT DMG"]
	}

	c.isCrit = isCrit
	c.theoretical = base * (1 + bonus) * critMult
	c.running = c.theoretical
	return c, nil
}

func (p *Pipeline) rollCrit(c *calc, attackerStats map[string]float64) bool {
	if c.CritImmune {
		return false
	}
	if c.ForceCrit {
		return true
	}
	return p.roller.Chance(attackerStats["CRIT Rate"])
}

func skillTypeBonus(attackerStats map[string]float64, skillKind string) float64 {
	switch skillKind {
	case SkillUltra:
		return attackerStats["Ultimate DMG"]
	case SkillFollowUp:
		return attackerStats["Follow-up DMG"]
	case SkillBreak:
		return attackerStats["Break DMG"]
	default:
		return 0
	}
}

// defenseStage applies the level-scaled defense reduction (spec §4.3
// target step 1). DEF Ignore % is the attacker's own stat and is skipped
// entirely for Break damage.
func (p *Pipeline) defenseStage(_ context.Context, c *calc) (*calc, error) {
	defEff := c.Target.CurrentStats(false)["DEF"]
	if c.SkillKind != SkillBreak {
		defIgnore := c.Attacker.CurrentStats(false)["DEF Ignore %"]
		defEff *= 1 - defIgnore
	}

	reduction := defEff / (defEff + float64(c.Attacker.Level())*10 + 200)
	c.running *= 1 - reduction
	return c, nil
}

// resistanceStage applies the target's elemental resistance net of the
// attacker's penetration, clamped so the multiplier never drops below
// 0.1 (spec §4.3 target step 2).
func (p *Pipeline) resistanceStage(_ context.Context, c *calc) (*calc, error) {
	if c.Element == "" {
		return c, nil
	}

	resistance := c.Target.Resistances[c.Element]
	penetration := c.Attacker.Buffs.GetElementPenetration()

	mult := 1 - (resistance - penetration)
	if mult < 0.1 {
		mult = 0.1
	}
	c.running *= mult
	return c, nil
}

// independentStage applies the target's independent damage reductions,
// the 10% toughness-present discount (skipped for Break), and the
// target's incoming-damage amplifiers (spec §4.3 target steps 3-4).
func (p *Pipeline) independentStage(_ context.Context, c *calc) (*calc, error) {
	c.running *= c.Target.Buffs.GetIndependentReductionMultiplier()
	if c.Target.Toughness > 0 && c.SkillKind != SkillBreak {
		c.running *= 0.9
	}
	c.running *= c.Target.Buffs.GetDamageTakenMultiplier()
	return c, nil
}
