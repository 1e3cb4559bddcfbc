// Package ai provides actor.AIPolicy implementations: closures over the
// three decision points spec §4.11 fixes (cast ultimate, choose skill
// kind, choose targets). Grounded on
// original_source/starrail/core/ai_strategies.py's seele_smart_ai/
// seele_balanced_ai/seele_buff_focused_ai/natasha_smart_ai/
// natasha_select_heal_targets family of strategy functions, collapsed
// into one Policy struct-of-closures per actor.AIPolicy's fixed shape
// rather than kept as loose free functions.
package ai

import (
	"sort"

	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/dice"
	"github.com/Phantomding/starrail-simulator/skill"
)

// Policy implements actor.AIPolicy as three independently swappable
// closures, so a character's decision-making can mix, e.g., a
// probability-weighted skill choice with the default targeting.
type Policy struct {
	ShouldCastUltimateFunc func(a *actor.Actor, battle actor.BattleView) bool
	ChooseSkillFunc        func(a *actor.Actor, battle actor.BattleView) string
	ChooseTargetsFunc      func(a *actor.Actor, battle actor.BattleView, want actor.TargetShape) []*actor.Actor
}

func (p Policy) ShouldCastUltimate(a *actor.Actor, battle actor.BattleView) bool {
	return p.ShouldCastUltimateFunc(a, battle)
}

func (p Policy) ChooseSkill(a *actor.Actor, battle actor.BattleView) string {
	return p.ChooseSkillFunc(a, battle)
}

func (p Policy) ChooseTargets(a *actor.Actor, battle actor.BattleView, want actor.TargetShape) []*actor.Actor {
	return p.ChooseTargetsFunc(a, battle, want)
}

var _ actor.AIPolicy = Policy{}

// DefaultShouldCastUltimate casts as soon as energy is full, matching
// seele_should_cast_ultimate/default_should_cast_ultimate: the
// "not in extra turn" half of those functions is not this closure's
// job — the scheduler itself withholds the preemption check entirely
// while resolving an extra turn (spec §4.7).
func DefaultShouldCastUltimate(a *actor.Actor, _ actor.BattleView) bool {
	return a.CanInstantUltimate()
}

// ProbabilityShouldCastUltimate withholds the cast with probability
// 1-chance per opportunity, grounded on seele_balanced_ai's 70%-skill/
// 30%-basic weighting, generalized from "which skill" to "cast now or
// wait".
func ProbabilityShouldCastUltimate(roller dice.Roller, chance float64) func(*actor.Actor, actor.BattleView) bool {
	return func(a *actor.Actor, _ actor.BattleView) bool {
		return a.CanInstantUltimate() && roller.Chance(chance)
	}
}

// BuffAwareShouldCastUltimate withholds the cast while buffName is
// already active on any living ally, grounded on seele_buff_focused_ai's
// has_spd_buff gate (there gating a battle-skill choice; here gating the
// ultimate decision, the same "don't reapply a buff that's already up"
// shape).
func BuffAwareShouldCastUltimate(buffName string) func(*actor.Actor, actor.BattleView) bool {
	return func(a *actor.Actor, battle actor.BattleView) bool {
		if !a.CanInstantUltimate() {
			return false
		}
		for _, ally := range battle.LivingAlliesOf(a.Side()) {
			if ally.Buffs.Find(buffName) != nil {
				return false
			}
		}
		return true
	}
}

// DefaultChooseSkill prefers BPSkill when the side has a skill point to
// spend and falls back to Normal otherwise, matching seele_smart_ai's
// can_use_skill gate chosen proactively rather than left to the
// registry's reactive fallback (spec §4.9/§4.11).
func DefaultChooseSkill(a *actor.Actor, battle actor.BattleView) string {
	if battle.SkillPointsAvailable(a.Side()) > 0 {
		return string(skill.KindBPSkill)
	}
	return string(skill.KindNormal)
}

// DefaultChooseTargets picks the single lowest-HP living enemy for
// TargetSingleEnemy, all living enemies for TargetAllEnemies, and falls
// through to the healer selector for ally-shaped wants — so a single
// policy works for both DPS and support roles unless overridden.
func DefaultChooseTargets(a *actor.Actor, battle actor.BattleView, want actor.TargetShape) []*actor.Actor {
	switch want {
	case actor.TargetAllEnemies:
		return battle.LivingEnemiesOf(a.Side())
	case actor.TargetLowestHPRatioAlly:
		return HealerChooseTargets(a, battle, want)
	case actor.TargetSelf:
		return []*actor.Actor{a}
	default:
		enemies := battle.LivingEnemiesOf(a.Side())
		if len(enemies) == 0 {
			return nil
		}
		lowest := enemies[0]
		for _, e := range enemies[1:] {
			if e.HP < lowest.HP {
				lowest = e
			}
		}
		return []*actor.Actor{lowest}
	}
}

// HealerChooseTargets picks the single lowest-HP-ratio living ally,
// grounded directly on natasha_select_heal_targets: sort damaged allies
// by hp/max_hp ascending and take the first; if no ally is damaged, heal
// self. Non-ally-shaped wants fall back to DefaultChooseTargets's enemy
// logic so a healer can still be asked to attack.
func HealerChooseTargets(a *actor.Actor, battle actor.BattleView, want actor.TargetShape) []*actor.Actor {
	if want != actor.TargetLowestHPRatioAlly {
		return DefaultChooseTargets(a, battle, want)
	}

	allies := battle.LivingAlliesOf(a.Side())
	damaged := make([]*actor.Actor, 0, len(allies))
	for _, ally := range allies {
		if ally.HPRatio() < 1.0 {
			damaged = append(damaged, ally)
		}
	}
	if len(damaged) == 0 {
		return []*actor.Actor{a}
	}
	sort.Slice(damaged, func(i, j int) bool { return damaged[i].HPRatio() < damaged[j].HPRatio() })
	return []*actor.Actor{damaged[0]}
}

// Default is the stock policy: cast ultimates on cooldown, prefer
// battle skills when a skill point is available, and target per
// DefaultChooseTargets.
func Default() Policy {
	return Policy{
		ShouldCastUltimateFunc: DefaultShouldCastUltimate,
		ChooseSkillFunc:        DefaultChooseSkill,
		ChooseTargetsFunc:      DefaultChooseTargets,
	}
}

// Healer is the stock support policy: same ultimate/skill choices as
// Default, but targets via HealerChooseTargets.
func Healer() Policy {
	return Policy{
		ShouldCastUltimateFunc: DefaultShouldCastUltimate,
		ChooseSkillFunc:        DefaultChooseSkill,
		ChooseTargetsFunc:      HealerChooseTargets,
	}
}
