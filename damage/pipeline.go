// Package damage implements the damage pipeline (component D, spec §4.3):
// attacker-side amplification and crit, target-side defense, resistance,
// and independent reductions, plus the break-damage side effect that
// fires when an enemy's toughness crosses from positive to zero.
//
// Grounded on original_source/starrail/core/skills/damage_system.py's
// DamageCalculator.calculate_damage, staged through
// core/chain.StagedChain[T] the way core/chain/staged.go's own doc
// comment commits this package to doing.
package damage

import (
	"context"
	"fmt"
	"math"

	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/core/chain"
	cdamage "github.com/Phantomding/starrail-simulator/core/damage"
	"github.com/Phantomding/starrail-simulator/dice"
	"github.com/Phantomding/starrail-simulator/equipment"
)

// Skill kind strings recognized by the damage pipeline's skill-type
// bonus and toughness tables. Every other skill kind contributes no
// skill-type bonus and no toughness damage.
const (
	SkillNormal   = "Normal"
	SkillBPSkill  = "BPSkill"
	SkillUltra    = "Ultra"
	SkillFollowUp = "Follow-up"
	SkillBreak    = "Break"
)

// breakBaseCoefficient is the fixed base break-damage coefficient from
// spec §6.
const breakBaseCoefficient = 1883.8

// The four named pipeline stages, run in this order.
const (
	stageAttacker    chain.Stage = "attacker"
	stageDefense     chain.Stage = "defense"
	stageResistance  chain.Stage = "resistance"
	stageIndependent chain.Stage = "independent"
)

// Input describes one damage instance to resolve.
type Input struct {
	Attacker   *actor.Actor
	Target     *actor.Actor
	Multiplier float64
	Element    cdamage.Element
	SkillKind  string

	// ForceCrit and CritImmune override the normal crit roll, used by
	// damage-preview tooling; battle play leaves both false.
	ForceCrit  bool
	CritImmune bool
}

// Result reports the outcome of one resolved damage instance, including
// any break damage it triggered.
type Result struct {
	Element     cdamage.Element
	SkillKind   string
	IsCrit      bool
	Theoretical float64
	Final       float64
	HPLost      float64

	ToughnessDamage float64
	BrokeToughness  bool
	BreakResult     *Result

	TargetKilled bool
}

// calc is the value threaded through the staged chain. It starts from an
// Input and accumulates the running damage total plus crit metadata.
type calc struct {
	Input
	isCrit      bool
	theoretical float64
	running     float64
}

// Pipeline is a configured damage resolver. Build one per battle and
// reuse it for every damage instance; it holds no per-instance state.
type Pipeline struct {
	full        *chain.StagedChain[*calc]
	breakOnly   *chain.StagedChain[*calc]
	roller      dice.Roller
	onBuffPanic func(buffName string, recovered any)
}

// NewPipeline builds a Pipeline using roller for crit rolls. onBuffPanic,
// if non-nil, is invoked when a dynamic buff closure panics while
// contributing to the damage bonus (spec §7); it may be nil.
func NewPipeline(roller dice.Roller, onBuffPanic func(buffName string, recovered any)) *Pipeline {
	p := &Pipeline{
		full:        chain.NewStagedChain[*calc]([]chain.Stage{stageAttacker, stageDefense, stageResistance, stageIndependent}),
		breakOnly:   chain.NewStagedChain[*calc]([]chain.Stage{stageDefense, stageResistance, stageIndependent}),
		roller:      roller,
		onBuffPanic: onBuffPanic,
	}

	_ = p.full.Add(stageAttacker, "attacker-amplification", p.attackerStage)
	for _, c := range []*chain.StagedChain[*calc]{p.full, p.breakOnly} {
		_ = c.Add(stageDefense, "defense-reduction", p.defenseStage)
		_ = c.Add(stageResistance, "resistance-reduction", p.resistanceStage)
		_ = c.Add(stageIndependent, "independent-reductions", p.independentStage)
	}

	return p
}

// Resolve runs the full attacker/defense/resistance/independent pipeline
// for in, applies the resulting HP loss to in.Target, fires the
// damage-dealt/damage-received/enemy-killed hooks, and — for an enemy
// target whose toughness crosses to zero on a weakness-matching element —
// computes and applies a nested Break damage instance. battle supplies
// the BattleHooks view the light-cone and relic-set hooks need.
func (p *Pipeline) Resolve(ctx context.Context, in Input, battle equipment.BattleHooks) (*Result, error) {
	result, err := p.run(ctx, p.full, in)
	if err != nil {
		return nil, err
	}
	p.applyAndFireHooks(in, result, battle)

	if in.Target.Side() == "enemy" && in.SkillKind != SkillBreak {
		toughnessDamage := toughnessDamageFor(in.SkillKind)
		if toughnessDamage > 0 && isWeakness(in.Target, in.Element) {
			result.ToughnessDamage = toughnessDamage
			result.BrokeToughness = in.Target.ApplyToughnessDamage(toughnessDamage)
			if result.BrokeToughness {
				breakResult, err := p.resolveBreak(ctx, in, battle)
				if err != nil {
					return result, err
				}
				result.BreakResult = breakResult
				result.TargetKilled = result.TargetKilled || breakResult.TargetKilled
			}
		}
	}

	return result, nil
}

func (p *Pipeline) run(ctx context.Context, c *chain.StagedChain[*calc], in Input) (*Result, error) {
	state := &calc{Input: in}
	state, err := c.Execute(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("damage: %w", err)
	}

	final := math.Max(1, state.running)
	return &Result{
		Element:     in.Element,
		SkillKind:   in.SkillKind,
		IsCrit:      state.isCrit,
		Theoretical: state.theoretical,
		Final:       final,
	}, nil
}

func (p *Pipeline) applyAndFireHooks(in Input, result *Result, battle equipment.BattleHooks) {
	wasAlive := in.Target.IsAlive()
	result.HPLost = in.Target.ApplyDamage(result.Final)

	fireOnDamageDealt(in.Attacker, battle, result.Final, in.SkillKind)
	fireOnDamageReceived(in.Target, battle, result.Final)

	if wasAlive && !in.Target.IsAlive() {
		result.TargetKilled = true
		fireOnEnemyKilled(in.Attacker, battle)
	}
}

// resolveBreak computes and applies the break-damage side effect
// triggered by in.Target's toughness crossing to zero. Break damage
// bypasses the attacker's DEF Ignore % and never crits; its base amount
// comes from the fixed break-coefficient formula (spec §6), not from
// attacker ATK.
func (p *Pipeline) resolveBreak(ctx context.Context, in Input, battle equipment.BattleHooks) (*Result, error) {
	breakEffect := in.Attacker.CurrentStats(false)["Break Effect"]
	theoretical := breakBaseCoefficient * in.Element.BreakCoefficient() *
		((in.Target.MaxToughness + 20) / 40) * (1 + breakEffect)

	breakIn := in
	breakIn.SkillKind = SkillBreak

	state := &calc{Input: breakIn, theoretical: theoretical, running: theoretical}
	state, err := p.breakOnly.Execute(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("damage: break: %w", err)
	}

	result := &Result{
		Element:     in.Element,
		SkillKind:   SkillBreak,
		Theoretical: theoretical,
		Final:       math.Max(1, state.running),
	}
	p.applyAndFireHooks(breakIn, result, battle)
	return result, nil
}

func toughnessDamageFor(skillKind string) float64 {
	switch skillKind {
	case SkillNormal:
		return 10
	case SkillBPSkill:
		return 20
	case SkillUltra:
		return 30
	default:
		return 0
	}
}

func isWeakness(target *actor.Actor, element cdamage.Element) bool {
	for _, w := range target.Weaknesses {
		if w == element {
			return true
		}
	}
	return false
}

func fireOnDamageDealt(attacker *actor.Actor, battle equipment.BattleHooks, amount float64, skillKind string) {
	if attacker.LightCone != nil {
		attacker.LightCone.Skill.OnDamageDealt(attacker, battle, amount, skillKind)
	}
	for _, set := range equipment.ActiveSets(attacker.Relics, attacker.SetRegistry) {
		set.Skill.OnDamageDealt(attacker, battle, amount, skillKind)
	}
}

func fireOnDamageReceived(target *actor.Actor, battle equipment.BattleHooks, amount float64) {
	if target.LightCone != nil {
		target.LightCone.Skill.OnDamageReceived(target, battle, amount)
	}
	for _, set := range equipment.ActiveSets(target.Relics, target.SetRegistry) {
		set.Skill.OnDamageReceived(target, battle, amount)
	}
}

func fireOnEnemyKilled(attacker *actor.Actor, battle equipment.BattleHooks) {
	if attacker.LightCone != nil {
		attacker.LightCone.Skill.OnEnemyKilled(attacker, battle)
	}
	for _, set := range equipment.ActiveSets(attacker.Relics, attacker.SetRegistry) {
		set.Skill.OnEnemyKilled(attacker, battle)
	}
}
