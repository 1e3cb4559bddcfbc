package battle

import (
	"context"

	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/damage"
	"github.com/Phantomding/starrail-simulator/effect"
	"github.com/Phantomding/starrail-simulator/heal"
	"github.com/Phantomding/starrail-simulator/simerr"
	"github.com/Phantomding/starrail-simulator/skill"
)

// energyGrant is the base energy table of spec §4.10, keyed by skill kind.
var energyGrant = map[skill.Kind]float64{
	skill.KindNormal:    20,
	skill.KindBPSkill:   30,
	skill.KindUltra:     5,
	skill.KindTalent:    0,
	skill.KindTechnique: 0,
}

// Outcome is what Run returns on a clean finish: the winning side (or
// "draw"), how many rounds elapsed, and the full event log.
type Outcome struct {
	Winner string
	Rounds int
	Events []Event
}

// Run drives the battle to completion, implementing spec §4.7's round
// loop and §4.8's ultimate-preemption scan. It returns once one side is
// eliminated or c.maxRounds is reached, whichever comes first.
func (c *Context) Run(ctx context.Context) (*Outcome, error) {
	for _, e := range c.entries {
		c.fireOnBattleStart(e)
	}
	if c.checkBattleEnd() {
		return c.outcome(), nil
	}

	for c.round = 1; c.maxRounds <= 0 || c.round <= c.maxRounds; c.round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c.pool.Reset(c.round)
		if err := c.runRound(ctx); err != nil {
			return nil, err
		}
		if c.ended {
			break
		}
	}

	if !c.ended {
		c.winner = "draw"
	}
	c.emit(EventBattleEnd, "", "battle ended: "+c.winner, nil)
	return c.outcome(), nil
}

func (c *Context) outcome() *Outcome {
	return &Outcome{Winner: c.winner, Rounds: c.round, Events: c.events}
}

// runRound implements spec §4.7 step 3: preempt, let every ready actor
// act (including chained extra turns), then advance the pool until
// nobody is left ready, repeating until the round's action-value pool is
// exhausted or the battle ends.
func (c *Context) runRound(ctx context.Context) error {
	for {
		acted, err := c.checkPreemption(ctx)
		if err != nil {
			return err
		}
		if acted && c.checkBattleEnd() {
			return nil
		}

		participants := c.livingActors()
		ready := c.pool.Ready(participants)
		if len(ready) == 0 {
			if c.pool.Advance(participants) == 0 {
				return nil
			}
			continue
		}

		for _, a := range ready {
			if !a.IsAlive() {
				continue
			}
			e := c.entryByID(a.ID())
			if err := c.runTurnChain(ctx, e); err != nil {
				return err
			}
			if c.checkBattleEnd() {
				return nil
			}

			acted, err := c.checkPreemption(ctx)
			if err != nil {
				return err
			}
			if acted && c.checkBattleEnd() {
				return nil
			}
		}
	}
}

// runTurnChain runs e's turn and, if it grants itself an extra turn
// (directly or via its own talent reacting to a kill), keeps running
// those chained extra turns until none remain pending.
func (c *Context) runTurnChain(ctx context.Context, e *Entry) error {
	if err := c.runTurn(ctx, e, false); err != nil {
		return err
	}
	for e.pendingExtraTurn && e.Actor.IsAlive() {
		e.pendingExtraTurn = false
		if err := c.runTurn(ctx, e, true); err != nil {
			return err
		}
		if c.ended {
			return nil
		}
	}
	return nil
}

// runTurn executes one scheduled action for e: pick a skill and targets,
// resolve its effects, tick buffs, and bookkeep progress/energy/skill
// points. isExtraTurn marks a turn chained from this same actor's own
// ExtraTurn grant (spec §4.7 step a's re-entry guard).
func (c *Context) runTurn(ctx context.Context, e *Entry, isExtraTurn bool) error {
	c.fireOnTurnStart(e)
	c.emit(EventTurnStart, e.Actor.ID(), "turn start", nil)

	kind, slot, ok := c.resolveSkillChoice(e)
	if !ok {
		stats := make(map[string]map[string]float64, len(c.entries))
		for _, other := range c.entries {
			stats[other.Actor.ID()] = other.Actor.CurrentStats(false)
		}
		return simerr.InvariantViolation("actor has no Normal skill slot bound",
			simerr.WithMeta("actor_id", e.Actor.ID()),
			simerr.WithMeta("events", c.events),
			simerr.WithMeta("stats", stats))
	}

	targets := e.Actor.AI.ChooseTargets(e.Actor, c, slot.Target)
	if len(targets) == 0 {
		c.emit(EventForfeited, e.Actor.ID(), "no valid targets, turn forfeited", nil)
	} else if err := c.executeSkill(ctx, e, kind, slot, targets, isExtraTurn); err != nil {
		return err
	}

	if !isExtraTurn {
		c.pool.TakeTurn(e.Actor)
		c.pool.DrainOne(e.Actor)
	}
	guardID := ""
	if e.Talent != nil {
		guardID = e.Actor.ID()
	}
	e.Actor.TickBuffs(isExtraTurn, guardID)
	return nil
}

// resolveSkillChoice asks e's AI which skill kind to use and falls back
// to Normal when a chosen BPSkill can't be paid for or isn't bound (spec
// §4.9's skill-point fallback).
func (c *Context) resolveSkillChoice(e *Entry) (skill.Kind, SkillSlot, bool) {
	kind := skill.Kind(e.Actor.AI.ChooseSkill(e.Actor, c))

	if kind == skill.KindBPSkill {
		if slot, bound := e.Skills[kind]; bound && c.points.Consume(e.Actor.Side()) {
			return kind, slot, true
		}
	} else if slot, bound := e.Skills[kind]; bound {
		return kind, slot, true
	}

	normalSlot, ok := e.Skills[skill.KindNormal]
	return skill.KindNormal, normalSlot, ok
}

// executeSkill invokes the bound skill, dispatches its effects, fires the
// skill-used hooks, and grants the skill's energy and (for Normal) skill
// point.
func (c *Context) executeSkill(ctx context.Context, e *Entry, kind skill.Kind, slot SkillSlot, targets []*actor.Actor, isExtraTurn bool) error {
	e.Actor.SetLastSkillKind(string(kind))
	behavior := c.registry.Lookup(slot.ID)
	effects := behavior.Use(e.Actor, targets, slot.Level)

	if err := c.dispatchEffects(ctx, e.Actor, effects, isExtraTurn); err != nil {
		return err
	}

	c.fireOnSkillUsed(e, string(kind))
	c.emit(EventSkillUsed, e.Actor.ID(), string(kind)+" "+slot.ID, nil)

	e.Actor.GainEnergy(energyGrant[kind])
	if kind == skill.KindNormal {
		c.points.GrantFromNormal(e.Actor.Side())
	}
	return nil
}

// checkPreemption implements spec §4.8: between any two actions, any
// actor with full energy whose AI approves the cast preempts the action
// order with its ultimate. Returns whether any ultimate was cast.
func (c *Context) checkPreemption(ctx context.Context) (bool, error) {
	acted := false
	for _, e := range c.entries {
		a := e.Actor
		if !a.IsAlive() || !a.CanInstantUltimate() {
			continue
		}
		if !a.AI.ShouldCastUltimate(a, c) {
			continue
		}

		slot, ok := e.Skills[skill.KindUltra]
		if !ok {
			continue
		}
		a.SetLastSkillKind(string(skill.KindUltra))
		a.ConsumeEnergy()

		targets := a.AI.ChooseTargets(a, c, slot.Target)
		if len(targets) > 0 {
			behavior := c.registry.Lookup(slot.ID)
			effects := behavior.Use(a, targets, slot.Level)
			if err := c.dispatchEffects(ctx, a, effects, false); err != nil {
				return acted, err
			}
		}

		c.fireOnSkillUsed(e, string(skill.KindUltra))
		a.GainEnergy(energyGrant[skill.KindUltra])
		c.emit(EventUltimateCast, a.ID(), "ultimate cast (preemption)", nil)
		acted = true

		if c.checkBattleEnd() {
			return acted, nil
		}
	}
	return acted, nil
}

// dispatchEffects executes effects in emission order against the running
// battle state. inOwnExtraTurn is threaded into any kill reaction so a
// talent re-triggered by its own extra turn's kill is correctly guarded.
func (c *Context) dispatchEffects(ctx context.Context, caster *actor.Actor, effects []effect.Effect, inOwnExtraTurn bool) error {
	for _, eff := range effects {
		switch v := eff.(type) {
		case effect.Damage:
			if err := c.applyDamage(ctx, caster, v, inOwnExtraTurn); err != nil {
				return err
			}
		case effect.Heal:
			c.applyHeal(caster, v)
		case effect.Buff:
			c.applyBuff(v)
		case effect.ProgressBoost:
			c.pool.ApplyBoost(v.Target, v.Amount, v.Timing, false)
			c.emit(EventProgressBoost, v.Target.ID(), "progress boost", map[string]float64{"amount": v.Amount})
		case effect.ExtraTurn:
			if e := c.entryByID(v.Target.ID()); e != nil {
				e.pendingExtraTurn = true
			}
			c.emit(EventExtraTurn, v.Target.ID(), "extra turn granted", nil)
		}
	}
	return nil
}

func (c *Context) applyDamage(ctx context.Context, caster *actor.Actor, v effect.Damage, inOwnExtraTurn bool) error {
	for _, target := range v.Targets {
		caster.SetCurrentTarget(target)
		result, err := c.damage.Resolve(ctx, damage.Input{
			Attacker:   caster,
			Target:     target,
			Multiplier: v.Multiplier,
			Element:    v.Element,
			SkillKind:  v.SkillKind,
		}, c)
		if err != nil {
			return err
		}

		c.emit(EventDamageDealt, caster.ID(), "damage dealt to "+target.ID(), map[string]float64{"amount": result.Final})
		if result.TargetKilled {
			c.emit(EventActorKilled, target.ID(), "killed by "+caster.ID(), nil)
			if err := c.handleKill(ctx, caster, inOwnExtraTurn); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Context) applyHeal(caster *actor.Actor, v effect.Heal) {
	for _, target := range v.Targets {
		result := heal.Resolve(heal.Input{Healer: caster, Target: target, BaseAmount: v.BaseAmount, SkillKind: v.SkillKind})
		c.emit(EventHealApplied, caster.ID(), "heal applied to "+target.ID(), map[string]float64{"amount": result.Healed})
	}
}

func (c *Context) applyBuff(v effect.Buff) {
	for _, target := range v.Targets {
		target.AddBuff(v.Buff)
		c.emit(EventBuffApplied, target.ID(), "buff applied: "+v.Buff.Name, nil)
	}
}

// handleKill lets killer's own talent react to a kill it just scored,
// dispatching whatever effects it grants (typically an ExtraTurn).
// inOwnExtraTurn guards against a talent recursively re-triggering
// itself within the extra turn it already granted.
func (c *Context) handleKill(ctx context.Context, killer *actor.Actor, inOwnExtraTurn bool) error {
	e := c.entryByID(killer.ID())
	if e == nil || e.Talent == nil {
		return nil
	}
	effects := e.Talent.OnEnemyKilled(killer, inOwnExtraTurn)
	return c.dispatchEffects(ctx, killer, effects, inOwnExtraTurn)
}
