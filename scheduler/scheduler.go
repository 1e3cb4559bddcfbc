// Package scheduler implements the action-value pool, action-progress
// tracking, and per-side skill-point bookkeeping driving the round loop
// of spec §4.7-§4.9. It holds the algorithm only: deciding who is ready
// and by how much to advance everyone's progress. Turn execution itself
// (choosing a skill, resolving its effects, firing hooks) is the
// battle package's job — battle drives Pool the way
// rulebooks/dnd5e/combat.TurnManager drives an ActionEconomy, one
// decision at a time rather than owning the whole loop itself.
package scheduler

import (
	"math"
	"sort"

	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/effect"
)

// epsilon is the tolerance spec §4.7 step 3a's "progress ≥ 1 − ε" uses
// to absorb floating-point accumulation error across many small advances.
const epsilon = 1e-9

// Pool tracks the action-value pool, per-actor progress, and pending
// next-turn boosts for the round currently in progress (spec §4.7's
// State list, minus skill points which live in SkillPoints below).
type Pool struct {
	Progress     map[string]float64
	PendingBoost map[string]float64
	Value        float64
}

// NewPool returns an empty Pool ready for Reset.
func NewPool() *Pool {
	return &Pool{Progress: make(map[string]float64), PendingBoost: make(map[string]float64)}
}

// RoundValue returns the action-value pool size for the given 1-indexed
// round number: 150 for the first round, 100 thereafter (spec §4.7 step 1).
func RoundValue(round int) float64 {
	if round <= 1 {
		return 150
	}
	return 100
}

// Reset starts a new round by setting Value to RoundValue(round). It does
// not touch Progress or PendingBoost, which persist across rounds.
func (p *Pool) Reset(round int) { p.Value = RoundValue(round) }

func spd(a *actor.Actor) float64 { return a.CurrentStats(false)["SPD"] }

// Ready returns every living participant whose progress has reached
// 1-epsilon, sorted by strictly descending current SPD. Equal-SPD actors
// keep their relative order from participants (spec §5's "stable
// iteration of the participant list" tiebreak).
func (p *Pool) Ready(participants []*actor.Actor) []*actor.Actor {
	var ready []*actor.Actor
	for _, a := range participants {
		if a.IsAlive() && p.Progress[a.ID()] >= 1-epsilon {
			ready = append(ready, a)
		}
	}
	sort.SliceStable(ready, func(i, j int) bool { return spd(ready[i]) > spd(ready[j]) })
	return ready
}

// TakeTurn decrements a's progress by 1 after it acts (spec §4.7 step 3a).
func (p *Pool) TakeTurn(a *actor.Actor) { p.Progress[a.ID()] -= 1 }

// ApplyBoost folds a ProgressBoost effect's amount into target's progress
// (or the pending-boost map) according to timing, per spec §4.7's
// progress-boost timing rules. justActed reports whether TakeTurn was
// just called on target this same scheduler step — next_turn behaves
// like immediate unless that's true.
func (p *Pool) ApplyBoost(target *actor.Actor, amount float64, timing effect.ProgressBoostTiming, justActed bool) {
	switch timing {
	case effect.TimingDelayed:
		p.PendingBoost[target.ID()] += amount
	case effect.TimingNextTurn:
		if justActed {
			p.Progress[target.ID()] += amount
		} else {
			p.addImmediate(target, amount)
		}
	default:
		p.addImmediate(target, amount)
	}
}

func (p *Pool) addImmediate(target *actor.Actor, amount float64) {
	v := p.Progress[target.ID()] + amount
	if v > 1.0 {
		v = 1.0
	}
	p.Progress[target.ID()] = v
}

// DrainOne adds a's own accumulated pending next-turn boost into its
// current progress and clears it. Used right after a's progress resets
// to 0 from taking its turn (spec §4.7 step 3a) — as opposed to
// DrainPending, which drains every participant and is used after a step
// 3b pool advance.
func (p *Pool) DrainOne(a *actor.Actor) {
	if amt := p.PendingBoost[a.ID()]; amt != 0 {
		p.Progress[a.ID()] += amt
		delete(p.PendingBoost, a.ID())
	}
}

// DrainPending adds every accumulated pending next-turn boost into its
// actor's current progress and clears the pending map, per spec §4.7
// step 3b's final sentence.
func (p *Pool) DrainPending(participants []*actor.Actor) {
	for _, a := range participants {
		if amt := p.PendingBoost[a.ID()]; amt != 0 {
			p.Progress[a.ID()] += amt
		}
	}
	for k := range p.PendingBoost {
		delete(p.PendingBoost, k)
	}
}

// Advance implements spec §4.7 step 3b: find the smallest amount of pool
// that brings some living actor to ready, advance every living actor's
// progress by that amount (capped to whatever pool remains), subtract it
// from Value, and drain pending boosts. It returns the amount advanced;
// callers use a return of 0 (no living actors) to break out of the round.
func (p *Pool) Advance(participants []*actor.Actor) float64 {
	minNeed := math.Inf(1)
	anyLiving := false
	for _, a := range participants {
		if !a.IsAlive() {
			continue
		}
		anyLiving = true
		s := spd(a)
		if s <= 0 {
			continue
		}
		if need := (1 - p.Progress[a.ID()]) * (10000 / s); need < minNeed {
			minNeed = need
		}
	}
	if !anyLiving {
		return 0
	}

	advance := p.Value
	if minNeed > 0 && minNeed <= p.Value {
		advance = minNeed
	}

	for _, a := range participants {
		if a.IsAlive() {
			p.Progress[a.ID()] += advance * spd(a) / 10000
		}
	}

	p.Value -= advance
	p.DrainPending(participants)
	return advance
}

// SkillPoints tracks the per-side integer skill-point counter (spec §4.9).
type SkillPoints struct {
	Cap    int
	Values map[string]int
}

// NewSkillPoints returns a SkillPoints with the given cap, each named
// side starting at initial (spec defaults: cap 5, initial 3).
func NewSkillPoints(cap, initial int, sides ...string) *SkillPoints {
	sp := &SkillPoints{Cap: cap, Values: make(map[string]int)}
	for _, side := range sides {
		sp.Values[side] = initial
	}
	return sp
}

// Available returns side's current skill-point count.
func (sp *SkillPoints) Available(side string) int { return sp.Values[side] }

// GrantFromNormal credits side with +1 skill point for using a Normal
// attack, capped at Cap.
func (sp *SkillPoints) GrantFromNormal(side string) {
	if sp.Values[side] < sp.Cap {
		sp.Values[side]++
	}
}

// Consume spends one of side's skill points for a battle skill. It
// returns false and changes nothing if none are available — callers use
// that to trigger the Normal-attack fallback (spec §4.9).
func (sp *SkillPoints) Consume(side string) bool {
	if sp.Values[side] <= 0 {
		return false
	}
	sp.Values[side]--
	return true
}
