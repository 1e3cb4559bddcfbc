// Package actor implements the battle participant: identity, stat
// aggregation, buff ownership, HP/energy/toughness bookkeeping, and the
// minimal hook/AI interfaces that let equipment and AI policies reach into
// an actor without this package importing either of them back.
//
// Grounded on original_source/starrail/core/character.py.
package actor

import (
	"github.com/Phantomding/starrail-simulator/buff"
	"github.com/Phantomding/starrail-simulator/core"
	"github.com/Phantomding/starrail-simulator/core/damage"
	"github.com/Phantomding/starrail-simulator/equipment"
)

// Actor is a single battle participant. Its lifecycle spans one battle.
type Actor struct {
	id    string
	name  string
	side  string
	path  string
	level int

	// BaseStats is the character's own stat sheet before any equipment,
	// trace, or buff contribution (spec §4.1 step 1).
	BaseStats map[string]float64

	HP           float64
	Energy       float64
	MaxEnergy    float64
	Toughness    float64
	MaxToughness float64

	Weaknesses   []damage.Element
	Resistances  map[damage.Element]float64

	LightCone   *equipment.LightCone
	Relics      []*equipment.Relic
	SetRegistry equipment.SetRegistry
	Traces      map[string]float64

	Buffs *buff.Container

	AI AIPolicy

	CurrentTarget *Actor

	lastSkillKind string

	// PanicLogger is invoked when a dynamic buff closure panics during
	// stat aggregation; nil is a valid, silent default.
	PanicLogger func(buffName string, recovered any)
}

// Config is the set of values needed to construct an Actor from catalog
// data or a hand-built test fixture.
type Config struct {
	ID           string
	Name         string
	Side         string
	Path         string
	Level        int
	BaseStats    map[string]float64
	MaxEnergy    float64
	MaxToughness float64
	Weaknesses   []damage.Element
	Resistances  map[damage.Element]float64
	Traces       map[string]float64
	LightCone    *equipment.LightCone
	Relics       []*equipment.Relic
	SetRegistry  equipment.SetRegistry
	AI           AIPolicy
}

// New builds an Actor and seeds its HP at max HP, computed with the
// recursive guard set (mirrors character.py's constructor, which computes
// get_current_stats(recursive_guard=True) before any buff exists anyway).
func New(cfg Config) *Actor {
	a := &Actor{
		id:            cfg.ID,
		name:          cfg.Name,
		side:          cfg.Side,
		path:          cfg.Path,
		level:         cfg.Level,
		BaseStats:     cfg.BaseStats,
		MaxEnergy:     cfg.MaxEnergy,
		Toughness:     cfg.MaxToughness,
		MaxToughness:  cfg.MaxToughness,
		Weaknesses:    cfg.Weaknesses,
		Resistances:   cfg.Resistances,
		LightCone:     cfg.LightCone,
		Relics:        cfg.Relics,
		SetRegistry:   cfg.SetRegistry,
		Traces:        cfg.Traces,
		Buffs:         buff.NewContainer(),
		AI:            cfg.AI,
		lastSkillKind: "Normal",
	}
	a.HP = a.CurrentStats(true)["HP"]
	return a
}

// ID returns the actor's unique identifier.
func (a *Actor) ID() string { return a.id }

// GetID implements core.Entity.
func (a *Actor) GetID() string { return a.id }

// GetType implements core.Entity.
func (a *Actor) GetType() string { return "actor" }

// Name returns the actor's display name.
func (a *Actor) Name() string { return a.name }

// Side returns the actor's team tag.
func (a *Actor) Side() string { return a.side }

// Path returns the actor's archetype tag, used to gate light-cone passives.
func (a *Actor) Path() string { return a.path }

// Level returns the actor's level, used in the damage pipeline's defense
// formula.
func (a *Actor) Level() int { return a.level }

// MaxHP returns the actor's current aggregated max HP.
func (a *Actor) MaxHP() float64 { return a.CurrentStats(false)["HP"] }

// HPRatio returns HP/MaxHP, or 0 if MaxHP is 0.
func (a *Actor) HPRatio() float64 {
	max := a.MaxHP()
	if max <= 0 {
		return 0
	}
	return a.HP / max
}

// IsAlive reports whether the actor's HP is above zero.
func (a *Actor) IsAlive() bool { return a.HP > 0 }

// ApplyDamage reduces HP by amount, clamped at 0, and returns the HP
// actually lost.
func (a *Actor) ApplyDamage(amount float64) float64 {
	before := a.HP
	a.HP -= amount
	if a.HP < 0 {
		a.HP = 0
	}
	return before - a.HP
}

// Heal increases HP by amount, clamped to MaxHP, and returns the HP
// actually restored.
func (a *Actor) Heal(amount float64) float64 {
	before := a.HP
	max := a.MaxHP()
	a.HP += amount
	if a.HP > max {
		a.HP = max
	}
	return a.HP - before
}

// ApplyToughnessDamage reduces Toughness by amount, clamped to 0, and
// reports whether this call crossed Toughness from positive to zero (the
// trigger condition for a Break damage instance, spec §4.3).
func (a *Actor) ApplyToughnessDamage(amount float64) (crossedToZero bool) {
	wasPositive := a.Toughness > 0
	a.Toughness -= amount
	if a.Toughness < 0 {
		a.Toughness = 0
	}
	return wasPositive && a.Toughness == 0
}

// GainEnergy grants baseAmount scaled by the actor's current Energy
// Regeneration Rate, clamped to MaxEnergy, and returns the energy actually
// gained (spec §4.10).
func (a *Actor) GainEnergy(baseAmount float64) float64 {
	if baseAmount <= 0 {
		return 0
	}
	regenRate := a.CurrentStats(false)["Energy Regeneration Rate"]
	before := a.Energy
	a.Energy += baseAmount * (1 + regenRate)
	if a.Energy > a.MaxEnergy {
		a.Energy = a.MaxEnergy
	}
	return a.Energy - before
}

// CanInstantUltimate reports whether the actor has reached max energy.
func (a *Actor) CanInstantUltimate() bool { return a.Energy >= a.MaxEnergy && a.MaxEnergy > 0 }

// ConsumeEnergy spends the full energy pool for an ultimate cast. It
// returns false (and changes nothing) if energy isn't full yet.
func (a *Actor) ConsumeEnergy() bool {
	if !a.CanInstantUltimate() {
		return false
	}
	a.Energy = 0
	return true
}

// AddBuff installs b on the actor, implementing equipment.HookActor.
func (a *Actor) AddBuff(b *buff.Buff) { a.Buffs.Add(b) }

// RemoveBuff removes the named buff, if present.
func (a *Actor) RemoveBuff(name string) { a.Buffs.Remove(name) }

// TickBuffs runs the end-of-turn buff duration rules (spec §4.2).
// extraTurnGuardID names the character id whose own extra turns skip the
// decrement; pass "" if this actor has no such guard.
func (a *Actor) TickBuffs(isExtraTurn bool, extraTurnGuardID string) {
	a.Buffs.TickEndOfTurn(isExtraTurn, a.id, extraTurnGuardID)
}

// LastSkillKind returns the skill type most recently used by this actor,
// implementing equipment.HookActor.
func (a *Actor) LastSkillKind() string { return a.lastSkillKind }

// SetLastSkillKind records the skill type just used.
func (a *Actor) SetLastSkillKind(kind string) { a.lastSkillKind = kind }

// SetCurrentTarget records the target this actor's in-flight action is
// aimed at, so dynamic buffs that read "is my target weak to X" can
// resolve it.
func (a *Actor) SetCurrentTarget(target *Actor) { a.CurrentTarget = target }

// CurrentTargetWeaknesses returns the current target's weaknesses, or nil
// if no target is set, implementing equipment.HookActor.
func (a *Actor) CurrentTargetWeaknesses() []damage.Element {
	if a.CurrentTarget == nil {
		return nil
	}
	return a.CurrentTarget.Weaknesses
}

var (
	_ core.Entity         = (*Actor)(nil)
	_ buff.DynamicActor   = (*Actor)(nil)
	_ equipment.HookActor = (*Actor)(nil)
)
