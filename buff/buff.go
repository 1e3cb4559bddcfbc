// Package buff implements the time-bounded modifier container described in
// spec component B. Buffs carry both static contributions and closures that
// are evaluated at query time against the owning actor, which is how
// light-cone and relic-set effects express "while SPD >= 120" style
// conditions that cannot be resolved at equip time.
//
// Grounded on original_source/starrail/core/skills/buff.py.
package buff

import (
	"github.com/Phantomding/starrail-simulator/core/damage"
)

// DynamicActor is the minimal view a dynamic closure needs of its owner.
// actor.Actor satisfies this interface structurally; this package never
// imports the actor package, which keeps buff a dependency-free leaf.
type DynamicActor interface {
	// CurrentStats returns the owner's aggregated stats. When recursiveGuard
	// is true (set by the aggregator while already evaluating this same
	// actor's dynamic layer) the dynamic layer itself must be skipped by the
	// implementation to avoid infinite recursion.
	CurrentStats(recursiveGuard bool) map[string]float64
}

// DynamicStatFunc computes additional stat contributions at query time.
type DynamicStatFunc func(owner DynamicActor) map[string]float64

// DynamicDamageFunc computes an additional damage-bonus scalar at query
// time, evaluated once per damage instance.
type DynamicDamageFunc func(owner DynamicActor) float64

// Buff is a single time-bounded modifier. See spec §3 for the field list.
type Buff struct {
	Name     string
	Duration int // rounds remaining; -1 means permanent

	StaticStats         map[string]float64
	StaticDamageBonus    float64
	ElementPenetration   float64
	IndependentReduction float64 // fraction of incoming damage nullified
	DamageTakenIncrease  float64 // fraction of incoming damage amplified

	DynamicStat   DynamicStatFunc
	DynamicDamage DynamicDamageFunc

	Stackable    bool
	SelfBuff     bool
	FreshlyAdded bool

	// Element, when non-empty, scopes a damage-bonus buff to a single
	// element instead of applying to all damage the owner deals.
	Element damage.Element
}

// Container holds the buffs currently active on one actor.
type Container struct {
	buffs []*Buff
}

// NewContainer returns an empty buff container.
func NewContainer() *Container {
	return &Container{}
}

// All returns the active buffs in application order. Callers must not
// mutate the returned slice.
func (c *Container) All() []*Buff {
	return c.buffs
}

// Find returns the buff with the given name, or nil.
func (c *Container) Find(name string) *Buff {
	for _, b := range c.buffs {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Add applies the add policy from spec §4.2: a non-stackable buff sharing a
// name with an existing buff replaces that entry's fields in place (its
// duration included) and is marked freshly-added, rather than creating a
// second instance.
func (c *Container) Add(b *Buff) {
	if !b.Stackable {
		if existing := c.Find(b.Name); existing != nil {
			*existing = *b
			existing.FreshlyAdded = true
			return
		}
	}
	b.FreshlyAdded = true
	c.buffs = append(c.buffs, b)
}

// Remove deletes the buff with the given name, if present.
func (c *Container) Remove(name string) {
	for i, b := range c.buffs {
		if b.Name == name {
			c.buffs = append(c.buffs[:i], c.buffs[i+1:]...)
			return
		}
	}
}

// TickEndOfTurn applies the end-of-turn duration rules from spec §4.2. It
// must run once, after the owner's action has fully resolved.
//
// extraTurnGuardID names the character id whose own extra turns skip the
// decrement entirely (spec §4.2's self-feeding-loop guard); pass an empty
// string if this owner has no such guard.
func (c *Container) TickEndOfTurn(isExtraTurn bool, ownerID, extraTurnGuardID string) {
	if isExtraTurn && extraTurnGuardID != "" && ownerID == extraTurnGuardID {
		return
	}

	remaining := c.buffs[:0]
	for _, b := range c.buffs {
		if b.Duration == -1 {
			remaining = append(remaining, b)
			continue
		}
		if b.FreshlyAdded && b.SelfBuff {
			b.FreshlyAdded = false
			remaining = append(remaining, b)
			continue
		}
		b.Duration--
		if b.Duration > 0 {
			remaining = append(remaining, b)
		}
	}
	c.buffs = remaining
}

// GetDamageBonus sums every buff's static and dynamic damage-bonus
// contribution for the given element. A panicking dynamic
// closure is recovered and contributes zero; the caller is expected to log
// the (buff name, "damage") incident once, per spec §7.
func (c *Container) GetDamageBonus(owner DynamicActor, element damage.Element, onPanic func(buffName string, recovered any)) float64 {
	var total float64
	for _, b := range c.buffs {
		if b.Element != "" && b.Element != element {
			continue
		}
		total += b.StaticDamageBonus
		if b.DynamicDamage != nil {
			total += safeDynamicDamage(b, owner, onPanic)
		}
	}
	return total
}

func safeDynamicDamage(b *Buff, owner DynamicActor, onPanic func(string, any)) (result float64) {
	defer func() {
		if r := recover(); r != nil {
			if onPanic != nil {
				onPanic(b.Name, r)
			}
			result = 0
		}
	}()
	return b.DynamicDamage(owner)
}

// GetElementPenetration sums every buff's static element-penetration contribution.
func (c *Container) GetElementPenetration() float64 {
	var total float64
	for _, b := range c.buffs {
		total += b.ElementPenetration
	}
	return total
}

// GetIndependentReductionMultiplier returns the product of (1 - reduction)
// across every buff, per spec §4.3 target-side step 3.
func (c *Container) GetIndependentReductionMultiplier() float64 {
	mult := 1.0
	for _, b := range c.buffs {
		mult *= 1 - b.IndependentReduction
	}
	return mult
}

// GetDamageTakenMultiplier returns the product of (1 + increase) across
// every buff, per spec §4.3 target-side step 4.
func (c *Container) GetDamageTakenMultiplier() float64 {
	mult := 1.0
	for _, b := range c.buffs {
		mult *= 1 + b.DamageTakenIncrease
	}
	return mult
}

// StaticAndDynamicStats is spec §4.1 step 4's dynamic buff layer in its
// entirety: when recursiveGuard is set (a dynamic closure is already
// mid-evaluation of this same actor's stats), the whole layer — static
// contributions included — is skipped, so a recursive CurrentStats(true)
// call sees exactly the pre-dynamic-layer stats the spec's determinism
// note requires, not a partial mix of this layer's static half.
func (c *Container) StaticAndDynamicStats(owner DynamicActor, recursiveGuard bool, onPanic func(string, any)) map[string]float64 {
	out := make(map[string]float64)
	if recursiveGuard {
		return out
	}
	for _, b := range c.buffs {
		for k, v := range b.StaticStats {
			out[k] += v
		}
		if b.DynamicStat == nil {
			continue
		}
		for k, v := range safeDynamicStat(b, owner, onPanic) {
			out[k] += v
		}
	}
	return out
}

func safeDynamicStat(b *Buff, owner DynamicActor, onPanic func(string, any)) (result map[string]float64) {
	defer func() {
		if r := recover(); r != nil {
			if onPanic != nil {
				onPanic(b.Name, r)
			}
			result = nil
		}
	}()
	return b.DynamicStat(owner)
}
