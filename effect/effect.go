// Package effect defines the closed set of effect variants a skill can
// emit: Damage, Buff, Heal, ProgressBoost, and ExtraTurn (spec §3's Effect
// data model). The variant set is fixed at compile time — skills return
// an ordered []Effect and the battle package's effect manager executes
// each in emission order, type-switching on the concrete variant rather
// than dispatching through an open interface hierarchy.
//
// Grounded on the variant shape implicit in
// original_source/starrail/core/skills/{base_skill,seele_skills,
// natasha_skills,bronya_skills}.py, where a skill's `use` method performs
// one or more of: apply damage, apply/grant a buff, heal, advance action
// progress, or grant an extra turn.
package effect

import (
	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/buff"
	"github.com/Phantomding/starrail-simulator/core/damage"
)

// Effect is implemented only by the variants in this package. The
// unexported marker method closes the set: no other package can declare
// a type satisfying Effect.
type Effect interface {
	isEffect()
}

// Damage applies the damage pipeline (component D) against every target.
type Damage struct {
	Targets    []*actor.Actor
	Multiplier float64
	Element    damage.Element
	SkillKind  string
}

func (Damage) isEffect() {}

// Buff installs b on every target. Self reflects whether the skill's own
// caster applied this to itself, which the buff container's end-of-turn
// tick rules (spec §4.2) care about independent of the buff's own
// SelfBuff flag (that flag describes the buff; Self describes the cast).
type Buff struct {
	Targets []*actor.Actor
	Buff    *buff.Buff
	Self    bool
}

func (Buff) isEffect() {}

// Heal applies the healing pipeline (component E) to every target.
type Heal struct {
	Targets    []*actor.Actor
	BaseAmount float64
	SkillKind  string
}

func (Heal) isEffect() {}

// ProgressBoostTiming selects how a ProgressBoost effect folds into the
// scheduler's action-value pool, per spec §4.7.
type ProgressBoostTiming string

const (
	// TimingImmediate adds to the target's current progress right away,
	// clamped to 1.0.
	TimingImmediate ProgressBoostTiming = "immediate"
	// TimingNextTurn adds to the target's progress after it next resets
	// to 0 from taking its turn; before that it behaves like immediate.
	TimingNextTurn ProgressBoostTiming = "next_turn"
	// TimingDelayed accumulates into the pending-boost map and is applied
	// after the scheduler's next advance.
	TimingDelayed ProgressBoostTiming = "delayed"
)

// ProgressBoost advances (or schedules advancing) Target's action
// progress.
type ProgressBoost struct {
	Target *actor.Actor
	Amount float64
	Timing ProgressBoostTiming
}

func (ProgressBoost) isEffect() {}

// ExtraTurn grants Target an immediate additional action once its current
// action resolves, per spec §4.7 step a.
type ExtraTurn struct {
	Target *actor.Actor
}

func (ExtraTurn) isEffect() {}

var (
	_ Effect = Damage{}
	_ Effect = Buff{}
	_ Effect = Heal{}
	_ Effect = ProgressBoost{}
	_ Effect = ExtraTurn{}
)
