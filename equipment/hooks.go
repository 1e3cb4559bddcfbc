// Package equipment implements light cones and relics: the static stat
// grants component G of the stat aggregator, plus the event hooks that let
// a light-cone skill or a relic-set 2/4-piece effect react to battle-start,
// turn-start, skill-used, damage-dealt, damage-received, and enemy-killed
// events, and answer a healing-bonus query.
//
// The hook set is fixed and the variants are closed (spec §9's Dynamic
// dispatch resolution): a Hooks interface with an embeddable NoopHooks
// default plays the role the source's abstract base class with no-op
// methods plays, without reaching for a reflection-based publish/subscribe
// bus the closed hook set does not need.
//
// Grounded on original_source/starrail/core/light_cones/light_cone_skill.py
// and original_source/starrail/core/relics/relic_set_skill.py.
package equipment

import (
	"github.com/Phantomding/starrail-simulator/buff"
	"github.com/Phantomding/starrail-simulator/core/damage"
)

// HookActor is the minimal view a hook needs of the actor it is installed
// on (and, via BattleHooks, of the wider battle). equipment never imports
// the actor package; actor.Actor satisfies this interface structurally,
// which is what keeps equipment a leaf package.
type HookActor interface {
	ID() string
	Side() string
	CurrentStats(recursiveGuard bool) map[string]float64
	LastSkillKind() string
	CurrentTargetWeaknesses() []damage.Element
	AddBuff(b *buff.Buff)
}

// BattleHooks is the minimal view a hook needs of the running battle to
// reach across actors (team auras, skill-point grants, progress boosts).
// battle.Context satisfies this interface structurally.
type BattleHooks interface {
	AlliesOf(side string) []HookActor
	GainSkillPoint(side string)
	BoostActionProgress(actorID string, fraction float64)
}

// Hooks is the fixed event surface a light-cone skill or relic-set skill
// may implement. Every method defaults to a no-op via NoopHooks; a
// concrete skill embeds NoopHooks and overrides only what it needs.
type Hooks interface {
	OnBattleStart(owner HookActor, battle BattleHooks)
	OnTurnStart(owner HookActor, battle BattleHooks)
	OnSkillUsed(owner HookActor, battle BattleHooks, skillKind string)
	OnDamageDealt(owner HookActor, battle BattleHooks, amount float64, skillKind string)
	OnDamageReceived(owner HookActor, battle BattleHooks, amount float64)
	OnEnemyKilled(owner HookActor, battle BattleHooks)

	// GetHealingBonus returns an additional outgoing-healing fraction for
	// the given skill kind (e.g. "Ultra"). Most skills return 0 for every
	// kind; this is how time-limited healing augments are expressed.
	GetHealingBonus(skillKind string) float64
}

// NoopHooks is embedded by every concrete light-cone/relic-set skill so
// that only the hooks it actually uses need to be overridden.
type NoopHooks struct{}

func (NoopHooks) OnBattleStart(HookActor, BattleHooks)                  {}
func (NoopHooks) OnTurnStart(HookActor, BattleHooks)                    {}
func (NoopHooks) OnSkillUsed(HookActor, BattleHooks, string)            {}
func (NoopHooks) OnDamageDealt(HookActor, BattleHooks, float64, string) {}
func (NoopHooks) OnDamageReceived(HookActor, BattleHooks, float64)      {}
func (NoopHooks) OnEnemyKilled(HookActor, BattleHooks)                  {}
func (NoopHooks) GetHealingBonus(string) float64                       { return 0 }

var _ Hooks = NoopHooks{}
