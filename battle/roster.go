package battle

import (
	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/effect"
	"github.com/Phantomding/starrail-simulator/skill"
)

// SkillSlot binds one of an actor's skill kinds to a registered skill id,
// the level it is cast at, and the target shape its AI should resolve
// before invoking it. Catalog loading is what actually populates these
// per character (component L); battle only consumes the assembled result.
type SkillSlot struct {
	ID     string
	Level  int
	Target actor.TargetShape
}

// Talent is the event-triggered half of spec §4.5's skill contracts —
// the shape skill.Talent implements. It is kept as a separate, narrower
// interface from skill.Behavior because its call site is a kill event,
// not a scheduler turn.
type Talent interface {
	OnEnemyKilled(killer *actor.Actor, inOwnExtraTurn bool) []effect.Effect
}

// Entry is one battle participant: the underlying actor plus the skill
// bindings and optional talent that make it playable.
type Entry struct {
	Actor  *actor.Actor
	Skills map[skill.Kind]SkillSlot
	Talent Talent

	// pendingExtraTurn is set by an ExtraTurn effect targeting this
	// actor and consumed by the round loop immediately after the
	// granting action resolves (spec §4.7 step 3a).
	pendingExtraTurn bool
}
