package actor

// TargetShape describes the kind of target selection an AI policy is
// asked to resolve for a skill. The set is fixed by the skills this
// simulator ships (spec §4.11).
type TargetShape int

const (
	TargetSingleEnemy TargetShape = iota
	TargetAllEnemies
	TargetLowestHPRatioAlly
	TargetSelf
)

//go:generate mockgen -destination=mock/mock_battleview.go -package=mock_actor github.com/Phantomding/starrail-simulator/actor BattleView

// BattleView is the minimal read access an AI policy needs into the
// running battle. actor never imports the battle package; battle.Context
// satisfies this interface structurally, the same pattern used by
// equipment.HookActor/BattleHooks.
type BattleView interface {
	LivingEnemiesOf(side string) []*Actor
	LivingAlliesOf(side string) []*Actor
	SkillPointsAvailable(side string) int
}

// AIPolicy is the fixed set of decision points an actor's AI makes each
// turn. It is a struct-of-closures interface rather than an open
// hierarchy because spec §4.11 fixes the decision points at three: should
// an available ultimate be cast, which skill kind to use, and who to
// target.
type AIPolicy interface {
	// ShouldCastUltimate decides whether a to preempt the current action
	// order with its ultimate, given it already has full energy.
	ShouldCastUltimate(a *Actor, battle BattleView) bool

	// ChooseSkill decides which skill kind a should use on its turn,
	// returned as a plain string ("Normal", "BPSkill") to avoid an
	// actor<->skill import cycle; the skill package's Kind type is a
	// defined string type with matching values.
	ChooseSkill(a *Actor, battle BattleView) string

	// ChooseTargets resolves the concrete targets for a skill wanting the
	// given shape.
	ChooseTargets(a *Actor, battle BattleView, want TargetShape) []*Actor
}
