package simerr_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Phantomding/starrail-simulator/simerr"
)

type BattleScenariosTestSuite struct {
	suite.Suite
}

func TestBattleScenariosSuite(t *testing.T) {
	suite.Run(t, new(BattleScenariosTestSuite))
}

// TestSkillOutOfTargetsShowsFullContext mirrors a skill resolving against an
// empty target list: AI target selection found nobody to hit.
func (s *BattleScenariosTestSuite) TestSkillOutOfTargetsShowsFullContext() {
	ctx := context.Background()
	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("battle_id", "battle-001"),
		simerr.Meta("round", 3),
		simerr.Meta("actor_id", "hero"),
	)

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("skill_kind", "Normal"),
		simerr.Meta("skill_id", "single_target_slash"),
		simerr.Meta("target_shape", "single_enemy"),
	)

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("living_enemies", 0),
		simerr.Meta("side", "enemy"),
	)

	err := simerr.InvalidTargetCtx(ctx, "no living enemy to target")

	meta := simerr.GetMeta(err)
	s.Equal("battle-001", meta["battle_id"])
	s.Equal(3, meta["round"])
	s.Equal("hero", meta["actor_id"])
	s.Equal("single_target_slash", meta["skill_id"])
	s.Equal(0, meta["living_enemies"])

	s.Contains(err.Error(), "invalid target: no living enemy to target")
}

// TestUltimateWithoutEnergy shows resource exhaustion with full context.
func (s *BattleScenariosTestSuite) TestUltimateWithoutEnergy() {
	ctx := context.Background()
	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("battle_id", "battle-002"),
		simerr.Meta("round", 5),
	)

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("actor_id", "hero"),
		simerr.Meta("actor_level", 60),
	)

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("skill_id", "coda_ultimate"),
		simerr.Meta("energy_cost", 120),
		simerr.Meta("energy_available", 85),
	)

	err := simerr.ResourceExhaustedCtx(ctx, "energy")

	meta := simerr.GetMeta(err)
	s.Equal(85, meta["energy_available"])
	s.Equal("coda_ultimate", meta["skill_id"])
	s.Equal(120, meta["energy_cost"])
}

// TestCrowdControlConflict shows conflicting buff states: an actor already
// frozen cannot also be entangled by the same effect family.
func (s *BattleScenariosTestSuite) TestCrowdControlConflict() {
	ctx := context.Background()

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("actor_id", "foe"),
		simerr.Meta("current_cc", "Frozen"),
		simerr.Meta("cc_duration", 2),
	)

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("attempted_cc", "Entangle"),
		simerr.Meta("source_skill", "vine_whip"),
	)

	err := simerr.ConflictingStateCtx(ctx, "already frozen, cannot entangle")

	meta := simerr.GetMeta(err)
	s.Equal("Frozen", meta["current_cc"])
	s.Equal("Entangle", meta["attempted_cc"])
	s.Equal("vine_whip", meta["source_skill"])
}

// TestNestedPipelineDamageFlow shows deep nesting with context accumulation
// across the damage pipeline's stages.
func (s *BattleScenariosTestSuite) TestNestedPipelineDamageFlow() {
	// Level 1: battle.Context turn execution
	ctx := context.Background()
	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("pipeline", "battle.Context"),
		simerr.Meta("attacker", "hero"),
		simerr.Meta("target", "wendigo"),
		simerr.Meta("skill_id", "single_target_slash"),
	)

	// Level 2: attacker stage
	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("pipeline", "damage.AttackerStage"),
		simerr.Meta("atk", 1800),
		simerr.Meta("crit_rate", 0.65),
		simerr.Meta("crit_dmg", 1.5),
		simerr.Meta("crit_applied", true),
	)

	// Level 3: defense stage
	defenseCtx := simerr.WithMetadata(ctx,
		simerr.Meta("pipeline", "damage.DefenseStage"),
		simerr.Meta("def", 500),
		simerr.Meta("def_reduction", 0.2),
	)

	// Level 4: resistance stage
	resistCtx := simerr.WithMetadata(defenseCtx,
		simerr.Meta("pipeline", "damage.ResistanceStage"),
		simerr.Meta("element", "Physical"),
		simerr.Meta("weaknesses", []string{"Physical"}),
		simerr.Meta("resistance", -0.1),
	)

	err := simerr.NewCtx(resistCtx, simerr.CodeBlocked,
		"damage amplified by weakness break")

	err.CallStack = []string{
		"battle.Context",
		"damage.AttackerStage",
		"damage.DefenseStage",
		"damage.ResistanceStage",
	}

	meta := simerr.GetMeta(err)
	s.Equal("hero", meta["attacker"])
	s.Equal("wendigo", meta["target"])
	s.Equal("single_target_slash", meta["skill_id"])
	s.Equal(true, meta["crit_applied"])
	s.Equal("Physical", meta["element"])

	weaknesses := meta["weaknesses"].([]string)
	s.Contains(weaknesses, "Physical")

	stack := simerr.GetCallStack(err)
	s.Len(stack, 4)
	s.Equal("damage.ResistanceStage", stack[3])
}

// TestActionPoolTimingViolation shows timing restrictions around the action
// value pool: an actor cannot act again until its progress is consumed.
func (s *BattleScenariosTestSuite) TestActionPoolTimingViolation() {
	ctx := context.Background()

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("round", 2),
		simerr.Meta("current_actor", "hero"),
		simerr.Meta("phase", "turn"),
	)

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("actor_id", "hero"),
		simerr.Meta("progress", 0),
		simerr.Meta("action_value", 10000),
	)

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("attempted_action", "take_turn"),
		simerr.Meta("previous_action", "take_turn"),
	)

	err := simerr.TimingRestrictionCtx(ctx, "actor not ready this pass")

	meta := simerr.GetMeta(err)
	s.Equal(0, meta["progress"])
	s.Equal("take_turn", meta["attempted_action"])
	s.Equal("hero", meta["current_actor"])
}

// TestTalentPrerequisiteChain shows multiple prerequisite failures when an
// actor's talent reaction can't trigger.
func (s *BattleScenariosTestSuite) TestTalentPrerequisiteChain() {
	ctx := context.Background()

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("actor_id", "hero"),
		simerr.Meta("actor_level", 60),
		simerr.Meta("path", "Hunt"),
		simerr.Meta("trace_unlocked", false),
	)

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("talent", "Coda"),
		simerr.Meta("talent_trigger", "on_enemy_killed"),
		simerr.Meta("extra_turns_this_round", 0),
		simerr.Meta("extra_turn_guard_id", "hero"),
	)

	err := simerr.PrerequisiteNotMetCtx(ctx, "talent requires trace unlocked")

	meta := simerr.GetMeta(err)
	s.Equal(false, meta["trace_unlocked"])
	s.Equal("on_enemy_killed", meta["talent_trigger"])
	s.Equal(60, meta["actor_level"])
}

// TestImmunityContext shows a weakness-break immunity with full context.
func (s *BattleScenariosTestSuite) TestImmunityContext() {
	ctx := context.Background()

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("skill_id", "frost_lance"),
		simerr.Meta("element", "Ice"),
		simerr.Meta("caster", "hero"),
	)

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("target", "construct-elite"),
		simerr.Meta("target_type", "construct"),
		simerr.Meta("target_weaknesses", []string{
			"Lightning",
			"Fire",
		}),
	)

	err := simerr.ImmuneCtx(ctx, "Ice break damage (construct immunity)")

	meta := simerr.GetMeta(err)
	s.Equal("frost_lance", meta["skill_id"])
	s.Equal("construct", meta["target_type"])

	weaknesses := meta["target_weaknesses"].([]string)
	s.Contains(weaknesses, "Lightning")
}

// TestInterruptionChain shows how a preempting ultimate interrupts the
// normal action order.
func (s *BattleScenariosTestSuite) TestInterruptionChain() {
	ctx := context.Background()
	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("pipeline", "battle.runRound"),
		simerr.Meta("current_actor", "hero"),
		simerr.Meta("skill_id", "single_target_slash"),
		simerr.Meta("phase", "ready_batch"),
	)

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("preempting_actor", "foe"),
		simerr.Meta("preempting_skill", "rampage_ultimate"),
		simerr.Meta("energy_full", true),
		simerr.Meta("ai_approved", true),
	)

	err := simerr.InterruptedCtx(ctx, "preempted by ultimate")
	err.CallStack = []string{
		"battle.Run",
		"battle.runRound",
		"battle.checkPreemption",
		"battle.dispatchEffects",
	}

	meta := simerr.GetMeta(err)
	s.Equal("single_target_slash", meta["skill_id"])
	s.Equal("foe", meta["preempting_actor"])
	s.Equal(true, meta["ai_approved"])

	stack := simerr.GetCallStack(err)
	s.Contains(stack, "battle.checkPreemption")
	s.Contains(stack, "battle.dispatchEffects")
}
