package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Phantomding/starrail-simulator/actor"
	mock_actor "github.com/Phantomding/starrail-simulator/actor/mock"
	"github.com/Phantomding/starrail-simulator/ai"
	"github.com/Phantomding/starrail-simulator/buff"
	mock_dice "github.com/Phantomding/starrail-simulator/dice/mock"
	"github.com/Phantomding/starrail-simulator/skill"
)

// battleView builds a mock_actor.MockBattleView that answers the three
// BattleView methods from the given fixed slices/count, for as many calls
// as a test makes.
func battleView(t *testing.T, enemies, allies []*actor.Actor, skillPoints int) *mock_actor.MockBattleView {
	t.Helper()
	ctrl := gomock.NewController(t)
	v := mock_actor.NewMockBattleView(ctrl)
	v.EXPECT().LivingEnemiesOf(gomock.Any()).Return(enemies).AnyTimes()
	v.EXPECT().LivingAlliesOf(gomock.Any()).Return(allies).AnyTimes()
	v.EXPECT().SkillPointsAvailable(gomock.Any()).Return(skillPoints).AnyTimes()
	return v
}

func newActor(id string, hp, maxHP float64) *actor.Actor {
	a := actor.New(actor.Config{ID: id, Side: "party", BaseStats: map[string]float64{"HP": maxHP, "ATK": 500, "SPD": 100}})
	a.HP = hp
	return a
}

func TestDefaultShouldCastUltimate_CastsWhenEnergyFull(t *testing.T) {
	a := newActor("a", 1000, 1000)
	a.MaxEnergy = 100
	a.Energy = 100
	assert.True(t, ai.DefaultShouldCastUltimate(a, battleView(t, nil, nil, 0)))

	a.Energy = 50
	assert.False(t, ai.DefaultShouldCastUltimate(a, battleView(t, nil, nil, 0)))
}

// rollRoller returns a mock Roller whose Chance call always resolves to
// result, for as many calls as the policy makes during one test.
func rollRoller(t *testing.T, result bool) *mock_dice.MockRoller {
	t.Helper()
	ctrl := gomock.NewController(t)
	roller := mock_dice.NewMockRoller(ctrl)
	roller.EXPECT().Chance(gomock.Any()).Return(result).AnyTimes()
	return roller
}

func TestProbabilityShouldCastUltimate_GatesOnRoll(t *testing.T) {
	a := newActor("a", 1000, 1000)
	a.MaxEnergy = 100
	a.Energy = 100

	withhold := ai.ProbabilityShouldCastUltimate(rollRoller(t, false), 0.7)
	assert.False(t, withhold(a, battleView(t, nil, nil, 0)))

	allow := ai.ProbabilityShouldCastUltimate(rollRoller(t, true), 0.7)
	assert.True(t, allow(a, battleView(t, nil, nil, 0)))
}

func TestBuffAwareShouldCastUltimate_WithholdsWhileBuffActiveOnAlly(t *testing.T) {
	caster := newActor("caster", 1000, 1000)
	caster.MaxEnergy, caster.Energy = 100, 100
	ally := newActor("ally", 1000, 1000)
	ally.AddBuff(&buff.Buff{Name: "Speed Boost", Duration: 2})

	gate := ai.BuffAwareShouldCastUltimate("Speed Boost")
	assert.False(t, gate(caster, battleView(t, nil, []*actor.Actor{ally}, 0)))

	ally.RemoveBuff("Speed Boost")
	assert.True(t, gate(caster, battleView(t, nil, []*actor.Actor{ally}, 0)))
}

func TestDefaultChooseSkill_PrefersBPSkillWhenPointAvailable(t *testing.T) {
	a := newActor("a", 1000, 1000)
	assert.Equal(t, string(skill.KindBPSkill), ai.DefaultChooseSkill(a, battleView(t, nil, nil, 1)))
	assert.Equal(t, string(skill.KindNormal), ai.DefaultChooseSkill(a, battleView(t, nil, nil, 0)))
}

func TestDefaultChooseTargets_SingleEnemyPicksLowestHP(t *testing.T) {
	a := newActor("a", 1000, 1000)
	low := newActor("low", 100, 1000)
	high := newActor("high", 900, 1000)
	battle := battleView(t, []*actor.Actor{high, low}, nil, 0)

	got := ai.DefaultChooseTargets(a, battle, actor.TargetSingleEnemy)
	require.Len(t, got, 1)
	assert.Same(t, low, got[0])
}

func TestDefaultChooseTargets_AllEnemiesReturnsEveryLivingEnemy(t *testing.T) {
	a := newActor("a", 1000, 1000)
	e1, e2 := newActor("e1", 500, 1000), newActor("e2", 500, 1000)
	battle := battleView(t, []*actor.Actor{e1, e2}, nil, 0)

	got := ai.DefaultChooseTargets(a, battle, actor.TargetAllEnemies)
	assert.ElementsMatch(t, []*actor.Actor{e1, e2}, got)
}

func TestHealerChooseTargets_PicksLowestHPRatioDamagedAlly(t *testing.T) {
	healer := newActor("healer", 1000, 1000)
	full := newActor("full", 1000, 1000)
	hurt := newActor("hurt", 200, 1000)
	lessHurt := newActor("less-hurt", 600, 1000)
	battle := battleView(t, nil, []*actor.Actor{full, lessHurt, hurt}, 0)

	got := ai.HealerChooseTargets(healer, battle, actor.TargetLowestHPRatioAlly)
	require.Len(t, got, 1)
	assert.Same(t, hurt, got[0])
}

func TestHealerChooseTargets_NoDamagedAllyHealsSelf(t *testing.T) {
	healer := newActor("healer", 1000, 1000)
	full := newActor("full", 1000, 1000)
	battle := battleView(t, nil, []*actor.Actor{full}, 0)

	got := ai.HealerChooseTargets(healer, battle, actor.TargetLowestHPRatioAlly)
	require.Len(t, got, 1)
	assert.Same(t, healer, got[0])
}

func TestHealerChooseTargets_FallsBackToEnemyLogicForNonAllyWant(t *testing.T) {
	healer := newActor("healer", 1000, 1000)
	enemy := newActor("enemy", 500, 1000)
	battle := battleView(t, []*actor.Actor{enemy}, nil, 0)

	got := ai.HealerChooseTargets(healer, battle, actor.TargetSingleEnemy)
	require.Len(t, got, 1)
	assert.Same(t, enemy, got[0])
}

func TestDefault_ImplementsAIPolicy(t *testing.T) {
	var _ actor.AIPolicy = ai.Default()
	var _ actor.AIPolicy = ai.Healer()
}
