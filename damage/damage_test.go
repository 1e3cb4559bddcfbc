package damage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Phantomding/starrail-simulator/actor"
	cdamage "github.com/Phantomding/starrail-simulator/core/damage"
	"github.com/Phantomding/starrail-simulator/damage"
	mock_dice "github.com/Phantomding/starrail-simulator/dice/mock"
	"github.com/Phantomding/starrail-simulator/equipment"
)

type noBoostBattle struct{}

func (noBoostBattle) AlliesOf(side string) []equipment.HookActor     { return nil }
func (noBoostBattle) GainSkillPoint(side string)                     {}
func (noBoostBattle) BoostActionProgress(actorID string, frac float64) {}

func newAttacker(atk float64, level int) *actor.Actor {
	return actor.New(actor.Config{
		ID: "attacker", Side: "party", Level: level,
		BaseStats: map[string]float64{"HP": 1000, "ATK": atk, "DEF": 100, "SPD": 100},
	})
}

func newEnemy(hp, def float64) *actor.Actor {
	return actor.New(actor.Config{
		ID: "enemy", Side: "enemy",
		BaseStats: map[string]float64{"HP": hp, "ATK": 0, "DEF": def, "SPD": 100},
	})
}

// fixedRoller returns a mock Roller whose Chance call always returns the
// given crit value, for as many calls as the pipeline makes during one test.
func fixedRoller(t *testing.T, crit bool) *mock_dice.MockRoller {
	t.Helper()
	ctrl := gomock.NewController(t)
	roller := mock_dice.NewMockRoller(ctrl)
	roller.EXPECT().Chance(gomock.Any()).Return(crit).AnyTimes()
	return roller
}

func TestResolve_SoloBasicAttack_MatchesWorkedExample(t *testing.T) {
	attacker := newAttacker(1000, 80)
	enemy := newEnemy(5000, 0)

	p := damage.NewPipeline(fixedRoller(t, false), nil)
	result, err := p.Resolve(context.Background(), damage.Input{
		Attacker: attacker, Target: enemy, Multiplier: 1.0,
		Element: cdamage.Physical, SkillKind: damage.SkillNormal, CritImmune: true,
	}, noBoostBattle{})

	require.NoError(t, err)
	assert.InDelta(t, 1000, result.Final, 1e-6)
	assert.Equal(t, 1000.0, result.HPLost)
}

func TestResolve_CritDoublesTheoreticalByCritDMG(t *testing.T) {
	attacker := newAttacker(1000, 80)
	attacker.BaseStats["CRIT DMG"] = 1.0
	enemy := newEnemy(5000, 0)

	p := damage.NewPipeline(fixedRoller(t, true), nil)
	result, err := p.Resolve(context.Background(), damage.Input{
		Attacker: attacker, Target: enemy, Multiplier: 1.0,
		Element: cdamage.Physical, SkillKind: damage.SkillNormal,
	}, noBoostBattle{})

	require.NoError(t, err)
	assert.True(t, result.IsCrit)
	assert.InDelta(t, 2000, result.Theoretical, 1e-6)
}

func TestResolve_ResistanceClampedToTenPercentFloor(t *testing.T) {
	attacker := newAttacker(1000, 80)
	enemy := newEnemy(100000, 0)
	enemy.Resistances = map[cdamage.Element]float64{cdamage.Quantum: 0.95}

	p := damage.NewPipeline(fixedRoller(t, false), nil)
	result, err := p.Resolve(context.Background(), damage.Input{
		Attacker: attacker, Target: enemy, Multiplier: 1.0,
		Element: cdamage.Quantum, SkillKind: damage.SkillNormal, CritImmune: true,
	}, noBoostBattle{})

	require.NoError(t, err)
	// theoretical 1000, defense reduction negligible (DEF 0), resistance
	// multiplier floors at 0.1 instead of the raw (1-0.95)=0.05.
	assert.InDelta(t, 100, result.Final, 1e-6)
}

func TestResolve_ToughnessBreak_MatchesWorkedExample(t *testing.T) {
	attacker := newAttacker(1000, 80)
	enemy := newEnemy(100000, 0)
	enemy.Weaknesses = []cdamage.Element{cdamage.Fire}
	enemy.Toughness = 50
	enemy.MaxToughness = 100

	p := damage.NewPipeline(fixedRoller(t, false), nil)
	in := damage.Input{
		Attacker: attacker, Target: enemy, Multiplier: 0.1,
		Element: cdamage.Fire, SkillKind: damage.SkillBPSkill, CritImmune: true,
	}

	var last *damage.Result
	for i := 0; i < 3; i++ {
		r, err := p.Resolve(context.Background(), in, noBoostBattle{})
		require.NoError(t, err)
		last = r
	}

	assert.True(t, last.BrokeToughness)
	assert.Equal(t, 0.0, enemy.Toughness)
	require.NotNil(t, last.BreakResult)
	assert.Equal(t, damage.SkillBreak, last.BreakResult.SkillKind)
	// base 1883.8 * Fire coeff 2.0 * ((100+20)/40) = 11302.8 before defense.
	assert.InDelta(t, 11302.8, last.BreakResult.Theoretical, 1e-6)
}

func TestResolve_DamageMonotonicity_HigherATKNeverLowersFinal(t *testing.T) {
	low := newAttacker(1000, 80)
	high := newAttacker(2000, 80)
	enemy1 := newEnemy(100000, 200)
	enemy2 := newEnemy(100000, 200)

	p := damage.NewPipeline(fixedRoller(t, false), nil)
	lowResult, err := p.Resolve(context.Background(), damage.Input{
		Attacker: low, Target: enemy1, Multiplier: 1.0, Element: cdamage.Physical,
		SkillKind: damage.SkillNormal, CritImmune: true,
	}, noBoostBattle{})
	require.NoError(t, err)

	highResult, err := p.Resolve(context.Background(), damage.Input{
		Attacker: high, Target: enemy2, Multiplier: 1.0, Element: cdamage.Physical,
		SkillKind: damage.SkillNormal, CritImmune: true,
	}, noBoostBattle{})
	require.NoError(t, err)

	assert.Greater(t, highResult.Final, lowResult.Final)
}
