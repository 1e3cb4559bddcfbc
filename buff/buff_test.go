package buff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Phantomding/starrail-simulator/buff"
	"github.com/Phantomding/starrail-simulator/core/damage"
)

type stubActor struct {
	stats map[string]float64
}

func (s stubActor) CurrentStats(recursiveGuard bool) map[string]float64 {
	if recursiveGuard {
		return map[string]float64{"SPD": 100}
	}
	return s.stats
}

func TestContainer_AddNonStackableOverwritesDuration(t *testing.T) {
	c := buff.NewContainer()
	c.Add(&buff.Buff{Name: "Aegis", Duration: 3, Stackable: false})
	c.Add(&buff.Buff{Name: "Aegis", Duration: 1, Stackable: false})

	require.Len(t, c.All(), 1)
	assert.Equal(t, 1, c.All()[0].Duration)
	assert.True(t, c.All()[0].FreshlyAdded)
}

func TestContainer_AddStackableAppends(t *testing.T) {
	c := buff.NewContainer()
	c.Add(&buff.Buff{Name: "Bleed", Duration: 2, Stackable: true})
	c.Add(&buff.Buff{Name: "Bleed", Duration: 2, Stackable: true})

	assert.Len(t, c.All(), 2)
}

func TestContainer_TickEndOfTurn_SkipsFreshlyAddedSelfBuffOnce(t *testing.T) {
	c := buff.NewContainer()
	c.Add(&buff.Buff{Name: "Resolve", Duration: 2, SelfBuff: true})

	c.TickEndOfTurn(false, "vesper", "")
	require.Len(t, c.All(), 1)
	assert.Equal(t, 2, c.All()[0].Duration, "first tick after self-application is a skip, not a decrement")

	c.TickEndOfTurn(false, "vesper", "")
	require.Len(t, c.All(), 1)
	assert.Equal(t, 1, c.All()[0].Duration)
}

func TestContainer_TickEndOfTurn_RemovesAtZero(t *testing.T) {
	c := buff.NewContainer()
	c.Add(&buff.Buff{Name: "Spark", Duration: 1})

	c.TickEndOfTurn(false, "someone", "")
	assert.Empty(t, c.All())
}

func TestContainer_TickEndOfTurn_PermanentNeverDecrements(t *testing.T) {
	c := buff.NewContainer()
	c.Add(&buff.Buff{Name: "Trace", Duration: -1})

	for i := 0; i < 5; i++ {
		c.TickEndOfTurn(false, "someone", "")
	}
	require.Len(t, c.All(), 1)
	assert.Equal(t, -1, c.All()[0].Duration)
}

func TestContainer_TickEndOfTurn_ExtraTurnGuardSkipsDecrement(t *testing.T) {
	c := buff.NewContainer()
	c.Add(&buff.Buff{Name: "Overdrive", Duration: 2})

	c.TickEndOfTurn(true, "vesper", "vesper")
	require.Len(t, c.All(), 1)
	assert.Equal(t, 2, c.All()[0].Duration)
}

func TestContainer_GetDamageBonus_ScopedByElementAndDynamic(t *testing.T) {
	c := buff.NewContainer()
	c.Add(&buff.Buff{Name: "Quantum Focus", StaticDamageBonus: 0.1, Element: damage.Quantum, Duration: -1})
	c.Add(&buff.Buff{
		Name:     "Speed Surge",
		Duration: -1,
		DynamicDamage: func(owner buff.DynamicActor) float64 {
			if owner.CurrentStats(false)["SPD"] >= 120 {
				return 0.12
			}
			return 0
		},
	})

	owner := stubActor{stats: map[string]float64{"SPD": 126.5}}
	bonus := c.GetDamageBonus(owner, damage.Quantum, nil)
	assert.InDelta(t, 0.22, bonus, 1e-9)

	bonus = c.GetDamageBonus(owner, damage.Fire, nil)
	assert.InDelta(t, 0.12, bonus, 1e-9, "element-scoped buff must not apply to a different element")
}

func TestContainer_GetDamageBonus_RecoversPanickingClosure(t *testing.T) {
	c := buff.NewContainer()
	c.Add(&buff.Buff{
		Name:     "Broken",
		Duration: -1,
		DynamicDamage: func(buff.DynamicActor) float64 {
			panic("boom")
		},
	})

	var gotName string
	owner := stubActor{stats: map[string]float64{}}
	bonus := c.GetDamageBonus(owner, damage.Physical, func(name string, _ any) { gotName = name })

	assert.Equal(t, 0.0, bonus)
	assert.Equal(t, "Broken", gotName)
}

func TestContainer_StaticAndDynamicStats_RecursiveGuardSkipsDynamicLayer(t *testing.T) {
	c := buff.NewContainer()
	c.Add(&buff.Buff{
		Name:        "Static Grant",
		Duration:    -1,
		StaticStats: map[string]float64{"ATK%": 0.05},
	})
	c.Add(&buff.Buff{
		Name:     "Cyclic",
		Duration: -1,
		DynamicStat: func(owner buff.DynamicActor) map[string]float64 {
			return map[string]float64{"CRIT DMG": owner.CurrentStats(true)["SPD"] / 1000}
		},
	})

	owner := stubActor{stats: map[string]float64{}}

	full := c.StaticAndDynamicStats(owner, false, nil)
	assert.InDelta(t, 0.05, full["ATK%"], 1e-9)
	assert.InDelta(t, 0.1, full["CRIT DMG"], 1e-9)

	guarded := c.StaticAndDynamicStats(owner, true, nil)
	assert.Empty(t, guarded, "recursiveGuard must skip the entire dynamic buff layer, static contributions included")
}
