package effect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/buff"
	"github.com/Phantomding/starrail-simulator/core/damage"
	"github.com/Phantomding/starrail-simulator/effect"
)

func newActor(id string) *actor.Actor {
	return actor.New(actor.Config{ID: id, Side: "party", BaseStats: map[string]float64{"HP": 1000, "ATK": 500, "DEF": 300, "SPD": 100}})
}

func TestEffectVariants_DispatchByType(t *testing.T) {
	target := newActor("enemy")

	effects := []effect.Effect{
		effect.Damage{Targets: []*actor.Actor{target}, Multiplier: 1.5, Element: damage.Quantum, SkillKind: "Normal"},
		effect.Buff{Targets: []*actor.Actor{target}, Buff: &buff.Buff{Name: "Weaken", Duration: 2}, Self: false},
		effect.Heal{Targets: []*actor.Actor{target}, BaseAmount: 200, SkillKind: "BPSkill"},
		effect.ProgressBoost{Target: target, Amount: 0.2, Timing: effect.TimingDelayed},
		effect.ExtraTurn{Target: target},
	}

	var kinds []string
	for _, e := range effects {
		switch v := e.(type) {
		case effect.Damage:
			kinds = append(kinds, "damage:"+string(v.Element))
		case effect.Buff:
			kinds = append(kinds, "buff:"+v.Buff.Name)
		case effect.Heal:
			kinds = append(kinds, "heal")
		case effect.ProgressBoost:
			kinds = append(kinds, "progress:"+string(v.Timing))
		case effect.ExtraTurn:
			kinds = append(kinds, "extra_turn")
		}
	}

	assert.Equal(t, []string{"damage:Quantum", "buff:Weaken", "heal", "progress:delayed", "extra_turn"}, kinds)
}
