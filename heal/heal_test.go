package heal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/equipment"
	"github.com/Phantomding/starrail-simulator/heal"
)

func newActor(id string, base map[string]float64) *actor.Actor {
	return actor.New(actor.Config{ID: id, Side: "party", BaseStats: base})
}

func TestResolve_AppliesOutgoingAndIncomingBoosts(t *testing.T) {
	healer := newActor("iolanthe", map[string]float64{"HP": 1000, "ATK": 500, "DEF": 300, "SPD": 100, "Outgoing Healing Boost": 0.2})
	target := newActor("ally", map[string]float64{"HP": 1000, "ATK": 500, "DEF": 300, "SPD": 100, "Incoming Healing Boost": 0.1})
	target.ApplyDamage(900)

	result := heal.Resolve(heal.Input{Healer: healer, Target: target, BaseAmount: 100, SkillKind: "BPSkill"})

	assert.InDelta(t, 132, result.Amount, 1e-6, "100 * 1.2 * 1.1")
	assert.InDelta(t, 132, result.Healed, 1e-6)
	assert.InDelta(t, 232, target.HP, 1e-6)
}

func TestResolve_LightConeBonusGatedBySkillKind(t *testing.T) {
	healer := newActor("iolanthe", map[string]float64{"HP": 1000, "ATK": 500, "DEF": 300, "SPD": 100})
	healer.LightCone = equipment.NewLightCone("pop", "Post-Op Conversation", "Abundance", 1, nil,
		equipment.NewPostOpConversationSkill())
	target := newActor("ally", map[string]float64{"HP": 1000, "ATK": 500, "DEF": 300, "SPD": 100})
	target.ApplyDamage(900)

	ultra := heal.Resolve(heal.Input{Healer: healer, Target: target, BaseAmount: 100, SkillKind: "Ultra"})
	assert.InDelta(t, 120, ultra.Amount, 1e-6)

	target.ApplyDamage(900)
	normal := heal.Resolve(heal.Input{Healer: healer, Target: target, BaseAmount: 100, SkillKind: "Normal"})
	assert.InDelta(t, 100, normal.Amount, 1e-6)
}

func TestResolve_TalentBonusIsAdditive(t *testing.T) {
	healer := newActor("iolanthe", map[string]float64{"HP": 1000, "ATK": 500, "DEF": 300, "SPD": 100})
	target := newActor("ally", map[string]float64{"HP": 1000, "ATK": 500, "DEF": 300, "SPD": 100})
	target.ApplyDamage(900)

	result := heal.Resolve(heal.Input{Healer: healer, Target: target, BaseAmount: 100, TalentBonus: 0.1})
	assert.InDelta(t, 110, result.Amount, 1e-6)
}

func TestResolve_HealClampsToMaxHP(t *testing.T) {
	healer := newActor("iolanthe", map[string]float64{"HP": 1000, "ATK": 500, "DEF": 300, "SPD": 100})
	target := newActor("ally", map[string]float64{"HP": 1000, "ATK": 500, "DEF": 300, "SPD": 100})
	target.ApplyDamage(10)

	result := heal.Resolve(heal.Input{Healer: healer, Target: target, BaseAmount: 1000})
	assert.Equal(t, 10.0, result.Healed)
	assert.Equal(t, 1000.0, target.HP)
}
