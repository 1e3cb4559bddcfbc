package battle

import "github.com/Phantomding/starrail-simulator/equipment"

// fireHook invokes call for a's light cone and every one of its active
// relic-set skills, mirroring damage.Pipeline's own fireOnDamageDealt /
// fireOnDamageReceived / fireOnEnemyKilled fan-out so the two hook call
// sites (damage pipeline, battle turn execution) stay consistent.
func (c *Context) fireHook(a *Entry, call func(equipment.Hooks)) {
	owner := a.Actor
	if owner.LightCone != nil {
		call(owner.LightCone.Skill)
	}
	for _, set := range equipment.ActiveSets(owner.Relics, owner.SetRegistry) {
		call(set.Skill)
	}
}

func (c *Context) fireOnBattleStart(a *Entry) {
	c.fireHook(a, func(h equipment.Hooks) { h.OnBattleStart(a.Actor, c) })
}

func (c *Context) fireOnTurnStart(a *Entry) {
	// Toughness stays broken (0) until the enemy's own next turn, at which
	// point it resets to max (spec §8 scenario 4), independent of whatever
	// hooks react to turn start below.
	if a.Actor.Side() == "enemy" {
		a.Actor.Toughness = a.Actor.MaxToughness
	}
	c.fireHook(a, func(h equipment.Hooks) { h.OnTurnStart(a.Actor, c) })
}

func (c *Context) fireOnSkillUsed(a *Entry, skillKind string) {
	c.fireHook(a, func(h equipment.Hooks) { h.OnSkillUsed(a.Actor, c, skillKind) })
}
