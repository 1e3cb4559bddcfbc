package equipment

import (
	"github.com/Phantomding/starrail-simulator/buff"
)

// InTheNightSkill grants a dynamic ATK% and damage bonus keyed on the
// owner's current SPD, read through the recursive-guarded stat query so
// the buff's own contribution never feeds back into its trigger. Grounded
// on light_cone_skill.py's InTheNightSkill.
type InTheNightSkill struct {
	NoopHooks
	SpdPerStack   float64 // SPD consumed per stack
	MaxStacks     int
	AtkPerStack   float64
	DmgBonusPerStack float64
}

func NewInTheNightSkill() *InTheNightSkill {
	return &InTheNightSkill{SpdPerStack: 4, MaxStacks: 5, AtkPerStack: 0.08, DmgBonusPerStack: 0.08}
}

func (s *InTheNightSkill) BasePercentStats(level int) map[string]float64 {
	return map[string]float64{"CRIT DMG": 0.16 + 0.04*float64(level-1)}
}

func (s *InTheNightSkill) OnBattleStart(owner HookActor, _ BattleHooks) {
	stacks := func(o buff.DynamicActor) int {
		spd := o.CurrentStats(true)["SPD"]
		n := int(spd / s.SpdPerStack)
		if n > s.MaxStacks {
			n = s.MaxStacks
		}
		return n
	}

	owner.AddBuff(&buff.Buff{
		Name:     "In the Night Stacks",
		Duration: -1,
		DynamicStat: func(o buff.DynamicActor) map[string]float64 {
			n := stacks(o)
			if n == 0 {
				return nil
			}
			return map[string]float64{"ATK%": s.AtkPerStack * float64(n)}
		},
		DynamicDamage: func(o buff.DynamicActor) float64 {
			return s.DmgBonusPerStack * float64(stacks(o))
		},
	})
}

var _ LightConeSkill = (*InTheNightSkill)(nil)

// ButTheBattleIsntOverSkill tracks its owner's ultimate casts and, every
// two of them, grants the owner's side a skill point; on the owner's
// BPSkill it also buffs the first ally other than the owner that
// AlliesOf returns. Grounded on
// light_cone_skill.py's ButTheBattleIsntOverSkill.
type ButTheBattleIsntOverSkill struct {
	NoopHooks
	ultimateCasts int
	AllyAtkBonus  float64
}

func NewButTheBattleIsntOverSkill() *ButTheBattleIsntOverSkill {
	return &ButTheBattleIsntOverSkill{AllyAtkBonus: 0.20}
}

func (s *ButTheBattleIsntOverSkill) BasePercentStats(level int) map[string]float64 {
	return map[string]float64{"Effect Hit Rate": 0.08 + 0.02*float64(level-1)}
}

func (s *ButTheBattleIsntOverSkill) OnSkillUsed(owner HookActor, battle BattleHooks, skillKind string) {
	if skillKind == "Ultra" {
		s.ultimateCasts++
		if s.ultimateCasts%2 == 0 {
			battle.GainSkillPoint(owner.Side())
		}
	}
	if skillKind == "BPSkill" {
		for _, ally := range battle.AlliesOf(owner.Side()) {
			if ally.ID() == owner.ID() {
				continue
			}
			ally.AddBuff(&buff.Buff{
				Name:        "But the Battle Isn't Over Yet",
				Duration:    2,
				StaticStats: map[string]float64{"ATK%": s.AllyAtkBonus},
			})
			break
		}
	}
}

var _ LightConeSkill = (*ButTheBattleIsntOverSkill)(nil)

// PostOpConversationSkill demonstrates a skill with zero buff machinery:
// it answers the healing-bonus hook for Ultra casts only. Grounded on
// light_cone_skill.py's PostOpConversationSkill.
type PostOpConversationSkill struct {
	NoopHooks
	UltraHealingBonus float64
}

func NewPostOpConversationSkill() *PostOpConversationSkill {
	return &PostOpConversationSkill{UltraHealingBonus: 0.20}
}

func (s *PostOpConversationSkill) BasePercentStats(level int) map[string]float64 {
	return map[string]float64{"Outgoing Healing Boost": 0.10 + 0.025*float64(level-1)}
}

func (s *PostOpConversationSkill) GetHealingBonus(skillKind string) float64 {
	if skillKind == "Ultra" {
		return s.UltraHealingBonus
	}
	return 0
}

var _ LightConeSkill = (*PostOpConversationSkill)(nil)
