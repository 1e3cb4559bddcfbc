package equipment

import (
	"github.com/Phantomding/starrail-simulator/buff"
	"github.com/Phantomding/starrail-simulator/core/damage"
)

// GeniusOfBrilliantStarsSkill: 2-piece grants flat Quantum DMG; 4-piece
// grants DEF Ignore % that increases further when the owner's current
// target is Quantum-weak. Grounded on
// relic_set_skill.py's GeniusOfBrilliantStarsSkill.
type GeniusOfBrilliantStarsSkill struct {
	NoopHooks
	QuantumDmgBonus float64
	BaseDefIgnore   float64
	ExtraDefIgnore  float64
}

func NewGeniusOfBrilliantStarsSkill() *GeniusOfBrilliantStarsSkill {
	return &GeniusOfBrilliantStarsSkill{QuantumDmgBonus: 0.10, BaseDefIgnore: 0.10, ExtraDefIgnore: 0.10}
}

func (s *GeniusOfBrilliantStarsSkill) BaseStats() map[string]float64 {
	return map[string]float64{"Quantum DMG": s.QuantumDmgBonus}
}

func (s *GeniusOfBrilliantStarsSkill) OnBattleStart(owner HookActor, _ BattleHooks) {
	owner.AddBuff(&buff.Buff{
		Name:     "Genius DEF Ignore",
		Duration: -1,
		DynamicStat: func(o buff.DynamicActor) map[string]float64 {
			total := s.BaseDefIgnore
			if ha, ok := o.(HookActor); ok {
				for _, w := range ha.CurrentTargetWeaknesses() {
					if w == damage.Quantum {
						total += s.ExtraDefIgnore
						break
					}
				}
			}
			return map[string]float64{"DEF Ignore %": total}
		},
	})
}

var _ RelicSetSkill = (*GeniusOfBrilliantStarsSkill)(nil)

// SpaceSealingStationSkill: 2-piece grants flat ATK%; 4-piece grants
// additional ATK% while current SPD >= threshold. Grounded on
// relic_set_skill.py's SpaceSealingStationSkill; this is the spec's
// worked SPD >= 120 example.
type SpaceSealingStationSkill struct {
	NoopHooks
	BaseAtkBonus  float64
	ExtraAtkBonus float64
	SpdThreshold  float64
}

func NewSpaceSealingStationSkill() *SpaceSealingStationSkill {
	return &SpaceSealingStationSkill{BaseAtkBonus: 0.12, ExtraAtkBonus: 0.12, SpdThreshold: 120}
}

func (s *SpaceSealingStationSkill) BaseStats() map[string]float64 {
	return map[string]float64{"ATK%": s.BaseAtkBonus}
}

func (s *SpaceSealingStationSkill) OnBattleStart(owner HookActor, _ BattleHooks) {
	owner.AddBuff(&buff.Buff{
		Name:     "Space Sealing Station Bonus",
		Duration: -1,
		DynamicStat: func(o buff.DynamicActor) map[string]float64 {
			if o.CurrentStats(false)["SPD"] >= s.SpdThreshold {
				return map[string]float64{"ATK%": s.ExtraAtkBonus}
			}
			return nil
		},
	})
}

var _ RelicSetSkill = (*SpaceSealingStationSkill)(nil)

// FleetOfTheAgelessSkill: 2-piece grants flat HP%; 4-piece grants the
// owner's whole side a flat ATK% aura, once, at battle start, if the
// owner's SPD meets the threshold at that moment. Grounded on
// relic_set_skill.py's FleetOfTheAgelessSkill.
type FleetOfTheAgelessSkill struct {
	NoopHooks
	BaseHpBonus  float64
	TeamAtkBonus float64
	SpdThreshold float64
}

func NewFleetOfTheAgelessSkill() *FleetOfTheAgelessSkill {
	return &FleetOfTheAgelessSkill{BaseHpBonus: 0.12, TeamAtkBonus: 0.08, SpdThreshold: 120}
}

func (s *FleetOfTheAgelessSkill) BaseStats() map[string]float64 {
	return map[string]float64{"HP%": s.BaseHpBonus}
}

func (s *FleetOfTheAgelessSkill) OnBattleStart(owner HookActor, battle BattleHooks) {
	if owner.CurrentStats(false)["SPD"] < s.SpdThreshold {
		return
	}
	for _, ally := range battle.AlliesOf(owner.Side()) {
		ally.AddBuff(&buff.Buff{
			Name:        "Fleet Aura (from " + owner.ID() + ")",
			Duration:    -1,
			StaticStats: map[string]float64{"ATK%": s.TeamAtkBonus},
		})
	}
}

var _ RelicSetSkill = (*FleetOfTheAgelessSkill)(nil)

// EagleOfTwilightLineSkill: 2-piece grants flat Wind DMG; 4-piece advances
// the owner's own action progress whenever it casts its ultimate. Grounded
// on relic_set_skill.py's EagleOfTwilightLineSkill.
type EagleOfTwilightLineSkill struct {
	NoopHooks
	WindDmgBonus   float64
	AdvanceForward float64
}

func NewEagleOfTwilightLineSkill() *EagleOfTwilightLineSkill {
	return &EagleOfTwilightLineSkill{WindDmgBonus: 0.10, AdvanceForward: 0.25}
}

func (s *EagleOfTwilightLineSkill) BaseStats() map[string]float64 {
	return map[string]float64{"Wind DMG": s.WindDmgBonus}
}

func (s *EagleOfTwilightLineSkill) OnSkillUsed(owner HookActor, battle BattleHooks, skillKind string) {
	if skillKind == "Ultra" {
		battle.BoostActionProgress(owner.ID(), s.AdvanceForward)
	}
}

var _ RelicSetSkill = (*EagleOfTwilightLineSkill)(nil)

// InertSalsottoSkill: 2-piece grants flat CRIT Rate; 4-piece grants a flat
// damage bonus after an Ultra or a follow-up attack, once CRIT Rate clears
// a threshold. Grounded on relic_set_skill.py's InertSalsottoSkill.
type InertSalsottoSkill struct {
	NoopHooks
	BaseCritRateBonus float64
	CritRateThreshold float64
	DmgBonus          float64
}

func NewInertSalsottoSkill() *InertSalsottoSkill {
	return &InertSalsottoSkill{BaseCritRateBonus: 0.08, CritRateThreshold: 0.50, DmgBonus: 0.15}
}

func (s *InertSalsottoSkill) BaseStats() map[string]float64 {
	return map[string]float64{"CRIT Rate": s.BaseCritRateBonus}
}

func (s *InertSalsottoSkill) OnBattleStart(owner HookActor, _ BattleHooks) {
	owner.AddBuff(&buff.Buff{
		Name:     "Salsotto DMG Bonus",
		Duration: -1,
		DynamicDamage: func(o buff.DynamicActor) float64 {
			critRate := o.CurrentStats(false)["CRIT Rate"]
			if critRate < s.CritRateThreshold {
				return 0
			}
			if ha, ok := o.(HookActor); ok {
				kind := ha.LastSkillKind()
				if kind == "Ultra" || kind == "Follow-up" {
					return s.DmgBonus
				}
			}
			return 0
		},
	})
}

var _ RelicSetSkill = (*InertSalsottoSkill)(nil)

// PasserbyOfWanderingCloudSkill: 2-piece grants flat outgoing healing
// boost; 4-piece immediately grants the owner's side one skill point at
// battle start. Grounded on
// relic_set_skill.py's PasserbyOfWanderingCloudSkill.
type PasserbyOfWanderingCloudSkill struct {
	NoopHooks
	HealingBonus float64
}

func NewPasserbyOfWanderingCloudSkill() *PasserbyOfWanderingCloudSkill {
	return &PasserbyOfWanderingCloudSkill{HealingBonus: 0.10}
}

func (s *PasserbyOfWanderingCloudSkill) BaseStats() map[string]float64 {
	return map[string]float64{"Outgoing Healing Boost": s.HealingBonus}
}

func (s *PasserbyOfWanderingCloudSkill) OnBattleStart(owner HookActor, battle BattleHooks) {
	battle.GainSkillPoint(owner.Side())
}

var _ RelicSetSkill = (*PasserbyOfWanderingCloudSkill)(nil)
