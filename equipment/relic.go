package equipment

import (
	"sort"

	"github.com/Phantomding/starrail-simulator/core"
)

// Slot identifies one of the six relic equip slots. At most one relic per
// slot may be equipped at a time (spec §3 Actor invariants).
type Slot string

const (
	SlotHead         Slot = "Head"
	SlotHands        Slot = "Hands"
	SlotBody         Slot = "Body"
	SlotFeet         Slot = "Feet"
	SlotPlanarSphere Slot = "Planar Sphere"
	SlotLinkRope     Slot = "Link Rope"
)

// MaxRelics is the hard cap on simultaneously equipped relics (one per
// slot, six slots).
const MaxRelics = 6

// SubStat is a single secondary-stat roll on a relic.
type SubStat struct {
	Stat  string
	Value float64
}

// Relic is a single equipped piece: a slot, a set identity, one main stat,
// and up to four sub-stats. Relics are immutable catalog data.
type Relic struct {
	ID        string
	Slot      Slot
	SetName   string
	MainStat  string
	MainValue float64
	SubStats  []SubStat
}

// StatContribution flattens the main stat and every sub-stat into one
// additive map, keyed by raw (not yet canonicalized) stat name. The
// aggregator is responsible for canonicalizing and percent-normalizing.
func (r *Relic) StatContribution() map[string]float64 {
	out := make(map[string]float64, len(r.SubStats)+1)
	out[r.MainStat] += r.MainValue
	for _, s := range r.SubStats {
		out[s.Stat] += s.Value
	}
	return out
}

// RelicSetSkill is the 2-piece/4-piece effect derived from the multiset of
// equipped set identities. Every equipped relic's set contributes the
// 2-piece BaseStats() when the actor has >=2 pieces of that set; the hooks
// fire (and are typically where the 4-piece effect lives) regardless of
// count, it is up to the skill instance itself to gate on piece count via
// a closure reading the owner's equipped relics, mirroring the source.
type RelicSetSkill interface {
	Hooks

	// BaseStats returns the static 2-piece stat grant.
	BaseStats() map[string]float64
}

// NoopSetSkill is used for a set name with no registered implementation.
type NoopSetSkill struct {
	NoopHooks
}

func (NoopSetSkill) BaseStats() map[string]float64 { return nil }

var _ RelicSetSkill = NoopSetSkill{}

// SetRegistry maps a relic set name to its skill implementation. Catalog
// loading looks up each distinct equipped set name here; an unregistered
// name resolves to NoopSetSkill rather than an error, since a relic set
// with no 2/4-piece coded effect is a legitimate (if incomplete) catalog
// entry, not a malformed one.
type SetRegistry map[string]RelicSetSkill

// Lookup returns the registered skill for name, or NoopSetSkill if none is
// registered.
func (r SetRegistry) Lookup(name string) RelicSetSkill {
	if skill, ok := r[name]; ok {
		return skill
	}
	return NoopSetSkill{}
}

// SetCounts tallies how many relics of each set name appear in relics.
func SetCounts(relics []*Relic) map[string]int {
	counts := make(map[string]int)
	for _, r := range relics {
		counts[r.SetName]++
	}
	return counts
}

// ActiveSet pairs a relic set's resolved skill with how many pieces of it
// are currently equipped. The 2-piece BaseStats() grant applies at Count
// >= 2; the 4-piece hook hooks are only meant to be installed at Count >=
// 4 — callers check Count themselves before wiring either half in, since
// that gating differs by caller (stat aggregation vs. battle-start hook
// installation).
type ActiveSet struct {
	Name  string
	Count int
	Skill RelicSetSkill
}

// ActiveSets resolves every distinct set name present in relics against
// registry, in a fixed name-sorted order so stat aggregation and hook
// installation stay deterministic across runs.
func ActiveSets(relics []*Relic, registry SetRegistry) []ActiveSet {
	counts := SetCounts(relics)
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]ActiveSet, 0, len(names))
	for _, name := range names {
		sets = append(sets, ActiveSet{Name: name, Count: counts[name], Skill: registry.Lookup(name)})
	}
	return sets
}

// ValidateEquip checks whether candidate can be added to the already
// equipped relics without violating the slot-uniqueness or six-relic cap
// invariants from spec §3. It returns a *core.EquipmentError wrapping the
// specific core sentinel on violation.
func ValidateEquip(characterID string, equipped []*Relic, candidate *Relic) error {
	if len(equipped) >= MaxRelics {
		return core.NewEquipmentError("equip", characterID, candidate.ID, string(candidate.Slot), core.ErrRelicCapExceeded)
	}
	for _, r := range equipped {
		if r.Slot == candidate.Slot {
			return core.NewEquipmentError("equip", characterID, candidate.ID, string(candidate.Slot), core.ErrSlotOccupied)
		}
	}
	return nil
}
