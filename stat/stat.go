// Package stat provides the pure, side-effect-free arithmetic used by the
// stat aggregation algorithm. It knows nothing about actors, buffs, or
// equipment — those types call into this package so that the layering
// math and the alias/synonym rules stay unit-testable in isolation and so
// that no import cycle forms between stat and the actor/buff packages.
package stat

import "strings"

// Primary stat names. These are the only keys computed through the
// base/percent/flat three-layer formula; everything else is additive.
const (
	HP  = "HP"
	ATK = "ATK"
	DEF = "DEF"
	SPD = "SPD"
)

// Primaries lists the primary stats in a fixed, deterministic order.
var Primaries = []string{HP, ATK, DEF, SPD}

// PercentKey returns the percent-layer key for a primary stat, e.g. "ATK%".
func PercentKey(primary string) string {
	return primary + "%"
}

// synonymTable unifies the many spellings a catalog or buff author might
// use for the same stat into one canonical key. Grounded on the source
// catalog's STAT_NAME_UNIFY_MAP.
var synonymTable = map[string]string{
	"CRIT_RATE":             "CRIT Rate",
	"CRIT Rate":             "CRIT Rate",
	"CRIT_DMG":              "CRIT DMG",
	"CRIT DMG":              "CRIT DMG",
	"ENERGY_REGEN_RATE":     "Energy Regeneration Rate",
	"Energy Regeneration Rate": "Energy Regeneration Rate",
	"EFFECT_HIT_RATE":       "Effect Hit Rate",
	"Effect Hit Rate":       "Effect Hit Rate",
	"EFFECT_RES":            "Effect RES",
	"Effect RES":            "Effect RES",
	"OUTGOING_HEALING":      "Outgoing Healing Boost",
	"Outgoing Healing Boost": "Outgoing Healing Boost",
	"BREAK_EFFECT":          "Break Effect",
	"Break Effect":          "Break Effect",
	"DEF_IGNORE":            "DEF Ignore %",
	"DEF Ignore %":          "DEF Ignore %",
	"WIND_DMG":              "Wind DMG",
	"Wind DMG":              "Wind DMG",
	"LIGHTNING_DMG":         "Lightning DMG",
	"Lightning DMG":         "Lightning DMG",
	"FIRE_DMG":              "Fire DMG",
	"Fire DMG":              "Fire DMG",
	"ICE_DMG":               "Ice DMG",
	"Ice DMG":               "Ice DMG",
	"PHYSICAL_DMG":          "Physical DMG",
	"Physical DMG":          "Physical DMG",
	"QUANTUM_DMG":           "Quantum DMG",
	"Quantum DMG":           "Quantum DMG",
	"IMAGINARY_DMG":         "Imaginary DMG",
	"Imaginary DMG":         "Imaginary DMG",
}

// percentTypedAllowlist names the stats whose catalog value might be
// expressed as a percent greater than 1 (e.g. 48 instead of 0.48) and
// therefore need the /100 normalization described in spec §6.
var percentTypedAllowlist = map[string]bool{
	"HP%": true, "ATK%": true, "DEF%": true, "SPD%": true,
	"CRIT Rate": true, "CRIT DMG": true, "Effect Hit Rate": true, "Effect RES": true,
	"Energy Regeneration Rate": true, "Outgoing Healing Boost": true, "Break Effect": true,
	"DEF Ignore %": true,
	"Physical DMG": true, "Fire DMG": true, "Ice DMG": true, "Lightning DMG": true,
	"Wind DMG": true, "Quantum DMG": true, "Imaginary DMG": true,
}

// Canonicalize collapses a stat key through the synonym table and, for
// element-damage keys, through the `DMG%`/`DMG Boost` suffix aliasing
// described in spec §4.1 step 7. It always returns a usable key, even for
// names the table does not recognize (those pass through unchanged).
func Canonicalize(key string) string {
	if canon, ok := synonymTable[key]; ok {
		return canon
	}
	if strings.HasSuffix(key, " DMG%") {
		return strings.TrimSuffix(key, "%") // "<Element> DMG%" -> "<Element> DMG"
	}
	if strings.HasSuffix(key, " DMG Boost") {
		return strings.TrimSuffix(key, " Boost")
	}
	return key
}

// NormalizePercent converts a percent-typed stat value expressed as a
// whole-number percentage (e.g. 48 for 48%) into a fraction (0.48). Values
// already below 1 are assumed to already be fractions and pass through.
// Only stats on the allowlist are eligible for this conversion.
func NormalizePercent(key string, value float64) float64 {
	if !percentTypedAllowlist[Canonicalize(key)] {
		return value
	}
	if value > 1.0 {
		return value / 100.0
	}
	return value
}

// FinalizePrimary applies the §4.1 step 5 formula: final = base*(1+percent) + flat.
func FinalizePrimary(base, percent, flat float64) float64 {
	return base*(1+percent) + flat
}

// MergeInto adds src's values into dst, canonicalizing keys and summing on
// collision. dst is mutated and returned for chaining.
func MergeInto(dst map[string]float64, src map[string]float64) map[string]float64 {
	if dst == nil {
		dst = make(map[string]float64, len(src))
	}
	for k, v := range src {
		dst[Canonicalize(k)] += v
	}
	return dst
}
