package stat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Phantomding/starrail-simulator/stat"
)

func TestCanonicalize_Synonyms(t *testing.T) {
	assert.Equal(t, "CRIT Rate", stat.Canonicalize("CRIT_RATE"))
	assert.Equal(t, "Wind DMG", stat.Canonicalize("WIND_DMG"))
	assert.Equal(t, "Wind DMG", stat.Canonicalize("Wind DMG"))
}

func TestCanonicalize_ElementDMGAliasing(t *testing.T) {
	assert.Equal(t, "Fire DMG", stat.Canonicalize("Fire DMG%"))
	assert.Equal(t, "Fire DMG", stat.Canonicalize("Fire DMG Boost"))
}

func TestCanonicalize_UnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "Something Unknown", stat.Canonicalize("Something Unknown"))
}

func TestNormalizePercent(t *testing.T) {
	assert.InDelta(t, 0.48, stat.NormalizePercent("CRIT Rate", 48), 1e-9)
	assert.InDelta(t, 0.48, stat.NormalizePercent("CRIT Rate", 0.48), 1e-9)
	// non-percent-typed stats pass through untouched regardless of magnitude
	assert.InDelta(t, 150, stat.NormalizePercent("ATK", 150), 1e-9)
}

func TestFinalizePrimary(t *testing.T) {
	assert.InDelta(t, 1100, stat.FinalizePrimary(1000, 0.05, 50), 1e-9)
}

func TestMergeInto_SumsOnCollisionAndCanonicalizes(t *testing.T) {
	dst := map[string]float64{"ATK%": 0.1}
	stat.MergeInto(dst, map[string]float64{"ATK%": 0.05, "CRIT_RATE": 0.2})

	assert.InDelta(t, 0.15, dst["ATK%"], 1e-9)
	assert.InDelta(t, 0.2, dst["CRIT Rate"], 1e-9)
}
