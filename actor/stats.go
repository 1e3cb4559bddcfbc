package actor

import (
	"github.com/Phantomding/starrail-simulator/equipment"
	"github.com/Phantomding/starrail-simulator/stat"
)

var primaryBareSet = func() map[string]bool {
	m := make(map[string]bool, len(stat.Primaries))
	for _, p := range stat.Primaries {
		m[p] = true
	}
	return m
}()

var primaryPercentSet = func() map[string]bool {
	m := make(map[string]bool, len(stat.Primaries))
	for _, p := range stat.Primaries {
		m[stat.PercentKey(p)] = true
	}
	return m
}()

// CurrentStats aggregates the actor's full stat sheet, implementing the
// algorithm in spec §4.1. recursiveGuard, when true, skips the dynamic
// buff layer — set by a dynamic closure that is itself mid-evaluation of
// this same actor's stats, to keep the recursion finite.
func (a *Actor) CurrentStats(recursiveGuard bool) map[string]float64 {
	base := make(map[string]float64, len(stat.Primaries))
	for _, p := range stat.Primaries {
		base[p] = a.BaseStats[p]
	}
	flat := make(map[string]float64, len(stat.Primaries))

	// additive accumulates every non-primary-bare contribution: secondary
	// stats (CRIT Rate, element DMG%, ...) and the four primary percent
	// keys (ATK%, ...), all summed the same way and split apart only at
	// finalization. This mirrors the source's single percent_stats bucket.
	additive := make(map[string]float64)

	addContribution := func(key string, value float64) {
		canon := stat.Canonicalize(key)
		if primaryBareSet[canon] {
			flat[canon] += value
			return
		}
		additive[canon] += stat.NormalizePercent(canon, value)
	}

	for k, v := range a.BaseStats {
		if primaryBareSet[k] {
			continue
		}
		additive[stat.Canonicalize(k)] += v
	}

	if a.LightCone != nil {
		for k, v := range a.LightCone.StaticStats {
			addContribution(k, v)
		}
		for k, v := range a.LightCone.BasePercentStats(a.path) {
			additive[stat.Canonicalize(k)] += stat.NormalizePercent(k, v)
		}
	}

	for _, r := range a.Relics {
		for k, v := range r.StatContribution() {
			addContribution(k, v)
		}
	}

	for k, v := range a.Traces {
		addContribution(k, v)
	}

	if a.SetRegistry != nil {
		for _, active := range equipment.ActiveSets(a.Relics, a.SetRegistry) {
			if active.Count < 2 {
				continue
			}
			for k, v := range active.Skill.BaseStats() {
				additive[stat.Canonicalize(k)] += stat.NormalizePercent(k, v)
			}
		}
	}

	for k, v := range a.Buffs.StaticAndDynamicStats(a, recursiveGuard, a.PanicLogger) {
		additive[stat.Canonicalize(k)] += v
	}

	final := make(map[string]float64, len(additive)+len(stat.Primaries))
	for _, p := range stat.Primaries {
		final[p] = stat.FinalizePrimary(base[p], additive[stat.PercentKey(p)], flat[p])
	}
	for k, v := range additive {
		if primaryPercentSet[k] {
			continue
		}
		final[k] += v
	}
	return final
}
