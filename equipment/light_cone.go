package equipment

// LightConeSkill is the typed skill instance a LightCone installs. The
// instance is what actually implements Hooks; a LightCone without a
// registered skill_id falls back to NoopSkill, which contributes no base
// percent stats and hooks nothing.
type LightConeSkill interface {
	Hooks

	// BasePercentStats returns the skill's own percent-layer stat grant at
	// the given superimposition level (1-5). It only applies when the
	// owning actor's path matches the light cone's path (spec §4.1 step 2).
	BasePercentStats(level int) map[string]float64
}

// NoopSkill is the LightConeSkill used for a light cone with no skill_id
// registered in the catalog, or an unrecognized one.
type NoopSkill struct {
	NoopHooks
}

func (NoopSkill) BasePercentStats(int) map[string]float64 { return nil }

var _ LightConeSkill = NoopSkill{}

// LightCone is equipment with static stat grants and an optional typed
// skill instance. LightCones are immutable catalog data; only the skill
// instance's private counters (e.g. an ultimate-cast tally) mutate during
// a battle.
type LightCone struct {
	ID    string
	Name  string
	Path  string // must match an actor's Path for BasePercentStats to apply
	Level int    // superimposition level, 1-5

	// StaticStats are flat percent/flat contributions unconditionally
	// added regardless of path, e.g. "ATK%": 0.16.
	StaticStats map[string]float64

	Skill LightConeSkill
}

// NewLightCone constructs a LightCone, defaulting Skill to NoopSkill when
// none is supplied so callers never need a nil check before invoking hooks.
func NewLightCone(id, name, path string, level int, staticStats map[string]float64, skill LightConeSkill) *LightCone {
	if skill == nil {
		skill = NoopSkill{}
	}
	return &LightCone{
		ID:          id,
		Name:        name,
		Path:        path,
		Level:       level,
		StaticStats: staticStats,
		Skill:       skill,
	}
}

// BasePercentStats returns the skill's percent grant gated on path match,
// per spec §4.1 step 2. Pass the owning actor's path.
func (lc *LightCone) BasePercentStats(actorPath string) map[string]float64 {
	if lc == nil {
		return nil
	}
	if actorPath != "" && lc.Path != actorPath {
		return nil
	}
	return lc.Skill.BasePercentStats(lc.Level)
}
