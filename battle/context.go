// Package battle owns the running simulation: the participant roster,
// the scheduler's action-value pool and skill points, the damage
// pipeline, and the event log, and drives the round loop of spec §4.7.
//
// Grounded structurally on original_source/starrail/core/battle_context.py
// (the single object every skill/buff/hook call reaches back into) and,
// for the Go idiom of a state owner driven by an external Run call with
// a correlation id threaded through its logger, on
// rulebooks/dnd5e/combat.CombatState.
package battle

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Phantomding/starrail-simulator/actor"
	"github.com/Phantomding/starrail-simulator/damage"
	"github.com/Phantomding/starrail-simulator/dice"
	"github.com/Phantomding/starrail-simulator/effect"
	"github.com/Phantomding/starrail-simulator/equipment"
	"github.com/Phantomding/starrail-simulator/scheduler"
	"github.com/Phantomding/starrail-simulator/simlog"
	"github.com/Phantomding/starrail-simulator/skill"
)

// Config assembles everything a Context needs to run one battle.
type Config struct {
	Entries  []*Entry
	Registry skill.Registry
	Roller   dice.Roller
	// MaxRounds caps how many rounds Run will play before stopping with a
	// draw. 0 means unlimited — Run then stops only once a side is
	// eliminated.
	MaxRounds int
	Logger    *logrus.Logger // defaults to simlog.Discard() if nil
}

// Context is the sole owner of all mutable battle state: the progress
// map, skill-point pools, pending-boost map, and event log. Equipment
// objects are read-only after battle start; each actor exclusively owns
// its own buff container and HP/energy fields (spec §5's resource
// ownership rules).
type Context struct {
	entries  []*Entry
	byID     map[string]*Entry
	registry skill.Registry

	pool   *scheduler.Pool
	points *scheduler.SkillPoints
	damage *damage.Pipeline

	maxRounds int
	round     int
	ended     bool
	winner    string

	battleID uuid.UUID
	log      *logrus.Entry
	events   []Event
}

// New builds a Context from cfg. Skill points start every side seen in
// cfg.Entries at the spec §4.9 defaults (cap 5, initial 3).
func New(cfg Config) *Context {
	sides := make(map[string]bool)
	byID := make(map[string]*Entry, len(cfg.Entries))
	for _, e := range cfg.Entries {
		sides[e.Actor.Side()] = true
		byID[e.Actor.ID()] = e
	}
	sideList := make([]string, 0, len(sides))
	for side := range sides {
		sideList = append(sideList, side)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = simlog.Discard()
	}
	battleID := uuid.New()

	return &Context{
		entries:   cfg.Entries,
		byID:      byID,
		registry:  cfg.Registry,
		pool:      scheduler.NewPool(),
		points:    scheduler.NewSkillPoints(5, 3, sideList...),
		damage:    damage.NewPipeline(cfg.Roller, onBuffPanic(logger, battleID)),
		maxRounds: cfg.MaxRounds,
		battleID:  battleID,
		log:       logger.WithFields(simlog.Fields(battleID.String(), 0, "")),
	}
}

func onBuffPanic(logger *logrus.Logger, battleID uuid.UUID) func(string, any) {
	return func(buffName string, recovered any) {
		logger.WithFields(logrus.Fields{
			"battle_id": battleID.String(),
			"buff_name": buffName,
		}).Warnf("dynamic buff closure panicked: %v", recovered)
	}
}

func (c *Context) entryByID(id string) *Entry { return c.byID[id] }

// LivingEnemiesOf implements actor.BattleView.
func (c *Context) LivingEnemiesOf(side string) []*actor.Actor {
	var out []*actor.Actor
	for _, e := range c.entries {
		if e.Actor.Side() != side && e.Actor.IsAlive() {
			out = append(out, e.Actor)
		}
	}
	return out
}

// LivingAlliesOf implements actor.BattleView.
func (c *Context) LivingAlliesOf(side string) []*actor.Actor {
	var out []*actor.Actor
	for _, e := range c.entries {
		if e.Actor.Side() == side && e.Actor.IsAlive() {
			out = append(out, e.Actor)
		}
	}
	return out
}

// SkillPointsAvailable implements actor.BattleView.
func (c *Context) SkillPointsAvailable(side string) int { return c.points.Available(side) }

var _ actor.BattleView = (*Context)(nil)

// AlliesOf implements equipment.BattleHooks.
func (c *Context) AlliesOf(side string) []equipment.HookActor {
	var out []equipment.HookActor
	for _, e := range c.entries {
		if e.Actor.Side() == side {
			out = append(out, e.Actor)
		}
	}
	return out
}

// GainSkillPoint implements equipment.BattleHooks.
func (c *Context) GainSkillPoint(side string) { c.points.GrantFromNormal(side) }

// BoostActionProgress implements equipment.BattleHooks.
func (c *Context) BoostActionProgress(actorID string, fraction float64) {
	if e := c.entryByID(actorID); e != nil {
		c.pool.ApplyBoost(e.Actor, fraction, effect.TimingImmediate, false)
	}
}

var _ equipment.BattleHooks = (*Context)(nil)

// livingEntries returns every entry whose actor is currently alive.
func (c *Context) livingEntries() []*Entry {
	var out []*Entry
	for _, e := range c.entries {
		if e.Actor.IsAlive() {
			out = append(out, e)
		}
	}
	return out
}

func (c *Context) livingActors() []*actor.Actor {
	entries := c.livingEntries()
	out := make([]*actor.Actor, len(entries))
	for i, e := range entries {
		out[i] = e.Actor
	}
	return out
}

// checkBattleEnd reports whether one side has been fully eliminated and,
// if so, records the winner. A battle with no survivors on either side
// (mutual elimination) ends in a draw.
func (c *Context) checkBattleEnd() bool {
	partyAlive, enemyAlive := false, false
	for _, e := range c.entries {
		if !e.Actor.IsAlive() {
			continue
		}
		if e.Actor.Side() == "enemy" {
			enemyAlive = true
		} else {
			partyAlive = true
		}
	}
	switch {
	case !partyAlive && !enemyAlive:
		c.ended, c.winner = true, "draw"
	case !enemyAlive:
		c.ended, c.winner = true, "party"
	case !partyAlive:
		c.ended, c.winner = true, "enemy"
	}
	return c.ended
}
