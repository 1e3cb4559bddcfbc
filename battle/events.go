package battle

import "github.com/google/uuid"

// EventType names the kinds of occurrences battle records to its event
// log (spec §4.7's Scheduler outputs: "actor, event type, numeric
// deltas, resulting state snapshot").
type EventType string

const (
	EventTurnStart     EventType = "turn_start"
	EventSkillUsed     EventType = "skill_used"
	EventForfeited     EventType = "forfeited"
	EventDamageDealt   EventType = "damage_dealt"
	EventHealApplied   EventType = "heal_applied"
	EventBuffApplied   EventType = "buff_applied"
	EventProgressBoost EventType = "progress_boost"
	EventExtraTurn     EventType = "extra_turn"
	EventUltimateCast  EventType = "ultimate_cast"
	EventActorKilled   EventType = "actor_killed"
	EventBattleEnd     EventType = "battle_end"
)

// Event is one entry in the battle's ordered event log. EventID lets an
// external consumer deduplicate or trace a specific entry even after the
// log has been serialized and re-read elsewhere.
type Event struct {
	EventID uuid.UUID
	Round   int
	Type    EventType
	ActorID string
	Detail  string
	Deltas  map[string]float64
}

func (c *Context) emit(evtType EventType, actorID, detail string, deltas map[string]float64) {
	evt := Event{
		EventID: uuid.New(),
		Round:   c.round,
		Type:    evtType,
		ActorID: actorID,
		Detail:  detail,
		Deltas:  deltas,
	}
	c.events = append(c.events, evt)
	c.log.WithFields(map[string]any{
		"event_id": evt.EventID.String(),
		"round":    evt.Round,
		"type":     string(evt.Type),
		"actor_id": evt.ActorID,
	}).Debug(detail)
}

// Events returns the battle's accumulated event log.
func (c *Context) Events() []Event { return c.events }
