package simerr_test

import (
	"context"
	"fmt"

	"github.com/Phantomding/starrail-simulator/simerr"
)

// Example_errorAccumulation demonstrates automatic context accumulation:
// the error captures the complete story without manual passing.
func Example_errorAccumulation() {
	err := simulateSkillAttempt()

	meta := simerr.GetMeta(err)
	fmt.Printf("Error: %v\n", err)
	fmt.Printf("Round: %v\n", meta["round"])
	fmt.Printf("Actor: %v\n", meta["actor_id"])
	fmt.Printf("Skill: %v\n", meta["skill_id"])
	fmt.Printf("Targets: %v\n", meta["targets_available"])

	// Output:
	// Error: invalid target: no valid target for skill
	// Round: 3
	// Actor: hero
	// Skill: single_target_slash
	// Targets: 0
}

func simulateSkillAttempt() error {
	ctx := context.Background()
	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("round", 3),
		simerr.Meta("phase", "turn"))

	return executeTurn(ctx, "hero")
}

func executeTurn(ctx context.Context, actorID string) error {
	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("actor_id", actorID),
		simerr.Meta("skill_kind", "Normal"))

	return resolveSkill(ctx, "single_target_slash")
}

func resolveSkill(ctx context.Context, skillID string) error {
	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("skill_id", skillID),
		simerr.Meta("targets_available", 0))

	return simerr.InvalidTargetCtx(ctx, "no valid target for skill")
}

// Example_ultimateEnergyJourney shows how ultimate-cast failures accumulate
// context through the energy system.
func Example_ultimateEnergyJourney() {
	ctx := context.Background()

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("caster", "hero"),
		simerr.Meta("caster_level", 60))

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("skill_id", "coda_ultimate"),
		simerr.Meta("energy_cost", 120))

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("energy_available", 85))

	err := simerr.ResourceExhaustedCtx(ctx, "energy")

	meta := simerr.GetMeta(err)
	fmt.Printf("Cannot cast %v - need %v energy\n", meta["skill_id"], meta["energy_cost"])
	fmt.Printf("Caster %v (level %v) has %v energy\n",
		meta["caster"], meta["caster_level"], meta["energy_available"])

	// Output:
	// Cannot cast coda_ultimate - need 120 energy
	// Caster hero (level 60) has 85 energy
}

// Example_toughnessBreakChain demonstrates how a toughness break accumulates
// context through targeting, weakness matching, and break resolution.
func Example_toughnessBreakChain() {
	ctx := context.Background()

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("skill_id", "gust_slash"),
		simerr.Meta("element", "Wind"),
		simerr.Meta("caster", "hero"))

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("target", "wendigo"),
		simerr.Meta("weaknesses", []string{"Physical"}),
		simerr.Meta("weakness_matched", false))

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("toughness_before", 0),
		simerr.Meta("toughness_damage", 30))

	err := simerr.NewCtx(ctx, simerr.CodeBlocked, "toughness already broken, no further break damage applied")

	meta := simerr.GetMeta(err)
	fmt.Printf("Skill: %v (%v) cast by %v\n", meta["skill_id"], meta["element"], meta["caster"])
	fmt.Printf("Target %v already at %v toughness\n", meta["target"], meta["toughness_before"])
	fmt.Printf("Result: %v\n", err)

	// Output:
	// Skill: gust_slash (Wind) cast by hero
	// Target wendigo already at 0 toughness
	// Result: toughness already broken, no further break damage applied
}

// Example_damageReductionPipeline shows deep nesting where each pipeline
// stage adds its context, creating a complete picture of why damage was
// modified.
func Example_damageReductionPipeline() {
	ctx := context.Background()
	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("attacker", "hero"),
		simerr.Meta("skill_id", "single_target_slash"))

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("element", "Physical"),
		simerr.Meta("base_multiplier", 1.0),
		simerr.Meta("atk", 1800),
		simerr.Meta("crit_applied", true))

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("target", "wendigo"),
		simerr.Meta("def_reduction", 0.2),
		simerr.Meta("resistance", 0.1))

	ctx = simerr.WithMetadata(ctx,
		simerr.Meta("final_damage", 2160))

	err := simerr.NewCtx(ctx, simerr.CodeBlocked,
		"damage reduced by target resistance")

	meta := simerr.GetMeta(err)
	fmt.Printf("Attack: %v with %v dealt base ATK %v\n",
		meta["attacker"], meta["skill_id"], meta["atk"])
	fmt.Printf("Against %v: final damage %v\n",
		meta["target"], meta["final_damage"])

	// Output:
	// Attack: hero with single_target_slash dealt base ATK 1800
	// Against wendigo: final damage 2160
}
