// Package core provides the fundamental interfaces shared by the rest of
// the simulator: entity identity and the common error types used by the
// equipment and actor packages. The staged Chain[T] abstraction lives in
// the chain subpackage; the element/category vocabulary lives in the
// damage subpackage.
//
// Scope:
//   - Entity interface: identity contract used for logging and hook targets.
//   - Error types: wrappers shared by equipment and actor validation.
//
// Non-Goals:
//   - Stats, HP, buffs: those belong to the actor, stat, and buff packages.
//   - Scheduling and skill dispatch: those belong to scheduler and skill.
package core
