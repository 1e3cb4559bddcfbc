// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dice provides the randomness source for the damage pipeline's
// crit roll (spec §4.3 attacker step 4). Unlike the teacher's dice
// package, this simulator has no dice-notation mechanics ("3d6+2") to
// parse — every roll here is a single probability check ("succeed with
// probability p") — so the surface is trimmed to just the Roller
// interface and two implementations: a cryptographically secure default
// and a seeded one for reproducible simulation runs (spec §6a's --seed
// flag).
package dice

import (
	"crypto/rand"
	"math/big"
)

//go:generate mockgen -destination=mock/mock_roller.go -package=mock_dice github.com/Phantomding/starrail-simulator/dice Roller

// Roller is the interface for random number generation used by the
// damage pipeline. Implementations must be safe for sequential use
// within one battle; the simulator is single-threaded (spec §5), so
// concurrent-safety is not required.
type Roller interface {
	// Chance reports whether an event with the given success
	// probability (in [0,1]) occurs on this roll.
	Chance(probability float64) bool
}

// CryptoRoller implements Roller using crypto/rand for cryptographically
// secure randomness. This is the default outside of reproducible-run mode.
type CryptoRoller struct{}

// Chance implements Roller using crypto/rand.
func (CryptoRoller) Chance(probability float64) bool {
	if probability <= 0 {
		return false
	}
	if probability >= 1 {
		return true
	}
	const resolution = 1_000_000
	n, err := rand.Int(rand.Reader, big.NewInt(resolution))
	if err != nil {
		// crypto/rand failure is not recoverable; fall back to the
		// least-surprising safe answer rather than panic mid-battle.
		return false
	}
	return float64(n.Int64()) < probability*resolution
}

// NewCryptoRoller returns the default cryptographically secure Roller.
func NewCryptoRoller() Roller { return CryptoRoller{} }

var _ Roller = CryptoRoller{}
