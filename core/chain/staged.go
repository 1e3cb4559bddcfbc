// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package chain

import (
	"context"
	"errors"
	"fmt"
)

// Common errors for chain operations.
var (
	ErrDuplicateID = errors.New("modifier ID already exists")
	ErrIDNotFound  = errors.New("modifier ID not found")
)

// StagedChain implements Chain[T] with ordered stage execution.
// It processes data through stages in the order they were defined.
//
// The simulator runs single-threaded (no goroutines touch a battle's
// chains concurrently), so unlike a general-purpose toolkit this
// implementation carries no mutex.
type StagedChain[T any] struct {
	stages    []Stage
	modifiers map[Stage][]modifier[T]
	idToStage map[string]Stage
}

type modifier[T any] struct {
	id      string
	handler func(context.Context, T) (T, error)
}

// NewStagedChain creates a new chain with the specified stage order.
// Modifiers execute in the order stages are provided.
func NewStagedChain[T any](stages []Stage) *StagedChain[T] {
	modifiers := make(map[Stage][]modifier[T], len(stages))
	for _, stage := range stages {
		modifiers[stage] = make([]modifier[T], 0)
	}

	return &StagedChain[T]{
		stages:    stages,
		modifiers: modifiers,
		idToStage: make(map[string]Stage),
	}
}

// Add implements Chain[T].
func (c *StagedChain[T]) Add(stage Stage, id string, handler func(context.Context, T) (T, error)) error {
	if _, exists := c.idToStage[id]; exists {
		return ErrDuplicateID
	}

	c.modifiers[stage] = append(c.modifiers[stage], modifier[T]{id: id, handler: handler})
	c.idToStage[id] = stage

	return nil
}

// Remove implements Chain[T].
func (c *StagedChain[T]) Remove(id string) error {
	stage, exists := c.idToStage[id]
	if !exists {
		return ErrIDNotFound
	}

	mods := c.modifiers[stage]
	for i, mod := range mods {
		if mod.id == id {
			c.modifiers[stage] = append(mods[:i], mods[i+1:]...)
			delete(c.idToStage, id)
			return nil
		}
	}

	return ErrIDNotFound
}

// Execute implements Chain[T].
func (c *StagedChain[T]) Execute(ctx context.Context, data T) (T, error) {
	result := data

	for _, stage := range c.stages {
		for _, mod := range c.modifiers[stage] {
			var err error
			result, err = mod.handler(ctx, result)
			if err != nil {
				return result, fmt.Errorf("stage %s, modifier %s: %w", stage, mod.id, err)
			}
		}
	}

	return result, nil
}
