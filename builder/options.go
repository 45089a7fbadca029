// SPDX-License-Identifier: MIT
// Package: jigsaw/builder
//
// options.go - functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Generate itself returns errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/jigsaw/grid"
)

// Option customizes Generate by mutating a builderConfig.
type Option func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithDensity sets the probability that a picture cell is filled.
// Border cells (the shared tile edges) always use probability 1/2 so that
// edges stay distinguishable. Panics outside [0,1].
func WithDensity(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Errorf("WithDensity(%v): %w", p, ErrInvalidProbability))
	}
	return func(c *builderConfig) {
		c.density = p
	}
}

// WithFirstID sets the smallest tile id handed out. Ids are firstID..firstID+n-1
// in shuffled order. Panics on negative input.
func WithFirstID(id int) Option {
	if id < 0 {
		panic("builder: WithFirstID(id<0)")
	}
	return func(c *builderConfig) {
		c.firstID = id
	}
}

// WithPattern stamps copies of pattern into the picture, where pattern's
// filled cells ('#') are painted and every other cell is left alone.
// Panics on nil pattern or negative copies.
func WithPattern(pattern *grid.Grid[byte], copies int) Option {
	if pattern == nil {
		panic("builder: WithPattern(nil)")
	}
	if copies < 0 {
		panic("builder: WithPattern(copies<0)")
	}
	return func(c *builderConfig) {
		c.pattern = pattern.Clone()
		c.copies = copies
	}
}

// WithUnturned keeps every tile in its true orientation (ids are still shuffled).
func WithUnturned() Option {
	return func(c *builderConfig) {
		c.unturned = true
	}
}

// WithMaxAttempts bounds how many draws Generate makes before giving up.
// Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("builder: WithMaxAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = n
	}
}
