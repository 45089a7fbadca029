// SPDX-License-Identifier: MIT
// Package: jigsaw/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = rand.New(rand.NewSource(1))
//   • density     = 0.5
//   • firstID     = 1000
//   • pattern     = none
//   • maxAttempts = 64

package builder

import (
	"math/rand"

	"github.com/katalvlaran/jigsaw/grid"
)

// builderConfig aggregates all knobs used by Generate.
type builderConfig struct {
	rng         *rand.Rand
	density     float64
	firstID     int
	pattern     *grid.Grid[byte]
	copies      int
	unturned    bool
	maxAttempts int
}

const (
	defaultSeed        = int64(1)
	defaultDensity     = 0.5
	defaultFirstID     = 1000
	defaultMaxAttempts = 64
	borderDensity      = 0.5
	segmentTries       = 32
)

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:         rand.New(rand.NewSource(defaultSeed)),
		density:     defaultDensity,
		firstID:     defaultFirstID,
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
