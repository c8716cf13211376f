// SPDX-License-Identifier: MIT
// Package: pqdijkstra/builder
//
// config.go - resolved builder configuration and deterministic defaults.
//
// Defaults:
//   • rng      = nil                (deterministic unless seeded)
//   • weightFn = ConstantWeightFn(1)

package builder

import "math/rand"

// defaultConstWeight is the arc weight when no WeightFn is configured.
const defaultConstWeight int64 = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn   // per-arc weight policy
}

// newBuilderConfig applies opts in order over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
