// SPDX-License-Identifier: MIT
// Package: pqdijkstra/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs;
// constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-arc weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
