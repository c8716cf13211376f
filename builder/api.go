// SPDX-License-Identifier: MIT
// Package: pqdijkstra/builder
//
// api.go - orchestration entry point and shortcuts.
//
// Design contract:
//   • One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   • Determinism: same n/options/seed and constructor order ⇒ identical graphs.
//   • Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pqdijkstra/core"
)

// Constructor adds arcs to g using the resolved builderConfig.
// Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph on n vertices, resolves bopts, and applies
// cons in order. The first constructor error is returned wrapped as
// "BuildGraph: %w"; the partial graph is discarded.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < minVertices {
		return nil, fmt.Errorf("BuildGraph: n=%d < min=%d: %w", n, minVertices, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// RandomGraph samples a digraph on n vertices where each ordered pair of
// distinct vertices is an arc with probability p, weighted uniformly in
// [0, maxWeight). The same seed always yields the same graph.
func RandomGraph(n int, p float64, maxWeight int64, seed int64) (*core.Graph, error) {
	if maxWeight < 1 {
		return nil, fmt.Errorf("%s: maxWeight=%d: %w", methodRandomGraph, maxWeight, ErrBadMaxWeight)
	}

	return BuildGraph(n,
		[]BuilderOption{WithSeed(seed), WithWeightFn(UniformWeightFn(0, maxWeight))},
		RandomSparse(p),
	)
}
