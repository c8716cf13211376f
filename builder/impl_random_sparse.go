// SPDX-License-Identifier: MIT
// Package: pqdijkstra/builder
//
// impl_random_sparse.go - RandomSparse(p) constructor.
//
// Model:
//   - Directed Erdős–Rényi: each ordered pair (i,j), i≠j, is an arc with probability p.
//   - No self-loops; at most one arc per ordered pair.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Weight per accepted arc: cfg.weightFn(cfg.rng).
//
// Determinism:
//   - Trial order is i asc, j asc. For 0 < p < 1 every trial draws one Float64
//     and every accepted trial draws its weight immediately after.
//
// Complexity: O(n²) trials, O(E) arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pqdijkstra/core"
)

// RandomSparse returns a Constructor that samples arcs with probability p
// over the vertices already present in g.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		stochastic := p > probMin && p < probMax
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if p == probMin {
			return nil
		}

		n := g.Order()
		rng := cfg.rng
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if stochastic && rng.Float64() >= p {
					continue
				}
				w := cfg.weightFn(rng)
				if err := g.AddEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %v: %w",
						methodRandomSparse, i, j, w, err, ErrConstructFailed)
				}
			}
		}

		return nil
	}
}
