// SPDX-License-Identifier: MIT
// Package: pqdijkstra/builder
//
// impl_path.go - Path(w) and Arcs(...) constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pqdijkstra/core"
)

// Path returns a Constructor adding arcs 0→1→…→n-1, each of weight w.
// A single-vertex graph gets no arcs.
func Path(w int64) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i := 0; i+1 < g.Order(); i++ {
			if err := g.AddEdge(i, i+1, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %v: %w",
					methodPath, i, i+1, w, err, ErrConstructFailed)
			}
		}

		return nil
	}
}

// Arcs returns a Constructor adding the given arcs in order.
// The graph validates endpoints and weights.
func Arcs(edges ...core.Edge) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, e := range edges {
			if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
				return fmt.Errorf("%s: %v: %w", methodArcs, err, ErrConstructFailed)
			}
		}

		return nil
	}
}
