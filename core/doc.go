// SPDX-License-Identifier: MIT

// Package core provides the immutable-after-build weighted directed graph
// consumed by the shortest-path engine.
//
// Vertices are dense integers in [0, n). There is no vertex object: identity
// is the index. Each vertex owns a multi-list of outgoing edges, so parallel
// edges between the same ordered pair and self-loops are both representable.
//
// Construction:
//
//	g, err := core.NewGraph(5)
//	if err != nil { ... }
//	_ = g.AddEdge(0, 1, 10)
//	_ = g.AddEdge(0, 2, 5)
//
// Invariants enforced by AddEdge:
//
//   - both endpoints lie in [0, Order()) (else ErrVertexOutOfRange);
//   - weight ≥ 0 (else ErrNegativeWeight).
//
// Concurrency:
//
//   - AddEdge is not synchronized; build a Graph from one goroutine.
//   - Once built, any number of goroutines may read it concurrently
//     (Neighbors, Edges, Order, Size never mutate).
//
// Complexity:
//
//   - NewGraph: O(V) time and space.
//   - AddEdge:  O(1) amortized.
//   - Neighbors: O(1) (returns the internal slice; callers must not modify it).
package core
