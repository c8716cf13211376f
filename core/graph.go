// SPDX-License-Identifier: MIT
// Package: pqdijkstra/core
//
// graph.go - construction and read-only queries.

package core

import "fmt"

// NewGraph returns a graph with n isolated vertices 0..n-1.
// Complexity: O(n) time and space.
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrBadOrder)
	}

	return &Graph{adj: make([][]Edge, n)}, nil
}

// AddEdge appends the arc from→to with weight w.
// Parallel arcs and self-loops are kept as distinct entries.
func (g *Graph) AddEdge(from, to int, w int64) error {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return fmt.Errorf("AddEdge(%d→%d): order=%d: %w", from, to, len(g.adj), ErrVertexOutOfRange)
	}
	if w < 0 {
		return fmt.Errorf("AddEdge(%d→%d): w=%d: %w", from, to, w, ErrNegativeWeight)
	}
	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Weight: w})
	g.size++

	return nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of edges, parallel ones included.
func (g *Graph) Size() int { return g.size }

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }

// Neighbors returns the outgoing edges of u in insertion order.
// The returned slice aliases internal storage and must not be modified.
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("Neighbors(%d): order=%d: %w", u, len(g.adj), ErrVertexOutOfRange)
	}

	return g.adj[u], nil
}

// Edges returns a copy of every edge, grouped by source vertex ascending
// and in insertion order within a group.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.size)
	for _, list := range g.adj {
		out = append(out, list...)
	}

	return out
}

// OutDegree returns the number of edges leaving u, or 0 if u is out of range.
func (g *Graph) OutDegree(u int) int {
	if !g.HasVertex(u) {
		return 0
	}

	return len(g.adj[u])
}
