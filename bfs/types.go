// SPDX-License-Identifier: MIT
// Package: pqdijkstra/bfs
//
// types.go - result and sentinel errors.

package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Unreached is the Depth of a vertex BFS never visited.
const Unreached = -1

// Result holds the outcome of a traversal.
type Result struct {
	// Order lists visited vertices in dequeue order.
	Order []int
	// Depth[v] is the hop count from the start, or Unreached.
	Depth []int
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unreached
}
