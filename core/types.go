// SPDX-License-Identifier: MIT
// Package: pqdijkstra/core
//
// types.go - Edge, Graph and sentinel errors.

package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrBadOrder indicates a negative vertex count was requested.
	ErrBadOrder = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, Order()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is a directed weighted arc From→To.
type Edge struct {
	From   int   // source vertex index
	To     int   // target vertex index
	Weight int64 // non-negative cost
}

// Graph is a weighted directed multigraph over vertices 0..n-1.
//
// adj[u] lists the outgoing edges of u in insertion order.
// size counts every edge added, parallel ones included.
type Graph struct {
	adj  [][]Edge
	size int
}
