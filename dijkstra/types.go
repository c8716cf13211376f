// SPDX-License-Identifier: MIT
// Package: pqdijkstra/dijkstra
//
// types.go - options, result and sentinel errors.

package dijkstra

import (
	"errors"

	"github.com/katalvlaran/pqdijkstra/pq"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownBackend indicates a priority-queue selector outside the enumeration.
	ErrUnknownBackend = errors.New("dijkstra: unknown priority-queue backend")

	// ErrSourceOutOfRange indicates the source vertex is not in [0, V).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrInvariant indicates the priority queue violated its contract during a run.
	ErrInvariant = errors.New("dijkstra: priority-queue invariant violated")
)

// Options configures a Dijkstra run.
type Options struct {
	Backend pq.Kind // priority-queue implementation
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithBackend selects the priority-queue implementation.
// Validation happens in Run, so an invalid kind surfaces as ErrUnknownBackend.
func WithBackend(kind pq.Kind) Option {
	return func(o *Options) {
		o.Backend = kind
	}
}

// DefaultOptions returns Options with the binary heap backend.
func DefaultOptions() Options {
	return Options{Backend: pq.KindBinaryHeap}
}

// Result is the full outcome of a run.
type Result struct {
	// Dist[v] is the shortest distance from the source, or pq.Inf if unreachable.
	Dist []int64
	// Order lists vertices in extraction order; len(Order) == V.
	Order []int
	// Relaxations counts successful distance improvements (≤ E).
	Relaxations int
	// Backend is the queue implementation that produced the result.
	Backend pq.Kind
}
