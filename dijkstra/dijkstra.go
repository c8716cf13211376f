// SPDX-License-Identifier: MIT
// Package: pqdijkstra/dijkstra
//
// dijkstra.go - backend-agnostic relaxation loop.

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pqdijkstra/core"
	"github.com/katalvlaran/pqdijkstra/pq"
)

// Dijkstra returns the shortest distance from source to every vertex of g.
// Unreachable vertices hold pq.Inf.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. the backend must be a valid pq.Kind (ErrUnknownBackend).
//  3. source must lie in [0, g.Order()) (ErrSourceOutOfRange).
func Dijkstra(g *core.Graph, source int, opts ...Option) ([]int64, error) {
	res, err := Run(g, source, opts...)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// Run is Dijkstra with the extraction order and relaxation count attached.
func Run(g *core.Graph, source int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !cfg.Backend.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, cfg.Backend)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source=%d, V=%d", ErrSourceOutOfRange, source, g.Order())
	}

	q, err := pq.New(cfg.Backend, g.Order())
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	r := &runner{
		g:    g,
		q:    q,
		dist: make([]int64, g.Order()),
		res:  &Result{Order: make([]int, 0, g.Order()), Backend: cfg.Backend},
	}
	if err = r.init(source); err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}
	r.res.Dist = r.dist

	return r.res, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g    *core.Graph
	q    pq.PriorityQueue
	dist []int64
	res  *Result
}

// init seeds the distance array and inserts every vertex with its distance.
func (r *runner) init(source int) error {
	for v := range r.dist {
		r.dist[v] = pq.Inf
	}
	r.dist[source] = 0
	for v, d := range r.dist {
		if err := r.q.Insert(v, d); err != nil {
			return fmt.Errorf("%w: %v", ErrInvariant, err)
		}
	}

	return nil
}

// process extracts exactly V vertices, relaxing the edges of each.
func (r *runner) process() error {
	for !r.q.IsEmpty() {
		e, err := r.q.ExtractMin()
		if err != nil {
			return fmt.Errorf("%w: after %d extractions: %v", ErrInvariant, len(r.res.Order), err)
		}
		r.res.Order = append(r.res.Order, e.Vertex)
		if err = r.relax(e.Vertex); err != nil {
			return err
		}
	}
	if len(r.res.Order) != len(r.dist) {
		return fmt.Errorf("%w: %d extractions for %d vertices", ErrInvariant, len(r.res.Order), len(r.dist))
	}

	return nil
}

// relax lowers dist[v] for every edge u→v that offers a shorter path.
// dist[u] is final when relax(u) runs.
func (r *runner) relax(u int) error {
	du := r.dist[u]
	if du == pq.Inf {
		return nil
	}
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}
	for _, e := range edges {
		// du + w ≥ Inf would overflow; such a path can never improve dist[v].
		if e.Weight >= pq.Inf-du {
			continue
		}
		cand := du + e.Weight
		if cand >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = cand
		r.q.DecreaseKey(e.To, cand)
		r.res.Relaxations++
	}

	return nil
}
