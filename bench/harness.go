// SPDX-License-Identifier: MIT
// Package: pqdijkstra/bench
//
// harness.go - sweep driver and backend cross-check.

package bench

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pqdijkstra/bfs"
	"github.com/katalvlaran/pqdijkstra/builder"
	"github.com/katalvlaran/pqdijkstra/core"
	"github.com/katalvlaran/pqdijkstra/dijkstra"
	"github.com/katalvlaran/pqdijkstra/pq"
)

// Row is the aggregated outcome for one graph size.
type Row struct {
	Vertices  int                       // graph size
	MeanEdges float64                   // mean arc count over the trials
	Mean      map[pq.Kind]time.Duration // mean elapsed time per backend
}

// Option customizes a Run.
type Option func(*runOptions)

type runOptions struct {
	now      func() time.Time
	progress func(Row)
}

// WithClock replaces time.Now as the timing source.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("bench: WithClock(nil)")
	}
	return func(o *runOptions) {
		o.now = now
	}
}

// WithProgress registers a callback invoked with each Row as soon as it is complete.
func WithProgress(fn func(Row)) Option {
	if fn == nil {
		panic("bench: WithProgress(nil)")
	}
	return func(o *runOptions) {
		o.progress = fn
	}
}

// Run executes the sweep described by cfg and returns one Row per size.
// On error the rows completed so far are discarded.
func Run(ctx context.Context, cfg Config, opts ...Option) ([]Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ro := runOptions{now: time.Now, progress: func(Row) {}}
	for _, opt := range opts {
		opt(&ro)
	}

	sizes := cfg.Sizes()
	rows := make([]Row, 0, len(sizes))
	for _, n := range sizes {
		row, err := runSize(ctx, cfg, ro, n)
		if err != nil {
			return nil, fmt.Errorf("bench: n=%d: %w", n, err)
		}
		ro.progress(row)
		rows = append(rows, row)
	}

	return rows, nil
}

// runSize generates the trials for size n in chunks of cfg.Workers and
// times each backend on every graph.
func runSize(ctx context.Context, cfg Config, ro runOptions, n int) (Row, error) {
	total := make(map[pq.Kind]time.Duration, len(cfg.Backends))
	edges := 0

	for start := 0; start < cfg.Trials; start += cfg.Workers {
		end := min(start+cfg.Workers, cfg.Trials)
		graphs, err := generate(ctx, cfg, n, start, end)
		if err != nil {
			return Row{}, err
		}
		for i, g := range graphs {
			if err = ctx.Err(); err != nil {
				return Row{}, err
			}
			if err = timeTrial(cfg, ro, g, total); err != nil {
				return Row{}, fmt.Errorf("trial %d: %w", start+i, err)
			}
			edges += g.Size()
		}
	}

	row := Row{
		Vertices:  n,
		MeanEdges: float64(edges) / float64(cfg.Trials),
		Mean:      make(map[pq.Kind]time.Duration, len(total)),
	}
	for k, d := range total {
		row.Mean[k] = d / time.Duration(cfg.Trials)
	}

	return row, nil
}

// generate samples trials [start,end) at size n concurrently.
func generate(ctx context.Context, cfg Config, n, start, end int) ([]*core.Graph, error) {
	graphs := make([]*core.Graph, end-start)
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for t := start; t < end; t++ {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			g, err := builder.RandomGraph(n, cfg.EdgeProbability, cfg.MaxWeight, cfg.trialSeed(n, t))
			if err != nil {
				return err
			}
			graphs[t-start] = g

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return graphs, nil
}

// timeTrial runs every backend once on g, adds the elapsed times to total,
// and compares the distance arrays outside the timed region.
func timeTrial(cfg Config, ro runOptions, g *core.Graph, total map[pq.Kind]time.Duration) error {
	var ref []int64
	for i, k := range cfg.Backends {
		began := ro.now()
		dist, err := dijkstra.Dijkstra(g, cfg.Source, dijkstra.WithBackend(k))
		elapsed := ro.now().Sub(began)
		if err != nil {
			return err
		}
		total[k] += elapsed

		if i == 0 {
			ref = dist
			continue
		}
		if err = compare(cfg.Backends[0], k, ref, dist); err != nil {
			return err
		}
	}

	return nil
}

// Verify runs every kind on g from source and reports the first vertex on
// which two backends disagree. With no kinds, all backends are checked.
// The agreed distances must also be finite on exactly the vertices a
// breadth-first search from source reaches.
func Verify(g *core.Graph, source int, kinds ...pq.Kind) error {
	if len(kinds) == 0 {
		kinds = pq.Kinds
	}
	var ref []int64
	for i, k := range kinds {
		dist, err := dijkstra.Dijkstra(g, source, dijkstra.WithBackend(k))
		if err != nil {
			return fmt.Errorf("Verify(%v): %w", k, err)
		}
		if i == 0 {
			ref = dist
			continue
		}
		if err = compare(kinds[0], k, ref, dist); err != nil {
			return err
		}
	}

	walk, err := bfs.BFS(g, source)
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	for v, d := range ref {
		if (d != pq.Inf) != walk.Reached(v) {
			return fmt.Errorf("%w: vertex %d: distance=%d, reached=%t", ErrReachability, v, d, walk.Reached(v))
		}
	}

	return nil
}

func compare(ka, kb pq.Kind, a, b []int64) error {
	for v := range a {
		if a[v] != b[v] {
			return fmt.Errorf("%w: vertex %d: %v=%d, %v=%d", ErrBackendMismatch, v, ka, a[v], kb, b[v])
		}
	}

	return nil
}
