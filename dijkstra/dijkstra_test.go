// SPDX-License-Identifier: MIT

// Package dijkstra_test validates the engine against both queue backends:
// input validation, the CLRS reference graph, unreachable vertices,
// extraction and relaxation counts, and backend equivalence on random graphs.
package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pqdijkstra/bfs"
	"github.com/katalvlaran/pqdijkstra/builder"
	"github.com/katalvlaran/pqdijkstra/core"
	"github.com/katalvlaran/pqdijkstra/dijkstra"
	"github.com/katalvlaran/pqdijkstra/pq"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_UnknownBackend(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)
	_, err = dijkstra.Dijkstra(g, 0, dijkstra.WithBackend(pq.Kind(42)))
	require.ErrorIs(t, err, dijkstra.ErrUnknownBackend)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	for _, s := range []int{-1, 3} {
		_, err = dijkstra.Dijkstra(g, s)
		require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange, "source=%d", s)
	}

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	_, err = dijkstra.Dijkstra(empty, 0)
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

// ------------------------------------------------------------------------
// 2. Reference scenarios, run on every backend
// ------------------------------------------------------------------------

func TestDijkstra_CLRS(t *testing.T) {
	g, err := builder.CLRS()
	require.NoError(t, err)

	for _, k := range pq.Kinds {
		t.Run(k.String(), func(t *testing.T) {
			dist, err := dijkstra.Dijkstra(g, 0, dijkstra.WithBackend(k))
			require.NoError(t, err)
			assert.Equal(t, builder.CLRSDistances, dist)
		})
	}
}

func TestDijkstra_SingleVertex(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)

	for _, k := range pq.Kinds {
		res, err := dijkstra.Run(g, 0, dijkstra.WithBackend(k))
		require.NoError(t, err)
		assert.Equal(t, []int64{0}, res.Dist)
		assert.Equal(t, []int{0}, res.Order)
		assert.Equal(t, 0, res.Relaxations)
		assert.Equal(t, k, res.Backend)
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	// 0→1→2, and 3 only points into the chain.
	g, err := builder.BuildGraph(4, nil, builder.Arcs(
		core.Edge{From: 0, To: 1, Weight: 2},
		core.Edge{From: 1, To: 2, Weight: 2},
		core.Edge{From: 3, To: 0, Weight: 1},
	))
	require.NoError(t, err)
	walk, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	require.False(t, walk.Reached(3))

	for _, k := range pq.Kinds {
		dist, err := dijkstra.Dijkstra(g, 0, dijkstra.WithBackend(k))
		require.NoError(t, err)
		assert.Equal(t, []int64{0, 2, 4, pq.Inf}, dist, k.String())
	}
}

func TestDijkstra_ParallelArcsAndLoops(t *testing.T) {
	g, err := builder.BuildGraph(2, nil, builder.Arcs(
		core.Edge{From: 0, To: 1, Weight: 9},
		core.Edge{From: 0, To: 1, Weight: 3},
		core.Edge{From: 0, To: 0, Weight: 0},
		core.Edge{From: 1, To: 1, Weight: 5},
	))
	require.NoError(t, err)

	for _, k := range pq.Kinds {
		dist, err := dijkstra.Dijkstra(g, 0, dijkstra.WithBackend(k))
		require.NoError(t, err)
		assert.Equal(t, []int64{0, 3}, dist, k.String())
	}
}

func TestDijkstra_NoOverflowOnHugeWeights(t *testing.T) {
	big := pq.Inf - 1
	g, err := builder.BuildGraph(3, nil, builder.Arcs(
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 1, To: 2, Weight: big},
		core.Edge{From: 0, To: 2, Weight: big},
	))
	require.NoError(t, err)

	for _, k := range pq.Kinds {
		dist, err := dijkstra.Dijkstra(g, 0, dijkstra.WithBackend(k))
		require.NoError(t, err)
		assert.Equal(t, []int64{0, 1, big}, dist, k.String())
	}
}

func TestDijkstra_DefaultBackendIsHeap(t *testing.T) {
	g, err := builder.CLRS()
	require.NoError(t, err)
	res, err := dijkstra.Run(g, 0)
	require.NoError(t, err)
	assert.Equal(t, pq.KindBinaryHeap, res.Backend)
}

func TestDijkstra_InfMatchesReachability(t *testing.T) {
	g, err := builder.RandomGraph(100, 0.015, 30, 9)
	require.NoError(t, err)
	walk, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	require.Less(t, len(walk.Order), g.Order(), "graph must leave some vertex unreachable")

	for _, k := range pq.Kinds {
		dist, err := dijkstra.Dijkstra(g, 0, dijkstra.WithBackend(k))
		require.NoError(t, err)
		for v, d := range dist {
			assert.Equal(t, walk.Reached(v), d != pq.Inf, "%v vertex %d", k, v)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Counting properties
// ------------------------------------------------------------------------

func TestRun_ExtractionAndRelaxationBounds(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.RandomGraph(60, 0.1, 50, seed)
		require.NoError(t, err)

		for _, k := range pq.Kinds {
			res, err := dijkstra.Run(g, 0, dijkstra.WithBackend(k))
			require.NoError(t, err)

			require.Len(t, res.Order, g.Order(), "exactly V extractions")
			assert.LessOrEqual(t, res.Relaxations, g.Size(), "at most E relaxations")

			seen := make(map[int]bool, g.Order())
			for _, v := range res.Order {
				require.False(t, seen[v], "vertex %d extracted twice", v)
				seen[v] = true
			}
			// Extraction order is by non-decreasing final distance.
			for i := 1; i < len(res.Order); i++ {
				assert.LessOrEqual(t, res.Dist[res.Order[i-1]], res.Dist[res.Order[i]])
			}
		}
	}
}

// ------------------------------------------------------------------------
// 4. Backend equivalence
// ------------------------------------------------------------------------

func TestDijkstra_BackendEquivalence(t *testing.T) {
	sizes := []int{1, 2, 10, 50, 120}
	probs := []float64{0.0, 0.05, 0.3, 1.0}
	for _, n := range sizes {
		for _, p := range probs {
			t.Run(fmt.Sprintf("n=%d/p=%.2f", n, p), func(t *testing.T) {
				g, err := builder.RandomGraph(n, p, 100, int64(n)*31+int64(p*100))
				require.NoError(t, err)
				for _, s := range []int{0, n / 2, n - 1} {
					heap, err := dijkstra.Dijkstra(g, s, dijkstra.WithBackend(pq.KindBinaryHeap))
					require.NoError(t, err)
					lin, err := dijkstra.Dijkstra(g, s, dijkstra.WithBackend(pq.KindLinearArray))
					require.NoError(t, err)
					require.Equal(t, heap, lin, "source=%d", s)
				}
			})
		}
	}
}

// TestDijkstra_TieBreakDivergence builds a star whose leaves all sit at the
// same distance. The backends pick different equal-key vertices first,
// yet the distances must match.
func TestDijkstra_TieBreakDivergence(t *testing.T) {
	const leaves = 6
	arcs := make([]core.Edge, 0, 2*leaves)
	for v := 1; v <= leaves; v++ {
		arcs = append(arcs, core.Edge{From: 0, To: v, Weight: 1})
		// Each leaf reaches a shared sink; the cheapest route goes via leaf 1.
		arcs = append(arcs, core.Edge{From: v, To: leaves + 1, Weight: int64(leaves - v + 1)})
	}
	arcs[1].Weight = 1 // leaf 1 → sink costs 1
	g, err := builder.BuildGraph(leaves+2, nil, builder.Arcs(arcs...))
	require.NoError(t, err)

	heap, err := dijkstra.Run(g, 0, dijkstra.WithBackend(pq.KindBinaryHeap))
	require.NoError(t, err)
	lin, err := dijkstra.Run(g, 0, dijkstra.WithBackend(pq.KindLinearArray))
	require.NoError(t, err)

	assert.NotEqual(t, heap.Order, lin.Order, "equal keys should extract in different orders")
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, lin.Order)
	assert.Equal(t, heap.Dist, lin.Dist)
	assert.Equal(t, []int64{0, 1, 1, 1, 1, 1, 1, 2}, heap.Dist)
}
