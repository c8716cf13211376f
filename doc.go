// Package pqdijkstra computes single-source shortest paths with Dijkstra's
// algorithm and measures how the choice of priority queue affects it.
//
// 🚀 What is in the module?
//
//   - core      - int-indexed weighted directed multigraph (vertices 0..n-1,
//     non-negative int64 weights).
//   - pq        - the PriorityQueue contract and two backends: BinaryHeap
//     (position-indexed min-heap, O(log n) decrease-key) and LinearArray
//     (unsorted array with a presence flag, O(n) extract-min, O(1) decrease-key).
//   - dijkstra  - the relaxation engine, parametrised by backend.
//   - bfs       - hop-count reachability, used to cross-check unreachable vertices.
//   - builder   - seeded random digraphs and the CLRS Figure 24.6 fixture.
//   - bench     - vertex-count sweep, N trials per size, mean time per backend.
//   - report    - console table / tab-separated file output, graph dumps.
//   - cmd/pqbench - command-line front end.
//
// ✨ Guarantees
//
//   - Both backends return identical distance arrays for the same graph and
//     source. Extraction order may differ when keys tie.
//   - Unreachable vertices keep distance pq.Inf.
//   - Library packages never panic and never log; errors are sentinel values
//     wrapped with context and matched with errors.Is.
//
// Quick start:
//
//	g, _ := builder.CLRS()
//	dist, _ := dijkstra.Dijkstra(g, 0, dijkstra.WithBackend(pq.KindLinearArray))
//	// dist == [0 8 5 9 7]
//
//	go run ./cmd/pqbench -min 10 -max 1000 -step 100 -trials 50
package pqdijkstra
