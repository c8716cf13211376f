// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// over a core.Graph. The priority-queue backend is pluggable.
//
// Overview:
//
//   - The engine depends only on the pq.PriorityQueue contract
//     (IsEmpty / ExtractMin / DecreaseKey). The same relaxation loop drives
//     every backend, so results are directly comparable.
//   - Every vertex is inserted up front with its initial distance (0 for the
//     source, pq.Inf otherwise) and lowered in place by DecreaseKey. There are
//     no duplicate heap entries and no stale pops.
//   - Output is a dense distance array indexed by vertex. Unreachable vertices
//     keep pq.Inf.
//
// Loop:
//
//  1. dist[source] = 0, dist[v] = Inf otherwise; Insert(v, dist[v]) for all v.
//  2. While the queue is not empty: u = ExtractMin(). dist[u] is now final,
//     which holds because all weights are non-negative.
//  3. For each edge u→v with weight w: if dist[u]+w < dist[v], set dist[v]
//     and DecreaseKey(v, dist[v]).
//
// Vertices still at Inf when extracted relax nothing. A candidate that would
// overflow the int64 range never improves a distance.
//
// Backends (WithBackend):
//
//   - pq.KindBinaryHeap (default): O((V + E) log V).
//   - pq.KindLinearArray:          O(V² + E).
//
// Equal-distance vertices may be extracted in a different order by each
// backend; Result.Order records it. The distance arrays are always identical.
//
// Errors (sentinel):
//
//   - ErrNilGraph          – nil *core.Graph.
//   - ErrUnknownBackend    – backend outside the pq.Kind enumeration.
//   - ErrSourceOutOfRange  – source ∉ [0, V).
//   - ErrInvariant         – the queue misbehaved mid-run (for example, an
//     empty extract while vertices remain). It signals a defect, not bad input.
//
// Thread safety:
//
//   - Each call allocates its own queue and distance array. Concurrent calls
//     on the same (read-only) graph are safe.
package dijkstra
