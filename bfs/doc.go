// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, ignoring
// weights. It answers "which vertices can the source reach, and in how many
// hops". The shortest-path results are checked against it: a vertex is at
// distance pq.Inf exactly when BFS never reaches it.
//
// Complexity: O(V + E) time, O(V) space.
package bfs
