// SPDX-License-Identifier: MIT

// Package pq provides the two interchangeable priority-queue backends driven
// by the shortest-path engine.
//
// Both backends hold one entry per vertex 0..capacity-1, keyed by a tentative
// distance, and implement the same PriorityQueue contract:
//
//	IsEmpty()              – true iff no live entry remains.
//	ExtractMin()           – remove and return the live entry with the smallest key.
//	DecreaseKey(v, key)    – lower v's key if v is live and key is strictly smaller.
//
// Backends:
//
//   - BinaryHeap: an array-backed complete binary tree plus a position index
//     pos[v] = slot of v in the heap array. ExtractMin and DecreaseKey are
//     O(log n). Ties on the minimum key resolve by heap shape.
//   - LinearArray: a flat array with a per-entry present flag. ExtractMin scans
//     every slot, O(n) regardless of how many entries remain; DecreaseKey is
//     O(1). Ties resolve to the lowest vertex id.
//
// The two backends may therefore extract equal-key vertices in different
// orders. Shortest-path distances do not depend on that order.
//
// Errors (sentinel):
//
//   - ErrUnknownKind      – Kind outside the closed enumeration.
//   - ErrAllocation       – storage for the requested capacity cannot be obtained.
//   - ErrEmptyQueue       – ExtractMin on a queue with no live entry.
//   - ErrVertexOutOfRange – vertex outside [0, capacity).
//   - ErrVertexState      – Insert of a vertex that is already live or already extracted.
//
// Concurrency: queues are mutated in place without synchronization. Each
// algorithm run must own its queue exclusively.
package pq
