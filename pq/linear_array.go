// SPDX-License-Identifier: MIT
// Package: pqdijkstra/pq
//
// linear_array.go - unsorted array queue with logical deletion.
//
// Storage never shrinks: slot v always belongs to vertex v, and extraction
// only clears present[v]. ExtractMin is a full scan by construction; it is
// the O(n) baseline the heap is measured against.

package pq

import "fmt"

// LinearArray is an unsorted queue indexed directly by vertex.
// Every entry is live from creation with key Inf; Insert sets the initial key.
type LinearArray struct {
	keys    []int64
	present []bool
	live    int
}

// NewLinearArray returns a queue of capacity live entries, all keyed Inf.
// Complexity: O(capacity) time and space.
func NewLinearArray(capacity int) (*LinearArray, error) {
	if err := checkCapacity("NewLinearArray", capacity); err != nil {
		return nil, err
	}
	q := &LinearArray{
		keys:    make([]int64, capacity),
		present: make([]bool, capacity),
		live:    capacity,
	}
	for i := range q.keys {
		q.keys[i] = Inf
		q.present[i] = true
	}

	return q, nil
}

// Len returns the number of entries still marked present.
func (q *LinearArray) Len() int { return q.live }

// IsEmpty reports whether no entry remains present.
func (q *LinearArray) IsEmpty() bool { return q.live == 0 }

// Insert sets v's key. v must not have been extracted.
func (q *LinearArray) Insert(v int, key int64) error {
	if v < 0 || v >= len(q.keys) {
		return fmt.Errorf("LinearArray.Insert(%d): capacity=%d: %w", v, len(q.keys), ErrVertexOutOfRange)
	}
	if !q.present[v] {
		return fmt.Errorf("LinearArray.Insert(%d): %w", v, ErrVertexState)
	}
	q.keys[v] = key

	return nil
}

// ExtractMin scans every slot and removes the present entry with the
// smallest key. Among equal keys the lowest vertex wins.
// Complexity: O(capacity).
func (q *LinearArray) ExtractMin() (Entry, error) {
	if q.live == 0 {
		return Entry{}, ErrEmptyQueue
	}
	best := -1
	for i, ok := range q.present {
		if ok && (best < 0 || q.keys[i] < q.keys[best]) {
			best = i
		}
	}
	if best < 0 {
		return Entry{}, ErrEmptyQueue
	}
	q.present[best] = false
	q.live--

	return Entry{Vertex: best, Key: q.keys[best]}, nil
}

// DecreaseKey overwrites v's key in O(1) when v is present and key is smaller.
func (q *LinearArray) DecreaseKey(v int, key int64) bool {
	if !q.Contains(v) || key >= q.keys[v] {
		return false
	}
	q.keys[v] = key

	return true
}

// Key returns v's current key and whether v is present.
func (q *LinearArray) Key(v int) (int64, bool) {
	if !q.Contains(v) {
		return 0, false
	}

	return q.keys[v], true
}

// Contains reports whether v is present.
func (q *LinearArray) Contains(v int) bool {
	return v >= 0 && v < len(q.present) && q.present[v]
}
