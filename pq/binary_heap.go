// SPDX-License-Identifier: MIT
// Package: pqdijkstra/pq
//
// binary_heap.go - array-backed binary min-heap with a position index.
//
// Layout:
//   • items[0:len(items)] is the live range; children of slot i sit at 2i+1, 2i+2.
//   • pos[v] is v's slot while v is live, posAbsent before Insert, posExtracted after.
//   • For every live slot i: pos[items[i].Vertex] == i. Every swap updates both sides.

package pq

import "fmt"

const (
	posAbsent    = -1 // never inserted
	posExtracted = -2 // removed by ExtractMin
)

// BinaryHeap is a min-heap of vertex entries keyed by tentative distance.
// DecreaseKey locates a vertex through the position index in O(1) and
// restores order in O(log n).
type BinaryHeap struct {
	items []Entry
	pos   []int
}

// NewBinaryHeap returns an empty heap able to hold vertices 0..capacity-1.
// Complexity: O(capacity) time and space.
func NewBinaryHeap(capacity int) (*BinaryHeap, error) {
	if err := checkCapacity("NewBinaryHeap", capacity); err != nil {
		return nil, err
	}
	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = posAbsent
	}

	return &BinaryHeap{items: make([]Entry, 0, capacity), pos: pos}, nil
}

// Len returns the number of live entries.
func (h *BinaryHeap) Len() int { return len(h.items) }

// IsEmpty reports whether no live entry remains.
func (h *BinaryHeap) IsEmpty() bool { return len(h.items) == 0 }

// Insert appends v with key and sifts it up.
// A vertex may be inserted once per heap lifetime.
func (h *BinaryHeap) Insert(v int, key int64) error {
	if v < 0 || v >= len(h.pos) {
		return fmt.Errorf("BinaryHeap.Insert(%d): capacity=%d: %w", v, len(h.pos), ErrVertexOutOfRange)
	}
	if h.pos[v] != posAbsent {
		return fmt.Errorf("BinaryHeap.Insert(%d): %w", v, ErrVertexState)
	}
	h.items = append(h.items, Entry{Vertex: v, Key: key})
	h.pos[v] = len(h.items) - 1
	h.up(len(h.items) - 1)

	return nil
}

// ExtractMin removes the root. The last live entry takes its place and is
// sifted down until both children hold keys no smaller than it.
func (h *BinaryHeap) ExtractMin() (Entry, error) {
	if len(h.items) == 0 {
		return Entry{}, ErrEmptyQueue
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.swap(0, last)
	h.items = h.items[:last]
	h.pos[top.Vertex] = posExtracted
	if last > 0 {
		h.down(0)
	}

	return top, nil
}

// DecreaseKey writes key at v's tracked slot and sifts it toward the root.
func (h *BinaryHeap) DecreaseKey(v int, key int64) bool {
	i, ok := h.slot(v)
	if !ok || key >= h.items[i].Key {
		return false
	}
	h.items[i].Key = key
	h.up(i)

	return true
}

// Key returns v's current key and whether v is live.
func (h *BinaryHeap) Key(v int) (int64, bool) {
	i, ok := h.slot(v)
	if !ok {
		return 0, false
	}

	return h.items[i].Key, true
}

// Contains reports whether v is live.
func (h *BinaryHeap) Contains(v int) bool {
	_, ok := h.slot(v)

	return ok
}

func (h *BinaryHeap) slot(v int) (int, bool) {
	if v < 0 || v >= len(h.pos) || h.pos[v] < 0 {
		return 0, false
	}

	return h.pos[v], true
}

// up moves slot i toward the root while it is strictly smaller than its parent.
func (h *BinaryHeap) up(i int) {
	for i > 0 {
		parent := (i - 1) >> 1
		if h.items[i].Key >= h.items[parent].Key {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// down is min-heapify: push slot i below any strictly smaller child.
func (h *BinaryHeap) down(i int) {
	n := len(h.items)
	for {
		smallest := i
		l, r := (i<<1)+1, (i<<1)+2
		if l < n && h.items[l].Key < h.items[smallest].Key {
			smallest = l
		}
		if r < n && h.items[r].Key < h.items[smallest].Key {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *BinaryHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].Vertex] = i
	h.pos[h.items[j].Vertex] = j
}
