// SPDX-License-Identifier: MIT

package pq

import "fmt"

// CheckHeap verifies the heap property and position-index consistency of h.
// Test-only.
func CheckHeap(h *BinaryHeap) error {
	n := len(h.items)
	for i := 0; i < n; i++ {
		if got := h.pos[h.items[i].Vertex]; got != i {
			return fmt.Errorf("pos[%d]=%d, want %d", h.items[i].Vertex, got, i)
		}
		for _, c := range [2]int{2*i + 1, 2*i + 2} {
			if c < n && h.items[c].Key < h.items[i].Key {
				return fmt.Errorf("slot %d key %d > child %d key %d", i, h.items[i].Key, c, h.items[c].Key)
			}
		}
	}
	live := 0
	for v, p := range h.pos {
		if p >= 0 {
			live++
			if p >= n || h.items[p].Vertex != v {
				return fmt.Errorf("pos[%d]=%d points at a foreign slot", v, p)
			}
		}
	}
	if live != n {
		return fmt.Errorf("%d vertices claim a slot, heap holds %d", live, n)
	}

	return nil
}

// HeapSlots returns a copy of the live heap array. Test-only.
func HeapSlots(h *BinaryHeap) []Entry {
	return append([]Entry(nil), h.items...)
}

// HeapPos returns the raw position-index entry of v. Test-only.
func HeapPos(h *BinaryHeap, v int) int { return h.pos[v] }
