// SPDX-License-Identifier: MIT
// Package: pqdijkstra/pq
//
// types.go - shared contract, backend enumeration, sentinel errors.

package pq

import (
	"errors"
	"fmt"
	"math"
)

// Inf is the key of a vertex with no known path. It exceeds any achievable
// path sum, because relaxation never produces a candidate ≥ Inf.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by the queue implementations.
var (
	// ErrUnknownKind indicates a backend selector outside the enumeration.
	ErrUnknownKind = errors.New("pq: unknown priority-queue kind")

	// ErrAllocation indicates the queue storage could not be obtained.
	ErrAllocation = errors.New("pq: cannot allocate queue storage")

	// ErrEmptyQueue indicates ExtractMin was called with no live entry.
	ErrEmptyQueue = errors.New("pq: extract-min on empty queue")

	// ErrVertexOutOfRange indicates a vertex outside [0, capacity).
	ErrVertexOutOfRange = errors.New("pq: vertex out of range")

	// ErrVertexState indicates Insert of a vertex that is live or already extracted.
	ErrVertexState = errors.New("pq: vertex already inserted or extracted")
)

// Entry is a (vertex, key) pair held by a queue.
type Entry struct {
	Vertex int
	Key    int64
}

// PriorityQueue is the capability set the shortest-path engine relies on.
// Implementations are not safe for concurrent use.
type PriorityQueue interface {
	// Len returns the number of live entries.
	Len() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
	// Insert makes v live with the given key. Re-inserting an extracted
	// vertex fails with ErrVertexState; BinaryHeap also rejects a live one,
	// while LinearArray entries are live from creation and Insert only sets
	// their initial key.
	Insert(v int, key int64) error
	// ExtractMin removes and returns the live entry with the smallest key.
	ExtractMin() (Entry, error)
	// DecreaseKey lowers v's key to key and reports whether it took effect.
	// It is a no-op when v is not live or key is not strictly smaller.
	DecreaseKey(v int, key int64) bool
	// Key returns v's current key and whether v is live.
	Key(v int) (int64, bool)
	// Contains reports whether v is live.
	Contains(v int) bool
}

// Kind selects a PriorityQueue backend.
type Kind int

const (
	// KindBinaryHeap selects BinaryHeap.
	KindBinaryHeap Kind = iota
	// KindLinearArray selects LinearArray.
	KindLinearArray
)

// Kinds lists every backend in declaration order.
var Kinds = []Kind{KindBinaryHeap, KindLinearArray}

var kindNames = [...]string{
	KindBinaryHeap:  "min-heap",
	KindLinearArray: "queue",
}

// Valid reports whether k is a member of the enumeration.
func (k Kind) Valid() bool { return k >= KindBinaryHeap && k <= KindLinearArray }

// String returns the selector name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps a selector name ("min-heap" or "queue") to a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// New returns a queue of the given kind sized for capacity vertices.
func New(kind Kind, capacity int) (PriorityQueue, error) {
	switch kind {
	case KindBinaryHeap:
		return NewBinaryHeap(capacity)
	case KindLinearArray:
		return NewLinearArray(capacity)
	default:
		return nil, fmt.Errorf("New(%v): %w", kind, ErrUnknownKind)
	}
}

// checkCapacity rejects sizes no slice can be made for.
func checkCapacity(method string, capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%s: capacity=%d: %w", method, capacity, ErrAllocation)
	}

	return nil
}
