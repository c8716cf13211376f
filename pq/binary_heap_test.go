// SPDX-License-Identifier: MIT

package pq_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pqdijkstra/pq"
)

// BinaryHeapSuite exercises heap shape, position index and tie handling.
type BinaryHeapSuite struct {
	suite.Suite
	h *pq.BinaryHeap
}

func (s *BinaryHeapSuite) SetupTest() {
	h, err := pq.NewBinaryHeap(8)
	s.Require().NoError(err)
	s.h = h
}

func (s *BinaryHeapSuite) TestInsertKeepsInvariant() {
	for v, key := range []int64{7, 3, 9, 1, 5, 8, 2, 6} {
		s.Require().NoError(s.h.Insert(v, key))
		s.Require().NoError(pq.CheckHeap(s.h))
	}
	s.Equal(pq.Entry{Vertex: 3, Key: 1}, pq.HeapSlots(s.h)[0])
}

func (s *BinaryHeapSuite) TestDoubleInsertRejected() {
	s.Require().NoError(s.h.Insert(0, 1))
	s.ErrorIs(s.h.Insert(0, 0), pq.ErrVertexState)
}

func (s *BinaryHeapSuite) TestPositionMarksAbsentAndExtracted() {
	s.Equal(-1, pq.HeapPos(s.h, 0))
	s.Require().NoError(s.h.Insert(0, 4))
	s.Equal(0, pq.HeapPos(s.h, 0))

	_, err := s.h.ExtractMin()
	s.Require().NoError(err)
	s.Equal(-2, pq.HeapPos(s.h, 0))
	s.Equal(-1, pq.HeapPos(s.h, 1))
	s.ErrorIs(s.h.Insert(0, 1), pq.ErrVertexState)
}

func (s *BinaryHeapSuite) TestDecreaseKeyToRoot() {
	for v := 0; v < 8; v++ {
		s.Require().NoError(s.h.Insert(v, pq.Inf))
	}
	s.True(s.h.DecreaseKey(7, 0))
	s.Require().NoError(pq.CheckHeap(s.h))
	s.Equal(7, pq.HeapSlots(s.h)[0].Vertex)

	e, err := s.h.ExtractMin()
	s.Require().NoError(err)
	s.Equal(pq.Entry{Vertex: 7, Key: 0}, e)
	s.Require().NoError(pq.CheckHeap(s.h))
}

// TestTiesFollowHeapShape pins the heap tie-break: with all keys equal the
// root is the earliest insert, and after extraction the last live entry is
// promoted and stays, since no child is strictly smaller.
func (s *BinaryHeapSuite) TestTiesFollowHeapShape() {
	for v := 0; v < 5; v++ {
		s.Require().NoError(s.h.Insert(v, 1))
	}
	var order []int
	for !s.h.IsEmpty() {
		e, err := s.h.ExtractMin()
		s.Require().NoError(err)
		order = append(order, e.Vertex)
	}
	s.Equal([]int{0, 4, 3, 2, 1}, order)
}

func TestBinaryHeapSuite(t *testing.T) {
	suite.Run(t, new(BinaryHeapSuite))
}

// TestBinaryHeap_RandomOps interleaves random decrease-key and extract-min
// calls and checks the invariant after each one, plus single extraction
// of every vertex.
func TestBinaryHeap_RandomOps(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(42))

	h, err := pq.NewBinaryHeap(n)
	require.NoError(t, err)
	for v := 0; v < n; v++ {
		require.NoError(t, h.Insert(v, int64(rng.Intn(1000))))
	}
	require.NoError(t, pq.CheckHeap(h))

	seen := make(map[int]bool, n)
	for !h.IsEmpty() {
		for i := 0; i < 3; i++ {
			v := rng.Intn(n)
			before, live := h.Key(v)
			next := int64(rng.Intn(1000))
			applied := h.DecreaseKey(v, next)
			after, _ := h.Key(v)
			require.Equal(t, live && next < before, applied)
			if live {
				require.LessOrEqual(t, after, before)
			}
			require.NoError(t, pq.CheckHeap(h))
		}
		minKey := pq.Inf
		for v := 0; v < n; v++ {
			if k, ok := h.Key(v); ok && k < minKey {
				minKey = k
			}
		}
		e, err := h.ExtractMin()
		require.NoError(t, err)
		require.Equal(t, minKey, e.Key)
		require.NoError(t, pq.CheckHeap(h))
		require.False(t, seen[e.Vertex], "vertex %d extracted twice", e.Vertex)
		seen[e.Vertex] = true
	}
	require.Len(t, seen, n)
}
