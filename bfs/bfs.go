// SPDX-License-Identifier: MIT
// Package: pqdijkstra/bfs
//
// bfs.go - level-order traversal.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/pqdijkstra/core"
)

// BFS visits every vertex reachable from start, following arcs in their
// insertion order.
func BFS(g *core.Graph, start int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start=%d, V=%d", ErrStartVertexNotFound, start, g.Order())
	}

	n := g.Order()
	res := &Result{Order: make([]int, 0, n), Depth: make([]int, n)}
	for v := range res.Depth {
		res.Depth[v] = Unreached
	}

	queue := make([]int, 0, n)
	queue = append(queue, start)
	res.Depth[start] = 0
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		res.Order = append(res.Order, u)
		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %d: %w", u, err)
		}
		for _, e := range edges {
			if res.Depth[e.To] != Unreached {
				continue
			}
			res.Depth[e.To] = res.Depth[u] + 1
			queue = append(queue, e.To)
		}
	}

	return res, nil
}
