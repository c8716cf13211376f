// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pqdijkstra/bfs"
	"github.com/katalvlaran/pqdijkstra/builder"
)

// ExampleBFS lists hop counts along a weighted chain; weights are ignored.
func ExampleBFS() {
	g, _ := builder.BuildGraph(4, nil, builder.Path(100))
	res, err := bfs.BFS(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order, res.Depth)
	// Output: [1 2 3] [-1 0 1 2]
}
