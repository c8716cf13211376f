// SPDX-License-Identifier: MIT
// Package: pqdijkstra/report
//
// dump.go - human-readable graph and distance listings.

package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/pqdijkstra/core"
	"github.com/katalvlaran/pqdijkstra/pq"
)

// PrintGraph writes the adjacency lists of g, one vertex per line:
//
//	adj[u=0] ==> (v=1, w=10), (v=2, w=5)
//	adj[u=3] ==> NULL
func PrintGraph(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "vertices=%d edges=%d\n", g.Order(), g.Size())
	for u := 0; u < g.Order(); u++ {
		fmt.Fprintf(bw, "adj[u=%d] ==> ", u)
		edges, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		if len(edges) == 0 {
			bw.WriteString("NULL\n")
			continue
		}
		for i, e := range edges {
			if i > 0 {
				bw.WriteString(", ")
			}
			fmt.Fprintf(bw, "(v=%d, w=%d)", e.To, e.Weight)
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

// PrintDistances writes a vertex/distance table; unreachable vertices show "inf".
func PrintDistances(w io.Writer, dist []int64) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("Vertex \t\t Distance\n")
	for v, d := range dist {
		fmt.Fprintf(bw, "%d \t\t %s\n", v, formatDistance(d))
	}

	return bw.Flush()
}

func formatDistance(d int64) string {
	if d == pq.Inf {
		return "inf"
	}

	return strconv.FormatInt(d, 10)
}
