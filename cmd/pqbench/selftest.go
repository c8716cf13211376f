// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/pqdijkstra/bench"
	"github.com/katalvlaran/pqdijkstra/builder"
	"github.com/katalvlaran/pqdijkstra/dijkstra"
	"github.com/katalvlaran/pqdijkstra/pq"
	"github.com/katalvlaran/pqdijkstra/report"
)

// selfTest prints the CLRS Figure 24.6 graph, the distances under every
// backend, and fails if any backend deviates from the known answer.
func selfTest(w io.Writer) error {
	g, err := builder.CLRS()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "--- graph (CLRS Figure 24.6) ---")
	if err = report.PrintGraph(w, g); err != nil {
		return err
	}

	for _, k := range pq.Kinds {
		dist, err := dijkstra.Dijkstra(g, 0, dijkstra.WithBackend(k))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "--- dijkstra %s ---\n", k)
		if err = report.PrintDistances(w, dist); err != nil {
			return err
		}
		for v, d := range dist {
			if d != builder.CLRSDistances[v] {
				return fmt.Errorf("selftest: %s: vertex %d: got %d, want %d", k, v, d, builder.CLRSDistances[v])
			}
		}
	}

	return bench.Verify(g, 0)
}
