// SPDX-License-Identifier: MIT
// Package: pqdijkstra/builder
//
// fixtures.go - fixed reference graphs.

package builder

import "github.com/katalvlaran/pqdijkstra/core"

// CLRSOrder is the vertex count of the CLRS fixture.
const CLRSOrder = 5

// clrsArcs is Figure 24.6 of CLRS with s,t,y,x,z mapped to 0..4.
var clrsArcs = []core.Edge{
	{From: 0, To: 1, Weight: 10},
	{From: 0, To: 2, Weight: 5},
	{From: 1, To: 3, Weight: 1},
	{From: 1, To: 2, Weight: 2},
	{From: 2, To: 1, Weight: 3},
	{From: 2, To: 3, Weight: 9},
	{From: 2, To: 4, Weight: 2},
	{From: 3, To: 4, Weight: 4},
	{From: 4, To: 3, Weight: 6},
	{From: 4, To: 0, Weight: 7},
}

// CLRSDistances are the shortest distances from vertex 0 in CLRS().
var CLRSDistances = []int64{0, 8, 5, 9, 7}

// CLRS returns the 5-vertex, 10-arc shortest-paths example of CLRS Figure 24.6.
func CLRS() (*core.Graph, error) {
	return BuildGraph(CLRSOrder, nil, Arcs(clrsArcs...))
}
