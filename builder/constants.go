// SPDX-License-Identifier: MIT
// Package: pqdijkstra/builder
//
// constants.go - method tags and domain bounds.

package builder

// Method tags used as error-context prefixes.
const (
	methodRandomSparse = "RandomSparse"
	methodRandomGraph  = "RandomGraph"
	methodPath         = "Path"
	methodArcs         = "Arcs"
)

// Domain bounds.
const (
	minVertices = 1
	probMin     = 0.0
	probMax     = 1.0
)
