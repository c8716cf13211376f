// SPDX-License-Identifier: MIT
// Package: pqdijkstra/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context as "<Method>: <detail>: %w".
//   • Validation order: size, probability, weight bound, RNG presence.

package builder

import "errors"

// ErrTooFewVertices indicates a vertex count below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadMaxWeight indicates a weight upper bound below 1.
var ErrBadMaxWeight = errors.New("builder: max weight must be positive")

// ErrConstructFailed indicates the graph rejected an arc or a constructor was nil.
var ErrConstructFailed = errors.New("builder: construction failed")
