// SPDX-License-Identifier: MIT

// Package builder produces core.Graph fixtures for the shortest-path engine:
// seeded random digraphs for benchmarking and small fixed graphs for tests.
//
// Composition:
//
//	g, err := builder.BuildGraph(n,
//	    []builder.BuilderOption{builder.WithSeed(17), builder.WithWeightFn(builder.UniformWeightFn(0, 1000))},
//	    builder.RandomSparse(0.25),
//	)
//
// Constructors (Constructor):
//
//   - RandomSparse(p): every ordered pair (i, j), i ≠ j, becomes an arc with
//     independent probability p. Trials run i ascending, then j ascending, and a
//     weight is drawn right after each accepted trial, so a seed fully determines
//     the graph.
//   - Path(w): arcs 0→1→…→n-1 with constant weight w.
//   - Arcs(edges...): an explicit arc list.
//
// Shortcuts:
//
//   - RandomGraph(n, p, maxWeight, seed): RandomSparse with weights uniform in
//     [0, maxWeight), the generator used by the benchmark harness.
//   - CLRS(): the 5-vertex example of CLRS Figure 24.6.
//
// Options:
//
//   - WithSeed / WithRand: RNG source. Required by RandomSparse when 0 < p < 1.
//   - WithWeightFn: per-arc weight policy (default ConstantWeightFn(1)).
//
// Option constructors panic on meaningless input. Constructors return
// sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrBadMaxWeight, ErrConstructFailed) wrapped with
// method context, and never panic.
package builder
