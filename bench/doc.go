// SPDX-License-Identifier: MIT

// Package bench times the shortest-path engine across priority-queue
// backends on seeded random graphs of growing size.
//
// A sweep visits vertex counts MinVertices, MinVertices+Step, … ≤ MaxVertices.
// For each count it samples Trials graphs, runs every configured backend once
// per graph, and reports the mean elapsed time per backend. Distance arrays
// from different backends are compared on every graph; any difference aborts
// the sweep with ErrBackendMismatch.
//
// Reproducibility: trial t at size n is generated with seed
// Seed + n·Trials + t, so results do not depend on Workers.
//
// Concurrency: graph generation for a chunk of up to Workers trials runs
// concurrently through an errgroup. Timed runs are strictly sequential, and
// every run owns its queue and distance array.
//
// Cancellation: ctx is checked between trials; a run in progress always
// completes.
package bench
