// SPDX-License-Identifier: MIT
// Package: pqdijkstra/bench
//
// config.go - sweep configuration and validation.

package bench

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pqdijkstra/builder"
	"github.com/katalvlaran/pqdijkstra/pq"
)

// Sentinel errors returned by Validate and Run.
var (
	// ErrBadRange indicates an empty or malformed vertex-count sweep.
	ErrBadRange = errors.New("bench: invalid vertex range")

	// ErrBadTrials indicates fewer than one trial per size.
	ErrBadTrials = errors.New("bench: trials must be positive")

	// ErrBadSource indicates a source vertex absent from the smallest graph.
	ErrBadSource = errors.New("bench: source vertex out of range")

	// ErrBadWorkers indicates a non-positive generation fan-out.
	ErrBadWorkers = errors.New("bench: workers must be positive")

	// ErrNoBackends indicates an empty backend list.
	ErrNoBackends = errors.New("bench: no backends selected")

	// ErrBackendMismatch indicates two backends disagreed on a distance.
	ErrBackendMismatch = errors.New("bench: backends produced different distances")

	// ErrReachability indicates a finite distance for a vertex BFS cannot reach, or the reverse.
	ErrReachability = errors.New("bench: distances disagree with reachability")
)

// Config describes one benchmark sweep.
type Config struct {
	Seed            int64     // base RNG seed
	MinVertices     int       // first graph size
	MaxVertices     int       // last graph size (inclusive bound)
	Step            int       // size increment
	Trials          int       // graphs per size
	Source          int       // source vertex for every run
	EdgeProbability float64   // arc probability in [0,1]
	MaxWeight       int64     // weights are drawn from [0, MaxWeight)
	Backends        []pq.Kind // backends to time, in report order
	Workers         int       // concurrent graph generators
}

// Defaults mirror the reference experiment.
const (
	DefaultSeed            = 17
	DefaultMinVertices     = 10
	DefaultMaxVertices     = 1000
	DefaultStep            = 100
	DefaultTrials          = 50
	DefaultSource          = 0
	DefaultEdgeProbability = 1.0
	DefaultMaxWeight       = 1000
	DefaultWorkers         = 1
)

// DefaultConfig returns the reference sweep over both backends.
func DefaultConfig() Config {
	return Config{
		Seed:            DefaultSeed,
		MinVertices:     DefaultMinVertices,
		MaxVertices:     DefaultMaxVertices,
		Step:            DefaultStep,
		Trials:          DefaultTrials,
		Source:          DefaultSource,
		EdgeProbability: DefaultEdgeProbability,
		MaxWeight:       DefaultMaxWeight,
		Backends:        append([]pq.Kind(nil), pq.Kinds...),
		Workers:         DefaultWorkers,
	}
}

// Validate checks c in a fixed order and returns the first violation.
func (c Config) Validate() error {
	if c.MinVertices < 1 || c.MaxVertices < c.MinVertices || c.Step < 1 {
		return fmt.Errorf("Validate: min=%d max=%d step=%d: %w", c.MinVertices, c.MaxVertices, c.Step, ErrBadRange)
	}
	if c.Trials < 1 {
		return fmt.Errorf("Validate: trials=%d: %w", c.Trials, ErrBadTrials)
	}
	if c.Source < 0 || c.Source >= c.MinVertices {
		return fmt.Errorf("Validate: source=%d, min=%d: %w", c.Source, c.MinVertices, ErrBadSource)
	}
	if c.EdgeProbability < 0 || c.EdgeProbability > 1 {
		return fmt.Errorf("Validate: p=%g: %w", c.EdgeProbability, builder.ErrInvalidProbability)
	}
	if c.MaxWeight < 1 {
		return fmt.Errorf("Validate: maxWeight=%d: %w", c.MaxWeight, builder.ErrBadMaxWeight)
	}
	if len(c.Backends) == 0 {
		return ErrNoBackends
	}
	for _, k := range c.Backends {
		if !k.Valid() {
			return fmt.Errorf("Validate: backend %v: %w", k, pq.ErrUnknownKind)
		}
	}
	if c.Workers < 1 {
		return fmt.Errorf("Validate: workers=%d: %w", c.Workers, ErrBadWorkers)
	}

	return nil
}

// Sizes lists the vertex counts of the sweep.
func (c Config) Sizes() []int {
	var out []int
	for n := c.MinVertices; n <= c.MaxVertices; n += c.Step {
		out = append(out, n)
	}

	return out
}

// trialSeed derives the generator seed of trial t at size n.
func (c Config) trialSeed(n, t int) int64 {
	return c.Seed + int64(n)*int64(c.Trials) + int64(t)
}
