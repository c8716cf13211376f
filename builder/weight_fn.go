// SPDX-License-Identifier: MIT
// Package: pqdijkstra/builder
//
// weight_fn.go - arc weight policies.

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn draws one arc weight. It receives the configured RNG, which may
// be nil; implementations must then return a deterministic value.
// Returned weights must be ≥ 0.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [lo, hi). With a nil RNG it returns lo.
// Panics unless 0 ≤ lo < hi.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 0 || hi <= lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo < hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return lo
		}

		return lo + rng.Int63n(hi-lo)
	}
}
