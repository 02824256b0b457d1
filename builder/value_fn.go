// SPDX-License-Identifier: MIT
// Package builder provides value distributions for generated entries and deltas.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultValue is the value of every generated entry when no ValueFn is set.
const DefaultValue float64 = 1

// ValueFn produces one value from an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type ValueFn func(rng *rand.Rand) float64

// DefaultValueFn always returns DefaultValue.
func DefaultValueFn(_ *rand.Rand) float64 {
	return DefaultValue
}

// ConstantValueFn returns a ValueFn that always yields value.
func ConstantValueFn(value float64) ValueFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformValueFn samples uniformly in [min, max). Panics if max < min.
// A nil rng yields min.
func UniformValueFn(min, max float64) ValueFn {
	if max < min {
		panic(fmt.Sprintf("UniformValueFn: require min ≤ max, got min=%g, max=%g", min, max))
	}
	span := max - min

	return func(rng *rand.Rand) float64 {
		if rng == nil || span == 0 {
			return min
		}

		return min + rng.Float64()*span
	}
}

// NormalValueFn samples N(mean, stddev). Panics if stddev < 0.
// A nil rng yields mean.
func NormalValueFn(mean, stddev float64) ValueFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalValueFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return mean
		}

		return mean + rng.NormFloat64()*stddev
	}
}
