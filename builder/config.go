// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng      = nil             (generators that need randomness fail fast)
//   • valueFn  = DefaultValueFn  (every entry is DefaultValue)
//   • orient   = sparse.CSR
//   • missRate = 0               (every query hits a stored entry)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/csindex/sparse"
)

// Probability bounds for WithMissRate.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	rng      *rand.Rand
	valueFn  ValueFn
	orient   sparse.Orientation
	missRate float64
}

// newBuilderConfig applies opts in order (last wins) over the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		valueFn: DefaultValueFn,
		orient:  sparse.CSR,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
