// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/csindex/sparse"
)

// Option customizes a generator by mutating a builderConfig before use.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		// Seeded source → reproducible draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueFn overrides the per-entry value generator. Panics on nil.
func WithValueFn(fn ValueFn) Option {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithOrientation selects CSR (default) or CSC for RandomSparse.
// Panics on an unknown orientation.
func WithOrientation(o sparse.Orientation) Option {
	if !o.Valid() {
		panic(fmt.Sprintf("builder: WithOrientation(%d)", uint8(o)))
	}
	return func(c *builderConfig) {
		c.orient = o
	}
}

// WithMissRate sets the share p ∈ [0,1] of RandomQueries that target a
// uniformly random cell instead of a stored entry. Panics outside [0,1].
func WithMissRate(p float64) Option {
	if p < MinProbability || p > MaxProbability {
		panic(fmt.Sprintf("builder: WithMissRate(%g) not in [0,1]", p))
	}
	return func(c *builderConfig) {
		c.missRate = p
	}
}
