// Package builder generates reproducible random fixtures for the indexing
// engine: sparse matrices, query batches and value batches.
//
// The package reuses the functional-options building blocks of the rest of
// the module:
//
//   - Configuration primitives:
//     – Option:          a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, value function, orientation, miss rate.
//   - Value distributions (ValueFn implementations):
//     – DefaultValueFn:  constant DefaultValue.
//     – ConstantValueFn: fixed user-provided value.
//     – UniformValueFn:  uniform ∼U[min,max).
//     – NormalValueFn:   Gaussian ∼N(mean,stddev).
//   - Generators:
//     – RandomSparse:    rows×cols matrix with exactly nnz distinct entries.
//     – RandomQueries:   coordinates drawn from the stored entries, with an
//     optional share of uniformly random cells (WithMissRate).
//     – RandomValues:    n values from the configured ValueFn.
//
// Guarantees:
//
//   - Determinism: identical seed and options give identical output.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation errors wrap the sentinels of errors.go.
//
// Every stochastic generator needs an RNG (WithSeed or WithRand); without one
// it returns ErrNeedRandSource unless the result is fully determined.
package builder
