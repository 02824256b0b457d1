// SPDX-License-Identifier: MIT

// Package indexer is the batch access layer over compressed sparse matrices.
//
// Operations:
//   - Get / GetInto: read a batch of (row, col) coordinates. Absent cells
//     read as 0. Output order equals input order for any thread count.
//   - Add: accumulate deltas into a batch of coordinates, returning a new
//     matrix. Duplicate coordinates are summed first; missing cells are
//     inserted (even when the summed delta is 0).
//   - Set: like Add, but the last value given for a coordinate overwrites
//     the stored one.
//
// All three are pure functions of their inputs. Engine adds a mutable handle:
// it keeps the current matrix behind an atomic pointer, so readers never see
// a half-merged matrix and never block on writers.
//
// Errors:
//   - any coordinate outside the matrix: *sparse.OutOfBoundsError (errors.Is
//     sparse.ErrOutOfBounds), naming the lowest offending query. Nothing is
//     modified.
//   - unknown strategy: search.ErrUnsupportedStrategy.
//   - unequal batch slices: sparse.ErrLengthMismatch.
//   - NaN/Inf delta under the default policy: sparse.ErrNaNInf.
//
// Options (see options.go): WithThreads, WithAllThreads, WithStrategy,
// WithSortedHint, WithLogger, WithMetrics, WithValidateNaNInf,
// WithNoValidateNaNInf, WithVerifyResult.
package indexer
