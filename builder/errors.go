// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX).
//   • Context is attached with builderErrorf, which keeps the sentinel in the chain.
//   • Generators never panic at runtime; option constructors do.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates invalid dimensions or counts: rows/cols < 1,
// nnz outside [0, rows*cols], a negative query count, or a rows*cols
// product that overflows int.
// Usage: if errors.Is(err, ErrBadSize) { /* fix rows/cols/nnz */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates that a stochastic generator requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilMatrix indicates RandomQueries was given a nil matrix.
var ErrNilMatrix = errors.New("builder: nil matrix")

// ErrConstructFailed indicates the assembled arrays were rejected by the
// sparse constructor (for example a ValueFn producing NaN).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps sentinel with "<method>: <formatted message>: ".
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
