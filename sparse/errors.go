// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
//
// Every message is prefixed with "sparse: ..." for easy grepping. Callers
// branch with errors.Is; context is attached with fmt.Errorf("ctx: %w", ErrX).

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat signals a malformed compressed layout: offsets that
	// decrease or do not start at 0, length mismatch among the three arrays,
	// or minor indices that are unsorted, duplicated or out of range.
	ErrInvalidFormat = errors.New("sparse: invalid compressed format")

	// ErrOutOfBounds indicates a coordinate outside the matrix dimensions.
	// Batch operations return it wrapped in *OutOfBoundsError.
	ErrOutOfBounds = errors.New("sparse: coordinate out of bounds")

	// ErrBadShape is returned when requested dimensions are negative.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-value policy.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrLengthMismatch indicates parallel coordinate/value slices of
	// different lengths.
	ErrLengthMismatch = errors.New("sparse: parallel slices differ in length")

	// ErrUnknownOrientation indicates an Orientation other than CSR or CSC.
	ErrUnknownOrientation = errors.New("sparse: unknown orientation")
)

// OutOfBoundsError carries the offending coordinate of a failed batch
// operation. It unwraps to ErrOutOfBounds.
type OutOfBoundsError struct {
	Query      int // position inside the batch; -1 for single-point access
	Row, Col   int // offending coordinate
	Rows, Cols int // matrix dimensions
}

func (e *OutOfBoundsError) Error() string {
	if e.Query < 0 {
		return fmt.Sprintf("%v: (%d,%d) not in %dx%d", ErrOutOfBounds, e.Row, e.Col, e.Rows, e.Cols)
	}

	return fmt.Sprintf("%v: query %d at (%d,%d) not in %dx%d",
		ErrOutOfBounds, e.Query, e.Row, e.Col, e.Rows, e.Cols)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// formatErrorf wraps ErrInvalidFormat with the constructor tag and a detail.
func formatErrorf(tag, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", tag, fmt.Sprintf(format, args...), ErrInvalidFormat)
}
