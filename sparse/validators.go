// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for the compressed-format invariants.
//   - Constructors call validateLayout; Validate re-checks an existing Matrix
//     (used after rebuilds when result verification is requested).
//
// Determinism & Performance:
//   - All checks are pure, allocate nothing and run in O(majorDim + nnz).

package sparse

import "math"

const methodValidate = "Validate"

// Validate re-checks every layout invariant of m.
// Returns ErrNilMatrix for a nil receiver, otherwise nil or a wrapped
// ErrInvalidFormat naming the first violation.
// Complexity: O(majorDim + nnz).
func (m *Matrix) Validate() error {
	if m == nil {
		return validatorErrorf(methodValidate, ErrNilMatrix)
	}

	return validateLayout(methodValidate, m.orient, m.rows, m.cols, m.values, m.minorIndex, m.majorOffset)
}

// validateShape checks orientation and dimensions.
func validateShape(tag string, o Orientation, rows, cols int) error {
	if !o.Valid() {
		return validatorErrorf(tag, ErrUnknownOrientation)
	}
	if rows < 0 || cols < 0 {
		return validatorErrorf(tag, ErrBadShape)
	}

	return nil
}

// validateLayout checks, in order: shape, array lengths, offset bounds,
// offset monotonicity, then per-span minor ordering and range.
func validateLayout(tag string, o Orientation, rows, cols int, values []float64, minor, offsets []int) error {
	if err := validateShape(tag, o, rows, cols); err != nil {
		return err
	}
	majorDim, minorDim := rows, cols
	if o == CSC {
		majorDim, minorDim = cols, rows
	}

	// Length consistency first: everything else indexes these arrays.
	if len(offsets) != majorDim+1 {
		return formatErrorf(tag, "len(major_offset)=%d, want %d", len(offsets), majorDim+1)
	}
	if len(values) != len(minor) {
		return formatErrorf(tag, "len(values)=%d != len(minor_index)=%d", len(values), len(minor))
	}
	if offsets[0] != 0 {
		return formatErrorf(tag, "major_offset[0]=%d, want 0", offsets[0])
	}
	if offsets[majorDim] != len(values) {
		return formatErrorf(tag, "major_offset[%d]=%d != nnz=%d", majorDim, offsets[majorDim], len(values))
	}

	var i, k int
	for i = 0; i < majorDim; i++ {
		lo, hi := offsets[i], offsets[i+1]
		if hi < lo {
			return formatErrorf(tag, "major_offset[%d]=%d < major_offset[%d]=%d", i+1, hi, i, lo)
		}
		if hi > len(values) {
			return formatErrorf(tag, "major_offset[%d]=%d exceeds nnz=%d", i+1, hi, len(values))
		}
		for k = lo; k < hi; k++ {
			if minor[k] < 0 || minor[k] >= minorDim {
				return formatErrorf(tag, "minor_index[%d]=%d not in [0,%d)", k, minor[k], minorDim)
			}
			if k > lo && minor[k] <= minor[k-1] {
				return formatErrorf(tag, "minor_index[%d]=%d not above minor_index[%d]=%d in major %d",
					k, minor[k], k-1, minor[k-1], i)
			}
		}
	}

	return nil
}

// validateFinite rejects NaN and ±Inf.
func validateFinite(tag string, values []float64) error {
	for k, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(tag, wrapIndex(k, ErrNaNInf))
		}
	}

	return nil
}
