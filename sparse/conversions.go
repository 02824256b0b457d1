// SPDX-License-Identifier: MIT
// Package: sparse
//
// conversions.go: interop with the external formats a caller typically
// holds: COO triplets, gonum dense matrices and the opposite orientation.
//
// Determinism:
//   - FromTriplets sums duplicates in input order (stable per-span sort).
//   - FromDense scans major → minor ascending.

package sparse

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

const (
	methodFromTriplets  = "FromTriplets"
	methodFromDense     = "FromDense"
	methodToDense       = "ToDense"
	methodToOrientation = "ToOrientation"
)

// FromTriplets builds a Matrix in orientation o from COO triplets
// (rowIdx[k], colIdx[k], vals[k]). Duplicate coordinates are summed.
//
// Implementation:
//   - Stage 1: validate shape, lengths and bounds (first offending triplet wins).
//   - Stage 2: counting sort by major coordinate.
//   - Stage 3: stable sort of each span by minor, then collapse duplicates.
//
// Complexity: O(nnz log s) time for the largest span s, O(majorDim + nnz) space.
func FromTriplets(o Orientation, rows, cols int, rowIdx, colIdx []int, vals []float64, opts ...Option) (*Matrix, error) {
	if err := validateShape(methodFromTriplets, o, rows, cols); err != nil {
		return nil, err
	}
	if len(rowIdx) != len(colIdx) || len(rowIdx) != len(vals) {
		return nil, fmt.Errorf("%s: rows=%d cols=%d vals=%d: %w",
			methodFromTriplets, len(rowIdx), len(colIdx), len(vals), ErrLengthMismatch)
	}
	for k := range rowIdx {
		if rowIdx[k] < 0 || rowIdx[k] >= rows || colIdx[k] < 0 || colIdx[k] >= cols {
			return nil, fmt.Errorf("%s: %w", methodFromTriplets,
				&OutOfBoundsError{Query: k, Row: rowIdx[k], Col: colIdx[k], Rows: rows, Cols: cols})
		}
	}

	majors, minors := rowIdx, colIdx
	majorDim := rows
	if o == CSC {
		majors, minors = colIdx, rowIdx
		majorDim = cols
	}

	// Counting sort by major.
	offsets := make([]int, majorDim+1)
	for _, mj := range majors {
		offsets[mj+1]++
	}
	for i := 0; i < majorDim; i++ {
		offsets[i+1] += offsets[i]
	}
	next := make([]int, majorDim)
	copy(next, offsets[:majorDim])
	minor := make([]int, len(vals))
	values := make([]float64, len(vals))
	for k, mj := range majors {
		p := next[mj]
		minor[p], values[p] = minors[k], vals[k]
		next[mj]++
	}

	// Sort every span by minor and collapse duplicates in place.
	w := 0
	for i := 0; i < majorDim; i++ {
		lo, hi := offsets[i], offsets[i+1]
		sort.Stable(spanSorter{minor: minor[lo:hi], values: values[lo:hi]})
		offsets[i] = w
		for k := lo; k < hi; k++ {
			if w > offsets[i] && minor[w-1] == minor[k] {
				values[w-1] += values[k]
				continue
			}
			minor[w], values[w] = minor[k], values[k]
			w++
		}
	}
	offsets[majorDim] = w

	return New(o, rows, cols, values[:w:w], minor[:w:w], offsets, trusted(opts)...)
}

// FromDense converts a gonum matrix into orientation o, storing only
// non-zero cells. Shape comes from d.Dims().
// Complexity: O(rows*cols).
func FromDense(d mat.Matrix, o Orientation, opts ...Option) (*Matrix, error) {
	if d == nil {
		return nil, validatorErrorf(methodFromDense, ErrNilMatrix)
	}
	rows, cols := d.Dims()
	if err := validateShape(methodFromDense, o, rows, cols); err != nil {
		return nil, err
	}
	majorDim, minorDim := rows, cols
	if o == CSC {
		majorDim, minorDim = cols, rows
	}

	offsets := make([]int, majorDim+1)
	var (
		minor  []int
		values []float64
		v      float64
	)
	for i := 0; i < majorDim; i++ {
		for j := 0; j < minorDim; j++ {
			if o == CSC {
				v = d.At(j, i)
			} else {
				v = d.At(i, j)
			}
			if v != 0 {
				minor = append(minor, j)
				values = append(values, v)
			}
		}
		offsets[i+1] = len(values)
	}
	if values == nil {
		minor, values = []int{}, []float64{}
	}

	return New(o, rows, cols, values, minor, offsets, trusted(opts)...)
}

// ToDense expands m into a gonum *mat.Dense.
// Returns ErrBadShape for matrices with a zero dimension (gonum cannot
// represent them).
// Complexity: O(rows*cols + nnz).
func (m *Matrix) ToDense() (*mat.Dense, error) {
	if m == nil {
		return nil, validatorErrorf(methodToDense, ErrNilMatrix)
	}
	if m.rows == 0 || m.cols == 0 {
		return nil, validatorErrorf(methodToDense, ErrBadShape)
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.MajorDim(); i++ {
		for k := m.majorOffset[i]; k < m.majorOffset[i+1]; k++ {
			r, c := m.RowCol(i, m.minorIndex[k])
			d.Set(r, c, m.values[k])
		}
	}

	return d, nil
}

// ToOrientation returns m re-laid out in orientation o. The same
// orientation yields a Clone.
//
// Implementation: counting sort on the old minor coordinate. Walking old
// majors in ascending order makes every new span sorted without a sort pass.
// Complexity: O(majorDim + minorDim + nnz).
func (m *Matrix) ToOrientation(o Orientation) (*Matrix, error) {
	if m == nil {
		return nil, validatorErrorf(methodToOrientation, ErrNilMatrix)
	}
	if !o.Valid() {
		return nil, validatorErrorf(methodToOrientation, ErrUnknownOrientation)
	}
	if o == m.orient {
		return m.Clone(), nil
	}

	newMajorDim := m.MinorDim()
	offsets := make([]int, newMajorDim+1)
	for _, j := range m.minorIndex {
		offsets[j+1]++
	}
	for j := 0; j < newMajorDim; j++ {
		offsets[j+1] += offsets[j]
	}
	next := make([]int, newMajorDim)
	copy(next, offsets[:newMajorDim])
	minor := make([]int, len(m.values))
	values := make([]float64, len(m.values))
	for i := 0; i < m.MajorDim(); i++ {
		for k := m.majorOffset[i]; k < m.majorOffset[i+1]; k++ {
			j := m.minorIndex[k]
			p := next[j]
			minor[p], values[p] = i, m.values[k]
			next[j]++
		}
	}

	return &Matrix{
		orient:      o,
		rows:        m.rows,
		cols:        m.cols,
		values:      values,
		minorIndex:  minor,
		majorOffset: offsets,
	}, nil
}

// spanSorter orders one span by minor index, carrying values along.
type spanSorter struct {
	minor  []int
	values []float64
}

func (s spanSorter) Len() int           { return len(s.minor) }
func (s spanSorter) Less(i, j int) bool { return s.minor[i] < s.minor[j] }
func (s spanSorter) Swap(i, j int) {
	s.minor[i], s.minor[j] = s.minor[j], s.minor[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}
