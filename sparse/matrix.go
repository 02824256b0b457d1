// SPDX-License-Identifier: MIT

package sparse

import "slices"

const (
	methodNew   = "New"
	methodEmpty = "NewEmpty"
	methodAt    = "At"
)

// New builds a Matrix from raw compressed arrays in orientation o.
// Stage 1 (Validate): shape, layout invariants, finite values (per options).
// Stage 2 (Finalize): take ownership of the slices (no copy).
//
// The caller must not modify values, minorIndex or majorOffset afterwards.
// Complexity: O(majorDim + nnz) with validation, O(1) with WithTrustedLayout.
func New(o Orientation, rows, cols int, values []float64, minorIndex, majorOffset []int, opts ...Option) (*Matrix, error) {
	cfg := gatherOptions(opts...)

	if cfg.validateLayout {
		if err := validateLayout(methodNew, o, rows, cols, values, minorIndex, majorOffset); err != nil {
			return nil, err
		}
	} else if err := validateShape(methodNew, o, rows, cols); err != nil {
		return nil, err
	}
	if cfg.validateNaNInf {
		if err := validateFinite(methodNew, values); err != nil {
			return nil, err
		}
	}

	return &Matrix{
		orient:      o,
		rows:        rows,
		cols:        cols,
		values:      values,
		minorIndex:  minorIndex,
		majorOffset: majorOffset,
	}, nil
}

// NewCSR is New(CSR, ...): data/indices/indptr in scipy naming.
func NewCSR(rows, cols int, data []float64, indices, indptr []int, opts ...Option) (*Matrix, error) {
	return New(CSR, rows, cols, data, indices, indptr, opts...)
}

// NewCSC is New(CSC, ...).
func NewCSC(rows, cols int, data []float64, indices, indptr []int, opts ...Option) (*Matrix, error) {
	return New(CSC, rows, cols, data, indices, indptr, opts...)
}

// NewEmpty returns a rows×cols matrix with no stored entries.
func NewEmpty(o Orientation, rows, cols int) (*Matrix, error) {
	if err := validateShape(methodEmpty, o, rows, cols); err != nil {
		return nil, err
	}
	majorDim := rows
	if o == CSC {
		majorDim = cols
	}

	return &Matrix{
		orient:      o,
		rows:        rows,
		cols:        cols,
		values:      []float64{},
		minorIndex:  []int{},
		majorOffset: make([]int, majorDim+1),
	}, nil
}

// Orientation returns CSR or CSC.
func (m *Matrix) Orientation() Orientation { return m.orient }

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Dims returns (rows, cols).
func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }

// MajorDim is the number of major slices (rows for CSR, cols for CSC).
func (m *Matrix) MajorDim() int {
	if m.orient == CSC {
		return m.cols
	}

	return m.rows
}

// MinorDim is the extent of the minor coordinate.
func (m *Matrix) MinorDim() int {
	if m.orient == CSC {
		return m.rows
	}

	return m.cols
}

// Nnz returns the number of stored entries (explicit zeros included).
func (m *Matrix) Nnz() int { return len(m.values) }

// Values returns the stored values. Read-only.
func (m *Matrix) Values() []float64 { return m.values }

// MinorIndex returns the per-entry minor coordinates. Read-only.
func (m *Matrix) MinorIndex() []int { return m.minorIndex }

// MajorOffset returns the span offsets (len MajorDim()+1). Read-only.
func (m *Matrix) MajorOffset() []int { return m.majorOffset }

// SpanBounds returns [lo, hi) of major slice i in the entry arrays.
// i must be in [0, MajorDim()).
func (m *Matrix) SpanBounds(i int) (lo, hi int) {
	return m.majorOffset[i], m.majorOffset[i+1]
}

// Span returns the minor indices and values of major slice i as shared
// sub-slices. i must be in [0, MajorDim()).
func (m *Matrix) Span(i int) ([]int, []float64) {
	lo, hi := m.majorOffset[i], m.majorOffset[i+1]

	return m.minorIndex[lo:hi:hi], m.values[lo:hi:hi]
}

// MajorMinor maps a (row, col) coordinate onto (major, minor).
func (m *Matrix) MajorMinor(row, col int) (major, minor int) {
	if m.orient == CSC {
		return col, row
	}

	return row, col
}

// RowCol maps a (major, minor) coordinate back onto (row, col).
func (m *Matrix) RowCol(major, minor int) (row, col int) {
	if m.orient == CSC {
		return minor, major
	}

	return major, minor
}

// InBounds reports whether (row, col) lies inside the matrix.
func (m *Matrix) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// At returns the value stored at (row, col), or 0 when the cell is empty.
// Single-point convenience; batch access belongs to package indexer.
// Complexity: O(log span).
func (m *Matrix) At(row, col int) (float64, error) {
	if m == nil {
		return 0, validatorErrorf(methodAt, ErrNilMatrix)
	}
	if !m.InBounds(row, col) {
		return 0, &OutOfBoundsError{Query: -1, Row: row, Col: col, Rows: m.rows, Cols: m.cols}
	}
	major, minor := m.MajorMinor(row, col)
	idx, vals := m.Span(major)
	if pos, found := slices.BinarySearch(idx, minor); found {
		return vals[pos], nil
	}

	return 0, nil
}

// Clone returns a deep copy.
// Complexity: O(majorDim + nnz).
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		orient:      m.orient,
		rows:        m.rows,
		cols:        m.cols,
		values:      slices.Clone(m.values),
		minorIndex:  slices.Clone(m.minorIndex),
		majorOffset: slices.Clone(m.majorOffset),
	}
}

// Equal reports whether a and b have the same orientation, shape and
// bitwise-identical arrays.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.orient == b.orient &&
		a.rows == b.rows && a.cols == b.cols &&
		slices.Equal(a.majorOffset, b.majorOffset) &&
		slices.Equal(a.minorIndex, b.minorIndex) &&
		slices.Equal(a.values, b.values)
}
