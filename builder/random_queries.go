// SPDX-License-Identifier: MIT
// Package: builder
//
// random_queries.go: query and value batches for benchmarks and tests.
//
// RandomQueries draws n coordinates. With probability cfg.missRate a query
// targets a uniformly random cell (which may or may not be stored);
// otherwise it targets a uniformly random stored entry. Stored entries are
// drawn with replacement, so batches contain duplicates at realistic rates.
// A matrix without entries always yields uniform cells.
//
// Complexity: O(n log majorDim).

package builder

import (
	"slices"

	"github.com/katalvlaran/csindex/sparse"
)

const (
	methodRandomQueries = "RandomQueries"
	methodRandomValues  = "RandomValues"
)

// RandomQueries returns n (row, col) coordinates inside m.
func RandomQueries(m *sparse.Matrix, n int, opts ...Option) (rows, cols []int, err error) {
	cfg := newBuilderConfig(opts...)
	if m == nil {
		return nil, nil, builderErrorf(methodRandomQueries, ErrNilMatrix, "m")
	}
	if n < 0 {
		return nil, nil, builderErrorf(methodRandomQueries, ErrBadSize, "n=%d", n)
	}
	if cfg.rng == nil && n > 0 {
		return nil, nil, builderErrorf(methodRandomQueries, ErrNeedRandSource, "n=%d", n)
	}

	rows, cols = make([]int, n), make([]int, n)
	if m.Rows() == 0 || m.Cols() == 0 {
		if n > 0 {
			return nil, nil, builderErrorf(methodRandomQueries, ErrBadSize, "empty shape %dx%d", m.Rows(), m.Cols())
		}
		return rows, cols, nil
	}

	offsets, minor := m.MajorOffset(), m.MinorIndex()
	nnz := m.Nnz()
	for q := 0; q < n; q++ {
		if nnz == 0 || (cfg.missRate > 0 && cfg.rng.Float64() < cfg.missRate) {
			rows[q], cols[q] = cfg.rng.Intn(m.Rows()), cfg.rng.Intn(m.Cols())
			continue
		}
		k := cfg.rng.Intn(nnz)
		// Major owning entry k: last offset <= k.
		i, _ := slices.BinarySearch(offsets, k+1)
		major := i - 1
		rows[q], cols[q] = m.RowCol(major, minor[k])
	}

	return rows, cols, nil
}

// RandomValues returns n values drawn from the configured ValueFn.
// With the default constant ValueFn no RNG is needed.
func RandomValues(n int, opts ...Option) ([]float64, error) {
	cfg := newBuilderConfig(opts...)
	if n < 0 {
		return nil, builderErrorf(methodRandomValues, ErrBadSize, "n=%d", n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.valueFn(cfg.rng)
	}

	return out, nil
}
