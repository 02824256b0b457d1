// SPDX-License-Identifier: MIT
// Package: builder
//
// random_sparse.go: RandomSparse(rows, cols, nnz) generator.
//
// Canonical model:
//   - Exactly nnz distinct cells, chosen uniformly among all rows*cols
//     (Floyd's sampling on the linear cell id major*minorDim + minor).
//   - Cells are sorted by linear id, which is the compressed storage order,
//     so offsets come from one counting pass.
//   - Values are drawn by cfg.valueFn in storage order.
//
// Contract:
//   - rows, cols ≥ 1; 0 ≤ nnz ≤ rows*cols (else ErrBadSize).
//   - cfg.rng required unless the cell set is fixed (nnz == 0 or full).
//   - Result passes full sparse validation.
//
// Complexity:
//   - Time: O(nnz log nnz + majorDim).
//   - Space: O(nnz + majorDim).

package builder

import (
	"math"
	"slices"

	"github.com/katalvlaran/csindex/sparse"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a rows×cols matrix with nnz distinct stored entries.
func RandomSparse(rows, cols, nnz int, opts ...Option) (*sparse.Matrix, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate sizes (fail fast, no allocation on invalid input).
	if rows < 1 || cols < 1 {
		return nil, builderErrorf(methodRandomSparse, ErrBadSize, "shape %dx%d", rows, cols)
	}
	if rows > math.MaxInt/cols {
		return nil, builderErrorf(methodRandomSparse, ErrBadSize, "shape %dx%d overflows", rows, cols)
	}
	cells := rows * cols
	if nnz < 0 || nnz > cells {
		return nil, builderErrorf(methodRandomSparse, ErrBadSize, "nnz=%d not in [0,%d]", nnz, cells)
	}
	if cfg.rng == nil && nnz > 0 && nnz < cells {
		return nil, builderErrorf(methodRandomSparse, ErrNeedRandSource, "nnz=%d of %d", nnz, cells)
	}

	// 2) Choose the cells.
	var ids []int
	if nnz == cells {
		ids = make([]int, cells)
		for i := range ids {
			ids[i] = i
		}
	} else {
		ids = floydSample(cfg, cells, nnz)
		slices.Sort(ids)
	}

	// 3) Lay them out.
	majorDim, minorDim := rows, cols
	if cfg.orient == sparse.CSC {
		majorDim, minorDim = cols, rows
	}
	offsets := make([]int, majorDim+1)
	minor := make([]int, nnz)
	values := make([]float64, nnz)
	for k, id := range ids {
		offsets[id/minorDim+1]++
		minor[k] = id % minorDim
		values[k] = cfg.valueFn(cfg.rng)
	}
	for i := 0; i < majorDim; i++ {
		offsets[i+1] += offsets[i]
	}

	m, err := sparse.New(cfg.orient, rows, cols, values, minor, offsets)
	if err != nil {
		return nil, builderErrorf(methodRandomSparse, ErrConstructFailed, "%v", err)
	}

	return m, nil
}

// floydSample draws k distinct ints from [0, n) with k RNG calls.
func floydSample(cfg builderConfig, n, k int) []int {
	chosen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for j := n - k; j < n; j++ {
		t := int(cfg.rng.Int63n(int64(j) + 1))
		if _, dup := chosen[t]; dup {
			t = j
		}
		chosen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}
