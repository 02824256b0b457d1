// SPDX-License-Identifier: MIT
// Package indexer_test contains shared fixtures.

package indexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csindex/builder"
	"github.com/katalvlaran/csindex/sparse"
)

// The 5×3 reference matrix:
//
//	[[0,    0,    0.45],
//	 [0.22, 0.74, 0.87],
//	 [0,    0,    0   ],
//	 [0,    0.6,  0   ],
//	 [0,    0.93, 0   ]]
//
// and the reference batch touching four stored cells, three of them repeatedly.
var (
	refRows = []int{0, 0, 1, 1, 4, 4, 4}
	refCols = []int{2, 2, 0, 1, 1, 1, 1}
)

func reference(t testing.TB, o sparse.Orientation) *sparse.Matrix {
	t.Helper()
	m, err := sparse.NewCSR(5, 3,
		[]float64{0.45, 0.22, 0.74, 0.87, 0.6, 0.93},
		[]int{2, 0, 1, 2, 1, 1},
		[]int{0, 1, 4, 4, 5, 6},
	)
	require.NoError(t, err)
	out, err := m.ToOrientation(o)
	require.NoError(t, err)

	return out
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}

// randomCase builds a seeded matrix plus a query batch with misses.
func randomCase(t testing.TB, seed int64, o sparse.Orientation, rows, cols, nnz, q int) (*sparse.Matrix, []int, []int) {
	t.Helper()
	m, err := builder.RandomSparse(rows, cols, nnz,
		builder.WithSeed(seed),
		builder.WithOrientation(o),
		builder.WithValueFn(builder.UniformValueFn(-10, 10)),
	)
	require.NoError(t, err)
	qr, qc, err := builder.RandomQueries(m, q, builder.WithSeed(seed+1), builder.WithMissRate(0.3))
	require.NoError(t, err)

	return m, qr, qc
}

// denseOf is the gonum reference of m.
func denseOf(t testing.TB, m *sparse.Matrix) [][]float64 {
	t.Helper()
	d, err := m.ToDense()
	require.NoError(t, err)
	r, c := d.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = d.At(i, j)
		}
	}

	return out
}
