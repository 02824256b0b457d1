// SPDX-License-Identifier: MIT
// Package sparse_test contains shared fixtures.

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/csindex/sparse"
	"github.com/stretchr/testify/require"
)

// smallRows is the 5×3 reference matrix used across the module:
//
//	[[0,    0,    0.45],
//	 [0.22, 0.74, 0.87],
//	 [0,    0,    0   ],
//	 [0,    0.6,  0   ],
//	 [0,    0.93, 0   ]]
var smallRows = [][]float64{
	{0, 0, 0.45},
	{0.22, 0.74, 0.87},
	{0, 0, 0},
	{0, 0.6, 0},
	{0, 0.93, 0},
}

// smallCSR builds the reference matrix from raw CSR arrays.
func smallCSR(t *testing.T) *sparse.Matrix {
	t.Helper()
	m, err := sparse.NewCSR(5, 3,
		[]float64{0.45, 0.22, 0.74, 0.87, 0.6, 0.93},
		[]int{2, 0, 1, 2, 1, 1},
		[]int{0, 1, 4, 4, 5, 6},
	)
	require.NoError(t, err)

	return m
}
