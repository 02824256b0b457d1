// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csindex/builder"
	"github.com/katalvlaran/csindex/sparse"
)

func TestRandomSparse_Shape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		rows, cols, nnz int
		o               sparse.Orientation
	}{
		{"csr-sparse", 40, 30, 100, sparse.CSR},
		{"csc-sparse", 40, 30, 100, sparse.CSC},
		{"empty", 5, 5, 0, sparse.CSR},
		{"full", 4, 3, 12, sparse.CSC},
		{"single-row", 1, 1000, 999, sparse.CSR},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.RandomSparse(tc.rows, tc.cols, tc.nnz,
				builder.WithSeed(1), builder.WithOrientation(tc.o))
			require.NoError(t, err)
			require.NoError(t, m.Validate())
			require.Equal(t, tc.o, m.Orientation())
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			require.Equal(t, tc.nnz, m.Nnz())
			for _, v := range m.Values() {
				require.Equal(t, builder.DefaultValue, v)
			}
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	opts := []builder.Option{builder.WithSeed(42), builder.WithValueFn(builder.UniformValueFn(-1, 1))}
	a, err := builder.RandomSparse(100, 80, 500, opts...)
	require.NoError(t, err)
	b, err := builder.RandomSparse(100, 80, 500, builder.WithSeed(42), builder.WithValueFn(builder.UniformValueFn(-1, 1)))
	require.NoError(t, err)
	require.True(t, sparse.Equal(a, b))

	c, err := builder.RandomSparse(100, 80, 500, builder.WithSeed(43))
	require.NoError(t, err)
	require.False(t, sparse.Equal(a, c))
}

func TestRandomSparse_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.RandomSparse(0, 3, 0)
	require.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.RandomSparse(3, 3, 10, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.RandomSparse(3, 3, -1, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.RandomSparse(math.MaxInt/2, 3, 1, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.RandomSparse(3, 3, 4)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.RandomSparse(3, 3, 4, builder.WithSeed(1), builder.WithValueFn(builder.ConstantValueFn(math.NaN())))
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	// Fully determined cell sets need no RNG.
	_, err = builder.RandomSparse(3, 3, 9)
	require.NoError(t, err)
	_, err = builder.RandomSparse(3, 3, 0)
	require.NoError(t, err)
}

func TestRandomQueries(t *testing.T) {
	t.Parallel()

	for _, o := range []sparse.Orientation{sparse.CSR, sparse.CSC} {
		m, err := builder.RandomSparse(50, 20, 120, builder.WithSeed(3), builder.WithOrientation(o))
		require.NoError(t, err)

		rows, cols, err := builder.RandomQueries(m, 1000, builder.WithSeed(4))
		require.NoError(t, err)
		require.Len(t, rows, 1000)
		require.Len(t, cols, 1000)
		for q := range rows {
			major, minor := m.MajorMinor(rows[q], cols[q])
			idx, _ := m.Span(major)
			require.Contains(t, idx, minor, "query %d must hit a stored entry", q)
		}

		rows, cols, err = builder.RandomQueries(m, 2000, builder.WithSeed(4), builder.WithMissRate(1))
		require.NoError(t, err)
		misses := 0
		for q := range rows {
			require.True(t, m.InBounds(rows[q], cols[q]))
			if v, _ := m.At(rows[q], cols[q]); v == 0 {
				misses++
			}
		}
		// 120 of 1000 cells are stored.
		require.Greater(t, misses, 1500)
	}
}

func TestRandomQueries_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := builder.RandomQueries(nil, 1, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrNilMatrix)

	m, err := sparse.NewEmpty(sparse.CSR, 3, 3)
	require.NoError(t, err)
	_, _, err = builder.RandomQueries(m, -1, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrBadSize)
	_, _, err = builder.RandomQueries(m, 1)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	// An empty matrix still yields in-bounds coordinates.
	rows, cols, err := builder.RandomQueries(m, 10, builder.WithSeed(1))
	require.NoError(t, err)
	for q := range rows {
		require.True(t, m.InBounds(rows[q], cols[q]))
	}

	zero, err := sparse.NewEmpty(sparse.CSR, 0, 3)
	require.NoError(t, err)
	_, _, err = builder.RandomQueries(zero, 1, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrBadSize)
}

func TestRandomValues(t *testing.T) {
	t.Parallel()

	vals, err := builder.RandomValues(3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1}, vals)

	vals, err = builder.RandomValues(500, builder.WithSeed(9), builder.WithValueFn(builder.UniformValueFn(2, 3)))
	require.NoError(t, err)
	for _, v := range vals {
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 3.0)
	}

	_, err = builder.RandomValues(-1)
	require.ErrorIs(t, err, builder.ErrBadSize)
}

func TestValueFns(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	require.Equal(t, 7.5, builder.ConstantValueFn(7.5)(rng))
	require.Equal(t, 2.0, builder.UniformValueFn(2, 2)(rng))
	require.Equal(t, 2.0, builder.UniformValueFn(2, 9)(nil))
	require.Equal(t, 4.0, builder.NormalValueFn(4, 1)(nil))

	sum := 0.0
	normal := builder.NormalValueFn(10, 2)
	for i := 0; i < 4000; i++ {
		sum += normal(rng)
	}
	require.InDelta(t, 10, sum/4000, 0.2)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithValueFn(nil) })
	require.Panics(t, func() { builder.WithOrientation(sparse.Orientation(9)) })
	require.Panics(t, func() { builder.WithMissRate(-0.1) })
	require.Panics(t, func() { builder.WithMissRate(1.5) })
	require.Panics(t, func() { builder.UniformValueFn(3, 1) })
	require.Panics(t, func() { builder.NormalValueFn(0, -1) })
}
