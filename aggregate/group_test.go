// SPDX-License-Identifier: MIT

package aggregate_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/csindex/aggregate"
	"github.com/stretchr/testify/require"
)

func TestGroup_SumsDuplicates(t *testing.T) {
	t.Parallel()

	major := []int{4, 1, 0, 1, 4, 4, 3, 1, 1}
	minor := []int{1, 0, 2, 1, 1, 1, 1, 2, 0}
	vals := []float64{1, 1, 1, 1, 1, 1, 1, 1, 2}

	g, err := aggregate.Group(major, minor, vals)
	require.NoError(t, err)
	require.Equal(t, 9, g.Inputs)
	require.Equal(t, 6, g.Len())
	require.Equal(t, []int{2, 0, 1, 2, 1, 1}, g.Minor)
	require.Equal(t, []float64{1, 3, 1, 1, 1, 3}, g.Value)
	require.Equal(t, []aggregate.Run{
		{Major: 0, Lo: 0, Hi: 1},
		{Major: 1, Lo: 1, Hi: 4},
		{Major: 3, Lo: 4, Hi: 5},
		{Major: 4, Lo: 5, Hi: 6},
	}, g.Runs)
	require.Equal(t, []uint32{0, 1, 3, 4}, g.Touched.ToArray())
	require.Equal(t, []int{1, 3, 1, 1}, g.Weights())

	// Input must be left untouched.
	require.Equal(t, []int{4, 1, 0, 1, 4, 4, 3, 1, 1}, major)
}

func TestGroup_Last(t *testing.T) {
	t.Parallel()

	g, err := aggregate.Group(
		[]int{2, 2, 0, 2},
		[]int{5, 5, 1, 5},
		[]float64{1, 7, 3, 9},
		aggregate.WithReduce(aggregate.Last),
	)
	require.NoError(t, err)
	require.Equal(t, []int{1, 5}, g.Minor)
	require.Equal(t, []float64{3, 9}, g.Value)
}

func TestGroup_ZeroSumKept(t *testing.T) {
	t.Parallel()

	g, err := aggregate.Group([]int{0, 0}, []int{3, 3}, []float64{1.5, -1.5})
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())
	require.Equal(t, 0.0, g.Value[0])
}

func TestGroup_SortedHint(t *testing.T) {
	t.Parallel()

	major := []int{0, 0, 1, 3, 3}
	minor := []int{1, 1, 0, 2, 4}
	vals := []float64{1, 2, 3, 4, 5}

	hinted, err := aggregate.Group(major, minor, vals, aggregate.WithSortedHint())
	require.NoError(t, err)
	plain, err := aggregate.Group(major, minor, vals)
	require.NoError(t, err)
	require.Equal(t, plain.Minor, hinted.Minor)
	require.Equal(t, plain.Value, hinted.Value)
	require.Equal(t, plain.Runs, hinted.Runs)

	// A false hint is detected and the batch is sorted anyway.
	lying, err := aggregate.Group([]int{3, 0}, []int{0, 0}, []float64{1, 2}, aggregate.WithSortedHint())
	require.NoError(t, err)
	require.Equal(t, []aggregate.Run{{Major: 0, Lo: 0, Hi: 1}, {Major: 3, Lo: 1, Hi: 2}}, lying.Runs)
	require.Equal(t, []float64{2, 1}, lying.Value)
}

func TestGroup_Errors(t *testing.T) {
	t.Parallel()

	_, err := aggregate.Group([]int{0}, []int{0, 1}, []float64{1})
	require.ErrorIs(t, err, aggregate.ErrLengthMismatch)
	_, err = aggregate.Group([]int{0}, []int{0}, nil)
	require.ErrorIs(t, err, aggregate.ErrLengthMismatch)
	_, err = aggregate.Group([]int{-1}, []int{0}, []float64{1})
	require.ErrorIs(t, err, aggregate.ErrMajorRange)
	_, err = aggregate.Group([]int{math.MaxUint32 + 1}, []int{0}, []float64{1})
	require.ErrorIs(t, err, aggregate.ErrMajorRange)

	require.Panics(t, func() { aggregate.WithReduce(aggregate.Reduce(9)) })
}

func TestGroup_Empty(t *testing.T) {
	t.Parallel()

	g, err := aggregate.Group(nil, nil, nil)
	require.NoError(t, err)
	require.Zero(t, g.Len())
	require.Empty(t, g.Runs)
	require.True(t, g.Touched.IsEmpty())
	_, ok := g.Lookup(0)
	require.False(t, ok)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	g, err := aggregate.Group([]int{9, 2, 70000, 2}, []int{1, 4, 0, 3}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	r, ok := g.Lookup(2)
	require.True(t, ok)
	mn, v := g.Entries(r)
	require.Equal(t, []int{3, 4}, mn)
	require.Equal(t, []float64{4, 2}, v)

	r, ok = g.Lookup(70000)
	require.True(t, ok)
	require.Equal(t, 70000, r.Major)
	require.Equal(t, 1, r.Len())

	for _, miss := range []int{-5, 0, 3, 10, 69999} {
		_, ok = g.Lookup(miss)
		require.False(t, ok, "major %d", miss)
	}
}

// Folding then regrouping the folded output is a no-op.
func TestGroup_Idempotent(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	n := 2000
	major, minor, vals := make([]int, n), make([]int, n), make([]float64, n)
	for i := range major {
		major[i] = rng.Intn(40)
		minor[i] = rng.Intn(25)
		vals[i] = float64(rng.Intn(9))
	}
	g, err := aggregate.Group(major, minor, vals)
	require.NoError(t, err)

	flatMajor := make([]int, 0, g.Len())
	for _, r := range g.Runs {
		for k := r.Lo; k < r.Hi; k++ {
			flatMajor = append(flatMajor, r.Major)
		}
	}
	require.True(t, aggregate.IsSorted(flatMajor, g.Minor))
	again, err := aggregate.Group(flatMajor, g.Minor, g.Value, aggregate.WithSortedHint())
	require.NoError(t, err)
	require.Equal(t, g.Minor, again.Minor)
	require.Equal(t, g.Value, again.Value)
	require.Equal(t, g.Runs, again.Runs)

	total := 0.0
	for _, v := range vals {
		total += v
	}
	folded := 0.0
	for _, v := range g.Value {
		folded += v
	}
	require.Equal(t, total, folded)
}
