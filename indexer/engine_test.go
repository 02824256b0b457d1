// SPDX-License-Identifier: MIT

package indexer_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csindex/indexer"
	"github.com/katalvlaran/csindex/metrics"
	"github.com/katalvlaran/csindex/search"
	"github.com/katalvlaran/csindex/sparse"
)

func TestEngine_AddSetGet(t *testing.T) {
	t.Parallel()

	var mc metrics.BasicCollector
	e, err := indexer.NewEngine(reference(t, sparse.CSR),
		indexer.WithThreads(2), indexer.WithStrategy(search.Joint), indexer.WithMetrics(&mc))
	require.NoError(t, err)

	require.NoError(t, e.Add(refRows, refCols, ones(len(refRows))))
	got, err := e.Get(refRows, refCols)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2.45, 2.45, 1.22, 1.74, 3.93, 3.93, 3.93}, got, 1e-12)

	require.NoError(t, e.Set([]int{2}, []int{2}, []float64{8}))
	dst := make([]float64, 1)
	require.NoError(t, e.GetInto(dst, []int{2}, []int{2}))
	require.Equal(t, []float64{8}, dst)

	before := e.Matrix()
	err = e.Add([]int{7}, []int{0}, []float64{1})
	require.ErrorIs(t, err, sparse.ErrOutOfBounds)
	require.Same(t, before, e.Matrix())

	st := mc.Stats()
	require.EqualValues(t, 2, st.GetCalls)
	require.EqualValues(t, 8, st.GetQueries)
	require.EqualValues(t, 3, st.MutationCalls)
	require.EqualValues(t, 1, st.MutationErrors)
	require.EqualValues(t, 5, st.MutationGroups)
	require.EqualValues(t, 1, st.MutationInserted)

	_, err = indexer.NewEngine(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// Concurrent writers must not lose updates; readers must always see a valid
// matrix.
func TestEngine_Concurrent(t *testing.T) {
	t.Parallel()

	m, err := sparse.NewEmpty(sparse.CSC, 10, 10)
	require.NoError(t, err)
	e, err := indexer.NewEngine(m)
	require.NoError(t, err)

	const writers, rounds = 4, 25
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				if err := e.Add([]int{w, 9}, []int{r % 10, 9}, []float64{1, 1}); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	var readErr error
	var rg sync.WaitGroup
	rg.Add(1)
	go func() {
		defer rg.Done()
		for i := 0; i < 200; i++ {
			if err := e.Matrix().Validate(); err != nil {
				readErr = err
				return
			}
			if _, err := e.Get([]int{9}, []int{9}); err != nil {
				readErr = err
				return
			}
		}
	}()
	wg.Wait()
	rg.Wait()
	require.NoError(t, readErr)

	v, err := e.Get([]int{9}, []int{9})
	require.NoError(t, err)
	require.Equal(t, float64(writers*rounds), v[0])
}
