// SPDX-License-Identifier: MIT

package indexer

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/csindex/aggregate"
	"github.com/katalvlaran/csindex/merge"
	"github.com/katalvlaran/csindex/metrics"
	"github.com/katalvlaran/csindex/search"
	"github.com/katalvlaran/csindex/sparse"
)

const (
	methodAdd = "Add"
	methodSet = "Set"
)

// Add returns a new matrix equal to m with deltas[k] added at
// (rows[k], cols[k]). Duplicates are summed before merging; absent cells
// are inserted. m is never modified, and nothing is built when any
// coordinate is out of bounds.
// Complexity: O(q log q + majorDim + nnz) work, split over the pool.
func Add(m *sparse.Matrix, rows, cols []int, deltas []float64, opts ...Option) (*sparse.Matrix, error) {
	return mutate(metrics.OpAdd, m, rows, cols, deltas, gatherOptions(opts...))
}

// Set is Add with assignment: the last value given for a coordinate (in
// input order) replaces the stored one.
func Set(m *sparse.Matrix, rows, cols []int, values []float64, opts ...Option) (*sparse.Matrix, error) {
	return mutate(metrics.OpSet, m, rows, cols, values, gatherOptions(opts...))
}

func mutate(op metrics.Op, m *sparse.Matrix, rows, cols []int, vals []float64, cfg Options) (*sparse.Matrix, error) {
	start := time.Now()
	out, st, err := rebuild(op, m, rows, cols, vals, cfg)
	d := time.Since(start)
	nnz := 0
	if out != nil {
		nnz = out.Nnz()
	}
	cfg.metrics.RecordMutation(op, st, d, err)
	cfg.logger.LogMutation(op, cfg.threads, cfg.strategy, st, nnz, d, err)

	return out, err
}

// rebuild runs the mutation pipeline:
// validate -> map and bounds-check -> group -> plan and rebuild.
func rebuild(op metrics.Op, m *sparse.Matrix, rows, cols []int, vals []float64, cfg Options) (*sparse.Matrix, metrics.Mutation, error) {
	tag, reduce, mode := methodAdd, aggregate.Sum, merge.Accumulate
	if op == metrics.OpSet {
		tag, reduce, mode = methodSet, aggregate.Last, merge.Overwrite
	}
	st := metrics.Mutation{Queries: len(rows)}

	if err := checkBatch(tag, m, len(rows), len(cols), len(vals)); err != nil {
		return nil, st, err
	}
	locate, err := search.Resolve(cfg.strategy)
	if err != nil {
		return nil, st, fmt.Errorf("%s: %w", tag, err)
	}
	if cfg.validateNaNInf {
		for k, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, st, fmt.Errorf("%s: query %d: %w", tag, k, sparse.ErrNaNInf)
			}
		}
	}

	major, minor := make([]int, len(rows)), make([]int, len(rows))
	if err = mapBatch(m, rows, cols, major, minor, cfg.threads); err != nil {
		return nil, st, err
	}

	groupOpts := []aggregate.Option{aggregate.WithReduce(reduce)}
	if cfg.sortedHint {
		groupOpts = append(groupOpts, aggregate.WithSortedHint())
	}
	g, err := aggregate.Group(major, minor, vals, groupOpts...)
	if err != nil {
		return nil, st, fmt.Errorf("%s: %w", tag, err)
	}

	mergeOpts := []merge.Option{
		merge.WithMode(mode),
		merge.WithThreads(cfg.threads),
		merge.WithLocate(locate),
	}
	if cfg.verify {
		mergeOpts = append(mergeOpts, merge.WithVerify())
	}
	out, ms, err := merge.Rebuild(m, g, mergeOpts...)
	if err != nil {
		return nil, st, fmt.Errorf("%s: %w", tag, err)
	}
	st.Groups, st.Inserted, st.Probes = ms.Groups, ms.Inserted, ms.Probes

	return out, st, nil
}
