// SPDX-License-Identifier: MIT
// Package indexer_test provides benchmarks sweeping strategy × threads ×
// batch order, on seeded random matrices.

package indexer_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/csindex/aggregate"
	"github.com/katalvlaran/csindex/builder"
	"github.com/katalvlaran/csindex/indexer"
	"github.com/katalvlaran/csindex/search"
	"github.com/katalvlaran/csindex/sparse"
)

const (
	benchRows    = 20000
	benchCols    = 20000
	benchNnz     = 1_000_000
	benchQueries = 100_000
)

var benchThreads = []int{1, 4, 8}

// sinks to defeat dead-code elimination
var (
	sinkV []float64
	sinkM *sparse.Matrix
)

type benchBatch struct {
	m          *sparse.Matrix
	rows, cols []int
	deltas     []float64
}

func newBenchBatch(b *testing.B, sorted bool) benchBatch {
	b.Helper()
	m, rows, cols := randomCase(b, 1337, sparse.CSR, benchRows, benchCols, benchNnz, benchQueries)
	deltas, err := builder.RandomValues(len(rows), builder.WithSeed(7), builder.WithValueFn(builder.UniformValueFn(0, 1)))
	if err != nil {
		b.Fatal(err)
	}
	if sorted {
		perm := aggregate.Order(rows, cols)
		sr, sc, sd := make([]int, len(perm)), make([]int, len(perm)), make([]float64, len(perm))
		for i, k := range perm {
			sr[i], sc[i], sd[i] = rows[k], cols[k], deltas[k]
		}
		rows, cols, deltas = sr, sc, sd
	}

	return benchBatch{m: m, rows: rows, cols: cols, deltas: deltas}
}

func BenchmarkGet(b *testing.B) {
	for _, sorted := range []bool{false, true} {
		bb := newBenchBatch(b, sorted)
		dst := make([]float64, len(bb.rows))
		for _, s := range search.Strategies() {
			for _, threads := range benchThreads {
				b.Run(fmt.Sprintf("sorted=%t/%s/T=%d", sorted, s, threads), func(b *testing.B) {
					b.ReportAllocs()
					for i := 0; i < b.N; i++ {
						if err := indexer.GetInto(dst, bb.m, bb.rows, bb.cols,
							indexer.WithStrategy(s), indexer.WithThreads(threads)); err != nil {
							b.Fatal(err)
						}
					}
					sinkV = dst
				})
			}
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	for _, sorted := range []bool{false, true} {
		bb := newBenchBatch(b, sorted)
		for _, s := range search.Strategies() {
			for _, threads := range benchThreads {
				b.Run(fmt.Sprintf("sorted=%t/%s/T=%d", sorted, s, threads), func(b *testing.B) {
					b.ReportAllocs()
					opts := []indexer.Option{indexer.WithStrategy(s), indexer.WithThreads(threads)}
					if sorted {
						opts = append(opts, indexer.WithSortedHint())
					}
					for i := 0; i < b.N; i++ {
						out, err := indexer.Add(bb.m, bb.rows, bb.cols, bb.deltas, opts...)
						if err != nil {
							b.Fatal(err)
						}
						sinkM = out
					}
				})
			}
		}
	}
}
