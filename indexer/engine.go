// SPDX-License-Identifier: MIT

package indexer

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/csindex/metrics"
	"github.com/katalvlaran/csindex/sparse"
)

// Engine owns a matrix that changes through Add and Set.
//
// Readers load the current matrix with one atomic pointer read and never
// block. Writers are serialized: each one rebuilds from the latest matrix
// and publishes the result with an atomic store, so no update is lost and
// no reader sees a partial merge.
type Engine struct {
	cur  atomic.Pointer[sparse.Matrix]
	mu   sync.Mutex // serializes writers
	opts []Option
}

// NewEngine wraps m. opts become the defaults of every call; per-call
// options are applied after them.
func NewEngine(m *sparse.Matrix, opts ...Option) (*Engine, error) {
	if m == nil {
		return nil, fmt.Errorf("NewEngine: %w", sparse.ErrNilMatrix)
	}
	e := &Engine{opts: opts[:len(opts):len(opts)]}
	e.cur.Store(m)

	return e, nil
}

// Matrix returns the current matrix. It must be treated as read-only.
func (e *Engine) Matrix() *sparse.Matrix { return e.cur.Load() }

// Get is Get on the current matrix.
func (e *Engine) Get(rows, cols []int, opts ...Option) ([]float64, error) {
	return Get(e.cur.Load(), rows, cols, e.with(opts)...)
}

// GetInto is GetInto on the current matrix.
func (e *Engine) GetInto(dst []float64, rows, cols []int, opts ...Option) error {
	return GetInto(dst, e.cur.Load(), rows, cols, e.with(opts)...)
}

// Add accumulates deltas and publishes the result. On error the current
// matrix is unchanged.
func (e *Engine) Add(rows, cols []int, deltas []float64, opts ...Option) error {
	return e.apply(metrics.OpAdd, rows, cols, deltas, opts)
}

// Set assigns values and publishes the result. On error the current matrix
// is unchanged.
func (e *Engine) Set(rows, cols []int, values []float64, opts ...Option) error {
	return e.apply(metrics.OpSet, rows, cols, values, opts)
}

func (e *Engine) apply(op metrics.Op, rows, cols []int, vals []float64, opts []Option) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	out, err := mutate(op, e.cur.Load(), rows, cols, vals, gatherOptions(e.with(opts)...))
	if err != nil {
		return err
	}
	e.cur.Store(out)

	return nil
}

// with layers per-call options over the engine defaults.
func (e *Engine) with(opts []Option) []Option {
	if len(opts) == 0 {
		return e.opts
	}

	return append(e.opts[:len(e.opts):len(e.opts)], opts...)
}
