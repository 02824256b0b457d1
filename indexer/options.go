// SPDX-License-Identifier: MIT

package indexer

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/csindex/metrics"
	"github.com/katalvlaran/csindex/search"
)

// Defaults (single source of truth).
const (
	// DefaultThreads runs every batch inline on the caller's goroutine.
	DefaultThreads = 1

	// DefaultStrategy is plain binary search.
	DefaultStrategy = search.Binary

	// DefaultValidateNaNInf rejects NaN/±Inf deltas and values.
	DefaultValidateNaNInf = true
)

// Option configures one call (or, passed to NewEngine, every call of an Engine).
type Option func(*Options)

// Options is the resolved configuration of a call.
type Options struct {
	threads        int
	strategy       search.Strategy
	sortedHint     bool
	logger         *Logger
	metrics        metrics.Collector
	validateNaNInf bool
	verify         bool
}

// WithThreads sets the worker pool size. Panics when t < 1.
func WithThreads(t int) Option {
	if t < 1 {
		panic(fmt.Sprintf("indexer: WithThreads(%d): t must be >= 1", t))
	}

	return func(o *Options) { o.threads = t }
}

// WithAllThreads sizes the pool to runtime.NumCPU().
func WithAllThreads() Option {
	return WithThreads(runtime.NumCPU())
}

// WithStrategy selects the search strategy. An unknown value is reported
// by the operation as search.ErrUnsupportedStrategy.
func WithStrategy(s search.Strategy) Option {
	return func(o *Options) { o.strategy = s }
}

// WithSortedHint declares the mutation batch sorted by (major, minor) in the
// matrix orientation: (row, col) for CSR, (col, row) for CSC. It is verified
// before use.
func WithSortedHint() Option {
	return func(o *Options) { o.sortedHint = true }
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic("indexer: WithLogger(nil)")
	}

	return func(o *Options) { o.logger = l }
}

// WithMetrics attaches a metrics collector. Panics on nil.
func WithMetrics(c metrics.Collector) Option {
	if c == nil {
		panic("indexer: WithMetrics(nil)")
	}

	return func(o *Options) { o.metrics = c }
}

// WithValidateNaNInf rejects non-finite deltas (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN and ±Inf deltas through.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithVerifyResult re-validates every rebuilt matrix before returning it.
func WithVerifyResult() Option {
	return func(o *Options) { o.verify = true }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		threads:        DefaultThreads,
		strategy:       DefaultStrategy,
		logger:         noopLogger,
		metrics:        metrics.NoopCollector{},
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
