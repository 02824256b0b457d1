// SPDX-License-Identifier: MIT

package merge

import "github.com/katalvlaran/csindex/search"

// Rebuild defaults.
const (
	DefaultMode    = Accumulate
	DefaultThreads = 1
)

// Option customizes Rebuild.
type Option func(*Options)

// Options holds the resolved Rebuild configuration.
type Options struct {
	mode    Mode
	threads int
	locate  search.Func
	verify  bool
}

// WithMode selects Accumulate (add) or Overwrite (set). Panics on an unknown Mode.
func WithMode(m Mode) Option {
	if m != Accumulate && m != Overwrite {
		panic("merge: WithMode: unknown mode " + m.String())
	}

	return func(o *Options) { o.mode = m }
}

// WithThreads bounds the worker pool. Panics when t < 1.
func WithThreads(t int) Option {
	if t < 1 {
		panic("merge: WithThreads: t must be >= 1")
	}

	return func(o *Options) { o.threads = t }
}

// WithLocate sets the search used while planning. Panics on nil.
func WithLocate(fn search.Func) Option {
	if fn == nil {
		panic("merge: WithLocate(nil)")
	}

	return func(o *Options) { o.locate = fn }
}

// WithVerify re-validates the rebuilt matrix before returning it.
func WithVerify() Option {
	return func(o *Options) { o.verify = true }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		mode:    DefaultMode,
		threads: DefaultThreads,
		locate:  search.BinarySearch,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
