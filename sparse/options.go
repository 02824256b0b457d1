// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for constructors.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: every layout is validated unless the caller
//     explicitly vouches for it (internal rebuilds in package merge).
package sparse

// Numeric and layout policy defaults (single source of truth).
const (
	// DefaultValidateNaNInf rejects NaN/±Inf values on construction.
	DefaultValidateNaNInf = true

	// DefaultValidateLayout checks every compressed-format invariant on construction.
	DefaultValidateLayout = true
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective constructor configuration.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	validateLayout bool // DefaultValidateLayout
}

// WithValidateNaNInf enables strict finite-value validation (default).
// Complexity: O(1) to set; O(nnz) check during construction.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN and ±Inf values through.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithTrustedLayout skips the O(nnz) layout validation.
//
// Notes:
//   - Only for arrays produced by code that already guarantees the
//     invariants (merge.Rebuild). A bad layout accepted this way makes every
//     later search undefined.
func WithTrustedLayout() Option {
	return func(o *Options) { o.validateLayout = false }
}

// gatherOptions applies setters on top of the documented defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		validateLayout: DefaultValidateLayout,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
