// SPDX-License-Identifier: MIT
// Package search: public entry points.
//
// A strategy is resolved once per batch (Resolve) into a Func that is then
// called for every query, so no per-comparison dispatch happens.

package search

import (
	"fmt"
	"strings"
)

// Strategies lists every supported strategy in tag order.
func Strategies() []Strategy {
	return []Strategy{Binary, Interpolation, Joint}
}

// ParseStrategy maps a case-insensitive name onto a Strategy.
// Unknown names return ErrUnsupportedStrategy.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == key {
			return Strategy(s), nil
		}
	}

	return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnsupportedStrategy)
}

// Resolve returns the Func implementing s.
func Resolve(s Strategy) (Func, error) {
	switch s {
	case Binary:
		return BinarySearch, nil
	case Interpolation:
		return InterpolationSearch, nil
	case Joint:
		return JointSearch, nil
	default:
		return nil, fmt.Errorf("Resolve(%d): %w", uint8(s), ErrUnsupportedStrategy)
	}
}

// Locate resolves s and searches a for target in one call.
// Prefer Resolve for batches.
func Locate(s Strategy, a []int, target int) (Result, error) {
	fn, err := Resolve(s)
	if err != nil {
		return Result{}, err
	}

	return fn(a, target), nil
}
