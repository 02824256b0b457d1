// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// validatorErrorf wraps err with the given method tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// wrapIndex attaches an array position to err.
func wrapIndex(k int, err error) error {
	return fmt.Errorf("index %d: %w", k, err)
}

// trusted appends WithTrustedLayout without aliasing the caller's slice.
func trusted(opts []Option) []Option {
	return append(opts[:len(opts):len(opts)], WithTrustedLayout())
}
