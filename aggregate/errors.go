// SPDX-License-Identifier: MIT

package aggregate

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates major/minor/value slices of different lengths.
	ErrLengthMismatch = errors.New("aggregate: parallel slices differ in length")

	// ErrMajorRange indicates a major index that cannot be stored in the
	// 32-bit touched-major set (negative or above math.MaxUint32).
	ErrMajorRange = errors.New("aggregate: major index outside bitmap range")
)

// groupErrorf attaches the method tag and detail to a sentinel.
func groupErrorf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", methodGroup, fmt.Sprintf(format, args...), err)
}
