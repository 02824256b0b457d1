// SPDX-License-Identifier: MIT

package merge

import (
	"errors"
	"fmt"
)

var (
	// ErrPlanLength indicates Apply destinations that do not match Plan.Len,
	// or a source span shorter than the plan expects.
	ErrPlanLength = errors.New("merge: destination does not match plan length")

	// ErrGroupRange indicates grouped keys outside the target matrix.
	ErrGroupRange = errors.New("merge: grouped key outside matrix")
)

func rebuildErrorf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", methodRebuild, fmt.Sprintf(format, args...), err)
}
