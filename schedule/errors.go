// SPDX-License-Identifier: MIT

package schedule

import "errors"

// ErrThreads indicates a worker count below 1.
var ErrThreads = errors.New("schedule: thread count must be >= 1")
