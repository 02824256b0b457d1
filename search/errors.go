// SPDX-License-Identifier: MIT

package search

import "errors"

// ErrUnsupportedStrategy indicates an unknown strategy tag or name.
var ErrUnsupportedStrategy = errors.New("search: unsupported strategy")
