// SPDX-License-Identifier: MIT

package search

// Strategy selects a search algorithm. The zero value is Binary.
type Strategy uint8

const (
	// Binary is classic halving search.
	Binary Strategy = iota
	// Interpolation probes by linear interpolation between the bound values.
	Interpolation
	// Joint is interpolation with a binary-search fallback.
	Joint
)

// strategyNames maps tags to their canonical lowercase names.
var strategyNames = [...]string{
	Binary:        "binary",
	Interpolation: "interpolation",
	Joint:         "joint",
}

// String returns the canonical name ("binary", "interpolation", "joint").
func (s Strategy) String() string {
	if s.Valid() {
		return strategyNames[s]
	}

	return "unsupported"
}

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool { return int(s) < len(strategyNames) }

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, ErrUnsupportedStrategy
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseStrategy.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// Result is the outcome of one search.
type Result struct {
	Pos    int  // index of target when Found, otherwise its insertion point
	Found  bool // a[Pos] == target
	Probes int  // loop iterations spent
}

// Func is a resolved strategy. a must be strictly increasing.
type Func func(a []int, target int) Result
