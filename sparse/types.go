// SPDX-License-Identifier: MIT

// Package sparse: domain types. Errors and options live in dedicated files
// (errors.go, options.go).
package sparse

// Orientation selects which dimension a Matrix groups its entries by.
type Orientation uint8

const (
	// CSR groups entries by row: major=row, minor=col.
	CSR Orientation = iota
	// CSC groups entries by column: major=col, minor=row.
	CSC
)

// String returns "CSR" or "CSC".
func (o Orientation) String() string {
	switch o {
	case CSR:
		return "CSR"
	case CSC:
		return "CSC"
	default:
		return "Orientation(?)"
	}
}

// Valid reports whether o is CSR or CSC.
func (o Orientation) Valid() bool { return o == CSR || o == CSC }

// Matrix is a compressed sparse matrix (CSR or CSC).
//
// Invariants (enforced by every constructor unless WithTrustedLayout):
//   - len(majorOffset) == majorDim+1, majorOffset[0] == 0, non-decreasing;
//   - majorOffset[majorDim] == len(values) == len(minorIndex);
//   - within each major slice minorIndex is strictly increasing and in [0, minorDim).
//
// A *Matrix is never mutated after construction; accessor slices are shared
// and must be treated as read-only.
type Matrix struct {
	orient      Orientation
	rows, cols  int       // logical shape
	values      []float64 // stored entries
	minorIndex  []int     // minor coordinate per entry
	majorOffset []int     // span starts, len == majorDim+1
}
