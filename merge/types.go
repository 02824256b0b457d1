// SPDX-License-Identifier: MIT

package merge

import "fmt"

// Mode selects what happens when a grouped minor already exists.
type Mode uint8

const (
	// Accumulate adds the grouped value to the stored one.
	Accumulate Mode = iota
	// Overwrite replaces the stored value.
	Overwrite
)

func (m Mode) String() string {
	switch m {
	case Accumulate:
		return "accumulate"
	case Overwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// OpKind tags a plan step.
type OpKind uint8

const (
	// Keep copies Len existing entries starting at Src.
	Keep OpKind = iota
	// Update writes existing[Src] + Value.
	Update
	// Assign writes Value over existing[Src].
	Assign
	// Insert writes the new entry (Minor, Value).
	Insert
)

func (k OpKind) String() string {
	switch k {
	case Keep:
		return "keep"
	case Update:
		return "update"
	case Assign:
		return "assign"
	case Insert:
		return "insert"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// Op is one step of a Plan. Src is relative to the start of the span.
type Op struct {
	Kind  OpKind
	Src   int
	Len   int
	Minor int
	Value float64
}

// Plan rewrites one major span. Ops cover the whole output span in order.
type Plan struct {
	Major    int
	Ops      []Op
	Len      int // output span length
	Inserted int
	Updated  int // Update and Assign ops
	Probes   int // search probes spent building the plan
}

// Stats summarizes a Rebuild.
type Stats struct {
	Groups   int // grouped keys applied
	Majors   int // touched majors
	Inserted int
	Updated  int
	Probes   int
}
