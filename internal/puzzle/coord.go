package puzzle

import (
	"fmt"
	"slices"
	"strings"
)

// Coord addresses a tile by column and row.
// Row 0 is the bottom of a column; rows grow upward.
type Coord struct {
	Col int
	Row int
}

// C is a convenience constructor for Coord.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Add returns a new Coord offset by (dc, dr).
func (c Coord) Add(dc, dr int) Coord {
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// Adjacent reports whether other is one of the 8 neighbours of c.
// A coordinate is not adjacent to itself.
func (c Coord) Adjacent(other Coord) bool {
	dc := abs(c.Col - other.Col)
	dr := abs(c.Row - other.Row)
	return dc <= 1 && dr <= 1 && (dc != 0 || dr != 0)
}

// compare orders coordinates by column, then row.
func (c Coord) compare(other Coord) int {
	if c.Col != other.Col {
		return c.Col - other.Col
	}
	return c.Row - other.Row
}

// Path is an ordered selection of tiles. Its word is read in path order.
type Path []Coord

// Last returns the final coordinate of the path.
// The path must not be empty.
func (p Path) Last() Coord {
	return p[len(p)-1]
}

// Contains returns true if c is already on the path.
func (p Path) Contains(c Coord) bool {
	return slices.Contains(p, c)
}

// Extend returns a copy of the path with c appended.
// The receiver is never modified, so sibling extensions don't share storage.
func (p Path) Extend(c Coord) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, c)
}

// Clone returns a copy of the path.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Valid reports whether the path is non-empty, never repeats a coordinate,
// and every step moves to one of the 8 neighbouring cells.
func (p Path) Valid() bool {
	if len(p) == 0 {
		return false
	}
	for i := 1; i < len(p); i++ {
		if !p[i-1].Adjacent(p[i]) {
			return false
		}
		if p[:i].Contains(p[i]) {
			return false
		}
	}
	return true
}

// removalOrder returns the coordinates sorted by descending (column, row).
// Deleting in this order never shifts a row index that is still pending.
func (p Path) removalOrder() Path {
	sorted := p.Clone()
	slices.SortFunc(sorted, func(a, b Coord) int {
		return b.compare(a)
	})
	return sorted
}

// String renders the path as "(c,r)>(c,r)>...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, ">")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
