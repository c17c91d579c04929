// Package puzzle holds the pure game model: the column grid of letter tiles,
// tile paths and move enumeration. It has no I/O and no UI dependencies.
package puzzle

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrEmptyLevel is returned when a level definition has no tiles.
	ErrEmptyLevel = errors.New("puzzle: level definition has no tiles")
	// ErrCellEmpty is returned when a path names a cell with no tile.
	ErrCellEmpty = errors.New("puzzle: cell is empty")
	// ErrDuplicateCell is returned when a path names the same cell twice.
	ErrDuplicateCell = errors.New("puzzle: cell repeated in path")
)

// Grid is a set of letter columns with an undo stack.
// Each column is a stack of letters; index 0 is the bottom tile.
type Grid struct {
	columns [][]rune
	history [][][]rune // most recent snapshot last
}

// New parses a level definition into a grid.
// Lines are read top to bottom; the last line becomes row 0. A space is an
// empty cell and any other rune is a tile. Tiles above a gap fall onto the
// tile below, since a column only records its letters in order.
func New(def string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(def, "\r\n", "\n"), "\n")

	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}

	columns := make([][]rune, width)
	tiles := 0
	for i := len(lines) - 1; i >= 0; i-- {
		for col, r := range []rune(lines[i]) {
			if r == ' ' {
				continue
			}
			columns[col] = append(columns[col], r)
			tiles++
		}
	}

	if tiles == 0 {
		return nil, ErrEmptyLevel
	}

	return &Grid{columns: columns}, nil
}

// FromColumns builds a grid from explicit columns (bottom to top).
// The input is copied.
func FromColumns(columns [][]rune) *Grid {
	return &Grid{columns: cloneColumns(columns)}
}

// Width returns the number of columns, including empty ones.
func (g *Grid) Width() int {
	return len(g.columns)
}

// Height returns the height of the tallest column.
func (g *Grid) Height() int {
	h := 0
	for _, col := range g.columns {
		h = max(h, len(col))
	}
	return h
}

// ColumnHeight returns the number of tiles in a column, or 0 if out of range.
func (g *Grid) ColumnHeight(col int) int {
	if col < 0 || col >= len(g.columns) {
		return 0
	}
	return len(g.columns[col])
}

// Occupied returns true if c holds a tile.
func (g *Grid) Occupied(c Coord) bool {
	return c.Col >= 0 && c.Col < len(g.columns) && c.Row >= 0 && c.Row < len(g.columns[c.Col])
}

// Letter returns the tile at c.
func (g *Grid) Letter(c Coord) (rune, bool) {
	if !g.Occupied(c) {
		return 0, false
	}
	return g.columns[c.Col][c.Row], true
}

// Columns returns a deep copy of the columns.
func (g *Grid) Columns() [][]rune {
	return cloneColumns(g.columns)
}

// TileCount returns the number of tiles left.
func (g *Grid) TileCount() int {
	n := 0
	for _, col := range g.columns {
		n += len(col)
	}
	return n
}

// IsCleared returns true if every column is empty.
func (g *Grid) IsCleared() bool {
	for _, col := range g.columns {
		if len(col) > 0 {
			return false
		}
	}
	return true
}

// WordAt concatenates the letters at p in path order.
func (g *Grid) WordAt(p Path) (string, error) {
	var sb strings.Builder
	for _, c := range p {
		r, ok := g.Letter(c)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrCellEmpty, c)
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// ApplyMove removes the tiles named by p after pushing an undo snapshot.
// The grid is left untouched if any cell is empty or repeated.
func (g *Grid) ApplyMove(p Path) error {
	for i, c := range p {
		if !g.Occupied(c) {
			return fmt.Errorf("%w: %s", ErrCellEmpty, c)
		}
		if p[:i].Contains(c) {
			return fmt.Errorf("%w: %s", ErrDuplicateCell, c)
		}
	}

	g.history = append(g.history, cloneColumns(g.columns))

	for _, c := range p.removalOrder() {
		g.columns[c.Col] = slices.Delete(g.columns[c.Col], c.Row, c.Row+1)
	}
	return nil
}

// Undo restores the state before the most recent ApplyMove.
// Returns false (and does nothing) when there is no snapshot.
func (g *Grid) Undo() bool {
	if len(g.history) == 0 {
		return false
	}
	last := len(g.history) - 1
	g.columns = g.history[last]
	g.history = g.history[:last]
	return true
}

// Depth returns the number of moves that can be undone.
func (g *Grid) Depth() int {
	return len(g.history)
}

// Clone returns a deep copy of the current state without undo history.
func (g *Grid) Clone() *Grid {
	return FromColumns(g.columns)
}

// Equal returns true if both grids have the same columns and contents.
// Undo history is not compared.
func (g *Grid) Equal(other *Grid) bool {
	if len(g.columns) != len(other.columns) {
		return false
	}
	for i := range g.columns {
		if !slices.Equal(g.columns[i], other.columns[i]) {
			return false
		}
	}
	return true
}

// String renders the grid in level-definition form: top row first, spaces
// for empty cells, trailing spaces trimmed. A cleared grid renders as "".
func (g *Grid) String() string {
	h := g.Height()
	lines := make([]string, 0, h)
	for row := h - 1; row >= 0; row-- {
		line := make([]rune, len(g.columns))
		for col := range g.columns {
			if r, ok := g.Letter(C(col, row)); ok {
				line[col] = r
			} else {
				line[col] = ' '
			}
		}
		lines = append(lines, strings.TrimRight(string(line), " "))
	}
	return strings.Join(lines, "\n")
}

func cloneColumns(columns [][]rune) [][]rune {
	out := make([][]rune, len(columns))
	for i, col := range columns {
		out[i] = slices.Clone(col)
		if out[i] == nil {
			out[i] = []rune{}
		}
	}
	return out
}
