package puzzle_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/gravity-tiles/internal/puzzle"
)

func TestNewGrid(t *testing.T) {
	g, err := puzzle.New("T\nAC")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if g.Width() != 2 {
		t.Errorf("expected width 2, got %d", g.Width())
	}
	if g.Height() != 2 {
		t.Errorf("expected height 2, got %d", g.Height())
	}

	testCases := []struct {
		coord  puzzle.Coord
		letter rune
		filled bool
	}{
		{puzzle.C(0, 0), 'A', true},
		{puzzle.C(0, 1), 'T', true},
		{puzzle.C(1, 0), 'C', true},
		{puzzle.C(1, 1), 0, false},
		{puzzle.C(2, 0), 0, false},
		{puzzle.C(-1, 0), 0, false},
	}

	for _, tc := range testCases {
		r, ok := g.Letter(tc.coord)
		if ok != tc.filled {
			t.Errorf("at %v: expected filled=%v, got %v", tc.coord, tc.filled, ok)
		}
		if tc.filled && r != tc.letter {
			t.Errorf("at %v: expected %q, got %q", tc.coord, tc.letter, r)
		}
	}
}

func TestNewGridGapsFall(t *testing.T) {
	// The B floats above an empty cell; columns are stacks so it lands on row 0.
	g, err := puzzle.New(" B\nA \nCD")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	cols := g.Columns()
	if string(cols[0]) != "CA" {
		t.Errorf("expected column 0 = CA, got %q", string(cols[0]))
	}
	if string(cols[1]) != "DB" {
		t.Errorf("expected column 1 = DB, got %q", string(cols[1]))
	}
}

func TestNewGridEmpty(t *testing.T) {
	for _, def := range []string{"", "   ", "\n\n", "  \n "} {
		_, err := puzzle.New(def)
		if !errors.Is(err, puzzle.ErrEmptyLevel) {
			t.Errorf("New(%q): expected ErrEmptyLevel, got %v", def, err)
		}
	}
}

func TestGridString(t *testing.T) {
	def := "C\nAT"
	g, err := puzzle.New(def)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.String() != def {
		t.Errorf("expected %q, got %q", def, g.String())
	}
}

func TestWordAtPathOrder(t *testing.T) {
	g, _ := puzzle.New("T\nAC")

	word, err := g.WordAt(puzzle.Path{puzzle.C(1, 0), puzzle.C(0, 0), puzzle.C(0, 1)})
	if err != nil {
		t.Fatalf("WordAt failed: %v", err)
	}
	if word != "CAT" {
		t.Errorf("expected CAT, got %q", word)
	}

	_, err = g.WordAt(puzzle.Path{puzzle.C(1, 1)})
	if !errors.Is(err, puzzle.ErrCellEmpty) {
		t.Errorf("expected ErrCellEmpty, got %v", err)
	}
}

func TestApplyMoveRemovesHighestFirst(t *testing.T) {
	// Column 0 bottom to top: A B C D
	g, _ := puzzle.New("D\nC\nB\nA")

	// Remove B and D by pre-removal coordinates; C must survive.
	if err := g.ApplyMove(puzzle.Path{puzzle.C(0, 1), puzzle.C(0, 3)}); err != nil {
		t.Fatalf("ApplyMove failed: %v", err)
	}

	if got := string(g.Columns()[0]); got != "AC" {
		t.Errorf("expected column AC, got %q", got)
	}
}

func TestApplyMoveRejectsBadPath(t *testing.T) {
	g, _ := puzzle.New("T\nAC")
	before := g.Clone()

	err := g.ApplyMove(puzzle.Path{puzzle.C(0, 0), puzzle.C(1, 1)})
	if !errors.Is(err, puzzle.ErrCellEmpty) {
		t.Errorf("expected ErrCellEmpty, got %v", err)
	}

	err = g.ApplyMove(puzzle.Path{puzzle.C(0, 0), puzzle.C(0, 0)})
	if !errors.Is(err, puzzle.ErrDuplicateCell) {
		t.Errorf("expected ErrDuplicateCell, got %v", err)
	}

	if !g.Equal(before) {
		t.Error("grid should be unchanged after a rejected move")
	}
	if g.Depth() != 0 {
		t.Errorf("expected no snapshots, got %d", g.Depth())
	}
}

func TestUndoInverseOfApply(t *testing.T) {
	g, _ := puzzle.New("ABC\nDEF\nGHI")
	start := g.Clone()

	paths := []puzzle.Path{
		{puzzle.C(0, 0)},
		{puzzle.C(1, 1), puzzle.C(2, 2)},
		{puzzle.C(0, 2), puzzle.C(1, 2), puzzle.C(2, 2)},
		{puzzle.C(2, 0), puzzle.C(2, 1), puzzle.C(2, 2)},
	}

	for _, p := range paths {
		if err := g.ApplyMove(p); err != nil {
			t.Fatalf("ApplyMove(%v) failed: %v", p, err)
		}
		if g.Depth() != 1 {
			t.Errorf("expected depth 1, got %d", g.Depth())
		}
		if !g.Undo() {
			t.Fatal("Undo returned false")
		}
		if !g.Equal(start) {
			t.Errorf("after undo of %v: expected %q, got %q", p, start.String(), g.String())
		}
	}
}

func TestUndoNestedMoves(t *testing.T) {
	g, _ := puzzle.New("AB\nCD")
	start := g.Clone()

	g.ApplyMove(puzzle.Path{puzzle.C(0, 0)})
	middle := g.Clone()
	g.ApplyMove(puzzle.Path{puzzle.C(1, 1)})

	g.Undo()
	if !g.Equal(middle) {
		t.Errorf("expected %q, got %q", middle.String(), g.String())
	}
	g.Undo()
	if !g.Equal(start) {
		t.Errorf("expected %q, got %q", start.String(), g.String())
	}
}

func TestUndoWithoutSnapshot(t *testing.T) {
	g, _ := puzzle.New("AB")
	before := g.Clone()

	if g.Undo() {
		t.Error("Undo on fresh grid should return false")
	}
	if !g.Equal(before) {
		t.Error("Undo on fresh grid should not change it")
	}
}

func TestIsCleared(t *testing.T) {
	g, _ := puzzle.New("T\nAC")

	if g.IsCleared() {
		t.Error("fresh grid should not be cleared")
	}

	g.ApplyMove(puzzle.Path{puzzle.C(1, 0), puzzle.C(0, 0)})
	if g.IsCleared() {
		t.Errorf("grid with leftover %q should not be cleared", g.String())
	}

	g.ApplyMove(puzzle.Path{puzzle.C(0, 0)})
	if !g.IsCleared() {
		t.Errorf("expected cleared grid, got %q", g.String())
	}
	if g.String() != "" {
		t.Errorf("cleared grid should render empty, got %q", g.String())
	}
}

func TestColumnsIsCopy(t *testing.T) {
	g, _ := puzzle.New("AB")
	cols := g.Columns()
	cols[0][0] = 'Z'

	if r, _ := g.Letter(puzzle.C(0, 0)); r != 'A' {
		t.Errorf("grid changed through Columns copy: got %q", r)
	}
}
