package puzzle_test

import (
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/vovakirdan/gravity-tiles/internal/puzzle"
)

// listOracle is a minimal sorted-list oracle for enumeration tests.
type listOracle []string

func newListOracle(words ...string) listOracle {
	sorted := slices.Clone(words)
	sort.Strings(sorted)
	return listOracle(slices.Compact(sorted))
}

func (o listOracle) IsWord(s string) bool {
	_, found := slices.BinarySearch(o, s)
	return found
}

func (o listOracle) HasPrefix(s string) bool {
	for _, w := range o {
		if len(w) > len(s) && strings.HasPrefix(w, s) {
			return true
		}
	}
	return false
}

func moveWords(t *testing.T, g *puzzle.Grid, moves []puzzle.Path) []string {
	t.Helper()
	words := make([]string, 0, len(moves))
	for _, m := range moves {
		w, err := g.WordAt(m)
		if err != nil {
			t.Fatalf("WordAt(%v) failed: %v", m, err)
		}
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func TestAllMovesCompleteness(t *testing.T) {
	// Column 0 bottom to top: A, T. Column 1: C.
	g := puzzle.FromColumns([][]rune{{'A', 'T'}, {'C'}})
	oracle := newListOracle("AT", "CAT")

	moves := puzzle.AllMoves(g, oracle)
	words := moveWords(t, g, moves)

	expected := []string{"AT", "CAT"}
	if !slices.Equal(words, expected) {
		t.Errorf("expected %v, got %v", expected, words)
	}

	for _, m := range moves {
		w, _ := g.WordAt(m)
		if w == "CAT" {
			want := puzzle.Path{puzzle.C(1, 0), puzzle.C(0, 0), puzzle.C(0, 1)}
			if !slices.Equal(m, want) {
				t.Errorf("expected CAT path %v, got %v", want, m)
			}
		}
	}
}

func TestAllMovesPathsAreValid(t *testing.T) {
	g, _ := puzzle.New("TAC\nCAT\nACT")
	oracle := newListOracle("ACT", "CAT", "TAC", "AT", "TA")

	moves := puzzle.AllMoves(g, oracle)
	if len(moves) == 0 {
		t.Fatal("expected some moves")
	}

	for _, m := range moves {
		if !m.Valid() {
			t.Errorf("invalid path %v", m)
		}
		w, err := g.WordAt(m)
		if err != nil {
			t.Fatalf("WordAt(%v) failed: %v", m, err)
		}
		if !oracle.IsWord(w) {
			t.Errorf("path %v spells %q, which is not a word", m, w)
		}
	}
}

func TestAllMovesCountsEveryPath(t *testing.T) {
	// Two rows of CAT: every C, A, T is adjacent to every next letter.
	g, _ := puzzle.New("CAT\nCAT")
	oracle := newListOracle("CAT")

	moves := puzzle.AllMoves(g, oracle)
	if len(moves) != 8 {
		t.Errorf("expected 8 CAT paths, got %d", len(moves))
	}
}

func TestAllMovesColumnMajorOrder(t *testing.T) {
	g, _ := puzzle.New("BA\nAB")
	oracle := newListOracle("A", "B")

	moves := puzzle.AllMoves(g, oracle)
	expected := []puzzle.Path{
		{puzzle.C(0, 0)},
		{puzzle.C(0, 1)},
		{puzzle.C(1, 0)},
		{puzzle.C(1, 1)},
	}
	if len(moves) != len(expected) {
		t.Fatalf("expected %d moves, got %d", len(expected), len(moves))
	}
	for i := range expected {
		if !slices.Equal(moves[i], expected[i]) {
			t.Errorf("move %d: expected %v, got %v", i, expected[i], moves[i])
		}
	}
}

func TestAllMovesNoRevisit(t *testing.T) {
	// "ABA" would need to reuse the single A.
	g, _ := puzzle.New("AB")
	oracle := newListOracle("ABA")

	if moves := puzzle.AllMoves(g, oracle); len(moves) != 0 {
		t.Errorf("expected no moves, got %v", moves)
	}
}

func TestAllMovesNonAdjacent(t *testing.T) {
	// C and T are two columns apart.
	g, _ := puzzle.New("C T")
	oracle := newListOracle("CT")

	if moves := puzzle.AllMoves(g, oracle); len(moves) != 0 {
		t.Errorf("expected no moves, got %v", moves)
	}
}

func TestAllMovesDoesNotMutate(t *testing.T) {
	g, _ := puzzle.New("CAT\nDOG")
	before := g.Clone()

	puzzle.AllMoves(g, newListOracle("CAT", "DOG", "COD", "TAG"))

	if !g.Equal(before) || g.Depth() != 0 {
		t.Error("AllMoves must not change the grid")
	}
}

func TestAllMovesEmptyGrid(t *testing.T) {
	g := puzzle.FromColumns([][]rune{{}, {}})
	if moves := puzzle.AllMoves(g, newListOracle("A")); len(moves) != 0 {
		t.Errorf("expected no moves on empty grid, got %v", moves)
	}
}
