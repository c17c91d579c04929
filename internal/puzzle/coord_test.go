package puzzle_test

import (
	"testing"

	"github.com/vovakirdan/gravity-tiles/internal/puzzle"
)

func TestCoordAdjacent(t *testing.T) {
	origin := puzzle.C(1, 1)

	testCases := []struct {
		other    puzzle.Coord
		expected bool
	}{
		{puzzle.C(0, 0), true},
		{puzzle.C(1, 2), true},
		{puzzle.C(2, 0), true},
		{puzzle.C(1, 1), false},
		{puzzle.C(3, 1), false},
		{puzzle.C(1, -1), false},
	}

	for _, tc := range testCases {
		if got := origin.Adjacent(tc.other); got != tc.expected {
			t.Errorf("Adjacent(%v): expected %v, got %v", tc.other, tc.expected, got)
		}
	}
}

func TestPathValid(t *testing.T) {
	testCases := []struct {
		name     string
		path     puzzle.Path
		expected bool
	}{
		{"empty", puzzle.Path{}, false},
		{"single", puzzle.Path{puzzle.C(0, 0)}, true},
		{"diagonal walk", puzzle.Path{puzzle.C(0, 0), puzzle.C(1, 1), puzzle.C(2, 0)}, true},
		{"gap", puzzle.Path{puzzle.C(0, 0), puzzle.C(2, 0)}, false},
		{"revisit", puzzle.Path{puzzle.C(0, 0), puzzle.C(0, 1), puzzle.C(0, 0)}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.path.Valid(); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestPathExtendCopies(t *testing.T) {
	base := make(puzzle.Path, 1, 4)
	base[0] = puzzle.C(0, 0)

	a := base.Extend(puzzle.C(0, 1))
	b := base.Extend(puzzle.C(1, 0))

	if a[1] != puzzle.C(0, 1) {
		t.Errorf("sibling extension overwritten: got %v", a)
	}
	if b[1] != puzzle.C(1, 0) {
		t.Errorf("expected %v, got %v", puzzle.C(1, 0), b[1])
	}
	if len(base) != 1 {
		t.Errorf("base path changed length: %d", len(base))
	}
}

func TestPathString(t *testing.T) {
	p := puzzle.Path{puzzle.C(1, 0), puzzle.C(0, 0)}
	if p.String() != "(1,0)>(0,0)" {
		t.Errorf("expected (1,0)>(0,0), got %q", p.String())
	}
}
