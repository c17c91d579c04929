package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right() = %d, expected 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 20, 10)

	inner := outer.Centered(6, 4)
	if inner != NewRect(7, 3, 6, 4) {
		t.Errorf("Centered(6, 4) = %+v, expected {7 3 6 4}", inner)
	}

	// Too large: pinned to the top-left of the outer rect.
	big := outer.Centered(30, 12)
	if big.X != 0 || big.Y != 0 {
		t.Errorf("Centered(30, 12) should start at origin, got %+v", big)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestActionDelta(t *testing.T) {
	tests := []struct {
		action Action
		dc, dr int
	}{
		{ActionUp, 0, 1},
		{ActionDown, 0, -1},
		{ActionLeft, -1, 0},
		{ActionRight, 1, 0},
		{ActionSubmit, 0, 0},
	}

	for _, tc := range tests {
		dc, dr := tc.action.Delta()
		if dc != tc.dc || dr != tc.dr {
			t.Errorf("%s.Delta() = (%d, %d), expected (%d, %d)", tc.action, dc, dr, tc.dc, tc.dr)
		}
	}
}
