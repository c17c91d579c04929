package tui

import (
	"github.com/vovakirdan/gravity-tiles/internal/core"
	"github.com/vovakirdan/gravity-tiles/internal/puzzle"
)

// cellWidth is the number of screen columns per grid column.
const cellWidth = 2

// BoardSize returns the screen size needed to draw a width x height grid
// inside a frame.
func BoardSize(width, height int) (int, int) {
	return width*cellWidth + 3, max(height, 1) + 2
}

// BoardView is what DrawBoard needs to paint one frame.
type BoardView struct {
	Grid   *puzzle.Grid
	Height int // rows to draw; usually the starting height of the level
	Cursor puzzle.Coord
	Path   puzzle.Path
	// ShowCursor is false for static renders such as the curation prompt.
	ShowCursor bool
}

// DrawBoard paints a framed grid with its top-left corner at (x, y).
// Row 0 of the grid is drawn at the bottom.
func DrawBoard(s *core.Screen, x, y int, v BoardView) {
	w, h := BoardSize(v.Grid.Width(), v.Height)
	s.DrawBox(core.NewRect(x, y, w, h), core.ColorFrame)

	rows := h - 2
	for row := 0; row < rows; row++ {
		sy := y + 1 + (rows - 1 - row)
		for col := 0; col < v.Grid.Width(); col++ {
			sx := x + 2 + col*cellWidth
			c := puzzle.C(col, row)

			r, ok := v.Grid.Letter(c)
			if !ok {
				r = '·'
			}

			onPath := v.Path.Contains(c)
			underCursor := v.ShowCursor && v.Cursor == c

			color := core.ColorMuted
			switch {
			case underCursor && onPath:
				color = core.ColorCursorOnPath
			case underCursor:
				color = core.ColorCursor
			case onPath:
				color = core.ColorSelected
			case ok:
				color = core.ColorTile
			}
			s.SetColored(sx, sy, r, color)
		}
	}
}

// RenderGrid draws a grid on its own screen, without cursor or selection.
func RenderGrid(g *puzzle.Grid, theme Theme) string {
	w, h := BoardSize(g.Width(), g.Height())
	s := core.NewScreen(w, h)
	DrawBoard(s, 0, 0, BoardView{Grid: g, Height: g.Height()})
	return RenderScreen(s, theme)
}
