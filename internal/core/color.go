package core

// Color identifies how a screen cell is painted.
// The platform layer maps each color to a terminal style.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorTile          // a letter tile
	ColorSelected      // a tile on the current path
	ColorCursor        // the tile under the cursor
	ColorCursorOnPath  // the cursor resting on a selected tile
	ColorFrame         // board border
	ColorMuted         // secondary text
	ColorTitle
	ColorSuccess
	ColorError
)

// Cell is one character of the screen with its color.
type Cell struct {
	Rune  rune
	Color Color
}
