package puzzle

// Oracle answers dictionary questions for move enumeration.
type Oracle interface {
	// IsWord reports whether s is exactly a dictionary word.
	IsWord(s string) bool
	// HasPrefix reports whether some longer dictionary word starts with s.
	HasPrefix(s string) bool
}

// neighbourOffsets lists the 8 directions in enumeration order:
// column delta outer, row delta inner.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// partial is a path under construction together with its word so far.
type partial struct {
	path Path
	word string
}

// AllMoves returns every path on g whose letters spell a dictionary word.
//
// The search grows a frontier of partial paths one tile at a time, starting
// from every tile (column 0 bottom to top, then column 1, ...). Partial paths
// that are words are emitted; partial paths that no longer prefix a word are
// dropped. Paths never revisit a tile, so the frontier always empties.
// The grid is not modified.
func AllMoves(g *Grid, o Oracle) []Path {
	var moves []Path

	frontier := make([]partial, 0, g.TileCount())
	for col, letters := range g.columns {
		for row, r := range letters {
			frontier = append(frontier, partial{
				path: Path{C(col, row)},
				word: string(r),
			})
		}
	}

	for len(frontier) > 0 {
		for _, p := range frontier {
			if o.IsWord(p.word) {
				moves = append(moves, p.path)
			}
		}

		var next []partial
		for _, p := range frontier {
			if !o.HasPrefix(p.word) {
				continue
			}
			last := p.path.Last()
			for _, d := range neighbourOffsets {
				c := last.Add(d[0], d[1])
				r, ok := g.Letter(c)
				if !ok || p.path.Contains(c) {
					continue
				}
				next = append(next, partial{
					path: p.path.Extend(c),
					word: p.word + string(r),
				})
			}
		}

		frontier = next
	}

	return moves
}
