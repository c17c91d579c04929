package formats

import (
	"strings"
)

// CatalogDelimiter separates levels in a catalog file.
const CatalogDelimiter = "——————————"

// ParseCatalog parses a plain text catalog holding many levels.
// Everything after a '#' on a line is a comment. Levels that are blank once
// comments are removed are dropped. IDs and names are left empty; the loader
// assigns them from the file name and position.
func ParseCatalog(data []byte) []Level {
	var levels []Level
	for _, chunk := range strings.Split(string(data), CatalogDelimiter) {
		lines := strings.Split(chunk, "\n")
		for i, line := range lines {
			if idx := strings.IndexByte(line, '#'); idx >= 0 {
				line = line[:idx]
			}
			lines[i] = line
		}

		grid := NormalizeGrid(strings.Join(lines, "\n"))
		if strings.TrimSpace(grid) == "" {
			continue
		}
		levels = append(levels, Level{Grid: grid})
	}
	return levels
}
