// Package formats provides pluggable level file format parsers.
package formats

import (
	"strings"
)

// Level represents a parsed level ready for use.
// Grid holds the definition text with uppercase letters and no trailing
// whitespace on any line.
type Level struct {
	ID   string
	Name string
	Grid string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".yaml", ".yml"}
}

// NormalizeGrid uppercases a definition, strips trailing whitespace from
// each line and drops blank lines at the top and bottom.
func NormalizeGrid(def string) string {
	lines := strings.Split(strings.ReplaceAll(def, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(strings.ToUpper(line), " \t\r")
	}

	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
