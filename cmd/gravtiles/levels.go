package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels",
	Long: `Shows the levels from the configured level file or directory, or the
built-in catalog when none is configured.`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	lvls := loadLevels(cfg, nil)

	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-3s  %-*s  %-5s  %-5s  %s\n", "#", maxIDLen, "ID", "Size", "Tiles", "Name")
	fmt.Printf("  %-3s  %-*s  %-5s  %-5s  %s\n", "-", maxIDLen, "--", "----", "-----", "----")

	for _, l := range lvls {
		size, tiles := "?", "?"
		if g, err := l.Grid(); err == nil {
			size = fmt.Sprintf("%dx%d", g.Width(), g.Height())
			tiles = fmt.Sprintf("%d", g.TileCount())
		}
		fmt.Printf("  %-3d  %-*s  %-5s  %-5s  %s\n", l.Index, maxIDLen, l.ID, size, tiles, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'gravtiles play <id>' to play a level or 'gravtiles solve <id>' to explore it.")
}
