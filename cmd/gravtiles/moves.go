package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-tiles/internal/platform/tui"
	"github.com/vovakirdan/gravity-tiles/internal/puzzle"
)

var flagShowPaths bool

var movesCmd = &cobra.Command{
	Use:   "moves <level>",
	Short: "Print every word playable on a level",
	Long: `Lists every path through touching tiles that spells a dictionary word on
the level's starting board, in enumeration order. No words are curated.

Examples:
  gravtiles moves classic-1
  gravtiles moves 2 --paths`,
	Args: cobra.ExactArgs(1),
	Run:  runMoves,
}

func init() {
	movesCmd.Flags().BoolVar(&flagShowPaths, "paths", false, "Print the tile path of each move")
}

func runMoves(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	lvl := loadLevels(cfg, args)[0]
	dict := loadDictionary(cfg)

	g, err := lvl.Grid()
	if err != nil {
		exitf("%v", err)
	}

	fmt.Println(lvl.Title())
	fmt.Println(tui.RenderGrid(g, tui.DefaultTheme()))
	fmt.Println()

	moves := puzzle.AllMoves(g, dict)
	if len(moves) == 0 {
		fmt.Println("No words can be played on this level.")
		return
	}

	for _, move := range moves {
		word, err := g.WordAt(move)
		if err != nil {
			exitf("%v", err)
		}
		if flagShowPaths {
			fmt.Printf("  %-12s %s\n", word, move)
		} else {
			fmt.Printf("  %s\n", word)
		}
	}
	fmt.Printf("\n%d moves\n", len(moves))
}
