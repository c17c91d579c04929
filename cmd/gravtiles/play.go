package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-tiles/internal/platform/tui"
	"github.com/vovakirdan/gravity-tiles/internal/storage"
)

var (
	flagHints bool
	flagMono  bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play in the terminal",
	Long: `Play the levels in order, starting from the named level or the first one.

Controls:
  Arrows/hjkl  - Move the cursor
  Space        - Select the tile (again to drop it and the tiles after it)
  Enter        - Play the selected word
  U            - Undo the last word
  Esc          - Clear the selection
  N            - Next level (once cleared)
  ?            - Toggle hints
  Q/Ctrl+C     - Quit

Examples:
  gravtiles play
  gravtiles play classic-3 --hints`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagHints, "hints", false, "Show hints from the start")
	playCmd.Flags().BoolVar(&flagMono, "mono", false, "Use the monochrome theme")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger()
	all := loadLevels(cfg, nil)
	dict := loadDictionary(cfg)

	start := 0
	if len(args) == 1 {
		lvl := loadLevels(cfg, args)[0]
		for i, l := range all {
			if l.ID == lvl.ID {
				start = i
			}
		}
	}

	store, err := storage.Open(cfg.DB)
	if err != nil {
		logger.Warn("could not open run history, clears will not be recorded", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	opts := tui.PlayOptions{
		ShowHints: cfg.Play.ShowHints || flagHints,
		OnClear: func(ev tui.ClearEvent) {
			if store == nil {
				return
			}
			if _, err := store.SaveClear(ev.LevelID, ev.Player, len(ev.Words), ev.Undos); err != nil {
				logger.Warn("could not record clear", "level", ev.LevelID, "error", err)
			}
		},
	}
	if flagMono {
		theme := tui.MonochromeTheme()
		opts.Theme = &theme
	}

	if err := tui.RunPlay(all, start, dict, opts); err != nil {
		exitf("%v", err)
	}
}
