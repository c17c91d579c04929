// gravtiles is a toolkit for a falling-letter word puzzle: tiles sit in
// columns, a word is traced through neighbouring tiles, and removing it lets
// the tiles above fall.
//
// Usage:
//
//	gravtiles levels               - List levels
//	gravtiles moves <level>        - Print every word playable on a level
//	gravtiles solve [level...]     - Explore levels, curating new words
//	gravtiles solutions [level]    - Browse recorded solutions
//	gravtiles decisions            - Show recent curation answers
//	gravtiles ledger list|add|rm   - Maintain the approved-word ledger
//	gravtiles play [level]         - Play in the terminal
//	gravtiles serve                - Serve play mode over SSH
//
// Global flags:
//
//	--config <path>  - Config file (default: search ~/.gravtiles, ./configs)
//	--db <path>      - Run history database
//	--dict <path>    - Dictionary word list
//	--ledger <path>  - Approved-word ledger
//	--levels <path>  - Level file or directory
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-tiles/internal/config"
	"github.com/vovakirdan/gravity-tiles/internal/levels"
	"github.com/vovakirdan/gravity-tiles/internal/words"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagDict    string
	flagLedger  string
	flagLevels  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gravtiles",
	Short: "Gravity Tiles - a falling-letter word puzzle and its level solver",
	Long: `Gravity Tiles is a word puzzle played on columns of letter tiles.
Trace a word through touching tiles; the tiles vanish and the ones above fall.
Clear the board to finish the level.

Available commands:
  levels     - List levels
  moves      - Print every word playable on a level
  solve      - Explore levels exhaustively, curating new words
  solutions  - Browse solutions found by solve
  decisions  - Show recent curation answers
  ledger     - Maintain the approved-word ledger
  play       - Play in the terminal
  serve      - Serve play mode over SSH

Examples:
  gravtiles levels
  gravtiles solve classic-1 --depth 4
  gravtiles play
  gravtiles serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDict, "dict", "", "Path to dictionary word list (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLedger, "ledger", "", "Path to approved-word ledger (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level file or directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(movesCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(solutionsCmd)
	rootCmd.AddCommand(decisionsCmd)
	rootCmd.AddCommand(ledgerCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		exitf("%v", err)
	}

	if flagDBPath != "" {
		cfg.DB = config.ExpandPath(flagDBPath)
	}
	if flagDict != "" {
		cfg.Dictionary = config.ExpandPath(flagDict)
	}
	if flagLedger != "" {
		cfg.Ledger = config.ExpandPath(flagLedger)
	}
	if flagLevels != "" {
		cfg.Levels = config.ExpandPath(flagLevels)
	}
	return cfg
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gravtiles",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadDictionary(cfg config.Config) *words.Dictionary {
	dict, err := words.LoadDictionary(cfg.Dictionary)
	if err != nil {
		exitf("%v", err)
	}
	return dict
}

// loadLevels returns the levels named by ids, or all levels when ids is empty.
func loadLevels(cfg config.Config, ids []string) []levels.Level {
	loader := levels.NewLoader(cfg.Levels)
	if len(ids) == 0 {
		all, err := loader.LoadAll()
		if err != nil {
			exitf("cannot load levels: %v", err)
		}
		if len(all) == 0 {
			exitf("no levels found in %s", cfg.Levels)
		}
		return all
	}

	out := make([]levels.Level, 0, len(ids))
	for _, id := range ids {
		lvl, err := loader.LoadByID(id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Run 'gravtiles levels' to see available levels.")
			exitf("%v", err)
		}
		out = append(out, lvl)
	}
	return out
}
