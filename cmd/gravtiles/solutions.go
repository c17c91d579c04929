package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravity-tiles/internal/levels"
	"github.com/vovakirdan/gravity-tiles/internal/platform/tui"
	"github.com/vovakirdan/gravity-tiles/internal/storage"
)

var (
	flagSolutionsPlain bool
	flagSolutionsLimit int
	flagDecisionsLimit int
)

var solutionsCmd = &cobra.Command{
	Use:   "solutions [level]",
	Short: "Browse solutions recorded by solve",
	Long: `Shows the solutions recorded for each level, shortest first, together
with the level's run history and the best clears from play mode.

On a terminal this opens a browser (left/right to switch level). Use --plain,
or pipe the output, for a text listing.

Examples:
  gravtiles solutions
  gravtiles solutions classic-3
  gravtiles solutions --plain --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolutions,
}

var decisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Show recent curation answers",
	Long: `Lists the most recent approve/reject answers given during solve, newest
first, with the words that had been played before the prompt.`,
	Args: cobra.NoArgs,
	Run:  runDecisions,
}

func init() {
	solutionsCmd.Flags().BoolVar(&flagSolutionsPlain, "plain", false, "Print a text listing instead of the browser")
	solutionsCmd.Flags().IntVar(&flagSolutionsLimit, "limit", 10, "Maximum entries per level in the text listing")
	decisionsCmd.Flags().IntVar(&flagDecisionsLimit, "limit", 20, "Maximum decisions to show")
}

func openStore(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		exitf("cannot open run history: %v", err)
	}
	return store
}

func runSolutions(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	all := loadLevels(cfg, nil)

	start := 0
	if len(args) == 1 {
		lvl := loadLevels(cfg, args)[0]
		for i, l := range all {
			if l.ID == lvl.ID {
				start = i
			}
		}
	}

	store := openStore(cfg.DB)
	defer store.Close()

	if !flagSolutionsPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, all, start, width, height); err != nil {
			exitf("%v", err)
		}
		return
	}

	selected := all
	if len(args) == 1 {
		selected = all[start : start+1]
	}
	for _, lvl := range selected {
		if err := printLevelHistory(store, lvl); err != nil {
			exitf("%v", err)
		}
	}
}

func printLevelHistory(store *storage.Store, lvl levels.Level) error {
	stats, err := store.GetLevelStats(lvl.ID)
	if err != nil {
		return err
	}
	sols, err := store.Solutions(lvl.ID, flagSolutionsLimit)
	if err != nil {
		return err
	}
	clears, err := store.BestClears(lvl.ID, flagSolutionsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", lvl.Title())
	fmt.Printf("  runs: %d  solutions: %d  player clears: %d\n", stats.Runs, stats.Solutions, stats.Clears)

	if len(sols) == 0 {
		fmt.Println("  No solutions recorded yet.")
	}
	for i, sol := range sols {
		fmt.Printf("  %3d. %s\n", i+1, strings.Join(sol.Words, " "))
	}

	if len(clears) > 0 {
		fmt.Println("  Best clears:")
		for _, c := range clears {
			fmt.Printf("       %-12s %2d words  %2d undos  %s\n",
				c.Player, c.Words, c.Undos, c.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
	fmt.Println()
	return nil
}

func runDecisions(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openStore(cfg.DB)
	defer store.Close()

	decisions, err := store.Decisions(flagDecisionsLimit)
	if err != nil {
		exitf("%v", err)
	}
	if len(decisions) == 0 {
		fmt.Println("No decisions recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-12s  %s\n", "Date", "Answer", "Word", "After")
	fmt.Printf("  %-16s  %-8s  %-12s  %s\n", "----", "------", "----", "-----")
	for _, d := range decisions {
		answer := "reject"
		if d.Approved {
			answer = "approve"
		}
		after := strings.Join(d.Context, " ")
		if after == "" {
			after = "(start)"
		}
		fmt.Printf("  %-16s  %-8s  %-12s  %s [%s]\n",
			d.CreatedAt.Format("2006-01-02 15:04"), answer, d.Word, after, d.LevelID)
	}
}
