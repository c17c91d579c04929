package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravity-tiles/internal/config"
	"github.com/vovakirdan/gravity-tiles/internal/platform/tui"
	"github.com/vovakirdan/gravity-tiles/internal/solver"
	"github.com/vovakirdan/gravity-tiles/internal/storage"
	"github.com/vovakirdan/gravity-tiles/internal/words"
)

var (
	flagDepth  int
	flagNoMemo bool
	flagPreset string
	flagPlain  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [level...]",
	Short: "Explore levels and record every way to clear them",
	Long: `Explore every sequence of words that clears each level (all levels when
none are named). Words that are not yet in the approved-word ledger are shown
to you once: approve them to add them to the ledger, or reject them to skip
them for the rest of the run.

Prompt keys:
  y  - Approve the word (saved to the ledger immediately)
  n  - Reject the word for this run
  l  - Look the word up in the configured reference
  q  - Abort the run

Presets:
  quick      - Stop after 4 words, skip repeated boards
  thorough   - No depth limit, skip repeated boards
  exhaustive - No depth limit, revisit repeated boards (reports every order)

Examples:
  gravtiles solve
  gravtiles solve classic-2 --depth 3
  gravtiles solve --preset exhaustive classic-1
  gravtiles solve --plain < answers.txt`,
	Run: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagDepth, "depth", 0, "Maximum words per branch (0 = unlimited, overrides config)")
	solveCmd.Flags().BoolVar(&flagNoMemo, "no-memo", false, "Revisit boards already explored in this run")
	solveCmd.Flags().StringVar(&flagPreset, "preset", "", "Exploration preset: quick, thorough, exhaustive")
	solveCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use line prompts even on a terminal")
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
			exitf("%v", err)
		}
	}
	if cmd.Flags().Changed("depth") {
		cfg.Explore.MaxDepth = flagDepth
	}
	if flagNoMemo {
		cfg.Explore.Memoize = false
	}

	logger := newLogger()
	lvls := loadLevels(cfg, args)
	dict := loadDictionary(cfg)

	ledger, err := words.OpenLedger(cfg.Ledger)
	if err != nil {
		exitf("%v", err)
	}

	store, err := storage.Open(cfg.DB)
	if err != nil {
		logger.Warn("could not open run history, results will not be recorded", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := &session{store: store, logger: logger}
	explorer := solver.New(dict, ledger, newDecider(cfg), solver.Options{
		MaxDepth:   cfg.Explore.MaxDepth,
		Memoize:    cfg.Explore.Memoize,
		OnSolution: s.solution,
		OnDecision: s.decision,
		Logger:     logger,
	})

	logger.Debug("solve", "levels", len(lvls), "dictionary", dict.Len(),
		"ledger", ledger.Len(), "max_depth", cfg.Explore.MaxDepth, "memoize", cfg.Explore.Memoize)

	for _, lvl := range lvls {
		g, err := lvl.Grid()
		if err != nil {
			exitf("%v", err)
		}

		s.begin(lvl.ID)
		fmt.Printf("== %s ==\n", lvl.Title())

		stats, err := explorer.Explore(ctx, lvl.ID, g)
		s.finish(stats, err)

		if err != nil {
			if errors.Is(err, solver.ErrAborted) || errors.Is(err, context.Canceled) {
				fmt.Println("Run aborted.")
				os.Exit(1)
			}
			exitf("%v", err)
		}

		fmt.Printf("%d solutions, %d boards, %d new words approved, %d rejected\n\n",
			stats.Solutions, stats.Nodes, stats.Approved, stats.Rejected)
	}
}

// newDecider picks the full-screen prompt on a terminal and line prompts
// otherwise.
func newDecider(cfg config.Config) solver.Decider {
	var lookup tui.Lookup
	if cfg.LookupURL != "" {
		lookup = tui.BrowserLookup(cfg.LookupFor)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive && !flagPlain {
		return tui.NewTeaDecider(lookup)
	}
	return tui.NewLineDecider(os.Stdin, os.Stdout, lookup)
}

// session records the progress of one solve invocation.
type session struct {
	store  *storage.Store
	logger *log.Logger
	level  string
	runID  int64
}

func (s *session) begin(levelID string) {
	s.level = levelID
	s.runID = 0
	if s.store == nil {
		return
	}

	id, err := s.store.BeginRun(levelID)
	if err != nil {
		s.logger.Warn("could not record run", "level", levelID, "error", err)
		return
	}
	s.runID = id
}

func (s *session) finish(stats solver.Stats, err error) {
	if s.store == nil || s.runID == 0 {
		return
	}

	status := storage.RunFinished
	switch {
	case errors.Is(err, solver.ErrAborted), errors.Is(err, context.Canceled):
		status = storage.RunAborted
	case err != nil:
		status = storage.RunFailed
	}

	if ferr := s.store.FinishRun(s.runID, status, runStats(stats)); ferr != nil {
		s.logger.Warn("could not finish run", "run", s.runID, "error", ferr)
	}
}

func (s *session) solution(sol solver.Solution) error {
	fmt.Printf("  %s\n", strings.Join(sol.Words, " "))
	if s.store == nil || s.runID == 0 {
		return nil
	}

	added, err := s.store.SaveSolution(s.runID, sol.Level, sol.Words)
	if err != nil {
		s.logger.Warn("could not record solution", "level", sol.Level, "error", err)
		return nil
	}
	if !added {
		s.logger.Debug("solution already recorded", "level", sol.Level, "words", sol.Words)
	}
	return nil
}

func (s *session) decision(p solver.Prompt, d solver.Decision) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveDecision(p.Level, p.Word, d == solver.Approve, p.Context); err != nil {
		s.logger.Warn("could not record decision", "word", p.Word, "error", err)
	}
	return nil
}

func runStats(s solver.Stats) storage.RunStats {
	return storage.RunStats{
		Nodes:        s.Nodes,
		MemoHits:     s.MemoHits,
		DepthCutoffs: s.DepthCutoffs,
		Moves:        s.Moves,
		Prompts:      s.Prompts,
		Approved:     s.Approved,
		Rejected:     s.Rejected,
		Solutions:    s.Solutions,
	}
}
