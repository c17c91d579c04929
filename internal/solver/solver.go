// Package solver explores a level exhaustively, curating every word it tries
// against the approved-word ledger and reporting each way to clear the grid.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gravity-tiles/internal/puzzle"
)

// ErrAborted is returned by a Decider when the curator stops the run.
var ErrAborted = errors.New("solver: run aborted")

// Oracle is the dictionary as seen by the explorer.
type Oracle interface {
	puzzle.Oracle
	// ForgetLast drops the most recent word passed to IsWord.
	ForgetLast() string
}

// Ledger is the approved-word list.
type Ledger interface {
	Contains(word string) bool
	Approve(word string) error
}

// Decision is a curator's answer for an unapproved word.
type Decision int

const (
	Reject Decision = iota
	Approve
)

func (d Decision) String() string {
	if d == Approve {
		return "approve"
	}
	return "reject"
}

// Prompt describes a word awaiting a decision.
type Prompt struct {
	Word    string
	Context []string // words already applied on this branch
	Level   string
	Board   *puzzle.Grid // snapshot of the grid before the move
	Path    puzzle.Path  // tiles spelling Word on Board
}

// Decider asks a curator about a word the ledger does not know.
type Decider interface {
	Decide(ctx context.Context, p Prompt) (Decision, error)
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func(ctx context.Context, p Prompt) (Decision, error)

// Decide calls f.
func (f DeciderFunc) Decide(ctx context.Context, p Prompt) (Decision, error) {
	return f(ctx, p)
}

// Solution is a sequence of moves that clears the grid.
type Solution struct {
	Level string
	Words []string
	Paths []puzzle.Path
}

// Options tune a search.
type Options struct {
	// MaxDepth stops descending once this many words are applied. 0 = unlimited.
	MaxDepth int
	// Memoize skips grid layouts already explored in this run.
	Memoize bool
	// OnSolution receives every solution. An error aborts the run.
	OnSolution func(Solution) error
	// OnDecision receives every curator answer. An error aborts the run.
	OnDecision func(Prompt, Decision) error
	Logger     *log.Logger
}

// Stats counts what a run did.
type Stats struct {
	Nodes        int
	MemoHits     int
	DepthCutoffs int
	Moves        int
	Prompts      int
	Approved     int
	Rejected     int
	Solutions    int
}

// Explorer runs depth-first searches over a grid.
type Explorer struct {
	oracle  Oracle
	ledger  Ledger
	decider Decider
	opts    Options
	logger  *log.Logger
}

// New creates an explorer. The oracle, ledger and decider are shared across
// calls to Explore, so rejections and approvals carry over between levels.
func New(oracle Oracle, ledger Ledger, decider Decider, opts Options) *Explorer {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Explorer{
		oracle:  oracle,
		ledger:  ledger,
		decider: decider,
		opts:    opts,
		logger:  logger,
	}
}

// Explore searches every accepted move sequence from g's current state.
// When it returns, g is back in the state it started in.
func (e *Explorer) Explore(ctx context.Context, level string, g *puzzle.Grid) (Stats, error) {
	r := &run{
		Explorer: e,
		ctx:      ctx,
		level:    level,
		grid:     g,
	}
	if e.opts.Memoize {
		r.visited = make(map[string]int)
	}

	e.logger.Debug("explore", "level", level, "tiles", g.TileCount(),
		"max_depth", e.opts.MaxDepth, "memoize", e.opts.Memoize)

	err := r.visit()
	e.logger.Debug("explore done", "level", level, "nodes", r.stats.Nodes,
		"solutions", r.stats.Solutions, "err", err)
	return r.stats, err
}

// run holds the state of one Explore call.
type run struct {
	*Explorer
	ctx     context.Context
	level   string
	grid    *puzzle.Grid
	words   []string
	paths   []puzzle.Path
	visited map[string]int // layout -> shallowest depth expanded
	stats   Stats
}

func (r *run) visit() error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	r.stats.Nodes++

	if r.grid.IsCleared() {
		return r.report()
	}

	if r.visited != nil {
		key := r.grid.String()
		depth := len(r.words)
		if prev, seen := r.visited[key]; seen && (r.opts.MaxDepth == 0 || prev <= depth) {
			r.stats.MemoHits++
			return nil
		}
		r.visited[key] = depth
	}

	if r.opts.MaxDepth > 0 && len(r.words) >= r.opts.MaxDepth {
		r.stats.DepthCutoffs++
		return nil
	}

	moves := puzzle.AllMoves(r.grid, r.oracle)
	r.stats.Moves += len(moves)

	for _, move := range moves {
		word, err := r.grid.WordAt(move)
		if err != nil {
			return fmt.Errorf("solver: move %s: %w", move, err)
		}

		ok, err := r.curate(word, move)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		if err := r.descend(word, move); err != nil {
			return err
		}
	}
	return nil
}

// descend applies move, explores below it and undoes it again.
func (r *run) descend(word string, move puzzle.Path) error {
	if err := r.grid.ApplyMove(move); err != nil {
		return fmt.Errorf("solver: move %s: %w", move, err)
	}
	r.words = append(r.words, word)
	r.paths = append(r.paths, move)

	err := r.visit()

	r.words = r.words[:len(r.words)-1]
	r.paths = r.paths[:len(r.paths)-1]
	if !r.grid.Undo() {
		return fmt.Errorf("solver: undo stack empty after %s", word)
	}
	return err
}

// curate decides whether word may be played.
func (r *run) curate(word string, move puzzle.Path) (bool, error) {
	// A rejection earlier in this run may have removed the word.
	if !r.oracle.IsWord(word) {
		return false, nil
	}
	if r.ledger.Contains(word) {
		return true, nil
	}

	p := Prompt{
		Word:    word,
		Context: slices.Clone(r.words),
		Level:   r.level,
		Board:   r.grid.Clone(),
		Path:    move.Clone(),
	}
	r.stats.Prompts++
	d, err := r.decider.Decide(r.ctx, p)
	if err != nil {
		return false, fmt.Errorf("solver: prompt for %s: %w", word, err)
	}
	r.logger.Debug("decision", "word", word, "decision", d)

	if r.opts.OnDecision != nil {
		if err := r.opts.OnDecision(p, d); err != nil {
			return false, err
		}
	}

	if d == Approve {
		if err := r.ledger.Approve(word); err != nil {
			return false, fmt.Errorf("solver: approve %s: %w", word, err)
		}
		r.stats.Approved++
		return true, nil
	}

	// IsWord above made word the last tried.
	r.oracle.ForgetLast()
	r.stats.Rejected++
	return false, nil
}

func (r *run) report() error {
	r.stats.Solutions++
	sol := Solution{
		Level: r.level,
		Words: slices.Clone(r.words),
		Paths: slices.Clone(r.paths),
	}
	r.logger.Debug("solution", "level", r.level, "words", sol.Words)

	if r.opts.OnSolution != nil {
		return r.opts.OnSolution(sol)
	}
	return nil
}
