package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run status values.
const (
	RunRunning  = "running"
	RunFinished = "finished"
	RunAborted  = "aborted"
	RunFailed   = "failed"
)

// RunStats holds the counters recorded for one exploration run.
type RunStats struct {
	Nodes        int
	MemoHits     int
	DepthCutoffs int
	Moves        int
	Prompts      int
	Approved     int
	Rejected     int
	Solutions    int
}

// Run represents a single exploration run record.
type Run struct {
	ID         int64
	LevelID    string
	Status     string
	Stats      RunStats
	StartedAt  time.Time
	FinishedAt time.Time
}

// Solution represents a recorded full-clear word sequence.
type Solution struct {
	ID        int64
	RunID     int64
	LevelID   string
	Words     []string
	CreatedAt time.Time
}

// Decision represents one curation answer.
type Decision struct {
	ID        int64
	LevelID   string
	Word      string
	Approved  bool
	Context   []string
	CreatedAt time.Time
}

// LevelStats contains aggregated history for a level.
type LevelStats struct {
	LevelID   string
	Runs      int
	Solutions int
	Shortest  int // words in the shortest known solution, 0 if none
	Clears    int
	LastRun   time.Time
}

// BeginRun records the start of an exploration run.
// Returns the ID of the inserted record.
func (s *Store) BeginRun(levelID string) (int64, error) {
	result, err := s.db.Exec("INSERT INTO runs (level_id, status) VALUES (?, ?)", levelID, RunRunning)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// FinishRun stores the final counters and status of a run.
func (s *Store) FinishRun(runID int64, status string, stats RunStats) error {
	res, err := s.db.Exec(
		`UPDATE runs SET status = ?, nodes = ?, memo_hits = ?, depth_cutoffs = ?, moves = ?,
		        prompts = ?, approved = ?, rejected = ?, solutions = ?, finished_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		status, stats.Nodes, stats.MemoHits, stats.DepthCutoffs, stats.Moves,
		stats.Prompts, stats.Approved, stats.Rejected, stats.Solutions, runID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("storage: run %d not found", runID)
	}
	return nil
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(runID int64) (*Run, error) {
	var r Run
	var startedAt, finishedAt any

	err := s.db.QueryRow(
		`SELECT id, level_id, status, nodes, memo_hits, depth_cutoffs, moves,
		        prompts, approved, rejected, solutions, started_at, finished_at
		 FROM runs WHERE id = ?`,
		runID,
	).Scan(
		&r.ID, &r.LevelID, &r.Status,
		&r.Stats.Nodes, &r.Stats.MemoHits, &r.Stats.DepthCutoffs, &r.Stats.Moves,
		&r.Stats.Prompts, &r.Stats.Approved, &r.Stats.Rejected, &r.Stats.Solutions,
		&startedAt, &finishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	r.StartedAt = parseTime(startedAt)
	r.FinishedAt = parseTime(finishedAt)
	return &r, nil
}

// SaveSolution records a solution. A word sequence already known for the
// level is ignored. Returns true if the solution was new.
func (s *Store) SaveSolution(runID int64, levelID string, words []string) (bool, error) {
	res, err := s.db.Exec(
		"INSERT OR IGNORE INTO solutions (run_id, level_id, words, length) VALUES (?, ?, ?, ?)",
		runID, levelID, joinWords(words), len(words),
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save solution: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot save solution: %w", err)
	}
	return n > 0, nil
}

// Solutions retrieves known solutions for a level, shortest first.
func (s *Store) Solutions(levelID string, limit int) ([]Solution, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, level_id, words, created_at
		 FROM solutions
		 WHERE level_id = ?
		 ORDER BY length ASC, words ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solutions: %w", err)
	}
	defer rows.Close()

	var solutions []Solution
	for rows.Next() {
		var sol Solution
		var words string
		var createdAt any
		if err := rows.Scan(&sol.ID, &sol.RunID, &sol.LevelID, &words, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sol.Words = splitWords(words)
		sol.CreatedAt = parseTime(createdAt)
		solutions = append(solutions, sol)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return solutions, nil
}

// SaveDecision records a curation answer for word.
func (s *Store) SaveDecision(levelID, word string, approved bool, context []string) error {
	_, err := s.db.Exec(
		"INSERT INTO decisions (level_id, word, approved, context) VALUES (?, ?, ?, ?)",
		levelID, word, approved, joinWords(context),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save decision: %w", err)
	}
	return nil
}

// Decisions retrieves the most recent curation answers.
func (s *Store) Decisions(limit int) ([]Decision, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, word, approved, context, created_at
		 FROM decisions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query decisions: %w", err)
	}
	defer rows.Close()

	var decisions []Decision
	for rows.Next() {
		var d Decision
		var context string
		var createdAt any
		if err := rows.Scan(&d.ID, &d.LevelID, &d.Word, &d.Approved, &context, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		d.Context = splitWords(context)
		d.CreatedAt = parseTime(createdAt)
		decisions = append(decisions, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return decisions, nil
}

// GetLevelStats retrieves aggregated history for a level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var lastRun any
	err := s.db.QueryRow(
		"SELECT COUNT(*), MAX(started_at) FROM runs WHERE level_id = ?",
		levelID,
	).Scan(&stats.Runs, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)

	err = s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(MIN(length), 0) FROM solutions WHERE level_id = ?",
		levelID,
	).Scan(&stats.Solutions, &stats.Shortest)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	err = s.db.QueryRow("SELECT COUNT(*) FROM clears WHERE level_id = ?", levelID).Scan(&stats.Clears)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	return stats, nil
}
