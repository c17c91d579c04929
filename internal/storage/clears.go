package storage

import (
	"fmt"
	"time"
)

// Clear represents a level cleared in play mode.
type Clear struct {
	ID        int64
	LevelID   string
	Player    string
	Words     int
	Undos     int
	CreatedAt time.Time
}

// SaveClear records that player cleared a level using the given number of
// words. Returns the ID of the inserted record.
func (s *Store) SaveClear(levelID, player string, words, undos int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO clears (level_id, player, words, undos) VALUES (?, ?, ?, ?)",
		levelID, player, words, undos,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save clear: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestClears retrieves the best clears for a level: fewest words, then
// fewest undos, then earliest.
func (s *Store) BestClears(levelID string, limit int) ([]Clear, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, player, words, undos, created_at
		 FROM clears
		 WHERE level_id = ?
		 ORDER BY words ASC, undos ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clears: %w", err)
	}
	defer rows.Close()

	var clears []Clear
	for rows.Next() {
		var c Clear
		var createdAt any
		if err := rows.Scan(&c.ID, &c.LevelID, &c.Player, &c.Words, &c.Undos, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		clears = append(clears, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return clears, nil
}
