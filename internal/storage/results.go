package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Outcome labels stored in level_results.
const (
	OutcomeWon    = "won"
	OutcomeFailed = "failed"
)

// LevelResult is one finished attempt at a level.
type LevelResult struct {
	ID           int64
	Level        int
	Outcome      string
	XPEarned     int
	Moves        int
	Accuracy     int
	DurationSecs int
	CreatedAt    time.Time
}

// SaveResult records a finished attempt and returns its ID.
func (s *Store) SaveResult(r LevelResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO level_results (level, outcome, xp_earned, moves, accuracy, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Level, r.Outcome, r.XPEarned, r.Moves, r.Accuracy, r.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopResults returns the best won attempts for a level by XP earned.
func (s *Store) TopResults(level, limit int) ([]LevelResult, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT id, level, outcome, xp_earned, moves, accuracy, duration_secs, created_at
		 FROM level_results
		 WHERE level = ? AND outcome = ?
		 ORDER BY xp_earned DESC, id ASC
		 LIMIT ?`,
		level, OutcomeWon, limit,
	)
}

// RecentResults returns the latest attempts across all levels, newest first.
func (s *Store) RecentResults(limit int) ([]LevelResult, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT id, level, outcome, xp_earned, moves, accuracy, duration_secs, created_at
		 FROM level_results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]LevelResult, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []LevelResult
	for rows.Next() {
		var r LevelResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Level, &r.Outcome, &r.XPEarned, &r.Moves, &r.Accuracy, &r.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// ClearResults deletes the history of every level.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM level_results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// LevelStats aggregates the history of one level.
type LevelStats struct {
	Level      int
	Plays      int
	Wins       int
	BestXP     int
	LastPlayed time.Time
}

// GetLevelStats aggregates the history of a level.
func (s *Store) GetLevelStats(level int) (*LevelStats, error) {
	stats := &LevelStats{Level: level}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(CASE WHEN outcome = ? THEN xp_earned END), 0),
		        MAX(created_at)
		 FROM level_results WHERE level = ?`,
		OutcomeWon, OutcomeWon, level,
	).Scan(&stats.Plays, &stats.Wins, &stats.BestXP, &lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// GetAllLevelStats aggregates every level that has been played.
func (s *Store) GetAllLevelStats() (map[int]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        COALESCE(MAX(CASE WHEN outcome = ? THEN xp_earned END), 0),
		        MAX(created_at)
		 FROM level_results
		 GROUP BY level`,
		OutcomeWon, OutcomeWon,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.Level, &ls.Plays, &ls.Wins, &ls.BestXP, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.Level] = &ls
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
