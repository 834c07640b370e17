package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one completed level: how long the escape took and its tier.
type Run struct {
	ID        string // UUID assigned on save
	GameID    string
	LevelID   string
	Label     string
	Seconds   int
	Tier      string
	Player    string // SSH user or empty for local play
	CreatedAt time.Time
}

// LevelBest is the fastest run on one level plus how often it was cleared.
type LevelBest struct {
	LevelID string
	Label   string
	Seconds int
	Tier    string
	Clears  int
}

// RunStats contains aggregated run statistics for a game.
type RunStats struct {
	GameID       string
	Clears       int
	Levels       int // Distinct levels cleared
	TotalSeconds int
	TopTier      int // Clears graded top
	LastPlayed   time.Time
}

// SaveRun records a completed level and returns the run's generated ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.GameID == "" || r.LevelID == "" {
		return "", fmt.Errorf("storage: run needs game and level ids")
	}
	if r.Seconds < 0 {
		return "", fmt.Errorf("storage: negative run time %d", r.Seconds)
	}

	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, level_id, label, seconds, tier, player)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, r.GameID, r.LevelID, r.Label, r.Seconds, r.Tier, r.Player,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// BestRuns returns the fastest runs on one level, earliest first on ties.
func (s *Store) BestRuns(gameID, levelID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT run_id, game_id, level_id, label, seconds, tier, player, created_at
		 FROM runs
		 WHERE game_id = ? AND level_id = ?
		 ORDER BY seconds ASC, created_at ASC, rowid ASC
		 LIMIT ?`,
		gameID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.LevelID, &r.Label, &r.Seconds, &r.Tier, &r.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// LevelsPlayed returns the best run per level for a game, ordered by level ID.
func (s *Store) LevelsPlayed(gameID string) ([]LevelBest, error) {
	// SQLite takes the bare label and tier columns from the MIN(seconds) row
	rows, err := s.db.Query(
		`SELECT level_id, label, MIN(seconds), tier, COUNT(*)
		 FROM runs
		 WHERE game_id = ?
		 GROUP BY level_id
		 ORDER BY level_id`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var bests []LevelBest
	for rows.Next() {
		var b LevelBest
		if err := rows.Scan(&b.LevelID, &b.Label, &b.Seconds, &b.Tier, &b.Clears); err != nil {
			return nil, fmt.Errorf("storage: cannot scan level: %w", err)
		}
		bests = append(bests, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return bests, nil
}

// RunStats retrieves aggregated run statistics for a game.
func (s *Store) RunStats(gameID string) (*RunStats, error) {
	stats := &RunStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT level_id), COALESCE(SUM(seconds), 0),
		        COALESCE(SUM(CASE WHEN tier = 'top' THEN 1 ELSE 0 END), 0), MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Clears, &stats.Levels, &stats.TotalSeconds, &stats.TopTier, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
