// Package storage provides SQLite-based persistence for run records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The persisted pair the game cares about - high score and total coins -
// is derived from the run history rather than stored as mutable counters,
// so a crash between updates can never leave the two out of sync.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished game session.
type Run struct {
	ID        int64
	Score     int
	Coins     int
	Duration  float64 // Seconds in the Playing state
	CreatedAt time.Time
}

// Progress is the persisted pair shown on the menu and game-over screens.
type Progress struct {
	HighScore  int
	TotalCoins int
}

// Open creates or opens a SQLite database at the given path.
// It creates parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records one finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(score, coins int, duration float64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (score, coins, duration_secs) VALUES (?, ?, ?)",
		score, coins, duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Load returns the persisted progress pair. An empty database loads as
// zero progress, never an error.
func (s *Store) Load() (Progress, error) {
	var p Progress
	var high, coins sql.NullInt64

	err := s.db.QueryRow(
		"SELECT MAX(score), SUM(coins) FROM runs",
	).Scan(&high, &coins)
	if err != nil {
		return p, fmt.Errorf("storage: cannot load progress: %w", err)
	}

	if high.Valid {
		p.HighScore = int(high.Int64)
	}
	if coins.Valid {
		p.TotalCoins = int(coins.Int64)
	}
	return p, nil
}

// TopRuns retrieves the best N runs ordered by score descending.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, coins, duration_secs, created_at
		 FROM runs
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RecentRuns retrieves the most recent N runs.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, score, coins, duration_secs, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// ClearRuns deletes the whole run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	RunCount   int
	HighScore  int
	AvgScore   float64
	TotalCoins int
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(coins), 0)
		 FROM runs`,
	).Scan(&stats.RunCount, &stats.HighScore, &stats.AvgScore, &stats.TotalCoins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		"SELECT created_at FROM runs ORDER BY created_at DESC LIMIT 1",
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Coins, &r.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
