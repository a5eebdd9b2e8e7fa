// Package storage provides a SQLite-backed log of finished game runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The default database is in-memory, so nothing survives a restart
// unless the caller points it at a file.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN is the default database location: a private in-memory
// database that lives exactly as long as the process.
const MemoryDSN = ":memory:"

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished game run.
type RunRecord struct {
	ID          int64
	Score       int
	Level       int
	SlotsFilled int
	Seed        int64
	CreatedAt   time.Time
}

// Stats aggregates the run log.
type Stats struct {
	Runs      int
	BestScore int
	BestLevel int
}

// Open creates or opens the run database. The path ":memory:" (or an
// empty path) opens a process-private in-memory database; anything else
// is a file path, with ~ expanded and parent directories created.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = MemoryDSN
	}

	if dbPath != MemoryDSN {
		if dbPath[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dbPath = filepath.Join(home, dbPath[1:])
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", filepath.Dir(dbPath), err)
		}
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			slots_filled INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(score, level, slotsFilled int, seed int64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (score, level, slots_filled, seed) VALUES (?, ?, ?, ?)",
		score, level, slotsFilled, seed,
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

// TopRuns retrieves the best N runs, ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, level, slots_filled, seed, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunRecord
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

func scanRun(rows *sql.Rows) (RunRecord, error) {
	var e RunRecord
	var createdAt any
	if err := rows.Scan(&e.ID, &e.Score, &e.Level, &e.SlotsFilled, &e.Seed, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// The driver may hand the datetime back as time.Time or as text.
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}

// HighScore returns the best recorded score, or 0 if no runs exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// GameStats aggregates the run log. All fields are 0 when no runs exist.
func (s *Store) GameStats() (Stats, error) {
	var st Stats
	var best, bestLevel sql.NullInt64

	err := s.db.QueryRow(
		"SELECT COUNT(*), MAX(score), MAX(level) FROM runs",
	).Scan(&st.Runs, &best, &bestLevel)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if best.Valid {
		st.BestScore = int(best.Int64)
	}
	if bestLevel.Valid {
		st.BestLevel = int(bestLevel.Int64)
	}
	return st, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
