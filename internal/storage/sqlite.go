// Package storage provides SQLite-based persistence for obtained items
// and finished runs. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultSlot is the save slot used when none is given.
const DefaultSlot = "default"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ItemEntry is one obtained item in a save slot.
type ItemEntry struct {
	Slot       string
	ItemID     string
	ObtainedAt time.Time
}

// RunEntry is one finished level.
type RunEntry struct {
	ID        int64
	Slot      string
	LevelID   string
	Coins     int
	Steps     int64 // logic steps from level start to clear
	CreatedAt time.Time
}

// LevelStats aggregates the runs of one level.
type LevelStats struct {
	LevelID   string
	Runs      int
	BestCoins int
	BestSteps int64
	LastRun   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS items (
			slot TEXT NOT NULL,
			item_id TEXT NOT NULL,
			obtained_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (slot, item_id)
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slot TEXT NOT NULL,
			level_id TEXT NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			steps INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(level_id, coins DESC, steps ASC);
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

// ObtainItems marks items as obtained in a slot. Items already obtained
// keep their original time.
func (s *Store) ObtainItems(slot string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	stmt, err := tx.Prepare("INSERT OR IGNORE INTO items (slot, item_id) VALUES (?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, id := range ids {
		if _, err := stmt.Exec(slot, id); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot save item %q: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit items: %w", err)
	}
	return nil
}

// HasItem reports whether an item was obtained in a slot.
func (s *Store) HasItem(slot, id string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM items WHERE slot = ? AND item_id = ?",
		slot, id,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query item: %w", err)
	}
	return n > 0, nil
}

// Items lists a slot's obtained items, oldest first.
func (s *Store) Items(slot string) ([]ItemEntry, error) {
	rows, err := s.db.Query(
		`SELECT slot, item_id, obtained_at
		 FROM items
		 WHERE slot = ?
		 ORDER BY obtained_at ASC, item_id ASC`,
		slot,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query items: %w", err)
	}
	defer rows.Close()

	var entries []ItemEntry
	for rows.Next() {
		var e ItemEntry
		var obtainedAt any
		if err := rows.Scan(&e.Slot, &e.ItemID, &obtainedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.ObtainedAt = parseTime(obtainedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearSlot forgets every item of a slot. Runs are kept.
func (s *Store) ClearSlot(slot string) error {
	if _, err := s.db.Exec("DELETE FROM items WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot clear slot: %w", err)
	}
	return nil
}

// RecordRun stores a finished level and returns its ID.
func (s *Store) RecordRun(run RunEntry) (int64, error) {
	if run.Slot == "" {
		run.Slot = DefaultSlot
	}
	result, err := s.db.Exec(
		"INSERT INTO runs (slot, level_id, coins, steps) VALUES (?, ?, ?, ?)",
		run.Slot, run.LevelID, run.Coins, run.Steps,
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

// TopRuns returns a level's best runs: most coins, then fewest steps.
func (s *Store) TopRuns(levelID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, slot, level_id, coins, steps, created_at
		 FROM runs
		 WHERE level_id = ?
		 ORDER BY coins DESC, steps ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
}

// RecentRuns returns the latest runs over all levels.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, slot, level_id, coins, steps, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Slot, &e.LevelID, &e.Coins, &e.Steps, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// GetLevelStats aggregates the runs of one level. A level never cleared
// returns zero stats.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}
	var lastRun any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(coins), 0), COALESCE(MIN(steps), 0), MAX(created_at)
		 FROM runs WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Runs, &stats.BestCoins, &stats.BestSteps, &lastRun)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)
	return stats, nil
}

// GetAllLevelStats aggregates runs for every level that has been cleared.
func (s *Store) GetAllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MAX(coins), MIN(steps), MAX(created_at)
		 FROM runs
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastRun any
		if err := rows.Scan(&ls.LevelID, &ls.Runs, &ls.BestCoins, &ls.BestSteps, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastRun = parseTime(lastRun)
		stats[ls.LevelID] = &ls
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and the string form sqlite returns.
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
