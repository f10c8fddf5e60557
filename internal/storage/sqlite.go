// Package storage provides SQLite-based persistence for the run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrations embed.FS

// Run sources.
const (
	SourceLocal    = "local"
	SourceSSH      = "ssh"
	SourceSimulate = "simulate"
)

// Store manages the SQLite database connection for the run history.
type Store struct {
	db *sql.DB
}

// Run is one finished session on a level.
type Run struct {
	ID          int64
	LevelID     string
	Frames      uint64
	SimSeconds  float64 // Simulated time
	WallSeconds float64 // Real time the session lasted
	Seed        int64
	Source      string
	CreatedAt   time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID        string
	Runs           int
	TotalFrames    int64
	TotalSimTime   float64
	LongestSimTime float64
	LastPlayed     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	return OpenContext(context.Background(), dbPath)
}

// OpenContext is Open with a context bounding the migrations.
func OpenContext(ctx context.Context, dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate applies the embedded goose migrations.
func (s *Store) migrate(ctx context.Context) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// SchemaVersion returns the latest applied migration.
func (s *Store) SchemaVersion(ctx context.Context) (int64, error) {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return 0, fmt.Errorf("storage: set dialect: %w", err)
	}
	v, err := goose.GetDBVersionContext(ctx, s.db)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read schema version: %w", err)
	}
	return v, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.LevelID == "" {
		return 0, errors.New("storage: run has no level id")
	}
	if r.Source == "" {
		r.Source = SourceLocal
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (level_id, frames, sim_seconds, wall_seconds, seed, source)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.LevelID, int64(r.Frames), r.SimSeconds, r.WallSeconds, r.Seed, r.Source,
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

// RecentRuns returns the latest runs of a level, newest first.
// An empty levelID returns runs of every level.
func (s *Store) RecentRuns(levelID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, frames, sim_seconds, wall_seconds, seed, source, created_at
		 FROM runs
		 WHERE ? = '' OR level_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var frames int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LevelID, &frames, &r.SimSeconds, &r.WallSeconds, &r.Seed, &r.Source, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Frames = uint64(frames)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes all runs of the given level.
func (s *Store) ClearRuns(levelID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(frames), 0), COALESCE(SUM(sim_seconds), 0),
		        COALESCE(MAX(sim_seconds), 0), MAX(created_at)
		 FROM runs WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Runs, &stats.TotalFrames, &stats.TotalSimTime, &stats.LongestSimTime, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllLevelStats retrieves statistics for every level that has been played.
func (s *Store) GetAllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), SUM(frames), SUM(sim_seconds), MAX(sim_seconds), MAX(created_at)
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
		var lastPlayed any
		if err := rows.Scan(&ls.LevelID, &ls.Runs, &ls.TotalFrames, &ls.TotalSimTime, &ls.LongestSimTime, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.LevelID] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
