// internal/store/sqlite.go
//
// SQLite implementation of the Store interface.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the idempotent schema migration on open.
//   - Insert and fewest-moves queries over recorded results.
//
// Enabled only when a database path is configured; the memory store is the
// default otherwise.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id          TEXT PRIMARY KEY,
	won         INTEGER NOT NULL,
	moves       INTEGER NOT NULL,
	matches     INTEGER NOT NULL,
	played_at   TIMESTAMP NOT NULL,
	duration_ms INTEGER NOT NULL
);
`

// sqlite is a *sql.DB-backed Store implementation.
type sqlite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) a SQLite results database.
//
// - Ensures the parent directory exists for relative DSNs (e.g. ./data/app.db).
// - Configures busy timeout and WAL journaling mode.
// - Enforces foreign keys.
// - Applies the results schema, which is idempotent.
func OpenSQLite(dsn string) (Store, error) {
	// Ensure directory exists for ./data/app.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &sqlite{db: db}, nil
}

// SaveResult inserts one finished play-through.
func (s *sqlite) SaveResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO results(id, won, moves, matches, played_at, duration_ms)
		 VALUES(?,?,?,?,?,?)`,
		r.ID, boolToInt(r.Won), r.Moves, r.Matches, r.PlayedAt.UTC(), r.Duration.Milliseconds(),
	)
	return err
}

// BestWin returns the won result with the fewest moves, ties broken by
// shortest duration.
func (s *sqlite) BestWin(ctx context.Context) (Result, bool, error) {
	var (
		r          Result
		won        int
		durationMs int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, won, moves, matches, played_at, duration_ms
		 FROM results
		 WHERE won = 1
		 ORDER BY moves ASC, duration_ms ASC
		 LIMIT 1`,
	).Scan(&r.ID, &won, &r.Moves, &r.Matches, &r.PlayedAt, &durationMs)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, false, nil
	}
	if err != nil {
		return Result{}, false, err
	}
	r.Won = won != 0
	r.Duration = time.Duration(durationMs) * time.Millisecond
	return r, true, nil
}

// Close closes the underlying database handle.
func (s *sqlite) Close() error { return s.db.Close() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
