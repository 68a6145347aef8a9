// internal/store/store.go
//
// Result persistence for finished play-throughs.
// Implementations may be backed by memory (default) or SQLite.

package store

import (
	"context"
	"time"
)

// Result is the record of one finished play-through.
type Result struct {
	ID       string        // unique result identifier
	Won      bool          // true when every pair was matched, false on quit
	Moves    int           // completed turns
	Matches  int           // pairs found
	PlayedAt time.Time     // when the play-through started
	Duration time.Duration // wall time from first render to finish
}

// Store defines the persistence interface for game results.
type Store interface {
	// SaveResult persists one finished play-through.
	SaveResult(ctx context.Context, r Result) error

	// BestWin returns the won result with the fewest moves (ties broken by
	// shortest duration). ok is false when no win has been recorded.
	BestWin(ctx context.Context) (best Result, ok bool, err error)

	// Close releases any underlying resources.
	Close() error
}
