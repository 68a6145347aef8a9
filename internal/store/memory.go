// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// This is the default persistence layer: results live only for the process
// lifetime, matching the game's memory-only baseline behavior.
//
// Characteristics:
//   - Appends Result values to a slice.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sync"
)

// memory is a slice-backed Store implementation.
type memory struct {
	mu      sync.RWMutex // guards results
	results []Result
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// SaveResult appends the result.
func (m *memory) SaveResult(ctx context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	return nil
}

// BestWin scans for the won result with the fewest moves, breaking ties by
// shorter duration.
func (m *memory) BestWin(ctx context.Context) (Result, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var best Result
	found := false
	for _, r := range m.results {
		if !r.Won {
			continue
		}
		if !found || r.Moves < best.Moves || (r.Moves == best.Moves && r.Duration < best.Duration) {
			best = r
			found = true
		}
	}
	return best, found, nil
}

// Close is a no-op for the in-memory store.
func (m *memory) Close() error { return nil }
