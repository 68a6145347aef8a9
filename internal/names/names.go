// internal/names/names.go
//
// Card label pools for the board.
//
// Responsibilities:
//   - Load a label list from a file (one label per line) when configured.
//   - Fall back to a generated numeric pool ("0", "1", ...) otherwise.
//   - Hand out exactly the number of distinct labels a board needs.
//
// Constraints:
//   • File labels are whitespace-trimmed; blank lines and duplicates are
//     dropped, first occurrence wins.
//   • The numeric fallback can serve any pair count; a file pool that is
//     smaller than the requested pair count is a configuration error.

package names

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Pool is a source of distinct card labels.
// The zero value (and Load("")) is the inexhaustible numeric pool.
type Pool struct {
	labels []string
	source string
}

// Load builds a pool. An empty path selects the numeric fallback; otherwise
// the file is read one label per line.
func Load(path string) (Pool, error) {
	if path == "" {
		return Pool{}, nil
	}
	labels, err := readLabelFile(path)
	if err != nil {
		return Pool{}, fmt.Errorf("load name pool: %w", err)
	}
	return Pool{labels: labels, source: path}, nil
}

// readLabelFile loads one label per line, trimming whitespace and dropping
// blanks and duplicates.
func readLabelFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seen := make(map[string]struct{})
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		label := strings.TrimSpace(sc.Text())
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out, sc.Err()
}

// Pick returns pairs distinct labels. For a file pool the first pairs
// entries are used, so a given file always produces the same label set; the
// rng decides placement, not membership. Returns an error when a file pool
// has fewer entries than required. This is surfaced before the game loop
// starts, since no valid board can be built from it.
func (p Pool) Pick(pairs int) ([]string, error) {
	if pairs <= 0 {
		return nil, fmt.Errorf("name pool: pair count must be positive, got %d", pairs)
	}
	if p.labels == nil {
		out := make([]string, pairs)
		for i := range out {
			out[i] = strconv.Itoa(i)
		}
		return out, nil
	}
	if len(p.labels) < pairs {
		return nil, fmt.Errorf("name pool %s has %d labels, board needs %d", p.source, len(p.labels), pairs)
	}
	return append([]string(nil), p.labels[:pairs]...), nil
}

// Size returns the number of labels available, or -1 for the unbounded
// numeric pool.
func (p Pool) Size() int {
	if p.labels == nil {
		return -1
	}
	return len(p.labels)
}
