// internal/seed/seed.go
//
// Board seed derivation.
// Three sources, in priority order:
//   1. An explicit fixed seed (reproduce a specific layout).
//   2. Daily mode: HMAC(salt, YYYY-MM-DD), so every player sees the same
//      layout on a given day.
//   3. The clock.

package seed

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Daily returns a deterministic seed for a date using HMAC(salt, YYYY-MM-DD).
func Daily(t time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	// First 8 bytes give the full seed range.
	return int64(binary.BigEndian.Uint64(sum[:8]))
}

// Pick resolves the seed for a new board. fixed wins when set, then daily
// mode, then the wall clock.
func Pick(fixed *int64, dailyMode bool, salt string, now time.Time) int64 {
	switch {
	case fixed != nil:
		return *fixed
	case dailyMode:
		return Daily(now, salt)
	default:
		return now.UnixNano()
	}
}
