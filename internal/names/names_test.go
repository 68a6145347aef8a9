package names

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLabelFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNumericPool(t *testing.T) {
	pool, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, -1, pool.Size(), "numeric pool is unbounded")

	labels, err := pool.Pick(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, labels)

	// Any pair count is servable.
	big, err := pool.Pick(50)
	require.NoError(t, err)
	assert.Len(t, big, 50)
}

func TestFilePool(t *testing.T) {
	path := writeLabelFile(t, "owl\nfox\n\n  bear  \nfox\nwolf\n")
	pool, err := Load(path)
	require.NoError(t, err)

	// Blank line and duplicate dropped, whitespace trimmed.
	assert.Equal(t, 4, pool.Size())

	labels, err := pool.Pick(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"owl", "fox", "bear"}, labels)
}

func TestFilePoolTooSmall(t *testing.T) {
	path := writeLabelFile(t, "owl\nfox\n")
	pool, err := Load(path)
	require.NoError(t, err)

	_, err = pool.Pick(3)
	assert.Error(t, err, "a short pool cannot fill the board")
}

func TestPickRejectsNonPositivePairCount(t *testing.T) {
	pool, err := Load("")
	require.NoError(t, err)

	_, err = pool.Pick(0)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
