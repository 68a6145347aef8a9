package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, width, height int, seed int64, values []string) *Board {
	t.Helper()
	b := NewBoard(width, height, rand.New(rand.NewSource(seed)))
	require.NoError(t, b.Setup(values))
	return b
}

func TestSetupPlacesEveryValueTwice(t *testing.T) {
	b := newTestBoard(t, 4, 3, 7, []string{"a", "b", "c", "d", "e", "f"})

	assert.Equal(t, 6, b.PossibleMatches())

	counts := map[string]int{}
	for r := 0; r < b.Height(); r++ {
		for c := 0; c < b.Width(); c++ {
			card, ok := b.CardAt(r, c)
			require.True(t, ok)
			counts[card.Value()]++
			assert.False(t, card.IsFlipped(), "cards start face down")
			assert.False(t, card.IsPaired(), "cards start unpaired")
		}
	}
	require.Len(t, counts, 6)
	for value, n := range counts {
		assert.Equalf(t, 2, n, "value %q should appear exactly twice", value)
	}
}

func TestSetupConfigurationErrors(t *testing.T) {
	odd := NewBoard(3, 3, rand.New(rand.NewSource(1)))
	assert.Error(t, odd.Setup([]string{"a", "b", "c", "d"}), "odd cell count cannot be paired")

	b := NewBoard(2, 2, rand.New(rand.NewSource(1)))
	assert.Error(t, b.Setup([]string{"a"}), "too few pair values")
	assert.Error(t, b.Setup([]string{"a", "b", "c"}), "too many pair values")

	empty := NewBoard(0, 2, rand.New(rand.NewSource(1)))
	assert.Error(t, empty.Setup(nil))
}

func TestShuffleIsDeterministicPerSeed(t *testing.T) {
	values := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	first := newTestBoard(t, 4, 4, 42, values)
	second := newTestBoard(t, 4, 4, 42, values)

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			x, _ := first.CardAt(r, c)
			y, _ := second.CardAt(r, c)
			assert.Equalf(t, x.Value(), y.Value(), "cell (%d,%d) should agree for equal seeds", r, c)
		}
	}
}

func TestCardAtOutOfBounds(t *testing.T) {
	b := newTestBoard(t, 2, 2, 1, []string{"a", "b"})

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		_, ok := b.CardAt(pos[0], pos[1])
		assert.Falsef(t, ok, "position (%d,%d) should be out of bounds", pos[0], pos[1])
	}
}

func TestHideCardsIsIdempotent(t *testing.T) {
	b := newTestBoard(t, 2, 2, 1, []string{"a", "b"})

	// Flip everything up, pair one cell.
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			card, _ := b.CardAt(r, c)
			card.Flip(true)
		}
	}
	paired, _ := b.CardAt(0, 0)
	paired.Pair(true)

	b.HideCards()
	once := b.String()
	b.HideCards()
	twice := b.String()

	assert.Equal(t, once, twice, "hiding twice must equal hiding once")

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			card, _ := b.CardAt(r, c)
			if card.IsPaired() {
				assert.True(t, card.IsFlipped(), "paired cards stay visible")
			} else {
				assert.False(t, card.IsFlipped(), "unpaired cards hide")
			}
		}
	}
}

func TestValidateTaxonomy(t *testing.T) {
	b := newTestBoard(t, 2, 2, 1, []string{"a", "b"})

	assert.ErrorIs(t, b.Validate(Move{0, 0, 0, 0}), ErrDuplicatePosition)
	assert.ErrorIs(t, b.Validate(Move{5, 5, 0, 0}), ErrOutOfBounds)
	assert.ErrorIs(t, b.Validate(Move{0, 0, 9, 9}), ErrOutOfBounds)

	card, _ := b.CardAt(0, 0)
	card.Pair(true)
	assert.ErrorIs(t, b.Validate(Move{0, 0, 0, 1}), ErrAlreadyPaired)

	// Duplicate wins over bounds when both apply.
	assert.ErrorIs(t, b.Validate(Move{9, 9, 9, 9}), ErrDuplicatePosition)

	assert.NoError(t, b.Validate(Move{0, 1, 1, 0}))
}

func TestRenderMarkers(t *testing.T) {
	b := newTestBoard(t, 2, 1, 3, []string{"a"})

	assert.Equal(t, "* *\n", b.String(), "fresh board renders all hidden")

	left, _ := b.CardAt(0, 0)
	left.Flip(true)
	assert.Equal(t, "a *\n", b.String(), "flipped card shows its value")

	left.Pair(true)
	right, _ := b.CardAt(0, 1)
	right.Pair(true)
	assert.Equal(t, "- -\n", b.String(), "paired cards show the matched marker")
}
