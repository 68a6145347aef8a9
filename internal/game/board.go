// internal/game/board.go
//
// Board: owns the rectangular grid of cards.
// Responsibilities:
//   - Generate paired labels and shuffle them into cells (seedable rng).
//   - Positional access with explicit out-of-bounds signalling.
//   - Visibility control: hide everything that is not paired.
//   - Move validation against the current grid.
//   - Aligned text rendering of the grid.

package game

import (
	"fmt"
	"math/rand"
	"strings"
)

// Board is a width x height grid of cards. The rng is injected at
// construction so layouts are reproducible under test.
type Board struct {
	width  int
	height int
	cells  [][]Card
	rng    *rand.Rand
}

// NewBoard constructs an empty board. Setup must be called before play.
// A nil rng falls back to a globally seeded source.
func NewBoard(width, height int, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Board{width: width, height: height, rng: rng}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// PossibleMatches returns the number of pairs on a full board.
func (b *Board) PossibleMatches() int { return b.width * b.height / 2 }

// Setup lays out a fresh game: each of the given labels is duplicated, the
// resulting multiset is shuffled uniformly, and cards are assigned to cells
// in row-major order with all flags cleared.
//
// Configuration errors (no valid board can be built, fatal to the caller):
//   - width*height is odd, so cards cannot be paired up.
//   - len(values) does not equal width*height/2.
func (b *Board) Setup(values []string) error {
	total := b.width * b.height
	if total <= 0 {
		return fmt.Errorf("board %dx%d has no cells", b.width, b.height)
	}
	if total%2 != 0 {
		return fmt.Errorf("board %dx%d has an odd number of cells, cards cannot be paired", b.width, b.height)
	}
	if len(values) != total/2 {
		return fmt.Errorf("board %dx%d needs %d pair values, got %d", b.width, b.height, total/2, len(values))
	}

	deck := make([]Card, 0, total)
	for _, v := range values {
		deck = append(deck, NewCard(v), NewCard(v))
	}
	b.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	b.cells = make([][]Card, b.height)
	for r := 0; r < b.height; r++ {
		b.cells[r] = deck[r*b.width : (r+1)*b.width]
	}
	return nil
}

// CardAt returns the card at (row, col), or ok=false when the position is
// outside the grid. Callers treat absence as an invalid move; there is no
// panic-based control flow here.
func (b *Board) CardAt(row, col int) (*Card, bool) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return nil, false
	}
	if b.cells == nil {
		return nil, false
	}
	return &b.cells[row][col], true
}

// HideCards turns every unpaired card face down. Paired cards are left
// alone: they stay permanently visible as matched. Idempotent.
func (b *Board) HideCards() {
	for r := range b.cells {
		for c := range b.cells[r] {
			if !b.cells[r][c].IsPaired() {
				b.cells[r][c].Flip(false)
			}
		}
	}
}

// Validate checks a move against the current grid: duplicate position
// first, then bounds, then already-paired. Returns nil when both cards may
// be flipped.
func (b *Board) Validate(m Move) error {
	if m.Row1 == m.Row2 && m.Col1 == m.Col2 {
		return ErrDuplicatePosition
	}
	first, ok1 := b.CardAt(m.Row1, m.Col1)
	second, ok2 := b.CardAt(m.Row2, m.Col2)
	if !ok1 || !ok2 {
		return ErrOutOfBounds
	}
	if first.IsPaired() || second.IsPaired() {
		return ErrAlreadyPaired
	}
	return nil
}

// String renders the grid as aligned text. Cells show MatchedMarker when
// paired, the label when face up, and HiddenMarker otherwise.
func (b *Board) String() string {
	cellWidth := len(HiddenMarker)
	if len(MatchedMarker) > cellWidth {
		cellWidth = len(MatchedMarker)
	}
	for r := range b.cells {
		for c := range b.cells[r] {
			if n := len(b.cells[r][c].Value()); n > cellWidth {
				cellWidth = n
			}
		}
	}

	var sb strings.Builder
	for r := range b.cells {
		for c := range b.cells[r] {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%-*s", cellWidth, cellText(&b.cells[r][c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellText(c *Card) string {
	if c.IsPaired() {
		return MatchedMarker
	}
	return c.Display()
}
