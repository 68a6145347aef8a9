// internal/game/card.go
//
// Card: the leaf entity of the concentration board.
// A card carries a label and two flags:
//   - flipped: face up, label visible on the next render.
//   - paired:  matched with its twin and removed from play for good.

package game

// HiddenMarker is rendered for a face-down card.
const HiddenMarker = "*"

// MatchedMarker is rendered for a card whose pair has been found.
const MatchedMarker = "-"

// Card is a single card on the board.
type Card struct {
	value   string
	flipped bool
	paired  bool
}

// NewCard constructs a face-down, unpaired card with the given label.
func NewCard(value string) Card {
	return Card{value: value}
}

// Value returns the card's label regardless of visibility.
func (c *Card) Value() string { return c.value }

// Flip sets whether the card is face up.
func (c *Card) Flip(up bool) { c.flipped = up }

// IsFlipped reports whether the card is face up.
func (c *Card) IsFlipped() bool { return c.flipped }

// Pair marks the card as matched (or unmatched, during board setup).
func (c *Card) Pair(p bool) { c.paired = p }

// IsPaired reports whether the card has been matched and removed from play.
func (c *Card) IsPaired() bool { return c.paired }

// Equals reports whether two cards share the same label.
// Flip and pair state are ignored: a match is purely a value comparison.
func (c *Card) Equals(other *Card) bool {
	return other != nil && c.value == other.value
}

// Display returns the label when the card is face up, HiddenMarker otherwise.
func (c *Card) Display() string {
	if c.flipped {
		return c.value
	}
	return HiddenMarker
}
