package game

import "testing"

func TestCardFlipAndDisplay(t *testing.T) {
	card := NewCard("owl")

	if card.IsFlipped() {
		t.Error("new card should start face down")
	}
	if got := card.Display(); got != HiddenMarker {
		t.Errorf("face-down card should display %q, got %q", HiddenMarker, got)
	}

	card.Flip(true)
	if !card.IsFlipped() {
		t.Error("card should be face up after Flip(true)")
	}
	if got := card.Display(); got != "owl" {
		t.Errorf("face-up card should display its value, got %q", got)
	}

	card.Flip(false)
	if got := card.Display(); got != HiddenMarker {
		t.Errorf("card should hide again after Flip(false), got %q", got)
	}
}

func TestCardPair(t *testing.T) {
	card := NewCard("owl")

	if card.IsPaired() {
		t.Error("new card should start unpaired")
	}
	card.Pair(true)
	if !card.IsPaired() {
		t.Error("card should be paired after Pair(true)")
	}
}

func TestCardEquals(t *testing.T) {
	a := NewCard("owl")
	b := NewCard("owl")
	c := NewCard("fox")

	// Flip and pair state must not affect equality.
	a.Flip(true)
	b.Pair(true)

	if !a.Equals(&b) {
		t.Error("cards with equal values should match regardless of state")
	}
	if a.Equals(&c) {
		t.Error("cards with different values should not match")
	}
	if a.Equals(nil) {
		t.Error("a card should never match nil")
	}
}
