package game

import "testing"

func TestPlayerCounters(t *testing.T) {
	p := NewPlayer()

	if p.Moves() != 0 || p.Matches() != 0 {
		t.Fatal("new player should start at zero")
	}

	p.AddMove()
	p.AddMove()
	p.AddMatch()

	if p.Moves() != 2 {
		t.Errorf("expected 2 moves, got %d", p.Moves())
	}
	if p.Matches() != 1 {
		t.Errorf("expected 1 match, got %d", p.Matches())
	}

	p.Reset()
	if p.Moves() != 0 || p.Matches() != 0 {
		t.Error("reset should zero both counters")
	}
}
