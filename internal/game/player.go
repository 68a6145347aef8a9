package game

// Player tracks the counters for a single play-through: how many moves were
// taken and how many of them found a match. The session guarantees call
// order, so no validation happens here.
type Player struct {
	moves   int
	matches int
}

// NewPlayer constructs a player with zeroed counters.
func NewPlayer() *Player { return &Player{} }

// Reset zeroes both counters, used when a replay starts.
func (p *Player) Reset() {
	p.moves = 0
	p.matches = 0
}

// AddMove increments the move counter.
func (p *Player) AddMove() { p.moves++ }

// AddMatch increments the match counter.
func (p *Player) AddMatch() { p.matches++ }

// Moves returns the number of completed turns.
func (p *Player) Moves() int { return p.moves }

// Matches returns the number of pairs found.
func (p *Player) Matches() int { return p.matches }
