// internal/game/parse.go
//
// Move parsing for the console loop.
// A move is the first four decimal digit runs found anywhere in the input
// line; everything else is ignored. Both "(0, 0) (0, 1)" and "0 0 0 1"
// parse, and so does noise like "abc0def0ghi0jkl0". The leniency is
// deliberate: any line with four usable numbers is a move.

package game

import (
	"regexp"
	"strconv"
)

// moveTokenCount is the number of integers that make up one move.
const moveTokenCount = 4

// inputPattern matches one run of decimal digits. Signs are not part of a
// run, so every token is non-negative by construction.
var inputPattern = regexp.MustCompile(`[0-9]+`)

// Move is a validated-shape (but not yet board-checked) pair of positions.
type Move struct {
	Row1, Col1 int
	Row2, Col2 int
}

// ParseMove extracts (row1, col1, row2, col2) from a line of input.
// Returns ErrInvalidInput when fewer than four digit runs are present or a
// run does not fit in an int. Digit runs past the fourth are ignored, as is
// surrounding noise.
func ParseMove(input string) (Move, error) {
	tokens := inputPattern.FindAllString(input, moveTokenCount)
	if len(tokens) < moveTokenCount {
		return Move{}, ErrInvalidInput
	}
	nums := make([]int, moveTokenCount)
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			// Digit run too large for int.
			return Move{}, ErrInvalidInput
		}
		nums[i] = n
	}
	return Move{Row1: nums[0], Col1: nums[1], Row2: nums[2], Col2: nums[3]}, nil
}
