package game

import "errors"

// Recoverable move errors. Each one maps to a re-prompt in the console loop;
// none of them consume a move or mutate board state.
var (
	// ErrInvalidInput means the line did not contain four parseable integers.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfBounds means a position references a cell outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrDuplicatePosition means both selections name the same cell.
	ErrDuplicatePosition = errors.New("duplicate position")

	// ErrAlreadyPaired means a referenced card was matched on an earlier turn.
	ErrAlreadyPaired = errors.New("card already paired")
)
