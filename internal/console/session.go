// internal/console/session.go
//
// The interactive turn loop for a concentration game.
// Responsibilities:
//   - Drive the state machine: prompt → parse → validate → flip → evaluate.
//   - Quit keyword and end-of-input both take the loss path: hide the
//     board, show final stats, no replay prompt.
//   - Win path: show final stats, record the result, offer a replay.
//
// I/O is injected (any io.Reader/io.Writer pair), so the whole loop runs
// under test with scripted input and captured output. Logs go through
// zerolog and never mix with the game transcript.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"concentration/internal/game"
	"concentration/internal/names"
	"concentration/internal/store"
)

// Session owns one board and one player for the lifetime of the process.
// A replay reshuffles the board and resets the player in place.
type Session struct {
	board   *game.Board
	player  *game.Player
	pool    names.Pool
	results store.Store
	in      *bufio.Scanner
	out     io.Writer
	log     zerolog.Logger

	matchFound bool
	startedAt  time.Time
}

// New constructs a session over the given board, label pool, result store,
// and I/O pair.
func New(board *game.Board, pool names.Pool, results store.Store, in io.Reader, out io.Writer) *Session {
	return &Session{
		board:   board,
		player:  game.NewPlayer(),
		pool:    pool,
		results: results,
		in:      bufio.NewScanner(in),
		out:     out,
		log:     log.With().Str("component", "console").Logger(),
	}
}

// Run plays games until the player quits or declines a replay. The returned
// error is non-nil only for configuration failures during setup; every
// normal termination path returns nil so the process can exit 0.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := s.setup(); err != nil {
			return err
		}
		won := s.playThrough()
		s.record(ctx, won)
		if !won {
			// Quit path: no replay prompt.
			return nil
		}
		if !s.askReplay() {
			return nil
		}
	}
}

// setup shuffles a fresh layout and zeroes the per-game state.
func (s *Session) setup() error {
	values, err := s.pool.Pick(s.board.PossibleMatches())
	if err != nil {
		return err
	}
	if err := s.board.Setup(values); err != nil {
		return err
	}
	s.player.Reset()
	s.matchFound = false
	s.startedAt = time.Now()
	return nil
}

// playThrough runs one game to completion. Returns true on a win, false
// when the player quit (or input ended).
func (s *Session) playThrough() bool {
	for s.player.Matches() != s.board.PossibleMatches() {
		fmt.Fprintln(s.out, s.board)
		s.printMatchMessage()
		if quit := s.handleInput(); quit {
			s.board.HideCards()
			s.finish(false)
			return false
		}
	}
	s.finish(true)
	return true
}

// handleInput prompts until one valid move has been flipped and evaluated.
// Returns true when the player quit instead. Failed attempts consume no
// move and no match.
func (s *Session) handleInput() (quit bool) {
	for {
		fmt.Fprint(s.out, inputPrompt)
		line, ok := s.readLine()
		if !ok {
			// End of input is treated like the quit keyword.
			return true
		}
		if strings.ToLower(strings.TrimSpace(line)) == exitKeyword {
			return true
		}

		move, err := game.ParseMove(line)
		if err != nil {
			s.printInputError(invalidInputMessage)
			continue
		}
		if err := s.board.Validate(move); err != nil {
			s.printInputError(moveErrorMessage(err))
			continue
		}

		s.flipCards(move)
		return false
	}
}

// flipCards plays one validated move: hides leftovers from the previous
// turn, flips the chosen cards, and evaluates the match.
func (s *Session) flipCards(m game.Move) {
	first, _ := s.board.CardAt(m.Row1, m.Col1)
	second, _ := s.board.CardAt(m.Row2, m.Col2)

	s.board.HideCards()
	first.Flip(true)
	second.Flip(true)

	fmt.Fprintf(s.out, "\nFlipping cards at (%d, %d) and (%d, %d)...\n", m.Row1, m.Col1, m.Row2, m.Col2)

	matched := first.Equals(second)
	if matched {
		first.Pair(true)
		second.Pair(true)
		s.player.AddMatch()
		s.matchFound = true
	}
	s.player.AddMove()

	s.log.Debug().
		Int("moves", s.player.Moves()).
		Int("matches", s.player.Matches()).
		Bool("matched", matched).
		Msg("move evaluated")
}

// printMatchMessage tells the player how the last move went, or shows the
// instructions before the first move.
func (s *Session) printMatchMessage() {
	if s.matchFound {
		fmt.Fprintln(s.out, matchMadeMessage)
		s.matchFound = false
	} else if s.player.Moves() > 0 {
		fmt.Fprintln(s.out, noMatchMessage)
	}
	if s.player.Moves() == 0 {
		fmt.Fprintf(s.out, "%s\n%s\n", inputInstructions, inputExample)
	}
}

// printInputError reports a rejected attempt along with the suggestion and
// an example of well-formed input.
func (s *Session) printInputError(message string) {
	fmt.Fprintf(s.out, "\n%s\n%s\n%s\n\n", message, inputSuggestion, inputExample)
}

// moveErrorMessage maps the game error taxonomy onto user-facing text.
func moveErrorMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrDuplicatePosition):
		return duplicateCardMessage
	case errors.Is(err, game.ErrOutOfBounds):
		return outOfBoundsMessage
	case errors.Is(err, game.ErrAlreadyPaired):
		return alreadyPairedMessage
	default:
		return invalidInputMessage
	}
}

// finish renders the board one last time and prints the summary with the
// grammatically matching nouns.
func (s *Session) finish(won bool) {
	fmt.Fprintln(s.out, s.board)

	moveNoun := "moves"
	if s.player.Moves() == 1 {
		moveNoun = "move"
	}
	matchNoun := "matches"
	if s.player.Matches() == 1 {
		matchNoun = "match"
	}

	if won {
		fmt.Fprintln(s.out, gameWonMessage)
	} else {
		fmt.Fprintln(s.out, gameOverMessage)
	}
	fmt.Fprintf(s.out, "You made %d %s and %d %s.\n", s.player.Moves(), moveNoun, s.player.Matches(), matchNoun)
}

// record persists the finished play-through. Store failures are logged and
// otherwise ignored: persistence must never interrupt play.
func (s *Session) record(ctx context.Context, won bool) {
	r := store.Result{
		ID:       uuid.NewString(),
		Won:      won,
		Moves:    s.player.Moves(),
		Matches:  s.player.Matches(),
		PlayedAt: s.startedAt,
		Duration: time.Since(s.startedAt),
	}
	if err := s.results.SaveResult(ctx, r); err != nil {
		s.log.Warn().Err(err).Msg("failed to record result")
		return
	}
	if !won {
		return
	}
	if best, ok, err := s.results.BestWin(ctx); err == nil && ok && best.ID == r.ID {
		s.log.Info().Int("moves", r.Moves).Msg("new personal best")
	}
}

// askReplay loops until the player answers yes or no. End of input counts
// as no.
func (s *Session) askReplay() bool {
	fmt.Fprintln(s.out, replayPrompt)
	for {
		fmt.Fprint(s.out, answerPrompt)
		line, ok := s.readLine()
		if !ok {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case affirmativeResponse:
			return true
		case negativeResponse:
			return false
		}
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
