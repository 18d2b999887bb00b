package search

import (
	"time"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/config"
)

// TimeControl decides how long to think about a move.
//
// The game clock is charged in whole seconds, so a move that finishes
// before the wall-clock second rolls over is nearly free. Opening moves
// aim to finish by OpeningMark into the current second. Later moves get
// MidgameBase plus the same lined-up remainder, so they also end just
// short of a second boundary.
type TimeControl struct {
	OpeningPieces int
	OpeningMark   time.Duration
	MidgameBase   time.Duration
	SafetyMargin  time.Duration
}

func DefaultTimeControl() TimeControl {
	return TimeControl{
		OpeningPieces: 20,
		OpeningMark:   950 * time.Millisecond,
		MidgameBase:   5500 * time.Millisecond,
		SafetyMargin:  50 * time.Millisecond,
	}
}

func NewTimeControl(cfg *config.Config) TimeControl {
	return TimeControl{
		OpeningPieces: cfg.GetInt(config.ConfigOpeningPieces),
		OpeningMark:   time.Duration(cfg.GetInt(config.ConfigOpeningMarkMs)) * time.Millisecond,
		MidgameBase:   time.Duration(cfg.GetInt(config.ConfigMidgameBaseMs)) * time.Millisecond,
		SafetyMargin:  time.Duration(cfg.GetInt(config.ConfigSafetyMarginMs)) * time.Millisecond,
	}
}

// Allocate returns the time to spend on a move that starts at now, with
// the given number of pieces on the board and whole seconds left on our
// clock. The result is never negative and never more than an even share
// of what is left for the rest of our moves.
func (tc TimeControl) Allocate(now time.Time, pieces, secondsRemaining int) time.Duration {
	intoSecond := time.Duration(now.Nanosecond())

	var alloc time.Duration
	if pieces < tc.OpeningPieces {
		alloc = tc.OpeningMark - intoSecond
	} else {
		alloc = tc.MidgameBase + tc.OpeningMark - intoSecond
	}

	budget := time.Duration(secondsRemaining)*time.Second - tc.SafetyMargin
	// We make every other move from here on.
	movesLeft := max(1, (board.NumCells-pieces+1)/2)
	alloc = min(alloc, budget/time.Duration(movesLeft))
	return max(alloc, 0)
}
