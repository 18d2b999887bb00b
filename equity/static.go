package equity

import (
	"math/bits"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/movegen"
)

// StaticEvaluator scores a leaf position by mobility difference, a small
// piece-parity term, and a bonus for each corner held. The corner bonus
// grows as the game goes on.
type StaticEvaluator struct {
	// ParityWeight scales side's share of the pieces on the board.
	ParityWeight int
	// CornerBase is the value of a corner at the start of the game.
	CornerBase int
	// CornerStep is added to the corner value every CornerPeriod half-moves.
	CornerStep   int
	CornerPeriod int
}

func DefaultStaticEvaluator() *StaticEvaluator {
	return &StaticEvaluator{
		ParityWeight: 4,
		CornerBase:   4,
		CornerStep:   4,
		CornerPeriod: 8,
	}
}

// NewStaticEvaluator reads weights from the config.
func NewStaticEvaluator(cfg *config.Config) *StaticEvaluator {
	e := &StaticEvaluator{
		ParityWeight: cfg.GetInt(config.ConfigParityWeight),
		CornerBase:   cfg.GetInt(config.ConfigCornerBase),
		CornerStep:   cfg.GetInt(config.ConfigCornerStep),
		CornerPeriod: cfg.GetInt(config.ConfigCornerPeriod),
	}
	if e.CornerPeriod <= 0 {
		e.CornerPeriod = 1
	}
	return e
}

// HalfMoves returns the number of half-moves played, derived from the
// number of pieces; the 4-piece start is half-move 0.
func HalfMoves(b board.Board) int {
	return max(0, b.Total()-4)
}

// CornerWeight returns the value of one corner at the given half-move.
func (e *StaticEvaluator) CornerWeight(halfMoves int) int {
	return e.CornerBase + e.CornerStep*(halfMoves/e.CornerPeriod)
}

func (e *StaticEvaluator) Evaluate(b board.Board, side board.Side) int {
	score := movegen.Mobility(b, side) - movegen.Mobility(b, side.Other())

	if total := b.Total(); total > 0 {
		score += e.ParityWeight * b.Count(side) / total
	}

	corners := bits.OnesCount64(b.Pieces(side) & board.CornerMask)
	score += corners * e.CornerWeight(HalfMoves(b))
	return score
}
