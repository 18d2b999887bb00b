package equity

import (
	"github.com/domino14/reversi/board"
)

// Evaluator statically scores a position. Higher is better for side.
type Evaluator interface {
	Evaluate(b board.Board, side board.Side) int
}
