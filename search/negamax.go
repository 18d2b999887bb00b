package search

import (
	"context"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/movegen"
)

// thanks Wikipedia:
/*
function negamax(node, depth, α, β, color) is
    if depth = 0 or node is a terminal node then
        return color × the heuristic value of node

    childNodes := generateMoves(node)
    childNodes := orderMoves(childNodes)
    value := −∞
    foreach child in childNodes do
        value := max(value, −negamax(child, depth − 1, −β, −α, −color))
        α := max(α, value)
        if α ≥ β then
            break (* cut-off *)
    return value
**/

const (
	// HugeNumber bounds the root window. It is larger than any score.
	HugeNumber = int(1e9)
	// WinScore is the score of a finished game that side to move has won.
	// It is finite so that it can be negated and compared safely.
	WinScore = int(1e8)
)

// finalScore scores a position in which neither side can move.
func finalScore(b board.Board, side board.Side) int {
	ours, theirs := b.Count(side), b.Count(side.Other())
	switch {
	case ours > theirs:
		return WinScore
	case ours < theirs:
		return -WinScore
	}
	return 0
}

// negamax searches b with side to move. The deadline is checked at every
// node, not just the leaves, so that a deep tree can't run far past it.
// Passing consumes a ply just like a move does.
func (s *Solver) negamax(ctx context.Context, dl Deadline, b board.Board, side board.Side,
	depth, α, β int) Result {

	if dl.Passed(ctx) {
		return timedOut
	}
	s.nodes.Add(1)
	if depth == 0 {
		return terminal(s.eval.Evaluate(b, side))
	}

	var plays movegen.Plays
	movegen.GenAll(b, side, &plays)

	if plays.Len() == 0 {
		if !movegen.HasMoves(b, side.Other()) {
			return terminal(finalScore(b, side))
		}
		r := s.negamax(ctx, dl, b, side.Other(), depth-1, -β, -α)
		if r.Kind == TimedOut {
			return r
		}
		return terminal(-r.Score)
	}

	bestValue := -HugeNumber
	var bestMove board.Position
	for _, child := range plays.All() {
		r := s.negamax(ctx, dl, child.Result, side.Other(), depth-1, -β, -α)
		if r.Kind == TimedOut {
			return r
		}
		if -r.Score > bestValue {
			bestValue = -r.Score
			bestMove = child.Pos
		}
		α = max(α, bestValue)
		if α >= β {
			// fail high
			return scored(bestMove, α)
		}
	}
	return scored(bestMove, bestValue)
}
