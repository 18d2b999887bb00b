package search

import (
	"fmt"

	"github.com/domino14/reversi/board"
)

// Kind says which of the three possible outcomes a search node produced.
type Kind uint8

const (
	// Scored means a move was found; Move and Score are both valid.
	Scored Kind = iota
	// Terminal means the score is valid but there is no move attached:
	// a leaf evaluation, a finished game, or a forced pass.
	Terminal
	// TimedOut means the deadline passed. Neither Move nor Score mean
	// anything.
	TimedOut
)

func (k Kind) String() string {
	switch k {
	case Scored:
		return "scored"
	case Terminal:
		return "terminal"
	case TimedOut:
		return "timed-out"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Result is the outcome of searching a node.
type Result struct {
	Kind  Kind
	Move  board.Position
	Score int
}

func scored(p board.Position, score int) Result {
	return Result{Kind: Scored, Move: p, Score: score}
}

func terminal(score int) Result {
	return Result{Kind: Terminal, Score: score}
}

var timedOut = Result{Kind: TimedOut}

func (r Result) String() string {
	switch r.Kind {
	case Scored:
		return fmt.Sprintf("<%v %d>", r.Move, r.Score)
	case Terminal:
		return fmt.Sprintf("<terminal %d>", r.Score)
	}
	return "<timed out>"
}
