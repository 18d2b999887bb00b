package search

import (
	"context"
	"math/bits"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/equity"
	"github.com/domino14/reversi/movegen"
	"github.com/domino14/reversi/testhelpers"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

// fullWidth is negamax without any pruning.
func fullWidth(e equity.Evaluator, b board.Board, side board.Side, depth int) Result {
	if depth == 0 {
		return terminal(e.Evaluate(b, side))
	}
	var plays movegen.Plays
	movegen.GenAll(b, side, &plays)
	if plays.Len() == 0 {
		if !movegen.HasMoves(b, side.Other()) {
			return terminal(finalScore(b, side))
		}
		return terminal(-fullWidth(e, b, side.Other(), depth-1).Score)
	}
	best := -HugeNumber
	var bestMove board.Position
	for _, p := range plays.All() {
		if v := -fullWidth(e, p.Result, side.Other(), depth-1).Score; v > best {
			best, bestMove = v, p.Pos
		}
	}
	return scored(bestMove, best)
}

func TestOpeningDepthOne(t *testing.T) {
	is := is.New(t)
	s := NewDefaultSolver()
	r := s.SearchDepth(context.Background(), board.Initial(), board.Black, 1)
	is.Equal(r.Kind, Scored)
	is.True(r.Move == board.Pos(2, 3) || r.Move == board.Pos(3, 2) ||
		r.Move == board.Pos(4, 5) || r.Move == board.Pos(5, 4))
}

func TestAlphaBetaMatchesFullWidth(t *testing.T) {
	is := is.New(t)
	s := NewDefaultSolver()
	e := equity.DefaultStaticEvaluator()
	for seed := uint64(0); seed < 12; seed++ {
		b, side := testhelpers.Playout(seed, 16+int(seed))
		if !movegen.HasMoves(b, side) {
			continue
		}
		for depth := 1; depth <= 3; depth++ {
			want := fullWidth(e, b, side, depth)
			got := s.SearchDepth(context.Background(), b, side, depth)
			is.Equal(got, want)
		}
	}
}

func TestFewMovesMidgame(t *testing.T) {
	is := is.New(t)
	s := NewDefaultSolver()
	e := equity.DefaultStaticEvaluator()
	checked := 0
	for seed := uint64(100); seed < 400 && checked < 3; seed++ {
		b, side := testhelpers.Playout(seed, 24)
		if n := movegen.Mobility(b, side); n == 0 || n > 8 {
			continue
		}
		checked++
		is.Equal(s.SearchDepth(context.Background(), b, side, 4), fullWidth(e, b, side, 4))
	}
	is.True(checked > 0)
}

func TestPassConsumesPly(t *testing.T) {
	is := is.New(t)
	b, side := testhelpers.MustParse(testhelpers.CornerWinPosition)
	s := NewDefaultSolver()
	// Two of our moves around a pass fit in three plies, but the game
	// isn't seen to end until the fourth.
	r := s.SearchDepth(context.Background(), b, side, 3)
	is.True(r.Score < WinScore)
	r = s.SearchDepth(context.Background(), b, side, 4)
	is.Equal(r.Score, WinScore)
	is.Equal(r.Kind, Scored)
}

func TestFinalScore(t *testing.T) {
	is := is.New(t)
	var b board.Board
	b = b.Place(board.Pos(0, 0), board.Black)
	b = b.Place(board.Pos(0, 1), board.Black)
	b = b.Place(board.Pos(7, 7), board.White)
	is.Equal(finalScore(b, board.Black), WinScore)
	is.Equal(finalScore(b, board.White), -WinScore)
	b = b.Place(board.Pos(7, 6), board.White)
	is.Equal(finalScore(b, board.Black), 0)
}

func TestDeadlineStopsSearch(t *testing.T) {
	is := is.New(t)
	s := NewDefaultSolver()
	clk := &frozenClock{t: testStart}
	dl := NewDeadline(clk, testStart)
	r := s.negamax(context.Background(), dl, board.Initial(), board.Black, 3, -HugeNumber, HugeNumber)
	is.Equal(r.Kind, TimedOut)
}

func BenchmarkSearchDepth5(b *testing.B) {
	s := NewDefaultSolver()
	pos, side := testhelpers.Playout(7, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.SearchDepth(context.Background(), pos, side, 5)
	}
}

func TestSearchDepthCanceled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewDefaultSolver().SearchDepth(ctx, board.Initial(), board.Black, 6)
	is.Equal(r.Kind, TimedOut)
}

// pieceCounter scores by piece difference plus a large bonus per corner.
type pieceCounter struct{}

func (pieceCounter) Evaluate(b board.Board, side board.Side) int {
	return b.Count(side) - b.Count(side.Other()) + 100*bits.OnesCount64(b.Pieces(side)&board.CornerMask)
}

func TestSetEvaluator(t *testing.T) {
	is := is.New(t)
	b, side := testhelpers.MustParse(testhelpers.CornerWinPosition)
	s := NewDefaultSolver()
	s.SetEvaluator(pieceCounter{})
	r := s.SearchDepth(context.Background(), b, side, 1)
	// a1 and h8 score the same, so the first in row-major order wins.
	is.Equal(r.Move, board.Pos(0, 0))
	child := movegen.Execute(b, board.Pos(0, 0), side)
	is.Equal(r.Score, -pieceCounter{}.Evaluate(child, side.Other()))
	is.Equal(r.Score, 61)

	for depth := 1; depth <= 3; depth++ {
		is.Equal(s.SearchDepth(context.Background(), b, side, depth), fullWidth(pieceCounter{}, b, side, depth))
	}
}
