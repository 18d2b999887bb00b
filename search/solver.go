package search

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/equity"
	"github.com/domino14/reversi/move"
	"github.com/domino14/reversi/movegen"
)

const DefaultMaxDepth = 24

var (
	ErrNoLegalMoves = errors.New("no legal moves for side to move")
)

// Decision is what Solve settled on.
type Decision struct {
	Move  board.Position
	Score int
	// Depth is the last depth that was searched to completion. It is 0
	// if there was only one move to choose from.
	Depth     int
	Nodes     uint64
	Elapsed   time.Duration
	Allocated time.Duration
}

// Solver picks moves. A Solver may be reused for many positions, but
// must not be used by more than one goroutine at a time.
type Solver struct {
	eval     equity.Evaluator
	clock    Clock
	tc       TimeControl
	maxDepth int

	nodes atomic.Uint64
}

// NewSolver creates a solver configured from cfg.
func NewSolver(cfg *config.Config) *Solver {
	return &Solver{
		eval:     equity.NewStaticEvaluator(cfg),
		clock:    SystemClock,
		tc:       NewTimeControl(cfg),
		maxDepth: max(1, cfg.GetInt(config.ConfigMaxDepth)),
	}
}

// NewDefaultSolver creates a solver with the default weights and timing.
func NewDefaultSolver() *Solver {
	return &Solver{
		eval:     equity.DefaultStaticEvaluator(),
		clock:    SystemClock,
		tc:       DefaultTimeControl(),
		maxDepth: DefaultMaxDepth,
	}
}

func (s *Solver) SetClock(c Clock) {
	s.clock = c
}

func (s *Solver) SetEvaluator(e equity.Evaluator) {
	s.eval = e
}

func (s *Solver) SetTimeControl(tc TimeControl) {
	s.tc = tc
}

func (s *Solver) SetMaxDepth(d int) {
	s.maxDepth = max(1, d)
}

func (s *Solver) MaxDepth() int {
	return s.maxDepth
}

// SearchDepth runs a plain alpha-beta search of b to the given depth, with
// no time limit. The result is TimedOut if ctx is done first.
func (s *Solver) SearchDepth(ctx context.Context, b board.Board, side board.Side, depth int) Result {
	s.nodes.Store(0)
	return s.negamax(ctx, Unbounded(), b, side, depth, -HugeNumber, HugeNumber)
}

// searchRoot searches every root move to the given depth, in the list's
// current order. If it finishes, the list is re-sorted best first using
// the new scores and true is returned. If it runs out of time the list is
// left exactly as it was.
func (s *Solver) searchRoot(ctx context.Context, dl Deadline, b board.Board, side board.Side,
	root *move.List, depth int) bool {

	var scores [board.NumCells]int
	α, β := -HugeNumber, HugeNumber
	for i, m := range root.Moves() {
		child := movegen.Execute(b, m.Pos, side)
		r := s.negamax(ctx, dl, child, side.Other(), depth-1, -β, -α)
		if r.Kind == TimedOut {
			return false
		}
		scores[i] = -r.Score
		α = max(α, scores[i])
	}
	for i := 0; i < root.Len(); i++ {
		root.SetScore(i, scores[i])
	}
	move.SortDescending(root.Moves())
	return true
}

func (s *Solver) iterativelyDeepen(ctx context.Context, dl Deadline, b board.Board,
	side board.Side, root *move.List, dec *Decision) {

	for depth := 1; depth <= s.maxDepth; depth++ {
		log.Debug().Int("plies", depth).Msg("deepening-iteratively")
		ddl := dl
		if depth == 1 {
			// Depth 1 is cheap and always runs to completion, so that
			// there is an answer no matter how little time we have.
			ddl = Deadline{}
		}
		if !s.searchRoot(ctx, ddl, b, side, root, depth) {
			log.Debug().Int("plies", depth).Msg("out-of-time")
			return
		}
		best := root.At(0)
		dec.Move, dec.Score, dec.Depth = best.Pos, best.Score, depth

		if e := log.Debug(); e.Enabled() {
			e.Int("ply", depth).Int("score", best.Score).Stringer("move", best.Pos).
				Strs("order", lo.Map(root.Moves(), func(m move.Scored, _ int) string {
					return m.String()
				})).
				Msg("best-val")
		}
		if best.Score >= WinScore || best.Score <= -WinScore {
			// The game is decided either way.
			return
		}
	}
}

// Solve chooses a move for side on b, using no more time than the time
// control allows for a player with secondsRemaining whole seconds left.
// It returns ErrNoLegalMoves if side has no move.
func (s *Solver) Solve(ctx context.Context, b board.Board, side board.Side, secondsRemaining int) (Decision, error) {
	start := s.clock.Now()
	s.nodes.Store(0)
	alloc := s.tc.Allocate(start, b.Total(), secondsRemaining)
	dl := NewDeadline(s.clock, start.Add(alloc))
	log.Debug().Int("seconds-remaining", secondsRemaining).Int("pieces", b.Total()).
		Int("frontier", movegen.EstimateMobility(b, side)).
		Dur("allocated", alloc).Msg("time-allocation")

	var plays movegen.Plays
	var root move.List
	movegen.GenAll(b, side, &plays)
	for _, p := range plays.All() {
		root.Push(p.Pos, 0)
	}
	if root.Len() == 0 {
		return Decision{}, ErrNoLegalMoves
	}
	dec := Decision{Move: root.At(0).Pos, Allocated: alloc}
	if root.Len() == 1 {
		log.Debug().Stringer("move", dec.Move).Msg("only-one-move")
		dec.Elapsed = s.clock.Now().Sub(start)
		return dec, nil
	}

	g := errgroup.Group{}
	done := make(chan struct{})
	g.Go(func() error {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		var lastNodes uint64
		for {
			select {
			case <-done:
				return nil
			case <-ticker.C:
				nodes := s.nodes.Load()
				log.Debug().Uint64("nps", nodes-lastNodes).Msg("nodes-per-second")
				lastNodes = nodes
			}
		}
	})

	s.iterativelyDeepen(ctx, dl, b, side, &root, &dec)
	close(done)
	// The ticker never fails.
	_ = g.Wait()

	dec.Nodes = s.nodes.Load()
	dec.Elapsed = s.clock.Now().Sub(start)
	log.Info().
		Stringer("move", dec.Move).
		Int("score", dec.Score).
		Int("depth", dec.Depth).
		Uint64("nodes", dec.Nodes).
		Float64("time-elapsed-sec", dec.Elapsed.Seconds()).
		Float64("time-allocated-sec", alloc.Seconds()).
		Msg("select-move-returning")
	return dec, nil
}

// SelectMove takes a board in the canonical format and returns the row
// and column to play. The grid is copied, never modified.
func (s *Solver) SelectMove(ctx context.Context, g board.Grid, side board.Side, secondsRemaining int) (int, int, error) {
	dec, err := s.Solve(ctx, board.FromGrid(g), side, secondsRemaining)
	if err != nil {
		return 0, 0, err
	}
	return int(dec.Move.Row), int(dec.Move.Col), nil
}

// SelectMove chooses a move with a default solver.
func SelectMove(ctx context.Context, g board.Grid, side board.Side, secondsRemaining int) (int, int, error) {
	return NewDefaultSolver().SelectMove(ctx, g, side, secondsRemaining)
}
