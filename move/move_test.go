package move

import (
	"sort"
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/domino14/reversi/board"
)

func TestList(t *testing.T) {
	is := is.New(t)
	var l List
	is.Equal(l.Len(), 0)
	for i := 0; i < board.NumCells; i++ {
		l.Push(board.PosFromIndex(i), i)
	}
	is.Equal(l.Len(), board.NumCells)
	is.Equal(l.At(10), Scored{Pos: board.Pos(1, 2), Score: 10})
	l.SetScore(10, -5)
	is.Equal(l.Moves()[10].Score, -5)
	l.Reset()
	is.Equal(l.Len(), 0)
	is.Equal(len(l.Moves()), 0)
}

func TestSortDescending(t *testing.T) {
	is := is.New(t)
	moves := []Scored{
		{board.Pos(0, 0), 3},
		{board.Pos(0, 1), 7},
		{board.Pos(0, 2), 3},
		{board.Pos(0, 3), -1},
		{board.Pos(0, 4), 7},
	}
	SortDescending(moves)
	is.Equal(moves, []Scored{
		{board.Pos(0, 1), 7},
		{board.Pos(0, 4), 7},
		{board.Pos(0, 0), 3},
		{board.Pos(0, 2), 3},
		{board.Pos(0, 3), -1},
	})
}

func TestSortDescendingMatchesStableSort(t *testing.T) {
	is := is.New(t)
	for trial := 0; trial < 100; trial++ {
		n := frand.Intn(board.NumCells + 1)
		moves := make([]Scored, n)
		for i := range moves {
			// few distinct scores so that ties are common
			moves[i] = Scored{Pos: board.PosFromIndex(i), Score: frand.Intn(5) - 2}
		}
		expected := make([]Scored, n)
		copy(expected, moves)
		sort.SliceStable(expected, func(i, j int) bool {
			return expected[i].Score > expected[j].Score
		})
		SortDescending(moves)
		is.Equal(moves, expected)
	}
}

func TestSortEmpty(t *testing.T) {
	SortDescending(nil)
	SortDescending([]Scored{{board.Pos(3, 3), 1}})
}
