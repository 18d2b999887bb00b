package move

import (
	"fmt"

	"github.com/domino14/reversi/board"
)

// Scored pairs a position with a score. It is the unit of move ordering
// and the payload of a search result.
type Scored struct {
	Pos   board.Position
	Score int
}

func (s Scored) String() string {
	return fmt.Sprintf("%v (%d)", s.Pos, s.Score)
}

// List is a fixed-capacity move list. There can never be more moves than
// cells, so it never allocates.
type List struct {
	moves [board.NumCells]Scored
	n     int
}

// Push appends a move. It panics if the list is full, which would mean
// more than one entry per cell.
func (l *List) Push(p board.Position, score int) {
	l.moves[l.n] = Scored{Pos: p, Score: score}
	l.n++
}

func (l *List) Len() int {
	return l.n
}

// At returns the i-th move.
func (l *List) At(i int) Scored {
	return l.moves[i]
}

func (l *List) SetScore(i, score int) {
	l.moves[i].Score = score
}

// Moves returns a view of the list's contents. Writes through the slice
// modify the list.
func (l *List) Moves() []Scored {
	return l.moves[:l.n]
}

func (l *List) Reset() {
	l.n = 0
}
