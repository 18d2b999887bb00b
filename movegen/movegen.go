// Package movegen finds and executes legal moves on a bit-board.
package movegen

import (
	"math/bits"

	"github.com/domino14/reversi/board"
)

type direction struct {
	dr, dc int8
}

// The scan order is fixed so that results are reproducible.
var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Execute plays a piece of the given color at p and returns the resulting
// board. If p is occupied, or no direction brackets any opponent pieces,
// the board is returned unchanged; an unchanged board means the move was
// illegal.
func Execute(b board.Board, p board.Position, side board.Side) board.Board {
	if b.HasPiece(p) {
		return b
	}
	for _, d := range directions {
		b = executePartial(b, p, side, d)
	}
	return b
}

// executePartial flips the run in one direction from start, if there is a
// run to flip.
func executePartial(b board.Board, start board.Position, side board.Side, d direction) board.Board {
	first := start.Step(d.dr, d.dc)
	for end := first; end.InBounds(); end = end.Step(d.dr, d.dc) {
		color, ok := b.Piece(end)
		if ok && color != side {
			continue
		}
		if ok && end != first {
			// At least one opponent piece is bracketed.
			return b.SetRun(start, end, side)
		}
		return b
	}
	return b
}

// IsLegal returns true if playing at p would flip at least one piece. It
// never builds a new board, but always agrees with Execute.
func IsLegal(b board.Board, p board.Position, side board.Side) bool {
	if b.HasPiece(p) {
		return false
	}
	for _, d := range directions {
		if brackets(b, p, side, d) {
			return true
		}
	}
	return false
}

func brackets(b board.Board, start board.Position, side board.Side, d direction) bool {
	n := 0
	for end := start.Step(d.dr, d.dc); end.InBounds(); end = end.Step(d.dr, d.dc) {
		color, ok := b.Piece(end)
		if !ok {
			return false
		}
		if color == side {
			return n > 0
		}
		n++
	}
	return false
}

// Play is a legal move along with the board it produces.
type Play struct {
	Pos    board.Position
	Result board.Board
}

// Plays is a fixed-capacity buffer of legal moves.
type Plays struct {
	plays [board.NumCells]Play
	n     int
}

func (p *Plays) Len() int {
	return p.n
}

func (p *Plays) At(i int) Play {
	return p.plays[i]
}

// All returns a view of the buffer's contents.
func (p *Plays) All() []Play {
	return p.plays[:p.n]
}

func (p *Plays) Reset() {
	p.n = 0
}

func (p *Plays) push(pos board.Position, result board.Board) {
	p.plays[p.n] = Play{Pos: pos, Result: result}
	p.n++
}

// GenAll fills out with every legal move for side, in row-major order. A
// cell is a candidate iff executing it changes the board.
func GenAll(b board.Board, side board.Side, out *Plays) {
	out.Reset()
	for idx := 0; idx < board.NumCells; idx++ {
		pos := board.PosFromIndex(idx)
		if nb := Execute(b, pos, side); nb != b {
			out.push(pos, nb)
		}
	}
}

// Mobility returns the number of legal moves for side.
func Mobility(b board.Board, side board.Side) int {
	n := 0
	for idx := 0; idx < board.NumCells; idx++ {
		if Execute(b, board.PosFromIndex(idx), side) != b {
			n++
		}
	}
	return n
}

// HasMoves returns true if side has at least one legal move.
func HasMoves(b board.Board, side board.Side) bool {
	for idx := 0; idx < board.NumCells; idx++ {
		if IsLegal(b, board.PosFromIndex(idx), side) {
			return true
		}
	}
	return false
}

// EstimateMobility counts the empty cells adjacent to at least one
// opponent piece. Every legal move is such a cell, so this is an upper
// bound on Mobility that costs a handful of shifts.
func EstimateMobility(b board.Board, side board.Side) int {
	return bits.OnesCount64(neighbors(b.Pieces(side.Other())) & b.Empty())
}

const (
	notColA = uint64(0xfefefefefefefefe)
	notColH = uint64(0x7f7f7f7f7f7f7f7f)
)

// neighbors returns the cells adjacent to any cell in m.
func neighbors(m uint64) uint64 {
	// Bit index increases to the east (col+1) and south (row+1).
	east := (m << 1) & notColA
	west := (m >> 1) & notColH
	row := m | east | west
	return east | west | row<<8 | row>>8
}
