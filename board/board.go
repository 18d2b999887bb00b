package board

import (
	"math/bits"
)

const (
	// Dim is the number of rows (and columns) on the board.
	Dim = 8
	// NumCells is the number of cells on the board, and so also the
	// maximum number of moves that can ever be available at once.
	NumCells = Dim * Dim
)

const (
	colMask  = uint64(0x0101010101010101)
	mainDiag = uint64(0x8040201008040201) // (0,0) to (7,7)
	antiDiag = uint64(0x0102040810204080) // (0,7) to (7,0)
	// CornerMask has the four corner cells asserted.
	CornerMask = uint64(0x8100000000000081)
)

// Side is one of the two colors. It is a one-bit value; the opponent of
// a side is always its complement.
type Side uint8

const (
	// Black moves first. In the canonical board format it is side A.
	Black Side = 0
	// White is side B.
	White Side = 1
)

// Other returns the opposing side.
func (s Side) Other() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// Board is a bit-board. Occupied has bit i set iff cell i holds a piece.
// Color has bit i set iff the piece at cell i is white; the bit is
// meaningless when the cell is empty.
//
// Nothing in this package ever sets a color bit without also setting the
// occupied bit, so two boards can be compared with ==.
type Board struct {
	Occupied uint64
	Color    uint64
}

// Initial returns the standard starting position.
func Initial() Board {
	var b Board
	b = b.Place(Pos(3, 3), White)
	b = b.Place(Pos(4, 4), White)
	b = b.Place(Pos(3, 4), Black)
	b = b.Place(Pos(4, 3), Black)
	return b
}

func bit(idx int) uint64 {
	return uint64(1) << uint(idx)
}

// HasPiece returns true if there is a piece of either color at p.
func (b Board) HasPiece(p Position) bool {
	return b.Occupied&bit(p.Index()) != 0
}

// ColorAt returns the color of the piece at p. The return value is
// indeterminate if the cell is empty.
func (b Board) ColorAt(p Position) Side {
	return Side((b.Color >> uint(p.Index())) & 1)
}

// Piece returns the color of the piece at p, and false if there isn't one.
func (b Board) Piece(p Position) (Side, bool) {
	if !b.HasPiece(p) {
		return Black, false
	}
	return b.ColorAt(p), true
}

// Place returns a copy of the board with a piece of the given color at p.
// Any piece already there is recolored.
func (b Board) Place(p Position, side Side) Board {
	m := bit(p.Index())
	b.Occupied |= m
	if side == White {
		b.Color |= m
	} else {
		b.Color &^= m
	}
	return b
}

// Pieces returns a mask of every cell holding a piece of the given color.
func (b Board) Pieces(side Side) uint64 {
	if side == White {
		return b.Occupied & b.Color
	}
	return b.Occupied &^ b.Color
}

// Count returns the number of pieces of the given color.
func (b Board) Count(side Side) int {
	return bits.OnesCount64(b.Pieces(side))
}

// Total returns the number of pieces on the board.
func (b Board) Total() int {
	return bits.OnesCount64(b.Occupied)
}

// Empty returns a mask of the empty cells.
func (b Board) Empty() uint64 {
	return ^b.Occupied
}

// SetRun returns a copy of the board with every cell on the inclusive run
// from p1 to p2 occupied by the given color. The two positions must be on
// the same row, column or diagonal.
func (b Board) SetRun(p1, p2 Position, side Side) Board {
	m := MoveMask(p1, p2)
	b.Occupied |= m
	if side == White {
		b.Color |= m
	} else {
		b.Color &^= m
	}
	return b
}

// RangeMask returns a mask with bits lo through hi (inclusive) asserted.
func RangeMask(lo, hi int) uint64 {
	// For a full 64-bit range the shift overflows to zero and the
	// subtraction wraps to all ones.
	m := uint64(1) << uint(hi-lo)
	m = m<<1 - 1
	return m << uint(lo)
}

// MoveMask returns a mask covering the inclusive line between p1 and p2.
// The positions may be given in either order, but they must be aligned
// horizontally, vertically or diagonally.
func MoveMask(p1, p2 Position) uint64 {
	if p1.Row > p2.Row || (p1.Row == p2.Row && p1.Col > p2.Col) {
		p1, p2 = p2, p1
	}
	lo, hi := p1.Index(), p2.Index()
	span := RangeMask(lo, hi)

	switch {
	case p1.Row == p2.Row:
		return span
	case p1.Col == p2.Col:
		return (colMask << uint(p1.Col)) & span
	case p1.Col < p2.Col:
		// Bits that wrap around a row edge after the shift always fall
		// outside of span.
		d := int(p1.Row) - int(p1.Col)
		if d >= 0 {
			return (mainDiag >> uint(d)) & span
		}
		return (mainDiag << uint(-d)) & span
	default:
		d := int(p1.Row) + int(p1.Col) - (Dim - 1)
		if d >= 0 {
			return (antiDiag << uint(d)) & span
		}
		return (antiDiag >> uint(-d)) & span
	}
}
