package board

import (
	"fmt"
)

// Cell is a cell tag in the canonical (slow) board format.
type Cell uint8

const (
	Empty Cell = iota
	BlackCell
	WhiteCell
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case BlackCell:
		return "black"
	case WhiteCell:
		return "white"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// Grid is the canonical board format: one tag per cell, indexed
// [row][col].
type Grid [Dim][Dim]Cell

// Cell returns the canonical tag for a side.
func (s Side) Cell() Cell {
	if s == White {
		return WhiteCell
	}
	return BlackCell
}

// SideOf converts a canonical tag for a side to a Side.
func SideOf(c Cell) (Side, error) {
	switch c {
	case BlackCell:
		return Black, nil
	case WhiteCell:
		return White, nil
	}
	return Black, fmt.Errorf("%v is not a side", c)
}

// FromGrid loads a canonical grid into a bit-board. The grid is passed by
// value, so the caller's copy is never touched.
func FromGrid(g Grid) Board {
	var b Board
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			switch g[r][c] {
			case BlackCell:
				b = b.Place(Pos(r, c), Black)
			case WhiteCell:
				b = b.Place(Pos(r, c), White)
			}
		}
	}
	return b
}

// Grid converts the bit-board back to the canonical format.
func (b Board) Grid() Grid {
	var g Grid
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if side, ok := b.Piece(Pos(r, c)); ok {
				g[r][c] = side.Cell()
			}
		}
	}
	return g
}
