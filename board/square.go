package board

import (
	"errors"
	"fmt"
)

var ErrBadCoords = errors.New("bad coordinates")

// Position is a (row, col) pair. The components are signed so that a scan
// can step one cell off the board before it notices.
type Position struct {
	Row int8
	Col int8
}

// Pos creates a position from a row and column.
func Pos(row, col int) Position {
	return Position{Row: int8(row), Col: int8(col)}
}

// PosFromIndex is the inverse of Index.
func PosFromIndex(idx int) Position {
	return Pos(idx/Dim, idx%Dim)
}

// InBounds returns true if the position is on the board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Dim && p.Col >= 0 && p.Col < Dim
}

// Index returns the bit index of the position: row*8 + col.
func (p Position) Index() int {
	return int(p.Row)*Dim + int(p.Col)
}

// Step returns the position one cell away in direction (dr, dc).
func (p Position) Step(dr, dc int8) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String returns the usual Othello coordinates; columns are a-h and rows
// are 1-8 from the top. Row 2, column 3 is d3.
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

// ParsePosition parses coordinates such as "d3" or "D3".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrBadCoords, s)
	}
	c := s[0]
	if c >= 'A' && c <= 'H' {
		c += 'a' - 'A'
	}
	r := s[1]
	if c < 'a' || c > 'h' || r < '1' || r > '8' {
		return Position{}, fmt.Errorf("%w: %q", ErrBadCoords, s)
	}
	return Pos(int(r-'1'), int(c-'a')), nil
}
