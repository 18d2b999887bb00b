// Package notation reads and writes positions in a compact one-line
// format: eight rows from top to bottom separated by slashes, X for black,
// O for white, and digits for runs of empty cells, followed by a space and
// the side to move. The standard start is
//
//	8/8/8/3OX3/3XO3/8/8/8 X
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/reversi/board"
)

var (
	ErrWrongFieldCount = errors.New("must have a board and a side to move separated by a space")
	ErrWrongRowCount   = errors.New("board must have 8 rows")
)

const (
	blackRune = 'X'
	whiteRune = 'O'
)

// Parse returns the board and side to move described by s.
func Parse(s string) (board.Board, board.Side, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return board.Board{}, board.Black, ErrWrongFieldCount
	}
	rows := strings.Split(fields[0], "/")
	if len(rows) != board.Dim {
		return board.Board{}, board.Black, ErrWrongRowCount
	}
	var b board.Board
	for r, row := range rows {
		var err error
		b, err = parseRow(b, r, row)
		if err != nil {
			return board.Board{}, board.Black, err
		}
	}
	side, err := parseSide(fields[1])
	if err != nil {
		return board.Board{}, board.Black, err
	}
	return b, side, nil
}

func parseRow(b board.Board, r int, row string) (board.Board, error) {
	c := 0
	for _, rn := range row {
		switch {
		case rn >= '1' && rn <= '8':
			c += int(rn - '0')
		case rn == blackRune || rn == whiteRune:
			if c >= board.Dim {
				return b, fmt.Errorf("row %d is too long: %q", r+1, row)
			}
			side := board.Black
			if rn == whiteRune {
				side = board.White
			}
			b = b.Place(board.Pos(r, c), side)
			c++
		default:
			return b, fmt.Errorf("row %d has an unexpected character %q", r+1, rn)
		}
	}
	if c != board.Dim {
		return b, fmt.Errorf("row %d covers %d cells, not %d: %q", r+1, c, board.Dim, row)
	}
	return b, nil
}

func parseSide(s string) (board.Side, error) {
	switch s {
	case string(blackRune):
		return board.Black, nil
	case string(whiteRune):
		return board.White, nil
	}
	return board.Black, fmt.Errorf("side to move must be %c or %c, not %q", blackRune, whiteRune, s)
}

func sideRune(s board.Side) rune {
	if s == board.White {
		return whiteRune
	}
	return blackRune
}

// Format is the inverse of Parse.
func Format(b board.Board, side board.Side) string {
	var sb strings.Builder
	for r := 0; r < board.Dim; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empties := 0
		for c := 0; c < board.Dim; c++ {
			color, ok := b.Piece(board.Pos(r, c))
			if !ok {
				empties++
				continue
			}
			if empties > 0 {
				fmt.Fprintf(&sb, "%d", empties)
				empties = 0
			}
			sb.WriteRune(sideRune(color))
		}
		if empties > 0 {
			fmt.Fprintf(&sb, "%d", empties)
		}
	}
	sb.WriteByte(' ')
	sb.WriteRune(sideRune(side))
	return sb.String()
}

// ParseGrid is Parse for callers that want the canonical format.
func ParseGrid(s string) (board.Grid, board.Side, error) {
	b, side, err := Parse(s)
	if err != nil {
		return board.Grid{}, side, err
	}
	return b.Grid(), side, nil
}
