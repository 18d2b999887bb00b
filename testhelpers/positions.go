package testhelpers

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/movegen"
	"github.com/domino14/reversi/notation"
)

var DefaultConfig = config.DefaultConfig()

const (
	InitialPosition = "8/8/8/3OX3/3XO3/8/8/8 X"
	// Black's only move is c1.
	OneMovePosition = "XO6/8/8/8/8/8/8/8 X"
	// Black takes both remaining corners, white passes in between, and the
	// board ends up all black.
	CornerWinPosition = "1OXXXXXX/XXXXXXXX/XXXXXXXX/XXXXXXXX/XXXXXXXX/XXXXXXXX/XXXXXXXX/XXXXXXO1 X"
	// Nobody can move.
	EmptyPosition = "8/8/8/8/8/8/8/8 X"
)

// MustParse parses a position or panics.
func MustParse(s string) (board.Board, board.Side) {
	b, side, err := notation.Parse(s)
	if err != nil {
		panic(err)
	}
	return b, side
}

// Playout plays up to plies moves from the initial position, picking among
// the legal moves at random. The same seed always produces the same game.
// A side with no move passes; the playout stops early if the game ends.
func Playout(seed uint64, plies int) (board.Board, board.Side) {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	rng := frand.NewCustom(key[:], 1024, 12)

	b, side := board.Initial(), board.Black
	var plays movegen.Plays
	for i := 0; i < plies; i++ {
		movegen.GenAll(b, side, &plays)
		if plays.Len() == 0 {
			if !movegen.HasMoves(b, side.Other()) {
				break
			}
			side = side.Other()
			continue
		}
		b = plays.At(rng.Intn(plays.Len())).Result
		side = side.Other()
	}
	return b, side
}
