package testhelpers

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/reversi/board"
)

func TestPlayoutRepeats(t *testing.T) {
	is := is.New(t)
	for seed := uint64(0); seed < 5; seed++ {
		b1, s1 := Playout(seed, 30)
		b2, s2 := Playout(seed, 30)
		is.Equal(b1, b2)
		is.Equal(s1, s2)
		is.True(b1.Total() > 4)
	}
}

func TestPlayoutSeedsDiffer(t *testing.T) {
	is := is.New(t)
	seen := map[board.Board]bool{}
	for seed := uint64(0); seed < 10; seed++ {
		b, _ := Playout(seed, 20)
		seen[b] = true
	}
	is.True(len(seen) > 1)
}

func TestFixturesParse(t *testing.T) {
	is := is.New(t)
	b, side := MustParse(InitialPosition)
	is.Equal(b, board.Initial())
	is.Equal(side, board.Black)
	for _, s := range []string{OneMovePosition, CornerWinPosition, EmptyPosition} {
		MustParse(s)
	}
}
