package board

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"
)

func bitsAt(idxs ...int) uint64 {
	var m uint64
	for _, i := range idxs {
		m |= 1 << uint(i)
	}
	return m
}

func TestRangeMask(t *testing.T) {
	is := is.New(t)
	is.Equal(RangeMask(0, 0), uint64(1))
	is.Equal(RangeMask(3, 5), uint64(0x38))
	is.Equal(RangeMask(0, 63), ^uint64(0))
	is.Equal(RangeMask(63, 63), uint64(1)<<63)
}

func TestMoveMask(t *testing.T) {
	is := is.New(t)
	testcases := []struct {
		p1, p2 Position
		mask   uint64
	}{
		{Pos(0, 0), Pos(0, 3), bitsAt(0, 1, 2, 3)},
		{Pos(0, 3), Pos(0, 0), bitsAt(0, 1, 2, 3)},
		{Pos(0, 0), Pos(7, 7), bitsAt(0, 9, 18, 27, 36, 45, 54, 63)},
		{Pos(7, 7), Pos(0, 0), bitsAt(0, 9, 18, 27, 36, 45, 54, 63)},
		{Pos(0, 7), Pos(7, 0), antiDiag},
		{Pos(7, 0), Pos(0, 7), antiDiag},
		{Pos(1, 2), Pos(4, 2), bitsAt(10, 18, 26, 34)},
		{Pos(4, 2), Pos(1, 2), bitsAt(10, 18, 26, 34)},
		{Pos(2, 5), Pos(4, 3), bitsAt(21, 28, 35)},
		{Pos(5, 6), Pos(3, 4), bitsAt(28, 37, 46)},
		{Pos(0, 2), Pos(5, 7), bitsAt(2, 11, 20, 29, 38, 47)},
		{Pos(2, 0), Pos(7, 5), bitsAt(16, 25, 34, 43, 52, 61)},
		{Pos(1, 7), Pos(7, 1), bitsAt(15, 22, 29, 36, 43, 50, 57)},
		{Pos(0, 6), Pos(6, 0), bitsAt(6, 13, 20, 27, 34, 41, 48)},
		{Pos(6, 6), Pos(6, 6), bitsAt(54)},
	}
	for _, tc := range testcases {
		is.Equal(MoveMask(tc.p1, tc.p2), tc.mask)
	}
}

func TestCount(t *testing.T) {
	is := is.New(t)
	var b Board
	is.Equal(b.Count(Black), 0)
	is.Equal(b.Count(White), 0)
	is.Equal(b.Total(), 0)

	b = Initial()
	is.Equal(b.Count(Black), 2)
	is.Equal(b.Count(White), 2)
	is.Equal(b.Total(), 4)
	is.Equal(b.Pieces(Black), bitsAt(28, 35))
	is.Equal(b.Pieces(White), bitsAt(27, 36))
}

func TestPlace(t *testing.T) {
	is := is.New(t)
	b := Initial()
	orig := b
	b2 := b.Place(Pos(3, 3), Black)
	is.Equal(b, orig) // value receiver; the original is untouched
	is.Equal(b2.Count(Black), 3)
	is.Equal(b2.Count(White), 1)

	side, ok := b2.Piece(Pos(3, 3))
	is.True(ok)
	is.Equal(side, Black)
	_, ok = b2.Piece(Pos(0, 0))
	is.True(!ok)
}

func TestSetRun(t *testing.T) {
	is := is.New(t)
	var b Board
	b = b.SetRun(Pos(0, 0), Pos(0, 3), White)
	is.Equal(b.Occupied, bitsAt(0, 1, 2, 3))
	is.Equal(b.Pieces(White), bitsAt(0, 1, 2, 3))
	b = b.SetRun(Pos(0, 1), Pos(0, 2), Black)
	is.Equal(b.Pieces(White), bitsAt(0, 3))
	is.Equal(b.Pieces(Black), bitsAt(1, 2))
	// color bits never appear where there is no piece
	is.Equal(b.Color&^b.Occupied, uint64(0))
}

func TestSideOther(t *testing.T) {
	is := is.New(t)
	is.Equal(Black.Other(), White)
	is.Equal(White.Other(), Black)
}

func TestGridRoundTrip(t *testing.T) {
	is := is.New(t)
	for i := 0; i < 200; i++ {
		var g Grid
		for r := 0; r < Dim; r++ {
			for c := 0; c < Dim; c++ {
				g[r][c] = Cell(frand.Intn(3))
			}
		}
		orig := g
		b := FromGrid(g)
		is.Equal(g, orig)
		is.Equal(b.Grid(), g)
		is.Equal(b.Color&^b.Occupied, uint64(0))
	}
}

func TestSideOf(t *testing.T) {
	is := is.New(t)
	s, err := SideOf(WhiteCell)
	is.NoErr(err)
	is.Equal(s, White)
	is.Equal(s.Cell(), WhiteCell)
	_, err = SideOf(Empty)
	is.True(err != nil)
}

func TestPositionCoords(t *testing.T) {
	is := is.New(t)
	is.Equal(Pos(2, 3).String(), "d3")
	is.Equal(Pos(0, 0).String(), "a1")
	is.Equal(Pos(7, 7).String(), "h8")
	is.Equal(Pos(-1, 0).String(), "(-1,0)")

	p, err := ParsePosition("D3")
	is.NoErr(err)
	is.Equal(p, Pos(2, 3))
	is.Equal(PosFromIndex(p.Index()), p)

	for _, bad := range []string{"", "i1", "a9", "a0", "d33"} {
		_, err = ParsePosition(bad)
		is.True(err != nil)
	}
}

func BenchmarkMoveMask(b *testing.B) {
	for i := 0; i < b.N; i++ {
		MoveMask(Pos(7, 1), Pos(1, 7))
	}
}
