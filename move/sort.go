package move

import "github.com/domino14/reversi/board"

// SortDescending sorts moves from highest to lowest score. The sort is
// stable, so moves with equal scores keep their relative order. At most
// board.NumCells moves may be sorted.
func SortDescending(moves []Scored) {
	var scratch [board.NumCells]Scored
	mergeSort(moves, scratch[:len(moves)])
}

func mergeSort(moves, scratch []Scored) {
	if len(moves) < 2 {
		return
	}
	md := len(moves) / 2
	mergeSort(moves[:md], scratch[:md])
	mergeSort(moves[md:], scratch[md:])
	merge(moves, md, scratch)
}

// merge merges the sorted runs moves[:md] and moves[md:].
func merge(moves []Scored, md int, scratch []Scored) {
	i, j, k := 0, md, 0
	for i < md || j < len(moves) {
		// Only take from the right when it is strictly better; that keeps
		// the sort stable.
		if j >= len(moves) || (i < md && moves[i].Score >= moves[j].Score) {
			scratch[k] = moves[i]
			i++
		} else {
			scratch[k] = moves[j]
			j++
		}
		k++
	}
	copy(moves, scratch[:k])
}
