package csp

import (
	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/grid"
)

// NeighborCount is the number of cells constrained to differ from any
// given cell: eight in its row, eight in its column, and the four box
// mates not already counted.
const NeighborCount = 20

// cellNeighbors maps every position to its neighbors in ascending
// order. The table depends only on the fixed board topology, so it is
// built once at init and shared by every solver.
var cellNeighbors [grid.CellCount][NeighborCount]int

func init() {
	for pos := 0; pos < grid.CellCount; pos++ {
		n := 0
		for peer := 0; peer < grid.CellCount; peer++ {
			if peer == pos {
				continue
			}
			if grid.RowOf(peer) == grid.RowOf(pos) ||
				grid.ColOf(peer) == grid.ColOf(pos) ||
				grid.BoxOf(peer) == grid.BoxOf(pos) {
				cellNeighbors[pos][n] = peer
				n++
			}
		}
	}
}

// Neighbors returns the positions whose values must differ from the
// value at pos, in ascending order.
func Neighbors(pos int) [NeighborCount]int {
	return cellNeighbors[pos]
}
