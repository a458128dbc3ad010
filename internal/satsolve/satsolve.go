// Package satsolve is the second, independent solving backend: it
// encodes a puzzle as CNF over 729 variables, one per (cell, value)
// pair, and hands it to the gini SAT solver. Its answers come from a
// completely different algorithm than the csp package, which makes it
// useful for cross-checking solutions and for counting them, something
// the backtracking engine does not do.
package satsolve

import (
	"errors"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/grid"
)

// ErrUnsatisfiable reports a puzzle with no solution.
var ErrUnsatisfiable = errors.New("no assignment satisfies the puzzle")

// lit returns the literal asserting that the cell at pos holds v.
// Variables are 1-based: value v at position pos is variable pos*9 + v.
func lit(pos, v int) z.Lit {
	return z.Var(pos*grid.Size + v).Pos()
}

// units lists the 27 row, column and box cell groups the encoding
// constrains. Built once; the topology never changes.
var units [3 * grid.Size][grid.Size]int

func init() {
	for pos := 0; pos < grid.CellCount; pos++ {
		row, col, box := grid.RowOf(pos), grid.ColOf(pos), grid.BoxOf(pos)
		units[row][col] = pos
		units[grid.Size+col][row] = pos
		units[2*grid.Size+box][grid.BoxSize*(row%grid.BoxSize)+col%grid.BoxSize] = pos
	}
}

// newSolver builds a gini instance holding the Sudoku rules plus the
// puzzle's clues as unit clauses. Every cell holds at least one value;
// within each unit a value appears on at most one cell, clause by
// pairwise exclusion. Together those force exactly one value per cell.
func newSolver(puzzle grid.Grid) *gini.Gini {
	g := gini.New()

	for pos := 0; pos < grid.CellCount; pos++ {
		for v := 1; v <= grid.Size; v++ {
			g.Add(lit(pos, v))
		}
		g.Add(0)
	}

	for _, u := range units {
		for v := 1; v <= grid.Size; v++ {
			for i, posA := range u {
				a := lit(posA, v)
				for _, posB := range u[i+1:] {
					g.Add(a.Not())
					g.Add(lit(posB, v).Not())
					g.Add(0)
				}
			}
		}
	}

	for pos, v := range puzzle {
		if v != grid.Empty {
			g.Add(lit(pos, int(v)))
			g.Add(0)
		}
	}

	return g
}

// decode reads the solver's model back into a grid.
func decode(g *gini.Gini) grid.Grid {
	var out grid.Grid
	for pos := 0; pos < grid.CellCount; pos++ {
		for v := 1; v <= grid.Size; v++ {
			if g.Value(lit(pos, v)) {
				out[pos] = int8(v)
				break
			}
		}
	}
	return out
}

// Solve returns a solution of the puzzle, or ErrUnsatisfiable when none
// exists. When a puzzle has several solutions the one returned is
// whichever the SAT solver finds first.
func Solve(puzzle grid.Grid) (grid.Grid, error) {
	if err := puzzle.Validate(); err != nil {
		return grid.Grid{}, err
	}
	g := newSolver(puzzle)
	if g.Solve() != 1 {
		return grid.Grid{}, ErrUnsatisfiable
	}
	return decode(g), nil
}

// CountSolutions counts distinct solutions, stopping at limit. After
// each model a blocking clause excluding that exact grid is added and
// the solver is re-run, so the count is exact up to the cap.
func CountSolutions(puzzle grid.Grid, limit int) (int, error) {
	if err := puzzle.Validate(); err != nil {
		return 0, err
	}
	g := newSolver(puzzle)
	count := 0
	for count < limit && g.Solve() == 1 {
		count++
		model := decode(g)
		for pos := 0; pos < grid.CellCount; pos++ {
			g.Add(lit(pos, int(model[pos])).Not())
		}
		g.Add(0)
	}
	return count, nil
}

// Unique reports whether the puzzle has exactly one solution.
func Unique(puzzle grid.Grid) (bool, error) {
	n, err := CountSolutions(puzzle, 2)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
