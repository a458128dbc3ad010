package csp

import (
	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/grid"
)

// Domains is the per-cell candidate store both engines work on.
// Candidate sets only ever shrink: there is no operation that re-adds a
// value, so any snapshot is a superset of every later state.
type Domains [grid.CellCount]Candidates

// NewDomains builds the store for a puzzle. Clue cells start as the
// singleton holding their clue; empty cells start with all nine values.
func NewDomains(g grid.Grid) Domains {
	var d Domains
	for pos, v := range g {
		if v == grid.Empty {
			d[pos] = AllCandidates
		} else {
			d[pos] = CandidateOf(int(v))
		}
	}
	return d
}

// Remove deletes v from the domain at pos and reports whether the store
// changed. Removing an absent value is a no-op.
func (d *Domains) Remove(pos, v int) bool {
	before := d[pos]
	d[pos] = before.Without(v)
	return d[pos] != before
}

// AllSingleton reports whether every cell is down to exactly one value.
func (d Domains) AllSingleton() bool {
	for _, c := range d {
		if c.Count() != 1 {
			return false
		}
	}
	return true
}

// Grid materializes the store. Cells still holding more than one value
// come out empty, so the result is only a solution when AllSingleton
// reports true; callers check that first.
func (d Domains) Grid() grid.Grid {
	var g grid.Grid
	for pos, c := range d {
		if v, ok := c.Single(); ok {
			g[pos] = int8(v)
		}
	}
	return g
}
