package csp

import (
	"fmt"

	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/grid"
)

// arc is a directed pair: revising it prunes the domain at xi against
// the domain at xj.
type arc struct {
	xi, xj int
}

// Propagate enforces arc consistency with AC-3. The worklist is seeded
// with every directed arc of the constraint graph in canonical order
// (position ascending, neighbor ascending) and consumed FIFO. Before
// each pop the current worklist size is recorded; the resulting trace
// is returned and kept in Stats, on failure with whatever was captured
// up to that point.
//
// When a revision removes the last value from a domain the puzzle is
// unsatisfiable and Propagate fails immediately, without draining the
// worklist. When a revision merely shrinks a domain, every arc pointing
// at the revised cell is re-enqueued, except the one from the cell that
// caused the revision.
func (s *Solver) Propagate() ([]int, error) {
	s.stats.QueueTrace = nil
	s.stats.Revisions = 0

	worklist := make([]arc, 0, 2*grid.CellCount*NeighborCount)
	for pos := 0; pos < grid.CellCount; pos++ {
		for _, peer := range cellNeighbors[pos] {
			worklist = append(worklist, arc{xi: pos, xj: peer})
		}
	}

	trace := make([]int, 0, len(worklist))
	for head := 0; head < len(worklist); head++ {
		trace = append(trace, len(worklist)-head)

		a := worklist[head]
		if !s.revise(a.xi, a.xj) {
			continue
		}
		s.stats.Revisions++

		if s.domains[a.xi] == 0 {
			s.stats.QueueTrace = trace
			return trace, fmt.Errorf("propagation: no candidates remain at (%d,%d): %w",
				grid.RowOf(a.xi), grid.ColOf(a.xi), ErrNoSolution)
		}
		for _, peer := range cellNeighbors[a.xi] {
			if peer != a.xj {
				worklist = append(worklist, arc{xi: peer, xj: a.xi})
			}
		}
	}

	s.stats.QueueTrace = trace
	return trace, nil
}

// revise removes from the domain at xi every value with no support in
// the domain at xj, and reports whether anything was removed. Under the
// inequality constraint a value x is unsupported exactly when xj's
// domain holds nothing besides x.
func (s *Solver) revise(xi, xj int) bool {
	revised := false
	for v := 1; v <= grid.Size; v++ {
		if s.domains[xi].Has(v) && s.domains[xj].Without(v) == 0 {
			s.domains.Remove(xi, v)
			revised = true
		}
	}
	return revised
}
