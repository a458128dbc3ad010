package csp

import (
	"context"
	"fmt"
	"sort"

	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/grid"
)

// Search completes the puzzle by MRV/LCV backtracking over the store as
// left by propagation. Domains are read, never written, during search:
// dead ends surface only through the assigned-neighbor consistency
// check, and undoing an assignment is the sole backtracking mechanism.
// Every cell, clue cells included, enters the assignment; singleton
// domains are picked first by MRV and cost nothing.
func (s *Solver) Search(ctx context.Context) error {
	s.stats.Nodes = 0
	s.stats.Backtracks = 0
	s.assignment = grid.Grid{}
	s.assignedCount = 0

	ok, err := s.backtrack(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("search: every branch exhausted: %w", ErrNoSolution)
	}
	return nil
}

func (s *Solver) backtrack(ctx context.Context) (bool, error) {
	if s.assignedCount == grid.CellCount {
		return true, nil
	}
	// Poll the context once every 1024 nodes; the budget is exact.
	if s.stats.Nodes&1023 == 0 {
		if err := ctx.Err(); err != nil {
			return false, err
		}
	}
	if s.opts.MaxNodes > 0 && s.stats.Nodes >= s.opts.MaxNodes {
		return false, fmt.Errorf("search stopped after %d nodes: %w", s.stats.Nodes, ErrNodeLimit)
	}

	pos := s.selectCell()
	for _, v := range s.orderValues(pos) {
		if !s.consistent(pos, v) {
			continue
		}
		s.assignment[pos] = int8(v)
		s.assignedCount++
		s.stats.Nodes++

		ok, err := s.backtrack(ctx)
		if ok || err != nil {
			return ok, err
		}

		s.assignment[pos] = grid.Empty
		s.assignedCount--
		s.stats.Backtracks++
	}
	return false, nil
}

// selectCell picks the unassigned cell with the fewest candidates (MRV).
// Ties resolve to the lowest position, so repeated runs always walk the
// search tree in the same order.
func (s *Solver) selectCell() int {
	best, bestCount := grid.InvalidPos, grid.Size+1
	for pos := 0; pos < grid.CellCount; pos++ {
		if s.assignment[pos] != grid.Empty {
			continue
		}
		if c := s.domains[pos].Count(); c < bestCount {
			best, bestCount = pos, c
		}
	}
	return best
}

// orderValues returns the candidates for pos sorted by how many
// unassigned neighbors still hold each value, fewest first (LCV). The
// sort is stable over the ascending candidate list, so equal costs keep
// ascending value order.
func (s *Solver) orderValues(pos int) []int {
	values := s.domains[pos].Values()
	var costs [grid.Size + 1]int
	for _, v := range values {
		for _, peer := range cellNeighbors[pos] {
			if s.assignment[peer] == grid.Empty && s.domains[peer].Has(v) {
				costs[v]++
			}
		}
	}
	sort.SliceStable(values, func(i, j int) bool {
		return costs[values[i]] < costs[values[j]]
	})
	return values
}

// consistent reports whether no assigned neighbor of pos already holds v.
// Unassigned neighbors impose nothing at this point; their domains are
// consulted only for ordering.
func (s *Solver) consistent(pos, v int) bool {
	for _, peer := range cellNeighbors[pos] {
		if s.assignment[peer] == int8(v) {
			return false
		}
	}
	return true
}
