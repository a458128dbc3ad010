// Package csp solves 9x9 Sudoku as a binary constraint-satisfaction
// problem. An AC-3 pass prunes the per-cell candidate store until every
// arc is consistent; when propagation alone does not finish the puzzle,
// MRV/LCV backtracking search completes it over the pruned store. Every
// heuristic tie-break is deterministic, so identical inputs always
// produce identical traces, counters and solutions.
package csp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/grid"
)

var (
	// ErrInvalidGrid reports a puzzle whose cells fall outside 0..9.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrNoSolution reports a puzzle proven unsatisfiable, either by a
	// domain wipeout during propagation or by exhausting the search tree.
	ErrNoSolution = errors.New("puzzle has no solution")

	// ErrNodeLimit reports that search gave up after reaching the
	// configured node budget.
	ErrNodeLimit = errors.New("search node budget exhausted")
)

// Options configures a Solver.
type Options struct {
	// MaxNodes caps how many assignments Search may try before giving
	// up with ErrNodeLimit. Zero means unlimited.
	MaxNodes int64
}

// DefaultOptions returns the options used when nil is passed to New.
func DefaultOptions() *Options {
	return &Options{}
}

// Stats describes what the engines did. QueueTrace and Revisions cover
// the most recent Propagate; Nodes and Backtracks the most recent
// Search; SolvedByPropagation and Duration the most recent Solve.
type Stats struct {
	// QueueTrace holds the worklist size observed before each AC-3 pop.
	// On a fresh store its first entry is always 1620, one per directed
	// arc of the constraint graph.
	QueueTrace []int

	// Revisions counts the pops that removed at least one value.
	Revisions int

	// Nodes counts assignments tried; Backtracks counts assignments
	// undone after their subtree failed.
	Nodes      int64
	Backtracks int64

	SolvedByPropagation bool
	Duration            time.Duration
}

// Solver owns one puzzle's domain store and search state. A Solver is
// single-use: Solve leaves the store pruned and the assignment filled.
type Solver struct {
	puzzle  grid.Grid
	domains Domains
	opts    Options
	stats   Stats

	assignment    grid.Grid
	assignedCount int
}

// New validates the puzzle's value range and builds its domain store.
// Contradictory clues are accepted here; propagation proves them
// unsatisfiable later.
func New(puzzle grid.Grid, opts *Options) (*Solver, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	for pos, v := range puzzle {
		if v < grid.Empty || v > grid.Size {
			return nil, fmt.Errorf("%w: %d at (%d,%d)",
				ErrInvalidGrid, v, grid.RowOf(pos), grid.ColOf(pos))
		}
	}
	return &Solver{
		puzzle:  puzzle,
		domains: NewDomains(puzzle),
		opts:    *opts,
	}, nil
}

// Domains returns a copy of the current store.
func (s *Solver) Domains() Domains {
	return s.domains
}

// Stats returns the counters gathered so far.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Solve runs the full pipeline: propagate, and search only if some cell
// still has more than one candidate afterwards. The returned grid is a
// complete valid solution; on error it is the zero Grid.
func (s *Solver) Solve(ctx context.Context) (grid.Grid, error) {
	start := time.Now()
	defer func() { s.stats.Duration = time.Since(start) }()

	s.stats.SolvedByPropagation = false
	if _, err := s.Propagate(); err != nil {
		return grid.Grid{}, err
	}
	if s.domains.AllSingleton() {
		s.stats.SolvedByPropagation = true
		return s.domains.Grid(), nil
	}
	if err := s.Search(ctx); err != nil {
		return grid.Grid{}, err
	}
	return s.assignment, nil
}

// Solve is the one-shot entry point: build a solver, run it, and return
// the solution together with the statistics it gathered. A nil opts
// selects DefaultOptions.
func Solve(ctx context.Context, puzzle grid.Grid, opts *Options) (grid.Grid, Stats, error) {
	s, err := New(puzzle, opts)
	if err != nil {
		return grid.Grid{}, Stats{}, err
	}
	solved, err := s.Solve(ctx)
	return solved, s.Stats(), err
}
