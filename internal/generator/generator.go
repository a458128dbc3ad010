// Package generator creates Sudoku puzzles: fill a complete grid with
// randomized depth-first search, then dig cells back out in random
// order, keeping every removal that leaves the puzzle uniquely solvable.
// Uniqueness is checked by the SAT backend, which counts solutions
// exactly.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/grid"
	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/satsolve"
)

const (
	MinValidClueCount = 17
	MaxValidClueCount = 80
	DefaultClueCount  = 32
)

var (
	ErrInvalidClueCount = errors.New("clue count must be between 17 and 80")
	ErrDiggingFailed    = errors.New("failed to remove proper number of clues")
)

// Generator creates Sudoku puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(DefaultClueCount)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new Sudoku puzzle.
// Returns the puzzle and its solution. Digging can dead-end when every
// remaining clue is load-bearing; generation then retries with a fresh
// solution until the timeout runs out.
func (g *Generator) Generate(ctx context.Context) (puzzle, solution grid.Grid, err error) {
	if g.options.ClueCount < MinValidClueCount || g.options.ClueCount > MaxValidClueCount {
		return grid.Grid{}, grid.Grid{}, ErrInvalidClueCount
	}

	if g.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.options.Timeout)
		defer cancel()
	}

	for {
		if err := ctx.Err(); err != nil {
			return grid.Grid{}, grid.Grid{}, fmt.Errorf("generation: %w", err)
		}

		solution = g.fill()

		puzzle, err = g.removeCells(ctx, solution)
		if err == nil {
			return puzzle, solution, nil
		}
		if !errors.Is(err, ErrDiggingFailed) {
			return grid.Grid{}, grid.Grid{}, err
		}
	}
}

// fill produces a complete valid grid by depth-first assignment in
// position order with shuffled value order. Used digits per unit are
// tracked in bitmasks, bit i for digit i+1.
func (g *Generator) fill() grid.Grid {
	var (
		out     grid.Grid
		rowUsed [grid.Size]uint16
		colUsed [grid.Size]uint16
		boxUsed [grid.Size]uint16
	)

	var dfs func(pos int) bool
	dfs = func(pos int) bool {
		if pos == grid.CellCount {
			return true
		}
		row, col, box := grid.RowOf(pos), grid.ColOf(pos), grid.BoxOf(pos)
		for _, i := range g.rng.Perm(grid.Size) {
			v := i + 1
			mask := uint16(1) << (v - 1)
			if rowUsed[row]&mask != 0 || colUsed[col]&mask != 0 || boxUsed[box]&mask != 0 {
				continue
			}
			out[pos] = int8(v)
			rowUsed[row] |= mask
			colUsed[col] |= mask
			boxUsed[box] |= mask

			if dfs(pos + 1) {
				return true
			}

			out[pos] = grid.Empty
			rowUsed[row] &^= mask
			colUsed[col] &^= mask
			boxUsed[box] &^= mask
		}
		return false
	}

	dfs(0)
	return out
}

// removeCells digs clues out of a complete grid in shuffled order until
// the target clue count is reached. With EnsureUnique set, a removal
// that lets a second solution in is undone and the next position tried.
func (g *Generator) removeCells(ctx context.Context, solution grid.Grid) (grid.Grid, error) {
	puzzle := solution
	toRemove := grid.CellCount - g.options.ClueCount

	removed := 0
	for _, pos := range g.rng.Perm(grid.CellCount) {
		if removed >= toRemove {
			break
		}
		if err := ctx.Err(); err != nil {
			return grid.Grid{}, fmt.Errorf("digging: %w", err)
		}

		val := puzzle[pos]
		puzzle[pos] = grid.Empty

		if g.options.EnsureUnique {
			unique, err := satsolve.Unique(puzzle)
			if err != nil {
				return grid.Grid{}, err
			}
			if !unique {
				puzzle[pos] = val
				continue
			}
		}
		removed++
	}

	if removed != toRemove {
		return puzzle, ErrDiggingFailed
	}
	return puzzle, nil
}

// GenerateWithClueCount is a convenience function to generate a single
// puzzle with a specific clue count.
func GenerateWithClueCount(ctx context.Context, clueCount int) (grid.Grid, grid.Grid, error) {
	gen := New(DefaultOptions(clueCount))
	return gen.Generate(ctx)
}
