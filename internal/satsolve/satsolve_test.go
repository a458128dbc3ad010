package satsolve

import (
	"errors"
	"strings"
	"testing"

	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/grid"
)

const (
	// uniquePuzzle has exactly one solution, so Solve's answer is fully
	// determined even though SAT model order is not.
	uniquePuzzle = "8........" +
		"..36....." +
		".7..9.2.." +
		".5...7..." +
		"....457.." +
		"...1...3." +
		"..1....68" +
		"..85...1." +
		".9....4.."
	uniqueSolution = "812753649" +
		"943682175" +
		"675491283" +
		"154237896" +
		"369845721" +
		"287169534" +
		"521974368" +
		"438526917" +
		"796318452"

	contradictoryPuzzle = "534678912" +
		"672195348" +
		"19834.567" +
		"8597624.3" +
		"426853791" +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179"
)

func mustParse(t *testing.T, s string) grid.Grid {
	t.Helper()
	g, err := grid.FromString(s)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return g
}

// ambiguousPuzzle erases every 1 and 2 from the solved grid. Swapping
// the two digits in the freed cells yields a second valid completion,
// so the result is guaranteed to have more than one solution.
func ambiguousPuzzle(t *testing.T) grid.Grid {
	t.Helper()
	s := strings.ReplaceAll(uniqueSolution, "1", ".")
	s = strings.ReplaceAll(s, "2", ".")
	return mustParse(t, s)
}

func TestSolveUniquePuzzle(t *testing.T) {
	solved, err := Solve(mustParse(t, uniquePuzzle))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got := solved.String(); got != uniqueSolution {
		t.Errorf("solution = %s, want %s", got, uniqueSolution)
	}
	if !solved.IsSolved() {
		t.Error("solution fails validity check")
	}
}

func TestSolveReturnsValidCompletion(t *testing.T) {
	puzzle := ambiguousPuzzle(t)
	solved, err := Solve(puzzle)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !solved.IsSolved() {
		t.Error("solution fails validity check")
	}
	for pos, v := range puzzle {
		if v != grid.Empty && solved[pos] != v {
			t.Fatalf("clue at pos %d changed: %d -> %d", pos, v, solved[pos])
		}
	}
}

func TestSolveUnsatisfiable(t *testing.T) {
	_, err := Solve(mustParse(t, contradictoryPuzzle))
	if !errors.Is(err, ErrUnsatisfiable) {
		t.Fatalf("Solve error = %v, want ErrUnsatisfiable", err)
	}
}

func TestSolveRejectsInvalidGrid(t *testing.T) {
	var g grid.Grid
	g[5] = 11
	if _, err := Solve(g); !errors.Is(err, grid.ErrInvalidValue) {
		t.Errorf("Solve error = %v, want ErrInvalidValue", err)
	}
}

func TestCountSolutions(t *testing.T) {
	tests := []struct {
		name   string
		puzzle string
		limit  int
		want   int
	}{
		{name: "unique", puzzle: uniquePuzzle, limit: 3, want: 1},
		{name: "unsatisfiable", puzzle: contradictoryPuzzle, limit: 3, want: 0},
		{name: "already complete", puzzle: uniqueSolution, limit: 3, want: 1},
		{name: "limit of one", puzzle: uniquePuzzle, limit: 1, want: 1},
		{name: "zero limit", puzzle: uniquePuzzle, limit: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountSolutions(mustParse(t, tt.puzzle), tt.limit)
			if err != nil {
				t.Fatalf("CountSolutions: %v", err)
			}
			if got != tt.want {
				t.Errorf("CountSolutions = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountSolutionsAmbiguousPuzzle(t *testing.T) {
	got, err := CountSolutions(ambiguousPuzzle(t), 3)
	if err != nil {
		t.Fatalf("CountSolutions: %v", err)
	}
	if got < 2 {
		t.Errorf("CountSolutions = %d, want at least 2", got)
	}
}

func TestUnique(t *testing.T) {
	ok, err := Unique(mustParse(t, uniquePuzzle))
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if !ok {
		t.Error("Unique = false for a single-solution puzzle")
	}

	ok, err = Unique(ambiguousPuzzle(t))
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if ok {
		t.Error("Unique = true for a puzzle with several solutions")
	}

	ok, err = Unique(mustParse(t, contradictoryPuzzle))
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if ok {
		t.Error("Unique = true for an unsatisfiable puzzle")
	}
}
