package csp

import (
	"testing"

	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/grid"
)

// Puzzles shared by the package tests, with the solutions the engine's
// deterministic heuristics arrive at.
const (
	// propagationPuzzle collapses to a full solution under AC-3 alone;
	// search never runs.
	propagationPuzzle = "5176...34" +
		"289..4..." +
		"3462.5.9." +
		"6.2....1." +
		".38..6.47" +
		"........." +
		".9.....78" +
		"7.34..56." +
		"........."
	propagationSolution = "517698234" +
		"289134756" +
		"346275891" +
		"672849315" +
		"138526947" +
		"954713682" +
		"495362178" +
		"723481569" +
		"861957423"

	// searchPuzzle stalls under propagation and needs backtracking.
	searchPuzzle = "......2.." +
		"...6....3" +
		".74.8...." +
		".....3..2" +
		".8..4..1." +
		"6..5....." +
		"........." +
		"5....9..." +
		"..8......"
	searchSolution = "869354271" +
		"251697843" +
		"374182569" +
		"415973682" +
		"783246915" +
		"692518734" +
		"937821456" +
		"546739128" +
		"128465397"

	// sparsePuzzle admits more than one completion; the engine always
	// picks the same one.
	sparsePuzzle = "......2.." +
		"...6....3" +
		".74.8...." +
		".....3..2" +
		".8..4..1." +
		"6..5....." +
		"....1.78." +
		"5....9..." +
		"..8......"
	sparseSolution = "169735248" +
		"852694173" +
		"374281569" +
		"497163852" +
		"285947316" +
		"613528497" +
		"936412785" +
		"521879634" +
		"748356921"

	// hardestPuzzle is Arto Inkala's 21-clue grid; plain backtracking
	// expands millions of nodes on it.
	hardestPuzzle = "8........" +
		"..36....." +
		".7..9.2.." +
		".5...7..." +
		"....457.." +
		"...1...3." +
		"..1....68" +
		"..85...1." +
		".9....4.."
	hardestSolution = "812753649" +
		"943682175" +
		"675491283" +
		"154237896" +
		"369845721" +
		"287169534" +
		"521974368" +
		"438526917" +
		"796318452"

	// contradictoryPuzzle is nearly complete but its clues cannot
	// coexist; propagation wipes out the domain at (2,5).
	contradictoryPuzzle = "534678912" +
		"672195348" +
		"19834.567" +
		"8597624.3" +
		"426853791" +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179"

	// duplicateCluesPuzzle holds the value 5 twice in the first row.
	duplicateCluesPuzzle = "5....5..." +
		"........." +
		"........." +
		"........." +
		"........." +
		"........." +
		"........." +
		"........." +
		"........."
)

// initialArcCount is the seeded worklist size: every directed arc of
// the constraint graph.
const initialArcCount = grid.CellCount * NeighborCount

func mustParse(t *testing.T, s string) grid.Grid {
	t.Helper()
	g, err := grid.FromString(s)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return g
}

func newTestSolver(t *testing.T, puzzle string, opts *Options) *Solver {
	t.Helper()
	s, err := New(mustParse(t, puzzle), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func assertPreservesClues(t *testing.T, puzzle, solved grid.Grid) {
	t.Helper()
	for pos, v := range puzzle {
		if v != grid.Empty && solved[pos] != v {
			t.Fatalf("clue at (%d,%d) changed: %d -> %d",
				grid.RowOf(pos), grid.ColOf(pos), v, solved[pos])
		}
	}
}
