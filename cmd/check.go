package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/grid"
	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/satsolve"
)

var checkUnique bool

func init() {
	checkCmd := &cobra.Command{
		Use:   "check [puzzle-file]",
		Short: "Check a puzzle for conflicting clues and, optionally, uniqueness",
		Long: `Check reports every duplicated value within a row, column or box. With
--unique it additionally classifies the puzzle as having no solution,
exactly one, or more than one, using the SAT backend.

Examples:
  sudoku-ac3 check puzzle.txt
  sudoku-ac3 check --unique puzzle.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	checkCmd.Flags().BoolVar(&checkUnique, "unique", false, "Count solutions with the SAT backend")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	puzzle, err := readPuzzle(args)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	conflicts := puzzle.Conflicts()
	if len(conflicts) > 0 {
		lines := lo.Map(conflicts, func(c grid.Conflict, _ int) string { return c.String() })
		fmt.Println(strings.Join(lines, "\n"))
		return fmt.Errorf("%d conflicting units", len(conflicts))
	}
	fmt.Printf("no conflicts (%d clues)\n", puzzle.CountClues())

	if checkUnique {
		n, err := satsolve.CountSolutions(puzzle, 2)
		if err != nil {
			return err
		}
		switch n {
		case 0:
			return fmt.Errorf("puzzle has no solution")
		case 1:
			fmt.Println("exactly one solution")
		default:
			fmt.Println("more than one solution")
		}
	}
	return nil
}
