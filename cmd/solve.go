package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/csp"
	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/satsolve"
)

var (
	solveEngine   string
	solveTrace    bool
	solveStats    bool
	solveMaxNodes int64
	solveTimeout  time.Duration
)

// cspOnlyFlags are the solve flags only the csp engine honors.
var cspOnlyFlags = []string{"trace", "stats", "max-nodes", "timeout"}

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle-file]",
		Short: "Solve a puzzle read from a file or stdin",
		Long: `Solve a Sudoku puzzle. The puzzle is read from the given file, or from
stdin when no file is named; '.', '0' and '_' mark empty cells, and
whitespace and grid borders are ignored.

Examples:
  sudoku-ac3 solve puzzle.txt
  sudoku-ac3 solve --trace --stats puzzle.txt
  echo "8..........36......7..9.2...5...7.......457.....1...3...1....68..85...1..9....4.." | sudoku-ac3 solve
  sudoku-ac3 solve --engine sat puzzle.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVar(&solveEngine, "engine", "csp", `Solving engine: "csp" or "sat"`)
	solveCmd.Flags().BoolVar(&solveTrace, "trace", false, "Print the AC-3 worklist size before each pop (csp engine)")
	solveCmd.Flags().BoolVar(&solveStats, "stats", false, "Print solver statistics (csp engine)")
	solveCmd.Flags().Int64Var(&solveMaxNodes, "max-nodes", 0, "Abort search after this many nodes, 0 = unlimited (csp engine)")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", time.Minute, "Abort solving after this long (csp engine)")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if solveEngine == "sat" {
		for _, name := range cspOnlyFlags {
			if cmd.Flags().Changed(name) {
				return fmt.Errorf("--%s applies only to the csp engine", name)
			}
		}
	}

	puzzle, err := readPuzzle(args)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	switch solveEngine {
	case "csp":
		ctx := context.Background()
		if solveTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, solveTimeout)
			defer cancel()
		}

		solved, stats, err := csp.Solve(ctx, puzzle, &csp.Options{MaxNodes: solveMaxNodes})
		slog.Debug("csp engine finished", "duration", stats.Duration, "nodes", stats.Nodes)

		// Diagnostics are printed even when the puzzle turns out
		// unsatisfiable; the trace up to the wipeout is part of the answer.
		if solveTrace {
			printTrace(stats.QueueTrace)
		}
		if solveStats {
			printStats(stats)
		}
		if err != nil {
			return err
		}
		fmt.Print(solved.Format())

	case "sat":
		solved, err := satsolve.Solve(puzzle)
		if err != nil {
			return err
		}
		fmt.Print(solved.Format())

	default:
		return fmt.Errorf("unknown engine %q (use \"csp\" or \"sat\")", solveEngine)
	}
	return nil
}

// printTrace writes the worklist sizes as one space-separated line.
func printTrace(trace []int) {
	line := lo.Map(trace, func(n int, _ int) string { return strconv.Itoa(n) })
	fmt.Println(strings.Join(line, " "))
}

func printStats(stats csp.Stats) {
	if len(stats.QueueTrace) > 0 {
		fmt.Printf("propagation: %d steps, %d revisions, peak worklist %d\n",
			len(stats.QueueTrace), stats.Revisions, lo.Max(stats.QueueTrace))
	}
	switch {
	case stats.SolvedByPropagation:
		fmt.Println("solved by propagation alone")
	case stats.Nodes > 0:
		fmt.Printf("search: %d nodes, %d backtracks\n", stats.Nodes, stats.Backtracks)
	}
	fmt.Printf("duration: %s\n", stats.Duration)
}
