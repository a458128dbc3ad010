// Package cmd wires the solver, checker and generator into a single
// command-line tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/grid"
)

var (
	verbose     bool
	profileMode string

	// profiler holds the running profile between PersistentPreRun and
	// PersistentPostRun; nil when profiling is off.
	profiler interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "sudoku-ac3",
	Short: "Sudoku constraint-satisfaction solver",
	Long: `A Sudoku solver built around arc consistency: an AC-3 pass prunes
per-cell candidate sets, and MRV/LCV backtracking search finishes
whatever propagation leaves open. A SAT-based engine is included as an
independent cross-check and for counting solutions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		switch profileMode {
		case "":
		case "cpu":
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		case "mem":
			profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."))
		default:
			slog.Warn("unknown profile mode, ignoring", "mode", profileMode)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&profileMode, "profile", "", "Write a profile to the current directory (cpu or mem)")
}

// readPuzzle loads a puzzle from the file named by args, or from stdin
// when no argument was given.
func readPuzzle(args []string) (grid.Grid, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return grid.Grid{}, fmt.Errorf("read puzzle: %w", err)
	}
	return grid.FromString(string(data))
}
