package generator

import "time"

// Options configures puzzle generation behavior.
type Options struct {
	ClueCount    int           // target number of clues left in the puzzle
	Timeout      time.Duration // Timeout limits total generation time
	Seed         int64         // Seed for reproducible puzzles (0 = from the clock)
	EnsureUnique bool          // EnsureUnique keeps the puzzle uniquely solvable while digging
}

// DefaultOptions returns standard generator options with the clue count
// clamped to the valid range.
func DefaultOptions(clueCount int) *Options {
	clueCount = min(max(clueCount, MinValidClueCount), MaxValidClueCount)
	return &Options{
		ClueCount:    clueCount,
		Timeout:      10 * time.Second,
		Seed:         0,
		EnsureUnique: true,
	}
}
