package csp

import (
	"math/bits"
	"strings"

	"github.com/OJ-Dabiri/Sudoku-AC3-Solver/internal/grid"
)

// Candidates is the set of values a cell may still take, as a bitmask.
// Bit i represents value i+1 (bit 0 = value 1, bit 8 = value 9), so set
// operations are single instructions and sets copy by assignment.
type Candidates uint16

// AllCandidates holds every value 1..9.
const AllCandidates Candidates = 1<<grid.Size - 1

// CandidateOf returns the singleton set holding only v.
func CandidateOf(v int) Candidates {
	return 1 << (v - 1)
}

// Has reports whether v is still in the set.
func (c Candidates) Has(v int) bool {
	return c&CandidateOf(v) != 0
}

// Without returns the set with v removed.
func (c Candidates) Without(v int) Candidates {
	return c &^ CandidateOf(v)
}

// Count returns the number of values in the set.
func (c Candidates) Count() int {
	return bits.OnesCount16(uint16(c))
}

// Single returns the sole remaining value and true when the set is a
// singleton.
func (c Candidates) Single() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(c)) + 1, true
}

// Values returns the values in the set in ascending order.
func (c Candidates) Values() []int {
	values := make([]int, 0, c.Count())
	for v := 1; v <= grid.Size; v++ {
		if c.Has(v) {
			values = append(values, v)
		}
	}
	return values
}

// String renders the set like "{1 4 9}".
func (c Candidates) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range c.Values() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('0' + byte(v))
	}
	sb.WriteByte('}')
	return sb.String()
}
