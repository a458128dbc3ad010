// Package grid holds the 9x9 puzzle type shared by every solving engine:
// a flat, row-major array of cell values with parsing, formatting and
// duplicate detection. Grids are plain values; copying one is assignment.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Board geometry. Positions are linear indices 0..80 in row-major order.
const (
	Size      = 9
	BoxSize   = 3
	CellCount = Size * Size

	Empty      = 0
	InvalidPos = -1
)

var (
	ErrInvalidLength    = errors.New("grid must contain exactly 81 cells")
	ErrInvalidCharacter = errors.New("invalid character in grid")
	ErrInvalidValue     = errors.New("cell value out of range")
)

// Grid is a 9x9 puzzle in row-major order. Empty cells hold zero.
type Grid [CellCount]int8

// FromString parses a grid from text. '1'-'9' are clues; '.', '0' and '_'
// are empty cells; whitespace and the characters '|', '+' and '-' are
// ignored, so both bare 81-character strings and the output of Format
// parse back. Any other character is an error, as is any cell count
// other than 81.
func FromString(s string) (Grid, error) {
	var g Grid
	n := 0
	for _, ch := range s {
		switch {
		case ch == '.' || ch == '0' || ch == '_':
			if n < CellCount {
				g[n] = Empty
			}
			n++
		case ch >= '1' && ch <= '9':
			if n < CellCount {
				g[n] = int8(ch - '0')
			}
			n++
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '|' || ch == '+' || ch == '-':
			// Layout characters carry no cell information.
		default:
			return Grid{}, fmt.Errorf("%w: %q at cell %d", ErrInvalidCharacter, ch, n)
		}
	}
	if n != CellCount {
		return Grid{}, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	return g, nil
}

// FromRows builds a grid from a 9x9 matrix, the shape callers that do not
// deal in strings tend to have. Values must lie in 0..9.
func FromRows(rows [Size][Size]int) (Grid, error) {
	var g Grid
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			v := rows[row][col]
			if v < Empty || v > Size {
				return Grid{}, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidValue, v, row, col)
			}
			g[MakePos(row, col)] = int8(v)
		}
	}
	return g, nil
}

// Rows returns the grid as a 9x9 matrix.
func (g Grid) Rows() [Size][Size]int {
	var rows [Size][Size]int
	for pos, v := range g {
		rows[RowOf(pos)][ColOf(pos)] = int(v)
	}
	return rows
}

// At returns the value at the given row and column.
// Returns InvalidPos for coordinates off the board.
func (g Grid) At(row, col int) int {
	pos := MakePos(row, col)
	if pos == InvalidPos {
		return InvalidPos
	}
	return int(g[pos])
}

// Validate reports the first cell whose value falls outside 0..9.
// Grids built by FromString or FromRows are always valid; this guards
// grids assembled by hand.
func (g Grid) Validate() error {
	for pos, v := range g {
		if v < Empty || v > Size {
			return fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidValue, v, RowOf(pos), ColOf(pos))
		}
	}
	return nil
}

// CountClues returns the number of filled cells.
func (g Grid) CountClues() int {
	n := 0
	for _, v := range g {
		if v != Empty {
			n++
		}
	}
	return n
}

// IsComplete reports whether every cell is filled.
func (g Grid) IsComplete() bool {
	for _, v := range g {
		if v == Empty {
			return false
		}
	}
	return true
}

// String returns the grid as an 81-character string.
// Empty cells are represented as '.', filled cells as '1'-'9'.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, v := range g {
		if v == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(v))
		}
	}

	return sb.String()
}

// Format returns a human-readable grid with box borders.
func (g Grid) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for row := 0; row < Size; row++ {
		sb.WriteString("| ")
		for col := 0; col < Size; col++ {
			v := g[MakePos(row, col)]
			if v == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(v))
			}
			sb.WriteByte(' ')

			if (col+1)%BoxSize == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%BoxSize == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}

// Precomputed lookup tables for position-to-coordinate mapping.
var (
	posToRow [CellCount]int
	posToCol [CellCount]int
	posToBox [CellCount]int
)

// MakePos transforms a row and column into a linear position.
// Returns InvalidPos if row and/or col are out of range.
func MakePos(row, col int) int {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return InvalidPos
	}
	return Size*row + col
}

// RowOf returns the row index of a position.
func RowOf(pos int) int { return posToRow[pos] }

// ColOf returns the column index of a position.
func ColOf(pos int) int { return posToCol[pos] }

// BoxOf returns the 3x3 box index of a position, numbered 0..8 in
// row-major order of boxes.
func BoxOf(pos int) int { return posToBox[pos] }

func init() {
	for pos := 0; pos < CellCount; pos++ {
		posToRow[pos] = pos / Size
		posToCol[pos] = pos % Size
		posToBox[pos] = BoxSize*(pos/(Size*BoxSize)) + (pos%Size)/BoxSize
	}
}
