package grid

import (
	"fmt"
	"strings"
)

// Unit kinds reported by Conflicts.
const (
	UnitRow    = "row"
	UnitColumn = "column"
	UnitBox    = "box"
)

// Conflict reports a value that appears more than once in a single unit.
type Conflict struct {
	Unit      string // UnitRow, UnitColumn or UnitBox
	Index     int    // which row/column/box, 0..8
	Value     int    // the duplicated value
	Positions []int  // every position in the unit holding Value
}

func (c Conflict) String() string {
	coords := make([]string, len(c.Positions))
	for i, pos := range c.Positions {
		coords[i] = fmt.Sprintf("(%d,%d)", RowOf(pos), ColOf(pos))
	}
	return fmt.Sprintf("%s %d: value %d appears at %s",
		c.Unit, c.Index, c.Value, strings.Join(coords, " "))
}

// unit is one row, column or box with its member positions.
type unit struct {
	kind  string
	index int
	cells [Size]int
}

// allUnits holds the 27 units of the standard board, rows first, then
// columns, then boxes.
var allUnits [3 * Size]unit

func init() {
	for i := 0; i < Size; i++ {
		allUnits[i] = unit{kind: UnitRow, index: i}
		allUnits[Size+i] = unit{kind: UnitColumn, index: i}
		allUnits[2*Size+i] = unit{kind: UnitBox, index: i}
	}
	// Init functions run in lexical file order, so the coordinate tables
	// in grid.go are not filled yet. Compute row, column and box directly.
	for pos := 0; pos < CellCount; pos++ {
		row, col := pos/Size, pos%Size
		box := BoxSize*(row/BoxSize) + col/BoxSize
		allUnits[row].cells[col] = pos
		allUnits[Size+col].cells[row] = pos
		boxSlot := BoxSize*(row%BoxSize) + col%BoxSize
		allUnits[2*Size+box].cells[boxSlot] = pos
	}
}

// Conflicts scans every unit for duplicated values. An empty result
// means the clues are mutually consistent; it says nothing about
// solvability.
func (g Grid) Conflicts() []Conflict {
	var conflicts []Conflict
	for _, u := range allUnits {
		// positions of each value in this unit, indexed by value
		var where [Size + 1][]int
		for _, pos := range u.cells {
			if v := g[pos]; v != Empty {
				where[v] = append(where[v], pos)
			}
		}
		for v := 1; v <= Size; v++ {
			if len(where[v]) > 1 {
				conflicts = append(conflicts, Conflict{
					Unit:      u.kind,
					Index:     u.index,
					Value:     v,
					Positions: where[v],
				})
			}
		}
	}
	return conflicts
}

// IsSolved reports whether the grid is completely filled with no
// duplicated value in any row, column or box.
func (g Grid) IsSolved() bool {
	return g.IsComplete() && len(g.Conflicts()) == 0
}
