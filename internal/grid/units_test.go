package grid

import "testing"

// Conflicts and IsSolved scan allUnits; the table must hold nine
// distinct positions per unit and place every position in exactly
// three units (its row, its column and its box).
func TestAllUnitsCoverEveryPosition(t *testing.T) {
	var seen [CellCount]int
	for _, u := range allUnits {
		var member [CellCount]bool
		for _, pos := range u.cells {
			if pos < 0 || pos >= CellCount {
				t.Fatalf("%s %d holds out-of-range position %d", u.kind, u.index, pos)
			}
			if member[pos] {
				t.Fatalf("%s %d holds position %d more than once", u.kind, u.index, pos)
			}
			member[pos] = true
			seen[pos]++
		}
	}
	for pos, n := range seen {
		if n != 3 {
			t.Errorf("position %d belongs to %d units, want 3", pos, n)
		}
	}
}

func TestAllUnitsMatchCoordinates(t *testing.T) {
	for _, u := range allUnits {
		for _, pos := range u.cells {
			var want int
			switch u.kind {
			case UnitRow:
				want = RowOf(pos)
			case UnitColumn:
				want = ColOf(pos)
			case UnitBox:
				want = BoxOf(pos)
			}
			if u.index != want {
				t.Errorf("%s %d holds position %d, which belongs to %s %d",
					u.kind, u.index, pos, u.kind, want)
			}
		}
	}
}
