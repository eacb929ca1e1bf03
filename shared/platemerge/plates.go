package platemerge

import (
	"iter"
	"slices"
)

// RowPlates yields the plates of row y in ascending Left order.
//
// The scan runs one column past the grid width, treating that column as unmarked, so
// a run touching the right edge is still closed.
func RowPlates(g Grid, y int) iter.Seq[Plate] {
	return func(yield func(Plate) bool) {
		width, _ := g.Size()
		start := -1
		for x := 0; x <= width; x++ {
			marked := x < width && g.Marked(x, y)
			switch {
			case start >= 0 && !marked:
				if !yield(Plate{Left: start, Right: x - 1}) {
					return
				}
				start = -1
			case start < 0 && marked:
				start = x
			}
		}
	}
}

// Plates collects RowPlates into a slice.
func Plates(g Grid, y int) []Plate {
	return slices.Collect(RowPlates(g, y))
}
