// Package platemerge decomposes marked cells of an integer grid into axis-aligned
// rectangles using a greedy two-pass scan: contiguous runs in each row become plates,
// and plates that repeat with the exact same extent in consecutive rows are merged
// into one rectangle.
//
// The decomposition covers every marked cell exactly once. It is not guaranteed to use
// the minimal number of rectangles.
package platemerge

import (
	"fmt"
	"iter"
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Plate is a maximal horizontal run of marked cells within one row.
// Left and Right are inclusive column indices.
type Plate struct {
	Left, Right int
}

// Width returns the number of columns covered by the plate.
func (p Plate) Width() int {
	return p.Right - p.Left + 1
}

// Rect is an inclusive, axis-aligned block of cells. Bottom is the smallest row index
// and Top the largest.
type Rect struct {
	Left   int `json:"left"`
	Right  int `json:"right"`
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

func (r Rect) Height() int {
	return r.Top - r.Bottom + 1
}

// Area returns the number of cells covered by r.
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

func (r Rect) Contains(c Cell) bool {
	return c.X >= r.Left && c.X <= r.Right && c.Y >= r.Bottom && c.Y <= r.Top
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left <= o.Right && o.Left <= r.Right && r.Bottom <= o.Top && o.Bottom <= r.Top
}

// Cells yields every cell covered by r, row by row from Bottom to Top.
func (r Rect) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for y := r.Bottom; y <= r.Top; y++ {
			for x := r.Left; x <= r.Right; x++ {
				if !yield(Cell{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("{left:%d right:%d top:%d bottom:%d}", r.Left, r.Right, r.Top, r.Bottom)
}
