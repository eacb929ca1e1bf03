// Package gamemath holds small pure helpers shared by client systems, level loading and tools.
package gamemath

import (
	"math"

	"github.com/Jokler/escape-my-basement/shared/platemerge"
)

// WorldRect is an axis-aligned rectangle in pixels, Y growing downward.
type WorldRect struct {
	X, Y, W, H float64
}

// CellToWorld returns the top-left pixel of a grid cell.
func CellToWorld(c platemerge.Cell, tileW, tileH float64) (x, y float64) {
	return float64(c.X) * tileW, float64(c.Y) * tileH
}

// CellCenter returns the pixel centre of a grid cell.
func CellCenter(c platemerge.Cell, tileW, tileH float64) (x, y float64) {
	return (float64(c.X) + 0.5) * tileW, (float64(c.Y) + 0.5) * tileH
}

// WorldToCell returns the cell containing pixel (x, y).
func WorldToCell(x, y, tileW, tileH float64) platemerge.Cell {
	return platemerge.Cell{
		X: int(math.Floor(x / tileW)),
		Y: int(math.Floor(y / tileH)),
	}
}

// RectToWorld scales a cell rectangle to pixels. Level rows grow downward, so the
// rectangle's Bottom row is its upper edge on screen.
func RectToWorld(r platemerge.Rect, tileW, tileH float64) WorldRect {
	return WorldRect{
		X: float64(r.Left) * tileW,
		Y: float64(r.Bottom) * tileH,
		W: float64(r.Width()) * tileW,
		H: float64(r.Height()) * tileH,
	}
}

// RectCenter returns the pixel centre of a cell rectangle.
func RectCenter(r platemerge.Rect, tileW, tileH float64) (x, y float64) {
	return float64(r.Left+r.Right+1) * tileW / 2, float64(r.Bottom+r.Top+1) * tileH / 2
}

// Intersects reports whether two world rectangles overlap with positive area.
func (r WorldRect) Intersects(o WorldRect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
