package platemerge

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrOutOfBounds is wrapped by every *BoundsError.
	ErrOutOfBounds = errors.New("cell outside grid bounds")
	// ErrInvalidSize is returned for grids with a negative width or height.
	ErrInvalidSize = errors.New("invalid grid size")
)

// BoundsError reports a marked cell that lies outside its grid.
type BoundsError struct {
	Partition any // nil when the grid was decomposed on its own
	Cell      Cell
	Width     int
	Height    int
}

func (e *BoundsError) Error() string {
	if e.Partition != nil {
		return fmt.Sprintf("partition %v: cell %v outside %dx%d grid", e.Partition, e.Cell, e.Width, e.Height)
	}
	return fmt.Sprintf("cell %v outside %dx%d grid", e.Cell, e.Width, e.Height)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// Grid is a bounded occupancy grid. Marked is only called with 0 <= x < width and
// 0 <= y < height.
type Grid interface {
	Size() (width, height int)
	Marked(x, y int) bool
}

// GridFunc adapts a predicate to Grid.
type GridFunc struct {
	Width, Height int
	Fn            func(x, y int) bool
}

func (g GridFunc) Size() (int, int) {
	return g.Width, g.Height
}

func (g GridFunc) Marked(x, y int) bool {
	return g.Fn(x, y)
}

// validator is implemented by grids that can check their own contents.
type validator interface {
	Validate() error
}

func validate(g Grid) error {
	width, height := g.Size()
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if v, ok := g.(validator); ok {
		return v.Validate()
	}
	return nil
}

// CellSet is a sparse occupancy grid backed by a map.
type CellSet struct {
	width, height int
	cells         map[Cell]struct{}
}

func NewCellSet(width, height int) *CellSet {
	return &CellSet{
		width:  width,
		height: height,
		cells:  make(map[Cell]struct{}),
	}
}

func (s *CellSet) Size() (int, int) {
	return s.width, s.height
}

func (s *CellSet) Marked(x, y int) bool {
	_, ok := s.cells[Cell{X: x, Y: y}]
	return ok
}

func (s *CellSet) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < s.width && c.Y >= 0 && c.Y < s.height
}

// Mark adds c to the set. Cells outside the declared bounds are rejected.
func (s *CellSet) Mark(c Cell) error {
	if !s.InBounds(c) {
		return &BoundsError{Cell: c, Width: s.width, Height: s.height}
	}
	s.cells[c] = struct{}{}
	return nil
}

// MarkAll marks every cell, stopping at the first out-of-bounds cell.
func (s *CellSet) MarkAll(cells ...Cell) error {
	for _, c := range cells {
		if err := s.Mark(c); err != nil {
			return err
		}
	}
	return nil
}

func (s *CellSet) Len() int {
	return len(s.cells)
}

// Cells returns the marked cells ordered by row, then column.
func (s *CellSet) Cells() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCells)
	return out
}

func (s *CellSet) Validate() error {
	if s.width < 0 || s.height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.width, s.height)
	}
	for _, c := range s.Cells() {
		if !s.InBounds(c) {
			return &BoundsError{Cell: c, Width: s.width, Height: s.height}
		}
	}
	return nil
}

// Cover rebuilds the occupancy grid described by rects.
func Cover(width, height int, rects []Rect) (*CellSet, error) {
	s := NewCellSet(width, height)
	for _, r := range rects {
		for c := range r.Cells() {
			if err := s.Mark(c); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func compareCells(a, b Cell) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
