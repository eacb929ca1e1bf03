package platemerge

import "slices"

// merger grows rectangles across consecutive rows. A rectangle stays open only while
// the next row contains a plate with exactly the same Left and Right; any change in
// extent, including a split, a join or a one-column shift, closes it.
type merger struct {
	open map[Plate]*Rect
	prev []Plate
	done []Rect
}

func newMerger() *merger {
	return &merger{
		open: make(map[Plate]*Rect),
		done: []Rect{},
	}
}

// step consumes the plates of row y.
func (m *merger) step(y int, row []Plate) {
	if len(m.prev) > 0 {
		next := make(map[Plate]struct{}, len(row))
		for _, p := range row {
			next[p] = struct{}{}
		}
		for _, p := range m.prev {
			if _, ok := next[p]; ok {
				continue
			}
			// Removing it means the same plate further up starts a fresh rectangle.
			if r, ok := m.open[p]; ok {
				m.done = append(m.done, *r)
				delete(m.open, p)
			}
		}
	}

	for _, p := range row {
		if r, ok := m.open[p]; ok {
			r.Top = y
			continue
		}
		m.open[p] = &Rect{Left: p.Left, Right: p.Right, Top: y, Bottom: y}
	}

	m.prev = row
}

// finish feeds an empty sentinel row so rectangles reaching the last row are closed.
func (m *merger) finish(y int) []Rect {
	m.step(y, nil)
	slices.SortFunc(m.done, compareRects)
	return m.done
}

// Decompose covers the marked cells of g with non-overlapping rectangles.
// The result is sorted by Bottom, then Left, then Top. An empty grid yields an empty slice.
func Decompose(g Grid) ([]Rect, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	return decompose(g), nil
}

func decompose(g Grid) []Rect {
	_, height := g.Size()
	m := newMerger()
	for y := 0; y < height; y++ {
		m.step(y, Plates(g, y))
	}
	return m.finish(height)
}

func compareRects(a, b Rect) int {
	if a.Bottom != b.Bottom {
		return a.Bottom - b.Bottom
	}
	if a.Left != b.Left {
		return a.Left - b.Left
	}
	return a.Top - b.Top
}
