package main

import (
	"fmt"

	"github.com/Jokler/escape-my-basement/shared/platemerge"
	"github.com/gdamore/tcell/v2"
)

var rectColors = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorGreen,
	tcell.ColorYellow,
	tcell.ColorBlue,
	tcell.ColorPurple,
	tcell.ColorTeal,
	tcell.ColorOrange,
	tcell.ColorFuchsia,
}

// runView shows one level at a time with every rectangle in its own colour.
// Left and right switch levels; q or Esc quits.
func runView(rep *report) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	current := 0
	for {
		drawLevel(screen, rep, current)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyLeft:
				current = (current + len(rep.Levels) - 1) % len(rep.Levels)
			case ev.Key() == tcell.KeyRight:
				current = (current + 1) % len(rep.Levels)
			}
		}
	}
}

func drawLevel(screen tcell.Screen, rep *report, index int) {
	screen.Clear()
	l := rep.Levels[index]

	owner := make(map[platemerge.Cell]int, l.Marked)
	for i, r := range l.Rects {
		for c := range r.Cells() {
			owner[c] = i
		}
	}

	// Two terminal columns per cell keep tiles roughly square.
	for y := range l.Height {
		for x := range l.Width {
			c := platemerge.Cell{X: x, Y: y}
			style := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
			ch := '·'
			if i, ok := owner[c]; ok {
				style = tcell.StyleDefault.Background(rectColors[i%len(rectColors)])
				ch = ' '
			} else if l.grid != nil && l.grid.Marked(x, y) {
				// Marked but uncovered; never expected.
				style = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
				ch = '!'
			}
			screen.SetContent(2*x, y+1, ch, nil, style)
			screen.SetContent(2*x+1, y+1, ch, nil, style)
		}
	}

	header := fmt.Sprintf("%s [%d/%d] %s: %d cells -> %d rects   <- -> switch, q quit",
		l.Name, index+1, len(rep.Levels), rep.Layer, l.Marked, len(l.Rects))
	for i, r := range header {
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Bold(true))
	}
	screen.Show()
}
