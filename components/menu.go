package components

import (
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/yohamta/donburi"
)

// MenuData holds the overlay shown on top of gameplay.
type MenuData struct {
	Current cfg.MenuID
	// VisibleIn delays drawing of the current overlay by this many ticks.
	VisibleIn   int
	QuitToTitle bool
}

func (m *MenuData) Open(id cfg.MenuID, delay int) {
	m.Current = id
	m.VisibleIn = delay
}

func (m *MenuData) Close() {
	m.Current = cfg.MenuNone
	m.VisibleIn = 0
}

// Visible reports whether an overlay should be drawn this tick.
func (m *MenuData) Visible() bool {
	return m.Current != cfg.MenuNone && m.VisibleIn <= 0
}

var Menu = donburi.NewComponentType[MenuData]()
