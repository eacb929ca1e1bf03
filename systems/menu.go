package systems

import (
	"github.com/Jokler/escape-my-basement/archetypes"
	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMenu handles the pause, death and win overlays.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdateMenu(ecs *ecs.ECS) {
	menu := GetOrCreateMenu(ecs)
	input := GetOrCreateInput(ecs)

	if menu.VisibleIn > 0 {
		menu.VisibleIn--
	}

	switch menu.Current {
	case cfg.MenuNone:
		if input.JustPressed(cfg.ActionPause) {
			menu.Open(cfg.MenuPause, 0)
		}
	case cfg.MenuPause:
		if input.JustPressed(cfg.ActionPause) {
			menu.Close()
		} else if input.JustPressed(cfg.ActionConfirm) {
			menu.QuitToTitle = true
		}
	case cfg.MenuDeath:
		if !menu.Visible() {
			return
		}
		if input.JustPressed(cfg.ActionRestart) {
			restartLevel(ecs)
			menu.Close()
		} else if input.JustPressed(cfg.ActionConfirm) {
			menu.QuitToTitle = true
		}
	case cfg.MenuWon:
		if input.JustPressed(cfg.ActionConfirm) {
			menu.QuitToTitle = true
		}
	}
}

// restartLevel asks the scene to rebuild the current level.
func restartLevel(ecs *ecs.ECS) {
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		components.Level.Get(levelEntry).ReloadRequested = true
	}
}

// DrawMenu renders the current overlay, if any.
func DrawMenu(ecs *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(ecs)
	if !menu.Visible() {
		return
	}

	var title, hint string
	switch menu.Current {
	case cfg.MenuPause:
		title, hint = cfg.Menu.PauseTitle, cfg.Menu.PauseHint
	case cfg.MenuDeath:
		title, hint = cfg.Menu.DeathTitle, cfg.Menu.DeathHint
	case cfg.MenuWon:
		title, hint = cfg.Menu.WonTitle, cfg.Menu.WonHint
	}

	DrawOverlay(screen, title, hint)
}

// DrawOverlay dims the screen and draws a centred title with a hint line below it.
func DrawOverlay(screen *ebiten.Image, title, hint string) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.OverlayColor, false)

	titleFont := fonts.Title.Get()
	titleWidth := text.BoundString(titleFont, title).Dx()
	text.Draw(screen, title, titleFont, int(width-float64(titleWidth))/2, int(height/2), cfg.Menu.TitleColor)

	hintFont := fonts.Small.Get()
	hintWidth := text.BoundString(hintFont, hint).Dx()
	text.Draw(screen, hint, hintFont, int(width-float64(hintWidth))/2, int(height/2)+24, cfg.Menu.TextColor)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(ecs *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(ecs.World)
	if !ok {
		entry = archetypes.Menu.Spawn(ecs)
	}
	return components.Menu.Get(entry)
}

// WithGameplayChecks wraps a system so it is skipped while any overlay is open.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if GetOrCreateMenu(ecs).Current != cfg.MenuNone {
			return
		}
		system(ecs)
	}
}

// WithPauseCheck wraps a system so it is skipped only while paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if GetOrCreateMenu(ecs).Current == cfg.MenuPause {
			return
		}
		system(ecs)
	}
}
