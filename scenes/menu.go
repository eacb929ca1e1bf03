package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene is the title screen. Enter starts a game, continuing saved progress if any.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	hasSave      bool
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.hasSave = systems.HasSaveGame()

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(ms.updateTitle)
	ms.ecs.AddRenderer(cfg.Default, ms.drawTitle)
}

func (ms *MenuScene) updateTitle(e *ecs.ECS) {
	input := systems.GetOrCreateInput(e)

	switch {
	case input.JustPressed(cfg.ActionConfirm):
		levelIndex := cfg.Debug.StartLevel
		if ms.hasSave {
			if progress, err := systems.LoadGameProgress(); err == nil && progress != nil {
				levelIndex = progress.LevelIndex
			}
		}
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, levelIndex))
	case ms.hasSave && input.JustPressed(cfg.ActionNewGame):
		_ = systems.ClearGameProgress()
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, 0))
	}
}

func (ms *MenuScene) drawTitle(_ *ecs.ECS, screen *ebiten.Image) {
	hint := cfg.Menu.TitleHint
	if ms.hasSave {
		hint = cfg.Menu.ContinueHint
	}
	systems.DrawOverlay(screen, cfg.Menu.TitleScreen, hint)
}
