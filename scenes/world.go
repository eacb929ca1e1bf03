package scenes

import (
	"image/color"
	"sync"

	"github.com/Jokler/escape-my-basement/assets"
	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/shared/leveldata"
	"github.com/Jokler/escape-my-basement/systems"
	"github.com/Jokler/escape-my-basement/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       []*leveldata.CollisionData
	levelIndex   int
	once         sync.Once
}

// NewPlatformerScene creates a platformer scene starting at levelIndex.
func NewPlatformerScene(sc SceneChanger, levelIndex int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.load)
	ps.ecs.Update()

	if systems.GetOrCreateMenu(ps.ecs).QuitToTitle {
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
		return
	}

	// Rebuild the world when a door was entered or the level restarted.
	if levelEntry, ok := components.Level.First(ps.ecs.World); ok {
		level := components.Level.Get(levelEntry)
		if level.ReloadRequested {
			ps.levelIndex = level.LevelIndex
			ps.configure()
		}
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) load() {
	ps.levels = assets.NewLevelLoader().MustLoadLevels()
	assets.PreloadAll()
	ps.configure()
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateMenu)

	// Game systems wrapped with menu checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHazards))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDoors))

	// The death animation and explosion keep playing under the death overlay.
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateStates))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAnimations))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateTweens))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawHazards)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	ps.ecs = ecs

	factory.CreateControls(ps.ecs)
	factory.CreateCamera(ps.ecs)
	level := factory.CreateLevelAtIndex(ps.ecs, ps.levels, ps.levelIndex)
	ps.levelIndex = components.Level.Get(level).LevelIndex

	// Place the camera on the player before the first frame.
	systems.UpdateCamera(ps.ecs)
}
