package systems

import (
	"math"

	"github.com/Jokler/escape-my-basement/components"
	"github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	targetX = clampAxis(targetX, screenWidth, float64(levelData.CurrentLevel.MapWidth))
	targetY = clampAxis(targetY, screenHeight, float64(levelData.CurrentLevel.MapHeight))

	// Snap on the first frame of a level, smooth afterwards.
	if camera.Position.X == 0 && camera.Position.Y == 0 {
		camera.Position.X, camera.Position.Y = targetX, targetY
		return
	}
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.Smoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.Smoothing
}

// clampAxis keeps the view inside the level. Levels smaller than the screen are centred.
func clampAxis(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}
