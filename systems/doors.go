package systems

import (
	"log"

	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/shared/collision"
	"github.com/Jokler/escape-my-basement/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDoors advances to the next level when the player walks into a door. Leaving the
// final level wins the game.
func UpdateDoors(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}

	obj := components.Object.Get(playerEntry)
	hit := collision.Touching(obj.Object, tags.ResolvDoor)
	if hit == nil {
		return
	}
	if doorEntry, ok := hit.Data.(*donburi.Entry); ok && doorEntry.HasComponent(components.Door) {
		components.Door.Get(doorEntry).Entered = true
	}

	level := components.Level.Get(levelEntry)
	if level.LevelIndex >= cfg.Level.FinalLevel || !level.Advance() {
		log.Printf("Escaped from level %d", level.LevelIndex)
		GetOrCreateMenu(ecs).Open(cfg.MenuWon, 0)
		_ = ClearGameProgress()
		return
	}

	log.Printf("Entering level %d (%s)", level.LevelIndex, level.CurrentLevel.Name)
	_ = SaveGameProgress(level.LevelIndex)
}
