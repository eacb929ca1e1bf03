package factory

import (
	"log"

	"github.com/Jokler/escape-my-basement/archetypes"
	"github.com/Jokler/escape-my-basement/components"
	"github.com/Jokler/escape-my-basement/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelAtIndex stores the level list in a new Level entity and populates the world
// with the level at levelIndex. Out of range indices fall back to the first level.
func CreateLevelAtIndex(ecs *ecs.ECS, levels []*leveldata.CollisionData, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("No levels found in assets/levels directory")
	}

	if levelIndex < 0 || levelIndex >= len(levels) {
		log.Printf("Warning: level index %d out of range, starting at 0", levelIndex)
		levelIndex = 0
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: levels[levelIndex],
	})

	PopulateLevel(ecs, levels[levelIndex])
	return level
}

// PopulateLevel creates the collision space and every entity of one level.
func PopulateLevel(ecs *ecs.ECS, data *leveldata.CollisionData) {
	CreateSpace(ecs, data)

	for _, r := range data.SolidRects {
		CreateWall(ecs, r)
	}
	for _, r := range data.DoorRects {
		CreateDoor(ecs, r)
	}
	for _, s := range data.Spikes {
		CreateSpike(ecs, s)
	}
	for _, m := range data.Mines {
		CreateMine(ecs, m)
	}

	if len(data.SpawnPoints) == 0 {
		log.Printf("Warning: level %s has no player spawn, using map centre", data.Name)
		CreatePlayer(ecs, float64(data.MapWidth)/2, float64(data.MapHeight)/2)
	} else {
		spawn := data.SpawnPoints[0]
		CreatePlayer(ecs, spawn.X, spawn.Y)
	}

	log.Printf("Level %s: %d walls from %d solid tiles", data.Name, len(data.SolidRects), data.MarkedCells(leveldata.LayerSolid))
}
