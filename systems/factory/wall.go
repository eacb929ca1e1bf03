package factory

import (
	"github.com/Jokler/escape-my-basement/archetypes"
	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/shared/collision"
	"github.com/Jokler/escape-my-basement/shared/leveldata"
	"github.com/Jokler/escape-my-basement/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds one merged block of solid tiles.
func CreateWall(ecs *ecs.ECS, r leveldata.SolidRect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	addToSpace(ecs, wall, &components.ObjectData{Object: collision.NewRectObject(r.WorldRect, tags.ResolvSolid)})
	return wall
}

// CreateDoor adds a door sensor. Doors pulse so the exit is visible.
func CreateDoor(ecs *ecs.ECS, r leveldata.SolidRect) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)
	addToSpace(ecs, door, &components.ObjectData{Object: collision.NewRectObject(r.WorldRect, tags.ResolvDoor)})
	components.Door.SetValue(door, components.DoorData{Cells: r.Cells})
	components.Tween.SetValue(door, components.TweenData{
		Tween:    gween.New(cfg.Door.MinAlpha, cfg.Door.MaxAlpha, cfg.Door.PulseDuration, ease.InOutSine),
		From:     cfg.Door.MinAlpha,
		To:       cfg.Door.MaxAlpha,
		Duration: cfg.Door.PulseDuration,
		Value:    cfg.Door.MinAlpha,
		PingPong: true,
	})
	return door
}
