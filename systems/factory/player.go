package factory

import (
	"github.com/Jokler/escape-my-basement/archetypes"
	"github.com/Jokler/escape-my-basement/assets/animations"
	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player standing on (x, y): the spawn point is the feet position.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	left, top := x-w/2, y-h

	obj := resolv.NewObject(left, top, w, h, "character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, player, &components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight, Y: 0},
		SpawnX:    left,
		SpawnY:    top,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:         cfg.Physics.Gravity,
		MaxSpeed:        cfg.Player.WalkSpeed,
		MaxFallSpeed:    cfg.Physics.MaxFallSpeed,
		Acceleration:    cfg.Player.Acceleration,
		AirAcceleration: cfg.Player.AirAcceleration,
	})

	anims := animations.Set("player")
	components.Animation.SetValue(player, components.AnimationData{
		CurrentAnimation: anims[cfg.Idle],
		CurrentSheet:     cfg.Idle,
		FrameWidth:       cfg.Player.FrameWidth,
		FrameHeight:      cfg.Player.FrameHeight,
		Columns:          4,
		Animations:       anims,
	})

	return player
}
