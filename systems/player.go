package systems

import (
	"math"

	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		// Dead players only play their death animation.
		if e.HasComponent(components.Death) {
			components.Death.Get(e).Timer++
			return
		}
		handlePlayerInput(input, components.Player.Get(e), components.Physics.Get(e))
	})
}

func handlePlayerInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	target := 0.0
	if input.Pressed(cfg.ActionMoveLeft) {
		target -= physics.MaxSpeed
	}
	if input.Pressed(cfg.ActionMoveRight) {
		target += physics.MaxSpeed
	}
	if target != 0 {
		player.Direction.X = math.Copysign(1, target)
	}

	accel := physics.Acceleration
	if physics.OnGround == nil {
		accel = physics.AirAcceleration
	}
	physics.SpeedX = gamemath.Approach(physics.SpeedX, target, accel)

	jump := input.Pressed(cfg.ActionJump)
	if jump && !player.JumpHeld && physics.OnGround != nil {
		physics.SpeedY = -cfg.Player.JumpSpeed
		physics.OnGround = nil
	}
	player.JumpHeld = jump
}
