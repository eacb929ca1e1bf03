package systems

import (
	"github.com/Jokler/escape-my-basement/components"
	"github.com/Jokler/escape-my-basement/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// Skip physics for dying player - freeze in place during death delay
		if e.HasComponent(components.Death) {
			return
		}

		physics := components.Physics.Get(e)
		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxSpeed)

		physics.SpeedY += physics.Gravity
		if physics.MaxFallSpeed > 0 && physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		}
	})
}
