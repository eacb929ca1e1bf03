package systems

import (
	"math"

	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates derives the player state from its physics.
func UpdateStates(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		state.PreviousState = state.CurrentState
		state.CurrentState = playerState(e.HasComponent(components.Death), components.Physics.Get(e))
		if state.CurrentState == state.PreviousState {
			state.StateTimer++
		} else {
			state.StateTimer = 0
		}
	})
}

func playerState(dead bool, physics *components.PhysicsData) cfg.StateID {
	switch {
	case dead:
		return cfg.Die
	case physics.OnGround == nil && physics.SpeedY < 0:
		return cfg.Jump
	case physics.OnGround == nil:
		return cfg.Fall
	case math.Abs(physics.SpeedX) > cfg.Player.IdleThreshold:
		return cfg.Walk
	default:
		return cfg.Idle
	}
}

// UpdateAnimations switches each animated entity to the clip of its state and advances it.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if e.HasComponent(components.State) {
			anim.SetAnimation(components.State.Get(e).CurrentState)
		}
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
