package systems

import (
	"log"

	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/shared/collision"
	"github.com/Jokler/escape-my-basement/systems/factory"
	"github.com/Jokler/escape-my-basement/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards kills the player on contact with a spike or a mine. Spikes are revealed
// and mines explode.
func UpdateHazards(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	obj := components.Object.Get(playerEntry)

	if hit := collision.Touching(obj.Object, tags.ResolvSpike); hit != nil {
		if e, ok := hit.Data.(*donburi.Entry); ok && e.HasComponent(components.Spike) {
			components.Spike.Get(e).Revealed = true
		}
		killPlayer(ecs, playerEntry, "spike")
		return
	}

	if hit := collision.Touching(obj.Object, tags.ResolvMine); hit != nil {
		if e, ok := hit.Data.(*donburi.Entry); ok && e.HasComponent(components.Mine) {
			mine := components.Mine.Get(e)
			if !mine.Triggered {
				mine.Triggered = true
				factory.CreateExplosion(ecs, hit.X+hit.W/2, hit.Y+hit.H/2)
			}
		}
		killPlayer(ecs, playerEntry, "mine")
	}
}

func killPlayer(ecs *ecs.ECS, e *donburi.Entry, cause string) {
	log.Printf("Player killed by %s", cause)
	donburi.Add(e, components.Death, &components.DeathData{Cause: cause})

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0

	state := components.State.Get(e)
	state.CurrentState = cfg.Die
	state.StateTimer = 0

	GetOrCreateMenu(ecs).Open(cfg.MenuDeath, cfg.Menu.DeathDelay)
}
