package tags

import (
	"github.com/Jokler/escape-my-basement/shared/collision"
	"github.com/yohamta/donburi"
)

var (
	Player    = donburi.NewTag().SetName("Player")
	Wall      = donburi.NewTag().SetName("Wall")
	Door      = donburi.NewTag().SetName("Door")
	Spike     = donburi.NewTag().SetName("Spike")
	Mine      = donburi.NewTag().SetName("Mine")
	Explosion = donburi.NewTag().SetName("Explosion")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = collision.TagSolid
	ResolvDoor   = collision.TagDoor
	ResolvSpike  = collision.TagSpike
	ResolvMine   = collision.TagMine
	ResolvPlayer = collision.TagPlayer
)
