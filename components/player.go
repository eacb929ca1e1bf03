package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector
	SpawnX    float64 // where Restart puts the player back
	SpawnY    float64
	JumpHeld  bool // jump is only triggered on a fresh press while grounded
}

var Player = donburi.NewComponentType[PlayerData]()

// DeathData marks a player that touched a hazard. Timer counts ticks since death.
type DeathData struct {
	Timer int
	Cause string
}

var Death = donburi.NewComponentType[DeathData]()
