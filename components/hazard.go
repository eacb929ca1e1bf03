package components

import (
	"github.com/Jokler/escape-my-basement/shared/leveldata"
	"github.com/yohamta/donburi"
)

// SpikeData is hidden until the player touches it.
type SpikeData struct {
	Rotation leveldata.Rotation
	Revealed bool
}

var Spike = donburi.NewComponentType[SpikeData]()

type MineData struct {
	Triggered bool
}

var Mine = donburi.NewComponentType[MineData]()

// ExplosionData marks a one-shot effect removed once its animation and fade finish.
type ExplosionData struct {
	X, Y float64
}

var Explosion = donburi.NewComponentType[ExplosionData]()
