package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a single float between From and To. PingPong tweens restart in the
// opposite direction when they finish; others stop and set Finished.
type TweenData struct {
	Tween    *gween.Tween
	From, To float32
	Duration float32
	Value    float32
	PingPong bool
	Finished bool
}

var Tween = donburi.NewComponentType[TweenData]()
