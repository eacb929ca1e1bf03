package systems

import (
	"github.com/Jokler/escape-my-basement/components"
	"github.com/Jokler/escape-my-basement/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances every tween by one tick. Finished explosions are removed once
// their animation has played out too.
func UpdateTweens(ecs *ecs.ECS) {
	var finished []*donburi.Entry
	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		advanceTween(tw)

		if !e.HasComponent(tags.Explosion) || !tw.Finished {
			return
		}
		if anim := components.Animation.Get(e); anim.CurrentAnimation == nil || anim.CurrentAnimation.Finished() {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		ecs.World.Remove(e.Entity())
	}
}

func advanceTween(tw *components.TweenData) {
	if tw.Tween == nil || tw.Finished {
		return
	}
	value, done := tw.Tween.Update(1)
	tw.Value = value
	if !done {
		return
	}
	if tw.PingPong {
		tw.From, tw.To = tw.To, tw.From
		tw.Tween = gween.New(tw.From, tw.To, tw.Duration, ease.InOutSine)
		return
	}
	tw.Finished = true
}
