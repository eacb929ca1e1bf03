package factory

import (
	"github.com/Jokler/escape-my-basement/archetypes"
	"github.com/Jokler/escape-my-basement/assets/animations"
	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/shared/collision"
	"github.com/Jokler/escape-my-basement/shared/leveldata"
	"github.com/Jokler/escape-my-basement/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpike(ecs *ecs.ECS, s leveldata.Spike) *donburi.Entry {
	spike := archetypes.Spike.Spawn(ecs)
	addToSpace(ecs, spike, &components.ObjectData{Object: collision.NewRectObject(s.WorldRect, tags.ResolvSpike)})
	components.Spike.SetValue(spike, components.SpikeData{Rotation: s.Rotation})
	return spike
}

func CreateMine(ecs *ecs.ECS, m leveldata.Mine) *donburi.Entry {
	mine := archetypes.Mine.Spawn(ecs)
	addToSpace(ecs, mine, &components.ObjectData{Object: collision.NewRectObject(m.WorldRect, tags.ResolvMine)})
	return mine
}

// CreateExplosion spawns a one-shot explosion centred on (x, y) that fades out.
func CreateExplosion(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	explosion := archetypes.Explosion.Spawn(ecs)
	components.Explosion.SetValue(explosion, components.ExplosionData{
		X: x,
		Y: y - cfg.Mine.ExplosionOffsetY,
	})

	anims := animations.Set("mine")
	components.Animation.SetValue(explosion, components.AnimationData{
		CurrentAnimation: anims[cfg.Explode],
		CurrentSheet:     cfg.Explode,
		FrameWidth:       cfg.Mine.ExplosionSize,
		FrameHeight:      cfg.Mine.ExplosionSize,
		Columns:          8,
		Animations:       anims,
	})
	components.Tween.SetValue(explosion, components.TweenData{
		Tween:    gween.New(1, 0, cfg.Mine.ExplosionDuration, ease.Linear),
		From:     1,
		To:       0,
		Duration: cfg.Mine.ExplosionDuration,
		Value:    1,
	})
	return explosion
}
