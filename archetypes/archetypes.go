package archetypes

import (
	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Physics,
		components.State,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Object,
		components.Tween,
	)
	Spike = newArchetype(
		tags.Spike,
		components.Spike,
		components.Object,
	)
	Mine = newArchetype(
		tags.Mine,
		components.Mine,
		components.Object,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Explosion,
		components.Animation,
		components.Tween,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Menu = newArchetype(
		components.Menu,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
