package factory

import (
	"github.com/Jokler/escape-my-basement/archetypes"
	"github.com/Jokler/escape-my-basement/components"
	"github.com/Jokler/escape-my-basement/shared/collision"
	"github.com/Jokler/escape-my-basement/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, data *leveldata.CollisionData) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, collision.NewSpace(data))
	return space
}

// addToSpace links obj to its entry and adds it to the world's space if there is one.
func addToSpace(ecs *ecs.ECS, e *donburi.Entry, obj *components.ObjectData) {
	obj.Data = e
	components.Object.SetValue(e, *obj)
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj.Object)
	}
}
