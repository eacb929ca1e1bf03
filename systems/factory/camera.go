package factory

import (
	"github.com/Jokler/escape-my-basement/archetypes"
	"github.com/Jokler/escape-my-basement/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}

// CreateControls spawns the input and menu singletons.
func CreateControls(ecs *ecs.ECS) {
	archetypes.Input.Spawn(ecs)
	archetypes.Menu.Spawn(ecs)
}
