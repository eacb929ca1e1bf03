package systems

import (
	"testing"

	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/shared/leveldata"
	"github.com/Jokler/escape-my-basement/systems/factory"
	"github.com/Jokler/escape-my-basement/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newGame builds a world with one level per rows slice, starting at the first.
func newGame(t *testing.T, levels ...[]string) *ecs.ECS {
	t.Helper()

	var data []*leveldata.CollisionData
	for i, rows := range levels {
		level, err := leveldata.ParseText("test", 16, rows...)
		require.NoError(t, err, "level %d", i)
		data = append(data, level)
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateControls(e)
	factory.CreateCamera(e)
	factory.CreateLevelAtIndex(e, data, 0)
	return e
}

// tick runs the gameplay systems in scene order.
func tick(e *ecs.ECS, n int) {
	for range n {
		UpdateMenu(e)
		WithGameplayChecks(UpdatePlayer)(e)
		WithGameplayChecks(UpdatePhysics)(e)
		WithGameplayChecks(UpdateCollisions)(e)
		WithGameplayChecks(UpdateHazards)(e)
		WithGameplayChecks(UpdateDoors)(e)
		WithPauseCheck(UpdateStates)(e)
		WithPauseCheck(UpdateAnimations)(e)
		WithPauseCheck(UpdateTweens)(e)
		GetOrCreateInput(e).Previous = GetOrCreateInput(e).Current
	}
}

// press holds action down until release is called.
func press(e *ecs.ECS, action cfg.ActionID) {
	GetOrCreateInput(e).Current[action] = true
}

func release(e *ecs.ECS, action cfg.ActionID) {
	GetOrCreateInput(e).Current[action] = false
}

func player(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	require.True(t, ok)
	return entry
}

// movePlayer teleports the player so its top-left corner is at (x, y).
func movePlayer(t *testing.T, e *ecs.ECS, x, y float64) {
	t.Helper()
	obj := components.Object.Get(player(t, e))
	obj.X, obj.Y = x, y
	obj.Update()
}

func level(t *testing.T, e *ecs.ECS) *components.LevelData {
	t.Helper()
	entry, ok := components.Level.First(e.World)
	require.True(t, ok)
	return components.Level.Get(entry)
}
