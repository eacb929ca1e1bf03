package systems

import (
	"testing"

	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

var corridor = []string{
	"########",
	"#......#",
	"#P.^M.D#",
	"########",
}

var exit = []string{
	"#####",
	"#P.D#",
	"#####",
}

func TestUpdateDoors_AdvancesLevel(t *testing.T) {
	t.Parallel()

	e := newGame(t, corridor, exit)
	// Door is column 6, row 2.
	movePlayer(t, e, 100, 40)
	UpdateDoors(e)

	l := level(t, e)
	assert.Equal(t, 1, l.LevelIndex)
	assert.True(t, l.ReloadRequested)
	assert.Equal(t, cfg.MenuNone, GetOrCreateMenu(e).Current)

	door, ok := tags.Door.First(e.World)
	require.True(t, ok)
	assert.True(t, components.Door.Get(door).Entered)
}

func TestUpdateDoors_LastLevelWins(t *testing.T) {
	t.Parallel()

	e := newGame(t, exit)
	movePlayer(t, e, 52, 24)
	UpdateDoors(e)

	assert.Equal(t, 0, level(t, e).LevelIndex)
	assert.False(t, level(t, e).ReloadRequested)
	assert.Equal(t, cfg.MenuWon, GetOrCreateMenu(e).Current)
}

func TestUpdateDoors_NotTouching(t *testing.T) {
	t.Parallel()

	e := newGame(t, corridor, exit)
	UpdateDoors(e)
	assert.Equal(t, 0, level(t, e).LevelIndex)
}

func TestUpdateHazards_Spike(t *testing.T) {
	t.Parallel()

	e := newGame(t, corridor)
	movePlayer(t, e, 52, 40)
	UpdateHazards(e)

	p := player(t, e)
	require.True(t, p.HasComponent(components.Death))
	assert.Equal(t, "spike", components.Death.Get(p).Cause)
	assert.Equal(t, cfg.Die, components.State.Get(p).CurrentState)

	spike, ok := tags.Spike.First(e.World)
	require.True(t, ok)
	assert.True(t, components.Spike.Get(spike).Revealed)

	menu := GetOrCreateMenu(e)
	assert.Equal(t, cfg.MenuDeath, menu.Current)
	assert.False(t, menu.Visible(), "death overlay waits for the death animation")
}

func TestUpdateHazards_MineExplodes(t *testing.T) {
	t.Parallel()

	e := newGame(t, corridor)
	movePlayer(t, e, 68, 40)
	UpdateHazards(e)

	mine, ok := tags.Mine.First(e.World)
	require.True(t, ok)
	assert.True(t, components.Mine.Get(mine).Triggered)

	explosion, ok := tags.Explosion.First(e.World)
	require.True(t, ok)
	data := components.Explosion.Get(explosion)
	assert.Equal(t, 72.0, data.X)
	assert.Equal(t, 40-cfg.Mine.ExplosionOffsetY, data.Y)

	// The explosion plays out and removes itself while the player is dead.
	tick(e, 200)
	_, ok = tags.Explosion.First(e.World)
	assert.False(t, ok)
	assert.True(t, player(t, e).HasComponent(components.Death))
}

func TestUpdateMenu_Pause(t *testing.T) {
	t.Parallel()

	e := newGame(t, corridor)
	menu := GetOrCreateMenu(e)

	press(e, cfg.ActionPause)
	tick(e, 1)
	assert.Equal(t, cfg.MenuPause, menu.Current)

	// Gameplay is frozen while paused.
	before := components.Object.Get(player(t, e)).Y
	release(e, cfg.ActionPause)
	tick(e, 20)
	assert.Equal(t, before, components.Object.Get(player(t, e)).Y)

	press(e, cfg.ActionPause)
	tick(e, 1)
	assert.Equal(t, cfg.MenuNone, menu.Current)
}

func TestUpdateMenu_PauseQuit(t *testing.T) {
	t.Parallel()

	e := newGame(t, corridor)
	GetOrCreateMenu(e).Open(cfg.MenuPause, 0)
	press(e, cfg.ActionConfirm)
	tick(e, 1)
	assert.True(t, GetOrCreateMenu(e).QuitToTitle)
}

func TestUpdateMenu_RestartAfterDeath(t *testing.T) {
	t.Parallel()

	e := newGame(t, corridor)
	menu := GetOrCreateMenu(e)
	menu.Open(cfg.MenuDeath, 3)

	// Restart is ignored until the overlay shows.
	press(e, cfg.ActionRestart)
	tick(e, 1)
	assert.False(t, level(t, e).ReloadRequested)
	release(e, cfg.ActionRestart)
	tick(e, 3)
	require.True(t, menu.Visible())

	press(e, cfg.ActionRestart)
	tick(e, 1)
	assert.True(t, level(t, e).ReloadRequested)
	assert.Equal(t, 0, level(t, e).LevelIndex)
	assert.Equal(t, cfg.MenuNone, menu.Current)
}

func TestUpdateMenu_WonConfirm(t *testing.T) {
	t.Parallel()

	e := newGame(t, exit)
	GetOrCreateMenu(e).Open(cfg.MenuWon, 0)
	press(e, cfg.ActionConfirm)
	tick(e, 1)
	assert.True(t, GetOrCreateMenu(e).QuitToTitle)
}

func TestWithGameplayChecks(t *testing.T) {
	t.Parallel()

	e := newGame(t, exit)
	calls := 0
	system := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	system(e)
	GetOrCreateMenu(e).Open(cfg.MenuDeath, 0)
	system(e)
	assert.Equal(t, 1, calls)

	paused := WithPauseCheck(func(*ecs.ECS) { calls++ })
	paused(e)
	GetOrCreateMenu(e).Open(cfg.MenuPause, 0)
	paused(e)
	assert.Equal(t, 2, calls)
}

func TestUpdateTweens_DoorPulse(t *testing.T) {
	t.Parallel()

	e := newGame(t, exit)
	door, ok := tags.Door.First(e.World)
	require.True(t, ok)
	tw := components.Tween.Get(door)

	for range int(cfg.Door.PulseDuration) {
		UpdateTweens(e)
	}
	assert.InDelta(t, cfg.Door.MaxAlpha, tw.Value, 1e-4)
	assert.Equal(t, cfg.Door.MaxAlpha, tw.From, "pulse reverses")
	assert.False(t, tw.Finished)

	UpdateTweens(e)
	assert.Less(t, tw.Value, cfg.Door.MaxAlpha)
}

func TestUpdateCamera_SmallLevelIsCentred(t *testing.T) {
	t.Parallel()

	e := newGame(t, exit)
	UpdateCamera(e)

	entry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	camera := components.Camera.Get(entry)
	assert.Equal(t, 40.0, camera.Position.X)
	assert.Equal(t, 24.0, camera.Position.Y)
}

func TestClampAxis(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 320.0, clampAxis(10, 640, 1000))
	assert.Equal(t, 680.0, clampAxis(990, 640, 1000))
	assert.Equal(t, 500.0, clampAxis(500, 640, 1000))
}

func TestPersistence_NoopWhenUninitialised(t *testing.T) {
	t.Parallel()

	progress, err := LoadGameProgress()
	assert.NoError(t, err)
	assert.Nil(t, progress)
	assert.NoError(t, SaveGameProgress(3))
	assert.NoError(t, ClearGameProgress())
	assert.False(t, HasSaveGame())
}
