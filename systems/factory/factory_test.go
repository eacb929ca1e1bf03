package factory

import (
	"testing"

	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/shared/leveldata"
	"github.com/Jokler/escape-my-basement/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testLevels(t *testing.T) []*leveldata.CollisionData {
	t.Helper()
	first, err := leveldata.ParseText("first", 16,
		"##########",
		"#.......D#",
		"#P..^..MD#",
		"##########",
	)
	require.NoError(t, err)
	second, err := leveldata.ParseText("second", 16,
		"######",
		"#P..D#",
		"######",
	)
	require.NoError(t, err)
	return []*leveldata.CollisionData{first, second}
}

func count(world donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(world, func(*donburi.Entry) { n++ })
	return n
}

func TestCreateLevelAtIndex(t *testing.T) {
	t.Parallel()

	e := ecs.NewECS(donburi.NewWorld())
	levels := testLevels(t)
	entry := CreateLevelAtIndex(e, levels, 0)

	level := components.Level.Get(entry)
	assert.Equal(t, 0, level.LevelIndex)
	assert.Same(t, levels[0], level.CurrentLevel)

	// One wall per merged rectangle, not per tile.
	assert.Equal(t, len(levels[0].SolidRects), count(e.World, tags.Wall))
	assert.Less(t, count(e.World, tags.Wall), levels[0].MarkedCells(leveldata.LayerSolid))
	assert.Equal(t, 1, count(e.World, tags.Door))
	assert.Equal(t, 1, count(e.World, tags.Spike))
	assert.Equal(t, 1, count(e.World, tags.Mine))
	assert.Equal(t, 1, count(e.World, tags.Player))

	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	space := components.Space.Get(spaceEntry)
	// walls + door + spike + mine + player
	assert.Len(t, space.Objects(), len(levels[0].SolidRects)+4)
}

func TestCreateLevelAtIndex_OutOfRange(t *testing.T) {
	t.Parallel()

	e := ecs.NewECS(donburi.NewWorld())
	entry := CreateLevelAtIndex(e, testLevels(t), 7)
	assert.Equal(t, 0, components.Level.Get(entry).LevelIndex)
}

func TestCreateLevelAtIndex_NoLevels(t *testing.T) {
	t.Parallel()

	e := ecs.NewECS(donburi.NewWorld())
	assert.Panics(t, func() { CreateLevelAtIndex(e, nil, 0) })
}

func TestCreatePlayer(t *testing.T) {
	t.Parallel()

	e := ecs.NewECS(donburi.NewWorld())
	player := CreatePlayer(e, 40, 48)

	obj := components.Object.Get(player)
	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	assert.Equal(t, 40-w/2, obj.X)
	assert.Equal(t, 48-h, obj.Y)
	linked, ok := obj.Data.(*donburi.Entry)
	require.True(t, ok)
	assert.Equal(t, player.Entity(), linked.Entity())
	assert.True(t, obj.HasTags(tags.ResolvPlayer))

	anim := components.Animation.Get(player)
	assert.Equal(t, cfg.Idle, anim.CurrentSheet)
	assert.NotNil(t, anim.Animations[cfg.Die])
}

func TestCreateDoor_Pulses(t *testing.T) {
	t.Parallel()

	e := ecs.NewECS(donburi.NewWorld())
	door := CreateDoor(e, testLevels(t)[1].DoorRects[0])

	tw := components.Tween.Get(door)
	assert.True(t, tw.PingPong)
	assert.Equal(t, cfg.Door.MinAlpha, tw.From)
	assert.Equal(t, cfg.Door.MaxAlpha, tw.To)
}

func TestCreateExplosion(t *testing.T) {
	t.Parallel()

	e := ecs.NewECS(donburi.NewWorld())
	explosion := CreateExplosion(e, 100, 50)

	data := components.Explosion.Get(explosion)
	assert.Equal(t, 100.0, data.X)
	assert.Equal(t, 50-cfg.Mine.ExplosionOffsetY, data.Y)
	assert.Equal(t, cfg.Explode, components.Animation.Get(explosion).CurrentSheet)
	assert.False(t, components.Tween.Get(explosion).PingPong)
}
