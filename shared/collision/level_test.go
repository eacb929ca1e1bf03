package collision

import (
	"testing"
	"testing/fstest"

	"github.com/Jokler/escape-my-basement/shared/gamemath"
	"github.com/Jokler/escape-my-basement/shared/leveldata"
	"github.com/Jokler/escape-my-basement/shared/platemerge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() *leveldata.CollisionData {
	wall := platemerge.Rect{Left: 0, Right: 9, Top: 9, Bottom: 9}
	door := platemerge.Rect{Left: 8, Right: 9, Top: 8, Bottom: 7}
	return &leveldata.CollisionData{
		Name:       "test",
		MapWidth:   160,
		MapHeight:  160,
		GridWidth:  10,
		GridHeight: 10,
		TileWidth:  16,
		TileHeight: 16,
		SolidRects: []leveldata.SolidRect{{WorldRect: gamemath.RectToWorld(wall, 16, 16), Cells: wall}},
		DoorRects:  []leveldata.SolidRect{{WorldRect: gamemath.RectToWorld(door, 16, 16), Cells: door}},
		Spikes: []leveldata.Spike{
			{WorldRect: gamemath.WorldRect{X: 32, Y: 128, W: 16, H: 16}},
		},
		Mines: []leveldata.Mine{
			{WorldRect: gamemath.WorldRect{X: 64, Y: 128, W: 16, H: 16}},
		},
	}
}

func TestNewLevelSpace(t *testing.T) {
	t.Parallel()

	ls := NewLevelSpace(testData())
	require.Len(t, ls.Solids, 1)
	require.Len(t, ls.Doors, 1)
	assert.Equal(t, map[string]int{TagSolid: 1, TagDoor: 1, TagSpike: 1, TagMine: 1}, ls.Stats())

	wall := ls.Solids[0]
	assert.Equal(t, gamemath.WorldRect{X: 0, Y: 144, W: 160, H: 16}, Bounds(wall))
	assert.True(t, wall.HasTags(TagSolid))
}

func TestTouching(t *testing.T) {
	t.Parallel()

	ls := NewLevelSpace(testData())

	// Inside the door rectangle.
	probe := NewRectObject(gamemath.WorldRect{X: 130, Y: 115, W: 8, H: 8}, TagPlayer)
	ls.Space.Add(probe)
	assert.Same(t, ls.Doors[0], Touching(probe, TagDoor))
	assert.Nil(t, Touching(probe, TagSpike))

	// Next to the spike but not overlapping it.
	probe.X, probe.Y = 20, 128
	probe.Update()
	assert.Nil(t, Touching(probe, TagSpike))

	probe.X = 36
	probe.Update()
	assert.Same(t, ls.Spikes[0], Touching(probe, TagSpike))
}

func TestNewSpace_DefaultCellSize(t *testing.T) {
	t.Parallel()

	space := NewSpace(&leveldata.CollisionData{MapWidth: 64, MapHeight: 32})
	assert.Equal(t, 16, space.CellWidth)
	assert.Equal(t, 16, space.CellHeight)
}

func TestLoadAllLevelSpaces(t *testing.T) {
	t.Parallel()

	const tmx = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="1">
 <tileset firstgid="1" name="basement" tilewidth="16" tileheight="16" tilecount="4" columns="2">
  <image source="basement.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="wg-tiles" width="3" height="2">
  <data encoding="csv">
1,1,1,
1,1,1
</data>
 </layer>
</map>
`
	fsys := fstest.MapFS{"levels/box.tmx": {Data: []byte(tmx)}}
	levels, names, err := LoadAllLevelSpaces(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"box"}, names)
	// Six tiles, one collision object.
	assert.Len(t, levels["box"].Solids, 1)
	assert.Equal(t, gamemath.WorldRect{X: 0, Y: 0, W: 48, H: 32}, Bounds(levels["box"].Solids[0]))
}
