// Package collision builds resolv spaces from parsed level data. It is shared by the
// game's factories and the platemap tool.
package collision

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/Jokler/escape-my-basement/shared/gamemath"
	"github.com/Jokler/escape-my-basement/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Resolv tags for level geometry.
const (
	TagSolid  = "solid"
	TagDoor   = "door"
	TagSpike  = "spike"
	TagMine   = "mine"
	TagPlayer = "Player"
)

// LevelSpace holds a level's collision space and the objects added to it.
type LevelSpace struct {
	Space  *resolv.Space
	Data   *leveldata.CollisionData
	Solids []*resolv.Object
	Doors  []*resolv.Object
	Spikes []*resolv.Object
	Mines  []*resolv.Object
}

// NewSpace creates an empty space covering the level, bucketed by tile.
func NewSpace(data *leveldata.CollisionData) *resolv.Space {
	cellW, cellH := data.TileWidth, data.TileHeight
	if cellW <= 0 || cellH <= 0 {
		cellW, cellH = 16, 16
	}
	return resolv.NewSpace(data.MapWidth, data.MapHeight, cellW, cellH)
}

// NewRectObject creates a rectangular resolv object covering r.
func NewRectObject(r gamemath.WorldRect, tags ...string) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	return obj
}

// NewLevelSpace builds a resolv.Space with one object per merged rectangle plus
// sensors for doors and hazards.
func NewLevelSpace(data *leveldata.CollisionData) *LevelSpace {
	ls := &LevelSpace{
		Space: NewSpace(data),
		Data:  data,
	}

	for _, r := range data.SolidRects {
		ls.Solids = append(ls.Solids, ls.add(r.WorldRect, TagSolid))
	}
	for _, r := range data.DoorRects {
		ls.Doors = append(ls.Doors, ls.add(r.WorldRect, TagDoor))
	}
	for _, s := range data.Spikes {
		ls.Spikes = append(ls.Spikes, ls.add(s.WorldRect, TagSpike))
	}
	for _, m := range data.Mines {
		ls.Mines = append(ls.Mines, ls.add(m.WorldRect, TagMine))
	}

	log.Printf("Loaded level %s: %d solid tiles -> %d rects, %d door rects, %d spikes, %d mines, %dx%d map",
		data.Name, data.MarkedCells(leveldata.LayerSolid), len(ls.Solids), len(ls.Doors),
		len(ls.Spikes), len(ls.Mines), data.MapWidth, data.MapHeight)

	return ls
}

func (ls *LevelSpace) add(r gamemath.WorldRect, tag string) *resolv.Object {
	obj := NewRectObject(r, tag)
	ls.Space.Add(obj)
	return obj
}

// Stats counts the objects in the space by their first tag.
func (ls *LevelSpace) Stats() map[string]int {
	stats := make(map[string]int)
	for _, obj := range ls.Space.Objects() {
		tags := obj.Tags()
		if len(tags) == 0 {
			continue
		}
		stats[tags[0]]++
	}
	return stats
}

// Touching returns the first object tagged tag whose bounds overlap obj, or nil.
// resolv reports everything sharing a space cell, so bounds are checked explicitly.
func Touching(obj *resolv.Object, tag string) *resolv.Object {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	bounds := Bounds(obj)
	for _, other := range check.ObjectsByTags(tag) {
		if bounds.Intersects(Bounds(other)) {
			return other
		}
	}
	return nil
}

// Bounds returns the world rectangle of obj.
func Bounds(obj *resolv.Object) gamemath.WorldRect {
	return gamemath.WorldRect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// LoadAllLevelSpaces loads all .tmx levels from levelsDir in fsys, returning a
// LevelSpace per level keyed by stem name plus a sorted name list.
func LoadAllLevelSpaces(fsys fs.FS, levelsDir string) (map[string]*LevelSpace, []string, error) {
	collisionMap, names, err := leveldata.LoadAllLevels(fsys, levelsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load all levels: %w", err)
	}

	levels := make(map[string]*LevelSpace, len(names))
	for _, name := range names {
		levels[name] = NewLevelSpace(collisionMap[name])
	}

	return levels, names, nil
}
