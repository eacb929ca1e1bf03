package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Jokler/escape-my-basement/shared/gamemath"
	"github.com/Jokler/escape-my-basement/shared/platemerge"
	"github.com/lafriks/go-tiled"
	"golang.org/x/sync/errgroup"
)

// LoadCollisionData parses a TMX file and returns collision data: merged solid and door
// rectangles, hazards and player spawn points. It takes an fs.FS so callers can pass
// embed.FS (game) or os.DirFS (tools).
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		GridWidth:  levelMap.Width,
		GridHeight: levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Grids: map[Layer]*platemerge.CellSet{
			LayerSolid: platemerge.NewCellSet(levelMap.Width, levelMap.Height),
			LayerDoor:  platemerge.NewCellSet(levelMap.Width, levelMap.Height),
		},
	}

	for _, layer := range levelMap.Layers {
		var key Layer
		switch layer.Name {
		case SolidLayerName:
			key = LayerSolid
		case DoorLayerName:
			key = LayerDoor
		default:
			continue
		}
		if err := markTiles(data.Grids[key], layer, levelMap.Width, levelMap.Height); err != nil {
			return nil, fmt.Errorf("layer %s in %s: %w", layer.Name, tmxPath, err)
		}
	}

	if err := data.merge(); err != nil {
		return nil, fmt.Errorf("decompose %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SpawnGroupName:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case SpikeGroupName:
			for _, o := range og.Objects {
				data.Spikes = append(data.Spikes, Spike{
					WorldRect: objectBounds(o, tileW, tileH),
					Rotation:  ParseRotation(o.Properties.GetString(RotationProperty)),
				})
			}
		case MineGroupName:
			for _, o := range og.Objects {
				data.Mines = append(data.Mines, Mine{WorldRect: objectBounds(o, tileW, tileH)})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each concurrently, and returns a map keyed by stem name plus a sorted list
// of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	loaded := make([]*CollisionData, len(matches))
	var eg errgroup.Group
	for i, path := range matches {
		eg.Go(func() error {
			data, err := LoadCollisionData(fsys, path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			loaded[i] = data
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	levels := make(map[string]*CollisionData, len(loaded))
	names := make([]string, 0, len(loaded))
	for _, data := range loaded {
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// LayerGrids returns the occupancy grid of layer l for every level, keyed by level name.
func LayerGrids(levels map[string]*CollisionData, l Layer) map[string]*platemerge.CellSet {
	grids := make(map[string]*platemerge.CellSet, len(levels))
	for name, data := range levels {
		if g, ok := data.Grids[l]; ok {
			grids[name] = g
		}
	}
	return grids
}

func markTiles(grid *platemerge.CellSet, layer *tiled.Layer, width, height int) error {
	if len(layer.Tiles) < width*height {
		return fmt.Errorf("has %d tiles, want %d (infinite maps are not supported)", len(layer.Tiles), width*height)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tile := layer.Tiles[y*width+x]
			if tile == nil || tile.IsNil() {
				continue
			}
			if err := grid.Mark(platemerge.Cell{X: x, Y: y}); err != nil {
				return err
			}
		}
	}
	return nil
}

// merge decomposes the solid and door grids and fills the world-space rectangles.
// Solid and door tiles are separate partitions so a door never merges into a wall.
func (d *CollisionData) merge() error {
	rects, err := platemerge.DecomposeAll(d.Grids)
	if err != nil {
		return err
	}
	d.Rects = rects

	tileW := float64(d.TileWidth)
	tileH := float64(d.TileHeight)
	d.SolidRects = toWorld(rects[LayerSolid], tileW, tileH)
	d.DoorRects = toWorld(rects[LayerDoor], tileW, tileH)
	return nil
}

func toWorld(rects []platemerge.Rect, tileW, tileH float64) []SolidRect {
	out := make([]SolidRect, 0, len(rects))
	for _, r := range rects {
		out = append(out, SolidRect{
			WorldRect: gamemath.RectToWorld(r, tileW, tileH),
			Cells:     r,
		})
	}
	return out
}

// objectBounds returns the top-left anchored bounds of a Tiled object. Tile objects are
// anchored bottom-left in TMX and default to one tile in size.
func objectBounds(o *tiled.Object, tileW, tileH float64) gamemath.WorldRect {
	w, h := o.Width, o.Height
	if w == 0 {
		w = tileW
	}
	if h == 0 {
		h = tileH
	}
	y := o.Y
	if o.GID != 0 {
		y -= h
	}
	return gamemath.WorldRect{X: o.X, Y: y, W: w, H: h}
}
