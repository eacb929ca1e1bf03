// Package leveldata provides TMX level parsing shared between the game and tools.
// It does not import ebitengine or the ECS packages.
package leveldata

import (
	"github.com/Jokler/escape-my-basement/shared/gamemath"
	"github.com/Jokler/escape-my-basement/shared/platemerge"
)

// Tiled layer and object group names read by the loader.
const (
	SolidLayerName   = "wg-tiles"
	DoorLayerName    = "doors"
	SpawnGroupName   = "PlayerSpawn"
	SpikeGroupName   = "Spikes"
	MineGroupName    = "Mines"
	RotationProperty = "Rotation"
)

// Layer partitions the cells of one level. Cells of different layers are never merged
// into the same rectangle.
type Layer string

const (
	LayerSolid Layer = "solid"
	LayerDoor  Layer = "door"
)

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	Name        string
	SolidRects  []SolidRect
	DoorRects   []SolidRect
	Spikes      []Spike
	Mines       []Mine
	SpawnPoints []SpawnPoint

	// Grids and Rects keep the cell-space view for tools and debugging.
	Grids map[Layer]*platemerge.CellSet
	Rects map[Layer][]platemerge.Rect

	MapWidth   int // pixels
	MapHeight  int
	GridWidth  int // tiles
	GridHeight int
	TileWidth  int
	TileHeight int
}

// SolidRect is a merged block of tiles in world space.
type SolidRect struct {
	gamemath.WorldRect
	Cells platemerge.Rect
}

// Rotation is the side a spike is mounted on.
type Rotation int

const (
	RotationBottom Rotation = iota
	RotationLeft
	RotationTop
	RotationRight
)

func ParseRotation(s string) Rotation {
	switch s {
	case "Top":
		return RotationTop
	case "Left":
		return RotationLeft
	case "Right":
		return RotationRight
	default:
		return RotationBottom
	}
}

// Degrees returns the clockwise sprite rotation for r.
func (r Rotation) Degrees() float64 {
	switch r {
	case RotationRight:
		return 90
	case RotationTop:
		return 180
	case RotationLeft:
		return 270
	default:
		return 0
	}
}

func (r Rotation) String() string {
	switch r {
	case RotationTop:
		return "Top"
	case RotationLeft:
		return "Left"
	case RotationRight:
		return "Right"
	default:
		return "Bottom"
	}
}

// Spike is a hazard sensor.
type Spike struct {
	gamemath.WorldRect
	Rotation Rotation
}

// Mine is a hazard sensor that explodes when touched.
type Mine struct {
	gamemath.WorldRect
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// RectsFor returns the world rectangles of layer l.
func (d *CollisionData) RectsFor(l Layer) []SolidRect {
	switch l {
	case LayerDoor:
		return d.DoorRects
	default:
		return d.SolidRects
	}
}

// MarkedCells returns the number of marked tiles in layer l.
func (d *CollisionData) MarkedCells(l Layer) int {
	if g, ok := d.Grids[l]; ok {
		return g.Len()
	}
	return 0
}
