package leveldata

import (
	"fmt"

	"github.com/Jokler/escape-my-basement/shared/gamemath"
	"github.com/Jokler/escape-my-basement/shared/platemerge"
)

// ParseText builds level data from rows of characters, one per tile:
//
//	#  solid
//	D  door
//	^  spike (mounted on the floor)
//	M  mine
//	P  player spawn, standing on the bottom edge of its tile
//	.  empty (any other character is empty too)
//
// All rows must have the same length.
func ParseText(name string, tileSize int, rows ...string) (*CollisionData, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("level %s: tile size %d must be positive", name, tileSize)
	}
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	data := &CollisionData{
		Name:       name,
		MapWidth:   width * tileSize,
		MapHeight:  height * tileSize,
		GridWidth:  width,
		GridHeight: height,
		TileWidth:  tileSize,
		TileHeight: tileSize,
		Grids: map[Layer]*platemerge.CellSet{
			LayerSolid: platemerge.NewCellSet(width, height),
			LayerDoor:  platemerge.NewCellSet(width, height),
		},
	}

	tile := float64(tileSize)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("level %s: row %d has %d tiles, want %d", name, y, len(row), width)
		}
		for x, ch := range []byte(row) {
			cell := platemerge.Cell{X: x, Y: y}
			bounds := gamemath.WorldRect{X: float64(x) * tile, Y: float64(y) * tile, W: tile, H: tile}
			switch ch {
			case '#':
				_ = data.Grids[LayerSolid].Mark(cell)
			case 'D':
				_ = data.Grids[LayerDoor].Mark(cell)
			case '^':
				data.Spikes = append(data.Spikes, Spike{WorldRect: bounds, Rotation: RotationBottom})
			case 'M':
				data.Mines = append(data.Mines, Mine{WorldRect: bounds})
			case 'P':
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     bounds.X + tile/2,
					Y:     bounds.Y + tile,
					Index: len(data.SpawnPoints),
				})
			}
		}
	}

	if err := data.merge(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return data, nil
}
