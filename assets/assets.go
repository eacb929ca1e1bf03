package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"log"
	"path"

	"github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	animationFS embed.FS
)

// FS exposes the embedded levels for tools and tests.
func FS() embed.FS {
	return assetFS
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// MustLoadLevels loads every embedded level, ordered by file name.
func (l *LevelLoader) MustLoadLevels() []*leveldata.CollisionData {
	byName, names, err := leveldata.LoadAllLevels(assetFS, config.Level.Dir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}

	levels := make([]*leveldata.CollisionData, 0, len(names))
	for _, name := range names {
		levels = append(levels, byName[name])
	}
	return levels
}

// MustLoadBackground renders the tile layers of a level that have the "render" property.
func (l *LevelLoader) MustLoadBackground(name string) *ebiten.Image {
	levelPath := path.Join(config.Level.Dir, name+".tmx")
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(err)
	}

	background := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)

	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		panic(fmt.Sprintf("Failed to create renderer: %v", err))
	}

	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %s: %v", layer.Name, err)
			continue
		}
		// Skip fully transparent layers
		if layer.Opacity <= 0 {
			renderer.Clear()
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return background
}

type AnimationLoader struct {
	cache       map[string]*ebiten.Image
	frameCache  map[string]*ebiten.Image
	backgrounds map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:       make(map[string]*ebiten.Image),
		frameCache:  make(map[string]*ebiten.Image),
		backgrounds: make(map[string]*ebiten.Image),
	}
}

func (l *AnimationLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := animationFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetFrame returns a cached sub-image of frame frameIndex in a sheet of columns frames
// per row.
func (l *AnimationLoader) GetFrame(key string, frameIndex, frameWidth, frameHeight, columns int) *ebiten.Image {
	cacheKey := fmt.Sprintf("%s/%d", key, frameIndex)
	if img, ok := l.frameCache[cacheKey]; ok {
		return img
	}

	sheet := GetSheet(key)
	if columns <= 0 {
		columns = 1
	}
	sx := (frameIndex % columns) * frameWidth
	sy := (frameIndex / columns) * frameHeight
	frame := sheet.SubImage(image.Rect(sx, sy, sx+frameWidth, sy+frameHeight)).(*ebiten.Image)
	l.frameCache[cacheKey] = frame

	return frame
}

var (
	animationLoader = NewAnimationLoader()
	levelLoader     = NewLevelLoader()
)

func GetSheet(key string) *ebiten.Image {
	return animationLoader.MustLoadImage(fmt.Sprintf("images/spritesheets/%s.png", key))
}

func GetObjectImage(name string) *ebiten.Image {
	return animationLoader.MustLoadImage(fmt.Sprintf("images/objects/%s.png", name))
}

func GetFrame(key string, frameIndex, frameWidth, frameHeight, columns int) *ebiten.Image {
	return animationLoader.GetFrame(key, frameIndex, frameWidth, frameHeight, columns)
}

// GetBackground returns the rendered background of a level, rendering it on first use.
func GetBackground(name string) *ebiten.Image {
	if img, ok := animationLoader.backgrounds[name]; ok {
		return img
	}
	img := levelLoader.MustLoadBackground(name)
	animationLoader.backgrounds[name] = img
	return img
}

// PreloadAll decodes every sprite sheet so the first frame does not stall.
func PreloadAll() {
	for key := range config.CharacterAnimations {
		GetSheet(key)
	}
	GetObjectImage("spike")
	GetObjectImage("mine")
}
