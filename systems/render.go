package systems

import (
	"image/color"
	"math"

	"github.com/Jokler/escape-my-basement/assets"
	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/Jokler/escape-my-basement/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cameraOffset returns the translation from world to screen space.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	screen.Fill(cfg.DarkGrey)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(camX, camY)
	screen.DrawImage(assets.GetBackground(levelData.CurrentLevel.Name), opts)

	// Doors pulse so the exit stands out from the tiles.
	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		alpha := components.Tween.Get(e).Value
		c := color.NRGBA{R: cfg.Yellow.R, G: cfg.Yellow.G, B: cfg.Yellow.B, A: uint8(alpha * 255)}
		vector.FillRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), c, false)
	})
}

// DrawHazards draws revealed spikes and untriggered mines.
func DrawHazards(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	tags.Spike.Each(ecs.World, func(e *donburi.Entry) {
		spike := components.Spike.Get(e)
		if !spike.Revealed {
			return
		}
		obj := components.Object.Get(e)
		drawRotated(screen, assets.GetObjectImage("spike"), obj.X+camX, obj.Y+camY, obj.W, obj.H, spike.Rotation.Degrees())
	})

	tags.Mine.Each(ecs.World, func(e *donburi.Entry) {
		if components.Mine.Get(e).Triggered {
			return
		}
		obj := components.Object.Get(e)
		drawRotated(screen, assets.GetObjectImage("mine"), obj.X+camX, obj.Y+camY, obj.W, obj.H, 0)
	})
}

// drawRotated draws img scaled into the w by h box at (x, y), rotated about its centre.
func drawRotated(screen, img *ebiten.Image, x, y, w, h, degrees float64) {
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
	op.GeoM.Rotate(degrees * math.Pi / 180)
	op.GeoM.Scale(w/float64(iw), h/float64(ih))
	op.GeoM.Translate(x+w/2, y+h/2)
	screen.DrawImage(img, op)
}

// DrawAnimated draws the player and explosion sprites.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation == nil {
			return
		}
		obj := components.Object.Get(e)
		player := components.Player.Get(e)
		frame := assets.GetFrame("player", anim.CurrentAnimation.Frame(), anim.FrameWidth, anim.FrameHeight, anim.Columns)

		// Sprite is bottom-centre anchored on the collision box.
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(anim.FrameWidth)/2, -float64(anim.FrameHeight))
		if player.Direction.X < 0 {
			op.GeoM.Scale(-1, 1)
		}
		op.GeoM.Translate(obj.X+obj.W/2+camX, obj.Y+obj.H+camY)
		screen.DrawImage(frame, op)
	})

	tags.Explosion.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation == nil {
			return
		}
		explosion := components.Explosion.Get(e)
		frame := assets.GetFrame("mine", anim.CurrentAnimation.Frame(), anim.FrameWidth, anim.FrameHeight, anim.Columns)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(explosion.X-float64(anim.FrameWidth)/2+camX, explosion.Y-float64(anim.FrameHeight)/2+camY)
		op.ColorScale.ScaleAlpha(components.Tween.Get(e).Value)
		screen.DrawImage(frame, op)
	})
}

// DrawDebug outlines every collision object when colliders are toggled on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}

	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		c := cfg.Green
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = cfg.Grey
		case obj.HasTags(tags.ResolvPlayer):
			c = cfg.Blue
		case obj.HasTags(tags.ResolvSpike), obj.HasTags(tags.ResolvMine):
			c = cfg.Red
		case obj.HasTags(tags.ResolvDoor):
			c = cfg.Yellow
		}
		vector.StrokeRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
