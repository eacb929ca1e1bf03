package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, pixels per tick
	WalkSpeed       float64
	Acceleration    float64
	AirAcceleration float64
	JumpSpeed       float64

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int

	// Speed below which the player counts as standing still
	IdleThreshold float64
}

// LevelConfig describes where levels live and how they are laid out.
type LevelConfig struct {
	Dir        string // directory of .tmx files inside the assets FS
	TileSize   int
	FinalLevel int // reaching a door on this level wins the game
}

// MineConfig tunes the mine explosion effect.
type MineConfig struct {
	ExplosionOffsetY  float64 // explosion is drawn this many pixels above the mine
	ExplosionDuration float32 // ticks for the fade tween
	ExplosionSize     int
}

// DoorConfig tunes the door sensor highlight.
type DoorConfig struct {
	PulseDuration float32 // ticks for one half of the pulse
	MinAlpha      float32
	MaxAlpha      float32
}

// MenuConfig contains overlay text and colours
type MenuConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	PauseTitle   string
	PauseHint    string
	DeathTitle   string
	DeathHint    string
	WonTitle     string
	WonHint      string
	TitleScreen  string
	TitleHint    string
	ContinueHint string
	DeathDelay   int // ticks before the death overlay is shown
}

// CameraConfig controls how the camera follows the player
type CameraConfig struct {
	Smoothing float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool // Skip menu and go directly to game
	ShowColliders bool // Outline every resolv object
	StartLevel    int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Level LevelConfig
var Mine MineConfig
var Door DoorConfig
var Menu MenuConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	DarkGrey     = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Escape My Basement",
	}

	Physics = PhysicsConfig{
		Gravity:      0.35,
		MaxFallSpeed: 8.0,
	}

	Player = PlayerConfig{
		WalkSpeed:       2.0,
		Acceleration:    0.22,
		AirAcceleration: 0.11,
		JumpSpeed:       5.0, // ~35px apex with the gravity above
		FrameWidth:      16,
		FrameHeight:     16,
		CollisionWidth:  8,
		CollisionHeight: 8,
		IdleThreshold:   0.01,
	}

	Level = LevelConfig{
		Dir:        "levels",
		TileSize:   16,
		FinalLevel: 4,
	}

	Mine = MineConfig{
		ExplosionOffsetY:  6.5,
		ExplosionDuration: 32,
		ExplosionSize:     32,
	}

	Door = DoorConfig{
		PulseDuration: 45,
		MinAlpha:      0.35,
		MaxAlpha:      0.9,
	}

	Menu = MenuConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   Orange,
		TextColor:    White,
		PauseTitle:   "Game paused",
		PauseHint:    "Esc: continue   Enter: quit to title",
		DeathTitle:   "You Died!",
		DeathHint:    "R: restart   Enter: quit to title",
		WonTitle:     "You escaped the basement!",
		WonHint:      "Enter: back to title",
		TitleScreen:  "Escape My Basement",
		TitleHint:    "Enter: start",
		ContinueHint: "Enter: continue   N: new game",
		DeathDelay:   30,
	}

	Camera = CameraConfig{
		Smoothing: 0.15,
	}
}
