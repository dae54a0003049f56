package config

import (
	"image/color"
	"time"

	"github.com/automoto/coindash/gamemath"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed  float64 // pixels per tick
	Width  float64
	Height float64
	SpawnX float64
	SpawnY float64
}

// Hitbox returns the player rectangle at its spawn point.
func (p PlayerConfig) Hitbox() gamemath.Rect {
	return gamemath.NewRect(p.SpawnX, p.SpawnY, p.Width, p.Height)
}

// EnemyTypeConfig contains configuration for a specific enemy kind
type EnemyTypeConfig struct {
	Name            string
	Width           float64
	Height          float64
	SpeedMultiplier float64
}

// EnemyConfig contains enemy steering configuration
type EnemyConfig struct {
	Types map[EnemyKind]EnemyTypeConfig

	BaseSpeed         float64       // pixels per step before kind and level scaling
	MoveInterval      time.Duration // wall-clock gap between steering steps
	StepsBeforeChange int           // steps before a forced random direction
	RandomRetries     int           // random directions tried after reversing fails
}

// Type returns the configuration for kind, falling back to the normal kind.
func (e EnemyConfig) Type(kind EnemyKind) EnemyTypeConfig {
	if t, ok := e.Types[kind]; ok {
		return t
	}
	return e.Types[EnemyNormal]
}

// EnemyCounts is how many enemies of each kind a level receives.
type EnemyCounts struct {
	Normal  int `yaml:"normal"`
	Variant int `yaml:"variant"`
}

// LayoutConfig contains procedural level generation values
type LayoutConfig struct {
	NumWalls    int
	WallUnit    float64 // wall sides are multiples of this
	WallMinSize float64
	WallDivisor float64 // max wall side is viewport side / WallDivisor

	MaxAttempts int // placement samples before the last one is accepted

	ChromeHeight float64       // bottom UI strip excluded from the arena
	SafeArea     gamemath.Rect // no walls here, around the player spawn
	SafeRadius   float64       // no enemy or coin anchor within this of the spawn centre

	NumCoins int
	CoinSize float64
	DoorSize float64

	OpeningEnemies EnemyCounts // first level of a fresh session
	RegenEnemies   EnemyCounts // every later regeneration

	CellSize int // resolv broad-phase cell size
}

// SessionConfig contains frame loop and progression values
type SessionConfig struct {
	LevelTimeLimit time.Duration
	CoinValue      int

	// Door appear animation
	DoorTweenDuration time.Duration
}

// TimerConfig contains HUD urgency thresholds for the level timer
type TimerConfig struct {
	Warning  time.Duration
	Critical time.Duration
}

// GameConfig bundles every value the simulation reads.
type GameConfig struct {
	Player  PlayerConfig
	Enemy   EnemyConfig
	Layout  LayoutConfig
	Session SessionConfig
	Timer   TimerConfig
}

// UIConfig contains presentation colours
type UIConfig struct {
	Background   color.RGBA
	Chrome       color.RGBA
	Wall         color.RGBA
	Player       color.RGBA
	Enemy        color.RGBA
	Variant      color.RGBA
	Coin         color.RGBA
	Door         color.RGBA
	Text         color.RGBA
	TimerWarn    color.RGBA
	TimerAlert   color.RGBA
	Overlay      color.RGBA
	HighContrast map[string]color.RGBA

	IntroMessage string
	ModalTitle   string
	ModalButton  string
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Game GameConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gold         = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Coindash",
	}

	Game = DefaultGameConfig()

	UI = UIConfig{
		Background: color.RGBA{R: 24, G: 24, B: 32, A: 255},
		Chrome:     DarkGray,
		Wall:       color.RGBA{R: 110, G: 110, B: 130, A: 255},
		Player:     Green,
		Enemy:      Red,
		Variant:    Purple,
		Coin:       Gold,
		Door:       Blue,
		Text:       White,
		TimerWarn:  Yellow,
		TimerAlert: Red,
		Overlay:    BlackOverlay,
		HighContrast: map[string]color.RGBA{
			"wall":    White,
			"player":  Yellow,
			"enemy":   Orange,
			"variant": Red,
			"coin":    Gold,
			"door":    Green,
		},

		IntroMessage: "Press arrows to move. Avoid the enemies!",
		ModalTitle:   "Game Over",
		ModalButton:  "Play again",
	}
}

// DefaultGameConfig returns the reference game rules.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Player: PlayerConfig{
			Speed:  5,
			Width:  40,
			Height: 50,
			SpawnX: 90,
			SpawnY: 220,
		},
		Enemy: EnemyConfig{
			Types: map[EnemyKind]EnemyTypeConfig{
				EnemyNormal:  {Name: "normal", Width: 50, Height: 50, SpeedMultiplier: 1},
				EnemyVariant: {Name: "variant", Width: 40, Height: 80, SpeedMultiplier: 4},
			},
			BaseSpeed:         10,
			MoveInterval:      250 * time.Millisecond,
			StepsBeforeChange: 5,
			RandomRetries:     4,
		},
		Layout: LayoutConfig{
			NumWalls:    10,
			WallUnit:    50,
			WallMinSize: 50,
			WallDivisor: 5,

			MaxAttempts: 100,

			ChromeHeight: 60,
			SafeArea:     gamemath.NewRect(90, 220, 100, 100),
			SafeRadius:   100,

			NumCoins: 5,
			CoinSize: 40,
			DoorSize: 50,

			OpeningEnemies: EnemyCounts{Normal: 10, Variant: 1},
			RegenEnemies:   EnemyCounts{Normal: 10, Variant: 5},

			CellSize: 50,
		},
		Session: SessionConfig{
			LevelTimeLimit:    30 * time.Second,
			CoinValue:         1,
			DoorTweenDuration: 400 * time.Millisecond,
		},
		Timer: TimerConfig{
			Warning:  15 * time.Second,
			Critical: 25 * time.Second,
		},
	}
}
