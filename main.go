package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/fonts"
	"github.com/automoto/coindash/leveldata"
	"github.com/automoto/coindash/persistence"
	"github.com/automoto/coindash/scenes"
	"github.com/automoto/coindash/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	world  *scenes.WorldScene
	scene  Scene
}

func NewGame(opts scenes.WorldOptions) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	world := scenes.NewWorldScene(opts)
	return &Game{
		bounds: image.Rectangle{},
		world:  world,
		scene:  world,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, width, height)
	g.world.SetViewport(width, height)
	return width, height
}

func main() {
	width := flag.Int("width", config.C.Width, "Initial window width")
	height := flag.Int("height", config.C.Height, "Initial window height")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	arena := flag.String("arena", "", "Built-in arena preset to use instead of random walls")
	rules := flag.String("config", "", "YAML file overriding the game rules")
	flag.Parse()

	config.C.Width = *width
	config.C.Height = *height

	if *rules != "" {
		if err := config.LoadOverrides(*rules, &config.Game); err != nil {
			log.Fatalf("Failed to load rules: %v", err)
		}
	}

	opts := scenes.WorldOptions{Seed: *seed}

	if *arena != "" {
		arenas, names, err := leveldata.LoadAllArenas(leveldata.Builtin, leveldata.BuiltinDir)
		if err != nil {
			log.Fatalf("Failed to load arenas: %v", err)
		}
		preset, ok := arenas[*arena]
		if !ok {
			log.Fatalf("Unknown arena %q, available: %v", *arena, names)
		}
		opts.Walls = factory.PresetWalls(preset.Walls)
	}

	// Best score survives restarts when the data directory is usable
	store, err := persistence.OpenGdataStore("coindash")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		opts.Store = store
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewGame(opts)
	defer game.world.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
