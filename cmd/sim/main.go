// Command sim runs a headless session driven by random input, for soak
// testing the generator and the frame loop without a window.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/core"
	"github.com/automoto/coindash/leveldata"
	"github.com/automoto/coindash/persistence"
	"github.com/automoto/coindash/systems/factory"
)

type stats struct {
	games     int
	maxLevel  int
	timeouts  int
	caught    int
	lastScore int
}

func main() {
	seed := flag.Int64("seed", 1, "Random seed for the session and the input driver")
	tickRate := flag.Int("tickrate", 60, "Frames per second")
	duration := flag.Duration("duration", 30*time.Second, "How long to run")
	inputEvery := flag.Duration("input", 300*time.Millisecond, "Interval between random key presses")
	width := flag.Int("width", config.C.Width, "Viewport width")
	height := flag.Int("height", config.C.Height, "Viewport height")
	arena := flag.String("arena", "", "Built-in arena preset to use instead of random walls")
	rules := flag.String("config", "", "YAML file overriding the game rules")
	flag.Parse()

	cfg := config.DefaultGameConfig()
	if *rules != "" {
		if err := config.LoadOverrides(*rules, &cfg); err != nil {
			log.Fatalf("Failed to load rules: %v", err)
		}
	}

	var walls factory.WallSource
	if *arena != "" {
		arenas, names, err := leveldata.LoadAllArenas(leveldata.Builtin, leveldata.BuiltinDir)
		if err != nil {
			log.Fatalf("Failed to load arenas: %v", err)
		}
		preset, ok := arenas[*arena]
		if !ok {
			log.Fatalf("Unknown arena %q, available: %v", *arena, names)
		}
		walls = factory.PresetWalls(preset.Walls)
	}

	loop := core.NewGameLoop(*tickRate)
	tracker := persistence.NewTracker(&persistence.MemoryStore{})

	// Touched only from the loop goroutine
	st := &stats{maxLevel: 1}

	var session *core.Session
	session = core.NewSession(core.Options{
		Config:    &cfg,
		Viewport:  core.FixedViewport{W: *width, H: *height},
		Scheduler: loop,
		Walls:     walls,
		Seed:      *seed,
		Observer: core.Observers{
			tracker,
			core.ObserverFuncs{
				Score: func(score int) { st.lastScore = score },
				Level: func(level int) { st.maxLevel = max(st.maxLevel, level) },
				Status: func(status config.GameStatus) {
					if status != config.StatusLost {
						return
					}
					st.games++
					switch session.Snapshot().LossReason {
					case config.LossTimeout:
						st.timeouts++
					default:
						st.caught++
					}
				},
			},
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down simulation...")
		cancel()
	}()

	go drive(ctx, loop, session, rand.New(rand.NewSource(*seed)), *inputEvery)

	log.Printf("Simulating %s at %d frames/s (seed %d, %dx%d)", *duration, *tickRate, *seed, *width, *height)
	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Loop error: %v", err)
	}
	loop.Stop()
	session.Close()

	log.Printf("Finished: %d games (%d caught, %d timed out), best level %d, best score %d",
		st.games, st.caught, st.timeouts, st.maxLevel, tracker.Best())
}

// drive presses random directions and restarts lost games.
func drive(ctx context.Context, loop *core.GameLoop, session *core.Session, rng *rand.Rand, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			dir := config.Direction(rng.Intn(config.NumDirections))
			ok := loop.Post(func() {
				if session.ModalShown() {
					session.DismissModal()
					return
				}
				session.KeyDown(dir)
			})
			if !ok {
				return
			}
		}
	}
}
