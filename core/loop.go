package core

import (
	"context"
	"log"
	"sync"
	"time"
)

// GameLoop drives frames from a ticker on a single goroutine. Input from
// other goroutines must go through Post so that every state change happens
// on the loop goroutine.
type GameLoop struct {
	frames   *FrameQueue
	tickRate int
	events   chan func()
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(tickRate int) *GameLoop {
	if tickRate < 1 {
		tickRate = 60
	}
	return &GameLoop{
		frames:   NewFrameQueue(),
		tickRate: tickRate,
		events:   make(chan func(), 64),
		stopChan: make(chan struct{}),
	}
}

// Schedule queues fn for the next tick. Call it from the loop goroutine, or
// before Run starts.
func (g *GameLoop) Schedule(fn func(now time.Time)) func() {
	return g.frames.Schedule(fn)
}

// Post runs fn on the loop goroutine. It returns false if the loop has
// stopped.
func (g *GameLoop) Post(fn func()) bool {
	select {
	case <-g.stopChan:
		return false
	default:
	}

	select {
	case g.events <- fn:
		return true
	case <-g.stopChan:
		return false
	}
}

// Run processes events and frames until ctx is done or Stop is called.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop cancelled")
			return ctx.Err()
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return nil
		case fn := <-g.events:
			fn()
		case now := <-ticker.C:
			g.frames.Run(now)
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
