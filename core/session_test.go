package core

import (
	"testing"
	"time"

	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/systems/factory"
	"github.com/automoto/coindash/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestNewSessionOpeningLevel(t *testing.T) {
	ts := newTestSession(t, nil)
	snap := ts.Snapshot()

	assert.Equal(t, config.StatusIdle, snap.Status)
	assert.Equal(t, 1, snap.Level)
	assert.Zero(t, snap.Score)
	assert.False(t, snap.Started)
	assert.Equal(t, gamemath.Size{W: 800, H: 600}, snap.Arena)
	assert.Len(t, snap.Walls, 10)
	assert.Len(t, snap.Enemies, 11, "a fresh session opens with 10 normal and 1 variant")
	assert.Len(t, snap.Coins, 5)
	assert.Nil(t, snap.Door)
	assert.Equal(t, gamemath.NewRect(90, 220, 40, 50), snap.Player)
	assert.Equal(t, 1, ts.frames.Pending(), "the loop is scheduled on creation")
}

func TestKeyDownStartsSession(t *testing.T) {
	ts := newTestSession(t, factory.NoWalls{}, emptyArena)

	ts.KeyDown(config.DirRight)
	assert.Equal(t, config.StatusRunning, ts.Status())
	assert.Equal(t, []config.GameStatus{config.StatusRunning}, ts.events.statuses)
	assert.True(t, ts.Snapshot().Started)
	assert.Equal(t, 1, ts.frames.Pending(), "restarting the loop replaces the pending frame")

	ts.KeyDown(config.DirUp)
	assert.Len(t, ts.events.statuses, 1, "only the first key changes status")
	assert.Equal(t, 1, ts.frames.Pending())
}

func TestPlayerMovesEveryFrame(t *testing.T) {
	ts := newTestSession(t, factory.NoWalls{}, emptyArena)

	ts.KeyDown(config.DirRight)
	ts.runFor(t0, t0.Add(32*time.Millisecond), 16*time.Millisecond)
	assert.Equal(t, 105.0, ts.Snapshot().Player.X)

	ts.KeyUp()
	ts.runFor(t0.Add(48*time.Millisecond), t0.Add(96*time.Millisecond), 16*time.Millisecond)
	assert.Equal(t, 105.0, ts.Snapshot().Player.X)
	assert.Equal(t, config.StatusRunning, ts.Status(), "key up does not pause the session")
}

func TestEnemyStepGate(t *testing.T) {
	ts := newTestSession(t, factory.NoWalls{}, emptyArena)
	ts.addEnemy(config.EnemyNormal, gamemath.NewRect(500, 100, 50, 50), config.DirDown)

	enemy := func() components.EnemyData {
		e, _ := tags.Enemy.First(ts.World())
		return *components.Enemy.Get(e)
	}

	// Not started: enemies hold still however long the frames run
	ts.runFor(t0, t0.Add(time.Second), 50*time.Millisecond)
	assert.Equal(t, gamemath.NewRect(500, 100, 50, 50), ts.Snapshot().Enemies[0].Box)

	ts.KeyDown(config.DirLeft)
	start := t0.Add(2 * time.Second)
	ts.frames.Run(start)
	assert.Equal(t, 1, enemy().Steps, "the gate stayed open while idle")

	ts.frames.Run(start.Add(100 * time.Millisecond))
	assert.Equal(t, 1, enemy().Steps)

	ts.frames.Run(start.Add(250 * time.Millisecond))
	assert.Equal(t, 2, enemy().Steps)
	assert.Equal(t, 120.0, ts.Snapshot().Enemies[0].Box.Y)

	ts.frames.Run(start.Add(400 * time.Millisecond))
	assert.Equal(t, 2, enemy().Steps)

	ts.frames.Run(start.Add(500 * time.Millisecond))
	assert.Equal(t, 3, enemy().Steps)
}

func TestCaughtEndsSession(t *testing.T) {
	ts := newTestSession(t, factory.NoWalls{}, emptyArena)
	ts.addEnemy(config.EnemyNormal, gamemath.NewRect(100, 230, 50, 50), config.DirUp)

	ts.KeyDown(config.DirUp)
	ts.frames.Run(t0)

	snap := ts.Snapshot()
	assert.Equal(t, config.StatusLost, snap.Status)
	assert.Equal(t, config.LossCaught, snap.LossReason)
	assert.True(t, snap.ModalShown)
	assert.Equal(t, config.DirNone, snap.Intent)
	assert.Equal(t, []config.GameStatus{config.StatusRunning, config.StatusLost}, ts.events.statuses)
	assert.Zero(t, ts.frames.Pending(), "the loop stops while the modal is open")

	before := snap.Player
	ts.KeyDown(config.DirDown)
	ts.frames.Run(t0.Add(time.Second))
	assert.Equal(t, before, ts.Snapshot().Player, "input is ignored while lost")
	assert.Zero(t, ts.frames.Pending())
}

func TestTimeoutClampsTimer(t *testing.T) {
	ts := newTestSession(t, factory.NoWalls{}, emptyArena)

	ts.KeyDown(config.DirDown)
	ts.KeyUp()
	ts.frames.Run(t0)
	ts.frames.Run(t0.Add(29_999 * time.Millisecond))
	assert.Equal(t, config.StatusRunning, ts.Status())

	ts.frames.Run(t0.Add(30_000 * time.Millisecond))
	snap := ts.Snapshot()
	assert.Equal(t, config.StatusLost, snap.Status)
	assert.Equal(t, config.LossTimeout, snap.LossReason)
	assert.Equal(t, 30*time.Second, snap.Elapsed)
	assert.Zero(t, ts.frames.Pending())
}

func TestTimerDoesNotRunWhileIdle(t *testing.T) {
	ts := newTestSession(t, factory.NoWalls{}, emptyArena)

	ts.runFor(t0, t0.Add(40*time.Second), time.Second)
	assert.Zero(t, ts.Snapshot().Elapsed)
	assert.Equal(t, config.StatusIdle, ts.Status())
}

func TestCoinsScore(t *testing.T) {
	ts := newTestSession(t, factory.NoWalls{}, emptyArena)
	factory.CreateCoin(ts.World(), gamemath.NewRect(130, 230, 40, 40), 1)
	factory.CreateCoin(ts.World(), gamemath.NewRect(600, 400, 40, 40), 1)

	ts.KeyDown(config.DirRight)
	ts.frames.Run(t0)

	assert.Equal(t, 1, ts.Score())
	assert.Equal(t, []int{1}, ts.events.scores)
	assert.Len(t, ts.Snapshot().Coins, 1)
	assert.Nil(t, ts.Snapshot().Door, "a coin is still left")
}

func TestDoorAdvancesLevel(t *testing.T) {
	ts := newTestSession(t, nil, emptyArena)

	var oldLevel []donburi.Entity
	tags.Level.Each(ts.World(), func(e *donburi.Entry) { oldLevel = append(oldLevel, e.Entity()) })
	require.NotEmpty(t, oldLevel)

	ts.KeyDown(config.DirRight)
	ts.KeyUp()
	ts.frames.Run(t0)

	snap := ts.Snapshot()
	require.NotNil(t, snap.Door, "no coins and started: the door appears")
	assert.Zero(t, snap.Door.Scale, "the appear tween starts from nothing")

	ts.state().Score = 4
	ts.movePlayer(t, snap.Door.Box.X, snap.Door.Box.Y)
	ts.frames.Run(t0.Add(16 * time.Millisecond))

	snap = ts.Snapshot()
	assert.Equal(t, 2, snap.Level)
	assert.Equal(t, 4, snap.Score, "score carries over")
	assert.Zero(t, snap.Elapsed)
	assert.Equal(t, config.StatusRunning, snap.Status)
	assert.False(t, snap.Started)
	assert.Nil(t, snap.Door)
	assert.Equal(t, gamemath.NewRect(90, 220, 40, 50), snap.Player)
	assert.Equal(t, []int{2}, ts.events.levels)
	assert.Equal(t, 1, ts.frames.Pending())

	for _, e := range oldLevel {
		assert.False(t, ts.World().Valid(e), "stale entity %v survived", e)
	}
	assert.Len(t, snap.Walls, 10)
}

func TestNextLevelUsesRegenCounts(t *testing.T) {
	ts := newTestSession(t, factory.NoWalls{}, func(cfg *config.GameConfig) {
		cfg.Layout.NumCoins = 0
	})
	require.Len(t, ts.Snapshot().Enemies, 11)

	ts.nextLevel()
	snap := ts.Snapshot()
	assert.Len(t, snap.Enemies, 15)

	center := gamemath.Vec{X: 110, Y: 245}
	for _, e := range snap.Enemies {
		assert.GreaterOrEqual(t, gamemath.Distance(e.Box.Pos(), center), 100.0)
	}
}

func TestDismissModalResets(t *testing.T) {
	ts := newTestSession(t, factory.NoWalls{}, emptyArena)
	ts.addEnemy(config.EnemyNormal, gamemath.NewRect(100, 230, 50, 50), config.DirUp)
	ts.state().Level = 3
	ts.state().Score = 7

	ts.KeyDown(config.DirUp)
	ts.frames.Run(t0)
	require.Equal(t, config.StatusLost, ts.Status())

	ts.DismissModal()

	snap := ts.Snapshot()
	assert.Equal(t, config.StatusIdle, snap.Status)
	assert.Equal(t, config.LossNone, snap.LossReason)
	assert.False(t, snap.ModalShown)
	assert.Equal(t, 1, snap.Level)
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Elapsed)
	assert.Empty(t, snap.Enemies, "fresh layout")
	assert.Equal(t, []config.GameStatus{config.StatusRunning, config.StatusLost, config.StatusIdle}, ts.events.statuses)
	assert.Equal(t, []int{1}, ts.events.levels)
	assert.Equal(t, []int{0}, ts.events.scores)
	assert.Equal(t, 1, ts.frames.Pending(), "the loop is back")

	ts.DismissModal()
	assert.Len(t, ts.events.statuses, 3, "no modal, nothing to dismiss")
}

type resizableViewport struct {
	w, h int
}

func (v *resizableViewport) Width() int  { return v.w }
func (v *resizableViewport) Height() int { return v.h }

func TestResizeRegenerates(t *testing.T) {
	view := &resizableViewport{w: 800, h: 600}
	frames := NewFrameQueue()
	events := &recorder{}
	s := NewSession(Options{Viewport: view, Scheduler: frames, Observer: events, Seed: 3})
	defer s.Close()

	s.KeyDown(config.DirRight)
	frames.Run(t0)
	s.state().Score = 2

	view.w, view.h = 1280, 720
	s.Resize()

	snap := s.Snapshot()
	assert.Equal(t, gamemath.Size{W: 1280, H: 720}, snap.Arena)
	assert.Equal(t, config.StatusIdle, snap.Status)
	assert.Zero(t, snap.Score)
	assert.Len(t, snap.Enemies, 15)
	for _, r := range append(snap.Walls, snap.Coins...) {
		assert.LessOrEqual(t, r.Bottom(), 660.0)
		assert.LessOrEqual(t, r.Right(), 1280.0)
	}
	assert.Equal(t, config.StatusIdle, events.statuses[len(events.statuses)-1])
	assert.Equal(t, 1, frames.Pending())
}

func TestCloseStopsLoop(t *testing.T) {
	ts := newTestSession(t, factory.NoWalls{}, emptyArena)
	ts.KeyDown(config.DirRight)
	ts.Close()

	assert.Zero(t, ts.frames.Pending())
	ts.KeyDown(config.DirDown)
	ts.Resize()
	assert.Zero(t, ts.frames.Pending(), "a closed session never reschedules")

	before := ts.Snapshot().Player
	ts.frames.Run(t0)
	assert.Equal(t, before, ts.Snapshot().Player)
}

func TestObserverReentrancy(t *testing.T) {
	frames := NewFrameQueue()
	cfg := config.DefaultGameConfig()
	emptyArena(&cfg)

	var s *Session
	s = NewSession(Options{
		Config:    &cfg,
		Scheduler: frames,
		Walls:     factory.NoWalls{},
		Seed:      1,
		Observer: ObserverFuncs{Score: func(int) {
			// Changing direction from a callback restarts the loop mid-frame
			s.KeyDown(config.DirDown)
		}},
	})
	defer s.Close()
	factory.CreateCoin(s.World(), gamemath.NewRect(130, 230, 40, 40), 1)

	s.KeyDown(config.DirRight)
	frames.Run(t0)
	assert.Equal(t, 1, frames.Pending(), "exactly one frame is queued")
}
