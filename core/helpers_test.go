package core

import (
	"testing"
	"time"

	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/systems/factory"
	"github.com/automoto/coindash/tags"
	"github.com/stretchr/testify/require"
)

var t0 = time.Unix(1_700_000_000, 0)

type recorder struct {
	scores   []int
	statuses []config.GameStatus
	levels   []int
}

func (r *recorder) OnScoreChanged(score int) { r.scores = append(r.scores, score) }
func (r *recorder) OnGameStatusChanged(status config.GameStatus) {
	r.statuses = append(r.statuses, status)
}
func (r *recorder) OnLevelChanged(level int) { r.levels = append(r.levels, level) }

type testSession struct {
	*Session
	frames *FrameQueue
	events *recorder
}

// emptyArena strips enemies and coins so a test can place its own.
func emptyArena(cfg *config.GameConfig) {
	cfg.Layout.OpeningEnemies = config.EnemyCounts{}
	cfg.Layout.RegenEnemies = config.EnemyCounts{}
	cfg.Layout.NumCoins = 0
}

func newTestSession(t *testing.T, walls factory.WallSource, tweak ...func(*config.GameConfig)) *testSession {
	t.Helper()
	cfg := config.DefaultGameConfig()
	for _, fn := range tweak {
		fn(&cfg)
	}

	frames := NewFrameQueue()
	events := &recorder{}
	s := NewSession(Options{
		Config:    &cfg,
		Viewport:  FixedViewport{W: 800, H: 600},
		Scheduler: frames,
		Observer:  events,
		Walls:     walls,
		Seed:      1,
	})
	t.Cleanup(s.Close)
	return &testSession{Session: s, frames: frames, events: events}
}

func (ts *testSession) movePlayer(t *testing.T, x, y float64) {
	t.Helper()
	entry, ok := tags.Player.First(ts.World())
	require.True(t, ok)
	components.Object.Get(entry).MoveTo(x, y)
}

func (ts *testSession) addEnemy(kind config.EnemyKind, r gamemath.Rect, dir config.Direction) {
	factory.CreateEnemy(ts.World(), factory.EnemySpawn{Kind: kind, Box: r, Direction: dir})
}

// runFor drives frames every step from start until end, inclusive.
func (ts *testSession) runFor(start, end time.Time, step time.Duration) {
	for now := start; !now.After(end); now = now.Add(step) {
		ts.frames.Run(now)
	}
}
