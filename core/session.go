package core

import (
	"log"
	"math/rand"
	"time"

	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/systems"
	"github.com/automoto/coindash/systems/factory"
	"github.com/yohamta/donburi"
)

// Options configures a Session. Zero values fall back to defaults: the
// default game config, an 800x600 viewport, a FrameQueue scheduler, a time
// based seed and procedural walls.
type Options struct {
	Config    *config.GameConfig
	Viewport  Viewport
	Scheduler Scheduler
	Observer  Observer
	Walls     factory.WallSource

	// Rand overrides Seed when set.
	Rand *rand.Rand
	Seed int64
}

// Session is one play session: the world, its generator and the frame loop
// that advances them. All methods must be called from the goroutine that
// runs the scheduler's callbacks.
type Session struct {
	cfg       config.GameConfig
	world     donburi.World
	gen       *factory.Generator
	viewport  Viewport
	scheduler Scheduler
	observer  Observer

	cancelFrame   func()
	closed        bool
	lastTick      time.Time
	lastEnemyStep time.Time
}

// NewSession generates the opening level and schedules the first frame.
func NewSession(opts Options) *Session {
	cfg := config.DefaultGameConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	s := &Session{
		cfg:       cfg,
		world:     donburi.NewWorld(),
		viewport:  opts.Viewport,
		scheduler: opts.Scheduler,
		observer:  opts.Observer,
	}
	if s.viewport == nil {
		s.viewport = FixedViewport{W: config.C.Width, H: config.C.Height}
	}
	if s.scheduler == nil {
		s.scheduler = NewFrameQueue()
	}
	if s.observer == nil {
		s.observer = ObserverFuncs{}
	}
	s.gen = factory.NewGenerator(cfg, rng, opts.Walls)

	systems.GetOrCreateSession(s.world)
	systems.StartLevel(s.world, s.gen, &s.cfg, arenaOf(s.viewport), cfg.Layout.OpeningEnemies)
	s.restartLoop()

	return s
}

// World exposes the underlying ECS world for rendering.
func (s *Session) World() donburi.World {
	return s.world
}

func (s *Session) Config() config.GameConfig {
	return s.cfg
}

func (s *Session) Status() config.GameStatus {
	return s.state().Status
}

func (s *Session) Score() int {
	return s.state().Score
}

func (s *Session) Level() int {
	return s.state().Level
}

func (s *Session) ModalShown() bool {
	return s.state().ModalShown
}

// KeyDown sets the player's intent. The first key press of a session moves
// it from Idle to Running and every key press marks the level as started.
func (s *Session) KeyDown(dir config.Direction) {
	if s.closed {
		return
	}
	if dir == config.DirNone {
		s.KeyUp()
		return
	}

	st := s.state()
	if st.ModalShown {
		return
	}

	st.Started = true
	if st.Status == config.StatusIdle {
		st.Status = config.StatusRunning
		st.LossReason = config.LossNone
		s.observer.OnGameStatusChanged(st.Status)
	}
	s.setIntent(dir)
}

// KeyUp clears the player's intent.
func (s *Session) KeyUp() {
	if s.closed || s.state().ModalShown {
		return
	}
	s.setIntent(config.DirNone)
}

// DismissModal closes the game over modal and starts over from level 1.
func (s *Session) DismissModal() {
	if s.closed || !s.state().ModalShown {
		return
	}
	s.reset()
}

// Resize re-samples the viewport and regenerates the level for it. Score
// and level are reset.
func (s *Session) Resize() {
	if s.closed {
		return
	}
	s.reset()
}

// Close stops the frame loop permanently.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.cancelLoop()
}

func (s *Session) state() *components.SessionData {
	return systems.GetOrCreateSession(s.world)
}

func (s *Session) setIntent(dir config.Direction) {
	if systems.Intent(s.world) == dir {
		return
	}
	systems.SetIntent(s.world, dir)
	s.restartLoop()
}

func (s *Session) reset() {
	st := s.state()
	prevScore, prevLevel, prevStatus := st.Score, st.Level, st.Status

	st.Level = 1
	st.Score = 0
	st.PendingScore = 0
	st.Elapsed = 0
	st.Status = config.StatusIdle
	st.LossReason = config.LossNone
	st.ModalShown = false

	systems.StartLevel(s.world, s.gen, &s.cfg, arenaOf(s.viewport), s.cfg.Layout.RegenEnemies)

	if prevLevel != st.Level {
		s.observer.OnLevelChanged(st.Level)
	}
	if prevScore != st.Score {
		s.observer.OnScoreChanged(st.Score)
	}
	if prevStatus != st.Status {
		s.observer.OnGameStatusChanged(st.Status)
	}
	s.restartLoop()
}

func (s *Session) restartLoop() {
	s.cancelLoop()
	if s.closed || s.state().ModalShown {
		return
	}
	s.cancelFrame = s.scheduler.Schedule(s.frame)
}

func (s *Session) cancelLoop() {
	if s.cancelFrame != nil {
		s.cancelFrame()
		s.cancelFrame = nil
	}
}

func (s *Session) frame(now time.Time) {
	s.cancelFrame = nil
	if s.closed || s.state().ModalShown {
		return
	}

	s.step(now)

	// Observers may have re-established the loop already.
	if s.cancelFrame == nil && !s.closed && !s.state().ModalShown {
		s.cancelFrame = s.scheduler.Schedule(s.frame)
	}
}

func (s *Session) step(now time.Time) {
	w := s.world
	st := s.state()

	var dt time.Duration
	if !s.lastTick.IsZero() && now.After(s.lastTick) {
		dt = now.Sub(s.lastTick)
	}
	s.lastTick = now
	if s.lastEnemyStep.IsZero() {
		s.lastEnemyStep = now
	}

	if systems.AdvanceTimer(w, dt, s.cfg.Session.LevelTimeLimit) {
		s.lose(config.LossTimeout)
		return
	}

	systems.UpdatePlayer(w, &s.cfg)

	if now.Sub(s.lastEnemyStep) >= s.cfg.Enemy.MoveInterval {
		if st.Started {
			systems.UpdateEnemies(w, &s.cfg, s.gen.Rand())
		}
		s.lastEnemyStep = now
	}

	if st.Status == config.StatusRunning && systems.PlayerCaught(w) {
		s.lose(config.LossCaught)
		return
	}

	systems.CollectCoins(w)
	if systems.FlushScore(w) {
		s.observer.OnScoreChanged(st.Score)
	}

	systems.SpawnDoorIfReady(w, s.gen, &s.cfg)
	if systems.DoorReached(w) {
		s.nextLevel()
		return
	}

	systems.UpdateDoor(w, dt)
}

func (s *Session) lose(reason config.LossReason) {
	systems.Lose(s.world, reason)
	s.cancelLoop()

	st := s.state()
	log.Printf("Session lost on level %d with score %d (%s)", st.Level, st.Score, reason)
	s.observer.OnGameStatusChanged(st.Status)
}

func (s *Session) nextLevel() {
	st := s.state()
	st.Level++
	st.Elapsed = 0
	systems.SetIntent(s.world, config.DirNone)

	systems.StartLevel(s.world, s.gen, &s.cfg, arenaOf(s.viewport), s.cfg.Layout.RegenEnemies)
	s.observer.OnLevelChanged(st.Level)
}
