package scenes

import (
	"sync"
	"time"

	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/core"
	"github.com/automoto/coindash/persistence"
	"github.com/automoto/coindash/render"
	"github.com/automoto/coindash/systems/factory"
	"github.com/automoto/coindash/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var directionKeys = map[config.Direction][]ebiten.Key{
	config.DirUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	config.DirDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	config.DirLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	config.DirRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// screenViewport follows the size ebiten reports from Layout.
type screenViewport struct {
	w, h int
}

func (v *screenViewport) Width() int  { return v.w }
func (v *screenViewport) Height() int { return v.h }

// WorldOptions configures the play scene.
type WorldOptions struct {
	Seed  int64
	Walls factory.WallSource
	Store persistence.ScoreStore
}

// WorldScene hosts one session. ebiten's Update drives the session's frame
// queue, so every callback runs on the game goroutine.
type WorldScene struct {
	opts WorldOptions

	ecs      *ecs.ECS
	session  *core.Session
	frames   *core.FrameQueue
	viewport *screenViewport
	renderer *render.Renderer
	tracker  *persistence.Tracker
	modal    *ui.GameOverUI

	held        config.Direction
	generatedAt screenViewport
	modalFilled bool
	once        sync.Once
}

func NewWorldScene(opts WorldOptions) *WorldScene {
	if opts.Store == nil {
		opts.Store = &persistence.MemoryStore{}
	}
	return &WorldScene{
		opts:     opts,
		held:     config.DirNone,
		viewport: &screenViewport{w: config.C.Width, h: config.C.Height},
	}
}

// SetViewport records the current screen size. A change regenerates the
// level on the next update.
func (ws *WorldScene) SetViewport(width, height int) {
	ws.viewport.w = width
	ws.viewport.h = height
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	if *ws.viewport != ws.generatedAt {
		ws.generatedAt = *ws.viewport
		ws.session.Resize()
	}

	ws.ecs.Update()
	ws.frames.Run(time.Now())

	if ws.session.ModalShown() {
		ws.updateModal()
	} else {
		ws.modalFilled = false
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.UI.Background)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)

	if ws.session.ModalShown() {
		ws.modal.Draw(screen)
	}
}

// Close stops the session's frame loop.
func (ws *WorldScene) Close() {
	if ws.session != nil {
		ws.session.Close()
	}
}

func (ws *WorldScene) configure() {
	ws.frames = core.NewFrameQueue()
	ws.tracker = persistence.NewTracker(ws.opts.Store)
	ws.generatedAt = *ws.viewport

	ws.session = core.NewSession(core.Options{
		Config:    &config.Game,
		Viewport:  ws.viewport,
		Scheduler: ws.frames,
		Observer:  ws.tracker,
		Walls:     ws.opts.Walls,
		Seed:      ws.opts.Seed,
	})

	ws.ecs = ecs.NewECS(ws.session.World())
	ws.ecs.AddSystem(ws.updateInput)

	ws.renderer = render.NewRenderer(config.Game.Timer, ws.tracker.Best)
	ws.renderer.Register(ws.ecs)

	ws.modal = ui.NewGameOverUI(ws.session.DismissModal)
}

// updateInput turns key events into session input. Only the most recently
// pressed direction counts; releasing it clears the intent.
func (ws *WorldScene) updateInput(_ *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		ws.renderer.ToggleColorMode()
	}

	for dir := config.DirUp; dir <= config.DirRight; dir++ {
		for _, key := range directionKeys[dir] {
			if inpututil.IsKeyJustPressed(key) {
				ws.held = dir
				ws.session.KeyDown(dir)
			}
		}
	}

	if ws.held != config.DirNone && !anyPressed(directionKeys[ws.held]) {
		ws.held = config.DirNone
		ws.session.KeyUp()
	}
}

func (ws *WorldScene) updateModal() {
	if !ws.modalFilled {
		snap := ws.session.Snapshot()
		ws.modal.SetResult(snap.LossReason, snap.Level, snap.Score, ws.tracker.Best())
		ws.modalFilled = true
		ws.held = config.DirNone
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ws.session.DismissModal()
		return
	}
	ws.modal.Update()
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
