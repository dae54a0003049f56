package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/core"
	"github.com/automoto/coindash/fonts"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face faces come from freetype
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const LayerDefault ecs.LayerID = 0

const hudMargin = 12

// Renderer draws a session's world. It only reads state.
type Renderer struct {
	Timer        config.TimerConfig
	Best         func() int
	highContrast bool
}

func NewRenderer(timer config.TimerConfig, best func() int) *Renderer {
	return &Renderer{Timer: timer, Best: best}
}

// ToggleColorMode switches between the normal and high contrast palettes.
func (r *Renderer) ToggleColorMode() {
	r.highContrast = !r.highContrast
}

func (r *Renderer) HighContrast() bool {
	return r.highContrast
}

func (r *Renderer) palette() Palette {
	if r.highContrast {
		return HighContrastPalette()
	}
	return NormalPalette()
}

// Register adds the renderers to e in draw order.
func (r *Renderer) Register(e *ecs.ECS) {
	e.AddRenderer(LayerDefault, r.DrawLevel)
	e.AddRenderer(LayerDefault, r.DrawHUD)
	e.AddRenderer(LayerDefault, r.DrawIntro)
}

// DrawLevel renders walls, coins, the door, enemies and the player.
func (r *Renderer) DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	p := r.palette()

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		fillRect(screen, components.Object.Get(entry).Rect(), p.Wall)
	})
	tags.Coin.Each(e.World, func(entry *donburi.Entry) {
		b := components.Object.Get(entry).Rect()
		c := b.Center()
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(b.W/2), p.Coin, true)
	})
	tags.Door.Each(e.World, func(entry *donburi.Entry) {
		b := components.Object.Get(entry).Rect()
		scale := float64(components.Door.Get(entry).Scale)
		c := b.Center()
		fillRect(screen, gamemath.NewRect(c.X-b.W*scale/2, c.Y-b.H*scale/2, b.W*scale, b.H*scale), p.Door)
	})
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		kind := components.Enemy.Get(entry).Kind
		fillRect(screen, components.Object.Get(entry).Rect(), p.EnemyColor(kind))
	})
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		fillRect(screen, components.Object.Get(entry).Rect(), p.Player)
	})
}

// DrawHUD renders the bottom chrome: score, level, timer and best score.
func (r *Renderer) DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(entry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	chrome := config.Game.Layout.ChromeHeight
	top := float32(height) - float32(chrome)
	vector.DrawFilledRect(screen, 0, top, float32(width), float32(chrome), config.UI.Chrome, false)

	face := fonts.HUD.Get()
	baseline := int(top) + int(chrome)/2 + 6

	left := fmt.Sprintf("Score: %d   Level: %d", s.Score, s.Level)
	if r.Best != nil {
		left += fmt.Sprintf("   Best: %d", r.Best())
	}
	text.Draw(screen, left, face, hudMargin, baseline, config.UI.Text)

	timer := core.FormatTimer(s.Elapsed)
	x := width - hudMargin - font.MeasureString(face, timer).Ceil()
	text.Draw(screen, timer, face, x, baseline, r.timerColor(core.PhaseOf(s.Elapsed, r.Timer)))
}

// DrawIntro shows the controls until the first key press of a level.
func (r *Renderer) DrawIntro(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(entry)
	if s.Started || s.ModalShown {
		return
	}

	face := fonts.Intro.Get()
	msg := config.UI.IntroMessage
	bounds := font.MeasureString(face, msg).Ceil()
	width := screen.Bounds().Dx()
	y := 40

	vector.DrawFilledRect(screen,
		float32(width-bounds)/2-10, float32(y-26),
		float32(bounds+20), 36,
		config.UI.Overlay, false)
	text.Draw(screen, msg, face, (width-bounds)/2, y, config.UI.Text)
}

func (r *Renderer) timerColor(phase core.TimerPhase) color.Color {
	switch phase {
	case core.TimerCritical:
		return config.UI.TimerAlert
	case core.TimerWarning:
		return config.UI.TimerWarn
	}
	return config.UI.Text
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}
