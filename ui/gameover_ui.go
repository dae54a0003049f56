package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameOverUI is the blocking modal shown when a session is lost.
type GameOverUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnRestart func()

	reasonLabel *widget.Label
	scoreLabel  *widget.Label
	bestLabel   *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

func NewGameOverUI(onRestart func()) *GameOverUI {
	g := &GameOverUI{
		OnRestart:  onRestart,
		titleFace:  fonts.UIFace(28),
		normalFace: fonts.UIFace(16),
	}
	g.buildUI()
	return g
}

func (g *GameOverUI) buildUI() {
	// Root container dims the playfield behind the modal
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(config.UI.Overlay)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(20)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(config.UI.ModalTitle, &g.titleFace, &widget.LabelColor{
			Idle: config.UI.Text,
		}),
	))

	g.reasonLabel = g.newLabel(color.RGBA{255, 120, 120, 255})
	g.scoreLabel = g.newLabel(config.UI.Text)
	g.bestLabel = g.newLabel(config.UI.Coin)
	panel.AddChild(g.reasonLabel)
	panel.AddChild(g.scoreLabel)
	panel.AddChild(g.bestLabel)

	restartButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 32),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(config.UI.ModalButton, &g.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if g.OnRestart != nil {
				g.OnRestart()
			}
		}),
	)
	panel.AddChild(restartButton)

	rootContainer.AddChild(panel)

	g.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (g *GameOverUI) newLabel(c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &g.normalFace, &widget.LabelColor{Idle: c}),
	)
}

// SetResult fills in the labels for a finished session.
func (g *GameOverUI) SetResult(reason config.LossReason, level, score, best int) {
	switch reason {
	case config.LossTimeout:
		g.reasonLabel.Label = fmt.Sprintf("Out of time on level %d", level)
	default:
		g.reasonLabel.Label = fmt.Sprintf("Caught on level %d", level)
	}
	g.scoreLabel.Label = fmt.Sprintf("Score: %d", score)
	g.bestLabel.Label = fmt.Sprintf("Best: %d", best)
}

func (g *GameOverUI) Update() {
	g.UI.Update()
}

func (g *GameOverUI) Draw(screen *ebiten.Image) {
	g.UI.Draw(screen)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
