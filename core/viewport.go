package core

import "github.com/automoto/coindash/gamemath"

// Viewport reports the current drawable size in pixels.
type Viewport interface {
	Width() int
	Height() int
}

// FixedViewport is a Viewport of constant size.
type FixedViewport struct {
	W, H int
}

func (v FixedViewport) Width() int  { return v.W }
func (v FixedViewport) Height() int { return v.H }

func arenaOf(v Viewport) gamemath.Size {
	return gamemath.Size{W: float64(v.Width()), H: float64(v.Height())}
}
