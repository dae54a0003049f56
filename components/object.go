package components

import (
	"github.com/automoto/coindash/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's current hitbox.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

// MoveTo repositions the object and refreshes its broad-phase cells.
func (o *ObjectData) MoveTo(x, y float64) {
	o.X = x
	o.Y = y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the broad-phase collision space of the current level.
var Space = donburi.NewComponentType[resolv.Space]()
