package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DoorData drives the door's appear animation. The hitbox is full size from
// the moment the door spawns; Scale is presentation only.
type DoorData struct {
	Tween *gween.Tween
	Scale float32
}

var Door = donburi.NewComponentType[DoorData]()
