package factory

import (
	"time"

	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateDoor spawns the exit door. The door grows in over appear using a
// tween; collision uses the full hitbox immediately.
func CreateDoor(w donburi.World, r gamemath.Rect, appear time.Duration) *donburi.Entry {
	door := archetypes.Door.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvDoor)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = door

	components.Object.SetValue(door, components.ObjectData{Object: obj})

	data := components.DoorData{Scale: 1}
	if appear > 0 {
		data.Tween = gween.New(0, 1, float32(appear.Seconds()), ease.OutBack)
		data.Scale = 0
	}
	components.Door.SetValue(door, data)
	addToSpace(w, obj)

	return door
}
