package factory

import (
	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, r gamemath.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	// Create collision object
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return wall
}
