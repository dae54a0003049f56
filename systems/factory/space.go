package factory

import (
	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the level's space, if there is one.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
