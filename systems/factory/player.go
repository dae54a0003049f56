package factory

import (
	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player. The player outlives levels; PlacePlayer
// moves it into each new level's space.
func CreatePlayer(w donburi.World, r gamemath.Rect) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{Intent: config.DirNone})
	addToSpace(w, obj)

	return player
}

// PlacePlayer puts the player back at spawn with no intent, inside the
// current space.
func PlacePlayer(w donburi.World, spawn gamemath.Rect) *donburi.Entry {
	entry, ok := tags.Player.First(w)
	if !ok {
		return CreatePlayer(w, spawn)
	}

	obj := components.Object.Get(entry)
	obj.X = spawn.X
	obj.Y = spawn.Y
	components.Player.Get(entry).Intent = config.DirNone
	addToSpace(w, obj.Object)

	return entry
}
