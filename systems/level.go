package systems

import (
	"log"

	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/systems/factory"
	"github.com/yohamta/donburi"
)

// StartLevel regenerates every level entity for arena and puts the player
// back at spawn. The level is not started until the next key press.
func StartLevel(w donburi.World, gen *factory.Generator, cfg *config.GameConfig, arena gamemath.Size, counts config.EnemyCounts) factory.Layout {
	session := GetOrCreateSession(w)
	session.Arena = arena
	session.Started = false

	layout := gen.Generate(arena, counts)
	factory.BuildLevel(w, layout, cfg.Layout.CellSize, cfg.Session.CoinValue)
	factory.PlacePlayer(w, cfg.Player.Hitbox())

	log.Printf("Level %d ready: %.0fx%.0f arena", session.Level, arena.W, arena.H)
	return layout
}
