package systems

import (
	"testing"

	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/systems/factory"
	"github.com/automoto/coindash/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

var testArena = gamemath.Size{W: 800, H: 600}

// newLevel builds layout into a fresh world with the player at spawn.
func newLevel(t *testing.T, layout factory.Layout) (donburi.World, *config.GameConfig) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	if layout.Arena == (gamemath.Size{}) {
		layout.Arena = testArena
	}

	w := donburi.NewWorld()
	GetOrCreateSession(w).Arena = layout.Arena
	factory.BuildLevel(w, layout, cfg.Layout.CellSize, cfg.Session.CoinValue)
	factory.PlacePlayer(w, cfg.Player.Hitbox())
	return w, &cfg
}

func movePlayer(t *testing.T, w donburi.World, x, y float64) {
	t.Helper()
	entry, ok := tags.Player.First(w)
	require.True(t, ok)
	components.Object.Get(entry).MoveTo(x, y)
}

func neverBlocked(gamemath.Rect) bool { return false }
