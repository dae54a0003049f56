package systems

import (
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePlayer moves the player one tick along its intent. A move into a
// wall is rejected outright; there is no sliding.
func UpdatePlayer(w donburi.World, cfg *config.GameConfig) {
	entry, ok := components.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	if player.Intent == config.DirNone {
		return
	}

	obj := components.Object.Get(entry)
	arena := GetOrCreateSession(w).Arena
	next := StepPlayer(obj.Rect(), player.Intent, cfg.Player.Speed, arena, cfg.Layout.ChromeHeight,
		func(r gamemath.Rect) bool { return CollidesWithWalls(w, r) })

	if next != obj.Rect() {
		obj.MoveTo(next.X, next.Y)
	}
}

// StepPlayer returns box moved speed pixels along dir and clamped to the
// arena above the bottom chrome. If the result is blocked, box is returned
// unchanged.
func StepPlayer(box gamemath.Rect, dir config.Direction, speed float64, arena gamemath.Size, chrome float64, blocked func(gamemath.Rect) bool) gamemath.Rect {
	if dir == config.DirNone {
		return box
	}

	dx, dy := dir.Delta()
	next := box.At(
		gamemath.Clamp(box.X+dx*speed, 0, arena.W-box.W),
		gamemath.Clamp(box.Y+dy*speed, 0, arena.H-chrome-box.H),
	)

	if blocked(next) {
		return box
	}
	return next
}
