package systems

import (
	"log"
	"time"

	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/systems/factory"
	"github.com/automoto/coindash/tags"
	"github.com/yohamta/donburi"
)

// DoorReady reports whether the exit should appear: every coin is taken, no
// door exists yet and the level has been started.
func DoorReady(w donburi.World) bool {
	_, hasDoor := tags.Door.First(w)
	return !hasDoor && CoinCount(w) == 0 && GetOrCreateSession(w).Started
}

// SpawnDoorIfReady places the exit once per level. It returns true when a
// door was spawned this call.
func SpawnDoorIfReady(w donburi.World, gen *factory.Generator, cfg *config.GameConfig) bool {
	if !DoorReady(w) {
		return false
	}
	player, ok := PlayerRect(w)
	if !ok {
		return false
	}

	arena := GetOrCreateSession(w).Arena
	r, clear := gen.PlaceDoor(arena, WallRects(w), EnemyRects(w), player)
	factory.CreateDoor(w, r, cfg.Session.DoorTweenDuration)
	if !clear {
		log.Printf("Door placed at (%.0f, %.0f) after exhausting %d attempts", r.X, r.Y, cfg.Layout.MaxAttempts)
	}
	return true
}

// UpdateDoor advances the door's appear animation.
func UpdateDoor(w donburi.World, dt time.Duration) {
	components.Door.Each(w, func(e *donburi.Entry) {
		door := components.Door.Get(e)
		if door.Tween == nil {
			return
		}
		scale, finished := door.Tween.Update(float32(dt.Seconds()))
		door.Scale = scale
		if finished {
			door.Tween = nil
			door.Scale = 1
		}
	})
}

// DoorReached reports whether the player overlaps the door.
func DoorReached(w donburi.World) bool {
	player, ok := PlayerRect(w)
	if !ok {
		return false
	}
	return len(Overlapping(w, player, tags.ResolvDoor)) > 0
}
