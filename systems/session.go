package systems

import (
	"time"

	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/config"
	"github.com/yohamta/donburi"
)

// GetOrCreateSession returns the singleton Session component, creating it at
// level 1 if needed.
func GetOrCreateSession(w donburi.World) *components.SessionData {
	if _, ok := components.Session.First(w); !ok {
		ent := archetypes.Session.Spawn(w)
		components.Session.SetValue(ent, components.SessionData{
			Level:  1,
			Status: config.StatusIdle,
		})
	}

	ent, _ := components.Session.First(w)
	return components.Session.Get(ent)
}

// AdvanceTimer adds dt to the level timer while the session is running and
// reports whether the level time limit was reached. The timer never exceeds
// the limit.
func AdvanceTimer(w donburi.World, dt, limit time.Duration) bool {
	s := GetOrCreateSession(w)
	if s.Status != config.StatusRunning {
		return false
	}
	if dt > 0 {
		s.Elapsed += dt
	}
	if limit > 0 && s.Elapsed >= limit {
		s.Elapsed = limit
		return true
	}
	return false
}

// Lose ends the session: movement stops and the loss modal is shown.
func Lose(w donburi.World, reason config.LossReason) {
	s := GetOrCreateSession(w)
	s.Status = config.StatusLost
	s.LossReason = reason
	s.ModalShown = true
	SetIntent(w, config.DirNone)
}

// SetIntent records the player's movement intent.
func SetIntent(w donburi.World, dir config.Direction) {
	if entry, ok := components.Player.First(w); ok {
		components.Player.Get(entry).Intent = dir
	}
}

// Intent returns the player's movement intent.
func Intent(w donburi.World) config.Direction {
	if entry, ok := components.Player.First(w); ok {
		return components.Player.Get(entry).Intent
	}
	return config.DirNone
}
