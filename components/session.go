package components

import (
	"time"

	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/gamemath"
	"github.com/yohamta/donburi"
)

// SessionData is the singleton bookkeeping for one play session.
type SessionData struct {
	Arena gamemath.Size // viewport sampled at the last generation

	Level        int
	Score        int
	PendingScore int // collected this tick, flushed into Score separately
	Elapsed      time.Duration

	Status     config.GameStatus
	LossReason config.LossReason
	Started    bool // a key was pressed since the level was generated
	ModalShown bool
}

var Session = donburi.NewComponentType[SessionData]()
