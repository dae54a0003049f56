package core

import (
	"time"

	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/tags"
	"github.com/yohamta/donburi"
)

type EnemyView struct {
	Box       gamemath.Rect
	Kind      config.EnemyKind
	Direction config.Direction
}

type DoorView struct {
	Box   gamemath.Rect
	Scale float64
}

// Snapshot is a copy of everything a frontend needs to draw one frame.
type Snapshot struct {
	Arena   gamemath.Size
	Player  gamemath.Rect
	Intent  config.Direction
	Walls   []gamemath.Rect
	Enemies []EnemyView
	Coins   []gamemath.Rect
	Door    *DoorView

	Level   int
	Score   int
	Elapsed time.Duration
	Phase   TimerPhase

	Status     config.GameStatus
	LossReason config.LossReason
	Started    bool
	ModalShown bool
}

func (s *Session) Snapshot() Snapshot {
	w := s.world
	st := s.state()

	snap := Snapshot{
		Arena:      st.Arena,
		Intent:     config.DirNone,
		Level:      st.Level,
		Score:      st.Score,
		Elapsed:    st.Elapsed,
		Phase:      PhaseOf(st.Elapsed, s.cfg.Timer),
		Status:     st.Status,
		LossReason: st.LossReason,
		Started:    st.Started,
		ModalShown: st.ModalShown,
	}

	if e, ok := tags.Player.First(w); ok {
		snap.Player = components.Object.Get(e).Rect()
		snap.Intent = components.Player.Get(e).Intent
	}
	tags.Wall.Each(w, func(e *donburi.Entry) {
		snap.Walls = append(snap.Walls, components.Object.Get(e).Rect())
	})
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		snap.Enemies = append(snap.Enemies, EnemyView{
			Box:       components.Object.Get(e).Rect(),
			Kind:      enemy.Kind,
			Direction: enemy.Direction,
		})
	})
	tags.Coin.Each(w, func(e *donburi.Entry) {
		snap.Coins = append(snap.Coins, components.Object.Get(e).Rect())
	})
	if e, ok := tags.Door.First(w); ok {
		snap.Door = &DoorView{
			Box:   components.Object.Get(e).Rect(),
			Scale: float64(components.Door.Get(e).Scale),
		}
	}

	return snap
}
