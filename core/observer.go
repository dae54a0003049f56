package core

import "github.com/automoto/coindash/config"

// Observer receives the session's outward-facing state changes.
type Observer interface {
	OnScoreChanged(score int)
	OnGameStatusChanged(status config.GameStatus)
	OnLevelChanged(level int)
}

// Observers fans every notification out to each member in order.
type Observers []Observer

func (o Observers) OnScoreChanged(score int) {
	for _, obs := range o {
		obs.OnScoreChanged(score)
	}
}

func (o Observers) OnGameStatusChanged(status config.GameStatus) {
	for _, obs := range o {
		obs.OnGameStatusChanged(status)
	}
}

func (o Observers) OnLevelChanged(level int) {
	for _, obs := range o {
		obs.OnLevelChanged(level)
	}
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Score  func(score int)
	Status func(status config.GameStatus)
	Level  func(level int)
}

func (f ObserverFuncs) OnScoreChanged(score int) {
	if f.Score != nil {
		f.Score(score)
	}
}

func (f ObserverFuncs) OnGameStatusChanged(status config.GameStatus) {
	if f.Status != nil {
		f.Status(status)
	}
}

func (f ObserverFuncs) OnLevelChanged(level int) {
	if f.Level != nil {
		f.Level(level)
	}
}
