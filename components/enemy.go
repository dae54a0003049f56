package components

import (
	"github.com/automoto/coindash/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind      config.EnemyKind
	Direction config.Direction
	Steps     int // steering steps since the last forced direction change
}

var Enemy = donburi.NewComponentType[EnemyData]()
