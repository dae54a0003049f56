package components

import (
	"github.com/automoto/coindash/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Intent config.Direction // DirNone when no key is held
}

var Player = donburi.NewComponentType[PlayerData]()
