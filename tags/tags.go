package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Coin   = donburi.NewTag().SetName("Coin")
	Door   = donburi.NewTag().SetName("Door")

	// Level marks every entity discarded when a level is regenerated.
	Level = donburi.NewTag().SetName("Level")
)

// Resolv tags for broad-phase queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvCoin   = "coin"
	ResolvDoor   = "door"
)
