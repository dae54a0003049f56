package factory

import (
	"log"
	"math"

	"github.com/automoto/coindash/tags"
	"github.com/yohamta/donburi"
)

// BuildLevel discards the previous level wholesale and spawns layout into a
// fresh collision space.
func BuildLevel(w donburi.World, layout Layout, cellSize, coinValue int) {
	ClearLevel(w)

	width, height := spaceBounds(layout)
	CreateSpace(w, width, height, cellSize, cellSize)

	for _, r := range layout.Walls {
		CreateWall(w, r)
	}
	for _, e := range layout.Enemies {
		CreateEnemy(w, e)
	}
	for _, r := range layout.Coins {
		CreateCoin(w, r, coinValue)
	}

	log.Printf("Built level: %d walls, %d enemies, %d coins, %dx%d space",
		len(layout.Walls), len(layout.Enemies), len(layout.Coins), width, height)
}

// ClearLevel removes every level-scoped entity, including the space.
func ClearLevel(w donburi.World) {
	var doomed []donburi.Entity
	tags.Level.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	for _, e := range doomed {
		w.Remove(e)
	}
}

// spaceBounds sizes the space to cover the arena and every generated
// rectangle, so nothing falls outside the broad-phase grid.
func spaceBounds(layout Layout) (int, int) {
	right, bottom := layout.Arena.W, layout.Arena.H
	for _, r := range layout.Walls {
		right = math.Max(right, r.Right())
		bottom = math.Max(bottom, r.Bottom())
	}
	for _, e := range layout.Enemies {
		right = math.Max(right, e.Box.Right())
		bottom = math.Max(bottom, e.Box.Bottom())
	}
	for _, r := range layout.Coins {
		right = math.Max(right, r.Right())
		bottom = math.Max(bottom, r.Bottom())
	}
	return int(math.Ceil(right)) + 1, int(math.Ceil(bottom)) + 1
}
