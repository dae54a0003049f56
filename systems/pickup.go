package systems

import (
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/tags"
	"github.com/yohamta/donburi"
)

// CollectCoins removes every coin the player overlaps and adds their value
// to the pending score. It returns how many coins were taken.
func CollectCoins(w donburi.World) int {
	player, ok := PlayerRect(w)
	if !ok {
		return 0
	}

	session := GetOrCreateSession(w)
	space := levelSpace(w)
	taken := 0
	for _, obj := range Overlapping(w, player, tags.ResolvCoin) {
		entry, ok := entryOf(w, obj)
		if !ok {
			continue
		}
		session.PendingScore += components.Coin.Get(entry).Value
		if space != nil {
			space.Remove(obj)
		}
		w.Remove(entry.Entity())
		taken++
	}
	return taken
}

// FlushScore moves the pending score into the session score. It runs as its
// own step after collection and reports whether the score changed.
func FlushScore(w donburi.World) bool {
	session := GetOrCreateSession(w)
	if session.PendingScore <= 0 {
		return false
	}
	session.Score += session.PendingScore
	session.PendingScore = 0
	return true
}

// CoinCount returns the number of coins left in the level.
func CoinCount(w donburi.World) int {
	n := 0
	tags.Coin.Each(w, func(*donburi.Entry) { n++ })
	return n
}
