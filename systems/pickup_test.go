package systems

import (
	"testing"

	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestCollectCoins(t *testing.T) {
	w, _ := newLevel(t, factory.Layout{
		Coins: []gamemath.Rect{
			gamemath.NewRect(100, 230, 40, 40), // under the spawn
			gamemath.NewRect(110, 240, 10, 10), // also under the spawn
			gamemath.NewRect(600, 100, 40, 40),
		},
	})

	assert.Equal(t, 2, CollectCoins(w))
	assert.Equal(t, 1, CoinCount(w))

	s := GetOrCreateSession(w)
	assert.Equal(t, 2, s.PendingScore)
	assert.Zero(t, s.Score, "collection does not touch the score")

	assert.True(t, FlushScore(w))
	assert.Equal(t, 2, s.Score)
	assert.Zero(t, s.PendingScore)
	assert.False(t, FlushScore(w))

	assert.Zero(t, CollectCoins(w), "taken coins are gone from the space too")
	assert.Equal(t, 1, CoinCount(w))
}

func TestCoinSetShrinksMonotonically(t *testing.T) {
	var coins []gamemath.Rect
	for x := 150.0; x < 700; x += 60 {
		coins = append(coins, gamemath.NewRect(x, 230, 40, 40))
	}
	w, cfg := newLevel(t, factory.Layout{Coins: coins})
	SetIntent(w, config.DirRight)

	prev := CoinCount(w)
	for i := 0; i < 200; i++ {
		UpdatePlayer(w, cfg)
		CollectCoins(w)
		FlushScore(w)

		n := CoinCount(w)
		assert.LessOrEqual(t, n, prev)
		prev = n
	}
	assert.Zero(t, CoinCount(w))
	assert.Equal(t, len(coins), GetOrCreateSession(w).Score)
}
