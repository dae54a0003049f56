package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/systems/factory"
	"github.com/automoto/coindash/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoorSpawnConditions(t *testing.T) {
	w, cfg := newLevel(t, factory.Layout{Coins: []gamemath.Rect{gamemath.NewRect(600, 100, 40, 40)}})
	gen := factory.NewGenerator(*cfg, rand.New(rand.NewSource(1)), factory.NoWalls{})
	s := GetOrCreateSession(w)

	assert.False(t, SpawnDoorIfReady(w, gen, cfg), "coins left and not started")

	s.Started = true
	assert.False(t, SpawnDoorIfReady(w, gen, cfg), "coins left")

	movePlayer(t, w, 600, 100)
	require.Equal(t, 1, CollectCoins(w))
	s.Started = false
	assert.False(t, SpawnDoorIfReady(w, gen, cfg), "not started")

	s.Started = true
	assert.True(t, SpawnDoorIfReady(w, gen, cfg))
	assert.False(t, SpawnDoorIfReady(w, gen, cfg), "only once per level")

	entry, ok := tags.Door.First(w)
	require.True(t, ok)
	player, _ := PlayerRect(w)
	assert.False(t, gamemath.Overlaps(components.Object.Get(entry).Rect(), player))
	assert.False(t, DoorReached(w))
}

func TestDoorReachedAndTween(t *testing.T) {
	w, cfg := newLevel(t, factory.Layout{})
	factory.CreateDoor(w, gamemath.NewRect(400, 300, 50, 50), cfg.Session.DoorTweenDuration)

	assert.False(t, DoorReached(w))
	movePlayer(t, w, 380, 290)
	assert.True(t, DoorReached(w), "full hitbox before the tween finishes")

	entry, _ := tags.Door.First(w)
	door := components.Door.Get(entry)

	UpdateDoor(w, 100*time.Millisecond)
	assert.Greater(t, door.Scale, float32(0))
	assert.NotNil(t, door.Tween)

	UpdateDoor(w, time.Second)
	assert.Nil(t, door.Tween)
	assert.Equal(t, float32(1), door.Scale)
}
