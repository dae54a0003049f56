package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		dir      Direction
		opposite Direction
		dx, dy   float64
	}{
		{DirUp, DirDown, 0, -1},
		{DirDown, DirUp, 0, 1},
		{DirLeft, DirRight, -1, 0},
		{DirRight, DirLeft, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.opposite, tt.dir.Opposite())
			dx, dy := tt.dir.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}

	dx, dy := DirNone.Delta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestEnemyTypeFallback(t *testing.T) {
	cfg := DefaultGameConfig().Enemy
	assert.Equal(t, 4.0, cfg.Type(EnemyVariant).SpeedMultiplier)
	assert.Equal(t, cfg.Type(EnemyNormal), cfg.Type(EnemyKind(99)))
}
