package render

import (
	"testing"

	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/core"
	"github.com/stretchr/testify/assert"
)

func TestToggleColorMode(t *testing.T) {
	r := NewRenderer(config.Game.Timer, nil)
	assert.Equal(t, NormalPalette(), r.palette())

	r.ToggleColorMode()
	assert.True(t, r.HighContrast())
	assert.Equal(t, HighContrastPalette(), r.palette())

	r.ToggleColorMode()
	assert.False(t, r.HighContrast())
}

func TestPaletteEnemyColor(t *testing.T) {
	p := NormalPalette()
	assert.Equal(t, config.UI.Enemy, p.EnemyColor(config.EnemyNormal))
	assert.Equal(t, config.UI.Variant, p.EnemyColor(config.EnemyVariant))
	assert.NotEqual(t, p, HighContrastPalette())
}

func TestTimerColor(t *testing.T) {
	r := NewRenderer(config.Game.Timer, nil)
	assert.Equal(t, config.UI.Text, r.timerColor(core.TimerNormal))
	assert.Equal(t, config.UI.TimerWarn, r.timerColor(core.TimerWarning))
	assert.Equal(t, config.UI.TimerAlert, r.timerColor(core.TimerCritical))
}
