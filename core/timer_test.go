package core

import (
	"testing"
	"time"

	"github.com/automoto/coindash/config"
	"github.com/stretchr/testify/assert"
)

func TestFormatTimer(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0.000s"},
		{7 * time.Millisecond, "0.007s"},
		{12340 * time.Millisecond, "12.340s"},
		{30 * time.Second, "30.000s"},
		{-time.Second, "0.000s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTimer(tt.in), tt.in.String())
	}
}

func TestPhaseOf(t *testing.T) {
	cfg := config.DefaultGameConfig().Timer

	assert.Equal(t, TimerNormal, PhaseOf(0, cfg))
	assert.Equal(t, TimerNormal, PhaseOf(15*time.Second, cfg))
	assert.Equal(t, TimerWarning, PhaseOf(15*time.Second+time.Millisecond, cfg))
	assert.Equal(t, TimerWarning, PhaseOf(25*time.Second, cfg))
	assert.Equal(t, TimerCritical, PhaseOf(25*time.Second+time.Millisecond, cfg))
}
