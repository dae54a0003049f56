package core

import (
	"fmt"
	"time"

	"github.com/automoto/coindash/config"
)

// TimerPhase is how close the level timer is to its limit.
type TimerPhase int

const (
	TimerNormal TimerPhase = iota
	TimerWarning
	TimerCritical
)

// PhaseOf classifies elapsed against the configured thresholds.
func PhaseOf(elapsed time.Duration, cfg config.TimerConfig) TimerPhase {
	switch {
	case elapsed > cfg.Critical:
		return TimerCritical
	case elapsed > cfg.Warning:
		return TimerWarning
	}
	return TimerNormal
}

// FormatTimer renders d as seconds with millisecond precision, e.g. "12.340s".
func FormatTimer(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%d.%03ds", ms/1000, ms%1000)
}
