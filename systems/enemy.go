package systems

import (
	"math/rand"

	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/tags"
	"github.com/yohamta/donburi"
)

// EnemyState is the mutable part of an enemy, as seen by one steering step.
type EnemyState struct {
	Box       gamemath.Rect
	Direction config.Direction
	Steps     int
}

// EnemySpeed is the step length of kind at level. It grows linearly with the
// level and is not capped.
func EnemySpeed(cfg config.EnemyConfig, kind config.EnemyKind, level int) float64 {
	return cfg.BaseSpeed * cfg.Type(kind).SpeedMultiplier * float64(level)
}

// StepEnemy advances one enemy by one steering step.
//
// After StepsBeforeChange steps a fresh random direction is forced. A step
// into a wall reverses the enemy; if the reverse is blocked too, up to
// RandomRetries random directions are tried. The last attempt is kept
// whether or not it is clear, then clamped into the arena.
func StepEnemy(e EnemyState, speed float64, cfg config.EnemyConfig, arena gamemath.Size, chrome float64, blocked func(gamemath.Rect) bool, rng *rand.Rand) EnemyState {
	dir, steps := e.Direction, e.Steps
	if steps >= cfg.StepsBeforeChange {
		dir = randomDirection(rng)
		steps = 0
	}

	project := func(d config.Direction) gamemath.Rect {
		dx, dy := d.Delta()
		return e.Box.Translate(dx*speed, dy*speed)
	}

	next := project(dir)
	if blocked(next) {
		dir = dir.Opposite()
		next = project(dir)

		if blocked(next) {
			for attempt := 0; attempt < cfg.RandomRetries; attempt++ {
				dir = randomDirection(rng)
				next = project(dir)
				if !blocked(next) {
					break
				}
			}
		}
	}

	next = next.At(
		gamemath.Clamp(next.X, 0, arena.W-next.W),
		gamemath.Clamp(next.Y, 0, arena.H-chrome-next.H),
	)

	return EnemyState{Box: next, Direction: dir, Steps: steps + 1}
}

// UpdateEnemies runs one steering step for every enemy.
func UpdateEnemies(w donburi.World, cfg *config.GameConfig, rng *rand.Rand) {
	session := GetOrCreateSession(w)
	blocked := func(r gamemath.Rect) bool { return CollidesWithWalls(w, r) }

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)

		next := StepEnemy(EnemyState{
			Box:       obj.Rect(),
			Direction: enemy.Direction,
			Steps:     enemy.Steps,
		}, EnemySpeed(cfg.Enemy, enemy.Kind, session.Level), cfg.Enemy, session.Arena, cfg.Layout.ChromeHeight, blocked, rng)

		enemy.Direction = next.Direction
		enemy.Steps = next.Steps
		obj.MoveTo(next.Box.X, next.Box.Y)
	})
}

// PlayerCaught reports whether any enemy overlaps the player.
func PlayerCaught(w donburi.World) bool {
	player, ok := PlayerRect(w)
	if !ok {
		return false
	}
	return len(Overlapping(w, player, tags.ResolvEnemy)) > 0
}

func randomDirection(rng *rand.Rand) config.Direction {
	return config.Direction(rng.Intn(config.NumDirections))
}
