package config

// Direction is a movement direction. The numeric values of the four
// directions double as the enemy direction encoding (0 up, 1 down, 2 left,
// 3 right); DirNone is the player's "no intent".
type Direction int

const (
	DirNone Direction = iota - 1
	DirUp
	DirDown
	DirLeft
	DirRight
)

// NumDirections is the count of real directions.
const NumDirections = 4

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// Delta returns the unit step for d in screen coordinates.
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// GameStatus is the session state machine.
//
//	Idle    --first key down-->  Running
//	Running --caught/timeout-->  Lost
//	Lost    --modal dismissed--> Idle
//	any     --resize-->          Idle
type GameStatus int

const (
	StatusIdle GameStatus = iota
	StatusRunning
	StatusLost
)

func (s GameStatus) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusLost:
		return "lost"
	}
	return "idle"
}

// LossReason records why a session ended.
type LossReason int

const (
	LossNone LossReason = iota
	LossCaught
	LossTimeout
)

func (r LossReason) String() string {
	switch r {
	case LossCaught:
		return "caught"
	case LossTimeout:
		return "timeout"
	}
	return "none"
}

// EnemyKind selects an enemy's hitbox and speed multiplier.
type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyVariant
)

func (k EnemyKind) String() string {
	if k == EnemyVariant {
		return "variant"
	}
	return "normal"
}
