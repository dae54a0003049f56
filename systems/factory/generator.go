package factory

import (
	"log"
	"math"
	"math/rand"

	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/gamemath"
)

// EnemySpawn is the initial state of one generated enemy.
type EnemySpawn struct {
	Kind      config.EnemyKind
	Box       gamemath.Rect
	Direction config.Direction
}

// Layout is everything generated for one level, in generation order.
type Layout struct {
	Arena   gamemath.Size
	Walls   []gamemath.Rect
	Enemies []EnemySpawn
	Coins   []gamemath.Rect

	// Fallbacks counts placements accepted after exhausting MaxAttempts.
	Fallbacks int
}

// EnemyRects returns the enemy hitboxes.
func (l Layout) EnemyRects() []gamemath.Rect {
	rects := make([]gamemath.Rect, len(l.Enemies))
	for i, e := range l.Enemies {
		rects[i] = e.Box
	}
	return rects
}

// Generator places level entities with bounded randomized retry. Every
// placement samples at most MaxAttempts candidates; when all of them are
// rejected the last one is kept anyway, so generation never fails or stalls
// on a crowded viewport.
type Generator struct {
	rng    *rand.Rand
	layout config.LayoutConfig
	enemy  config.EnemyConfig
	player config.PlayerConfig
	walls  WallSource
}

func NewGenerator(cfg config.GameConfig, rng *rand.Rand, walls WallSource) *Generator {
	if walls == nil {
		walls = ProceduralWalls{}
	}
	return &Generator{
		rng:    rng,
		layout: cfg.Layout,
		enemy:  cfg.Enemy,
		player: cfg.Player,
		walls:  walls,
	}
}

// Rand exposes the generator's random source so steering shares one seed.
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

// Generate builds walls, then enemies, then coins. Each stage is checked
// against the output of the stages before it.
func (g *Generator) Generate(arena gamemath.Size, counts config.EnemyCounts) Layout {
	l := Layout{Arena: arena}

	var misses int
	l.Walls, misses = g.walls.Walls(g, arena)
	l.Fallbacks += misses

	l.Enemies, misses = g.PlaceEnemies(arena, counts, l.Walls)
	l.Fallbacks += misses

	l.Coins, misses = g.PlaceCoins(arena, l.Walls, l.EnemyRects())
	l.Fallbacks += misses

	if l.Fallbacks > 0 {
		log.Printf("Layout %.0fx%.0f: %d placements kept after %d attempts",
			arena.W, arena.H, l.Fallbacks, g.layout.MaxAttempts)
	}
	return l
}

// PlaceWalls samples NumWalls walls whose sides are multiples of WallUnit.
// A wall may not overlap an earlier wall or the spawn safe area.
func (g *Generator) PlaceWalls(arena gamemath.Size) ([]gamemath.Rect, int) {
	walls := make([]gamemath.Rect, 0, g.layout.NumWalls)
	misses := 0
	for i := 0; i < g.layout.NumWalls; i++ {
		wall, ok := g.place(
			func() gamemath.Rect {
				w := g.wallSide(arena.W)
				h := g.wallSide(arena.H)
				return gamemath.NewRect(
					g.uniform(arena.W-w),
					g.uniform(arena.H-h-g.layout.ChromeHeight),
					w, h,
				)
			},
			func(r gamemath.Rect) bool {
				return gamemath.CollidesAny(r, walls) || gamemath.Overlaps(r, g.layout.SafeArea)
			},
		)
		if !ok {
			misses++
		}
		walls = append(walls, wall)
	}
	return walls, misses
}

// PlaceEnemies places counts.Normal normal enemies followed by
// counts.Variant variants, each facing a random direction.
func (g *Generator) PlaceEnemies(arena gamemath.Size, counts config.EnemyCounts, walls []gamemath.Rect) ([]EnemySpawn, int) {
	enemies := make([]EnemySpawn, 0, counts.Normal+counts.Variant)
	misses := 0

	spawn := func(kind config.EnemyKind) {
		t := g.enemy.Type(kind)
		box, ok := g.place(
			func() gamemath.Rect {
				return g.sampleInArena(arena, t.Width, t.Height)
			},
			func(r gamemath.Rect) bool {
				return gamemath.CollidesAny(r, walls) || g.inSafeRadius(r)
			},
		)
		if !ok {
			misses++
		}
		enemies = append(enemies, EnemySpawn{
			Kind:      kind,
			Box:       box,
			Direction: g.RandomDirection(),
		})
	}

	for i := 0; i < counts.Normal; i++ {
		spawn(config.EnemyNormal)
	}
	for i := 0; i < counts.Variant; i++ {
		spawn(config.EnemyVariant)
	}
	return enemies, misses
}

// PlaceCoins places NumCoins coins clear of walls, enemies, the spawn and
// each other.
func (g *Generator) PlaceCoins(arena gamemath.Size, walls, enemies []gamemath.Rect) ([]gamemath.Rect, int) {
	coins := make([]gamemath.Rect, 0, g.layout.NumCoins)
	size := g.layout.CoinSize
	misses := 0
	for i := 0; i < g.layout.NumCoins; i++ {
		coin, ok := g.place(
			func() gamemath.Rect {
				return g.sampleInArena(arena, size, size)
			},
			func(r gamemath.Rect) bool {
				return gamemath.CollidesAny(r, walls) ||
					g.inSafeRadius(r) ||
					gamemath.CollidesAny(r, enemies) ||
					gamemath.CollidesAny(r, coins)
			},
		)
		if !ok {
			misses++
		}
		coins = append(coins, coin)
	}
	return coins, misses
}

// PlaceDoor places the exit clear of walls, enemies and the player's current
// hitbox. ok is false when the returned door is a fallback placement.
func (g *Generator) PlaceDoor(arena gamemath.Size, walls, enemies []gamemath.Rect, player gamemath.Rect) (gamemath.Rect, bool) {
	size := g.layout.DoorSize
	return g.place(
		func() gamemath.Rect {
			return g.sampleInArena(arena, size, size)
		},
		func(r gamemath.Rect) bool {
			return gamemath.CollidesAny(r, walls) ||
				gamemath.CollidesAny(r, enemies) ||
				gamemath.Overlaps(r, player)
		},
	)
}

// RandomDirection returns one of the four directions uniformly.
func (g *Generator) RandomDirection() config.Direction {
	return config.Direction(g.rng.Intn(config.NumDirections))
}

// SpawnCenter is the centre of the player's spawn hitbox.
func (g *Generator) SpawnCenter() gamemath.Vec {
	return g.player.Hitbox().Center()
}

// place samples until rejected returns false. After MaxAttempts samples the
// last candidate is returned with ok=false.
func (g *Generator) place(sample func() gamemath.Rect, rejected func(gamemath.Rect) bool) (r gamemath.Rect, ok bool) {
	attempts := max(g.layout.MaxAttempts, 1)
	for i := 0; i < attempts; i++ {
		r = sample()
		if !rejected(r) {
			return r, true
		}
	}
	return r, false
}

// inSafeRadius measures from the candidate's top-left anchor.
func (g *Generator) inSafeRadius(r gamemath.Rect) bool {
	return gamemath.WithinRadius(r.Pos(), g.SpawnCenter(), g.layout.SafeRadius)
}

func (g *Generator) sampleInArena(arena gamemath.Size, w, h float64) gamemath.Rect {
	return gamemath.NewRect(
		g.uniform(arena.W-w),
		g.uniform(arena.H-g.layout.ChromeHeight-h),
		w, h,
	)
}

// wallSide rounds a random fraction of side up to a multiple of WallUnit.
func (g *Generator) wallSide(side float64) float64 {
	unit := g.layout.WallUnit
	s := math.Ceil(g.rng.Float64()*(side/g.layout.WallDivisor)/unit) * unit
	return math.Max(s, g.layout.WallMinSize)
}

// uniform returns a value in [0, span), or 0 when span is not positive.
func (g *Generator) uniform(span float64) float64 {
	if span <= 0 {
		return 0
	}
	return g.rng.Float64() * span
}
