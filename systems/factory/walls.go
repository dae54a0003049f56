package factory

import (
	"slices"

	"github.com/automoto/coindash/gamemath"
)

// WallSource supplies the wall set for a level. It returns the walls and the
// number of placements that fell back to a constraint-violating candidate.
type WallSource interface {
	Walls(g *Generator, arena gamemath.Size) ([]gamemath.Rect, int)
}

// ProceduralWalls generates random walls for every level.
type ProceduralWalls struct{}

func (ProceduralWalls) Walls(g *Generator, arena gamemath.Size) ([]gamemath.Rect, int) {
	return g.PlaceWalls(arena)
}

// PresetWalls uses the same fixed walls for every level, e.g. an arena
// loaded from a TMX file.
type PresetWalls []gamemath.Rect

func (p PresetWalls) Walls(*Generator, gamemath.Size) ([]gamemath.Rect, int) {
	return slices.Clone(p), 0
}

// NoWalls produces an empty arena.
type NoWalls struct{}

func (NoWalls) Walls(*Generator, gamemath.Size) ([]gamemath.Rect, int) {
	return nil, 0
}
