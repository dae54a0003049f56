// Package leveldata loads hand-made arena presets from TMX files. It has no
// dependencies on ebitengine or the ECS; walls come back as plain rects.
package leveldata

import (
	"embed"

	"github.com/automoto/coindash/gamemath"
)

// WallLayer is the object group whose rectangles become walls.
const WallLayer = "walls"

// Arena is a preset wall layout parsed from a TMX map.
type Arena struct {
	Name   string
	Width  int
	Height int
	Walls  []gamemath.Rect
}

// Builtin holds the arenas shipped with the game.
//
//go:embed arenas/*.tmx
var Builtin embed.FS

// BuiltinDir is the directory of Builtin that holds the TMX files.
const BuiltinDir = "arenas"
