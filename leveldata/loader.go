package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/coindash/gamemath"
	"github.com/lafriks/go-tiled"
)

// LoadArena parses a TMX file and returns the rectangles of its wall layer.
// It takes an fs.FS so callers can pass the embedded arenas or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != WallLayer {
			continue
		}
		for _, o := range og.Objects {
			if o.Width <= 0 || o.Height <= 0 {
				continue
			}
			arena.Walls = append(arena.Walls, gamemath.NewRect(o.X, o.Y, o.Width, o.Height))
		}
	}

	if len(arena.Walls) == 0 {
		return nil, fmt.Errorf("TMX %s has no %q object group", tmxPath, WallLayer)
	}

	// Stable order regardless of how the map was edited
	sort.Slice(arena.Walls, func(i, j int) bool {
		a, b := arena.Walls[i], arena.Walls[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
